// Package mec defines the options and sentinel errors of the maximal end
// component engine.
package mec

import (
	"context"
	"errors"
)

var (
	// ErrNilMatrix is returned when NewEngine receives a nil matrix.
	ErrNilMatrix = errors.New("mec: matrix is nil")

	// ErrNilSubsystem is returned when Decompose receives a nil subsystem.
	ErrNilSubsystem = errors.New("mec: subsystem is nil")

	// ErrUniverseMismatch is returned when the subsystem was built over a
	// different universe than the matrix's state count.
	ErrUniverseMismatch = errors.New("mec: subsystem universe does not match state count")
)

// Option configures one Decompose call.
type Option func(*options)

// options holds the per-call configuration.
type options struct {
	// ctx is consulted between outer fixpoint passes only; the engine
	// never suspends. Defaults to context.Background().
	ctx context.Context
}

// defaultOptions returns the baseline configuration: no cancellation.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that installs ctx for cancellation.
// Passing a nil context has no effect (Background is retained). When ctx
// is cancelled, Decompose returns ctx.Err() and no partial decomposition.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
