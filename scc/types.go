// Package scc defines the options and sentinel errors of the strongly
// connected component engine.
package scc

import "errors"

var (
	// ErrNilMatrix is returned when NewEngine receives a nil matrix.
	ErrNilMatrix = errors.New("scc: matrix is nil")

	// ErrIndexMismatch is returned when the choice index covers a
	// different number of states than the matrix has columns.
	ErrIndexMismatch = errors.New("scc: choice index does not match matrix")

	// ErrNilSubsystem is returned when Decompose receives a nil subsystem.
	ErrNilSubsystem = errors.New("scc: subsystem is nil")

	// ErrUniverseMismatch is returned when the subsystem was built over a
	// different universe than the matrix's state count.
	ErrUniverseMismatch = errors.New("scc: subsystem universe does not match state count")
)

// Option configures one Decompose call. Use with Decompose(sub, opts...).
type Option func(*options)

// options holds the per-call filters. Both default to off: every SCC of
// the restricted graph is emitted.
type options struct {
	// dropTrivial omits singleton SCCs whose only member has no self-loop.
	dropTrivial bool

	// bottomOnly retains only SCCs without an edge to any state outside
	// them, within the graph restricted to the subsystem.
	bottomOnly bool
}

// WithDropTrivial returns an Option that omits trivial SCCs — singletons
// {s} where s has no self-loop.
func WithDropTrivial() Option {
	return func(o *options) {
		o.dropTrivial = true
	}
}

// WithBottomOnly returns an Option that retains only bottom SCCs — those
// with no outgoing edge to a state outside the component.
func WithBottomOnly() Option {
	return func(o *options) {
		o.bottomOnly = true
	}
}

// marks is a generation-stamped bit store over [0, n). Resetting bumps the
// generation instead of zeroing storage, so clearing between engine
// invocations is O(1) regardless of how much was touched.
type marks struct {
	stamp []uint64
	cur   uint64
}

// newMarks returns an all-clear marks store over [0, n).
func newMarks(n int) marks {
	return marks{stamp: make([]uint64, n), cur: 1}
}

// reset clears every mark in O(1).
func (m *marks) reset() { m.cur++ }

// set marks i.
func (m *marks) set(i int) { m.stamp[i] = m.cur }

// unset clears the mark on i.
func (m *marks) unset(i int) { m.stamp[i] = 0 }

// has reports whether i is marked.
func (m *marks) has(i int) bool { return m.stamp[i] == m.cur }
