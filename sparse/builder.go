// SPDX-License-Identifier: MIT

// Package sparse: row-by-row CSR ingestion with fail-fast validation,
// preserving native in-row entry order.
package sparse

import "fmt"

// BuilderOption configures optional Builder behavior.
type BuilderOption[W any] func(*builderOptions[W])

// builderOptions holds the configurable ingestion policy.
type builderOptions[W any] struct {
	// isNegative, if non-nil, rejects weights at ingestion time with
	// ErrNegativeWeight. The core never needs it for correctness; it is
	// a debug-grade precondition check.
	isNegative func(W) bool
}

// WithWeightValidation installs fn as the ingestion-time negativity check.
func WithWeightValidation[W any](fn func(W) bool) BuilderOption[W] {
	return func(o *builderOptions[W]) {
		o.isNegative = fn
	}
}

// Builder assembles a Matrix row by row. Typical use:
//
//	b, _ := sparse.NewFloat64Builder(3)
//	b.NewRow()                 // row 0
//	_ = b.Add(1, 1.0)
//	b.NewRow()                 // row 1
//	_ = b.Add(0, 0.5)
//	_ = b.Add(2, 0.5)
//	m, err := b.Build()
//
// A Builder is single-use: after Build it must be discarded.
type Builder[W any] struct {
	numStates int
	rowPtr    []int
	entries   []Entry[W]
	pos       PositiveFunc[W]
	opts      builderOptions[W]
	open      bool
}

// NewBuilder returns a Builder for a matrix over numStates state columns.
func NewBuilder[W any](numStates int, pos PositiveFunc[W], opts ...BuilderOption[W]) (*Builder[W], error) {
	// 1. Validate construction parameters.
	if pos == nil {
		return nil, ErrNilPositive
	}
	if numStates < 0 {
		return nil, ErrBadShape
	}

	// 2. Apply options.
	var bo builderOptions[W]
	for _, fn := range opts {
		fn(&bo)
	}

	return &Builder[W]{
		numStates: numStates,
		rowPtr:    []int{0},
		pos:       pos,
		opts:      bo,
	}, nil
}

// NewFloat64Builder returns a Builder over float64 weights with the
// standard positivity predicate and negativity validation enabled.
func NewFloat64Builder(numStates int) (*Builder[float64], error) {
	return NewBuilder(numStates, Float64Positive, WithWeightValidation(float64Negative))
}

// NewRow opens the next choice row. Entries added afterwards belong to it.
func (b *Builder[W]) NewRow() {
	if b.open {
		// Close the previous row: its end is the start of this one.
		b.rowPtr = append(b.rowPtr, len(b.entries))

		return
	}
	b.open = true
}

// Add appends a (successor, weight) pair to the currently open row.
func (b *Builder[W]) Add(successor int, w W) error {
	if !b.open {
		return ErrNoOpenRow
	}
	if successor < 0 || successor >= b.numStates {
		return fmt.Errorf("successor %d: %w", successor, ErrColumnOutOfRange)
	}
	if b.opts.isNegative != nil && b.opts.isNegative(w) {
		return fmt.Errorf("successor %d: %w", successor, ErrNegativeWeight)
	}
	b.entries = append(b.entries, Entry[W]{Col: successor, Weight: w})

	return nil
}

// Build closes the last row and returns the assembled Matrix.
func (b *Builder[W]) Build() (*Matrix[W], error) {
	if b.open {
		b.rowPtr = append(b.rowPtr, len(b.entries))
		b.open = false
	}

	return NewMatrix(b.numStates, b.rowPtr, b.entries, b.pos)
}
