// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors in private helpers.

package sparse

import "errors"

var (
	// ErrNilPositive is returned when a constructor receives a nil
	// positivity predicate.
	ErrNilPositive = errors.New("sparse: positivity predicate is nil")

	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrRowPtrNotMonotonic indicates a decreasing row pointer vector.
	ErrRowPtrNotMonotonic = errors.New("sparse: row pointer vector not monotonic")

	// ErrRowPtrBounds indicates that the row pointer vector does not start
	// at 0 or does not end at the number of entries.
	ErrRowPtrBounds = errors.New("sparse: row pointer vector out of bounds")

	// ErrColumnOutOfRange indicates an entry whose successor lies outside
	// the state universe [0, N).
	ErrColumnOutOfRange = errors.New("sparse: successor column out of range")

	// ErrChoiceIndexLength indicates an empty choice index; even a model
	// with no states needs the single entry 0. A non-empty index whose
	// length does not match a matrix's state count is reported by the
	// engines (scc.ErrIndexMismatch), not here.
	ErrChoiceIndexLength = errors.New("sparse: choice index has wrong length")

	// ErrChoiceIndexNotMonotonic indicates a decreasing choice index.
	ErrChoiceIndexNotMonotonic = errors.New("sparse: choice index not monotonic")

	// ErrChoiceIndexBounds indicates that the choice index does not start
	// at row 0 or does not end at the number of rows.
	ErrChoiceIndexBounds = errors.New("sparse: choice index out of bounds")

	// ErrNoOpenRow is returned by Builder.Add when no row has been
	// started yet.
	ErrNoOpenRow = errors.New("sparse: no open row in builder")

	// ErrNegativeWeight is returned by the builder when weight validation
	// is enabled and an ingested weight is negative.
	ErrNegativeWeight = errors.New("sparse: negative weight")
)
