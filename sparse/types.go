// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix, backward view and
// builder. Errors live in errors.go per the package conventions.
package sparse

// Entry is one (successor, weight) pair of a choice row.
type Entry[W any] struct {
	// Col is the successor state id in [0, N).
	Col int

	// Weight is the transition probability mass toward Col. The core
	// performs no arithmetic on it; only PositiveFunc ever inspects it.
	Weight W
}

// PositiveFunc reports whether a weight is strictly positive — the single
// predicate the decomposition core needs from the weight type. An edge
// exists exactly where the predicate holds.
type PositiveFunc[W any] func(W) bool

// Float64Positive is the PositiveFunc for plain double-precision weights.
func Float64Positive(w float64) bool { return w > 0 }

// float64Negative is the ingestion-time negativity check used by
// NewFloat64Builder.
func float64Negative(w float64) bool { return w < 0 }
