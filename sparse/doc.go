// Package sparse provides the read-only transition views consumed by the
// decomposition engines: a CSR row matrix, a derived backward (predecessor)
// view, and the choice-index vector that maps states of a nondeterministic
// model to their contiguous ranges of choice rows.
//
// What:
//
//   - Entry[W]: one (successor, weight) pair of a row.
//   - Matrix[W]: compressed sparse rows over M choice rows and N state
//     columns; Row and RowSpan expose restartable, allocation-free
//     iteration.
//   - Backward: for a target state, the ordered list of rows that reach it
//     with positive weight (used by collaborators such as zero/one
//     precomputation; the engines themselves walk only the forward view).
//   - ChoiceIndex: vector of length N+1; choice rows of state s occupy
//     [ix[s], ix[s+1]). Deterministic(n) builds the identity index
//     [0,1,…,n], so deterministic models flow through the same engine code.
//   - Builder[W]: row-by-row ingestion with fail-fast validation.
//
// Why:
//
//   - The engines need nothing beyond "which states does row r reach with
//     positive weight"; weights stay opaque behind a single positivity
//     predicate (PositiveFunc), so float64, exact rationals and symbolic
//     weights all fit without arithmetic in the core.
//
// Errors (sentinel):
//
//   - ErrNilPositive          positivity predicate missing
//   - ErrRowPtrNotMonotonic   row pointer vector decreases somewhere
//   - ErrRowPtrBounds         row pointer endpoints do not frame the entries
//   - ErrColumnOutOfRange     an entry names a successor ≥ N (or < 0)
//   - ErrChoiceIndexLength    choice index is empty
//   - ErrChoiceIndexNotMonotonic  choice index decreases somewhere
//   - ErrChoiceIndexBounds    choice index endpoints do not frame the rows
//   - ErrBadShape             nonsensical dimensions (negative sizes)
//   - ErrNoOpenRow            Builder.Add before the first NewRow
//   - ErrNegativeWeight       ingestion-time weight validation failed
//
// All views are immutable after construction and safe for concurrent
// readers.
package sparse
