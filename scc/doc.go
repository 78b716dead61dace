// Package scc computes strongly connected component decompositions of the
// state graph of a probabilistic model, restricted to a subsystem.
//
// What:
//
//   - Engine: iterative Tarjan over a sparse.Matrix and sparse.ChoiceIndex.
//     State s has a graph edge to state t iff some choice row of s reaches
//     t with positive weight and t lies in the subsystem; for deterministic
//     models the identity choice index makes that row-by-row.
//   - Decompose(sub, opts...): emits the SCCs as a decomp.Decomposition of
//     blocks, in discovery order of their Tarjan roots.
//
// Options:
//
//   - WithDropTrivial()  omit singleton SCCs whose only member has no
//     self-loop.
//   - WithBottomOnly()   retain only SCCs with no edge leaving them
//     (within the restricted graph).
//
// Why:
//
//   - Long-run analyses of Markov models reduce to work on SCCs and bottom
//     SCCs; the maximal-end-component engine calls this one on every
//     refinement pass.
//
// Complexity:
//
//   - Time:   O(S + E) per call, S = subsystem states, E = their entries.
//   - Memory: O(N) scratch, allocated once at engine construction and
//     reset by generation counters, so repeated calls allocate nothing
//     but the output blocks.
//
// The recursion is unwound onto explicit parallel stacks (state ids and
// successor cursors), so no input size can overflow the host call stack.
// Outputs are deterministic: subsystem iteration is ascending, successor
// iteration follows the matrix's native row order.
//
// Errors (sentinel):
//
//   - ErrNilMatrix          engine constructed without a matrix
//   - ErrIndexMismatch      choice index does not cover the matrix
//   - ErrNilSubsystem       Decompose called with a nil subsystem
//   - ErrUniverseMismatch   subsystem universe differs from the state count
//
// Invalid choice indices additionally surface the sparse package's
// validation sentinels unchanged.
package scc
