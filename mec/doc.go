// Package mec computes the maximal end component (MEC) decomposition of a
// nondeterministic probabilistic model — the probabilistic analogue of
// strongly connected components.
//
// What:
//
//   - MaximalEndComponent: a set of states together with, per state, the
//     retained choice rows whose successors all stay inside the component.
//   - Engine / Decompose(sub, opts...): every maximal end component
//     contained in the subsystem, as a decomp.Decomposition. States in no
//     MEC are absent from the output.
//
// How:
//
//	The engine drives an outer fixpoint over candidate state blocks. Each
//	pass SCC-decomposes the candidate (package scc, no filters), then
//	prunes every resulting SCC from the inside: a state survives only
//	while at least one of its choices keeps all successors within the
//	SCC; removals re-enqueue their predecessors for rechecking. Changed
//	candidates are replaced by their refined SCCs on a FIFO worklist;
//	unchanged candidates are confirmed. A final pass materializes the
//	per-state retained choice sets.
//
// Complexity:
//
//   - Time:   O(N·M) worst case, near-linear in practice.
//   - Memory: O(N) scratch shared with the embedded SCC engine,
//     allocated once per Engine.
//
// Edge cases (by contract):
//
//   - a singleton {s} is a MEC iff s has a choice whose successors are
//     all s (a self-choice); otherwise it is pruned
//   - a state with no choice rows is removed in the first prune
//   - an empty subsystem yields an empty decomposition
//
// Cancellation: WithContext(ctx) is honored between outer passes only.
// On cancellation Decompose returns ctx.Err() and no partial result.
//
// Errors (sentinel): ErrNilMatrix, ErrNilSubsystem, ErrUniverseMismatch;
// malformed choice indices surface the scc/sparse validation sentinels
// unchanged.
package mec
