// Package mdpgraph decomposes the underlying graphs of probabilistic models —
// Markov chains and Markov decision processes — into their structural parts.
//
// 🚀 What is mdpgraph?
//
//	A deterministic, allocation-conscious library that brings together:
//		• stateset:  compact bit-vector sets over a fixed state universe
//		• sparse:    read-only CSR transition views + nondeterministic choice index
//		• decomp:    state blocks and ordered decompositions
//		• scc:       iterative Tarjan strongly connected components
//		             (drop-trivial and bottom-only filters included)
//		• mec:       maximal end component decomposition with retained choices
//
// ✨ Why choose mdpgraph?
//
//   - Explicit-stack algorithms – no host-stack overflow, whatever the model size
//   - Bit-identical outputs – same inputs, same blocks, same order, every run
//   - Borrowed inputs – matrices and choice indices are never mutated
//   - Pure Go – no cgo, no hidden deps
//
// The engines consume two views only: a forward sparse row view (successor,
// weight per row) and a choice-index vector mapping each state to its
// contiguous range of choice rows. Deterministic models use the identity
// choice index, so one engine body serves both model kinds.
//
// Quick ASCII example:
//
//	0 ⇄ 1 → 2 ⟲
//
//	has SCCs {0,1} and {2}; both are maximal end components when every
//	shown transition is a choice of its source state.
//
// Dive into the per-package docs for contracts, complexity and examples.
package mdpgraph
