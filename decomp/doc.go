// Package decomp holds the output containers shared by the decomposition
// engines: state blocks and ordered decompositions.
//
// What:
//
//   - Block: an unordered set of state ids with O(1) membership, one-pass
//     erase-by-set, and a stable (ascending id) iteration order.
//   - Decomposition[B]: an ordered sequence of disjoint blocks, immutable
//     once the producing engine has returned it.
//
// Why:
//
//   - Strongly connected components and maximal end components are both
//     "sequence of disjoint state collections" at heart; keeping the
//     container generic lets one type serve both engines.
//   - The order between blocks carries no meaning, but it is deterministic
//     for fixed inputs — consumers and tests rely on that.
//
// Blocks refer to states by dense integer id against the matrix snapshot
// the producing engine was given; they hold no back-pointers.
package decomp
