// Package stateset provides a compact membership set over a fixed state
// universe [0, N), backed by a []uint64 bit vector.
//
// What:
//
//   - StateSet: O(1) insert/remove/contains, linear iteration over set bits
//     in ascending state order, and in-place bulk operations (union,
//     difference, intersection, fill).
//   - NextSet: the low-level iteration primitive; Each and Members are
//     built on top of it.
//
// Why:
//
//   - Decomposition engines address states by dense integer id and need
//     subsystem membership tests on every edge they look at; a word-packed
//     bit vector keeps that test to one shift and one mask.
//   - Iteration order doubles as the determinism anchor for every consumer:
//     ascending state id, always.
//
// Complexity:
//
//   - Insert/Remove/Contains: O(1)
//   - Clear/Fill/UnionWith/DifferenceWith/IntersectWith/Count/Empty: O(N/64)
//   - Each/Members: O(N/64 + |set|)
//
// The universe size is fixed at construction. Indices outside [0, N) are
// programmer errors: Insert and Remove panic, Contains reports false.
// Bulk operations require both operands to share one universe and panic
// otherwise. StateSet is not safe for concurrent mutation; concurrent
// readers are fine.
package stateset
