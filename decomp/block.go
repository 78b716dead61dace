package decomp

import "github.com/katalvlaran/mdpgraph/stateset"

// Block is a set of state ids with fast membership and erase-by-set.
// Iteration is always in ascending state id, which makes it a stable
// iterator for deterministic output.
type Block struct {
	states *stateset.StateSet
}

// NewBlock returns an empty Block over the universe [0, n).
func NewBlock(n int) *Block {
	return &Block{states: stateset.New(n)}
}

// FromSet wraps s as a Block, adopting (not copying) the set.
// The caller must not mutate s afterwards.
func FromSet(s *stateset.StateSet) *Block {
	return &Block{states: s}
}

// Insert adds state i to the block.
func (b *Block) Insert(i int) { b.states.Insert(i) }

// Contains reports whether state i is a member.
func (b *Block) Contains(i int) bool { return b.states.Contains(i) }

// Erase removes every member of rm from the block in one pass.
func (b *Block) Erase(rm *stateset.StateSet) { b.states.DifferenceWith(rm) }

// Len returns the number of member states.
func (b *Block) Len() int { return b.states.Count() }

// Empty reports whether the block has no members.
func (b *Block) Empty() bool { return b.states.Empty() }

// Members returns the member states in ascending order.
func (b *Block) Members() []int { return b.states.Members() }

// Each calls fn for every member in ascending order; returning false
// stops early.
func (b *Block) Each(fn func(i int) bool) { b.states.Each(fn) }

// Set exposes the underlying state set. The returned set is shared with
// the block and must be treated as read-only.
func (b *Block) Set() *stateset.StateSet { return b.states }
