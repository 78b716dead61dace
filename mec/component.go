package mec

import "github.com/katalvlaran/mdpgraph/stateset"

// MaximalEndComponent maps each member state to the set of its retained
// choice rows. Every retained choice keeps all its successors inside the
// component, and the members are strongly connected under the retained
// choices. The member set always equals the key set of the mapping.
type MaximalEndComponent struct {
	states  *stateset.StateSet
	choices map[int][]int // state → retained choice rows, ascending
}

// NewMaximalEndComponent returns an empty component over the universe
// [0, n).
func NewMaximalEndComponent(n int) *MaximalEndComponent {
	return &MaximalEndComponent{
		states:  stateset.New(n),
		choices: make(map[int][]int),
	}
}

// AddState records s with its retained choice rows, adopting the slice.
// Re-adding a state replaces its choices.
func (c *MaximalEndComponent) AddState(s int, choices []int) {
	c.states.Insert(s)
	c.choices[s] = choices
}

// ContainsState reports whether s is a member.
func (c *MaximalEndComponent) ContainsState(s int) bool {
	return c.states.Contains(s)
}

// Choices returns the retained choice rows of s in ascending order, or
// nil when s is not a member. The slice is shared and must be treated as
// read-only.
func (c *MaximalEndComponent) Choices(s int) []int {
	return c.choices[s]
}

// States returns the member states in ascending order.
func (c *MaximalEndComponent) States() []int {
	return c.states.Members()
}

// Set exposes the member set. The returned set is shared with the
// component and must be treated as read-only.
func (c *MaximalEndComponent) Set() *stateset.StateSet {
	return c.states
}

// Each calls fn for every member in ascending state order with its
// retained choices; returning false stops early.
func (c *MaximalEndComponent) Each(fn func(s int, choices []int) bool) {
	c.states.Each(func(s int) bool {
		return fn(s, c.choices[s])
	})
}

// Len returns the number of member states.
func (c *MaximalEndComponent) Len() int { return c.states.Count() }

// ChoiceCount returns the total number of retained choices across all
// member states.
func (c *MaximalEndComponent) ChoiceCount() int {
	total := 0
	for _, ch := range c.choices {
		total += len(ch)
	}

	return total
}
