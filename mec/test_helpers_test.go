package mec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mdpgraph/decomp"
	"github.com/katalvlaran/mdpgraph/mec"
	"github.com/katalvlaran/mdpgraph/sparse"
	"github.com/katalvlaran/mdpgraph/stateset"
)

// edge is a (successor, weight) pair used by the model helpers.
type edge struct {
	to int
	w  float64
}

// det assembles a deterministic model: rows[s] lists the successors of
// state s, each with weight 1. The choice index is the identity.
func det(t testing.TB, rows [][]int) (*sparse.Matrix[float64], sparse.ChoiceIndex) {
	t.Helper()

	b, err := sparse.NewFloat64Builder(len(rows))
	require.NoError(t, err)
	for _, succs := range rows {
		b.NewRow()
		for _, s := range succs {
			require.NoError(t, b.Add(s, 1.0))
		}
	}

	m, err := b.Build()
	require.NoError(t, err)

	return m, sparse.Deterministic(len(rows))
}

// mdp assembles a nondeterministic model: choices[s] lists the choice
// rows of state s; each row lists its (successor, weight) pairs.
func mdp(t testing.TB, choices [][][]edge) (*sparse.Matrix[float64], sparse.ChoiceIndex) {
	t.Helper()

	n := len(choices)
	b, err := sparse.NewFloat64Builder(n)
	require.NoError(t, err)

	ix := make([]int, 0, n+1)
	ix = append(ix, 0)
	rows := 0
	for _, stateChoices := range choices {
		for _, row := range stateChoices {
			b.NewRow()
			rows++
			for _, e := range row {
				require.NoError(t, b.Add(e.to, e.w))
			}
		}
		ix = append(ix, rows)
	}

	m, err := b.Build()
	require.NoError(t, err)
	ci, err := sparse.NewChoiceIndex(ix, rows)
	require.NoError(t, err)

	return m, ci
}

// fullSet returns the subsystem containing all n states.
func fullSet(n int) *stateset.StateSet {
	s := stateset.New(n)
	s.Fill()

	return s
}

// findComponent returns the component containing state s, failing the
// test when none does.
func findComponent(t *testing.T, d *decomp.Decomposition[*mec.MaximalEndComponent], s int) *mec.MaximalEndComponent {
	t.Helper()

	var found *mec.MaximalEndComponent
	d.Each(func(_ int, c *mec.MaximalEndComponent) bool {
		if c.ContainsState(s) {
			found = c

			return false
		}

		return true
	})
	require.NotNil(t, found, "no component contains state %d", s)

	return found
}

// assertMECInvariants checks the decomposition-wide contract: pairwise
// disjoint blocks; at least one retained choice per state; closure of
// every retained choice; strong connectivity under retained choices; and
// per-state choice maximality (every non-retained choice leaks).
func assertMECInvariants(t *testing.T, m *sparse.Matrix[float64], ci sparse.ChoiceIndex, d *decomp.Decomposition[*mec.MaximalEndComponent]) {
	t.Helper()

	seen := stateset.New(m.NumStates())
	d.Each(func(i int, c *mec.MaximalEndComponent) bool {
		require.Positive(t, c.Len(), "block %d is empty", i)

		c.Each(func(s int, kept []int) bool {
			assert.False(t, seen.Contains(s), "state %d appears in two blocks", s)
			seen.Insert(s)
			assert.NotEmpty(t, kept, "state %d retains no choice", s)

			lo, hi := ci.RowsOf(s)
			keptSet := make(map[int]bool, len(kept))
			for _, ch := range kept {
				keptSet[ch] = true
				assert.GreaterOrEqual(t, ch, lo)
				assert.Less(t, ch, hi)
				// Closure: every successor of a retained choice stays in.
				for _, entry := range m.Row(ch) {
					if m.IsPositive(entry.Weight) {
						assert.True(t, c.ContainsState(entry.Col),
							"retained choice %d of state %d leaks to %d", ch, s, entry.Col)
					}
				}
			}
			// Maximality of the choice set: a dropped choice must leak.
			for ch := lo; ch < hi; ch++ {
				if keptSet[ch] {
					continue
				}
				leaks := false
				for _, entry := range m.Row(ch) {
					if m.IsPositive(entry.Weight) && !c.ContainsState(entry.Col) {
						leaks = true

						break
					}
				}
				assert.True(t, leaks, "choice %d of state %d stays inside but was dropped", ch, s)
			}

			return true
		})

		assertStronglyConnected(t, m, c)

		return true
	})
}

// assertStronglyConnected verifies that every member reaches every other
// member through retained choices only, via BFS from each state.
func assertStronglyConnected(t *testing.T, m *sparse.Matrix[float64], c *mec.MaximalEndComponent) {
	t.Helper()

	states := c.States()
	for _, start := range states {
		reached := stateset.New(m.NumStates())
		reached.Insert(start)
		queue := []int{start}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]
			for _, ch := range c.Choices(s) {
				for _, entry := range m.Row(ch) {
					if m.IsPositive(entry.Weight) && !reached.Contains(entry.Col) {
						reached.Insert(entry.Col)
						queue = append(queue, entry.Col)
					}
				}
			}
		}
		for _, target := range states {
			assert.True(t, reached.Contains(target),
				"state %d cannot reach %d inside its component", start, target)
		}
	}
}
