package scc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

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

// subSet returns the subsystem over [0, n) holding exactly the given states.
func subSet(n int, states ...int) *stateset.StateSet {
	s := stateset.New(n)
	for _, i := range states {
		s.Insert(i)
	}

	return s
}
