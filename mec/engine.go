package mec

import (
	"github.com/katalvlaran/mdpgraph/decomp"
	"github.com/katalvlaran/mdpgraph/scc"
	"github.com/katalvlaran/mdpgraph/sparse"
	"github.com/katalvlaran/mdpgraph/stateset"
)

// Engine computes MEC decompositions over one (matrix, choice index)
// snapshot. It embeds an scc.Engine and two N-sized work sets, all
// allocated once, so the outer fixpoint's many SCC passes reuse the same
// scratch throughout.
//
// An Engine borrows its inputs read-only and is not safe for concurrent
// use; create one engine per goroutine.
type Engine[W any] struct {
	m  *sparse.Matrix[W]
	ci sparse.ChoiceIndex
	n  int

	sccEngine *scc.Engine[W]
	toCheck   *stateset.StateSet // states whose staying choices must be (re)verified
	toRemove  *stateset.StateSet // states found without any staying choice
}

// NewEngine validates the (matrix, choice index) pair and allocates the
// engine's scratch.
func NewEngine[W any](m *sparse.Matrix[W], ci sparse.ChoiceIndex) (*Engine[W], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	inner, err := scc.NewEngine(m, ci)
	if err != nil {
		return nil, err
	}

	n := m.NumStates()

	return &Engine[W]{
		m:         m,
		ci:        ci,
		n:         n,
		sccEngine: inner,
		toCheck:   stateset.New(n),
		toRemove:  stateset.New(n),
	}, nil
}

// Decompose returns every maximal end component contained in sub. States
// belonging to no MEC are absent from the output. Block order follows
// confirmation order of the fixpoint and is deterministic for fixed
// inputs.
func (e *Engine[W]) Decompose(sub *stateset.StateSet, opts ...Option) (*decomp.Decomposition[*MaximalEndComponent], error) {
	// 1. Validate the subsystem.
	if sub == nil {
		return nil, ErrNilSubsystem
	}
	if sub.Universe() != e.n {
		return nil, ErrUniverseMismatch
	}

	// 2. Apply options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed the worklist with the whole subsystem as the first
	//    candidate. An empty subsystem yields an empty decomposition.
	var worklist []*decomp.Block
	if !sub.Empty() {
		worklist = append(worklist, decomp.FromSet(sub.Clone()))
	}

	// 4. Outer fixpoint: pop candidates from the front, refine, either
	//    confirm in place or re-enqueue the refined pieces at the back.
	//    The process terminates because every change strictly shrinks or
	//    splits a candidate over a finite state space.
	var confirmed []*decomp.Block
	for head := 0; head < len(worklist); head++ {
		// Cancellation is honored between outer passes only; no partial
		// result escapes.
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		cand := worklist[head]
		worklist[head] = nil

		// 4a. SCC-decompose the candidate, no filters.
		sccs, err := e.sccEngine.Decompose(cand.Set())
		if err != nil {
			return nil, err
		}
		changed := sccs.Size() > 1

		// 4b. Prune each SCC independently until no state leaks.
		sccs.Each(func(_ int, s *decomp.Block) bool {
			e.prune(s, &changed)

			return true
		})

		// 4c. Re-enqueue refined nonempty pieces, or confirm the
		//     candidate as a MEC state set.
		if changed {
			sccs.Each(func(_ int, s *decomp.Block) bool {
				if !s.Empty() {
					worklist = append(worklist, s)
				}

				return true
			})
		} else {
			confirmed = append(confirmed, cand)
		}
	}

	// 5. Materialize: per confirmed block, retain exactly the choices
	//    whose successors all stay inside it.
	mecs := make([]*MaximalEndComponent, 0, len(confirmed))
	for _, block := range confirmed {
		comp := NewMaximalEndComponent(e.n)
		block.Each(func(s int) bool {
			lo, hi := e.ci.RowsOf(s)
			var kept []int
			for c := lo; c < hi; c++ {
				if e.rowStaysIn(c, block.Set()) {
					kept = append(kept, c)
				}
			}
			comp.AddState(s, kept)

			return true
		})
		mecs = append(mecs, comp)
	}

	return decomp.New(mecs), nil
}

// prune shrinks the SCC block s until every remaining state has a choice
// that keeps all successors inside it. Each round removes the states
// without such a choice and re-checks exactly the states whose rows reach
// a removed one.
func (e *Engine[W]) prune(s *decomp.Block, changed *bool) {
	e.toCheck.Clear()
	e.toCheck.UnionWith(s.Set())

	for !e.toCheck.Empty() {
		// Collect the states of this round that cannot stay.
		e.toRemove.Clear()
		e.toCheck.Each(func(state int) bool {
			if !e.hasStayingChoice(state, s.Set()) {
				e.toRemove.Insert(state)
			}

			return true
		})
		if e.toRemove.Empty() {
			break
		}

		*changed = true
		s.Erase(e.toRemove)

		// Reconsider the inside predecessors of the removed states:
		// survivors whose row reaches a state removed this round.
		e.toCheck.Clear()
		s.Each(func(state int) bool {
			if e.reaches(state, e.toRemove) {
				e.toCheck.Insert(state)
			}

			return true
		})
	}
}

// hasStayingChoice reports whether some choice row of state keeps every
// positive-weight successor inside set. A state with no choice rows has
// no staying choice.
func (e *Engine[W]) hasStayingChoice(state int, set *stateset.StateSet) bool {
	lo, hi := e.ci.RowsOf(state)
	for c := lo; c < hi; c++ {
		if e.rowStaysIn(c, set) {
			return true
		}
	}

	return false
}

// rowStaysIn reports whether every positive-weight successor of row c
// lies inside set.
func (e *Engine[W]) rowStaysIn(c int, set *stateset.StateSet) bool {
	for _, entry := range e.m.Row(c) {
		if e.m.IsPositive(entry.Weight) && !set.Contains(entry.Col) {
			return false
		}
	}

	return true
}

// reaches reports whether any choice row of state has a positive-weight
// successor inside targets.
func (e *Engine[W]) reaches(state int, targets *stateset.StateSet) bool {
	lo, hi := e.ci.RowsOf(state)
	for _, entry := range e.m.RowSpan(lo, hi) {
		if e.m.IsPositive(entry.Weight) && targets.Contains(entry.Col) {
			return true
		}
	}

	return false
}

// Decompose is the package-level convenience wrapper: it builds a
// throwaway engine and runs a single decomposition. Callers that
// decompose repeatedly over one model should hold an Engine instead.
func Decompose[W any](m *sparse.Matrix[W], ci sparse.ChoiceIndex, sub *stateset.StateSet, opts ...Option) (*decomp.Decomposition[*MaximalEndComponent], error) {
	e, err := NewEngine(m, ci)
	if err != nil {
		return nil, err
	}

	return e.Decompose(sub, opts...)
}
