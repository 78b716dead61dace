package scc

import (
	"github.com/katalvlaran/mdpgraph/decomp"
	"github.com/katalvlaran/mdpgraph/sparse"
	"github.com/katalvlaran/mdpgraph/stateset"
)

// Engine computes SCC decompositions over one (matrix, choice index)
// snapshot. All scratch is sized to the state count at construction and
// reused across calls, so an Engine embedded in an outer fixpoint (see
// package mec) performs no per-call allocation beyond the output.
//
// An Engine borrows its matrix and choice index read-only and never
// mutates them. It is not safe for concurrent use; create one engine per
// goroutine.
type Engine[W any] struct {
	m  *sparse.Matrix[W]
	ci sparse.ChoiceIndex
	n  int // state universe

	counter int   // incrementing discovery index of the current call
	index   []int // Tarjan discovery index per state
	lowlink []int // Tarjan lowlink per state

	visited  marks // state has been discovered this call
	onStack  marks // state sits on the open-path stack
	selfLoop marks // state has a positive-weight self-loop (dropTrivial)
	canLeave marks // state has an edge out of its SCC (bottomOnly)

	tarjan  []int // open-path stack of the current SCC chain
	frames  []int // explicit recursion stack: state under examination
	cursors []int // explicit recursion stack: successor cursor per frame
}

// NewEngine validates the (matrix, choice index) pair and allocates the
// engine's scratch. The choice index is fully re-validated here so that a
// malformed vector surfaces before any traversal work (precondition
// violations produce no partial output).
func NewEngine[W any](m *sparse.Matrix[W], ci sparse.ChoiceIndex) (*Engine[W], error) {
	// 1. Validate inputs.
	if m == nil {
		return nil, ErrNilMatrix
	}
	if _, err := sparse.NewChoiceIndex(ci, m.NumRows()); err != nil {
		return nil, err
	}
	if ci.NumStates() != m.NumStates() {
		return nil, ErrIndexMismatch
	}

	// 2. Allocate N-sized scratch once.
	n := m.NumStates()

	return &Engine[W]{
		m:        m,
		ci:       ci,
		n:        n,
		index:    make([]int, n),
		lowlink:  make([]int, n),
		visited:  newMarks(n),
		onStack:  newMarks(n),
		selfLoop: newMarks(n),
		canLeave: newMarks(n),
		tarjan:   make([]int, 0, n),
		frames:   make([]int, 0, n),
		cursors:  make([]int, 0, n),
	}, nil
}

// Decompose returns the strongly connected components of the state graph
// restricted to sub, as blocks in discovery order of their Tarjan roots.
// With no options the blocks partition sub exactly.
func (e *Engine[W]) Decompose(sub *stateset.StateSet, opts ...Option) (*decomp.Decomposition[*decomp.Block], error) {
	// 1. Validate the subsystem.
	if sub == nil {
		return nil, ErrNilSubsystem
	}
	if sub.Universe() != e.n {
		return nil, ErrUniverseMismatch
	}

	// 2. Apply options.
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Reset scratch from the previous call. Generation bumps, no memset.
	e.counter = 0
	e.visited.reset()
	e.onStack.reset()
	e.selfLoop.reset()
	e.canLeave.reset()
	e.tarjan = e.tarjan[:0]
	e.frames = e.frames[:0]
	e.cursors = e.cursors[:0]

	// 4. Start a search from every undiscovered subsystem state, in
	//    ascending state order for deterministic output.
	var blocks []*decomp.Block
	sub.Each(func(root int) bool {
		if !e.visited.has(root) {
			blocks = e.strongConnect(root, sub, o, blocks)
		}

		return true
	})

	return decomp.New(blocks), nil
}

// strongConnect runs the stack-unwound Tarjan descent from root and
// appends every closed SCC that survives the option filters to blocks.
//
// The classic recursion is driven by two parallel stacks: frames holds the
// state under examination, cursors the position inside its successor span.
// Each loop turn either descends into an unvisited successor (push) or
// finishes the top state (close + pop + lowlink propagation to the parent).
func (e *Engine[W]) strongConnect(root int, sub *stateset.StateSet, o options, blocks []*decomp.Block) []*decomp.Block {
	e.push(root)
	e.discover(root)

	for len(e.frames) > 0 {
		top := len(e.frames) - 1
		v := e.frames[top]
		lo, hi := e.ci.RowsOf(v)
		span := e.m.RowSpan(lo, hi)

		// Descend step: advance the cursor over v's successors.
		descended := false
		for e.cursors[top] < len(span) {
			entry := span[e.cursors[top]]
			e.cursors[top]++

			if !e.m.IsPositive(entry.Weight) {
				continue // stored but weightless: not an edge
			}
			t := entry.Col
			if o.dropTrivial && t == v {
				e.selfLoop.set(v)
			}
			if !sub.Contains(t) {
				continue // edge leaves the restricted graph
			}

			switch {
			case !e.visited.has(t):
				// Tree edge: suspend v, examine t first.
				e.push(t)
				e.discover(t)
				descended = true
			case e.onStack.has(t):
				// Back edge into the open path.
				if e.index[t] < e.lowlink[v] {
					e.lowlink[v] = e.index[t]
				}
			default:
				// Cross edge into an already closed SCC: no lowlink
				// update, but v provably leaves its own component.
				if o.bottomOnly {
					e.canLeave.set(v)
				}
			}
			if descended {
				break
			}
		}
		if descended {
			continue
		}

		// Return step: v is fully explored.
		if e.lowlink[v] == e.index[v] {
			blocks = e.closeSCC(v, o, blocks)
		}
		e.frames = e.frames[:top]
		e.cursors = e.cursors[:top]
		if top > 0 {
			p := e.frames[top-1]
			if e.lowlink[v] < e.lowlink[p] {
				e.lowlink[p] = e.lowlink[v]
			}
			if o.bottomOnly && e.lowlink[p] != e.lowlink[v] {
				// The child closed in a deeper component; p can leave.
				e.canLeave.set(p)
			}
		}
	}

	return blocks
}

// push opens a recursion frame for state v with a fresh successor cursor.
func (e *Engine[W]) push(v int) {
	e.frames = append(e.frames, v)
	e.cursors = append(e.cursors, 0)
}

// discover performs Tarjan's first-visit bookkeeping for v.
func (e *Engine[W]) discover(v int) {
	e.visited.set(v)
	e.index[v] = e.counter
	e.lowlink[v] = e.counter
	e.counter++
	e.tarjan = append(e.tarjan, v)
	e.onStack.set(v)
}

// closeSCC pops the open-path stack down to root (inclusive) as one SCC
// and appends it to blocks unless an option filter discards it.
func (e *Engine[W]) closeSCC(root int, o options, blocks []*decomp.Block) []*decomp.Block {
	block := decomp.NewBlock(e.n)
	size := 0
	isBottom := true

	for {
		if len(e.tarjan) == 0 {
			panic("scc: open-path stack underflow closing component")
		}
		last := e.tarjan[len(e.tarjan)-1]
		e.tarjan = e.tarjan[:len(e.tarjan)-1]
		e.onStack.unset(last)
		block.Insert(last)
		size++
		if o.bottomOnly && e.canLeave.has(last) {
			isBottom = false
		}
		if last == root {
			break
		}
	}

	if o.dropTrivial && size == 1 && !e.selfLoop.has(root) {
		return blocks // trivial: singleton without self-loop
	}
	if o.bottomOnly && !isBottom {
		return blocks
	}

	return append(blocks, block)
}

// Decompose is the package-level convenience wrapper: it builds a
// throwaway engine and runs a single decomposition. Callers that
// decompose repeatedly over one model should hold an Engine instead.
func Decompose[W any](m *sparse.Matrix[W], ci sparse.ChoiceIndex, sub *stateset.StateSet, opts ...Option) (*decomp.Decomposition[*decomp.Block], error) {
	e, err := NewEngine(m, ci)
	if err != nil {
		return nil, err
	}

	return e.Decompose(sub, opts...)
}
