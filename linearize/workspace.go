// SPDX-License-Identifier: MIT

package linearize

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/go-factorgraph/factorgraph/graph"
)

// block is one slot's sub-view of the arena: an (offset, shape) pair
// computed when the workspace is bound to an edge.
type block struct {
	rows, cols, off int
}

// Workspace is the reusable scratch memory for one edge evaluation: a
// single contiguous arena holding one De×Dim(v_i) and one De×Dim(v_j)
// Jacobian block, addressed by vertex slot. It is sized once per graph
// topology (UpdateSize + Allocate) and then reused by every evaluation, so
// the per-iteration hot path performs no heap allocation for block storage.
//
// A Workspace is not safe for concurrent use: its arena is written in
// place. Parallel callers give each worker its own instance.
type Workspace struct {
	maxBlock  int // largest De*Dv over all edges seen by UpdateSize
	arena     []float64
	blocks    [graph.NumSlots]block
	sized     bool
	allocated bool
	bound     bool
}

// NewWorkspace returns an empty workspace. It must be sized (UpdateSize)
// and allocated (Allocate) before any evaluation.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// UpdateSize grows the required block capacity to cover every given edge.
// Call it once per structural change of the graph, passing all edges that
// will be evaluated; it accumulates, so incremental calls are allowed as
// long as Allocate runs again before the next evaluation whenever the
// requirement grew past the current arena.
func (w *Workspace) UpdateSize(edges ...graph.Edge) error {
	for _, e := range edges {
		if e == nil {
			return fmt.Errorf("Workspace.UpdateSize: %w", ErrNilEdge)
		}
		de := e.Dimension()
		for s := graph.SlotI; s <= graph.SlotJ; s++ {
			v := e.Vertex(s)
			if v == nil {
				return fmt.Errorf("Workspace.UpdateSize: slot %d: %w", s, graph.ErrNilVertex)
			}
			if need := de * v.Dimension(); need > w.maxBlock {
				w.maxBlock = need
			}
		}
	}
	w.sized = true
	if len(w.arena) < graph.NumSlots*w.maxBlock {
		// the requirement outgrew any previous allocation
		w.allocated = false
		w.bound = false
	}

	return nil
}

// Allocate commits backing storage for the sizes accumulated by UpdateSize.
// Returns ErrNotSized if UpdateSize was never called.
func (w *Workspace) Allocate() error {
	if !w.sized {
		return fmt.Errorf("Workspace.Allocate: %w", ErrNotSized)
	}
	if need := graph.NumSlots * w.maxBlock; len(w.arena) < need {
		w.arena = make([]float64, need)
	}
	w.allocated = true
	w.bound = false

	return nil
}

// bind sizes the two slot views for the given edge and zeroes their
// regions, so a smaller block never exposes stale values from a previous,
// larger evaluation. Internal: called by the dispatcher at the start of
// every evaluation.
func (w *Workspace) bind(e graph.Edge) error {
	if !w.allocated {
		return fmt.Errorf("workspace bind: %w", ErrNotAllocated)
	}
	de := e.Dimension()
	for s := graph.SlotI; s <= graph.SlotJ; s++ {
		v := e.Vertex(s)
		if v == nil {
			return fmt.Errorf("workspace bind: slot %d: %w", s, graph.ErrNilVertex)
		}
		need := de * v.Dimension()
		if need > w.maxBlock {
			return fmt.Errorf("workspace bind: block %dx%d exceeds sized capacity %d: %w",
				de, v.Dimension(), w.maxBlock, ErrWorkspaceTooSmall)
		}
		off := int(s) * w.maxBlock
		for i := off; i < off+need; i++ {
			w.arena[i] = 0
		}
		w.blocks[s] = block{rows: de, cols: v.Dimension(), off: off}
	}
	w.bound = true

	return nil
}

// BlockFor returns the Jacobian block of the given vertex slot as a dense
// view over the arena, shaped for the most recently evaluated edge. The
// view shares the arena's backing memory: it stays valid until the next
// evaluation overwrites it.
func (w *Workspace) BlockFor(s graph.Slot) (*mat.Dense, error) {
	if !w.allocated {
		return nil, fmt.Errorf("Workspace.BlockFor: %w", ErrNotAllocated)
	}
	if !w.bound {
		return nil, fmt.Errorf("Workspace.BlockFor: %w", ErrNotBound)
	}
	if s < graph.SlotI || s > graph.SlotJ {
		return nil, fmt.Errorf("Workspace.BlockFor: slot %d: %w", s, ErrBadSlot)
	}
	b := w.blocks[s]

	return mat.NewDense(b.rows, b.cols, w.arena[b.off:b.off+b.rows*b.cols]), nil
}
