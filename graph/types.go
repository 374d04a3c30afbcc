package graph

import "gonum.org/v1/gonum/mat"

// Slot addresses one of the two vertices an edge binds.
type Slot int

const (
	// SlotI is the first (from) vertex of a binary edge.
	SlotI Slot = iota

	// SlotJ is the second (to) vertex of a binary edge.
	SlotJ

	// NumSlots is the number of vertices a binary edge binds.
	NumSlots = 2
)

// Vertex is a state node holding a manifold-valued estimate of fixed
// intrinsic dimension. Implementations own their estimate; callers mutate
// it only through Oplus, never directly.
type Vertex interface {
	// ID returns the vertex identity, unique within its graph.
	ID() int64

	// Dimension returns the tangent-space dimension used for perturbations
	// (equal to the intrinsic estimate dimension for these manifolds).
	Dimension() int

	// Oplus applies the minimal local perturbation delta (length
	// Dimension()) to the estimate in place. The update is an exact local
	// chart: Oplus(delta) followed by Oplus(-delta) restores the estimate
	// to round-off. Returns ErrDimensionMismatch on a wrong-length delta.
	Oplus(delta []float64) error

	// Push snapshots the current estimate onto an internal stack.
	Push()

	// Pop restores the most recently pushed estimate, discarding it from
	// the stack. Returns ErrEmptyStack if nothing was pushed.
	Pop() error
}

// Edge is a measurement binding exactly two vertices. Its error dimension
// and information matrix are fixed at construction.
type Edge interface {
	// Dimension returns the error dimension De.
	Dimension() int

	// Vertex returns the endpoint in the given slot, or nil for a slot
	// outside [SlotI, SlotJ].
	Vertex(s Slot) Vertex

	// Information returns the symmetric positive-definite De×De precision
	// matrix of the measurement. The returned matrix is shared with the
	// edge and must not be mutated.
	Information() *mat.SymDense

	// Error evaluates the error function e(v_i, v_j, z) at the current
	// vertex estimates into dst (length De). Returns ErrDimensionMismatch
	// on a wrong-length dst.
	Error(dst []float64) error
}

// AnalyticEdge is an Edge that can produce its Jacobian blocks in closed
// form. The analytic result must agree element-wise with central-difference
// numeric differentiation of Error to within 1e-6 on identical estimates;
// an implementation violating that is defective.
type AnalyticEdge interface {
	Edge

	// Jacobians writes the partial derivatives of the error with respect
	// to the tangent perturbation of each endpoint: ji is De×Dim(v_i), jj
	// is De×Dim(v_j). Every entry of both blocks is overwritten. Returns
	// ErrDimensionMismatch if a destination block has the wrong shape.
	Jacobians(ji, jj *mat.Dense) error
}
