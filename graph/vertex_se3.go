package graph

import (
	"fmt"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// DimSE3 is the intrinsic (and tangent) dimension of a rigid transform.
const DimSE3 = 6

// VertexSE3 is a state vertex holding a 3D rigid transform. Its tangent
// space is the minimal 6-vector [tx ty tz qx qy qz] consumed by
// manifold.IsometryFromTangent; Oplus composes the generated increment on
// the right of the current estimate.
type VertexSE3 struct {
	id       int64
	estimate manifold.Isometry
	stack    []manifold.Isometry
}

// NewVertexSE3 creates a rigid-transform vertex with the given identity and
// initial estimate.
func NewVertexSE3(id int64, estimate manifold.Isometry) *VertexSE3 {
	return &VertexSE3{id: id, estimate: estimate}
}

// ID returns the vertex identity.
func (v *VertexSE3) ID() int64 { return v.id }

// Dimension returns 6.
func (v *VertexSE3) Dimension() int { return DimSE3 }

// Estimate returns the current rigid-transform estimate.
func (v *VertexSE3) Estimate() manifold.Isometry { return v.estimate }

// Oplus perturbs the estimate in place by composing the increment generated
// from delta on the right. Oplus(delta) then Oplus(-delta) restores the
// estimate to round-off (the increment construction guarantees an exact
// algebraic inverse).
func (v *VertexSE3) Oplus(delta []float64) error {
	if len(delta) != DimSE3 {
		return fmt.Errorf("VertexSE3.Oplus: delta length %d: %w", len(delta), ErrDimensionMismatch)
	}
	var d [DimSE3]float64
	copy(d[:], delta)
	v.estimate = v.estimate.Compose(manifold.IsometryFromTangent(d))

	return nil
}

// Push snapshots the current estimate.
func (v *VertexSE3) Push() {
	v.stack = append(v.stack, v.estimate)
}

// Pop restores the most recently pushed estimate.
func (v *VertexSE3) Pop() error {
	if len(v.stack) == 0 {
		return fmt.Errorf("VertexSE3.Pop: %w", ErrEmptyStack)
	}
	v.estimate = v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]

	return nil
}
