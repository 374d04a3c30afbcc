package graph

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// DimPointXYZ is the intrinsic (and tangent) dimension of a Euclidean point.
const DimPointXYZ = 3

// VertexPointXYZ is a state vertex holding a Euclidean 3D point. Its
// manifold is the vector space itself: Oplus is plain vector addition, so
// the perturbation chart is exactly invertible by construction.
type VertexPointXYZ struct {
	id       int64
	estimate r3.Vec
	stack    []r3.Vec
}

// NewVertexPointXYZ creates a point vertex with the given identity and
// initial estimate.
func NewVertexPointXYZ(id int64, estimate r3.Vec) *VertexPointXYZ {
	return &VertexPointXYZ{id: id, estimate: estimate}
}

// ID returns the vertex identity.
func (v *VertexPointXYZ) ID() int64 { return v.id }

// Dimension returns 3.
func (v *VertexPointXYZ) Dimension() int { return DimPointXYZ }

// Estimate returns the current point estimate.
func (v *VertexPointXYZ) Estimate() r3.Vec { return v.estimate }

// Oplus adds delta to the estimate in place.
func (v *VertexPointXYZ) Oplus(delta []float64) error {
	if len(delta) != DimPointXYZ {
		return fmt.Errorf("VertexPointXYZ.Oplus: delta length %d: %w", len(delta), ErrDimensionMismatch)
	}
	v.estimate = r3.Add(v.estimate, r3.Vec{X: delta[0], Y: delta[1], Z: delta[2]})

	return nil
}

// Push snapshots the current estimate.
func (v *VertexPointXYZ) Push() {
	v.stack = append(v.stack, v.estimate)
}

// Pop restores the most recently pushed estimate.
func (v *VertexPointXYZ) Pop() error {
	if len(v.stack) == 0 {
		return fmt.Errorf("VertexPointXYZ.Pop: %w", ErrEmptyStack)
	}
	v.estimate = v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]

	return nil
}
