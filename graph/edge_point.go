package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// EdgePointXYZ measures the displacement between two point vertices.
// Its error is (pj − pi) − z.
type EdgePointXYZ struct {
	vi, vj *VertexPointXYZ
	z      r3.Vec        // measured displacement
	info   *mat.SymDense // 3×3 precision
}

// NewEdgePointXYZ binds the two point vertices with measurement z and the
// 3×3 symmetric positive-definite information matrix info.
func NewEdgePointXYZ(vi, vj *VertexPointXYZ, z r3.Vec, info *mat.SymDense) (*EdgePointXYZ, error) {
	if vi == nil || vj == nil {
		return nil, fmt.Errorf("NewEdgePointXYZ: %w", ErrNilVertex)
	}
	if err := validateInformation(info, DimPointXYZ); err != nil {
		return nil, fmt.Errorf("NewEdgePointXYZ: %w", err)
	}

	return &EdgePointXYZ{vi: vi, vj: vj, z: z, info: info}, nil
}

// Dimension returns 3.
func (e *EdgePointXYZ) Dimension() int { return DimPointXYZ }

// Vertex returns the endpoint in slot s, or nil for an out-of-range slot.
func (e *EdgePointXYZ) Vertex(s Slot) Vertex {
	switch s {
	case SlotI:
		return e.vi
	case SlotJ:
		return e.vj
	}

	return nil
}

// Information returns the 3×3 precision matrix of the measurement.
func (e *EdgePointXYZ) Information() *mat.SymDense { return e.info }

// Measurement returns the measured displacement.
func (e *EdgePointXYZ) Measurement() r3.Vec { return e.z }

// SetMeasurement re-targets the edge to the measurement z.
func (e *EdgePointXYZ) SetMeasurement(z r3.Vec) { e.z = z }

// Error writes (pj − pi) − z into dst.
func (e *EdgePointXYZ) Error(dst []float64) error {
	if len(dst) != DimPointXYZ {
		return fmt.Errorf("EdgePointXYZ.Error: dst length %d: %w", len(dst), ErrDimensionMismatch)
	}
	d := r3.Sub(r3.Sub(e.vj.Estimate(), e.vi.Estimate()), e.z)
	dst[0], dst[1], dst[2] = d.X, d.Y, d.Z

	return nil
}

// Jacobians writes the closed-form 3×3 blocks: the error is linear in both
// endpoints, so ∂e/∂pi = −I and ∂e/∂pj = +I independent of the estimates.
func (e *EdgePointXYZ) Jacobians(ji, jj *mat.Dense) error {
	if err := checkBlock(ji, DimPointXYZ, DimPointXYZ); err != nil {
		return fmt.Errorf("EdgePointXYZ.Jacobians: slot i: %w", err)
	}
	if err := checkBlock(jj, DimPointXYZ, DimPointXYZ); err != nil {
		return fmt.Errorf("EdgePointXYZ.Jacobians: slot j: %w", err)
	}

	ji.Zero()
	jj.Zero()
	for d := 0; d < DimPointXYZ; d++ {
		ji.Set(d, d, -1)
		jj.Set(d, d, 1)
	}

	return nil
}
