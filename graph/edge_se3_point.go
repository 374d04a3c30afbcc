package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// EdgeSE3PointXYZ measures a landmark point in the local frame of a pose:
// the error is Xi⁻¹·pj − z, where Xi is the SE3 vertex estimate, pj the
// point vertex estimate and z the observed point in the pose frame. The
// mixed endpoint dimensions (6 and 3) exercise heterogeneous Jacobian
// blocks in a workspace.
type EdgeSE3PointXYZ struct {
	vi   *VertexSE3
	vj   *VertexPointXYZ
	z    r3.Vec        // observation in the frame of vi
	info *mat.SymDense // 3×3 precision
}

// NewEdgeSE3PointXYZ binds the pose and point vertices with observation z
// and the 3×3 symmetric positive-definite information matrix info.
func NewEdgeSE3PointXYZ(vi *VertexSE3, vj *VertexPointXYZ, z r3.Vec, info *mat.SymDense) (*EdgeSE3PointXYZ, error) {
	if vi == nil || vj == nil {
		return nil, fmt.Errorf("NewEdgeSE3PointXYZ: %w", ErrNilVertex)
	}
	if err := validateInformation(info, DimPointXYZ); err != nil {
		return nil, fmt.Errorf("NewEdgeSE3PointXYZ: %w", err)
	}

	return &EdgeSE3PointXYZ{vi: vi, vj: vj, z: z, info: info}, nil
}

// Dimension returns 3.
func (e *EdgeSE3PointXYZ) Dimension() int { return DimPointXYZ }

// Vertex returns the endpoint in slot s, or nil for an out-of-range slot.
func (e *EdgeSE3PointXYZ) Vertex(s Slot) Vertex {
	switch s {
	case SlotI:
		return e.vi
	case SlotJ:
		return e.vj
	}

	return nil
}

// Information returns the 3×3 precision matrix of the observation.
func (e *EdgeSE3PointXYZ) Information() *mat.SymDense { return e.info }

// Measurement returns the observed point in the pose frame.
func (e *EdgeSE3PointXYZ) Measurement() r3.Vec { return e.z }

// SetMeasurement re-targets the edge to the observation z.
func (e *EdgeSE3PointXYZ) SetMeasurement(z r3.Vec) { e.z = z }

// Error writes Xi⁻¹·pj − z into dst.
func (e *EdgeSE3PointXYZ) Error(dst []float64) error {
	if len(dst) != DimPointXYZ {
		return fmt.Errorf("EdgeSE3PointXYZ.Error: dst length %d: %w", len(dst), ErrDimensionMismatch)
	}
	d := r3.Sub(e.vi.Estimate().Inverse().Apply(e.vj.Estimate()), e.z)
	dst[0], dst[1], dst[2] = d.X, d.Y, d.Z

	return nil
}

// Jacobians writes the closed-form blocks: with y = Xi⁻¹·pj (the landmark
// in the pose frame) and perturbations composed on the right,
//
//	∂e/∂ti = −I        ∂e/∂qi = 2[y]×        ∂e/∂pj = Riᵀ
//
// so ji is 3×6 and jj is 3×3.
func (e *EdgeSE3PointXYZ) Jacobians(ji, jj *mat.Dense) error {
	if err := checkBlock(ji, DimPointXYZ, DimSE3); err != nil {
		return fmt.Errorf("EdgeSE3PointXYZ.Jacobians: slot i: %w", err)
	}
	if err := checkBlock(jj, DimPointXYZ, DimPointXYZ); err != nil {
		return fmt.Errorf("EdgeSE3PointXYZ.Jacobians: slot j: %w", err)
	}

	y := e.vi.Estimate().Inverse().Apply(e.vj.Estimate())
	ys := manifold.Skew(y).Scale(2)
	rit := e.vi.Estimate().R.Transpose()

	ji.Zero()
	jj.Zero()
	for r := 0; r < 3; r++ {
		ji.Set(r, r, -1)
		for c := 0; c < 3; c++ {
			ji.Set(r, 3+c, ys.At(r, c))
			jj.Set(r, c, rit.At(r, c))
		}
	}

	return nil
}
