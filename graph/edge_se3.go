package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// EdgeSE3 measures the relative rigid transform between two SE3 vertices.
// Its error is the minimal 6-vector of Δ = Z⁻¹·Xi⁻¹·Xj: the measurement
// error is zero exactly when the measured transform Z equals the relative
// transform Xi⁻¹·Xj of the current estimates.
type EdgeSE3 struct {
	vi, vj *VertexSE3
	z      manifold.Isometry // measurement
	zInv   manifold.Isometry // cached Z⁻¹, used by every evaluation
	info   *mat.SymDense     // 6×6 precision
}

// NewEdgeSE3 binds the two vertices with measurement z and the 6×6
// symmetric positive-definite information matrix info. Dimension and
// definiteness are validated here, once; evaluation trusts them.
func NewEdgeSE3(vi, vj *VertexSE3, z manifold.Isometry, info *mat.SymDense) (*EdgeSE3, error) {
	if vi == nil || vj == nil {
		return nil, fmt.Errorf("NewEdgeSE3: %w", ErrNilVertex)
	}
	if err := validateInformation(info, DimSE3); err != nil {
		return nil, fmt.Errorf("NewEdgeSE3: %w", err)
	}

	return &EdgeSE3{vi: vi, vj: vj, z: z, zInv: z.Inverse(), info: info}, nil
}

// Dimension returns 6.
func (e *EdgeSE3) Dimension() int { return DimSE3 }

// Vertex returns the endpoint in slot s, or nil for an out-of-range slot.
func (e *EdgeSE3) Vertex(s Slot) Vertex {
	switch s {
	case SlotI:
		return e.vi
	case SlotJ:
		return e.vj
	}

	return nil
}

// Information returns the 6×6 precision matrix of the measurement.
func (e *EdgeSE3) Information() *mat.SymDense { return e.info }

// Measurement returns the measured relative transform Z.
func (e *EdgeSE3) Measurement() manifold.Isometry { return e.z }

// SetMeasurement re-targets the edge to the measurement z.
func (e *EdgeSE3) SetMeasurement(z manifold.Isometry) {
	e.z = z
	e.zInv = z.Inverse()
}

// Error writes the minimal 6-vector of Z⁻¹·Xi⁻¹·Xj into dst.
func (e *EdgeSE3) Error(dst []float64) error {
	if len(dst) != DimSE3 {
		return fmt.Errorf("EdgeSE3.Error: dst length %d: %w", len(dst), ErrDimensionMismatch)
	}
	delta := e.zInv.Compose(e.vi.Estimate().Inverse()).Compose(e.vj.Estimate())
	m := delta.Minimal()
	copy(dst, m[:])

	return nil
}

// Jacobians writes the closed-form 6×6 derivative blocks of the error with
// respect to the tangent perturbations of Xi and Xj.
//
// With A = Z⁻¹, B = Xi⁻¹·Xj, E = A·B, Ra = rot(A), Rb = rot(B),
// tb = trans(B), Re = rot(E), and perturbations composed on the right of
// each vertex, the blocks are
//
//	∂et/∂ti = −Ra            ∂et/∂qi = Ra·(2[tb]×)
//	∂er/∂ti = 0              ∂er/∂qi = dq/dR(Re) · vec(Ra·(−2[e_c]×)·Rb)
//	∂et/∂tj = Re             ∂et/∂qj = 0
//	∂er/∂tj = 0              ∂er/∂qj = dq/dR(Re) · vec(Re·(2[e_c]×))
//
// where vec(·) flattens column-major and c ranges over the three rotation
// coordinates. The factors of 2 come from the derivative of the unit
// quaternion's rotation matrix at the identity perturbation.
func (e *EdgeSE3) Jacobians(ji, jj *mat.Dense) error {
	if err := checkBlock(ji, DimSE3, DimSE3); err != nil {
		return fmt.Errorf("EdgeSE3.Jacobians: slot i: %w", err)
	}
	if err := checkBlock(jj, DimSE3, DimSE3); err != nil {
		return fmt.Errorf("EdgeSE3.Jacobians: slot j: %w", err)
	}

	a := e.zInv
	b := e.vi.Estimate().Inverse().Compose(e.vj.Estimate())
	ra, rb, tb := a.R, b.R, b.T
	re := ra.Mul(rb)
	dq := manifold.DQuatDRotation(re)

	ji.Zero()
	jj.Zero()

	tskew := ra.Mul(manifold.Skew(tb).Scale(2))
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			ji.Set(r, c, -ra.At(r, c))     // ∂et/∂ti
			ji.Set(r, 3+c, tskew.At(r, c)) // ∂et/∂qi
			jj.Set(r, c, re.At(r, c))      // ∂et/∂tj
		}
	}

	// Rotation rows: chain the 3×9 quaternion kernel through the
	// column-major flattening of each generator product.
	for c := 0; c < 3; c++ {
		gi := ra.Mul(manifold.SkewBasis(c).Scale(-2)).Mul(rb)
		gj := re.Mul(manifold.SkewBasis(c).Scale(2))
		for r := 0; r < 3; r++ {
			var si, sj float64
			for idx := 0; idx < 9; idx++ {
				si += dq.At(r, idx) * gi[idx]
				sj += dq.At(r, idx) * gj[idx]
			}
			ji.Set(3+r, 3+c, si)
			jj.Set(3+r, 3+c, sj)
		}
	}

	return nil
}
