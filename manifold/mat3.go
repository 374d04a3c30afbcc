package manifold

import "gonum.org/v1/gonum/spatial/r3"

// Mat3 is a 3×3 matrix of float64 stored column-major: entry (row, col)
// lives at index 3*col+row. Rotation matrices, skew matrices and general
// 3×3 products all use this one representation so that flattening a Mat3
// is already the column-major 9-vector the derivative kernel expects.
type Mat3 [9]float64

// Mat3Identity returns the 3×3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the entry at (row, col).
// Panics on indices outside [0,3): an out-of-range index is a programmer
// error, not a recoverable condition.
// Complexity: O(1).
func (m Mat3) At(row, col int) float64 {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic("manifold: Mat3 index out of range")
	}

	return m[3*col+row]
}

// set assigns the entry at (row, col). Internal: all constructors validate
// their own indices.
func (m *Mat3) set(row, col int, v float64) {
	m[3*col+row] = v
}

// Mul returns the matrix product m·b.
// Complexity: O(1) — fixed 27 multiply-adds.
func (m Mat3) Mul(b Mat3) Mat3 {
	var p Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			p[3*col+row] = m[row]*b[3*col] + m[3+row]*b[3*col+1] + m[6+row]*b[3*col+2]
		}
	}

	return p
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Scale returns m with every entry multiplied by s.
func (m Mat3) Scale(s float64) Mat3 {
	var p Mat3
	for i := range m {
		p[i] = s * m[i]
	}

	return p
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3) MulVec(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Skew returns the cross-product matrix [v]× such that Skew(v)·u == v×u.
func Skew(v r3.Vec) Mat3 {
	// column-major: col0=(0,z,-y), col1=(-z,0,x), col2=(y,-x,0)
	return Mat3{
		0, v.Z, -v.Y,
		-v.Z, 0, v.X,
		v.Y, -v.X, 0,
	}
}

// skewBasis holds [e_x]×, [e_y]×, [e_z]× — the generators used by the
// rotation chain rule in the closed-form edge Jacobians.
var skewBasis = [3]Mat3{
	Skew(r3.Vec{X: 1}),
	Skew(r3.Vec{Y: 1}),
	Skew(r3.Vec{Z: 1}),
}

// SkewBasis returns [e_axis]× for axis in {0,1,2}.
// Panics on an out-of-range axis (programmer error).
func SkewBasis(axis int) Mat3 {
	if axis < 0 || axis > 2 {
		panic("manifold: skew basis axis out of range")
	}

	return skewBasis[axis]
}
