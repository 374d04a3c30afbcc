package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DQuatDRotation returns the 3×9 Jacobian of the imaginary quaternion
// components extracted by QuatFromRotation with respect to the nine
// rotation-matrix entries. Row q ∈ {x,y,z} and column 3*col+row follow the
// column-major entry order of Mat3, so flattening a Mat3 gives exactly the
// 9-vector this Jacobian multiplies.
//
// The closed form differentiates each branch of QuatFromRotation,
// including the propagation of the sign flip that restores the
// non-negative-real-part convention. It is exact away from the switching
// boundary of the branches (trace crossing zero, diagonal-dominance ties,
// real part crossing zero), where the extraction itself is non-smooth; the
// boundary is a measure-zero set that generically sampled rotations do not
// hit.
func DQuatDRotation(m Mat3) *mat.Dense {
	d := mat.NewDense(3, 9, nil)

	if t := m.Trace(); t > 0 {
		// q_row = a_row · f(t) with f = 0.5/sqrt(t+1) and a_row built from
		// the antisymmetric part of m.
		s := math.Sqrt(t + 1)
		f := 0.5 / s
		dfdt := -0.25 / (s * (t + 1))

		a := [3]float64{
			m.At(2, 1) - m.At(1, 2),
			m.At(0, 2) - m.At(2, 0),
			m.At(1, 0) - m.At(0, 1),
		}
		for row := 0; row < 3; row++ {
			// the trace enters through f on every diagonal entry
			d.Set(row, colOf(0, 0), a[row]*dfdt)
			d.Set(row, colOf(1, 1), a[row]*dfdt)
			d.Set(row, colOf(2, 2), a[row]*dfdt)
		}
		d.Set(0, colOf(2, 1), f)
		d.Set(0, colOf(1, 2), -f)
		d.Set(1, colOf(0, 2), f)
		d.Set(1, colOf(2, 0), -f)
		d.Set(2, colOf(1, 0), f)
		d.Set(2, colOf(0, 1), -f)

		return d
	}

	// Diagonal-dominance branch: same index selection as QuatFromRotation.
	i := 0
	if m.At(1, 1) > m.At(0, 0) {
		i = 1
	}
	if m.At(2, 2) > m.At(i, i) {
		i = 2
	}
	j := (i + 1) % 3
	k := (j + 1) % 3

	u := m.At(i, i) - m.At(j, j) - m.At(k, k) + 1
	s := math.Sqrt(u)
	f := 0.5 / s
	dfdu := -0.25 / (s * u)

	aj := m.At(j, i) + m.At(i, j)
	ak := m.At(k, i) + m.At(i, k)

	sign := 1.0
	if w := (m.At(k, j) - m.At(j, k)) * f; w < 0 {
		// QuatFromRotation negates the whole quaternion here; the flip is
		// locally constant, so it scales every partial derivative.
		sign = -1
	}

	// row i: q_i = sign · 0.5·sqrt(u)
	d.Set(i, colOf(i, i), sign*0.25/s)
	d.Set(i, colOf(j, j), -sign*0.25/s)
	d.Set(i, colOf(k, k), -sign*0.25/s)

	// row j: q_j = sign · (m(j,i)+m(i,j)) · f(u)
	d.Set(j, colOf(j, i), sign*f)
	d.Set(j, colOf(i, j), sign*f)
	d.Set(j, colOf(i, i), sign*aj*dfdu)
	d.Set(j, colOf(j, j), -sign*aj*dfdu)
	d.Set(j, colOf(k, k), -sign*aj*dfdu)

	// row k: q_k = sign · (m(k,i)+m(i,k)) · f(u)
	d.Set(k, colOf(k, i), sign*f)
	d.Set(k, colOf(i, k), sign*f)
	d.Set(k, colOf(i, i), sign*ak*dfdu)
	d.Set(k, colOf(j, j), -sign*ak*dfdu)
	d.Set(k, colOf(k, k), -sign*ak*dfdu)

	return d
}

// colOf maps a Mat3 entry (row, col) to its column in the 3×9 Jacobian.
func colOf(row, col int) int {
	return 3*col + row
}
