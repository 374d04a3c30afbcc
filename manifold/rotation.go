package manifold

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotationFromQuat returns the rotation matrix of the quaternion q.
// q is normalized internally, so any non-zero quaternion is accepted.
//
// The entry formulas are arranged so that RotationFromQuat(conj(q)) is the
// bit-exact transpose of RotationFromQuat(q); the exact-inverse guarantee of
// IsometryFromTangent relies on this.
func RotationFromQuat(q quat.Number) Mat3 {
	n := quat.Abs(q)
	w, x, y, z := q.Real/n, q.Imag/n, q.Jmag/n, q.Kmag/n

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	var m Mat3
	m.set(0, 0, 1-2*(yy+zz))
	m.set(0, 1, 2*(xy-wz))
	m.set(0, 2, 2*(xz+wy))
	m.set(1, 0, 2*(xy+wz))
	m.set(1, 1, 1-2*(xx+zz))
	m.set(1, 2, 2*(yz-wx))
	m.set(2, 0, 2*(xz-wy))
	m.set(2, 1, 2*(yz+wx))
	m.set(2, 2, 1-2*(xx+yy))

	return m
}

// RotationFromAxisAngle returns the rotation by angle (radians) about axis
// via the Rodrigues formula R = I + sin(θ)·[k]× + (1−cos(θ))·[k]×².
// The axis is normalized internally; a zero axis yields the identity.
func RotationFromAxisAngle(axis r3.Vec, angle float64) Mat3 {
	n := r3.Norm(axis)
	if n == 0 {
		return Mat3Identity()
	}
	k := Skew(r3.Scale(1/n, axis))

	sin, cos := math.Sincos(angle)
	m := Mat3Identity()
	k2 := k.Mul(k)
	for i := range m {
		m[i] += sin*k[i] + (1-cos)*k2[i]
	}

	return m
}

// QuatFromRotation extracts the unit quaternion of the rotation matrix m,
// normalized to the manifold convention that the real part is non-negative.
//
// The extraction branches on the trace:
//
//   - trace(m) > 0: the imaginary parts come from the antisymmetric part of
//     m scaled by 0.5/sqrt(trace+1); the real part is positive by
//     construction, so no sign fix is needed.
//   - otherwise: pick the index i of the largest diagonal entry (scanning
//     0→1→2, keeping the first strict improvement), derive the dominant
//     component from m(i,i)−m(j,j)−m(k,k)+1 with j=(i+1)%3, k=(j+1)%3, the
//     remaining two from off-diagonal sums, and the real part from
//     m(k,j)−m(j,k); if that real part is negative the whole quaternion is
//     negated to restore the convention.
//
// The case split makes the function non-smooth exactly at the switching
// boundary; see DQuatDRotation for the matching derivative.
func QuatFromRotation(m Mat3) quat.Number {
	if t := m.Trace(); t > 0 {
		s := math.Sqrt(t + 1)
		f := 0.5 / s

		return quat.Number{
			Real: 0.5 * s,
			Imag: (m.At(2, 1) - m.At(1, 2)) * f,
			Jmag: (m.At(0, 2) - m.At(2, 0)) * f,
			Kmag: (m.At(1, 0) - m.At(0, 1)) * f,
		}
	}

	i := 0
	if m.At(1, 1) > m.At(0, 0) {
		i = 1
	}
	if m.At(2, 2) > m.At(i, i) {
		i = 2
	}
	j := (i + 1) % 3
	k := (j + 1) % 3

	s := math.Sqrt(m.At(i, i) - m.At(j, j) - m.At(k, k) + 1)
	f := 0.5 / s

	var im [3]float64
	im[i] = 0.5 * s
	im[j] = (m.At(j, i) + m.At(i, j)) * f
	im[k] = (m.At(k, i) + m.At(i, k)) * f
	w := (m.At(k, j) - m.At(j, k)) * f
	if w < 0 {
		// normalize to the manifold: flip to the antipodal quaternion
		w = -w
		im[0], im[1], im[2] = -im[0], -im[1], -im[2]
	}

	return quat.Number{Real: w, Imag: im[0], Jmag: im[1], Kmag: im[2]}
}
