package manifold

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Isometry is a rigid transform of 3-space: a rotation R followed by a
// translation T. It is a value type; Compose, Inverse and Apply never
// mutate their receiver.
type Isometry struct {
	// R is the orthonormal rotation part.
	R Mat3

	// T is the translation part.
	T r3.Vec
}

// IsometryIdentity returns the identity transform.
func IsometryIdentity() Isometry {
	return Isometry{R: Mat3Identity()}
}

// Compose returns the transform a∘b, i.e. b applied first, then a.
func (a Isometry) Compose(b Isometry) Isometry {
	return Isometry{
		R: a.R.Mul(b.R),
		T: r3.Add(a.R.MulVec(b.T), a.T),
	}
}

// Inverse returns the transform a⁻¹ such that a∘a⁻¹ is the identity.
func (a Isometry) Inverse() Isometry {
	rt := a.R.Transpose()

	return Isometry{
		R: rt,
		T: rt.MulVec(r3.Scale(-1, a.T)),
	}
}

// Apply maps the point p through the transform: a.R·p + a.T.
func (a Isometry) Apply(p r3.Vec) r3.Vec {
	return r3.Add(a.R.MulVec(p), a.T)
}

// IsometryFromTangent maps a minimal 6-vector [tx ty tz qx qy qz] to the
// rigid-transform increment it generates. The rotation part comes from the
// unit quaternion with imaginary parts (qx,qy,qz) and non-negative real
// part sqrt(1−qx²−qy²−qz²) (re-normalized if the imaginary norm exceeds 1).
//
// The increment is assembled symmetrically around the half rotation h with
// h·h = q: rotation R(h)·R(h), translation R(h)·t. This form makes
// IsometryFromTangent(−delta) the exact algebraic inverse of
// IsometryFromTangent(delta) — composing the two collapses to round-off,
// not to a first-order approximation — which the perturb-then-restore
// discipline of numeric differentiation depends on. Along single tangent
// coordinates the increment coincides with the plain quaternion-translation
// convention, so closed-form Jacobians derived for that convention stay
// valid.
//
// For delta → 0 the increment converges to (and at zero exactly equals)
// the identity transform.
func IsometryFromTangent(delta [6]float64) Isometry {
	t := r3.Vec{X: delta[0], Y: delta[1], Z: delta[2]}
	v := r3.Vec{X: delta[3], Y: delta[4], Z: delta[5]}

	q := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	if n2 := v.X*v.X + v.Y*v.Y + v.Z*v.Z; n2 > 1 {
		// imaginary part alone exceeds a unit quaternion: project back
		q = quat.Scale(1/math.Sqrt(n2), q)
	} else {
		q.Real = math.Sqrt(1 - n2)
	}

	// h = sqrt(q): guaranteed well-defined since q.Real >= 0.
	h := quat.Number{Real: q.Real + 1, Imag: q.Imag, Jmag: q.Jmag, Kmag: q.Kmag}
	h = quat.Scale(1/quat.Abs(h), h)
	rh := RotationFromQuat(h)

	return Isometry{
		R: RotationFromQuat(quat.Mul(h, h)),
		T: rh.MulVec(t),
	}
}

// Minimal returns the minimal 6-vector [tx ty tz qx qy qz] of the
// transform: the translation followed by the imaginary parts of the
// rotation's unit quaternion under the non-negative-real-part convention.
// This is the error parameterization used by the SE3 edge.
func (a Isometry) Minimal() [6]float64 {
	q := QuatFromRotation(a.R)

	return [6]float64{a.T.X, a.T.Y, a.T.Z, q.Imag, q.Jmag, q.Kmag}
}
