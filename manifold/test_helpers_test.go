// Package manifold_test contains shared fixtures for the manifold tests:
// deterministic random rotations/transforms sampled the way the validation
// harness prescribes (axis-angle from a random 3-vector).
package manifold_test

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// randUnitCube returns a vector with components uniform in [-1, 1).
func randUnitCube(rng *rand.Rand) r3.Vec {
	return r3.Vec{
		X: 2*rng.Float64() - 1,
		Y: 2*rng.Float64() - 1,
		Z: 2*rng.Float64() - 1,
	}
}

// randRotation samples a generic rotation: the sum of two random cube
// vectors interpreted as axis-angle (direction = axis, norm = angle).
func randRotation(rng *rand.Rand) manifold.Mat3 {
	aa := r3.Add(randUnitCube(rng), randUnitCube(rng))

	return manifold.RotationFromAxisAngle(aa, r3.Norm(aa))
}

// randIsometry samples a generic rigid transform: random rotation, random
// cube translation.
func randIsometry(rng *rand.Rand) manifold.Isometry {
	return manifold.Isometry{R: randRotation(rng), T: randUnitCube(rng)}
}

// maxAbsDiff returns the largest absolute element-wise difference of two
// 3×3 matrices.
func maxAbsDiff(a, b manifold.Mat3) float64 {
	var m float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
	}

	return m
}
