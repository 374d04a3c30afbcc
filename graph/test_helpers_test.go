// Package graph_test contains shared fixtures for the vertex/edge tests.
package graph_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
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

// randIsometry samples a generic rigid transform: axis-angle rotation from
// the sum of two random cube vectors, random cube translation.
func randIsometry(rng *rand.Rand) manifold.Isometry {
	aa := r3.Add(randUnitCube(rng), randUnitCube(rng))

	return manifold.Isometry{
		R: manifold.RotationFromAxisAngle(aa, r3.Norm(aa)),
		T: randUnitCube(rng),
	}
}

// identityInformation returns the n×n identity as a symmetric matrix, the
// simplest valid (positive definite) precision.
func identityInformation(n int) *mat.SymDense {
	info := mat.NewSymDense(n, nil)
	for d := 0; d < n; d++ {
		info.SetSym(d, d, 1)
	}

	return info
}
