package manifold_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// assertIsometryNear asserts two transforms agree element-wise within tol.
func assertIsometryNear(t *testing.T, want, got manifold.Isometry, tol float64) {
	t.Helper()
	assert.InDelta(t, 0, maxAbsDiff(want.R, got.R), tol, "rotation part")
	assert.InDelta(t, want.T.X, got.T.X, tol, "translation x")
	assert.InDelta(t, want.T.Y, got.T.Y, tol, "translation y")
	assert.InDelta(t, want.T.Z, got.T.Z, tol, "translation z")
}

// TestIsometry_ComposeInverse verifies a∘a⁻¹ = identity on random
// transforms.
func TestIsometry_ComposeInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for k := 0; k < 1000; k++ {
		a := randIsometry(rng)
		assertIsometryNear(t, manifold.IsometryIdentity(), a.Compose(a.Inverse()), 1e-12)
		assertIsometryNear(t, manifold.IsometryIdentity(), a.Inverse().Compose(a), 1e-12)
	}
}

// TestIsometry_Apply checks point mapping against Compose with a pure
// translation.
func TestIsometry_Apply(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for k := 0; k < 100; k++ {
		a := randIsometry(rng)
		p := randUnitCube(rng)

		got := a.Apply(p)
		want := a.Compose(manifold.Isometry{R: manifold.Mat3Identity(), T: p}).T
		assert.InDelta(t, want.X, got.X, 1e-14)
		assert.InDelta(t, want.Y, got.Y, 1e-14)
		assert.InDelta(t, want.Z, got.Z, 1e-14)
	}
}

// TestIsometryFromTangent_Zero verifies the zero tangent maps to the exact
// identity, bit for bit.
func TestIsometryFromTangent_Zero(t *testing.T) {
	assert.Equal(t, manifold.IsometryIdentity(), manifold.IsometryFromTangent([6]float64{}))
}

// TestIsometryFromTangent_ExactInverse is the invertibility contract: the
// increments of delta and -delta cancel to round-off — an exact algebraic
// inverse, not a first-order one — even for deltas far outside the
// small-perturbation regime.
func TestIsometryFromTangent_ExactInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for k := 0; k < 10000; k++ {
		var delta, neg [6]float64
		for c := range delta {
			delta[c] = rng.Float64() - 0.5
			neg[c] = -delta[c]
		}

		d := manifold.IsometryFromTangent(delta)
		inv := manifold.IsometryFromTangent(neg)
		assertIsometryNear(t, manifold.IsometryIdentity(), d.Compose(inv), 1e-13)
		assertIsometryNear(t, manifold.IsometryIdentity(), inv.Compose(d), 1e-13)
	}
}

// TestIsometryFromTangent_Rotation verifies the increment is a proper
// rigid transform even past the unit-imaginary bound, where the quaternion
// is re-normalized.
func TestIsometryFromTangent_Rotation(t *testing.T) {
	d := manifold.IsometryFromTangent([6]float64{0.1, -0.2, 0.3, 0.9, 0.9, 0.9})
	assert.InDelta(t, 0, maxAbsDiff(d.R.Transpose().Mul(d.R), manifold.Mat3Identity()), 1e-12,
		"rotation part must stay orthonormal")
}

// TestMinimal_Identity verifies the minimal vector of the identity is zero
// and that translation passes through untouched.
func TestMinimal_Identity(t *testing.T) {
	assert.Equal(t, [6]float64{}, manifold.IsometryIdentity().Minimal())

	a := manifold.Isometry{R: manifold.Mat3Identity(), T: r3.Vec{X: 1, Y: 2, Z: 3}}
	assert.Equal(t, [6]float64{1, 2, 3, 0, 0, 0}, a.Minimal())
}

// TestMinimal_RoundTrip verifies Minimal inverts IsometryFromTangent for
// small tangents (the chart property used by the SE3 edge error).
func TestMinimal_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for k := 0; k < 1000; k++ {
		var delta [6]float64
		for c := range delta {
			delta[c] = 0.2 * (rng.Float64() - 0.5)
		}
		// the chart stores the raw translation, so compare against the
		// increment's own parts rather than the input delta
		d := manifold.IsometryFromTangent(delta)
		m := d.Minimal()
		assert.InDelta(t, d.T.X, m[0], 1e-15)
		assert.InDelta(t, d.T.Y, m[1], 1e-15)
		assert.InDelta(t, d.T.Z, m[2], 1e-15)
		assert.InDelta(t, delta[3], m[3], 1e-12, "imaginary quaternion part x")
		assert.InDelta(t, delta[4], m[4], 1e-12, "imaginary quaternion part y")
		assert.InDelta(t, delta[5], m[5], 1e-12, "imaginary quaternion part z")
	}
}
