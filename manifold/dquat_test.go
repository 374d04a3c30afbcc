package manifold_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/go-factorgraph/factorgraph/manifold"
)

// numericDQuat approximates the 3×9 quaternion-from-rotation derivative by
// central differences of QuatFromRotation over each matrix entry (the
// scalar function is a plain formula in the 9 inputs, so differencing the
// slightly non-orthonormal perturbed matrices is well defined).
func numericDQuat(m manifold.Mat3, h float64) *mat.Dense {
	d := mat.NewDense(3, 9, nil)
	for idx := 0; idx < 9; idx++ {
		plus, minus := m, m
		plus[idx] += h
		minus[idx] -= h

		qp := manifold.QuatFromRotation(plus)
		qm := manifold.QuatFromRotation(minus)
		d.Set(0, idx, (qp.Imag-qm.Imag)/(2*h))
		d.Set(1, idx, (qp.Jmag-qm.Jmag)/(2*h))
		d.Set(2, idx, (qp.Kmag-qm.Kmag)/(2*h))
	}

	return d
}

// nearBranchBoundary reports whether m sits so close to a switching
// boundary of the extraction (trace crossing zero, diagonal-dominance tie,
// real part crossing zero) that a finite-difference step could land the
// two evaluations in different branches. The derivative contract only
// covers generically sampled rotations away from this measure-zero set.
func nearBranchBoundary(m manifold.Mat3, tol float64) bool {
	t := m.Trace()
	if math.Abs(t) < tol {
		return true
	}
	if t > 0 {
		return false
	}

	i := 0
	if m.At(1, 1) > m.At(0, 0) {
		i = 1
	}
	if m.At(2, 2) > m.At(i, i) {
		i = 2
	}
	for d := 0; d < 3; d++ {
		if d != i && m.At(i, i)-m.At(d, d) < tol {
			return true // diagonal-dominance tie
		}
	}
	j := (i + 1) % 3
	k := (j + 1) % 3
	s := math.Sqrt(m.At(i, i) - m.At(j, j) - m.At(k, k) + 1)
	w := (m.At(k, j) - m.At(j, k)) * 0.5 / s

	return math.Abs(w) < tol // sign-flip threshold
}

// assertDQuatMatches compares the closed form against the numeric
// reference element-wise.
func assertDQuatMatches(t *testing.T, m manifold.Mat3, tol float64) {
	t.Helper()
	analytic := manifold.DQuatDRotation(m)
	numeric := numericDQuat(m, 1e-5)
	for r := 0; r < 3; r++ {
		for c := 0; c < 9; c++ {
			require.InDelta(t, numeric.At(r, c), analytic.At(r, c), tol,
				"row %d col %d", r, c)
		}
	}
}

// TestDQuatDRotation_MatchesNumeric is the acceptance bar of the kernel:
// 10000 generically sampled rotations, closed form vs central differences,
// max absolute error below 1e-7.
func TestDQuatDRotation_MatchesNumeric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for k := 0; k < 10000; k++ {
		r := randRotation(rng)
		for nearBranchBoundary(r, 1e-3) {
			r = randRotation(rng)
		}
		assertDQuatMatches(t, r, 1e-7)
	}
}

// TestDQuatDRotation_Branches pins every branch of the case split with a
// dedicated rotation; random sampling almost never visits the rare ones
// densely enough.
func TestDQuatDRotation_Branches(t *testing.T) {
	cases := []struct {
		name  string
		axis  r3.Vec
		angle float64
	}{
		{name: "trace positive", axis: r3.Vec{X: 1, Y: 2, Z: 3}, angle: 0.3},
		{name: "identity", axis: r3.Vec{X: 1}, angle: 0},
		{name: "diag dominant x", axis: r3.Vec{X: 1}, angle: 2.8},
		{name: "diag dominant y", axis: r3.Vec{Y: 1}, angle: 2.8},
		{name: "diag dominant z", axis: r3.Vec{Z: 1}, angle: 2.8},
		{name: "sign flip", axis: r3.Vec{X: 1}, angle: math.Pi + 0.6},
		{name: "sign flip skewed axis", axis: r3.Vec{X: 1, Y: 0.5, Z: -0.25}, angle: math.Pi + 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := manifold.RotationFromAxisAngle(tc.axis, tc.angle)
			require.False(t, nearBranchBoundary(r, 1e-3),
				"branch case must sit clear of the switching boundary")
			assertDQuatMatches(t, r, 1e-7)
		})
	}
}

// TestDQuatDRotation_Shape checks the fixed 3×9 result shape.
func TestDQuatDRotation_Shape(t *testing.T) {
	r, c := manifold.DQuatDRotation(manifold.Mat3Identity()).Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 9, c)
}
