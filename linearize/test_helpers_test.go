// SPDX-License-Identifier: MIT

package linearize_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/go-factorgraph/factorgraph/graph"
	"github.com/go-factorgraph/factorgraph/linearize"
	"github.com/go-factorgraph/factorgraph/manifold"
)

// randUnitCube draws a vector with coordinates uniform in [-1, 1).
func randUnitCube(rng *rand.Rand) r3.Vec {
	return r3.Vec{
		X: 2*rng.Float64() - 1,
		Y: 2*rng.Float64() - 1,
		Z: 2*rng.Float64() - 1,
	}
}

// randIsometry draws a rigid transform with a generic rotation and a
// translation inside the unit cube.
func randIsometry(rng *rand.Rand) manifold.Isometry {
	axis := r3.Add(randUnitCube(rng), randUnitCube(rng))
	angle := math.Pi * (2*rng.Float64() - 1)

	return manifold.Isometry{
		R: manifold.RotationFromAxisAngle(axis, angle),
		T: randUnitCube(rng),
	}
}

func identityInformation(n int) *mat.SymDense {
	info := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		info.SetSym(i, i, 1)
	}

	return info
}

// randEdgeSE3 draws a pose-pose edge whose relative rotation stays away
// from the half-turn, where the minimal rotation coordinates are not
// differentiable and no finite-difference reference is meaningful.
func randEdgeSE3(t *testing.T, rng *rand.Rand) *graph.EdgeSE3 {
	t.Helper()
	for {
		vi := graph.NewVertexSE3(0, randIsometry(rng))
		vj := graph.NewVertexSE3(1, randIsometry(rng))
		z := randIsometry(rng)

		e, err := graph.NewEdgeSE3(vi, vj, z, identityInformation(6))
		require.NoError(t, err)

		delta := z.Inverse().Compose(vi.Estimate().Inverse()).Compose(vj.Estimate())
		if manifold.QuatFromRotation(delta.R).Real < 1e-3 {
			continue
		}

		return e
	}
}

func randEdgePointXYZ(t *testing.T, rng *rand.Rand) *graph.EdgePointXYZ {
	t.Helper()
	vi := graph.NewVertexPointXYZ(0, randUnitCube(rng))
	vj := graph.NewVertexPointXYZ(1, randUnitCube(rng))

	e, err := graph.NewEdgePointXYZ(vi, vj, randUnitCube(rng), identityInformation(3))
	require.NoError(t, err)

	return e
}

func randEdgeSE3PointXYZ(t *testing.T, rng *rand.Rand) *graph.EdgeSE3PointXYZ {
	t.Helper()
	vi := graph.NewVertexSE3(0, randIsometry(rng))
	vj := graph.NewVertexPointXYZ(1, randUnitCube(rng))

	e, err := graph.NewEdgeSE3PointXYZ(vi, vj, randUnitCube(rng), identityInformation(3))
	require.NoError(t, err)

	return e
}

// newReadyWorkspace sizes and allocates a fresh workspace covering edges.
func newReadyWorkspace(t *testing.T, edges ...graph.Edge) *linearize.Workspace {
	t.Helper()
	w := linearize.NewWorkspace()
	require.NoError(t, w.UpdateSize(edges...))
	require.NoError(t, w.Allocate())

	return w
}

// numericOnlyEdge hides the closed-form Jacobians of the wrapped edge so
// the dispatcher's fallback path can be exercised.
type numericOnlyEdge struct {
	graph.Edge
}

// blockPair copies the two slot blocks out of a bound workspace.
func blockPair(t *testing.T, w *linearize.Workspace) (ji, jj *mat.Dense) {
	t.Helper()
	bi, err := w.BlockFor(graph.SlotI)
	require.NoError(t, err)
	bj, err := w.BlockFor(graph.SlotJ)
	require.NoError(t, err)

	ji, jj = mat.DenseCopyOf(bi), mat.DenseCopyOf(bj)

	return ji, jj
}
