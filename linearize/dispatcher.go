// SPDX-License-Identifier: MIT

package linearize

import (
	"fmt"

	"github.com/go-factorgraph/factorgraph/graph"
)

// DefaultEpsilon is the central-difference step used by Evaluate's numeric
// fallback.
const DefaultEpsilon = 1e-6

// Evaluate fills the workspace with the edge's Jacobian blocks: through
// the closed form when the edge implements graph.AnalyticEdge, through
// central-difference numeric differentiation otherwise. The workspace must
// be sized and allocated for the edge's dimensions.
func Evaluate(e graph.Edge, w *Workspace) error {
	if ae, ok := e.(graph.AnalyticEdge); ok {
		return EvaluateAnalytic(ae, w)
	}

	return EvaluateNumeric(e, w, DefaultEpsilon)
}

// EvaluateAnalytic invokes the edge's closed-form derivative, writing the
// two blocks into the workspace slots for vertex i and vertex j.
func EvaluateAnalytic(e graph.AnalyticEdge, w *Workspace) error {
	if e == nil {
		return fmt.Errorf("EvaluateAnalytic: %w", ErrNilEdge)
	}
	if err := w.bind(e); err != nil {
		return fmt.Errorf("EvaluateAnalytic: %w", err)
	}
	ji, err := w.BlockFor(graph.SlotI)
	if err != nil {
		return fmt.Errorf("EvaluateAnalytic: %w", err)
	}
	jj, err := w.BlockFor(graph.SlotJ)
	if err != nil {
		return fmt.Errorf("EvaluateAnalytic: %w", err)
	}

	return e.Jacobians(ji, jj)
}

// EvaluateNumeric fills the workspace by central differences: each vertex
// is perturbed by ±epsilon along every tangent basis direction via Oplus,
// the error is evaluated at both points, and (e(+ε)−e(−ε))/(2ε) fills the
// corresponding block column. Every perturbation is scoped: the vertex
// estimate is restored from a snapshot before the next step, also on error
// paths, so no concurrent reader outside this call can ever observe a
// perturbed estimate once it returns.
func EvaluateNumeric(e graph.Edge, w *Workspace, epsilon float64) error {
	if e == nil {
		return fmt.Errorf("EvaluateNumeric: %w", ErrNilEdge)
	}
	if epsilon <= 0 {
		return fmt.Errorf("EvaluateNumeric: epsilon %g: %w", epsilon, ErrBadEpsilon)
	}
	if err := w.bind(e); err != nil {
		return fmt.Errorf("EvaluateNumeric: %w", err)
	}

	de := e.Dimension()
	ePlus := make([]float64, de)
	eMinus := make([]float64, de)
	inv := 1 / (2 * epsilon)

	for s := graph.SlotI; s <= graph.SlotJ; s++ {
		v := e.Vertex(s)
		blk, err := w.BlockFor(s)
		if err != nil {
			return fmt.Errorf("EvaluateNumeric: %w", err)
		}
		delta := make([]float64, v.Dimension())
		for c := range delta {
			delta[c] = epsilon
			if err = errorAt(e, v, delta, ePlus); err != nil {
				return fmt.Errorf("EvaluateNumeric: +eps coordinate %d: %w", c, err)
			}
			delta[c] = -epsilon
			if err = errorAt(e, v, delta, eMinus); err != nil {
				return fmt.Errorf("EvaluateNumeric: -eps coordinate %d: %w", c, err)
			}
			delta[c] = 0

			for r := 0; r < de; r++ {
				blk.Set(r, c, (ePlus[r]-eMinus[r])*inv)
			}
		}
	}

	return nil
}

// errorAt evaluates the edge error with v temporarily perturbed by delta.
// The estimate is snapshot before the perturbation and restored on every
// return path.
func errorAt(e graph.Edge, v graph.Vertex, delta, dst []float64) (err error) {
	v.Push()
	defer func() {
		if perr := v.Pop(); perr != nil && err == nil {
			err = perr
		}
	}()
	if err = v.Oplus(delta); err != nil {
		return err
	}

	return e.Error(dst)
}
