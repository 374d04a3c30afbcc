// SPDX-License-Identifier: MIT

package linearize

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/go-factorgraph/factorgraph/graph"
)

// VisitFunc receives each edge right after its Jacobian blocks were
// written, with the workspace still bound to that edge. The callback reads
// the blocks (BlockFor) to assemble the caller's Hessian and gradient
// contributions; the blocks are overwritten by the next evaluation on the
// same workspace.
type VisitFunc func(e graph.Edge, w *Workspace) error

// Pass runs one linearization pass over the given edges: size, allocate,
// evaluate every edge, and hand the filled workspace to visit. With
// Options.Workers > 1 the edges are fanned out across that many workers,
// each owning an independent workspace; visit is then called concurrently
// and must synchronize its own accumulation. The first error cancels the
// remaining work.
//
// Vertex estimates are shared between workers. Analytic evaluations never
// touch them and run fully concurrent; numeric evaluations perturb each
// endpoint's estimate in place and therefore hold an exclusive lock for the
// duration of the evaluation, so a mid-perturbation estimate is never
// observable from any other evaluation. A pass over edges without closed
// forms (or with ForceNumeric set) is effectively serialized regardless of
// Workers.
func Pass(ctx context.Context, edges []graph.Edge, visit VisitFunc, opts Options) error {
	if visit == nil {
		return fmt.Errorf("Pass: %w", ErrNilVisit)
	}
	if err := opts.validate(); err != nil {
		return fmt.Errorf("Pass: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(edges) == 0 {
		return nil
	}

	if opts.Workers == 1 {
		w := NewWorkspace()
		if err := w.UpdateSize(edges...); err != nil {
			return fmt.Errorf("Pass: %w", err)
		}
		if err := w.Allocate(); err != nil {
			return fmt.Errorf("Pass: %w", err)
		}

		return run(ctx, edges, 0, 1, w, visit, opts, new(sync.RWMutex))
	}

	// One guard for every shared vertex estimate in this pass.
	estimates := new(sync.RWMutex)

	g, gctx := errgroup.WithContext(ctx)
	for k := 0; k < opts.Workers; k++ {
		k := k
		g.Go(func() error {
			w := NewWorkspace()
			if err := w.UpdateSize(edges...); err != nil {
				return fmt.Errorf("Pass: worker %d: %w", k, err)
			}
			if err := w.Allocate(); err != nil {
				return fmt.Errorf("Pass: worker %d: %w", k, err)
			}

			return run(gctx, edges, k, opts.Workers, w, visit, opts, estimates)
		})
	}

	return g.Wait()
}

// run evaluates the stride start, start+step, ... of edges into the
// worker-private workspace w.
func run(ctx context.Context, edges []graph.Edge, start, step int, w *Workspace, visit VisitFunc, opts Options, estimates *sync.RWMutex) error {
	for i := start; i < len(edges); i += step {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := edges[i]
		if err := evaluateWith(e, w, opts, estimates); err != nil {
			return err
		}
		if err := visit(e, w); err != nil {
			return err
		}
	}

	return nil
}

// evaluateWith applies the pass policy to one edge: numeric when forced,
// analytic when available, numeric fallback otherwise. Analytic evaluation
// only reads the shared estimates and takes the read side of the guard;
// numeric evaluation mutates them through Oplus/Push/Pop and takes the
// write side, excluding every concurrent evaluation until the estimates
// are restored.
func evaluateWith(e graph.Edge, w *Workspace, opts Options, estimates *sync.RWMutex) error {
	if !opts.ForceNumeric {
		if ae, ok := e.(graph.AnalyticEdge); ok {
			estimates.RLock()
			defer estimates.RUnlock()

			return EvaluateAnalytic(ae, w)
		}
	}

	estimates.Lock()
	defer estimates.Unlock()

	return EvaluateNumeric(e, w, opts.Epsilon)
}
