// SPDX-License-Identifier: MIT

// Package linearize holds the per-edge Jacobian machinery of the
// optimizer: a reusable, pre-sized workspace for the derivative blocks and
// the dispatcher that fills it, either from an edge's closed form or by
// central-difference numeric differentiation.
//
// Per linearization pass the caller follows a strict order:
//
//	w := linearize.NewWorkspace()
//	_ = w.UpdateSize(edges...) // once per structural change of the graph
//	_ = w.Allocate()           // commit backing storage
//	for _, e := range edges {
//	    _ = linearize.Evaluate(e, w)
//	    ji, _ := w.BlockFor(graph.SlotI) // De × Dim(v_i)
//	    jj, _ := w.BlockFor(graph.SlotJ) // De × Dim(v_j)
//	    // assemble Jᵀ·Ω·J and Jᵀ·Ω·e from the blocks
//	}
//
// Evaluating before UpdateSize+Allocate is a caller error and fails with an
// explicit sentinel — never with silently wrong numbers. Sizing mid-pass is
// disallowed: growing the workspace invalidates the allocation and requires
// a fresh Allocate before further evaluation.
//
// Everything here is single-threaded and synchronous: one workspace serves
// one sequential stream of evaluations. Pass can fan evaluations out across
// workers, in which case every worker owns a private workspace; the
// workspace itself is never shared across concurrent evaluations. Vertex
// estimates are shared, so a parallel pass guards them with a single
// read-write lock: analytic evaluations read concurrently, numeric
// evaluations perturb the estimates in place and run exclusively.
//
// The analytic and numeric paths are two distinct named operations
// (EvaluateAnalytic, EvaluateNumeric), so cross-validating a closed form
// against central differences is a direct two-function comparison rather
// than a runtime switch.
package linearize
