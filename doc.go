// Package factorgraph is the linearization core of a graph-based nonlinear
// least-squares optimizer for pose-graph and landmark estimation.
//
// 🚀 What is factorgraph?
//
//	A small, deterministic library that turns factor-graph edges into the
//	Jacobian blocks a sparse optimizer consumes:
//		• State vertices on non-Euclidean manifolds (rigid transforms, points)
//		• Binary measurement edges with information (precision) matrices
//		• A reusable, pre-sized Jacobian workspace (no per-iteration allocation)
//		• Analytic and central-difference numeric linearization that must agree
//
// ✨ Why choose factorgraph?
//
//   - Closed-form derivatives cross-validated against numeric differentiation
//   - Explicit errors for every caller mistake — never silently wrong numbers
//   - Pure computation: no goroutines, no hidden state, deterministic output
//
// Everything is organized under three subpackages:
//
//	manifold/  — SE(3)/SO(3) primitives, quaternion conversions, and the
//	             quaternion-from-rotation derivative kernel
//	graph/     — Vertex and Edge contracts plus the SLAM3D vertex/edge types
//	linearize/ — the Jacobian workspace and the per-edge dispatcher
//
// The surrounding optimizer (trust-region loop, sparse solver, graph storage,
// serialization) is an external collaborator: it sizes and allocates a
// workspace once per graph topology, then asks the dispatcher to fill it for
// every edge, reading the blocks back to assemble Jᵀ·Ω·J and Jᵀ·Ω·e.
//
//	go get github.com/go-factorgraph/factorgraph
package factorgraph
