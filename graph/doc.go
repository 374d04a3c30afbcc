// Package graph defines the state-vertex and measurement-edge contracts of
// the factor graph, plus the concrete SLAM3D types built on them.
//
// A Vertex owns a manifold-valued estimate of fixed intrinsic dimension
// (6 for a rigid transform, 3 for a point) and is mutated only through its
// Oplus operation, which applies a minimal tangent-space perturbation in
// place. Push/Pop snapshot and restore the estimate so a caller can perturb
// under a strict perturb-then-restore discipline.
//
// An Edge binds exactly two vertices (slots i and j), a measurement of
// fixed dimension, and a symmetric positive-definite information matrix.
// Edges hold non-owning references to their vertices; the owning graph
// structure must keep every referenced vertex alive for the duration of an
// evaluation (referential integrity is not re-checked here).
//
// Closed-form differentiation is a capability, not an override: an edge
// that can produce its Jacobians analytically implements AnalyticEdge as a
// distinct named operation, so analytic and numeric evaluation are two
// separate functions that can be compared directly.
//
// Concrete types:
//
//	VertexSE3       — rigid transform state, D=6
//	VertexPointXYZ  — Euclidean point state, D=3
//	EdgeSE3         — relative transform between two SE3 vertices, De=6
//	EdgePointXYZ    — displacement between two point vertices, De=3
//	EdgeSE3PointXYZ — landmark observed in a pose frame, De=3
package graph
