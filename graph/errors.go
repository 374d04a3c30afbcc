package graph

import "errors"

// Sentinel errors for vertex/edge construction and evaluation. All public
// entry points return these (wrapped with context where useful); callers
// match with errors.Is.
var (
	// ErrNilVertex indicates an edge was constructed with a nil vertex.
	ErrNilVertex = errors.New("graph: nil vertex")

	// ErrNilInformation indicates an edge was constructed without an
	// information matrix.
	ErrNilInformation = errors.New("graph: nil information matrix")

	// ErrInformationShape indicates the information matrix order does not
	// match the edge's error dimension.
	ErrInformationShape = errors.New("graph: information matrix has wrong order")

	// ErrNotPositiveDefinite indicates the information matrix failed the
	// positive-definiteness check at construction.
	ErrNotPositiveDefinite = errors.New("graph: information matrix not positive definite")

	// ErrDimensionMismatch indicates a tangent delta, error buffer or
	// Jacobian block whose size does not match the declared dimension.
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrEmptyStack indicates Pop was called on a vertex with no pushed
	// estimate to restore.
	ErrEmptyStack = errors.New("graph: estimate stack is empty")
)
