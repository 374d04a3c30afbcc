// SPDX-License-Identifier: MIT
// Package linearize: sentinel error set. Every public entry point returns
// these (wrapped with context where useful); tests match with errors.Is.

package linearize

import "errors"

var (
	// ErrNilEdge indicates an evaluation or sizing call received a nil edge.
	ErrNilEdge = errors.New("linearize: nil edge")

	// ErrNilVisit indicates Pass was called without a visit callback.
	ErrNilVisit = errors.New("linearize: nil visit callback")

	// ErrNotSized indicates Allocate was called before any UpdateSize.
	ErrNotSized = errors.New("linearize: workspace not sized")

	// ErrNotAllocated indicates an evaluation or block lookup before
	// Allocate committed backing storage (or after UpdateSize grew the
	// required size, invalidating the previous allocation).
	ErrNotAllocated = errors.New("linearize: workspace not allocated")

	// ErrNotBound indicates BlockFor was called before any evaluation
	// bound the workspace to an edge's dimensions.
	ErrNotBound = errors.New("linearize: workspace not bound to an edge")

	// ErrBadSlot indicates a slot index outside [SlotI, SlotJ].
	ErrBadSlot = errors.New("linearize: slot out of range")

	// ErrWorkspaceTooSmall indicates an edge whose block dimensions exceed
	// what the workspace was sized for.
	ErrWorkspaceTooSmall = errors.New("linearize: workspace too small for edge")

	// ErrBadEpsilon indicates a non-positive numeric-differentiation step.
	ErrBadEpsilon = errors.New("linearize: epsilon must be > 0")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("linearize: workers must be >= 1")
)
