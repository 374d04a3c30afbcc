package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validateInformation checks the construction-time invariants shared by all
// edges: the information matrix exists, has order dim, and is positive
// definite (verified via a Cholesky factorization).
func validateInformation(info *mat.SymDense, dim int) error {
	if info == nil {
		return ErrNilInformation
	}
	if n := info.SymmetricDim(); n != dim {
		return fmt.Errorf("graph: information order %d, want %d: %w", n, dim, ErrInformationShape)
	}
	var chol mat.Cholesky
	if !chol.Factorize(info) {
		return ErrNotPositiveDefinite
	}

	return nil
}

// checkBlock verifies that a Jacobian destination block has shape
// rows×cols.
func checkBlock(b *mat.Dense, rows, cols int) error {
	r, c := b.Dims()
	if r != rows || c != cols {
		return fmt.Errorf("graph: jacobian block %dx%d, want %dx%d: %w", r, c, rows, cols, ErrDimensionMismatch)
	}

	return nil
}
