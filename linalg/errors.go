// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package linalg

import (
	"fmt"

	"github.com/d-setiawan/regress/errs"
)

// Sentinels returned by the kernel. Each one wraps its errs class, so both
// errors.Is(err, linalg.ErrSingular) and errors.Is(err, errs.ErrNumericDegeneracy)
// hold for a singular pivot.
var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible,
	// e.g. vectors of different length or a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("linalg: dimension mismatch: %w", errs.ErrInput)

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = fmt.Errorf("linalg: matrix is not square: %w", errs.ErrInput)

	// ErrEmpty is returned for zero-length vectors and matrices.
	ErrEmpty = fmt.Errorf("linalg: empty operand: %w", errs.ErrInput)

	// ErrUnsupportedOperand is returned by Product for nil or unknown operands.
	ErrUnsupportedOperand = fmt.Errorf("linalg: unsupported operand: %w", errs.ErrInput)

	// ErrSingular is returned when a column norm or a triangular pivot is
	// numerically zero relative to the scale of the matrix.
	ErrSingular = fmt.Errorf("linalg: singular matrix: %w", errs.ErrNumericDegeneracy)
)
