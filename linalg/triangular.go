// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// BackSolve solves R·x = y by back-substitution for upper-triangular R.
// Entries below the diagonal of r are ignored.
//
// Returns ErrSingular when a diagonal entry is zero relative to the largest
// diagonal magnitude.
func BackSolve(r mat.Matrix, y []float64) ([]float64, error) {
	n, err := triangularDims("backsolve", r)
	if err != nil {
		return nil, err
	}
	if len(y) != n {
		return nil, fmt.Errorf("backsolve: %dx%d with rhs of length %d: %w", n, n, len(y), ErrDimensionMismatch)
	}
	if err := checkPivots("backsolve", r, n); err != nil {
		return nil, err
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := y[i]
		for j := i + 1; j < n; j++ {
			s -= r.At(i, j) * x[j]
		}
		x[i] = s / r.At(i, i)
	}
	return x, nil
}

// InvertUpperTriangular inverts R one column at a time, back-substituting against e_j.
// Returns: n x n matrix R⁻¹
func InvertUpperTriangular(r mat.Matrix) (*mat.Dense, error) {
	n, err := triangularDims("invert upper", r)
	if err != nil {
		return nil, err
	}
	if err := checkPivots("invert upper", r, n); err != nil {
		return nil, err
	}

	inv := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		inv.Set(j, j, 1/r.At(j, j))
		for i := j - 1; i >= 0; i-- {
			s := 0.0
			for k := i + 1; k <= j; k++ {
				s += r.At(i, k) * inv.At(k, j)
			}
			inv.Set(i, j, -s/r.At(i, i))
		}
	}
	return inv, nil
}

func triangularDims(op string, r mat.Matrix) (int, error) {
	n, c := r.Dims()
	if n != c {
		return 0, fmt.Errorf("%s: %dx%d: %w", op, n, c, ErrNonSquare)
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	return n, nil
}

// checkPivots rejects zero, non-finite and relatively tiny diagonal entries.
func checkPivots(op string, r mat.Matrix, n int) error {
	maxDiag := 0.0
	for i := 0; i < n; i++ {
		d := math.Abs(r.At(i, i))
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%s: non-finite pivot at row %d: %w", op, i, ErrSingular)
		}
		maxDiag = math.Max(maxDiag, d)
	}
	for i := 0; i < n; i++ {
		if d := math.Abs(r.At(i, i)); d == 0 || d <= SingularTolerance*maxDiag {
			return fmt.Errorf("%s: pivot %g at row %d: %w", op, r.At(i, i), i, ErrSingular)
		}
	}
	return nil
}
