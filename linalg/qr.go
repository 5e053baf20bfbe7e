// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularTolerance is the relative threshold below which a Householder column
// norm or a triangular pivot counts as zero. It is measured against the
// Frobenius norm of the factored matrix (QR) or the largest diagonal
// magnitude (triangular routines).
const SingularTolerance = 1e-10

// QR holds the factors of A = Q·R.
type QR struct {
	Q *mat.Dense // orthogonal, Q'Q = I
	R *mat.Dense // upper triangular
}

// HouseholderQR factors the square matrix a into Q·R with Householder
// reflections. a is not modified.
//
// For each column k the reflector is built from x = R[k:,k] as
// v = x + sign(x₀)·‖x‖·e₁, so the pivot and the norm are added rather than
// subtracted. Reflectors are applied to R in place and accumulated into Q.
//
// Returns ErrNonSquare for rectangular input and ErrSingular when a column
// norm is numerically zero.
func HouseholderQR(a mat.Matrix) (*QR, error) {
	n, c := a.Dims()
	if n != c {
		return nil, fmt.Errorf("householder: %dx%d: %w", n, c, ErrNonSquare)
	}
	if n == 0 {
		return nil, fmt.Errorf("householder: %w", ErrEmpty)
	}

	r := mat.DenseCopyOf(a)
	q := Identity(n)

	scale := FrobeniusNorm(r)
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("householder: matrix norm %g: %w", scale, ErrSingular)
	}

	v := make([]float64, n)
	for k := 0; k < n; k++ {
		// Euclidean norm of the sub-column R[k:,k]
		norm := 0.0
		for i := k; i < n; i++ {
			x := r.At(i, k)
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if norm <= SingularTolerance*scale {
			return nil, fmt.Errorf("householder: column %d norm %g: %w", k, norm, ErrSingular)
		}

		for i := range v {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			v[i] = r.At(i, k)
		}
		pivot := v[k]
		if pivot >= 0 {
			v[k] += norm
		} else {
			v[k] -= norm
		}

		vtv := 0.0
		for i := k; i < n; i++ {
			vtv += v[i] * v[i]
		}
		tau := 2 / vtv

		// R <- H·R, H = I - tau·v·v', touching rows k.. and columns k.. only
		for j := k; j < n; j++ {
			s := 0.0
			for i := k; i < n; i++ {
				s += v[i] * r.At(i, j)
			}
			s *= tau
			for i := k; i < n; i++ {
				r.Set(i, j, r.At(i, j)-s*v[i])
			}
		}
		for i := k + 1; i < n; i++ {
			r.Set(i, k, 0)
		}

		// Q <- Q·H
		for i := 0; i < n; i++ {
			s := 0.0
			for l := k; l < n; l++ {
				s += q.At(i, l) * v[l]
			}
			s *= tau
			for l := k; l < n; l++ {
				q.Set(i, l, q.At(i, l)-s*v[l])
			}
		}
	}

	return &QR{Q: q, R: r}, nil
}

// Solve returns x with A·x = b, computed as R⁻¹·(Q'b) by back-substitution.
func (f *QR) Solve(b []float64) ([]float64, error) {
	qtb, err := VecMat(b, f.Q)
	if err != nil {
		return nil, fmt.Errorf("qr solve: %w", err)
	}
	return BackSolve(f.R, qtb)
}

// Inverse returns A⁻¹ = R⁻¹·Q'.
func (f *QR) Inverse() (*mat.Dense, error) {
	rinv, err := InvertUpperTriangular(f.R)
	if err != nil {
		return nil, err
	}
	return MatMul(rinv, f.Q.T())
}

// Inverse returns the inverse of the square matrix a via its Householder QR.
func Inverse(a mat.Matrix) (*mat.Dense, error) {
	f, err := HouseholderQR(a)
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	inv, err := f.Inverse()
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	return inv, nil
}
