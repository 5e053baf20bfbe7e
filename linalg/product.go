// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operand is an argument of Product: a Scalar, a Vector or a Matrix.
type Operand interface {
	operand()
}

// Scalar is a plain number.
type Scalar float64

// Vector is a plain sequence of numbers. Its orientation (row or column) is
// decided by the matrix it is multiplied with.
type Vector []float64

// Matrix wraps a gonum dense matrix so it can be passed to Product.
type Matrix struct {
	*mat.Dense
}

func (Scalar) operand() {}
func (Vector) operand() {}
func (Matrix) operand() {}

// Transpose returns a new matrix with rows and columns of m swapped.
// m is left untouched.
func Transpose(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m.T())
}

// Identity returns the n×n identity matrix.
func Identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// FrobeniusNorm returns sqrt(Σ m_ij²).
func FrobeniusNorm(m mat.Matrix) float64 {
	// gonum's matrix norm of order 2 is the Frobenius norm
	return mat.Norm(m, 2)
}

// Product is the generalized product used across the engines.
//
//   - Scalar × Scalar: the scalar product.
//   - Scalar × Vector (either order): the element-wise scaled vector.
//   - Scalar × Matrix (either order): the element-wise scaled matrix.
//   - Vector × Vector: the inner product; lengths must match.
//   - Vector × Matrix: v treated as a row, len(v) must equal the row count;
//     returns a Vector of length Cols.
//   - Matrix × Vector: v treated as a column, len(v) must equal the column
//     count; returns a Vector of length Rows.
//   - Matrix × Matrix: the standard product; inner dimensions must match.
//
// Shape errors wrap ErrDimensionMismatch.
func Product(a, b Operand) (Operand, error) {
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x * y, nil
		case Vector:
			return Vector(ScaleVector(float64(x), y)), nil
		case Matrix:
			if y.Dense == nil {
				break
			}
			return Matrix{ScaleMatrix(float64(x), y.Dense)}, nil
		}
	case Vector:
		switch y := b.(type) {
		case Scalar:
			return Vector(ScaleVector(float64(y), x)), nil
		case Vector:
			d, err := Dot(x, y)
			if err != nil {
				return nil, err
			}
			return Scalar(d), nil
		case Matrix:
			if y.Dense == nil {
				break
			}
			v, err := VecMat(x, y.Dense)
			if err != nil {
				return nil, err
			}
			return Vector(v), nil
		}
	case Matrix:
		if x.Dense == nil {
			break
		}
		switch y := b.(type) {
		case Scalar:
			return Matrix{ScaleMatrix(float64(y), x.Dense)}, nil
		case Vector:
			v, err := MatVec(x.Dense, y)
			if err != nil {
				return nil, err
			}
			return Vector(v), nil
		case Matrix:
			if y.Dense == nil {
				break
			}
			m, err := MatMul(x.Dense, y.Dense)
			if err != nil {
				return nil, err
			}
			return Matrix{m}, nil
		}
	}
	return nil, fmt.Errorf("product of %T and %T: %w", a, b, ErrUnsupportedOperand)
}

// ScaleVector returns s·v as a new slice.
func ScaleVector(s float64, v []float64) []float64 {
	out := make([]float64, len(v))
	floats.ScaleTo(out, s, v)
	return out
}

// ScaleMatrix returns s·m as a new matrix.
func ScaleMatrix(s float64, m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Scale(s, m)
	return &out
}

// Dot returns the inner product of u and v.
func Dot(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("dot: lengths %d and %d: %w", len(u), len(v), ErrDimensionMismatch)
	}
	if len(u) == 0 {
		return 0, nil
	}
	return floats.Dot(u, v), nil
}

// MatVec returns a·v, with v read as a column vector.
func MatVec(a mat.Matrix, v []float64) ([]float64, error) {
	r, c := a.Dims()
	if c != len(v) {
		return nil, fmt.Errorf("matvec: %dx%d by vector of length %d: %w", r, c, len(v), ErrDimensionMismatch)
	}
	if r == 0 || len(v) == 0 {
		return nil, fmt.Errorf("matvec: %w", ErrEmpty)
	}
	out := mat.NewVecDense(r, nil)
	out.MulVec(a, mat.NewVecDense(len(v), v))
	return out.RawVector().Data, nil
}

// VecMat returns v'·a, with v read as a row vector.
func VecMat(v []float64, a mat.Matrix) ([]float64, error) {
	r, c := a.Dims()
	if r != len(v) {
		return nil, fmt.Errorf("vecmat: vector of length %d by %dx%d: %w", len(v), r, c, ErrDimensionMismatch)
	}
	if c == 0 || len(v) == 0 {
		return nil, fmt.Errorf("vecmat: %w", ErrEmpty)
	}
	out := mat.NewVecDense(c, nil)
	out.MulVec(a.T(), mat.NewVecDense(len(v), v))
	return out.RawVector().Data, nil
}

// MatMul returns the matrix product a·b.
func MatMul(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("matmul: %dx%d by %dx%d: %w", ar, ac, br, bc, ErrDimensionMismatch)
	}
	if ar == 0 || ac == 0 || bc == 0 {
		return nil, fmt.Errorf("matmul: %w", ErrEmpty)
	}
	var out mat.Dense
	out.Mul(a, b)
	return &out, nil
}
