// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package linalg

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/errs"
)

const eps = 1e-9

// spd builds X'X for a random, well-conditioned n-column design.
func spd(t *testing.T, rng *rand.Rand, n int) *mat.Dense {
	t.Helper()
	rows := n + 5
	x := mat.NewDense(rows, n, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < n; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}
	a, err := MatMul(x.T(), x)
	require.NoError(t, err)
	return a
}

func maxAbsDiff(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)
	return mat.Norm(&d, math.Inf(1))
}

func TestHouseholderQRReconstructs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		a := spd(t, rng, n)
		f, err := HouseholderQR(a)
		require.NoError(t, err, "n=%d", n)

		qr, err := MatMul(f.Q, f.R)
		require.NoError(t, err)
		assert.Less(t, maxAbsDiff(qr, a)/FrobeniusNorm(a), eps, "QR != A for n=%d", n)

		qtq, err := MatMul(f.Q.T(), f.Q)
		require.NoError(t, err)
		assert.Less(t, maxAbsDiff(qtq, Identity(n)), eps, "Q'Q != I for n=%d", n)

		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				assert.Zero(t, f.R.At(i, j), "R[%d][%d] below diagonal", i, j)
			}
		}
	}
}

func TestHouseholderQRNegativePivot(t *testing.T) {
	// Pivot and norm of opposite sign must still reflect without cancellation.
	a := mat.NewDense(3, 3, []float64{
		-4, 1, 2,
		1, -3, 0.5,
		2, 0.5, -5,
	})
	f, err := HouseholderQR(a)
	require.NoError(t, err)
	qr, err := MatMul(f.Q, f.R)
	require.NoError(t, err)
	assert.Less(t, maxAbsDiff(qr, a), eps)
}

func TestHouseholderQRDoesNotMutateInput(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 1, 1, 3})
	before := mat.DenseCopyOf(a)
	_, err := HouseholderQR(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, before))
}

func TestHouseholderQRSingular(t *testing.T) {
	// X = [1, x, x] gives a rank-2 normal-equations matrix.
	x := mat.NewDense(5, 3, []float64{
		1, 0.1, 0.1,
		1, 0.4, 0.4,
		1, 0.3, 0.3,
		1, 0.9, 0.9,
		1, 0.5, 0.5,
	})
	a, err := MatMul(x.T(), x)
	require.NoError(t, err)

	_, err = HouseholderQR(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingular)
	assert.ErrorIs(t, err, errs.ErrNumericDegeneracy)

	_, err = HouseholderQR(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, ErrSingular)
}

func TestHouseholderQRNonSquare(t *testing.T) {
	_, err := HouseholderQR(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, ErrNonSquare)
	assert.ErrorIs(t, err, errs.ErrInput)
}

func TestBackSolve(t *testing.T) {
	r := mat.NewDense(3, 3, []float64{
		2, 1, -1,
		0, 3, 2,
		0, 0, 4,
	})
	want := []float64{1, -2, 0.5}
	y, err := MatVec(r, want)
	require.NoError(t, err)

	got, err := BackSolve(r, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, eps)

	_, err = BackSolve(r, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	r.Set(1, 1, 0)
	_, err = BackSolve(r, y)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestInvertUpperTriangularRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 4, 7} {
		r := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			r.Set(i, i, 1+rng.Float64()*3)
			for j := i + 1; j < n; j++ {
				r.Set(i, j, rng.NormFloat64())
			}
		}
		inv, err := InvertUpperTriangular(r)
		require.NoError(t, err)

		prod, err := MatMul(inv, r)
		require.NoError(t, err)
		assert.Less(t, maxAbsDiff(prod, Identity(n)), eps, "n=%d", n)

		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				assert.Zero(t, inv.At(i, j))
			}
		}
	}
}

func TestInverseAndSolve(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := spd(t, rng, 4)

	inv, err := Inverse(a)
	require.NoError(t, err)
	prod, err := MatMul(a, inv)
	require.NoError(t, err)
	assert.Less(t, maxAbsDiff(prod, Identity(4)), 1e-8)

	f, err := HouseholderQR(a)
	require.NoError(t, err)
	want := []float64{1, 2, 3, 4}
	b, err := MatVec(a, want)
	require.NoError(t, err)
	got, err := f.Solve(b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-8)
}

func TestProduct(t *testing.T) {
	m := Matrix{mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})}

	tests := []struct {
		name string
		a, b Operand
		want Operand
	}{
		{"scalar scalar", Scalar(3), Scalar(-2), Scalar(-6)},
		{"scalar vector", Scalar(2), Vector{1, -1, 0.5}, Vector{2, -2, 1}},
		{"vector scalar", Vector{1, 2}, Scalar(0.5), Vector{0.5, 1}},
		{"vector vector", Vector{1, 2, 3}, Vector{4, 5, 6}, Scalar(32)},
		{"matrix vector", m, Vector{1, 0, -1}, Vector{-2, -2}},
		{"vector matrix", Vector{1, -1}, m, Vector{-3, -3, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Product(tt.a, tt.b)
			require.NoError(t, err)
			switch want := tt.want.(type) {
			case Scalar:
				assert.InDelta(t, float64(want), float64(got.(Scalar)), eps)
			case Vector:
				assert.InDeltaSlice(t, []float64(want), []float64(got.(Vector)), eps)
			}
		})
	}

	t.Run("matrix matrix", func(t *testing.T) {
		got, err := Product(m, Matrix{Transpose(m.Dense)})
		require.NoError(t, err)
		want := mat.NewDense(2, 2, []float64{14, 32, 32, 77})
		assert.True(t, mat.EqualApprox(got.(Matrix).Dense, want, eps))
	})

	t.Run("scalar matrix", func(t *testing.T) {
		got, err := Product(Scalar(-1), m)
		require.NoError(t, err)
		assert.Equal(t, -6.0, got.(Matrix).At(1, 2))
	})
}

func TestProductDimensionErrors(t *testing.T) {
	m := Matrix{mat.NewDense(2, 3, nil)}

	cases := []struct {
		name string
		a, b Operand
	}{
		{"vector lengths", Vector{1, 2}, Vector{1, 2, 3}},
		{"matrix vector", m, Vector{1, 2}},
		{"vector matrix", Vector{1, 2, 3}, m},
		{"matrix matrix", m, m},
	}
	for _, c := range cases {
		_, err := Product(c.a, c.b)
		assert.ErrorIs(t, err, ErrDimensionMismatch, c.name)
		assert.True(t, errors.Is(err, errs.ErrInput), c.name)
	}

	_, err := Product(Matrix{}, Scalar(1))
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
}

func TestTransposeIsPure(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr := Transpose(m)
	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, tr.At(2, 1))

	tr.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
}
