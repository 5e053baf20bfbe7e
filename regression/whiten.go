// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/errs"
	"github.com/d-setiawan/regress/linalg"
	"github.com/d-setiawan/regress/stats"
)

// whitening is the transform that tells OLS, WLS and GLS apart.
type whitening interface {
	// whiten returns a transformed copy of m; m has one row per observation.
	whiten(m mat.Matrix) *mat.Dense
	// logLikelihoodAdjustment is added to the Gaussian log-likelihood.
	logLikelihoodAdjustment() float64
	// centeredTSS is the centered total sum of squares of the response.
	centeredTSS(endog, wendog []float64) float64
}

func whitenVector(w whitening, y []float64) []float64 {
	return mat.Col(nil, 0, w.whiten(mat.NewVecDense(len(y), y)))
}

// identityWhitening leaves the data unchanged.
type identityWhitening struct{}

func (identityWhitening) whiten(m mat.Matrix) *mat.Dense { return mat.DenseCopyOf(m) }

func (identityWhitening) logLikelihoodAdjustment() float64 { return 0 }

func (identityWhitening) centeredTSS(_, wendog []float64) float64 {
	return centeredSumOfSquares(wendog, nil)
}

// weightWhitening scales row i by sqrt(wᵢ).
type weightWhitening struct {
	weights []float64
	sqrtW   []float64
}

func newWeightWhitening(weights []float64, n int) (*weightWhitening, error) {
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != n {
		return nil, fmt.Errorf("wls: %d weights for %d observations: %w", len(weights), n, errs.ErrInput)
	}
	w := &weightWhitening{
		weights: append([]float64(nil), weights...),
		sqrtW:   make([]float64, n),
	}
	for i, v := range w.weights {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("wls: weight[%d] = %g must be positive and finite: %w", i, v, errs.ErrInput)
		}
		w.sqrtW[i] = math.Sqrt(v)
	}
	return w, nil
}

func (w *weightWhitening) whiten(m mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(m)
	r, _ := out.Dims()
	for i := 0; i < r; i++ {
		floats.Scale(w.sqrtW[i], out.RawRowView(i))
	}
	return out
}

// ½ Σ log wᵢ
func (w *weightWhitening) logLikelihoodAdjustment() float64 {
	s := 0.0
	for _, v := range w.weights {
		s += math.Log(v)
	}
	return 0.5 * s
}

// The weighted TSS centres the raw response on its weighted mean.
func (w *weightWhitening) centeredTSS(endog, _ []float64) float64 {
	return centeredSumOfSquares(endog, w.weights)
}

// covarianceWhitening premultiplies by Lᵀ, where Σ⁻¹ = L·Lᵀ.
type covarianceWhitening struct {
	sigma  *mat.SymDense
	lt     *mat.Dense
	logDet float64 // log det Σ
}

func newCovarianceWhitening(sigma *mat.SymDense, n int) (*covarianceWhitening, error) {
	if sigma == nil || sigma.SymmetricDim() != n {
		dim := 0
		if sigma != nil {
			dim = sigma.SymmetricDim()
		}
		return nil, fmt.Errorf("gls: sigma is %dx%d for %d observations: %w", dim, dim, n, linalg.ErrDimensionMismatch)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		return nil, fmt.Errorf("gls: sigma is not positive definite: %w", linalg.ErrSingular)
	}
	logDet := chol.LogDet()

	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, fmt.Errorf("gls: invert sigma: %v: %w", err, linalg.ErrSingular)
	}

	var cholInv mat.Cholesky
	if ok := cholInv.Factorize(&inv); !ok {
		return nil, fmt.Errorf("gls: inverse of sigma is not positive definite: %w", linalg.ErrSingular)
	}
	l := mat.NewTriDense(n, mat.Lower, nil)
	cholInv.LTo(l)

	own := mat.NewSymDense(n, nil)
	own.CopySym(sigma)
	return &covarianceWhitening{
		sigma:  own,
		lt:     linalg.Transpose(l),
		logDet: logDet,
	}, nil
}

func (c *covarianceWhitening) whiten(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(c.lt, m)
	return &out
}

// −½ log det Σ
func (c *covarianceWhitening) logLikelihoodAdjustment() float64 { return -0.5 * c.logDet }

func (c *covarianceWhitening) centeredTSS(_, wendog []float64) float64 {
	return centeredSumOfSquares(wendog, nil)
}

// centeredSumOfSquares returns Σ wᵢ(xᵢ − x̄_w)², with unit weights when weights is nil.
func centeredSumOfSquares(x, weights []float64) float64 {
	m := stats.Mean(x, weights)
	s := 0.0
	for i, v := range x {
		d := v - m
		if weights != nil {
			s += weights[i] * d * d
		} else {
			s += d * d
		}
	}
	return s
}
