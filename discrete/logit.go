// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package discrete

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/errs"
	"github.com/d-setiawan/regress/linalg"
	"github.com/d-setiawan/regress/series"
)

// Kind is reported by every Logit fit.
const Kind = "Logit"

// Method is maximum likelihood.
const Method = "MLE"

// CovarianceType of the coefficient standard errors.
const CovarianceType = "nonrobust"

// ErrResponse means the response holds a value other than 0 or 1.
var ErrResponse = fmt.Errorf("logit: response must be 0 or 1: %w", errs.ErrInput)

// Logit is a binary logistic regression model.
type Logit struct {
	design *series.Design
	opts   EstimationOptions
}

// NewLogit builds a logit model of a 0/1 response on exog.
// Add an intercept with series.AddConstant first if one is wanted.
func NewLogit(endog series.Variable, exog []series.Variable, opts EstimationOptions) (*Logit, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	d, err := series.NewDesign(endog, exog)
	if err != nil {
		return nil, fmt.Errorf("logit: %w", err)
	}
	for i, y := range d.Y {
		if y != 0 && y != 1 {
			return nil, fmt.Errorf("%q[%d] = %g: %w", endog.Title, i, y, ErrResponse)
		}
	}
	return &Logit{design: d, opts: opts}, nil
}

// Kind returns "Logit".
func (m *Logit) Kind() string { return Kind }

// Design returns the validated response and predictors.
func (m *Logit) Design() *series.Design { return m.design }

// CDF is the logistic function 1/(1+e^{−x}).
func CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// logCDF is log F(x) without overflow for large |x|.
func logCDF(x float64) float64 {
	if x >= 0 {
		return -math.Log1p(math.Exp(-x))
	}
	return x - math.Log1p(math.Exp(x))
}

// linear returns Xβ.
func (m *Logit) linear(params []float64) ([]float64, error) {
	return linalg.MatVec(m.design.X, params)
}

// LogLikelihood returns Σ log F(qᵢ·xᵢβ) with q = 2y − 1.
// params must hold one coefficient per design column.
func (m *Logit) LogLikelihood(params []float64) (float64, error) {
	if len(params) != m.design.Columns() {
		return math.NaN(), fmt.Errorf("logit: %d params for %d columns: %w",
			len(params), m.design.Columns(), linalg.ErrDimensionMismatch)
	}
	xb, err := m.linear(params)
	if err != nil {
		return math.NaN(), err
	}
	return m.logLikelihood(xb), nil
}

func (m *Logit) logLikelihood(xb []float64) float64 {
	ll := 0.0
	for i, v := range xb {
		q := 2*m.design.Y[i] - 1
		ll += logCDF(q * v)
	}
	return ll
}

// score and hessian are only called by the solver on iterates of the right
// length, so the products below cannot fail.

// score is X'(y − F(Xβ)).
func (m *Logit) score(params []float64) []float64 {
	xb, _ := m.linear(params)
	r := make([]float64, len(xb))
	for i, v := range xb {
		r[i] = m.design.Y[i] - CDF(v)
	}
	g, _ := linalg.VecMat(r, m.design.X)
	return g
}

// hessian is −X' diag(p(1−p)) X.
func (m *Logit) hessian(params []float64) *mat.Dense {
	xb, _ := m.linear(params)
	wx := mat.DenseCopyOf(m.design.X)
	for i, v := range xb {
		p := CDF(v)
		floats.Scale(p*(1-p), wx.RawRowView(i))
	}
	var h mat.Dense
	h.Mul(m.design.X.T(), wx)
	h.Scale(-1, &h)
	return &h
}

func (m *Logit) observations() int { return m.design.N }

// Fit runs Newton–Raphson from zero and builds the inference block.
//
// Fails with errs.ErrConvergence when MaxIter iterations do not reach
// Tolerance, and with errs.ErrNumericDegeneracy when the Hessian becomes
// singular (e.g. under perfect separation).
func (m *Logit) Fit() (*Results, error) {
	start := make([]float64, m.design.Columns())
	nr, err := newton(m, start, m.opts.MaxIter, m.opts.Tolerance, m.opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("logit fit: %w", err)
	}
	m.opts.Logger.Printf("[INFO] logit: %s after %d iterations", nr.state, nr.iterations)

	xb, err := m.linear(nr.params)
	if err != nil {
		return nil, fmt.Errorf("logit fit: %w", err)
	}
	r := &Results{
		model:      m,
		params:     nr.params,
		iterations: nr.iterations,
		state:      nr.state,
		llf:        m.logLikelihood(xb),
	}
	if err := r.inference(); err != nil {
		return nil, fmt.Errorf("logit fit: %w", err)
	}
	return r, nil
}
