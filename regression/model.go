// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/linalg"
	"github.com/d-setiawan/regress/series"
)

// Kind names the estimator that produced a fit.
type Kind string

const (
	KindOLS Kind = "OLS"
	KindGLS Kind = "GLS"
	KindWLS Kind = "WLS"
)

// Method is reported for every least-squares fit.
const Method = "Least Squares"

// CovarianceType of the coefficient standard errors.
const CovarianceType = "nonrobust"

// Regression is the contract shared by OLS, WLS and GLS.
type Regression interface {
	// Kind reports which estimator this is.
	Kind() Kind
	// Whiten applies the estimator's transform to an N-row matrix.
	Whiten(m mat.Matrix) (*mat.Dense, error)
	// Fit solves the whitened least-squares problem.
	Fit() (*Results, error)
}

var (
	_ Regression = (*OLS)(nil)
	_ Regression = (*WLS)(nil)
	_ Regression = (*GLS)(nil)
)

// model is the state every estimator shares. It is immutable once built.
type model struct {
	kind   Kind
	design *series.Design
	w      whitening
	opts   EstimationOptions
}

func newModel(kind Kind, endog series.Variable, exog []series.Variable, opts EstimationOptions) (*model, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	d, err := series.NewDesign(endog, exog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return &model{kind: kind, design: d, w: identityWhitening{}, opts: opts}, nil
}

func (m *model) Kind() Kind { return m.kind }

// Design returns the validated response and predictors.
func (m *model) Design() *series.Design { return m.design }

func (m *model) Whiten(x mat.Matrix) (*mat.Dense, error) {
	if r, _ := x.Dims(); r != m.design.N {
		return nil, fmt.Errorf("%s whiten: %d rows for %d observations: %w", m.kind, r, m.design.N, linalg.ErrDimensionMismatch)
	}
	return m.w.whiten(x), nil
}

func (m *model) Fit() (*Results, error) {
	res, err := fit(m)
	if err != nil {
		return nil, fmt.Errorf("%s fit: %w", m.kind, err)
	}
	return res, nil
}

// OLS is ordinary least squares.
type OLS struct {
	*model
}

// NewOLS builds an ordinary least-squares model of endog on exog.
// Add an intercept with series.AddConstant first if one is wanted.
func NewOLS(endog series.Variable, exog []series.Variable, opts EstimationOptions) (*OLS, error) {
	m, err := newModel(KindOLS, endog, exog, opts)
	if err != nil {
		return nil, err
	}
	return &OLS{model: m}, nil
}

// WLS is weighted least squares.
type WLS struct {
	*model
	ww *weightWhitening
}

// NewWLS builds a weighted least-squares model.
// weights: one positive weight per observation, nil for unit weights.
func NewWLS(endog series.Variable, exog []series.Variable, weights []float64, opts EstimationOptions) (*WLS, error) {
	m, err := newModel(KindWLS, endog, exog, opts)
	if err != nil {
		return nil, err
	}
	ww, err := newWeightWhitening(weights, m.design.N)
	if err != nil {
		return nil, err
	}
	m.w = ww
	return &WLS{model: m, ww: ww}, nil
}

// Weights returns a copy of the observation weights.
func (m *WLS) Weights() []float64 {
	return append([]float64(nil), m.ww.weights...)
}
