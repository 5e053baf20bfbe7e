// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/series"
)

// GLS is generalized least squares with residual covariance Σ.
type GLS struct {
	*model
	cw  *covarianceWhitening
	rho float64
}

// NewGLS builds a generalized least-squares model.
//
// sigma is the N×N residual covariance. When it is nil, Σ is estimated as an
// AR(1) process: OLS residuals e are regressed on themselves lagged once
// (no intercept) to get ρ, and Σᵢⱼ = ρ^|i−j|. That estimate costs one extra
// OLS fit and one auxiliary regression at construction.
//
// Returns an error wrapping errs.ErrNumericDegeneracy when Σ (or its
// inverse) is not positive definite, e.g. for an estimated |ρ| ≥ 1.
func NewGLS(endog series.Variable, exog []series.Variable, sigma *mat.SymDense, opts EstimationOptions) (*GLS, error) {
	m, err := newModel(KindGLS, endog, exog, opts)
	if err != nil {
		return nil, err
	}

	g := &GLS{model: m, rho: math.NaN()}
	if sigma == nil {
		g.rho, err = estimateAR1(m)
		if err != nil {
			return nil, fmt.Errorf("GLS: estimate sigma: %w", err)
		}
		sigma = toeplitzAR1(g.rho, m.design.N)
		m.opts.Logger.Printf("[DEBUG] GLS: AR(1) rho = %.6g over %d residuals", g.rho, m.design.N)
	}

	g.cw, err = newCovarianceWhitening(sigma, m.design.N)
	if err != nil {
		return nil, err
	}
	m.w = g.cw
	return g, nil
}

// Sigma returns a copy of the residual covariance.
func (g *GLS) Sigma() *mat.SymDense {
	s := mat.NewSymDense(g.design.N, nil)
	s.CopySym(g.cw.sigma)
	return s
}

// Rho returns the estimated AR(1) coefficient, or NaN when Σ was supplied.
func (g *GLS) Rho() float64 { return g.rho }

// estimateAR1 fits OLS, then regresses resid[1:] on resid[:-1]
// Returns: rho
func estimateAR1(m *model) (float64, error) {
	ols := &model{kind: KindOLS, design: m.design, w: identityWhitening{}, opts: m.opts}
	res, err := ols.Fit()
	if err != nil {
		return 0, err
	}
	e := res.Residuals()

	lagged := series.Variable{Title: "resid.L1", Data: e[:len(e)-1]}
	aux, err := newModel(KindOLS, series.Variable{Title: "resid", Data: e[1:]}, []series.Variable{lagged}, m.opts)
	if err != nil {
		return 0, err
	}
	auxRes, err := aux.Fit()
	if err != nil {
		return 0, err
	}
	return auxRes.Params()[0], nil
}

// toeplitzAR1 returns Σᵢⱼ = ρ^|i−j|.
func toeplitzAR1(rho float64, n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, math.Pow(rho, float64(j-i)))
		}
	}
	return s
}
