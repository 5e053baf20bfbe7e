// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/d-setiawan/regress/distribution"
	"github.com/d-setiawan/regress/errs"
	"github.com/d-setiawan/regress/linalg"
)

// fit runs the pipeline every estimator shares:
//
//  1. whiten X and y
//  2. A = Xw'Xw, b = Xw'yw
//  3. QR-factor A and back-solve Rβ = Q'b
//  4. A⁻¹ = R⁻¹Q' gives the coefficient covariance A⁻¹·MSE_resid
//
// Fitted values and residuals stay on the whitened scale.
func fit(m *model) (*Results, error) {
	d := m.design

	xw := m.w.whiten(d.X)
	yw := whitenVector(m.w, d.Y)

	a, err := linalg.MatMul(xw.T(), xw)
	if err != nil {
		return nil, err
	}
	b, err := linalg.VecMat(yw, xw)
	if err != nil {
		return nil, err
	}

	qr, err := linalg.HouseholderQR(a)
	if err != nil {
		return nil, err
	}
	params, err := qr.Solve(b)
	if err != nil {
		return nil, err
	}
	ainv, err := qr.Inverse()
	if err != nil {
		return nil, err
	}

	fitted, err := linalg.MatVec(xw, params)
	if err != nil {
		return nil, err
	}
	resid := make([]float64, len(yw))
	floats.SubTo(resid, yw, fitted)

	r := &Results{
		kind:          m.kind,
		design:        d,
		opts:          m.opts,
		w:             m.w,
		wendog:        yw,
		normal:        a,
		normalInverse: ainv,
		params:        params,
		fitted:        fitted,
		resid:         resid,
		ssr:           floats.Dot(resid, resid),
	}
	if err := r.inference(); err != nil {
		return nil, err
	}
	return r, nil
}

// inference fills standard errors, t statistics, two-sided p-values and
// confidence intervals from the Student-t distribution on the residual df.
func (r *Results) inference() error {
	df := float64(r.design.DF.Residual)
	t, err := distribution.NewStudentsT(df)
	if err != nil {
		return err
	}
	crit, err := t.Quantile(1 - r.opts.Alpha/2)
	if err != nil {
		return err
	}

	mse := r.MSEResidual()
	k := len(r.params)
	r.bse = make([]float64, k)
	r.tvalues = make([]float64, k)
	r.pvalues = make([]float64, k)
	r.ci = make([][2]float64, k)
	for i, beta := range r.params {
		v := r.normalInverse.At(i, i) * mse
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("coefficient %d variance %g: %w", i, v, errs.ErrNumericDegeneracy)
		}
		se := math.Sqrt(v)
		r.bse[i] = se
		r.tvalues[i] = beta / se

		// 0/0 for an exactly zero coefficient of a perfect fit
		if math.IsNaN(r.tvalues[i]) {
			r.pvalues[i] = math.NaN()
		} else {
			sf, err := t.Survival(math.Abs(r.tvalues[i]))
			if err != nil {
				return err
			}
			r.pvalues[i] = 2 * sf
		}
		r.ci[i] = [2]float64{beta - crit*se, beta + crit*se}
	}
	return nil
}
