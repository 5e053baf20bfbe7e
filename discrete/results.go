// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package discrete

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/distribution"
	"github.com/d-setiawan/regress/errs"
	"github.com/d-setiawan/regress/linalg"
	"github.com/d-setiawan/regress/series"
)

// Results is a fitted Logit model.
//
// Fit computes the coefficients and their asymptotic inference. The null
// log-likelihood needs a second Newton–Raphson solve on an intercept-only
// model and is computed once, on first use.
type Results struct {
	model *Logit

	params     []float64
	iterations int
	state      SolverState
	llf        float64

	cov     *mat.Dense // (−H)⁻¹ at the optimum
	bse     []float64
	zvalues []float64
	pvalues []float64
	ci      [][2]float64

	nullOnce sync.Once
	llnull   float64
	nullErr  error
}

// inference fills standard errors from the inverse observed information and
// z statistics, p-values and intervals from the standard normal.
func (r *Results) inference() error {
	m := r.model
	n := float64(m.observations())

	info := linalg.ScaleMatrix(-1/n, m.hessian(r.params))
	inv, err := linalg.Inverse(info)
	if err != nil {
		return err
	}
	r.cov = linalg.ScaleMatrix(1/n, inv)

	crit, err := distribution.StdNormal.Quantile(1 - m.opts.Alpha/2)
	if err != nil {
		return err
	}

	k := len(r.params)
	r.bse = make([]float64, k)
	r.zvalues = make([]float64, k)
	r.pvalues = make([]float64, k)
	r.ci = make([][2]float64, k)
	for i, beta := range r.params {
		v := r.cov.At(i, i)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("coefficient %d variance %g: %w", i, v, errs.ErrNumericDegeneracy)
		}
		se := math.Sqrt(v)
		r.bse[i] = se
		r.zvalues[i] = beta / se
		r.pvalues[i] = 2 * distribution.StdNormal.Survival(math.Abs(r.zvalues[i]))
		r.ci[i] = [2]float64{beta - crit*se, beta + crit*se}
	}
	return nil
}

// Kind returns "Logit".
func (r *Results) Kind() string { return Kind }

// Method returns "MLE".
func (r *Results) Method() string { return Method }

// CovarianceType returns "nonrobust".
func (r *Results) CovarianceType() string { return CovarianceType }

// Converged reports whether Newton–Raphson met the tolerance.
func (r *Results) Converged() bool { return r.state == StateConverged }

// Returns number of Newton steps taken
func (r *Results) Iterations() int { return r.iterations }

// State the solver finished in.
func (r *Results) State() SolverState { return r.state }

// Params returns the coefficients in design-column order.
func (r *Results) Params() []float64 { return clone(r.params) }

// StandardErrors of the coefficients.
func (r *Results) StandardErrors() []float64 { return clone(r.bse) }

// ZStatistics returns coefficient / standard error.
func (r *Results) ZStatistics() []float64 { return clone(r.zvalues) }

// PValues are two-sided, from the standard normal.
func (r *Results) PValues() []float64 { return clone(r.pvalues) }

// ConfidenceIntervals returns [lower, upper] at level 1 − Alpha per coefficient.
func (r *Results) ConfidenceIntervals() [][2]float64 {
	return append([][2]float64(nil), r.ci...)
}

// Covariance returns the estimated coefficient covariance matrix.
func (r *Results) Covariance() *mat.Dense { return mat.DenseCopyOf(r.cov) }

// Estimates pairs each predictor with its inference.
func (r *Results) Estimates() []series.Estimate {
	out := make([]series.Estimate, len(r.params))
	for i, v := range r.model.design.Predictors {
		out[i] = series.Estimate{
			Title:         v.Title,
			IsConstant:    v.IsConstant,
			Coefficient:   r.params[i],
			StandardError: r.bse[i],
			Statistic:     r.zvalues[i],
			PValue:        r.pvalues[i],
			CILower:       r.ci[i][0],
			CIUpper:       r.ci[i][1],
		}
	}
	return out
}

// FittedValues are the predicted probabilities F(Xβ).
func (r *Results) FittedValues() []float64 {
	xb, _ := r.model.linear(r.params) // fitted params match X
	for i, v := range xb {
		xb[i] = CDF(v)
	}
	return xb
}

// Returns y − F(Xβ)
func (r *Results) Residuals() []float64 {
	p := r.FittedValues()
	for i, y := range r.model.design.Y {
		p[i] = y - p[i]
	}
	return p
}

// N is the number of observations.
func (r *Results) N() int { return r.model.design.N }

// DF returns the regression, residual and total degrees of freedom.
func (r *Results) DF() series.DegreesOfFreedom { return r.model.design.DF }

// LogLikelihood at the fitted coefficients.
func (r *Results) LogLikelihood() float64 { return r.llf }

// LogLikelihoodNull is the log-likelihood of a Logit on a single all-ones
// regressor over the same response. The first call runs a full second fit.
func (r *Results) LogLikelihoodNull() (float64, error) {
	r.nullOnce.Do(func() {
		r.llnull, r.nullErr = r.nullLogLikelihood()
	})
	return r.llnull, r.nullErr
}

func (r *Results) nullLogLikelihood() (float64, error) {
	d := r.model.design
	null, err := NewLogit(d.Response, []series.Variable{series.Constant(d.N)}, r.model.opts)
	if err != nil {
		return math.NaN(), fmt.Errorf("null model: %w", err)
	}
	res, err := null.Fit()
	if err != nil {
		return math.NaN(), fmt.Errorf("null model: %w", err)
	}
	return res.LogLikelihood(), nil
}

// --- LIKELIHOOD RATIO ---

// PseudoRSquared is McFadden's 1 − ℓ/ℓ₀.
func (r *Results) PseudoRSquared() (float64, error) {
	ll0, err := r.LogLikelihoodNull()
	if err != nil {
		return math.NaN(), err
	}
	return 1 - r.llf/ll0, nil
}

// LikelihoodRatio is −2(ℓ₀ − ℓ).
func (r *Results) LikelihoodRatio() (float64, error) {
	ll0, err := r.LogLikelihoodNull()
	if err != nil {
		return math.NaN(), err
	}
	return -2 * (ll0 - r.llf), nil
}

// LikelihoodRatioPValue is the χ²(df_regression) survival at LikelihoodRatio.
func (r *Results) LikelihoodRatioPValue() (float64, error) {
	llr, err := r.LikelihoodRatio()
	if err != nil {
		return math.NaN(), err
	}
	chi, err := distribution.NewChiSquared(float64(r.model.design.DF.Regression))
	if err != nil {
		return math.NaN(), fmt.Errorf("likelihood ratio: %w", err)
	}
	return chi.Survival(llr)
}

// AIC is −2ℓ + 2(K + KConstant).
func (r *Results) AIC() float64 {
	d := r.model.design
	return -2*r.llf + 2*float64(d.K+d.KConstant)
}

// BIC is −2ℓ + log N·(K + KConstant).
func (r *Results) BIC() float64 {
	d := r.model.design
	return -2*r.llf + math.Log(float64(d.N))*float64(d.K+d.KConstant)
}

// Predict returns probabilities F(exog·params).
// exog: nil for the estimation design
// params: nil for the fitted coefficients
// linear: return exog·params instead of probabilities
func (r *Results) Predict(exog *mat.Dense, params []float64, linear bool) ([]float64, error) {
	if exog == nil {
		exog = r.model.design.X
	}
	if params == nil {
		params = r.params
	}
	out, err := linalg.Product(linalg.Matrix{Dense: mat.DenseCopyOf(exog)}, linalg.Vector(params))
	if err != nil {
		return nil, fmt.Errorf("logit predict: %w", err)
	}
	xb := []float64(out.(linalg.Vector))
	if linear {
		return xb, nil
	}
	for i, v := range xb {
		xb[i] = CDF(v)
	}
	return xb, nil
}

func clone(x []float64) []float64 { return append([]float64(nil), x...) }
