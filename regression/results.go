// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/distribution"
	"github.com/d-setiawan/regress/linalg"
	"github.com/d-setiawan/regress/series"
	"github.com/d-setiawan/regress/stats"
)

// Results is a fitted least-squares model.
//
// The inference block (coefficients, standard errors, t statistics, p-values,
// confidence intervals) is computed by Fit. Everything else is computed on first
// access and cached. Accessors return copies, so Results never changes after
// Fit returns and may be read from several goroutines.
type Results struct {
	kind   Kind
	design *series.Design
	opts   EstimationOptions
	w      whitening

	wendog        []float64
	normal        *mat.Dense // A = Xw'Xw
	normalInverse *mat.Dense
	params        []float64
	bse           []float64
	tvalues       []float64
	pvalues       []float64
	ci            [][2]float64
	fitted        []float64
	resid         []float64
	ssr           float64

	centeredTSS   lazy[float64]
	uncenteredTSS lazy[float64]
	rsquared      lazy[float64]
	llf           lazy[float64]
	fprob         lazy[float64]
	condition     lazy[float64]
	skew          lazy[float64]
	kurtosis      lazy[float64]
	durbinWatson  lazy[float64]
	omnibus       lazy[stats.TestResult]
	jarqueBera    lazy[stats.TestResult]
}

// Kind of estimator that produced the fit.
func (r *Results) Kind() Kind { return r.kind }

// Method returns "Least Squares".
func (r *Results) Method() string { return Method }

// CovarianceType returns "nonrobust".
func (r *Results) CovarianceType() string { return CovarianceType }

// Params returns the coefficients in design-column order.
func (r *Results) Params() []float64 { return clone(r.params) }

// StandardErrors of the coefficients.
func (r *Results) StandardErrors() []float64 { return clone(r.bse) }

// TStatistics returns coefficient / standard error.
func (r *Results) TStatistics() []float64 { return clone(r.tvalues) }

// PValues are two-sided, from Student's t on the residual degrees of freedom.
func (r *Results) PValues() []float64 { return clone(r.pvalues) }

// ConfidenceIntervals returns [lower, upper] at level 1 − Alpha per coefficient.
func (r *Results) ConfidenceIntervals() [][2]float64 {
	return append([][2]float64(nil), r.ci...)
}

// Estimates pairs each predictor with its inference.
func (r *Results) Estimates() []series.Estimate {
	out := make([]series.Estimate, len(r.params))
	for i, v := range r.design.Predictors {
		out[i] = series.Estimate{
			Title:         v.Title,
			IsConstant:    v.IsConstant,
			Coefficient:   r.params[i],
			StandardError: r.bse[i],
			Statistic:     r.tvalues[i],
			PValue:        r.pvalues[i],
			CILower:       r.ci[i][0],
			CIUpper:       r.ci[i][1],
		}
	}
	return out
}

// FittedValues on the whitened scale.
func (r *Results) FittedValues() []float64 { return clone(r.fitted) }

// Residuals on the whitened scale.
func (r *Results) Residuals() []float64 { return clone(r.resid) }

// N is the number of observations.
func (r *Results) N() int { return r.design.N }

// K is the number of non-constant predictors.
func (r *Results) K() int { return r.design.K }

// KConstant is the number of constant predictors.
func (r *Results) KConstant() int { return r.design.KConstant }

// DF returns the regression, residual and total degrees of freedom.
func (r *Results) DF() series.DegreesOfFreedom { return r.design.DF }

// SSR is the residual sum of squares.
func (r *Results) SSR() float64 { return r.ssr }

// CenteredTSS is the total sum of squares about the mean. WLS centres the raw
// response on its weighted mean; OLS and GLS use the whitened response.
func (r *Results) CenteredTSS() float64 {
	return r.centeredTSS.value(func() float64 {
		return r.w.centeredTSS(r.design.Y, r.wendog)
	})
}

// UncenteredTSS is Σ yw².
func (r *Results) UncenteredTSS() float64 {
	return r.uncenteredTSS.value(func() float64 {
		return floats.Dot(r.wendog, r.wendog)
	})
}

// tss is the total sum of squares R² is measured against.
func (r *Results) tss() float64 {
	if r.design.KConstant > 0 {
		return r.CenteredTSS()
	}
	return r.UncenteredTSS()
}

// ESS is the explained sum of squares, TSS − SSR.
func (r *Results) ESS() float64 { return r.tss() - r.ssr }

// MSEModel is ESS / df_regression.
func (r *Results) MSEModel() float64 { return r.ESS() / float64(r.design.DF.Regression) }

// MSEResidual is SSR / df_residual.
func (r *Results) MSEResidual() float64 { return r.ssr / float64(r.design.DF.Residual) }

// RSquared is centered when the model has a constant and uncentered otherwise.
func (r *Results) RSquared() float64 {
	return r.rsquared.value(func() float64 {
		return 1 - r.ssr/r.tss()
	})
}

// AdjustedRSquared is 1 − (1 − R²)(N − 1)/(N − K − 1).
func (r *Results) AdjustedRSquared() float64 {
	df := r.design.DF
	return 1 - (1-r.RSquared())*float64(df.Total)/float64(df.Residual)
}

// FStatistic is MSE_model / MSE_residual.
func (r *Results) FStatistic() float64 { return r.MSEModel() / r.MSEResidual() }

// FProbability is the F(df_regression, df_residual) survival at FStatistic.
// A model without non-constant predictors has no F test and returns an error.
func (r *Results) FProbability() (float64, error) {
	return r.fprob.get(func() (float64, error) {
		f, err := distribution.NewF(float64(r.design.DF.Regression), float64(r.design.DF.Residual))
		if err != nil {
			return 0, fmt.Errorf("f probability: %w", err)
		}
		return f.Survival(r.FStatistic())
	})
}

// --- FIT STATISTICS ---

// LogLikelihood is the Gaussian log-likelihood,
//
//	−N/2·log 2π − N/2·log(SSR/N) − N/2
//
// less ½·log det Σ for GLS, plus ½·Σ log wᵢ for WLS.
func (r *Results) LogLikelihood() float64 {
	return r.llf.value(func() float64 {
		n := float64(r.design.N)
		return -n/2*math.Log(2*math.Pi) - n/2*math.Log(r.ssr/n) - n/2 + r.w.logLikelihoodAdjustment()
	})
}

// AIC is −2ℓ + 2(K + KConstant).
func (r *Results) AIC() float64 {
	return -2*r.LogLikelihood() + 2*float64(r.design.K+r.design.KConstant)
}

// BIC is −2ℓ + log N·(K + KConstant).
func (r *Results) BIC() float64 {
	return -2*r.LogLikelihood() + math.Log(float64(r.design.N))*float64(r.design.K+r.design.KConstant)
}

// --- RESIDUAL DIAGNOSTICS ---

// Skew of the residuals.
func (r *Results) Skew() float64 {
	return r.skew.value(func() float64 { return stats.Skew(r.resid) })
}

// Kurtosis of the residuals (Pearson, normal = 3).
func (r *Results) Kurtosis() float64 {
	return r.kurtosis.value(func() float64 { return stats.Kurtosis(r.resid) })
}

// DurbinWatson statistic of the residuals.
func (r *Results) DurbinWatson() float64 {
	return r.durbinWatson.value(func() float64 { return stats.DurbinWatson(r.resid) })
}

// Omnibus is D'Agostino's K² normality test on the residuals. It needs at
// least 8 observations and logs a warning below 20.
func (r *Results) Omnibus() (stats.TestResult, error) {
	return r.omnibus.get(func() (stats.TestResult, error) {
		if r.design.N < stats.KurtosisTestReliable {
			r.opts.Logger.Printf("[WARN] %s: kurtosis test is unreliable with %d observations (< %d)",
				r.kind, r.design.N, stats.KurtosisTestReliable)
		}
		return stats.Omnibus(r.resid)
	})
}

// JarqueBera normality test on the residuals.
func (r *Results) JarqueBera() (stats.TestResult, error) {
	return r.jarqueBera.get(func() (stats.TestResult, error) {
		return stats.JarqueBeraTest(r.resid)
	})
}

// ConditionNumber is sqrt(‖A‖_F · ‖A⁻¹‖_F) for A = Xw'Xw.
func (r *Results) ConditionNumber() float64 {
	return r.condition.value(func() float64 {
		return math.Sqrt(linalg.FrobeniusNorm(r.normal) * linalg.FrobeniusNorm(r.normalInverse))
	})
}

// Predict computes exog·params without touching the fit.
// exog: rows of predictor values in design-column order, nil for the
// (unwhitened) estimation design
// params: coefficients, nil for the fitted ones
// Returns: one prediction per row of exog
func (r *Results) Predict(exog *mat.Dense, params []float64) ([]float64, error) {
	if exog == nil {
		exog = r.design.X
	}
	if params == nil {
		params = r.params
	}
	out, err := linalg.Product(linalg.Matrix{Dense: mat.DenseCopyOf(exog)}, linalg.Vector(params))
	if err != nil {
		return nil, fmt.Errorf("%s predict: %w", r.kind, err)
	}
	return []float64(out.(linalg.Vector)), nil
}

func clone(x []float64) []float64 { return append([]float64(nil), x...) }
