// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package stats

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/distribution"
	"github.com/d-setiawan/regress/errs"
)

const (
	// MinSkewTestObservations is the smallest sample SkewTest accepts.
	MinSkewTestObservations = 8
	// MinKurtosisTestObservations is the smallest sample KurtosisTest accepts.
	MinKurtosisTestObservations = 5
	// KurtosisTestReliable is the sample size below which the kurtosis
	// normalisation is known to be inaccurate.
	KurtosisTestReliable = 20
)

// TestResult is a test statistic with its p-value.
type TestResult struct {
	Statistic float64
	PValue    float64
}

// chi2df2 is the reference distribution of the omnibus and Jarque–Bera statistics.
var chi2df2 = distribution.ChiSquared{K: 2}

// SkewTest returns D'Agostino's normalised z-score for the sample skewness.
// It needs at least 8 observations.
func SkewTest(x []float64) (float64, error) {
	n := float64(len(x))
	if len(x) < MinSkewTestObservations {
		return 0, fmt.Errorf("skew test: %d observations, need %d: %w", len(x), MinSkewTestObservations, errs.ErrDomain)
	}
	b2 := Skew(x)
	if math.IsNaN(b2) {
		return 0, fmt.Errorf("skew test: sample has no spread: %w", errs.ErrDomain)
	}

	y := b2 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := math.Sqrt(2*(beta2-1)) - 1
	delta := 1 / math.Sqrt(math.Log(math.Sqrt(w2)))
	alpha := math.Sqrt(2 / (w2 - 1))
	y /= alpha
	return delta * math.Log(y+math.Sqrt(y*y+1)), nil
}

// KurtosisTest returns the Anscombe–Glynn normalised z-score for the sample
// kurtosis. It needs at least 5 observations and is unreliable below 20.
func KurtosisTest(x []float64) (float64, error) {
	n := float64(len(x))
	if len(x) < MinKurtosisTestObservations {
		return 0, fmt.Errorf("kurtosis test: %d observations, need %d: %w", len(x), MinKurtosisTestObservations, errs.ErrDomain)
	}
	b2 := Kurtosis(x)
	if math.IsNaN(b2) {
		return 0, fmt.Errorf("kurtosis test: sample has no spread: %w", errs.ErrDomain)
	}

	e := 3 * (n - 1) / (n + 1)
	varb2 := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x0 := (b2 - e) / math.Sqrt(varb2)
	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))

	term1 := 1 - 2/(9*a)
	denom := 1 + x0*math.Sqrt(2/(a-4))
	if denom == 0 {
		return 0, fmt.Errorf("kurtosis test: degenerate normalisation: %w", errs.ErrDomain)
	}
	term2 := math.Cbrt((1 - 2/a) / denom)
	return (term1 - term2) / math.Sqrt(2/(9*a)), nil
}

// D'Agostino–Pearson omnibus test, K² = z_skew² + z_kurt²
// Returns K² and its χ²(2) p-value
func Omnibus(x []float64) (TestResult, error) {
	s, err := SkewTest(x)
	if err != nil {
		return TestResult{}, fmt.Errorf("omnibus: %w", err)
	}
	k, err := KurtosisTest(x)
	if err != nil {
		return TestResult{}, fmt.Errorf("omnibus: %w", err)
	}
	k2 := s*s + k*k
	p, err := chi2df2.Survival(k2)
	if err != nil {
		return TestResult{}, fmt.Errorf("omnibus: %w", err)
	}
	return TestResult{Statistic: k2, PValue: p}, nil
}

// JarqueBera returns n/6·(skew² + (kurtosis−3)²/4).
func JarqueBera(skew, kurtosis float64, n int) float64 {
	ex := kurtosis - 3
	return float64(n) / 6 * (skew*skew + ex*ex/4)
}

// JarqueBeraTest computes the Jarque–Bera statistic of x and its χ²(2) p-value.
func JarqueBeraTest(x []float64) (TestResult, error) {
	if len(x) == 0 {
		return TestResult{}, fmt.Errorf("jarque-bera: empty sample: %w", errs.ErrInput)
	}
	jb := JarqueBera(Skew(x), Kurtosis(x), len(x))
	if math.IsNaN(jb) {
		return TestResult{}, fmt.Errorf("jarque-bera: sample has no spread: %w", errs.ErrDomain)
	}
	p, err := chi2df2.Survival(jb)
	if err != nil {
		return TestResult{}, fmt.Errorf("jarque-bera: %w", err)
	}
	return TestResult{Statistic: jb, PValue: p}, nil
}

// DurbinWatson returns Σ(eᵢ−eᵢ₋₁)² / Σeᵢ² for residuals e.
func DurbinWatson(resid []float64) float64 {
	var num, den float64
	for i, e := range resid {
		den += e * e
		if i > 0 {
			d := e - resid[i-1]
			num += d * d
		}
	}
	return num / den
}
