// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package distribution

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/errs"
)

// ChiSquared is the χ² distribution with K degrees of freedom.
type ChiSquared struct {
	K float64
}

// NewChiSquared validates k > 0.
func NewChiSquared(k float64) (ChiSquared, error) {
	if !(k > 0) || math.IsInf(k, 0) {
		return ChiSquared{}, fmt.Errorf("chi-squared: df %g: %w", k, errs.ErrDomain)
	}
	return ChiSquared{K: k}, nil
}

// CDF returns P(X ≤ x) = P(k/2, x/2).
func (c ChiSquared) CDF(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("chi-squared cdf: x is NaN: %w", errs.ErrDomain)
	}
	if x <= 0 {
		return 0, nil
	}
	return RegLowerGamma(c.K/2, x/2)
}

// Survival returns P(X > x) = Q(k/2, x/2).
func (c ChiSquared) Survival(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("chi-squared survival: x is NaN: %w", errs.ErrDomain)
	}
	if x <= 0 {
		return 1, nil
	}
	return RegUpperGamma(c.K/2, x/2)
}
