// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package distribution

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/errs"
)

// Normal is the normal distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// StdNormal is the standard normal distribution.
var StdNormal = Normal{Mu: 0, Sigma: 1}

// NewNormal returns a normal distribution; sigma must be positive.
func NewNormal(mu, sigma float64) (Normal, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Normal{}, fmt.Errorf("normal: mu=%g sigma=%g: %w", mu, sigma, errs.ErrDomain)
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

// PDF returns the density at x.
func (n Normal) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-0.5*z*z) / (n.Sigma * math.Sqrt(2*math.Pi))
}

// CDF returns P(X ≤ x).
func (n Normal) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2))
}

// Survival returns P(X > x). It does not lose precision in the upper tail.
func (n Normal) Survival(x float64) float64 {
	return 0.5 * math.Erfc((x-n.Mu)/(n.Sigma*math.Sqrt2))
}

// Quantile returns the x with CDF(x) = p. p must lie in [0,1]; the endpoints
// map to ∓Inf.
func (n Normal) Quantile(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("normal quantile: p %g outside [0,1]: %w", p, errs.ErrDomain)
	}
	return n.Mu - n.Sigma*math.Sqrt2*inverseErfc(2*p), nil
}

// inverseErfc returns y with erfc(y) = x for x in [0,2].
//
// A rational seed is polished with two Halley steps.
func inverseErfc(x float64) float64 {
	switch {
	case x <= 0:
		return math.Inf(1)
	case x >= 2:
		return math.Inf(-1)
	}

	xx := x
	if x >= 1 {
		xx = 2 - x
	}
	t := math.Sqrt(-2 * math.Log(xx/2))
	r := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	for j := 0; j < 2; j++ {
		e := math.Erfc(r) - xx
		r += e / (2/math.SqrtPi*math.Exp(-r*r) - r*e)
	}
	if x < 1 {
		return r
	}
	return -r
}
