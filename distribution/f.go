// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package distribution

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/errs"
)

// F is Snedecor's F distribution with D1 numerator and D2 denominator degrees
// of freedom.
type F struct {
	D1 float64
	D2 float64
}

// NewF validates that both degrees of freedom are positive and finite.
func NewF(d1, d2 float64) (F, error) {
	d := F{D1: d1, D2: d2}
	if err := d.validate(); err != nil {
		return F{}, err
	}
	return d, nil
}

func (d F) validate() error {
	if !(d.D1 > 0) || !(d.D2 > 0) || math.IsInf(d.D1, 0) || math.IsInf(d.D2, 0) {
		return fmt.Errorf("f distribution: df (%g, %g): %w", d.D1, d.D2, errs.ErrDomain)
	}
	return nil
}

// CDF returns P(X ≤ f).
func (d F) CDF(f float64) (float64, error) {
	sf, err := d.Survival(f)
	if err != nil {
		return 0, err
	}
	return 1 - sf, nil
}

// Survival returns P(X > f).
//
// For integer degrees of freedom the tail is a finite sum chosen by parity:
// an even numerator sums directly, an even denominator sums the reciprocal
// distribution at 1/f, and two odd degrees use the trigonometric series.
// Non-integer degrees fall back to the incomplete beta function.
func (d F) Survival(f float64) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(f):
		return 0, fmt.Errorf("f survival: f is NaN: %w", errs.ErrDomain)
	case f <= 0:
		return 1, nil
	case math.IsInf(f, 1):
		return 0, nil
	}

	a, b := d.D1, d.D2
	if !isInteger(a) || !isInteger(b) {
		return RegIncBeta(b/(b+a*f), b/2, a/2)
	}

	var sf float64
	switch {
	case isEven(a):
		sf = evenNumeratorSurvival(a, b, f)
	case isEven(b):
		sf = 1 - evenNumeratorSurvival(b, a, 1/f)
	default:
		sf = oddSurvival(a, b, f)
	}
	return clamp01(sf), nil
}

// evenNumeratorSurvival sums the tail of F(a, b) at f for even a:
//
//	(1−q)^(b/2) · Σ_{i<a/2} C(b/2+i−1, i)·q^i,  q = af/(af+b)
func evenNumeratorSurvival(a, b, f float64) float64 {
	q := a * f / (a*f + b)
	lq := math.Log(q)
	base := b / 2 * math.Log1p(-q)

	sf := math.Exp(base)
	logTerm := 0.0
	for x := 2.0; x < a; x += 2 {
		logTerm += math.Log(b+x-2) - math.Log(x) + lq
		sf += math.Exp(logTerm + base)
	}
	return sf
}

// oddSurvival is the tail of F(a, b) at f for odd a and b, with θ the angle
// whose squared sine is q = af/(af+b).
func oddSurvival(a, b, f float64) float64 {
	q := a * f / (a*f + b)
	sinT := math.Sqrt(q)
	cosT := math.Sqrt(1 - q)
	logSin := math.Log(sinT)
	logCos := math.Log(cosT)
	theta := math.Atan2(sinT, cosT)

	sf := 1 - 2*theta/math.Pi

	// Student-like part in powers of cos θ.
	logCoef := 0.0
	if b != 1 {
		lead := math.Log(2 * sinT / math.Pi)
		sf -= math.Exp(lead + logCos)
		for x := 3.0; x <= b-2; x += 2 {
			logCoef += math.Log((x - 1) / x)
			sf -= math.Exp(logCoef + logCos*x + lead)
		}
	}

	// Correction in powers of sin θ, zero when a = 1.
	if a != 1 {
		lead := logCoef
		if b > 1 {
			lead += math.Log(b - 1)
		}
		lead += math.Log(2/math.Pi) + logSin + logCos*b
		sf += math.Exp(lead)

		r := 0.0
		for x := 3.0; x <= a-2; x += 2 {
			r += math.Log((b + x - 2) / x)
			sf += math.Exp(r + logSin*(x-1) + lead)
		}
	}
	return sf
}

func isInteger(v float64) bool { return v == math.Trunc(v) }

func isEven(v float64) bool { return math.Mod(v, 2) == 0 }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
