// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package distribution

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/errs"
)

// StudentsT is Student's t distribution with Nu degrees of freedom.
type StudentsT struct {
	Nu float64
}

// NewStudentsT validates nu > 0.
func NewStudentsT(nu float64) (StudentsT, error) {
	if !(nu > 0) || math.IsInf(nu, 0) {
		return StudentsT{}, fmt.Errorf("student's t: df %g: %w", nu, errs.ErrDomain)
	}
	return StudentsT{Nu: nu}, nil
}

// CDF returns P(T ≤ x).
func (t StudentsT) CDF(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("student's t cdf: x is NaN: %w", errs.ErrDomain)
	}
	tail, err := t.tail(x)
	if err != nil {
		return 0, err
	}
	if x > 0 {
		return 1 - tail, nil
	}
	return tail, nil
}

// Survival returns P(T > x).
func (t StudentsT) Survival(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("student's t survival: x is NaN: %w", errs.ErrDomain)
	}
	tail, err := t.tail(x)
	if err != nil {
		return 0, err
	}
	if x > 0 {
		return tail, nil
	}
	return 1 - tail, nil
}

// tail returns the one-sided mass beyond |x|, ½·I_{ν/(ν+x²)}(ν/2, ½).
func (t StudentsT) tail(x float64) (float64, error) {
	if math.IsInf(x, 0) {
		return 0, nil
	}
	i, err := RegIncBeta(t.Nu/(t.Nu+x*x), t.Nu/2, 0.5)
	if err != nil {
		return 0, err
	}
	return 0.5 * i, nil
}

// Quantile returns the x with CDF(x) = p, for p in [0,1].
func (t StudentsT) Quantile(p float64) (float64, error) {
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("student's t quantile: p %g outside [0,1]: %w", p, errs.ErrDomain)
	}
	fac, err := InvRegIncBeta(2*math.Min(p, 1-p), t.Nu/2, 0.5)
	if err != nil {
		return 0, err
	}
	y := math.Sqrt(t.Nu * (1 - fac) / fac)
	if p > 0.5 {
		return y, nil
	}
	return -y, nil
}
