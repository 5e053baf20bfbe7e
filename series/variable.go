// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package series holds the named data series a model is built from and turns
// a response plus predictors into a validated design matrix.
package series

import (
	"fmt"
	"math"

	"github.com/d-setiawan/regress/errs"
)

// ConstantTitle names the all-ones column inserted by AddConstant.
const ConstantTitle = "intercept"

var (
	// ErrLengthMismatch means a predictor's length differs from the response.
	ErrLengthMismatch = fmt.Errorf("series: length mismatch: %w", errs.ErrInput)
	// ErrNoData means a series, or the predictor set, is empty.
	ErrNoData = fmt.Errorf("series: no data: %w", errs.ErrInput)
	// ErrNonFinite means a value is NaN or infinite. Missing data is not imputed.
	ErrNonFinite = fmt.Errorf("series: non-finite value: %w", errs.ErrInput)
	// ErrTooFewObservations means the residual degrees of freedom would not be positive.
	ErrTooFewObservations = fmt.Errorf("series: too few observations: %w", errs.ErrInput)
)

// Variable is a named series of observations.
// IsConstant marks an intercept column.
type Variable struct {
	Title      string
	Data       []float64
	IsConstant bool
}

// Len returns the number of observations.
func (v Variable) Len() int { return len(v.Data) }

// Constant returns an all-ones intercept variable of length n.
func Constant(n int) Variable {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return Variable{Title: ConstantTitle, Data: ones, IsConstant: true}
}

// AddConstant returns a copy of exog with an intercept inserted at the front
// when prepend is true, or appended otherwise. exog itself is not modified.
func AddConstant(exog []Variable, prepend bool) ([]Variable, error) {
	if len(exog) == 0 {
		return nil, fmt.Errorf("add constant: %w", ErrNoData)
	}
	c := Constant(exog[0].Len())

	out := make([]Variable, 0, len(exog)+1)
	if prepend {
		out = append(out, c)
	}
	for _, v := range exog {
		out = append(out, v.clone())
	}
	if !prepend {
		out = append(out, c)
	}
	return out, nil
}

// RemoveConstant returns a copy of exog without its constant variables,
// keeping the order of the rest.
func RemoveConstant(exog []Variable) []Variable {
	out := make([]Variable, 0, len(exog))
	for _, v := range exog {
		if !v.IsConstant {
			out = append(out, v.clone())
		}
	}
	return out
}

func (v Variable) clone() Variable {
	v.Data = append([]float64(nil), v.Data...)
	return v
}

func (v Variable) validate(n int) error {
	if len(v.Data) == 0 {
		return fmt.Errorf("%q: %w", v.Title, ErrNoData)
	}
	if len(v.Data) != n {
		return fmt.Errorf("%q has %d observations, want %d: %w", v.Title, len(v.Data), n, ErrLengthMismatch)
	}
	for i, x := range v.Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%q[%d] = %g: %w", v.Title, i, x, ErrNonFinite)
		}
	}
	return nil
}
