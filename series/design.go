// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package series

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DegreesOfFreedom of a fitted model.
type DegreesOfFreedom struct {
	Regression int // K
	Residual   int // N − K − 1
	Total      int // N − 1
}

// Design is a validated response and predictor set with its design matrix.
//
// The design is read-only once built. Models copy what they transform.
type Design struct {
	Response   Variable
	Predictors []Variable

	// X is N×(K+KConstant), one column per predictor in order.
	X *mat.Dense
	// Y is the response data.
	Y []float64

	N         int
	K         int // non-constant predictors
	KConstant int // constant predictors
	DF        DegreesOfFreedom
}

// NewDesign validates endog and exog and assembles the design matrix.
//
// Every predictor must have the same length as the response and all values
// must be finite. At least K+2 observations are needed so the residual
// degrees of freedom stay positive.
func NewDesign(endog Variable, exog []Variable) (*Design, error) {
	n := endog.Len()
	if err := endog.validate(n); err != nil {
		return nil, fmt.Errorf("design: response %w", err)
	}
	if len(exog) == 0 {
		return nil, fmt.Errorf("design: no predictors: %w", ErrNoData)
	}

	d := &Design{
		Response:   endog.clone(),
		Predictors: make([]Variable, len(exog)),
		X:          mat.NewDense(n, len(exog), nil),
		N:          n,
	}
	for j, v := range exog {
		if err := v.validate(n); err != nil {
			return nil, fmt.Errorf("design: predictor %w", err)
		}
		d.Predictors[j] = v.clone()
		d.X.SetCol(j, v.Data)
		if v.IsConstant {
			d.KConstant++
		} else {
			d.K++
		}
	}
	d.Y = d.Response.Data

	d.DF = DegreesOfFreedom{
		Regression: d.K,
		Residual:   n - d.K - 1,
		Total:      n - 1,
	}
	if d.DF.Residual <= 0 {
		return nil, fmt.Errorf("design: %d observations for %d predictors: %w", n, d.K, ErrTooFewObservations)
	}
	return d, nil
}

// Returns predictor titles in column order
func (d *Design) Titles() []string {
	out := make([]string, len(d.Predictors))
	for i, v := range d.Predictors {
		out[i] = v.Title
	}
	return out
}

// Columns returns the number of design columns, K + KConstant.
func (d *Design) Columns() int { return len(d.Predictors) }
