// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package discrete

import (
	"fmt"
	"io"
	"log"

	"github.com/d-setiawan/regress/errs"
)

// EstimationOptions controls the Newton–Raphson solver and inference.
type EstimationOptions struct {
	// Significance level for confidence intervals, in (0,1). Zero means 0.05.
	Alpha float64
	// Iteration budget. Zero means 100.
	MaxIter int
	// Convergence when every coefficient moves by at most this much. Zero means 1e-9.
	Tolerance float64
	// Receives [DEBUG] and [INFO] lines. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns alpha 0.05, 100 iterations, tolerance 1e-9.
func DefaultOptions() EstimationOptions {
	return EstimationOptions{Alpha: 0.05, MaxIter: 100, Tolerance: 1e-9}
}

func (o EstimationOptions) normalize() (EstimationOptions, error) {
	def := DefaultOptions()
	if o.Alpha == 0 {
		o.Alpha = def.Alpha
	}
	if o.MaxIter == 0 {
		o.MaxIter = def.MaxIter
	}
	if o.Tolerance == 0 {
		o.Tolerance = def.Tolerance
	}
	switch {
	case !(o.Alpha > 0 && o.Alpha < 1):
		return o, fmt.Errorf("logit: alpha %g outside (0,1): %w", o.Alpha, errs.ErrInput)
	case o.MaxIter < 0:
		return o, fmt.Errorf("logit: max iterations %d: %w", o.MaxIter, errs.ErrInput)
	case !(o.Tolerance > 0):
		return o, fmt.Errorf("logit: tolerance %g: %w", o.Tolerance, errs.ErrInput)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o, nil
}
