// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"fmt"
	"io"
	"log"

	"github.com/d-setiawan/regress/errs"
)

// EstimationOptions controls inference for a least-squares fit.
type EstimationOptions struct {
	// Significance level for confidence intervals, in (0,1). Zero means 0.05.
	Alpha float64
	// Receives [DEBUG] and [WARN] lines. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns 95% confidence intervals and no logging.
func DefaultOptions() EstimationOptions {
	return EstimationOptions{Alpha: 0.05}
}

// normalize fills zero fields with defaults and validates the rest.
func (o EstimationOptions) normalize() (EstimationOptions, error) {
	if o.Alpha == 0 {
		o.Alpha = DefaultOptions().Alpha
	}
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return o, fmt.Errorf("regression: alpha %g outside (0,1): %w", o.Alpha, errs.ErrInput)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o, nil
}
