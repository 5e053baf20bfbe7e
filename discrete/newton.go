// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package discrete

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/errs"
	"github.com/d-setiawan/regress/linalg"
)

// SolverState is the Newton–Raphson lifecycle.
type SolverState int

const (
	StateInitial SolverState = iota
	StateIterating
	StateConverged
	StateMaxIterReached
)

func (s SolverState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateMaxIterReached:
		return "max iterations reached"
	}
	return fmt.Sprintf("SolverState(%d)", int(s))
}

// objective supplies the score and Hessian of a log-likelihood.
type objective interface {
	score(params []float64) []float64
	hessian(params []float64) *mat.Dense
	observations() int
}

type newtonResult struct {
	params     []float64
	iterations int
	state      SolverState
}

// newton maximises f from start with steps β ← β − (H/N)⁻¹(g/N).
//
// Returns the last iterate together with an error wrapping
// errs.ErrConvergence when maxIter steps do not meet tol.
func newton(f objective, start []float64, maxIter int, tol float64, logger *log.Logger) (newtonResult, error) {
	n := float64(f.observations())
	res := newtonResult{params: append([]float64(nil), start...), state: StateInitial}

	for res.iterations < maxIter {
		res.state = StateIterating

		g := f.score(res.params)
		floats.Scale(1/n, g)
		h := linalg.ScaleMatrix(1/n, f.hessian(res.params))

		hinv, err := linalg.Inverse(h)
		if err != nil {
			return res, fmt.Errorf("newton iteration %d: %w", res.iterations+1, err)
		}
		step, err := linalg.MatVec(hinv, g)
		if err != nil {
			return res, err
		}

		floats.Sub(res.params, step)
		res.iterations++

		maxStep := floats.Norm(step, math.Inf(1))
		if math.IsNaN(maxStep) || math.IsInf(maxStep, 0) {
			return res, fmt.Errorf("newton iteration %d: non-finite step: %w", res.iterations, errs.ErrNumericDegeneracy)
		}
		logger.Printf("[DEBUG] newton: iteration %d, max |step| = %.3g", res.iterations, maxStep)

		if maxStep <= tol {
			res.state = StateConverged
			return res, nil
		}
	}

	res.state = StateMaxIterReached
	return res, fmt.Errorf("newton: no convergence to %g after %d iterations: %w", tol, maxIter, errs.ErrConvergence)
}
