// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package errs holds the error classes shared by every package of the module.
//
// Packages return these sentinels (or package sentinels wrapping them) so that
// callers can classify any failure with errors.Is, whatever layer raised it:
//
//	res, err := model.Fit()
//	if errors.Is(err, errs.ErrNumericDegeneracy) {
//		// drop a collinear predictor and retry
//	}
package errs

import "errors"

var (
	// ErrInput reports malformed caller input, e.g. series of different lengths.
	ErrInput = errors.New("regress: invalid input")

	// ErrDomain reports a function argument outside its valid range, e.g. an
	// incomplete-beta x outside [0,1] or non-positive degrees of freedom.
	ErrDomain = errors.New("regress: argument out of domain")

	// ErrNumericDegeneracy reports a singular or near-singular matrix met during
	// QR factorization, back-substitution or inversion.
	ErrNumericDegeneracy = errors.New("regress: numerically degenerate matrix")

	// ErrConvergence reports an iterative solver that exhausted its iteration
	// budget without meeting its tolerance.
	ErrConvergence = errors.New("regress: failed to converge")
)
