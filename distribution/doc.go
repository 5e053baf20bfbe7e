// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package distribution provides the special functions and probability
// distributions used for inference: gamma and log-gamma, the regularized
// incomplete gamma and beta functions with the inverse of the latter, and the
// Normal, ChiSquared, F and StudentsT distributions.
//
// Every routine is an approximation. Tests compare against reference values
// with an explicit tolerance (1e-6 relative unless stated otherwise).
//
// Distribution values are built with a validating constructor and are then
// safe for concurrent use:
//
//	t, err := distribution.NewStudentsT(5)
//	if err != nil {
//		return err
//	}
//	crit, err := t.Quantile(0.975) // ≈ 2.570582
//
// Arguments outside a function's domain fail with errs.ErrDomain.
package distribution
