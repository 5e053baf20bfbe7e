// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package discrete fits binary-choice models by maximum likelihood.
//
// Logit models P(y=1 | x) = 1/(1+e^{−xβ}). Coefficients are found by
// Newton–Raphson from β = 0 using the analytic score X'(y − p) and Hessian
// −X' diag(p(1−p)) X. The solver moves through the states
//
//	Initial → Iterating → Converged | MaxIterReached
//
// and a fit that ends in MaxIterReached fails with errs.ErrConvergence.
// Inference is asymptotic: z statistics and normal confidence intervals.
package discrete
