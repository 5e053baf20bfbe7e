// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package linalg is the dense linear-algebra kernel behind the regression
// engines.
//
// Matrices are gonum *mat.Dense values. The package adds what the engines need
// on top of gonum storage: a generalized scalar/vector/matrix Product, a
// Householder QR factorization with sign-safe reflections, back-substitution,
// upper-triangular inversion and a QR-based general inverse.
//
// Numerically singular input is never divided through silently. A column whose
// norm, or a pivot whose magnitude, falls below SingularTolerance relative to
// the scale of the matrix fails the call with ErrSingular.
//
//	qr, err := linalg.HouseholderQR(a)
//	if err != nil {
//		return err
//	}
//	qtb, _ := linalg.MatVec(linalg.Transpose(qr.Q), b)
//	beta, err := linalg.BackSolve(qr.R, qtb)
package linalg
