// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package regression fits linear models by ordinary, weighted and generalized
// least squares.
//
// The three estimators share one fit routine. They differ only in the
// whitening transform applied to the design matrix and the response before
// the normal equations are solved:
//
//	OLS  identity
//	WLS  each row scaled by sqrt(weightᵢ)
//	GLS  Lᵀ, where L is the lower Cholesky factor of Σ⁻¹
//
// When NewGLS is given no Σ it estimates an AR(1) residual correlation ρ from
// an OLS fit and uses the Toeplitz matrix Σᵢⱼ = ρ^|i−j|.
//
// Fit returns a *Results whose diagnostics are computed on first access and
// cached. A Results value is immutable and safe for concurrent readers; calling
// Fit again yields an independent Results with its own caches.
package regression
