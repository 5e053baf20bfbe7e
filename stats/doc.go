// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

// Package stats computes descriptive moments and the residual diagnostics
// reported for a fitted regression: D'Agostino's skewness and kurtosis tests,
// the omnibus K² test, Jarque–Bera and Durbin–Watson.
//
// Moments are population moments (divisor n). Skew and Kurtosis follow
// Pearson's definitions, so a normal sample has Kurtosis near 3.
package stats
