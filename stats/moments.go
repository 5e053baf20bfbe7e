// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x, weighted when weights is non-nil.
func Mean(x, weights []float64) float64 {
	return stat.Mean(x, weights)
}

// Std returns the population standard deviation of x.
func Std(x []float64) float64 {
	_, v := stat.PopMeanVariance(x, nil)
	return math.Sqrt(v)
}

// Skew returns the population skewness m₃ / m₂^{3/2}.
// It is NaN when x has no spread.
func Skew(x []float64) float64 {
	return standardMoment(x, 3)
}

// Kurtosis returns the population kurtosis m₄ / m₂² (not excess kurtosis).
// It is NaN when x has no spread.
func Kurtosis(x []float64) float64 {
	return standardMoment(x, 4)
}

func standardMoment(x []float64, k float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	m, v := stat.PopMeanVariance(x, nil)
	if v == 0 {
		return math.NaN()
	}
	dev := make([]float64, len(x))
	for i, xi := range x {
		dev[i] = math.Pow(xi-m, k)
	}
	return floats.Sum(dev) / float64(len(x)) / math.Pow(v, k/2)
}
