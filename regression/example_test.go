// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/d-setiawan/regress/regression"
	"github.com/d-setiawan/regress/series"
)

func ExampleNewOLS() {
	// 1. Response and predictors
	y := series.Variable{Title: "Y", Data: []float64{150.697, 179.323, 203.212, 226.505, 249.633, 281.422, 256.2, 231.2}}
	exog := []series.Variable{
		{Title: "Cubed HH Size", Data: []float64{0, 0.04, 0.16, 0.36, 0.64, 1.00, 0.8, 0.9}},
		{Title: "HH Size", Data: []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 0.8, 0.9}},
	}

	// 2. Intercept goes first
	exog, err := series.AddConstant(exog, true)
	if err != nil {
		panic(err)
	}

	// 3. Estimate
	model, err := regression.NewOLS(y, exog, regression.DefaultOptions())
	if err != nil {
		panic(err)
	}
	res, err := model.Fit()
	if err != nil {
		panic(err)
	}

	for _, e := range res.Estimates() {
		fmt.Printf("%s: %.4f (se %.4f)\n", e.Title, e.Coefficient, e.StandardError)
	}
	fp, err := res.FProbability()
	if err != nil {
		panic(err)
	}
	fmt.Printf("R-squared: %.4f\n", res.RSquared())
	fmt.Printf("F: %.4f (p %.4f)\n", res.FStatistic(), fp)

	// 4. Predict a new household
	pred, err := res.Predict(mat.NewDense(1, 3, []float64{1, 0.12, 0.8}), nil)
	if err != nil {
		panic(err)
	}
	fmt.Printf("prediction: %.4f\n", pred[0])

	// Output:
	// intercept: 150.8398 (se 12.1408)
	// Cubed HH Size: -24.9927 (se 48.4010)
	// HH Size: 142.3288 (se 54.2165)
	// R-squared: 0.9261
	// F: 31.3461 (p 0.0015)
	// prediction: 261.7037
}

func ExampleNewGLS() {
	y := series.Variable{Title: "Y", Data: []float64{150.697, 179.323, 203.212, 226.505, 249.633, 281.422, 256.2, 231.2}}
	exog, err := series.AddConstant([]series.Variable{
		{Title: "Cubed HH Size", Data: []float64{0, 0.04, 0.16, 0.36, 0.64, 1.00, 0.8, 0.9}},
		{Title: "HH Size", Data: []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 0.8, 0.9}},
	}, true)
	if err != nil {
		panic(err)
	}

	// nil sigma: estimate an AR(1) covariance from OLS residuals
	model, err := regression.NewGLS(y, exog, nil, regression.DefaultOptions())
	if err != nil {
		panic(err)
	}
	res, err := model.Fit()
	if err != nil {
		panic(err)
	}
	fmt.Printf("rho: %.4f\n", model.Rho())
	fmt.Printf("R-squared: %.4f\n", res.RSquared())
	fmt.Printf("log-likelihood: %.4f\n", res.LogLikelihood())

	// Output:
	// rho: -0.4079
	// R-squared: 0.9711
	// log-likelihood: -30.1798
}
