// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package series

// Estimate is the fitted inference for one predictor. Statistic is a t value
// for least-squares models and a z value for maximum-likelihood models.
type Estimate struct {
	Title         string
	IsConstant    bool
	Coefficient   float64
	StandardError float64
	Statistic     float64
	PValue        float64
	CILower       float64
	CIUpper       float64
}
