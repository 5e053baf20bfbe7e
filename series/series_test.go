// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-setiawan/regress/errs"
)

func predictors() []Variable {
	return []Variable{
		{Title: "Cubed HH Size", Data: []float64{0, 0.04, 0.16, 0.36, 0.64, 1.00, 0.8, 0.9}},
		{Title: "HH Size", Data: []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 0.8, 0.9}},
	}
}

func response() Variable {
	return Variable{Title: "Y", Data: []float64{150.697, 179.323, 203.212, 226.505, 249.633, 281.422, 256.2, 231.2}}
}

func TestAddConstant(t *testing.T) {
	exog := predictors()

	front, err := AddConstant(exog, true)
	require.NoError(t, err)
	require.Len(t, front, 3)
	assert.True(t, front[0].IsConstant)
	assert.Equal(t, ConstantTitle, front[0].Title)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1}, front[0].Data)
	assert.Equal(t, "Cubed HH Size", front[1].Title)

	back, err := AddConstant(exog, false)
	require.NoError(t, err)
	assert.True(t, back[2].IsConstant)
	assert.Equal(t, "HH Size", back[1].Title)

	// input untouched, output does not alias it
	assert.Len(t, exog, 2)
	front[1].Data[0] = 42
	assert.Equal(t, 0.0, exog[0].Data[0])

	_, err = AddConstant(nil, true)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAddThenRemoveConstantRoundTrip(t *testing.T) {
	exog := predictors()
	for _, prepend := range []bool{true, false} {
		with, err := AddConstant(exog, prepend)
		require.NoError(t, err)
		assert.Equal(t, exog, RemoveConstant(with))
	}
}

func TestNewDesign(t *testing.T) {
	exog, err := AddConstant(predictors(), true)
	require.NoError(t, err)

	d, err := NewDesign(response(), exog)
	require.NoError(t, err)
	assert.Equal(t, 8, d.N)
	assert.Equal(t, 2, d.K)
	assert.Equal(t, 1, d.KConstant)
	assert.Equal(t, DegreesOfFreedom{Regression: 2, Residual: 5, Total: 7}, d.DF)
	assert.Equal(t, []string{"intercept", "Cubed HH Size", "HH Size"}, d.Titles())
	assert.Equal(t, 3, d.Columns())

	r, c := d.X.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, d.X.At(5, 0))
	assert.Equal(t, 0.36, d.X.At(3, 1))
	assert.Equal(t, 0.9, d.X.At(7, 2))
}

func TestNewDesignRejectsBadInput(t *testing.T) {
	short := predictors()
	short[1].Data = short[1].Data[:7]

	nan := predictors()
	nan[0].Data[2] = math.NaN()

	tests := []struct {
		name  string
		endog Variable
		exog  []Variable
		want  error
	}{
		{"length mismatch", response(), short, ErrLengthMismatch},
		{"empty response", Variable{Title: "Y"}, predictors(), ErrNoData},
		{"no predictors", response(), nil, ErrNoData},
		{"non-finite", response(), nan, ErrNonFinite},
		{"too few observations", Variable{Title: "Y", Data: []float64{1, 2, 3}}, []Variable{
			{Title: "a", Data: []float64{1, 2, 3}},
			{Title: "b", Data: []float64{3, 1, 2}},
		}, ErrTooFewObservations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDesign(tt.endog, tt.exog)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrInput)
		})
	}
}

