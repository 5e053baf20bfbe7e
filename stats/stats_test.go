// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-setiawan/regress/errs"
)

// OLS residuals of the household-size regression.
var residuals = []float64{
	-0.14275116848435232,
	1.017189850879305,
	-0.5604530380589949,
	-0.7346798352991186,
	0.9255094591587749,
	13.246114845314821,
	11.491341642554943,
	-25.242271756065122,
}

func TestMoments(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5, Mean(x, nil), 1e-12)
	assert.InDelta(t, 2, Std(x), 1e-12)

	w := []float64{1, 0, 0, 0, 0, 0, 0, 1}
	assert.InDelta(t, 5.5, Mean(x, w), 1e-12)

	sym := []float64{-2, -1, 0, 1, 2}
	assert.InDelta(t, 0, Skew(sym), 1e-12)
	assert.InDelta(t, 1.7, Kurtosis(sym), 1e-12)

	assert.True(t, math.IsNaN(Skew([]float64{3, 3, 3})))
	assert.True(t, math.IsNaN(Kurtosis(nil)))
}

func TestResidualDiagnostics(t *testing.T) {
	assert.InDelta(t, -1.1871942084390812, Skew(residuals), 1e-6)
	assert.InDelta(t, 4.047992597075074, Kurtosis(residuals), 1e-6)
	assert.InDelta(t, 1.5946579573660176, DurbinWatson(residuals), 1e-6)

	s, err := SkewTest(residuals)
	require.NoError(t, err)
	assert.InDelta(t, -1.9601661760163, s, 1e-6)

	k, err := KurtosisTest(residuals)
	require.NoError(t, err)
	assert.InDelta(t, 1.9765924722032, k, 1e-6)

	om, err := Omnibus(residuals)
	require.NoError(t, err)
	assert.InDelta(t, 7.749169238768937, om.Statistic, 1e-6)
	assert.InDelta(t, 0.020762960614076342, om.PValue, 1e-6)

	jb, err := JarqueBeraTest(residuals)
	require.NoError(t, err)
	assert.InDelta(t, 2.245336279243115, jb.Statistic, 1e-6)
	assert.InDelta(t, 0.325410394930935, jb.PValue, 1e-6)
	assert.Equal(t, jb.Statistic, JarqueBera(Skew(residuals), Kurtosis(residuals), len(residuals)))
}

func TestNormalityTestSampleSize(t *testing.T) {
	_, err := SkewTest(residuals[:7])
	assert.ErrorIs(t, err, errs.ErrDomain)

	_, err = KurtosisTest(residuals[:4])
	assert.ErrorIs(t, err, errs.ErrDomain)

	_, err = KurtosisTest(residuals[:5])
	assert.NoError(t, err)

	_, err = Omnibus(residuals[:7])
	assert.ErrorIs(t, err, errs.ErrDomain)

	_, err = SkewTest([]float64{1, 1, 1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, errs.ErrDomain)

	_, err = JarqueBeraTest(nil)
	assert.ErrorIs(t, err, errs.ErrInput)
}

func TestDurbinWatson(t *testing.T) {
	// alternating residuals are strongly negatively autocorrelated
	assert.InDelta(t, 3, DurbinWatson([]float64{1, -1, 1, -1}), 1e-12)
	assert.InDelta(t, 0, DurbinWatson([]float64{2, 2, 2}), 1e-12)
}
