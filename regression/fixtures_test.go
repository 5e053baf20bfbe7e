// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d-setiawan/regress/series"
)

// relTol is the documented tolerance of every fixture comparison.
const relTol = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= relTol*math.Max(1, math.Abs(b))
}

// skipComments returns the next line that is neither blank nor a # comment.
func skipComments(scanner *bufio.Scanner) string {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}
	return ""
}

// readTable reads a CSV fixture whose first column is the response.
func readTable(t *testing.T, name string) (series.Variable, []series.Variable) {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	header := strings.Split(skipComments(scanner), ",")
	require.GreaterOrEqual(t, len(header), 2, "header of %s", name)

	cols := make([][]float64, len(header))
	for line := skipComments(scanner); line != ""; line = skipComments(scanner) {
		fields := strings.Split(line, ",")
		require.Len(t, fields, len(header), "row %q", line)
		for j, s := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			require.NoError(t, err)
			cols[j] = append(cols[j], v)
		}
	}
	require.NoError(t, scanner.Err())

	endog := series.Variable{Title: header[0], Data: cols[0]}
	exog := make([]series.Variable, 0, len(header)-1)
	for j := 1; j < len(header); j++ {
		exog = append(exog, series.Variable{Title: strings.TrimSpace(header[j]), Data: cols[j]})
	}
	return endog, exog
}

// readExpected reads "key v1 v2 ..." lines into a map.
func readExpected(t *testing.T, name string) map[string][]float64 {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	out := make(map[string][]float64)
	scanner := bufio.NewScanner(f)
	for line := skipComments(scanner); line != ""; line = skipComments(scanner) {
		fields := strings.Fields(line)
		vals := make([]float64, 0, len(fields)-1)
		for _, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err, "%s: %q", name, line)
			vals = append(vals, v)
		}
		out[fields[0]] = vals
	}
	require.NoError(t, scanner.Err())
	return out
}

// household returns the fixture response and predictors with an intercept prepended.
func household(t *testing.T) (series.Variable, []series.Variable) {
	t.Helper()
	endog, exog := readTable(t, "household.txt")
	exog, err := series.AddConstant(exog, true)
	require.NoError(t, err)
	return endog, exog
}
