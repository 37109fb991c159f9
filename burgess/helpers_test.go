package burgess_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/matrix"
)

// repeat returns unit (space separated labels) concatenated n times.
func repeat(unit string, n int) []string {
	fields := strings.Fields(unit)
	out := make([]string, 0, len(fields)*n)
	for k := 0; k < n; k++ {
		out = append(out, fields...)
	}

	return out
}

// mustRows builds a matrix literal or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// uniform returns the F×F matrix with every entry 1/F.
func uniform(t testing.TB, f int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, f)
	for i := range rows {
		rows[i] = make([]float64, f)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(f)
		}
	}

	return mustRows(t, rows)
}

// bitMatrix sets cell (r,c) to 2^(r*F+c) so any cell subset has a unique sum.
func bitMatrix(t testing.TB, f int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, f)
	for i := range rows {
		rows[i] = make([]float64, f)
		for j := range rows[i] {
			rows[i][j] = math.Ldexp(1, i*f+j)
		}
	}

	return mustRows(t, rows)
}
