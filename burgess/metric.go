// SPDX-License-Identifier: MIT

package burgess

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lithocycle/matrix"
)

// MarkovOrder returns the Markov order metric m of a TP matrix.
//
// For every diagonal pair j = 1..F-1 the lower and upper components are summed
// separately and averaged over F:
//
//	v_j = (Σ_{i<F-j} m[F-1-i][j+i] + Σ_{i<j} m[j-1-i][i]) / F
//
// and m = max_j v_j - min_j v_j. A uniform matrix scores 0; a perfect cycle
// concentrates everything on one pair and scores highest.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooFewFacies.
// Complexity: O(F²).
func MarkovOrder(m *matrix.Dense) (float64, error) {
	values, err := MarkovOrderValues(m)
	if err != nil {
		return 0, err
	}

	return floats.Max(values) - floats.Min(values), nil
}

// MarkovOrderValues returns v_1..v_{F-1} (see MarkovOrder).
func MarkovOrderValues(m *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, burgessErrorf("MarkovOrder", err)
	}
	f := m.Rows()
	if f < 2 {
		return nil, burgessErrorf("MarkovOrder", ErrTooFewFacies)
	}

	return markovValues(m, make([]float64, f-1)), nil
}

// markovValues fills dst (length F-1) without validation.
func markovValues(m *matrix.Dense, dst []float64) []float64 {
	f := m.Rows()
	var j int
	for j = 1; j < f; j++ {
		dst[j-1] = (lowerDiagonalSum(m, f, j) + upperDiagonalSum(m, j)) / float64(f)
	}

	return dst
}

// markovOrder is MarkovOrder on trusted input with caller-owned scratch.
func markovOrder(m *matrix.Dense, scratch []float64) float64 {
	values := markovValues(m, scratch)

	return floats.Max(values) - floats.Min(values)
}
