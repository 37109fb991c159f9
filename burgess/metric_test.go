package burgess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/matrix"
)

// TestMarkovOrder_PerfectCycle scores a strict cycle at the maximum of 1.
func TestMarkovOrder_PerfectCycle(t *testing.T) {
	for _, unit := range []string{"A B C", "A B C D"} {
		seq := repeat(unit, 3)
		classes := repeat(unit, 1)
		identity := make([]int, len(classes))
		for i := range identity {
			identity[i] = i
		}
		_, tp, err := burgess.BuildTransitionMatrix(seq, classes, identity)
		require.NoError(t, err)

		m, err := burgess.MarkovOrder(tp)
		require.NoError(t, err)
		assert.Equal(t, 1.0, m, unit)

		ideal, err := burgess.IsIdeal(tp)
		require.NoError(t, err)
		assert.True(t, ideal, unit)
	}
}

// TestMarkovOrder_Uniform yields exactly zero for a uniform matrix.
func TestMarkovOrder_Uniform(t *testing.T) {
	for _, f := range []int{2, 3, 4} {
		m, err := burgess.MarkovOrder(uniform(t, f))
		require.NoError(t, err)
		assert.Equal(t, 0.0, m, "F=%d", f)
	}
}

// TestMarkovOrderValues checks the per-pair averages on a hand-built matrix.
func TestMarkovOrderValues(t *testing.T) {
	// F=3 pair sums [5, 2] -> values [5/3, 2/3]
	m := mustRows(t, [][]float64{{5, 0, 0}, {2, 0, 0}, {0, 0, 0}})
	values, err := burgess.MarkovOrderValues(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5.0 / 3, 2.0 / 3}, values, 1e-15)

	got, err := burgess.MarkovOrder(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-15)
}

// TestMarkovOrder_Errors rejects degenerate shapes instead of crashing.
func TestMarkovOrder_Errors(t *testing.T) {
	one := mustRows(t, [][]float64{{1}})
	_, err := burgess.MarkovOrder(one)
	assert.ErrorIs(t, err, burgess.ErrTooFewFacies)

	_, err = burgess.MarkovOrder(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustRows(t, [][]float64{{1, 0}})
	_, err = burgess.MarkovOrder(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
