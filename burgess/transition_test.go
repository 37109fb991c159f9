package burgess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
)

// TestBuildTransitionMatrix_Cycle checks the reversed-row convention on a strict 3-cycle.
func TestBuildTransitionMatrix_Cycle(t *testing.T) {
	coding, tp, err := burgess.BuildTransitionMatrix(repeat("A B C", 3), []string{"A", "B", "C"}, []int{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, coding.Map())
	// row 0 = C (2->0), row 1 = B (1->2), row 2 = A (0->1)
	want := mustRows(t, [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}})
	assert.True(t, matrix.Equal(want, tp), "got\n%v", tp)
}

// TestBuildTransitionMatrix_ZeroRow covers a facies that never precedes another layer.
func TestBuildTransitionMatrix_ZeroRow(t *testing.T) {
	_, tp, err := burgess.BuildTransitionMatrix([]string{"A", "B", "A", "C"}, []string{"A", "B", "C"}, []int{0, 1, 2})
	require.NoError(t, err)

	want := mustRows(t, [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 0.5, 0.5}})
	assert.True(t, matrix.Equal(want, tp), "got\n%v", tp)
	assert.NoError(t, matrix.ValidateRowStochastic(tp, 1e-12))
}

// TestBuildTransitionMatrix_RowsStochastic checks every numbering of a mixed sequence.
func TestBuildTransitionMatrix_RowsStochastic(t *testing.T) {
	seq := []string{"SH", "SST", "SLT", "SH", "LST", "SST", "SH", "SLT", "LST", "SH"}
	classes := profile.Classes(seq)
	for _, perm := range burgess.Permutations(len(classes)) {
		_, tp, err := burgess.BuildTransitionMatrix(seq, classes, perm)
		require.NoError(t, err)
		assert.NoError(t, matrix.ValidateRowStochastic(tp, 1e-12), "numbering %v", perm)
	}
}

// TestBuildTransitionMatrix_RoundTrip rebuilds from the returned coding.
func TestBuildTransitionMatrix_RoundTrip(t *testing.T) {
	seq := []string{"A", "C", "B", "A", "B", "C", "C", "A"}
	classes := []string{"A", "C", "B"}
	coding, tp, err := burgess.BuildTransitionMatrix(seq, classes, []int{2, 0, 1})
	require.NoError(t, err)

	codes, err := coding.Encode(seq)
	require.NoError(t, err)
	again, err := burgess.TransitionMatrix(codes, coding.Len())
	require.NoError(t, err)
	assert.True(t, matrix.Equal(tp, again))

	_, viaNumbering, err := burgess.BuildTransitionMatrix(seq, coding.Classes(), coding.Numbering())
	require.NoError(t, err)
	assert.True(t, matrix.Equal(tp, viaNumbering))
}

// TestBuildTransitionMatrix_Errors covers the fail-fast contract.
func TestBuildTransitionMatrix_Errors(t *testing.T) {
	_, _, err := burgess.BuildTransitionMatrix(nil, []string{"A"}, []int{0})
	assert.ErrorIs(t, err, burgess.ErrEmptySequence)

	_, _, err = burgess.BuildTransitionMatrix([]string{"A", "B"}, []string{"A", "B"}, []int{1, 1})
	assert.ErrorIs(t, err, profile.ErrNotBijection)

	_, _, err = burgess.BuildTransitionMatrix([]string{"A", "B"}, []string{"A", "B", "C"}, []int{0, 1, 2})
	assert.ErrorIs(t, err, burgess.ErrClassMismatch)

	_, _, err = burgess.BuildTransitionMatrix([]string{"A", "Z"}, []string{"A"}, []int{0})
	assert.ErrorIs(t, err, profile.ErrUnknownFacies)

	_, err = burgess.TransitionMatrix([]int{0, 3}, 3)
	assert.ErrorIs(t, err, burgess.ErrCodeOutOfRange)
}
