package burgess_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/profile"
)

func TestIdealOrientation(t *testing.T) {
	asc := mustRows(t, [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}})
	o, err := burgess.IdealOrientation(asc)
	require.NoError(t, err)
	assert.Equal(t, burgess.Ascending, o)

	// a tie falls back to descending
	o, err = burgess.IdealOrientation(uniform(t, 3))
	require.NoError(t, err)
	assert.Equal(t, burgess.Descending, o)
	assert.Equal(t, "descending", o.String())

	_, err = burgess.IdealOrientation(mustRows(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, burgess.ErrTooFewFacies)
}

func TestIdealOrder_ThreeCycle(t *testing.T) {
	coding, tp, err := burgess.BuildTransitionMatrix(repeat("A B C", 3), []string{"A", "B", "C"}, []int{0, 1, 2})
	require.NoError(t, err)

	order, o, err := burgess.IdealOrder(burgess.Entry{Coding: coding, Matrix: tp})
	require.NoError(t, err)
	assert.Equal(t, burgess.Ascending, o)
	assert.Equal(t, []string{"A", "B", "C"}, order)

	// A=0 C=1 B=2 turns the same cycle into c -> c-1
	coding, tp, err = burgess.BuildTransitionMatrix(repeat("A B C", 3), []string{"A", "B", "C"}, []int{0, 2, 1})
	require.NoError(t, err)
	order, o, err = burgess.IdealOrder(burgess.Entry{Coding: coding, Matrix: tp})
	require.NoError(t, err)
	assert.Equal(t, burgess.Descending, o)
	assert.Equal(t, []string{"B", "C", "A"}, order)
}

func TestBuildIdealSequence(t *testing.T) {
	p, err := profile.New([]float64{0, 1, 3, 6, 7, 9, 12}, repeat("A B C", 2))
	require.NoError(t, err)
	coding, tp, err := burgess.BuildTransitionMatrix(p.Facies, p.Classes(), []int{0, 1, 2})
	require.NoError(t, err)
	e := burgess.Entry{Coding: coding, Matrix: tp}

	seq, err := burgess.BuildIdealSequence(p, e, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, seq.Facies)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, seq.Thickness, 1e-4)
	assert.InDeltaSlice(t, []float64{0, 1, 3, 6}, seq.Depths, 1e-4)

	prop, err := burgess.BuildIdealSequence(p, e, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 6, 0.5, 1}, prop.Depths, 1e-5)
	assert.Equal(t, 1.0, prop.Depths[3])
}

func TestAnalyze(t *testing.T) {
	p, err := profile.New([]float64{0, 1, 3, 6, 7, 9, 12, 13, 15, 18}, repeat("A B C", 3))
	require.NoError(t, err)

	a, err := burgess.Analyze(context.Background(), p, burgess.DefaultOptions(), false)
	require.NoError(t, err)
	assert.Len(t, a.All, 6)
	require.Len(t, a.Sequences, len(a.Ideal))
	for _, seq := range a.Sequences {
		assert.Len(t, seq.Depths, 4)
		assert.InDelta(t, 6.0, seq.Depths[3], 1e-3)
	}
}
