package matrix_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_SetBounds checks bounds errors and the finite-value policy on Set.
func TestDense_SetBounds(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 0.25))
	assert.Equal(t, []float64{0.25, 0}, m.Row(1))

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.Equal(t, 0.0, m.Row(0)[0], "rejected values must not be stored")
}

// TestFromRows_Ragged ensures ragged literals are rejected.
func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_RowViewAndSums verifies that Row is a live view and RowSums is row-major.
func TestDense_RowViewAndSums(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0.5, 0.5}, {0, 0}})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0}, m.RowSums())

	m.Row(1)[1] = 1
	assert.Equal(t, []float64{1, 1}, m.RowSums(), "Row must alias the backing storage")
}

// TestEqual compares shape and every element exactly.
func TestEqual(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	c, _ := matrix.FromRows(m.ToRows())
	require.True(t, matrix.Equal(m, c))

	require.NoError(t, c.Set(0, 0, 9))
	assert.False(t, matrix.Equal(m, c))

	rect, _ := matrix.NewDense(1, 4)
	assert.False(t, matrix.Equal(m, rect))
	assert.True(t, matrix.Equal(nil, nil))
	assert.False(t, matrix.Equal(m, nil))
}

// TestDense_JSON checks the array-of-rows encoding.
func TestDense_JSON(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[0,1],[1,0]]`, string(b))

	var back matrix.Dense
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, matrix.Equal(m, &back))
}

// TestDense_String renders one bracketed line per row.
func TestDense_String(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{1, 0.5}, {0, 2}})
	assert.Equal(t, "[1, 0.5]\n[0, 2]\n", m.String())
}

// TestValidateRowStochastic accepts stochastic and zero rows and rejects the rest.
func TestValidateRowStochastic(t *testing.T) {
	ok, _ := matrix.FromRows([][]float64{{0.25, 0.75}, {0, 0}})
	assert.NoError(t, matrix.ValidateRowStochastic(ok, 1e-12))

	bad, _ := matrix.FromRows([][]float64{{0.25, 0.5}, {0, 0}})
	assert.ErrorIs(t, matrix.ValidateRowStochastic(bad, 1e-12), matrix.ErrNotStochastic)

	assert.ErrorIs(t, matrix.ValidateRowStochastic(nil, 0), matrix.ErrNilMatrix)
}

// TestValidateSquareAndOrder checks shape validators.
func TestValidateSquareAndOrder(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, _ := matrix.NewSquare(3)
	assert.NoError(t, matrix.ValidateOrder(sq, 3))
	assert.ErrorIs(t, matrix.ValidateOrder(sq, 4), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateFinite(sq))

	sq.Row(2)[1] = math.Inf(-1)
	assert.ErrorIs(t, matrix.ValidateFinite(sq), matrix.ErrNaNInf)
}
