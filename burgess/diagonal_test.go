package burgess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lithocycle/burgess"
)

// TestDiagonalPairSum_Cells checks the exact cell membership of every pair for F=4.
func TestDiagonalPairSum_Cells(t *testing.T) {
	m := bitMatrix(t, 4)

	// pair 1: (0,0) (3,1) (2,2) (1,3)
	assert.Equal(t, 1.0+8192+1024+128, burgess.DiagonalPairSum(m, 4, 1))
	// pair 2: (1,0) (0,1) (3,2) (2,3)
	assert.Equal(t, 16.0+2+16384+2048, burgess.DiagonalPairSum(m, 4, 2))
	// pair 3: (2,0) (1,1) (0,2) (3,3)
	assert.Equal(t, 256.0+32+4+32768, burgess.DiagonalPairSum(m, 4, 3))

	// pairs plus the anti-diagonal (0,3) (1,2) (2,1) (3,0) cover the matrix.
	var total float64
	for _, s := range burgess.DiagonalPairSums(m) {
		total += s
	}
	assert.Equal(t, 65535.0-(4096+512+64+8), total)
}

// TestDiagonalPairSum_Uniform checks hand-computed constants for uniform matrices.
func TestDiagonalPairSum_Uniform(t *testing.T) {
	for _, f := range []int{3, 4} {
		m := uniform(t, f)
		for j := 1; j < f; j++ {
			// every pair holds F cells of 1/F
			assert.InDelta(t, 1.0, burgess.DiagonalPairSum(m, f, j), 1e-15, "F=%d j=%d", f, j)
		}
		assert.Len(t, burgess.DiagonalPairSums(m), f-1)
	}
}

// TestDiagonalPairSum_Panics verifies fail-fast on programming errors.
func TestDiagonalPairSum_Panics(t *testing.T) {
	m := uniform(t, 3)
	assert.Panics(t, func() { burgess.DiagonalPairSum(m, 3, 0) })
	assert.Panics(t, func() { burgess.DiagonalPairSum(m, 3, 3) })
	assert.Panics(t, func() { burgess.DiagonalPairSum(m, 4, 1) })
	assert.Panics(t, func() { burgess.DiagonalPairSum(nil, 3, 1) })

	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Panics(t, func() { burgess.DiagonalPairSums(rect) })
}
