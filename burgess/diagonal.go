// SPDX-License-Identifier: MIT
// Package: burgess
//
// Purpose:
//   - Diagonal-pair bookkeeping shared by the Markov order scorer and the
//     diagonal alignment sifter.
//
// Geometry (F×F, row i = source code F-1-i, column j = destination code j):
//   - The upper component of pair j runs from (j-1, 0) up to (0, j-1).
//   - The lower component runs from (F-1, j) down to (j, F-1).
//   - Pair 1 collects the code c -> c+1 transitions plus (F-1) -> 0;
//     pair F-1 collects c -> c-1 plus 0 -> (F-1). Self-transitions sit on the
//     anti-diagonal (i + j == F-1) and belong to no pair.

package burgess

import (
	"fmt"

	"github.com/katalvlaran/lithocycle/matrix"
)

// mustPairArgs panics unless m is an f×f matrix and 1 <= j <= f-1.
func mustPairArgs(m *matrix.Dense, f, j int) {
	if m == nil || !m.IsSquare() || m.Rows() != f {
		panic(fmt.Sprintf("burgess: diagonal pair on a non %dx%d matrix", f, f))
	}
	if j < 1 || j > f-1 {
		panic(fmt.Sprintf("burgess: diagonal pair index %d outside [1, %d]", j, f-1))
	}
}

// upperDiagonalSum returns Σ_{i<j} m[j-1-i][i], accumulated in index order.
func upperDiagonalSum(m *matrix.Dense, j int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < j; i++ {
		sum += m.Row(j - 1 - i)[i]
	}

	return sum
}

// lowerDiagonalSum returns Σ_{i<F-j} m[F-1-i][j+i], accumulated in index order.
func lowerDiagonalSum(m *matrix.Dense, f, j int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < f-j; i++ {
		sum += m.Row(f - 1 - i)[j+i]
	}

	return sum
}

// DiagonalPairSum returns the sum of the entries on diagonal pair j of the
// f×f matrix m: the upper component first, then the lower one, into a single
// accumulator.
//
// Contracts:
//   - m must be f×f and 1 <= j <= f-1; anything else is a programming error
//     and panics.
//
// Complexity: O(F) time, O(1) space.
func DiagonalPairSum(m *matrix.Dense, f, j int) float64 {
	mustPairArgs(m, f, j)

	var (
		sum float64
		i   int
	)
	for i = 0; i < j; i++ {
		sum += m.Row(j - 1 - i)[i]
	}
	for i = 0; i < f-j; i++ {
		sum += m.Row(f - 1 - i)[j+i]
	}

	return sum
}

// DiagonalPairSums returns DiagonalPairSum for j = 1..F-1 (index j-1).
// It panics on a non-square matrix; F < 2 yields an empty slice.
//
// Complexity: O(F²).
func DiagonalPairSums(m *matrix.Dense) []float64 {
	if m == nil || !m.IsSquare() {
		panic("burgess: diagonal pairs of a non-square matrix")
	}
	f := m.Rows()
	if f < 2 {
		return []float64{}
	}
	sums := make([]float64, f-1)
	var j int
	for j = 1; j < f; j++ {
		sums[j-1] = DiagonalPairSum(m, f, j)
	}

	return sums
}
