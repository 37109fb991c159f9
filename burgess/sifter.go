// SPDX-License-Identifier: MIT

package burgess

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lithocycle/matrix"
)

// IsIdeal reports whether the largest diagonal pair sum of m sits on pair 1
// or pair F-1, the nearest-neighbour diagonals of a strict cycle.
//
// Ties are inclusive: the result is true whenever sums[0] or sums[F-2] equals
// the maximum, even if an interior pair reaches the same value.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooFewFacies.
// Complexity: O(F²).
func IsIdeal(m *matrix.Dense) (bool, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return false, burgessErrorf("IsIdeal", err)
	}
	if m.Rows() < 2 {
		return false, burgessErrorf("IsIdeal", ErrTooFewFacies)
	}

	return isIdealSums(DiagonalPairSums(m)), nil
}

func isIdealSums(sums []float64) bool {
	top := floats.Max(sums)

	return sums[0] == top || sums[len(sums)-1] == top
}
