// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateOrder checks that m is square of order n.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateOrder(m *Dense, n int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r != n {
		return validatorErrorf("ValidateOrder", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN/±Inf anywhere in m.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", k/m.c, k%m.c), ErrNaNInf)
		}
	}

	return nil
}

// ValidateRowStochastic checks that every row either sums to 1 within tol
// or is entirely zero (a facies never observed as a predecessor).
// Negative entries are rejected as non-stochastic.
//
// Errors: ErrNilMatrix, ErrNotStochastic (tagged with the offending row).
// Complexity: O(r*c).
func ValidateRowStochastic(m *Dense, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		row := m.Row(i)
		sum, zero := 0.0, true
		for j = 0; j < m.c; j++ {
			if row[j] < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateRowStochastic(row %d)", i), ErrNotStochastic)
			}
			if row[j] != 0 {
				zero = false
			}
			sum += row[j]
		}
		if !zero && math.Abs(sum-1) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic(row %d)", i), ErrNotStochastic)
		}
	}

	return nil
}
