// SPDX-License-Identifier: MIT

package burgess

import (
	"fmt"

	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
)

// BuildTransitionMatrix codes lithologies with numbering (numbering[i] is the
// code of classes[i]) and returns the coding together with its TP matrix.
//
// Contracts:
//   - lithologies is non-empty.
//   - classes are distinct and are exactly the labels present in lithologies.
//   - numbering is a permutation of 0..F-1.
//
// Errors: ErrEmptySequence, ErrClassMismatch, profile.ErrDuplicateClass,
// profile.ErrNotBijection, profile.ErrUnknownFacies.
//
// Complexity: O(N + F²) time, O(N + F²) space.
func BuildTransitionMatrix(lithologies, classes []string, numbering []int) (*profile.Coding, *matrix.Dense, error) {
	// Stage 1 (Validate): sequence and class set.
	if len(lithologies) == 0 {
		return nil, nil, burgessErrorf("BuildTransitionMatrix", ErrEmptySequence)
	}
	coding, err := profile.NewCoding(classes, numbering)
	if err != nil {
		return nil, nil, burgessErrorf("BuildTransitionMatrix", err)
	}
	if err = checkClassesPresent(lithologies, classes); err != nil {
		return nil, nil, burgessErrorf("BuildTransitionMatrix", err)
	}

	// Stage 2 (Encode): labels -> codes.
	codes, err := coding.Encode(lithologies)
	if err != nil {
		return nil, nil, burgessErrorf("BuildTransitionMatrix", err)
	}

	// Stage 3 (Count & normalize).
	tp, err := TransitionMatrix(codes, coding.Len())
	if err != nil {
		return nil, nil, burgessErrorf("BuildTransitionMatrix", err)
	}

	return coding, tp, nil
}

// stochasticTolerance bounds the rounding drift of a normalized TP row sum.
const stochasticTolerance = 1e-9

// TransitionMatrix builds the F×F TP matrix of a coded sequence.
//
// Row i holds transitions out of code F-1-i, column j transitions into code j.
// Each adjacent pair (codes[k-1], codes[k]) adds one count; the row
// denominator is the number of times the source occurs as a predecessor.
// Entries are count / max(denominator, 1), so a code that never precedes
// another layer yields an all-zero row. The result is checked with
// matrix.ValidateRowStochastic before it is returned.
//
// Errors: ErrCodeOutOfRange, matrix.ErrInvalidDimensions (f < 1),
// matrix.ErrNotStochastic.
// Complexity: O(N + F²).
func TransitionMatrix(codes []int, f int) (*matrix.Dense, error) {
	tp, err := matrix.NewSquare(f)
	if err != nil {
		return nil, err
	}
	var k int
	for k = range codes {
		if codes[k] < 0 || codes[k] >= f {
			return nil, fmt.Errorf("code %d at %d: %w", codes[k], k, ErrCodeOutOfRange)
		}
	}
	fillTransitions(tp, codes, make([]int, f))
	if err = matrix.ValidateRowStochastic(tp, stochasticTolerance); err != nil {
		return nil, err
	}

	return tp, nil
}

// fillTransitions writes the normalized transition counts of codes into tp,
// which must be zeroed and F×F. denom is scratch of length F. Codes are
// trusted to lie in 0..F-1.
func fillTransitions(tp *matrix.Dense, codes []int, denom []int) {
	f := tp.Rows()
	var (
		k, i, j int
		row     []float64
	)
	for i = range denom {
		denom[i] = 0
	}
	for k = 1; k < len(codes); k++ {
		i = f - 1 - codes[k-1]
		tp.Row(i)[codes[k]]++
		denom[i]++
	}
	for i = 0; i < f; i++ {
		d := denom[i]
		if d == 0 {
			d = 1
		}
		row = tp.Row(i)
		for j = 0; j < f; j++ {
			row[j] /= float64(d)
		}
	}
}

// checkClassesPresent reports ErrClassMismatch unless every class occurs in
// lithologies. Labels missing from classes are reported later by Encode.
func checkClassesPresent(lithologies, classes []string) error {
	seen := make(map[string]struct{}, len(classes))
	for _, l := range lithologies {
		seen[l] = struct{}{}
	}
	for _, c := range classes {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("class %q absent from the sequence: %w", c, ErrClassMismatch)
		}
	}

	return nil
}
