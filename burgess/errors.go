// SPDX-License-Identifier: MIT

package burgess

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the analysis. Match them with errors.Is.
var (
	// ErrEmptySequence is returned when the lithology sequence has no layers.
	ErrEmptySequence = errors.New("burgess: empty lithology sequence")

	// ErrTooFewFacies is returned when F < 2; no diagonal pair exists to score.
	ErrTooFewFacies = errors.New("burgess: at least two facies classes are required")

	// ErrTooManyFacies is returned when F exceeds Options.MaxFacies.
	ErrTooManyFacies = errors.New("burgess: facies count exceeds the permutation guard")

	// ErrClassMismatch is returned when the class list does not match the
	// labels present in the lithology sequence.
	ErrClassMismatch = errors.New("burgess: classes do not match the facies present")

	// ErrCodeOutOfRange is returned when a coded sequence holds a value outside 0..F-1.
	ErrCodeOutOfRange = errors.New("burgess: facies code out of range")

	// ErrInvalidOptions is returned for nonsensical option values.
	ErrInvalidOptions = errors.New("burgess: invalid options")
)

// burgessErrorf tags err with the operation that produced it.
func burgessErrorf(op string, err error) error {
	return fmt.Errorf("burgess.%s: %w", op, err)
}
