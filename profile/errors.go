package profile

import "errors"

// Sentinel errors. Callers match them with errors.Is; call sites add context
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrEmptyProfile is returned when a profile has no layers.
	ErrEmptyProfile = errors.New("profile: no layers")

	// ErrBoundaryCount is returned when len(Boundaries) != len(Facies)+1.
	ErrBoundaryCount = errors.New("profile: boundaries must number layers+1")

	// ErrNonIncreasing is returned when depth boundaries are not strictly increasing.
	ErrNonIncreasing = errors.New("profile: depths must be strictly increasing")

	// ErrNonFinite is returned for NaN or ±Inf depths.
	ErrNonFinite = errors.New("profile: depth is NaN or Inf")

	// ErrEmptyFacies is returned for a blank facies label.
	ErrEmptyFacies = errors.New("profile: empty facies label")

	// ErrLayerGap is returned when layer records are not contiguous (base != next top).
	ErrLayerGap = errors.New("profile: layers are not contiguous")

	// ErrDuplicateClass is returned when a class list repeats a label.
	ErrDuplicateClass = errors.New("profile: duplicate facies class")

	// ErrNotBijection is returned when a numbering is not a permutation of 0..F-1
	// over exactly the given classes.
	ErrNotBijection = errors.New("profile: numbering is not a bijection onto 0..F-1")

	// ErrUnknownFacies is returned when a label is absent from the class list.
	ErrUnknownFacies = errors.New("profile: facies label not among classes")

	// ErrSampleCount is returned when depth samples and labels differ in length.
	ErrSampleCount = errors.New("profile: depth and label samples differ in length")

	// ErrUnknownFormat is returned when an input format cannot be determined.
	ErrUnknownFormat = errors.New("profile: unknown input format")
)
