package render

import "errors"

var (
	// ErrNilInput is returned when the profile, matrix or coding to draw is nil.
	ErrNilInput = errors.New("render: nil input")

	// ErrInvalidSize is returned for a canvas too small to hold the figure.
	ErrInvalidSize = errors.New("render: invalid canvas size")

	// ErrInvalidColor is returned for a style color that is not "#rrggbb".
	ErrInvalidColor = errors.New("render: invalid color")

	// ErrShapeMismatch is returned when an ideal order does not match the coding.
	ErrShapeMismatch = errors.New("render: ideal order and coding disagree")
)
