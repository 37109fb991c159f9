package synth

import "errors"

var (
	// ErrInvalidTemplate is returned for a malformed parasequence template.
	ErrInvalidTemplate = errors.New("synth: invalid template")

	// ErrUnknownTemplate is returned when no embedded template has the given name.
	ErrUnknownTemplate = errors.New("synth: unknown template")

	// ErrInvalidOptions is returned for nonsensical generator options.
	ErrInvalidOptions = errors.New("synth: invalid options")

	// ErrDegenerateDraw is returned when thickness draws stay non-positive.
	ErrDegenerateDraw = errors.New("synth: thickness draws stay non-positive")
)
