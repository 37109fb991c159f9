package profile

import "fmt"

// Coding is a facies numbering: a bijection between F facies classes and the
// integer codes 0..F-1. Both directions are stored explicitly so reverse
// lookups never go through string conversion.
type Coding struct {
	classes []string       // classes in canonical order
	codes   map[string]int // label -> code
	labels  []string       // code -> label
}

// NewCoding assigns numbering[i] to classes[i].
//
// Errors:
//   - ErrDuplicateClass when classes repeats a label.
//   - ErrNotBijection when len(numbering) != len(classes) or numbering is not
//     a permutation of 0..F-1.
//
// Complexity: O(F).
func NewCoding(classes []string, numbering []int) (*Coding, error) {
	f := len(classes)
	if len(numbering) != f {
		return nil, fmt.Errorf("%d codes for %d classes: %w", len(numbering), f, ErrNotBijection)
	}
	c := &Coding{
		classes: append([]string(nil), classes...),
		codes:   make(map[string]int, f),
		labels:  make([]string, f),
	}
	taken := make([]bool, f)
	for i, label := range classes {
		if _, dup := c.codes[label]; dup {
			return nil, fmt.Errorf("class %q: %w", label, ErrDuplicateClass)
		}
		code := numbering[i]
		if code < 0 || code >= f || taken[code] {
			return nil, fmt.Errorf("code %d for class %q: %w", code, label, ErrNotBijection)
		}
		taken[code] = true
		c.codes[label] = code
		c.labels[code] = label
	}

	return c, nil
}

// IdentityCoding numbers classes 0..F-1 in their given order.
func IdentityCoding(classes []string) (*Coding, error) {
	numbering := make([]int, len(classes))
	for i := range numbering {
		numbering[i] = i
	}

	return NewCoding(classes, numbering)
}

// Len returns F.
func (c *Coding) Len() int { return len(c.labels) }

// Classes returns the canonical class order (copy).
func (c *Coding) Classes() []string { return append([]string(nil), c.classes...) }

// Code returns the code assigned to label.
func (c *Coding) Code(label string) (int, bool) {
	code, ok := c.codes[label]

	return code, ok
}

// Label returns the class assigned to code; it panics when code is outside 0..F-1.
func (c *Coding) Label(code int) string { return c.labels[code] }

// Labels returns the classes ordered by code (labels[code]).
func (c *Coding) Labels() []string { return append([]string(nil), c.labels...) }

// Numbering returns the code of each class in canonical class order.
func (c *Coding) Numbering() []int {
	out := make([]int, len(c.classes))
	for i, label := range c.classes {
		out[i] = c.codes[label]
	}

	return out
}

// Map returns a fresh label -> code map.
func (c *Coding) Map() map[string]int {
	out := make(map[string]int, len(c.codes))
	for k, v := range c.codes {
		out[k] = v
	}

	return out
}

// Encode maps every label in seq to its code.
// Errors: ErrUnknownFacies (wrapped with the position and label).
// Complexity: O(N).
func (c *Coding) Encode(seq []string) ([]int, error) {
	out := make([]int, len(seq))
	for i, label := range seq {
		code, ok := c.codes[label]
		if !ok {
			return nil, fmt.Errorf("layer %d %q: %w", i, label, ErrUnknownFacies)
		}
		out[i] = code
	}

	return out, nil
}

// Decode maps codes back to labels; it panics on codes outside 0..F-1.
func (c *Coding) Decode(codes []int) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = c.labels[code]
	}

	return out
}
