package profile

import "fmt"

// FromSamples converts a sampled log (one label per strictly increasing depth
// sample) into a profile by merging runs of equal labels.
//
// The profile spans depths[0]..depths[last]; a boundary between two runs is
// placed halfway between the last sample of one run and the first sample of
// the next.
//
// Errors: ErrSampleCount, ErrEmptyProfile (fewer than two samples), plus
// Validate errors.
// Complexity: O(S).
func FromSamples(depths []float64, labels []string) (*Profile, error) {
	if len(depths) != len(labels) {
		return nil, fmt.Errorf("%d depths, %d labels: %w", len(depths), len(labels), ErrSampleCount)
	}
	if len(depths) < 2 {
		return nil, ErrEmptyProfile
	}

	p := &Profile{
		Boundaries: []float64{depths[0]},
		Facies:     []string{labels[0]},
	}
	for i := 1; i < len(labels); i++ {
		if labels[i] == labels[i-1] {
			continue
		}
		p.Boundaries = append(p.Boundaries, (depths[i-1]+depths[i])/2)
		p.Facies = append(p.Facies, labels[i])
	}
	p.Boundaries = append(p.Boundaries, depths[len(depths)-1])

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
