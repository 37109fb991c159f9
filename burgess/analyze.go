// SPDX-License-Identifier: MIT

package burgess

import (
	"context"

	"github.com/katalvlaran/lithocycle/profile"
)

// Analysis bundles a search over a profile with the ideal sequence of every
// ideal entry.
type Analysis struct {
	Profile *profile.Profile
	*Result
	// Sequences[k] belongs to Result.Ideal[k].
	Sequences []*IdealSequence
}

// Analyze validates p, runs Search over its facies and derives the ideal
// sequences. proportional normalizes ideal depths to [0, 1].
func Analyze(ctx context.Context, p *profile.Profile, opts Options, proportional bool) (*Analysis, error) {
	if err := p.Validate(); err != nil {
		return nil, burgessErrorf("Analyze", err)
	}
	res, err := Search(ctx, p.Facies, p.Classes(), opts)
	if err != nil {
		return nil, err
	}

	a := &Analysis{Profile: p, Result: res, Sequences: make([]*IdealSequence, len(res.Ideal))}
	for k, e := range res.Ideal {
		if a.Sequences[k], err = BuildIdealSequence(p, e, proportional); err != nil {
			return nil, err
		}
	}

	return a, nil
}
