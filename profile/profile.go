package profile

import (
	"fmt"
	"math"
	"strings"
)

// Layer is one interval [Top, Base) of a profile occupied by a single facies.
type Layer struct {
	Top    float64 `yaml:"top" json:"top"`
	Base   float64 `yaml:"base" json:"base"`
	Facies string  `yaml:"facies" json:"facies"`
}

// Thickness returns Base-Top.
func (l Layer) Thickness() float64 { return l.Base - l.Top }

// Profile is an ordered vertical sequence of N layers described by N+1
// strictly increasing depth boundaries and N facies labels.
//
// Index 0 is the first layer of the record (shallowest boundary first); the
// analysis only relies on adjacency, so the depth direction is a convention
// of the producer.
type Profile struct {
	Boundaries []float64 `yaml:"boundaries" json:"boundaries"`
	Facies     []string  `yaml:"facies" json:"facies"`
}

// New validates and returns a profile. The inputs are copied.
//
// Errors: ErrEmptyProfile, ErrBoundaryCount, ErrNonFinite, ErrNonIncreasing,
// ErrEmptyFacies (all wrapped with the offending index where applicable).
//
// Complexity: O(N).
func New(boundaries []float64, facies []string) (*Profile, error) {
	p := &Profile{
		Boundaries: append([]float64(nil), boundaries...),
		Facies:     append([]string(nil), facies...),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// FromLayers converts contiguous layer records into a profile.
//
// Errors: ErrEmptyProfile, ErrLayerGap, plus everything Validate reports.
// Complexity: O(N).
func FromLayers(layers []Layer) (*Profile, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyProfile
	}
	boundaries := make([]float64, 0, len(layers)+1)
	facies := make([]string, 0, len(layers))
	boundaries = append(boundaries, layers[0].Top)
	for i, l := range layers {
		if i > 0 && l.Top != layers[i-1].Base {
			return nil, fmt.Errorf("layer %d top %g != previous base %g: %w", i, l.Top, layers[i-1].Base, ErrLayerGap)
		}
		boundaries = append(boundaries, l.Base)
		facies = append(facies, l.Facies)
	}

	return New(boundaries, facies)
}

// Validate checks the profile shape contract.
// Complexity: O(N).
func (p *Profile) Validate() error {
	n := len(p.Facies)
	if n == 0 {
		return ErrEmptyProfile
	}
	if len(p.Boundaries) != n+1 {
		return fmt.Errorf("%d boundaries for %d layers: %w", len(p.Boundaries), n, ErrBoundaryCount)
	}
	for i, d := range p.Boundaries {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("boundary %d: %w", i, ErrNonFinite)
		}
		if i > 0 && d <= p.Boundaries[i-1] {
			return fmt.Errorf("boundary %d (%g) after %g: %w", i, d, p.Boundaries[i-1], ErrNonIncreasing)
		}
	}
	for i, f := range p.Facies {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("layer %d: %w", i, ErrEmptyFacies)
		}
	}

	return nil
}

// Len returns the number of layers N.
func (p *Profile) Len() int { return len(p.Facies) }

// Thickness returns the thickness of layer i.
func (p *Profile) Thickness(i int) float64 { return p.Boundaries[i+1] - p.Boundaries[i] }

// TotalThickness returns last boundary minus first.
func (p *Profile) TotalThickness() float64 {
	return p.Boundaries[len(p.Boundaries)-1] - p.Boundaries[0]
}

// Layers returns the profile as layer records.
func (p *Profile) Layers() []Layer {
	out := make([]Layer, len(p.Facies))
	for i, f := range p.Facies {
		out[i] = Layer{Top: p.Boundaries[i], Base: p.Boundaries[i+1], Facies: f}
	}

	return out
}

// Classes returns the distinct facies of the profile in order of first appearance.
func (p *Profile) Classes() []string { return Classes(p.Facies) }

// Merged returns a copy where adjacent layers of the same facies are joined.
// Repeated facies produce self-transitions that land on the anti-diagonal of a
// TP matrix, which the diagonal-pair bookkeeping ignores.
func (p *Profile) Merged() *Profile {
	out := &Profile{
		Boundaries: []float64{p.Boundaries[0]},
		Facies:     []string{},
	}
	for i, f := range p.Facies {
		last := len(out.Facies) - 1
		if last >= 0 && out.Facies[last] == f {
			out.Boundaries[len(out.Boundaries)-1] = p.Boundaries[i+1]
			continue
		}
		out.Facies = append(out.Facies, f)
		out.Boundaries = append(out.Boundaries, p.Boundaries[i+1])
	}

	return out
}

// Classes returns the distinct labels of seq in order of first appearance.
// Complexity: O(N).
func Classes(seq []string) []string {
	seen := make(map[string]struct{}, len(seq))
	var out []string
	for _, s := range seq {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
