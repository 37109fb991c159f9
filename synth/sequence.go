package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lithocycle/logging"
	"github.com/katalvlaran/lithocycle/profile"
)

// maxDrawAttempts bounds redraws of non-positive thicknesses.
const maxDrawAttempts = 1000

// Sequence is a stack of N parasequences drawn from a template.
type Sequence struct {
	Template *Template
	// Layers[i] holds the M+1 absolute layer boundaries of parasequence i.
	Layers [][]float64
	// Bounds holds the N+1 parasequence boundaries, starting at 0.
	Bounds []float64
	// MuLeft and MuRight are the compensational stacking means (equal to the
	// template thickness when Alpha or Psi is 0).
	MuLeft, MuRight float64

	opts    Options
	streams streams
}

// Generate draws parasequence and layer thicknesses.
//
// Stages:
//  1. Rebase the template to 0; mu0 is its total thickness.
//  2. Alpha != 0: split the skew-normal(Omega, mu0, Alpha) around its 25th and
//     75th percentiles into mu_left = mu0 - Psi(mu0-P25) and
//     mu_right = mu0 + Psi(P75-mu0); a random side starts and the sides alternate.
//  3. Beta != 0: each layer thickness is drawn from skew-normal(Omega, t, Beta).
//  4. Layer thicknesses are rescaled to the drawn parasequence total.
//
// Errors: ErrInvalidTemplate, ErrInvalidOptions, ErrDegenerateDraw.
func Generate(t *Template, opts Options) (*Sequence, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := logging.OrNop(opts.Logger)

	// Stage 1.
	template := t.rebased()
	m := len(t.Facies)
	mu0 := template[m]

	s := &Sequence{
		Template: t,
		Layers:   make([][]float64, opts.N),
		Bounds:   make([]float64, 1, opts.N+1),
		MuLeft:   mu0,
		MuRight:  mu0,
		opts:     opts,
		streams:  newStreams(opts.Seed),
	}
	rng := s.streams.thickness

	// Stage 2.
	if opts.Alpha != 0 {
		base := MeanCorrected(opts.Omega, mu0, opts.Alpha)
		p25, p75 := base.Quantile(0.25), base.Quantile(0.75)
		s.MuLeft = mu0 - opts.Psi*(mu0-p25)
		s.MuRight = mu0 + opts.Psi*(p75-mu0)
	}
	leftStart := rng.Intn(2) == 0

	offset := 0.0
	thick := make([]float64, m)
	for i := 0; i < opts.N; i++ {
		total := mu0
		if opts.Alpha != 0 {
			mu := s.MuRight
			if (i%2 == 0) == leftStart {
				mu = s.MuLeft
			}
			d, err := positiveDraw(MeanCorrected(opts.Omega, mu, opts.Alpha), rng)
			if err != nil {
				return nil, fmt.Errorf("parasequence %d: %w", i, err)
			}
			total = d
		}

		// Stage 3.
		sum := 0.0
		for j := 0; j < m; j++ {
			thick[j] = template[j+1] - template[j]
			if opts.Beta != 0 {
				d, err := positiveDraw(MeanCorrected(opts.Omega, thick[j], opts.Beta), rng)
				if err != nil {
					return nil, fmt.Errorf("parasequence %d layer %d: %w", i, j, err)
				}
				thick[j] = d
			}
			sum += thick[j]
		}

		// Stage 4.
		scale := 1.0
		if opts.Alpha != 0 || opts.Beta != 0 {
			scale = total / sum
		}
		layers := make([]float64, m+1)
		layers[0] = offset
		cum := 0.0
		for j := 0; j < m; j++ {
			cum += thick[j]
			layers[j+1] = offset + cum*scale
		}
		s.Layers[i] = layers
		offset = layers[m]
		s.Bounds = append(s.Bounds, offset)
	}

	log.Debug("parasequences drawn",
		"template", t.Name,
		"n", opts.N,
		"mu_left", s.MuLeft,
		"mu_right", s.MuRight,
		"thickness", offset)

	return s, nil
}

// positiveDraw samples d until it is positive.
func positiveDraw(d SkewNormal, rng *rand.Rand) (float64, error) {
	for k := 0; k < maxDrawAttempts; k++ {
		if v := d.Rand(rng); v > 0 {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: loc=%g scale=%g", ErrDegenerateDraw, d.Loc, d.Scale)
}

// Profile returns the stacked sequence: template facies repeated N times on
// the drawn boundaries.
func (s *Sequence) Profile() (*profile.Profile, error) {
	m := len(s.Template.Facies)
	boundaries := make([]float64, 0, len(s.Layers)*m+1)
	facies := make([]string, 0, len(s.Layers)*m)
	boundaries = append(boundaries, 0)
	for _, layers := range s.Layers {
		boundaries = append(boundaries, layers[1:]...)
		facies = append(facies, s.Template.Facies...)
	}

	return profile.New(boundaries, facies)
}

// Stacked generates a sequence and returns its stacked profile.
func Stacked(t *Template, opts Options) (*profile.Profile, error) {
	s, err := Generate(t, opts)
	if err != nil {
		return nil, err
	}

	return s.Profile()
}

// Noisy generates a sequence, samples it as a signal, adds Gamma noise and
// reads the facies back with the sieve reader.
func Noisy(t *Template, opts Options) (*profile.Profile, error) {
	s, err := Generate(t, opts)
	if err != nil {
		return nil, err
	}
	sig := s.Sample()
	sig.AddNoise(opts.Gamma, s.streams.noise)

	return sig.Read(s.streams.pick, logging.OrNop(opts.Logger))
}
