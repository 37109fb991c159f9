package synth

import (
	"fmt"

	"github.com/katalvlaran/lithocycle/logging"
)

// Options configures the generator.
//
// Fields:
//   - N         : number of parasequences.
//   - Resolution: sampling step of the noisy path (depth units).
//   - Alpha     : scale of the parasequence thickness distribution; 0 keeps the template total.
//   - Beta      : scale of the per-layer thickness distribution; 0 keeps template thicknesses.
//   - Psi       : compensational stacking strength in [0, 1]; pulls alternate
//     parasequences towards the 25th/75th percentiles.
//   - Omega     : skew-normal shape shared by both distributions.
//   - Gamma     : standard deviation of the Gaussian noise of the noisy path.
//   - Seed      : RNG seed; 0 selects the fixed default seed.
type Options struct {
	N          int     `yaml:"n"`
	Resolution float64 `yaml:"resolution"`
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Psi        float64 `yaml:"psi"`
	Omega      float64 `yaml:"omega"`
	Gamma      float64 `yaml:"gamma"`
	Seed       int64   `yaml:"seed"`

	Logger *logging.Logger `yaml:"-"`
}

// DefaultOptions returns five undisturbed parasequences sampled every 0.25.
func DefaultOptions() Options {
	return Options{
		N:          5,
		Resolution: 0.25,
		Logger:     logging.Nop(),
	}
}

func (o Options) validate() error {
	switch {
	case o.N < 1:
		return fmt.Errorf("%w: N=%d", ErrInvalidOptions, o.N)
	case o.Resolution <= 0:
		return fmt.Errorf("%w: Resolution=%g", ErrInvalidOptions, o.Resolution)
	case o.Alpha < 0 || o.Beta < 0 || o.Gamma < 0:
		return fmt.Errorf("%w: negative scale (alpha=%g beta=%g gamma=%g)", ErrInvalidOptions, o.Alpha, o.Beta, o.Gamma)
	case o.Psi < 0 || o.Psi > 1:
		return fmt.Errorf("%w: Psi=%g outside [0, 1]", ErrInvalidOptions, o.Psi)
	}

	return nil
}
