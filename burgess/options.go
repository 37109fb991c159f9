// SPDX-License-Identifier: MIT

package burgess

import (
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/lithocycle/logging"
)

// Defaults.
const (
	// DefaultMaxFacies bounds F (8! = 40320 permutations).
	DefaultMaxFacies = 8

	// DefaultHistogramBins is the bin count of the m-value distribution.
	DefaultHistogramBins = 24

	// budgetWarnFacies is the facies count from which the search logs a
	// factorial budget warning.
	budgetWarnFacies = 8
)

// EqualFunc decides whether an m-value equals the maximum. It is the single
// comparison primitive of the maximal-set selection.
type EqualFunc func(m, mMax float64) bool

// ExactEqual is the reference selection: bitwise float equality, so near-ties
// are excluded.
func ExactEqual(m, mMax float64) bool { return m == mMax }

// ToleranceEqual returns an EqualFunc accepting |m-mMax| <= tol.
func ToleranceEqual(tol float64) EqualFunc {
	return func(m, mMax float64) bool { return math.Abs(m-mMax) <= tol }
}

// Options configures Search.
//
// Fields:
//   - MaxFacies    : reject profiles with more classes (F! growth guard).
//   - Workers      : goroutines scoring permutation chunks; 1 runs sequentially.
//   - Equal        : maximal-set comparison, ExactEqual by default.
//   - HistogramBins: bins of Result.Distribution.
//   - Logger       : progress and budget warnings; nil means silent.
type Options struct {
	MaxFacies     int
	Workers       int
	Equal         EqualFunc
	HistogramBins int
	Logger        *logging.Logger
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		MaxFacies:     DefaultMaxFacies,
		Workers:       runtime.GOMAXPROCS(0),
		Equal:         ExactEqual,
		HistogramBins: DefaultHistogramBins,
		Logger:        logging.Nop(),
	}
}

// normalize fills zero values with defaults and rejects negative ones.
func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.MaxFacies < 0 || o.Workers < 0 || o.HistogramBins < 0 {
		return o, fmt.Errorf("%w: MaxFacies=%d Workers=%d HistogramBins=%d",
			ErrInvalidOptions, o.MaxFacies, o.Workers, o.HistogramBins)
	}
	if o.MaxFacies == 0 {
		o.MaxFacies = def.MaxFacies
	}
	if o.Workers == 0 {
		o.Workers = def.Workers
	}
	if o.HistogramBins == 0 {
		o.HistogramBins = def.HistogramBins
	}
	if o.Equal == nil {
		o.Equal = ExactEqual
	}
	o.Logger = logging.OrNop(o.Logger)

	return o, nil
}
