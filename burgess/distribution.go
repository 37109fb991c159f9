// SPDX-License-Identifier: MIT

package burgess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution summarizes the m-values of a search.
type Distribution struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	// Edges holds len(Frequency)+1 equally spaced bin boundaries.
	Edges []float64 `json:"edges"`
	// Frequency[b] is the share of m-values in bin b; the shares sum to 1.
	Frequency []float64 `json:"frequency"`
}

// NewDistribution bins values into `bins` equal-width bins over [min, max],
// the last bin closed, each value weighted 1/len(values). When all values are
// equal the range is widened to [v-0.5, v+0.5].
//
// Complexity: O(n log n) for the sort.
func NewDistribution(values []float64, bins int) Distribution {
	if len(values) == 0 || bins < 1 {
		return Distribution{}
	}
	x := append([]float64(nil), values...)
	sort.Float64s(x)

	d := Distribution{
		Min:  x[0],
		Max:  x[len(x)-1],
		Mean: stat.Mean(x, nil),
	}
	if len(x) > 1 {
		d.StdDev = math.Sqrt(stat.PopVariance(x, nil))
	}

	lo, hi := d.Min, d.Max
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	d.Edges = floats.Span(make([]float64, bins+1), lo, hi)

	// stat.Histogram bins are half open; nudge the last divider past hi so
	// the maximum falls in the final bin.
	dividers := append([]float64(nil), d.Edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	weights := make([]float64, len(x))
	for k := range weights {
		weights[k] = 1 / float64(len(x))
	}
	d.Frequency = stat.Histogram(nil, dividers, x, weights)

	return d
}
