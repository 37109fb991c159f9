package burgess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lithocycle/burgess"
)

func TestNewDistribution(t *testing.T) {
	d := burgess.NewDistribution([]float64{2, 0, 1, 1}, 2)

	assert.Equal(t, 0.0, d.Min)
	assert.Equal(t, 2.0, d.Max)
	assert.Equal(t, 1.0, d.Mean)
	assert.InDelta(t, math.Sqrt(0.5), d.StdDev, 1e-12)
	assert.Equal(t, []float64{0, 1, 2}, d.Edges)
	// the maximum lands in the closed last bin
	assert.Equal(t, []float64{0.25, 0.75}, d.Frequency)
}

func TestNewDistribution_Degenerate(t *testing.T) {
	d := burgess.NewDistribution([]float64{3, 3}, 4)
	assert.Equal(t, 2.5, d.Edges[0])
	assert.Equal(t, 3.5, d.Edges[4])
	assert.InDelta(t, 1.0, sum(d.Frequency), 1e-12)
	assert.Equal(t, 0.0, d.StdDev)

	assert.Equal(t, burgess.Distribution{}, burgess.NewDistribution(nil, 24))
}
