package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestConsistentRange(t *testing.T) {
	r := consistentRange(0, 2.5, 0.25)
	require.Len(t, r, 11)
	assert.Equal(t, 0.0, r[0])
	assert.Equal(t, 2.5, r[10])
	assert.InDelta(t, 1.25, r[5], 1e-12)

	assert.Equal(t, []float64{1}, consistentRange(1, 1.1, 0.25))
}

func TestAssignSign(t *testing.T) {
	assert.Equal(t, SignPos, assignSign([]float64{1, 2, 3, -1}))
	assert.Equal(t, SignNeg, assignSign([]float64{-1, -2, -3, 0}))
	assert.Equal(t, SignBoth, assignSign([]float64{1, -2, 3, -1}))
}

func TestSample_TestRun(t *testing.T) {
	tpl, err := LookupTemplate("test-run")
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.N = 1
	seq, err := Generate(tpl, opts)
	require.NoError(t, err)

	sig := seq.Sample()
	// 11+19+13+13+29+13 points, shared boundaries counted once
	require.Len(t, sig.X, 93)
	assert.Equal(t, 0.0, sig.X[0])
	assert.InDelta(t, 23.0, sig.X[92], 1e-12)
	for i := 1; i < len(sig.X); i++ {
		assert.Greater(t, sig.X[i], sig.X[i-1])
	}

	require.Len(t, sig.Tables, 1)
	table := sig.Tables[0]
	require.Len(t, table, 6)
	assert.Equal(t, "SST", table[0].Facies)
	assert.Equal(t, [3]Sign{SignPos, SignNeg, SignNeg}, table[0].Signs)
	assert.Equal(t, 1.0, table[1].Hi)
	assert.Equal(t, -1.0, table[4].Lo)
	// the first layer keeps the range of its own 11 samples
	assert.Equal(t, 0.0, table[0].Lo)
	assert.Equal(t, floats.Min(sig.Y[:11]), table[0].Lo)
	assert.Equal(t, floats.Max(sig.Y[:11]), table[0].Hi)

	scale := 0.0
	for _, v := range sig.D[0] {
		scale = math.Max(scale, math.Abs(v))
	}
	assert.InDelta(t, 1.0, scale, 1e-12)

	before := append([]float64(nil), sig.Y...)
	sig.AddNoise(0, rand.New(rand.NewSource(1)))
	assert.Equal(t, before, sig.Y)

	sig.AddNoise(5, rand.New(rand.NewSource(1)))
	for i, y := range sig.Y {
		assert.LessOrEqual(t, math.Abs(y), 1.0)
		for o := range sig.D {
			assert.LessOrEqual(t, math.Abs(sig.D[o][i]), 1.0)
		}
	}
}

func TestClassify(t *testing.T) {
	table := []SieveRule{
		{Facies: "A", Lo: -1, Hi: 0, Signs: [3]Sign{SignPos, SignBoth, SignBoth}},
		{Facies: "B", Lo: 0, Hi: 1, Signs: [3]Sign{SignNeg, SignBoth, SignBoth}},
	}
	rng := rand.New(rand.NewSource(1))

	f, how := classify(0.5, [3]float64{}, table, rng)
	assert.Equal(t, "B", f)
	assert.Equal(t, bySieve, how)

	f, how = classify(0, [3]float64{0.2, 0, 0}, table, rng)
	assert.Equal(t, "A", f)
	assert.Equal(t, bySieve, how)

	// Equal midpoint distances leave a random pick.
	f, how = classify(0, [3]float64{}, table, rng)
	assert.Contains(t, []string{"A", "B"}, f)
	assert.Equal(t, byRandom, how)

	// Outside every range: nearest midpoint of the whole table.
	f, how = classify(1.5, [3]float64{}, table, rng)
	assert.Equal(t, "B", f)
	assert.Equal(t, byMidpoint, how)
}

func TestWidenTable(t *testing.T) {
	table := []SieveRule{{Lo: -0.5, Hi: 0.2}, {Lo: -0.9, Hi: 0.8}, {Lo: 0.1, Hi: 0.3}}
	widenTable(table)
	assert.Equal(t, -1.0, table[1].Lo)
	assert.Equal(t, 1.0, table[1].Hi)
	assert.Equal(t, -0.5, table[0].Lo)
}
