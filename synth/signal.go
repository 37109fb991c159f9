package synth

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lithocycle/logging"
	"github.com/katalvlaran/lithocycle/profile"
)

// signThreshold is the share of samples a derivative sign must reach to
// characterize a layer.
const signThreshold = 0.75

// Sign is the characteristic sign of a derivative over one layer.
type Sign int8

const (
	// SignBoth: neither sign reaches the threshold.
	SignBoth Sign = iota
	// SignPos: at least 75% of the samples are positive.
	SignPos
	// SignNeg: at least 75% of the samples are negative.
	SignNeg
)

// SieveRule describes how one facies looks in the signal of one parasequence.
type SieveRule struct {
	Facies string
	// Lo and Hi bound the signal value over the layer; the lowest Lo and the
	// highest Hi of a parasequence are widened to -1 and 1.
	Lo, Hi float64
	// Signs of the 1st, 2nd and 3rd derivative.
	Signs [3]Sign
}

// Signal is a sequence sampled at a fixed resolution along one sine period
// per parasequence.
type Signal struct {
	X []float64
	Y []float64
	// D holds the 1st, 2nd and 3rd derivatives normalized to [-1, 1].
	D [3][]float64
	// Bounds are the parasequence boundaries.
	Bounds []float64
	// Tables[i] holds the sieve rules of parasequence i in template order.
	Tables [][]SieveRule
}

// Sample turns the sequence into a signal: every parasequence of thickness
// d carries y = sin(2πx/d) on its local depth x, sampled at Resolution within
// each layer. Shared layer boundaries are sampled once.
func (s *Sequence) Sample() *Signal {
	sig := &Signal{
		Bounds: append([]float64(nil), s.Bounds...),
		Tables: make([][]SieveRule, len(s.Layers)),
	}
	res := s.opts.Resolution

	for i, layers := range s.Layers {
		base := s.Bounds[i]
		k := 2 * math.Pi / (s.Bounds[i+1] - base)
		table := make([]SieveRule, len(s.Template.Facies))

		for j, facies := range s.Template.Facies {
			xl := consistentRange(layers[j]-base, layers[j+1]-base, res)
			y := make([]float64, len(xl))
			d1 := make([]float64, len(xl))
			d2 := make([]float64, len(xl))
			d3 := make([]float64, len(xl))
			for q, x := range xl {
				y[q] = math.Sin(k * x)
				d1[q] = math.Cos(k*x) * k
				d2[q] = -math.Sin(k*x) * k * k
				d3[q] = -math.Cos(k*x) * k * k * k
			}
			table[j] = SieveRule{
				Facies: facies,
				Lo:     floats.Min(y),
				Hi:     floats.Max(y),
				Signs:  [3]Sign{assignSign(d1), assignSign(d2), assignSign(d3)},
			}

			start := 1
			if i == 0 && j == 0 {
				start = 0
			}
			for q := start; q < len(xl); q++ {
				sig.X = append(sig.X, xl[q]+base)
				sig.Y = append(sig.Y, y[q])
				sig.D[0] = append(sig.D[0], d1[q])
				sig.D[1] = append(sig.D[1], d2[q])
				sig.D[2] = append(sig.D[2], d3[q])
			}
		}
		widenTable(table)
		sig.Tables[i] = table
	}
	for o := range sig.D {
		normalizeAbs(sig.D[o])
	}

	return sig
}

// AddNoise adds one N(0, gamma) draw per sample to the value and to every
// derivative, clamping each to [-1, 1].
func (sig *Signal) AddNoise(gamma float64, rng *rand.Rand) {
	if gamma == 0 {
		return
	}
	for i := range sig.Y {
		v := gamma * stdNormal(rng)
		sig.Y[i] = clampUnit(sig.Y[i] + v)
		for o := range sig.D {
			sig.D[o][i] = clampUnit(sig.D[o][i] + v)
		}
	}
}

// Read classifies every sample with the sieves of its parasequence and
// merges runs of equal facies into a profile.
//
// Sieves, in order, each narrowing the previous one:
//  1. value within [Lo, Hi] (rounded to 2 decimals);
//  2.-4. sign of the 1st, 2nd, 3rd derivative (rounded to 3 decimals);
//
// the first sieve left with a single facies decides. Otherwise the facies
// whose value range midpoint is uniquely nearest wins, and failing that a
// random facies of the deepest sieve holding more than one candidate.
func (sig *Signal) Read(rng *rand.Rand, log *logging.Logger) (*profile.Profile, error) {
	flags := make([]string, len(sig.X))
	var midpoints, randoms int
	n := 0
	for i, x := range sig.X {
		if !(x >= sig.Bounds[n] && x < sig.Bounds[n+1]) && n < len(sig.Tables)-1 {
			n++
		}
		f, how := classify(sig.Y[i], [3]float64{sig.D[0][i], sig.D[1][i], sig.D[2][i]}, sig.Tables[n], rng)
		switch how {
		case byMidpoint:
			midpoints++
		case byRandom:
			randoms++
		}
		flags[i] = f
	}
	logging.OrNop(log).Debug("signal read",
		"samples", len(flags),
		"midpoint_resolved", midpoints,
		"random_resolved", randoms)

	return profile.FromSamples(sig.X, flags)
}

type resolution int

const (
	bySieve resolution = iota
	byMidpoint
	byRandom
)

func classify(y float64, d [3]float64, table []SieveRule, rng *rand.Rand) (string, resolution) {
	var sieves [4][]int
	for r, rule := range table {
		if y >= round(rule.Lo, 2) && y <= round(rule.Hi, 2) {
			sieves[0] = append(sieves[0], r)
		}
	}
	if len(sieves[0]) == 1 {
		return table[sieves[0][0]].Facies, bySieve
	}
	for o := 0; o < 3; o++ {
		dv := round(d[o], 3)
		for _, r := range sieves[o] {
			if signMatches(dv, table[r].Signs[o]) {
				sieves[o+1] = append(sieves[o+1], r)
			}
		}
		if len(sieves[o+1]) == 1 {
			return table[sieves[o+1][0]].Facies, bySieve
		}
	}

	if r, ok := nearestMidpoint(y, sieves[0], table); ok {
		return table[r].Facies, byMidpoint
	}
	if len(sieves[0]) == 0 {
		// outside every range: fall back to the nearest range of the table
		all := make([]int, len(table))
		for r := range all {
			all[r] = r
		}
		if r, ok := nearestMidpoint(y, all, table); ok {
			return table[r].Facies, byMidpoint
		}
		return table[all[rng.Intn(len(all))]].Facies, byRandom
	}

	pick := sieves[0][rng.Intn(len(sieves[0]))]
	for o := 1; o < 4 && len(sieves[o]) > 1; o++ {
		pick = sieves[o][rng.Intn(len(sieves[o]))]
	}

	return table[pick].Facies, byRandom
}

// nearestMidpoint returns the unique candidate whose range midpoint is
// closest to y.
func nearestMidpoint(y float64, candidates []int, table []SieveRule) (int, bool) {
	best, count := math.Inf(1), 0
	pick := -1
	for _, r := range candidates {
		dist := math.Abs(y - (table[r].Lo+table[r].Hi)/2)
		switch {
		case dist < best:
			best, count, pick = dist, 1, r
		case dist == best:
			count++
		}
	}

	return pick, count == 1
}

func signMatches(v float64, s Sign) bool {
	return (v > 0 && s == SignPos) || (v < 0 && s == SignNeg) || (v == 0 && s == SignBoth)
}

func assignSign(v []float64) Sign {
	var pos, neg int
	for _, x := range v {
		if x > 0 {
			pos++
		}
		if x < 0 {
			neg++
		}
	}
	switch {
	case float64(pos)/float64(len(v)) >= signThreshold:
		return SignPos
	case float64(neg)/float64(len(v)) >= signThreshold:
		return SignNeg
	default:
		return SignBoth
	}
}

// widenTable stretches the lowest Lo below 0 to -1 and the highest Hi above 0 to 1.
func widenTable(table []SieveRule) {
	lo, hi := 0.0, 0.0
	loAt, hiAt := -1, -1
	for r, rule := range table {
		if rule.Lo < lo {
			lo, loAt = rule.Lo, r
		}
		if rule.Hi > hi {
			hi, hiAt = rule.Hi, r
		}
	}
	if loAt >= 0 {
		table[loAt].Lo = -1
	}
	if hiAt >= 0 {
		table[hiAt].Hi = 1
	}
}

// consistentRange returns 1+round((stop-start)/step) evenly spaced points from
// start to stop inclusive.
func consistentRange(start, stop, step float64) []float64 {
	num := 1 + int(math.RoundToEven((stop-start)/step))
	if num < 2 {
		return []float64{start}
	}
	out := make([]float64, num)
	delta := (stop - start) / float64(num-1)
	for q := range out {
		out[q] = start + float64(q)*delta
	}
	out[num-1] = stop

	return out
}

func normalizeAbs(v []float64) {
	scale := 0.0
	for _, x := range v {
		scale = math.Max(scale, math.Abs(x))
	}
	if scale == 0 {
		return
	}
	for q := range v {
		v[q] /= scale
	}
}

func clampUnit(v float64) float64 {
	if v > 1 || v < -1 {
		return v / math.Abs(v)
	}

	return v
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.RoundToEven(v*p) / p
}
