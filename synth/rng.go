// RNG utilities shared by the thickness sampler, the noise
// injector and the sieve reader.
//
// Goals:
//   - Determinism: same seed -> identical synthetic profiles.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: thickness draws, noise and sieve picks use separate
//     streams, so enabling noise never changes the drawn thicknesses.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each generation run owns its streams.

package synth

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveRNG.
const (
	streamThickness uint64 = iota + 1
	streamNoise
	streamPick
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 -> use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streams holds the independent generators of one run.
type streams struct {
	thickness *rand.Rand
	noise     *rand.Rand
	pick      *rand.Rand
}

// newStreams derives all streams from seed (seed==0 policy applies).
func newStreams(seed int64) streams {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return streams{
		thickness: rngFromSeed(deriveSeed(seed, streamThickness)),
		noise:     rngFromSeed(deriveSeed(seed, streamNoise)),
		pick:      rngFromSeed(deriveSeed(seed, streamPick)),
	}
}

// stdNormal draws N(0,1) by inverting the gonum normal CDF on a uniform draw.
func stdNormal(r *rand.Rand) float64 {
	u := r.Float64()
	for u == 0 {
		u = r.Float64()
	}

	return distuv.UnitNormal.Quantile(u)
}
