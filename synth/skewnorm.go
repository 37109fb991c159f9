package synth

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	owenTSteps       = 256 // Simpson intervals, must be even
	quantileMaxIters = 200
)

// SkewNormal is the skew-normal distribution with shape Omega, location Loc
// and scale Scale. Omega = 0 is the normal distribution N(Loc, Scale²).
type SkewNormal struct {
	Omega float64
	Loc   float64
	Scale float64
}

// MeanCorrected returns the skew-normal whose mean is mu: the location is
// shifted back by the skew-induced mean offset.
func MeanCorrected(omega, mu, scale float64) SkewNormal {
	shifted := SkewNormal{Omega: omega, Loc: mu, Scale: scale}.Mean()

	return SkewNormal{Omega: omega, Loc: mu - (shifted - mu), Scale: scale}
}

func (s SkewNormal) delta() float64 { return s.Omega / math.Sqrt(1+s.Omega*s.Omega) }

// Mean returns Loc + Scale·δ·√(2/π).
func (s SkewNormal) Mean() float64 {
	return s.Loc + s.Scale*s.delta()*math.Sqrt(2/math.Pi)
}

// CDF returns Φ(z) - 2·T(z, Omega) with z = (x-Loc)/Scale.
func (s SkewNormal) CDF(x float64) float64 {
	z := (x - s.Loc) / s.Scale
	p := distuv.UnitNormal.CDF(z) - 2*owenT(z, s.Omega)

	return math.Min(1, math.Max(0, p))
}

// Quantile inverts CDF by bisection; Omega = 0 uses the closed normal form.
func (s SkewNormal) Quantile(p float64) float64 {
	if s.Omega == 0 {
		return distuv.Normal{Mu: s.Loc, Sigma: s.Scale}.Quantile(p)
	}
	lo, hi := s.Loc-10*s.Scale, s.Loc+10*s.Scale
	for s.CDF(lo) > p {
		lo -= 10 * s.Scale
	}
	for s.CDF(hi) < p {
		hi += 10 * s.Scale
	}
	for k := 0; k < quantileMaxIters && hi-lo > 1e-12*s.Scale; k++ {
		mid := (lo + hi) / 2
		if s.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

// Rand draws one value: u1 = δ·u0 + √(1-δ²)·v, reflected when u0 < 0.
func (s SkewNormal) Rand(r *rand.Rand) float64 {
	d := s.delta()
	u0 := stdNormal(r)
	v := stdNormal(r)
	u1 := d*u0 + v*math.Sqrt(1-d*d)
	if u0 < 0 {
		u1 = -u1
	}

	return s.Loc + s.Scale*u1
}

// owenT is Owen's T function T(h, a) = 1/2π ∫_0^a exp(-h²(1+x²)/2)/(1+x²) dx,
// integrated with composite Simpson's rule.
func owenT(h, a float64) float64 {
	if a == 0 {
		return 0
	}
	f := func(x float64) float64 {
		q := 1 + x*x
		return math.Exp(-0.5*h*h*q) / q
	}
	step := a / owenTSteps
	sum := f(0) + f(a)
	for k := 1; k < owenTSteps; k++ {
		if k%2 == 1 {
			sum += 4 * f(float64(k)*step)
		} else {
			sum += 2 * f(float64(k)*step)
		}
	}

	return sum * step / 3 / (2 * math.Pi)
}
