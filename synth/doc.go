// Package synth generates synthetic lithological profiles by stacking a
// parasequence template.
//
// A Template is one parasequence: M layers of distinct facies. Generate
// repeats it N times, optionally drawing each parasequence thickness and each
// layer thickness from skew-normal distributions (Alpha, Beta, Omega) and
// alternating between a thin and a thick mean (Psi, compensational stacking).
//
// Two outputs are available:
//   - Stacked: the drawn layers with the template facies, as is.
//   - Noisy: the sequence sampled every Resolution as one sine period per
//     parasequence, disturbed with Gaussian noise (Gamma) and classified back
//     into facies by a cascade of sieves on the value and the signs of its
//     first three derivatives.
//
// Runs are deterministic: thickness draws, noise and sieve picks come from
// independent streams derived from Seed (0 selects a fixed seed).
//
// Built-in templates ship embedded; see Templates and LookupTemplate.
package synth
