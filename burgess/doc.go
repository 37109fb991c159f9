// SPDX-License-Identifier: MIT

// Package burgess detects cyclic facies ordering in a lithological profile
// with the transition-matrix method of Burgess (2016).
//
// What & Why:
//
//	For F facies classes every one of the F! numberings is tried. Each
//	numbering codes the profile, the coded sequence yields an F×F
//	transition-probability (TP) matrix, and the matrix is scored with the
//	Markov order metric m: the spread between the largest and smallest
//	averaged diagonal-pair sums. The numbering(s) reaching the largest m are
//	the maximal entries; those whose mass sits on the nearest-neighbour
//	diagonals are ideal, and describe the cycle read bottom to top.
//
// TP matrix convention:
//
//	Row i is the source facies coded F-1-i, column j the destination coded j.
//	Self-transitions therefore fall on the anti-diagonal. A source that never
//	precedes another layer keeps an all-zero row (its count is divided by 1).
//
// Components:
//
//	DiagonalPairSum      - sum over diagonal pair j (panics on bad input)
//	BuildTransitionMatrix - coding + TP matrix for one numbering
//	MarkovOrder          - scalar metric m
//	IsIdeal              - nearest-neighbour diagonal test (ties inclusive)
//	Search               - parallel F! enumeration, m_max, maximal, ideal
//	IdealOrder, BuildIdealSequence, NewDistribution - post-processing
//
// Determinism:
//
//	Results do not depend on Options.Workers; All is always in lexicographic
//	permutation order and Maximal/Ideal preserve that order.
//
// Complexity:
//
//	Search runs in O(F!·(N + F²)); Options.MaxFacies (default 8) guards the
//	factorial growth.
package burgess
