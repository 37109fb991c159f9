// SPDX-License-Identifier: MIT
// Package: burgess
//
// Purpose:
//   - Score every facies numbering of a profile and select the maximal and
//     ideal ones.
//
// Concurrency:
//   - The F! permutations are split into contiguous rank chunks. Each chunk
//     unranks its first permutation and walks NextPermutation from there, so
//     workers share nothing mutable except disjoint slots of the result slice.
//   - errgroup.SetLimit bounds the goroutines; Wait is the barrier before the
//     max-reduction.

package burgess

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
)

// chunksPerWorker controls scheduling granularity.
const chunksPerWorker = 4

// Entry is one scored numbering.
type Entry struct {
	// Index is the lexicographic rank of Numbering among all F! permutations.
	Index int
	// Numbering[i] is the code of class i (canonical class order).
	Numbering []int
	// Coding is the facies <-> code bijection built from Numbering.
	Coding *profile.Coding
	// Matrix is the TP matrix of the coded sequence.
	Matrix *matrix.Dense
	// M is the Markov order metric of Matrix.
	M float64
}

// Result is the outcome of Search.
type Result struct {
	// Classes is the canonical class order (first appearance unless given).
	Classes []string
	// All holds F! entries in lexicographic permutation order.
	All []Entry
	// MMax is the largest metric over All.
	MMax float64
	// Maximal holds the entries whose M equals MMax under Options.Equal.
	Maximal []Entry
	// Ideal holds the Maximal entries accepted by IsIdeal, in the same order.
	Ideal []Entry
	// Distribution summarizes the m-values of All.
	Distribution Distribution
}

// Search enumerates every numbering of the facies classes, builds and scores
// the TP matrix of each, then selects the maximal and ideal entries.
//
// classes may be nil, in which case the classes are taken from lithologies in
// order of first appearance.
//
// Stages:
//  1. Validate: non-empty sequence, 2 <= F <= MaxFacies, classes match labels.
//  2. Encode the sequence once as class indices.
//  3. Fan out permutation chunks over Workers goroutines.
//  4. Barrier, then m_max reduction, maximal filter, ideal filter.
//
// Errors: ErrEmptySequence, ErrTooFewFacies, ErrTooManyFacies,
// ErrClassMismatch, ErrInvalidOptions, profile errors for bad labels, and the
// context error when ctx is cancelled before completion.
//
// Complexity: O(F!·(N + F²)) time, O(F!·F²) memory for the retained entries.
func Search(ctx context.Context, lithologies, classes []string, opts Options) (*Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	log := opts.Logger

	// Stage 1 (Validate).
	if len(lithologies) == 0 {
		return nil, burgessErrorf("Search", ErrEmptySequence)
	}
	if classes == nil {
		classes = profile.Classes(lithologies)
	}
	classes = append([]string(nil), classes...)
	f := len(classes)
	if f < 2 {
		return nil, burgessErrorf("Search", fmt.Errorf("F=%d: %w", f, ErrTooFewFacies))
	}
	if f > opts.MaxFacies {
		return nil, burgessErrorf("Search", fmt.Errorf("F=%d > %d: %w", f, opts.MaxFacies, ErrTooManyFacies))
	}
	identity, err := profile.IdentityCoding(classes)
	if err != nil {
		return nil, burgessErrorf("Search", err)
	}
	if err = checkClassesPresent(lithologies, classes); err != nil {
		return nil, burgessErrorf("Search", err)
	}

	// Stage 2 (Encode): class index per layer; numbering maps it to a code.
	classIdx, err := identity.Encode(lithologies)
	if err != nil {
		return nil, burgessErrorf("Search", err)
	}

	total := Factorial(f)
	if f >= budgetWarnFacies {
		log.Warn("large permutation budget", "facies", f, "permutations", total)
	}
	log.Info("search started", "facies", f, "layers", len(lithologies), "permutations", total, "workers", opts.Workers)
	started := time.Now()

	if err = ctx.Err(); err != nil {
		return nil, burgessErrorf("Search", err)
	}

	// Stage 3 (Fan out).
	all := make([]Entry, total)
	chunk := chunkSize(total, opts.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for start := 0; start < total; start += chunk {
		start := start
		end := min(start+chunk, total)
		g.Go(func() error {
			return scoreChunk(gctx, classIdx, classes, start, end, all)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, burgessErrorf("Search", err)
	}

	// Stage 4 (Reduce & filter).
	res := &Result{Classes: classes, All: all}
	ms := make([]float64, total)
	for k := range all {
		ms[k] = all[k].M
	}
	res.MMax = floats.Max(ms)
	for _, e := range all {
		if !opts.Equal(e.M, res.MMax) {
			continue
		}
		res.Maximal = append(res.Maximal, e)
		if isIdealSums(DiagonalPairSums(e.Matrix)) {
			res.Ideal = append(res.Ideal, e)
		}
	}
	res.Distribution = NewDistribution(ms, opts.HistogramBins)

	log.Info("search finished",
		"m_max", res.MMax,
		"maximal", len(res.Maximal),
		"ideal", len(res.Ideal),
		"elapsed", time.Since(started))

	return res, nil
}

// chunkSize splits total ranks into about chunksPerWorker pieces per worker.
func chunkSize(total, workers int) int {
	c := total / (workers * chunksPerWorker)
	if c < 1 {
		c = 1
	}

	return c
}

// scoreChunk fills all[start:end]. It owns its permutation, code and scratch
// buffers; only the slots it writes are shared.
func scoreChunk(ctx context.Context, classIdx []int, classes []string, start, end int, all []Entry) error {
	f := len(classes)
	perm := make([]int, f)
	Unrank(perm, start)

	codes := make([]int, len(classIdx))
	denom := make([]int, f)
	scratch := make([]float64, f-1)

	var (
		rank int
		k    int
	)
	for rank = start; rank < end; rank++ {
		if (rank-start)&0x3ff == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for k = range classIdx {
			codes[k] = perm[classIdx[k]]
		}
		tp, err := matrix.NewSquare(f)
		if err != nil {
			return err
		}
		fillTransitions(tp, codes, denom)
		coding, err := profile.NewCoding(classes, perm)
		if err != nil {
			return err
		}
		all[rank] = Entry{
			Index:     rank,
			Numbering: append([]int(nil), perm...),
			Coding:    coding,
			Matrix:    tp,
			M:         markovOrder(tp, scratch),
		}
		NextPermutation(perm)
	}

	return nil
}
