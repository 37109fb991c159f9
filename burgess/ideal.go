// SPDX-License-Identifier: MIT

package burgess

import (
	"fmt"

	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
)

// Orientation is the code direction of an ideal sequence, read bottom to top.
type Orientation int

const (
	// Descending: codes F-1, F-2, ..., 0 from bottom to top.
	Descending Orientation = iota
	// Ascending: codes 0, 1, ..., F-1 from bottom to top.
	Ascending
)

func (o Orientation) String() string {
	if o == Ascending {
		return "ascending"
	}

	return "descending"
}

// IdealOrientation compares the weight of the +1 neighbour diagonal
// (c -> c+1, closed by F-1 -> 0) with the -1 neighbour diagonal
// (c -> c-1, closed by 0 -> F-1). Ascending wins only when strictly heavier.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrTooFewFacies.
// Complexity: O(F).
func IdealOrientation(m *matrix.Dense) (Orientation, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Descending, burgessErrorf("IdealOrientation", err)
	}
	f := m.Rows()
	if f < 2 {
		return Descending, burgessErrorf("IdealOrientation", ErrTooFewFacies)
	}

	var i int
	pos := m.Row(0)[0]
	for i = 0; i < f-1; i++ {
		pos += m.Row(f - 1 - i)[1+i]
	}
	neg := m.Row(f - 1)[f-1]
	for i = 0; i < f-1; i++ {
		neg += m.Row(f - 2 - i)[i]
	}
	if pos > neg {
		return Ascending, nil
	}

	return Descending, nil
}

// IdealOrder returns the facies of e from bottom to top of its ideal sequence.
func IdealOrder(e Entry) ([]string, Orientation, error) {
	o, err := IdealOrientation(e.Matrix)
	if err != nil {
		return nil, o, err
	}
	if e.Coding == nil || e.Coding.Len() != e.Matrix.Rows() {
		return nil, o, burgessErrorf("IdealOrder", ErrClassMismatch)
	}
	labels := e.Coding.Labels()
	if o == Descending {
		for l, r := 0, len(labels)-1; l < r; l, r = l+1, r-1 {
			labels[l], labels[r] = labels[r], labels[l]
		}
	}

	return labels, o, nil
}

// thicknessEpsilon keeps empty transition cells from dividing by zero.
const thicknessEpsilon = 1e-5

// IdealSequence is the single parasequence implied by an ideal entry.
type IdealSequence struct {
	// Facies from bottom to top.
	Facies []string
	// Thickness[k] belongs to Facies[k].
	Thickness []float64
	// Depths are the F+1 cumulative boundaries starting at 0; divided by the
	// total when proportional.
	Depths []float64
	// Orientation of the order.
	Orientation Orientation
}

// BuildIdealSequence derives ideal facies thicknesses from a profile and one
// of its scored entries.
//
// For each adjacent layer pair (k, k+1) the thickness of layer k is added to
// cell [F-1-code(k)][code(k+1)] and a count is kept alongside. Cell averages
// (thickness / (count + 1e-5)) are weighted by the TP matrix and each row sum
// is the ideal thickness of its source facies. Depths accumulate these
// thicknesses along IdealOrder.
//
// Errors: IdealOrder errors, profile.ErrUnknownFacies, matrix.ErrNaNInf, and
// profile validation errors.
// Complexity: O(N + F²).
func BuildIdealSequence(p *profile.Profile, e Entry, proportional bool) (*IdealSequence, error) {
	if err := p.Validate(); err != nil {
		return nil, burgessErrorf("BuildIdealSequence", err)
	}
	order, o, err := IdealOrder(e)
	if err != nil {
		return nil, err
	}
	codes, err := e.Coding.Encode(p.Facies)
	if err != nil {
		return nil, burgessErrorf("BuildIdealSequence", err)
	}

	f := e.Matrix.Rows()
	thick := make([]float64, f*f)
	count := make([]float64, f*f)
	var i, j, k, cell int
	for k = 0; k < len(codes)-1; k++ {
		cell = (f-1-codes[k])*f + codes[k+1]
		thick[cell] += p.Boundaries[k+1] - p.Boundaries[k]
		count[cell]++
	}

	weighted, err := matrix.NewSquare(f)
	if err != nil {
		return nil, burgessErrorf("BuildIdealSequence", err)
	}
	for i = 0; i < f; i++ {
		row := e.Matrix.Row(i)
		for j = 0; j < f; j++ {
			cell = i*f + j
			if err = weighted.Set(i, j, thick[cell]/(count[cell]+thicknessEpsilon)*row[j]); err != nil {
				return nil, burgessErrorf("BuildIdealSequence", err)
			}
		}
	}
	byCode := make([]float64, f)
	for i, sum := range weighted.RowSums() {
		byCode[f-1-i] = sum
	}

	seq := &IdealSequence{
		Facies:      order,
		Thickness:   make([]float64, f),
		Depths:      make([]float64, f+1),
		Orientation: o,
	}
	for k = range order {
		code, ok := e.Coding.Code(order[k])
		if !ok {
			return nil, burgessErrorf("BuildIdealSequence", fmt.Errorf("%q: %w", order[k], profile.ErrUnknownFacies))
		}
		seq.Thickness[k] = byCode[code]
		seq.Depths[k+1] = seq.Depths[k] + seq.Thickness[k]
	}
	if proportional && seq.Depths[f] != 0 {
		total := seq.Depths[f]
		for k = range seq.Depths {
			seq.Depths[k] /= total
		}
	}

	return seq, nil
}
