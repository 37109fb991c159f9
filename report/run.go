package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/matrix"
)

// Run is the reportable outcome of one analysis.
type Run struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	// Source names the analysed profile, e.g. its file path.
	Source       string               `json:"source,omitempty"`
	Layers       int                  `json:"layers"`
	Classes      []string             `json:"classes"`
	Permutations int                  `json:"permutations"`
	MMax         float64              `json:"m_max"`
	Distribution burgess.Distribution `json:"distribution"`
	Maximal      []EntryRow           `json:"maximal"`
	Ideal        []IdealRow           `json:"ideal"`
}

// EntryRow is one maximal numbering.
type EntryRow struct {
	Index int `json:"index"`
	// ByCode lists the facies in code order 0..F-1.
	ByCode []string      `json:"by_code"`
	M      float64       `json:"m"`
	Ideal  bool          `json:"ideal"`
	Matrix *matrix.Dense `json:"matrix"`
}

// IdealRow is the ideal sequence of one ideal numbering.
type IdealRow struct {
	Index       int       `json:"index"`
	Orientation string    `json:"orientation"`
	Facies      []string  `json:"facies"`
	Thickness   []float64 `json:"thickness"`
	Depths      []float64 `json:"depths"`
}

// NewRun captures a under a fresh random ID.
func NewRun(a *burgess.Analysis, source string) *Run {
	r := &Run{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		Source:       source,
		Layers:       a.Profile.Len(),
		Classes:      append([]string(nil), a.Classes...),
		Permutations: len(a.All),
		MMax:         a.MMax,
		Distribution: a.Distribution,
		Maximal:      make([]EntryRow, len(a.Maximal)),
		Ideal:        make([]IdealRow, len(a.Ideal)),
	}

	ideal := make(map[int]bool, len(a.Ideal))
	for k, e := range a.Ideal {
		ideal[e.Index] = true
		seq := a.Sequences[k]
		r.Ideal[k] = IdealRow{
			Index:       e.Index,
			Orientation: seq.Orientation.String(),
			Facies:      seq.Facies,
			Thickness:   seq.Thickness,
			Depths:      seq.Depths,
		}
	}
	for k, e := range a.Maximal {
		r.Maximal[k] = EntryRow{
			Index:  e.Index,
			ByCode: e.Coding.Labels(),
			M:      e.M,
			Ideal:  ideal[e.Index],
			Matrix: e.Matrix,
		}
	}

	return r
}

// Render writes the run in the given mode: JSON, or the summary, maximal and
// ideal tables followed by the TP matrix of every maximal numbering, separated
// by blank lines.
func (r *Run) Render(w io.Writer, m Mode) error {
	if m == JSON {
		return r.WriteJSON(w)
	}
	sections := []string{r.SummaryTable(m), r.MaximalTable(m)}
	if len(r.Ideal) > 0 {
		sections = append(sections, r.IdealTable(m))
	}
	for _, e := range r.Maximal {
		sections = append(sections, MatrixTable(e, m))
	}
	_, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n")

	return err
}

// WriteJSON writes the run as indented JSON.
func (r *Run) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// SummaryTable lists the run metadata and the m-value statistics.
func (r *Run) SummaryTable(m Mode) string {
	t := newTable(m, "Run")
	t.header("field", "value")
	t.row("id", r.ID.String())
	if r.Source != "" {
		t.row("source", r.Source)
	}
	t.row("layers", r.Layers)
	t.row("facies", strings.Join(r.Classes, " "))
	t.row("permutations", r.Permutations)
	t.row("m_max", fmtFloat(r.MMax))
	t.row("maximal", len(r.Maximal))
	t.row("ideal", len(r.Ideal))
	t.row("m mean", fmtFloat(r.Distribution.Mean))
	t.row("m std", fmtFloat(r.Distribution.StdDev))

	return t.String()
}

// MaximalTable lists every maximal numbering.
func (r *Run) MaximalTable(m Mode) string {
	t := newTable(m, "Maximal numberings")
	t.header("index", "codes 0..F-1", "m", "ideal")
	for _, e := range r.Maximal {
		t.row(e.Index, strings.Join(e.ByCode, " "), fmtFloat(e.M), e.Ideal)
	}
	t.alignRight(1, 3)

	return t.String()
}

// IdealTable lists every ideal sequence bottom to top with its thicknesses.
func (r *Run) IdealTable(m Mode) string {
	t := newTable(m, "Ideal sequences")
	t.header("index", "orientation", "facies (bottom to top)", "thickness")
	for _, s := range r.Ideal {
		th := make([]string, len(s.Thickness))
		for k, v := range s.Thickness {
			th[k] = fmtFloat(v)
		}
		t.row(s.Index, s.Orientation, strings.Join(s.Facies, " "), strings.Join(th, " "))
	}
	t.alignRight(1)

	return t.String()
}

// MatrixTable renders one TP matrix with its facies labels: columns are
// destination codes 0..F-1, rows source codes F-1..0.
func MatrixTable(e EntryRow, m Mode) string {
	f := len(e.ByCode)
	t := newTable(m, "TP matrix #"+strconv.Itoa(e.Index))
	head := make([]any, f+1)
	head[0] = "from \\ to"
	for j, label := range e.ByCode {
		head[j+1] = label
	}
	t.header(head...)
	for i := 0; i < f; i++ {
		row := make([]any, f+1)
		row[0] = e.ByCode[f-1-i]
		for j, v := range e.Matrix.Row(i) {
			row[j+1] = fmtFloat(v)
		}
		t.row(row...)
	}

	return t.String()
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
