package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
)

const (
	matrixMargin    = 56.0
	idealBarGap     = 24.0
	selfCellHatch   = "x"
	selfCellColor   = "#A9A9A9"
	heatLightestRGB = 0.97
)

// Matrix draws a TP matrix as a green heatmap with its values. Columns are
// destination codes 0..F-1 and rows source codes F-1..0, labelled through
// coding. The self-transition cells of the anti-diagonal are grayed out and the
// j-diagonals are traced as dashed lines.
//
// When ideal is non-empty it is drawn as a facies bar to the right of the
// matrix, bottom to top.
//
// Errors: ErrNilInput, ErrShapeMismatch, ErrInvalidSize, ErrInvalidColor,
// matrix.ErrNonSquare, matrix.ErrDimensionMismatch, matrix.ErrNaNInf, and PNG
// encoding errors.
func Matrix(w io.Writer, m *matrix.Dense, coding *profile.Coding, ideal []string, opts Options) error {
	if m == nil || coding == nil {
		return fmt.Errorf("render.Matrix: %w", ErrNilInput)
	}
	f := coding.Len()
	if err := matrix.ValidateOrder(m, f); err != nil {
		return fmt.Errorf("render.Matrix: %w", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return fmt.Errorf("render.Matrix: %w", err)
	}
	if len(ideal) != 0 && len(ideal) != f {
		return fmt.Errorf("render.Matrix: %w: %d codes, %d ideal facies", ErrShapeMismatch, f, len(ideal))
	}
	opts, err := opts.sized(600, 560)
	if err != nil {
		return fmt.Errorf("render.Matrix: %w", err)
	}
	styles := opts.Layout.Resolve(coding.Classes())
	if err = checkStyles(styles); err != nil {
		return fmt.Errorf("render.Matrix: %w", err)
	}

	dc := newCanvas(opts.Width, opts.Height)
	drawTitle(dc, opts.Title)

	barCols := 0.0
	if len(ideal) > 0 {
		barCols = 1
	}
	availW := float64(opts.Width) - 2*matrixMargin - idealBarGap*barCols
	availH := float64(opts.Height) - 2*matrixMargin
	cs := math.Min(availW/(float64(f)+barCols*2), availH/float64(f))
	x0, y0 := matrixMargin, matrixMargin

	var i, j int
	for i = 0; i < f; i++ {
		row := m.Row(i)
		for j = 0; j < f; j++ {
			x, y := x0+float64(j)*cs, y0+float64(i)*cs
			if j == f-1-i {
				styledRect(dc, x, y, cs, cs, profile.Style{Color: selfCellColor, Hatch: selfCellHatch})
				continue
			}
			v := math.Min(1, math.Max(0, row[j]))
			dc.DrawRectangle(x, y, cs, cs)
			dc.SetRGB(heatLightestRGB*(1-v), heatLightestRGB-0.57*v, heatLightestRGB*(1-0.75*v))
			dc.FillPreserve()
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(1.5)
			dc.Stroke()
			if v > 0.6 {
				dc.SetRGB(1, 1, 1)
			}
			dc.DrawStringAnchored(strconv.FormatFloat(row[j], 'f', 2, 64), x+cs/2, y+cs/2, 0.5, 0.5)
		}
	}
	drawDiagonals(dc, f, x0, y0, cs)

	dc.SetRGB(0, 0, 0)
	for j = 0; j < f; j++ {
		dc.DrawStringAnchored(coding.Label(j), x0+(float64(j)+0.5)*cs, y0-8, 0.5, 0)
		dc.DrawStringAnchored(coding.Label(f-1-j), x0-labelPad, y0+(float64(j)+0.5)*cs, 1, 0.5)
	}

	if len(ideal) > 0 {
		bx := x0 + float64(f)*cs + idealBarGap
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored("ideal", bx+cs/2, y0-8, 0.5, 0)
		for k := range ideal {
			label := ideal[f-1-k]
			y := y0 + float64(k)*cs
			styledRect(dc, bx, y, cs, cs, styles[label])
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(label, bx+cs+labelPad, y+cs/2, 0, 0.5)
		}
	}

	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// drawDiagonals traces the 2F-1 anti-diagonal directions of the grid; the
// self-transition diagonal is drawn white.
func drawDiagonals(dc *gg.Context, f int, x0, y0, cs float64) {
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for k := 1; k < 2*f; k++ {
		// the line x + y = k in cell units
		ax, ay := math.Max(0, float64(k-f)), math.Min(float64(k), float64(f))
		bx, by := math.Min(float64(k), float64(f)), math.Max(0, float64(k-f))
		if k == f {
			dc.SetRGBA(1, 1, 1, 0.9)
		} else {
			dc.SetRGBA(0.5, 0.5, 0.5, 0.6)
		}
		dc.DrawLine(x0+ax*cs, y0+ay*cs, x0+bx*cs, y0+by*cs)
		dc.Stroke()
	}
	dc.SetDash()
}
