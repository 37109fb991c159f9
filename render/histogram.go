package render

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lithocycle/burgess"
)

// Histogram draws the relative frequencies of an m-value distribution as bars
// over their bin edges.
//
// Errors: ErrNilInput for an empty distribution, ErrInvalidSize, and PNG
// encoding errors.
func Histogram(w io.Writer, d burgess.Distribution, opts Options) error {
	bins := len(d.Frequency)
	if bins == 0 || len(d.Edges) != bins+1 {
		return fmt.Errorf("render.Histogram: %w", ErrNilInput)
	}
	opts, err := opts.sized(640, 400)
	if err != nil {
		return fmt.Errorf("render.Histogram: %w", err)
	}

	dc := newCanvas(opts.Width, opts.Height)
	drawTitle(dc, opts.Title)

	x0, y0 := matrixMargin, matrixMargin/2
	pw := float64(opts.Width) - 1.5*matrixMargin
	ph := float64(opts.Height) - 1.5*matrixMargin
	top := floats.Max(d.Frequency)
	if top == 0 {
		top = 1
	}
	bw := pw / float64(bins)

	for b, fr := range d.Frequency {
		h := fr / top * ph
		dc.DrawRectangle(x0+float64(b)*bw, y0+ph-h, bw, h)
		dc.SetRGB(0.2, 0.55, 0.3)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(0.5)
		dc.Stroke()
	}

	dc.SetLineWidth(1)
	dc.DrawLine(x0, y0+ph, x0+pw, y0+ph)
	dc.DrawLine(x0, y0, x0, y0+ph)
	dc.Stroke()
	dc.DrawStringAnchored(strconv.FormatFloat(d.Edges[0], 'f', 3, 64), x0, y0+ph+labelPad, 0.5, 1)
	dc.DrawStringAnchored(strconv.FormatFloat(d.Edges[bins], 'f', 3, 64), x0+pw, y0+ph+labelPad, 0.5, 1)
	dc.DrawStringAnchored("m", x0+pw/2, y0+ph+labelPad, 0.5, 1)
	dc.DrawStringAnchored(strconv.FormatFloat(top, 'f', 3, 64), x0-labelPad, y0, 1, 0.5)

	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}
