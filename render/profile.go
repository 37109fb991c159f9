package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lithocycle/profile"
)

// Profile layout in pixels.
const (
	profileMarginLeft   = 64.0
	profileMarginRight  = 12.0
	profileMarginTop    = 30.0
	profileMarginBottom = 70.0
)

// Profile draws p as a lithology column: depth increases downwards and each
// facies class gets its own bar width, widest for the first class, so the
// column outline reads like a weathering profile.
//
// Errors: ErrNilInput, ErrInvalidSize, ErrInvalidColor, profile validation
// errors, and PNG encoding errors.
func Profile(w io.Writer, p *profile.Profile, opts Options) error {
	if p == nil {
		return fmt.Errorf("render.Profile: %w", ErrNilInput)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("render.Profile: %w", err)
	}
	opts, err := opts.sized(240, 800)
	if err != nil {
		return fmt.Errorf("render.Profile: %w", err)
	}
	classes := p.Classes()
	styles := opts.Layout.Resolve(classes)
	if err = checkStyles(styles); err != nil {
		return fmt.Errorf("render.Profile: %w", err)
	}

	widths := make(map[string]float64, len(classes))
	for k, c := range classes {
		frac := 1.0
		if len(classes) > 1 {
			frac = 1 - 0.5*float64(k)/float64(len(classes)-1)
		}
		widths[c] = frac
	}

	return drawColumn(w, p, opts, styles, classes, widths)
}

// CodedProfile draws p with every layer as wide as its code+1 under coding,
// with a dashed guide per code. A cyclic numbering shows up as a saw-tooth.
//
// Errors: as Profile, plus profile.ErrUnknownFacies when coding misses a
// label of p.
func CodedProfile(w io.Writer, p *profile.Profile, coding *profile.Coding, opts Options) error {
	if p == nil || coding == nil {
		return fmt.Errorf("render.CodedProfile: %w", ErrNilInput)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("render.CodedProfile: %w", err)
	}
	if _, err := coding.Encode(p.Facies); err != nil {
		return fmt.Errorf("render.CodedProfile: %w", err)
	}
	opts, err := opts.sized(320, 800)
	if err != nil {
		return fmt.Errorf("render.CodedProfile: %w", err)
	}
	styles := opts.Layout.Resolve(coding.Classes())
	if err = checkStyles(styles); err != nil {
		return fmt.Errorf("render.CodedProfile: %w", err)
	}

	f := coding.Len()
	labels := coding.Labels()
	widths := make(map[string]float64, f)
	for code, c := range labels {
		widths[c] = float64(code+1) / float64(f)
	}

	return drawColumn(w, p, opts, styles, labels, widths)
}

// drawColumn renders the layers of p with the given relative widths and
// writes one vertical label per class at the right edge of its bar.
func drawColumn(w io.Writer, p *profile.Profile, opts Options, styles profile.Layout, classes []string, widths map[string]float64) error {
	dc := newCanvas(opts.Width, opts.Height)
	drawTitle(dc, opts.Title)

	x0 := profileMarginLeft
	y0 := profileMarginTop
	cw := float64(opts.Width) - profileMarginLeft - profileMarginRight
	ch := float64(opts.Height) - profileMarginTop - profileMarginBottom
	top := p.Boundaries[0]
	scale := ch / p.TotalThickness()

	for _, l := range p.Layers() {
		y := y0 + (l.Top-top)*scale
		styledRect(dc, x0, y, widths[l.Facies]*cw, l.Thickness()*scale, styles[l.Facies])
	}

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetDash(3, 3)
	dc.SetLineWidth(0.5)
	for _, c := range classes {
		x := x0 + widths[c]*cw
		dc.DrawLine(x, y0, x, y0+ch)
	}
	dc.Stroke()
	dc.SetDash()

	dc.SetRGB(0, 0, 0)
	for _, c := range classes {
		verticalLabel(dc, c, x0+widths[c]*cw-6, y0+ch+labelPad)
	}
	depthAxis(dc, top, p.Boundaries[len(p.Boundaries)-1], x0-2, y0, y0+ch, opts.DepthUnit)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}
