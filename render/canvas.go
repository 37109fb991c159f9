package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/lithocycle/profile"
)

const (
	hatchSpacing = 6.0
	labelPad     = 4.0
)

// checkStyles rejects layout colors gg would silently draw black.
func checkStyles(l profile.Layout) error {
	for facies, s := range l {
		if !isHexColor(s.Color) {
			return fmt.Errorf("%w: %q for %q", ErrInvalidColor, s.Color, facies)
		}
	}

	return nil
}

func isHexColor(c string) bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(c[1:], 16, 32)

	return err == nil
}

func newCanvas(w, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	return dc
}

func drawTitle(dc *gg.Context, title string) {
	if title == "" {
		return
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, float64(dc.Width())/2, 14, 0.5, 0.5)
}

// styledRect fills a rectangle with the style color, overlays its hatch and
// outlines it in black.
func styledRect(dc *gg.Context, x, y, w, h float64, s profile.Style) {
	dc.DrawRectangle(x, y, w, h)
	dc.SetHexColor(s.Color)
	dc.Fill()
	drawHatch(dc, x, y, w, h, s.Hatch)
	dc.DrawRectangle(x, y, w, h)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// drawHatch overlays a hatch pattern clipped to the rectangle. Repeating a
// pattern character makes it denser.
func drawHatch(dc *gg.Context, x, y, w, h float64, pattern string) {
	if pattern == "" {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.DrawRectangle(x, y, w, h)
	dc.Clip()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(0.7)

	for _, ch := range "-|/\\.o*x" {
		n := strings.Count(pattern, string(ch))
		if n == 0 {
			continue
		}
		step := hatchSpacing * 2 / float64(n+1)
		switch ch {
		case '-':
			for yy := y + step/2; yy < y+h; yy += step {
				dc.DrawLine(x, yy, x+w, yy)
			}
			dc.Stroke()
		case '|':
			for xx := x + step/2; xx < x+w; xx += step {
				dc.DrawLine(xx, y, xx, y+h)
			}
			dc.Stroke()
		case '/':
			diagonals(dc, x, y, w, h, step, true)
		case '\\':
			diagonals(dc, x, y, w, h, step, false)
		case 'x':
			diagonals(dc, x, y, w, h, step, true)
			diagonals(dc, x, y, w, h, step, false)
		case '.', 'o', '*':
			r := map[rune]float64{'.': 0.8, 'o': 2, '*': 1.5}[ch]
			odd := false
			for yy := y + step/2; yy < y+h; yy += step {
				shift := 0.0
				if odd {
					shift = step / 2
				}
				for xx := x + step/2 + shift; xx < x+w; xx += step {
					switch ch {
					case 'o':
						dc.DrawCircle(xx, yy, r)
						dc.Stroke()
					case '*':
						dc.DrawLine(xx-r, yy, xx+r, yy)
						dc.DrawLine(xx, yy-r, xx, yy+r)
						dc.Stroke()
					default:
						dc.DrawCircle(xx, yy, r)
						dc.Fill()
					}
				}
				odd = !odd
			}
		}
	}
}

func diagonals(dc *gg.Context, x, y, w, h, step float64, rising bool) {
	for o := -h; o < w; o += step {
		if rising {
			dc.DrawLine(x+o, y+h, x+o+h, y)
		} else {
			dc.DrawLine(x+o, y, x+o+h, y+h)
		}
	}
	dc.Stroke()
}

// verticalLabel writes s downwards from (x, y).
func verticalLabel(dc *gg.Context, s string, x, y float64) {
	dc.Push()
	dc.RotateAbout(-math.Pi/2, x, y)
	dc.DrawStringAnchored(s, x, y, 1, 0.5)
	dc.Pop()
}

// niceStep rounds span/target up to 1, 2 or 5 times a power of ten.
func niceStep(span float64, target int) float64 {
	if span <= 0 || target < 1 {
		return 1
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}

	return 10 * mag
}

// depthAxis draws ticks for [top, base] mapped onto the pixel range [y0, y1]
// along the vertical line x.
func depthAxis(dc *gg.Context, top, base, x, y0, y1 float64, unit string) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y0, x, y1)
	dc.Stroke()

	scale := (y1 - y0) / (base - top)
	step := niceStep(base-top, 10)
	for d := math.Ceil(top/step) * step; d <= base+step*1e-9; d += step {
		y := y0 + (d-top)*scale
		dc.DrawLine(x-4, y, x, y)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.FormatFloat(d, 'g', 4, 64)+unit, x-labelPad-4, y, 1, 0.5)
	}
}
