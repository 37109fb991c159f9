package render

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lithocycle/profile"
)

// minCanvas is the smallest accepted width or height in pixels.
const minCanvas = 64

// Options configures a figure. Zero Width/Height select the figure's own
// default size.
type Options struct {
	Width  int
	Height int
	Title  string
	// Layout styles facies; classes without an entry take palette colors.
	Layout profile.Layout
	// DepthUnit suffixes the depth tick labels, e.g. "m".
	DepthUnit string
}

// DefaultOptions returns an untitled figure with default size and palette.
func DefaultOptions() Options {
	return Options{DepthUnit: "m"}
}

func (o Options) sized(w, h int) (Options, error) {
	if o.Width == 0 {
		o.Width = w
	}
	if o.Height == 0 {
		o.Height = h
	}
	if o.Width < minCanvas || o.Height < minCanvas {
		return o, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}

	return o, nil
}

// WriteFile creates path and renders into it with draw.
func WriteFile(path string, draw func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return draw(f)
}
