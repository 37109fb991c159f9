package render_test

import (
	"bytes"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/matrix"
	"github.com/katalvlaran/lithocycle/profile"
	"github.com/katalvlaran/lithocycle/render"
)

func fixture(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.New(
		[]float64{0, 1, 3, 6, 7, 9, 12},
		[]string{"SST", "SLT", "SH", "SST", "SLT", "SH"},
	)
	require.NoError(t, err)

	return p
}

// decodedSize decodes a PNG and returns its dimensions.
func decodedSize(t *testing.T, buf *bytes.Buffer) (int, int) {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	b := img.Bounds()

	return b.Dx(), b.Dy()
}

func TestProfile_PNG(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Title = "fixture"
	opts.Layout = profile.Layout{"SH": {Color: "#A0522D", Hatch: "--"}, "SST": {Color: "#FFD700", Hatch: ".o"}}

	var buf bytes.Buffer
	require.NoError(t, render.Profile(&buf, fixture(t), opts))
	w, h := decodedSize(t, &buf)
	assert.Equal(t, 240, w)
	assert.Equal(t, 800, h)
}

func TestProfile_Rejects(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Profile(&buf, nil, render.DefaultOptions()), render.ErrNilInput)

	opts := render.DefaultOptions()
	opts.Width = 10
	assert.ErrorIs(t, render.Profile(&buf, fixture(t), opts), render.ErrInvalidSize)

	opts = render.DefaultOptions()
	opts.Layout = profile.Layout{"SH": {Color: "brown"}}
	assert.ErrorIs(t, render.Profile(&buf, fixture(t), opts), render.ErrInvalidColor)
	assert.Zero(t, buf.Len())
}

func TestCodedProfile_PNG(t *testing.T) {
	coding, err := profile.NewCoding([]string{"SST", "SLT", "SH"}, []int{2, 0, 1})
	require.NoError(t, err)

	opts := render.DefaultOptions()
	opts.Width, opts.Height = 300, 500
	var buf bytes.Buffer
	require.NoError(t, render.CodedProfile(&buf, fixture(t), coding, opts))
	w, h := decodedSize(t, &buf)
	assert.Equal(t, 300, w)
	assert.Equal(t, 500, h)

	short, err := profile.IdentityCoding([]string{"SST", "SLT"})
	require.NoError(t, err)
	assert.ErrorIs(t, render.CodedProfile(&buf, fixture(t), short, opts), profile.ErrUnknownFacies)
}

func TestMatrix_PNG(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	coding, err := profile.IdentityCoding([]string{"A", "B", "C"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, m, coding, []string{"A", "B", "C"}, render.DefaultOptions()))
	w, h := decodedSize(t, &buf)
	assert.Equal(t, 600, w)
	assert.Equal(t, 560, h)

	buf.Reset()
	require.NoError(t, render.Matrix(&buf, m, coding, nil, render.DefaultOptions()))

	assert.ErrorIs(t, render.Matrix(&buf, m, coding, []string{"A"}, render.DefaultOptions()), render.ErrShapeMismatch)
	assert.ErrorIs(t, render.Matrix(&buf, nil, coding, nil, render.DefaultOptions()), render.ErrNilInput)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, render.Matrix(&buf, rect, coding, nil, render.DefaultOptions()), matrix.ErrNonSquare)

	small, err := matrix.NewSquare(2)
	require.NoError(t, err)
	assert.ErrorIs(t, render.Matrix(&buf, small, coding, nil, render.DefaultOptions()), matrix.ErrDimensionMismatch)

	m.Row(1)[0] = math.NaN()
	assert.ErrorIs(t, render.Matrix(&buf, m, coding, nil, render.DefaultOptions()), matrix.ErrNaNInf)
}

func TestHistogram_PNG(t *testing.T) {
	d := burgess.NewDistribution([]float64{0.1, 0.2, 0.2, 0.9}, 4)

	var buf bytes.Buffer
	require.NoError(t, render.Histogram(&buf, d, render.DefaultOptions()))
	w, h := decodedSize(t, &buf)
	assert.Equal(t, 640, w)
	assert.Equal(t, 400, h)

	assert.ErrorIs(t, render.Histogram(&buf, burgess.Distribution{}, render.DefaultOptions()), render.ErrNilInput)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.png")
	err := render.WriteFile(path, func(w io.Writer) error {
		return render.Profile(w, fixture(t), render.DefaultOptions())
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
