package plot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/plot"
)

func trefoil(t *testing.T) *knot.Curve {
	t.Helper()
	c, err := knot.DefaultTorus()
	require.NoError(t, err)
	_, err = c.Generate()
	require.NoError(t, err)

	return c
}

// bluish counts pixels where blue clearly dominates red, i.e. curve ink in
// the default colour.
func bluish(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, bl, _ := img.At(x, y).RGBA()
			if bl > r+0x3000 {
				n++
			}
		}
	}

	return n
}

func TestRender_DefaultSize(t *testing.T) {
	img, err := plot.Render(trefoil(t))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, plot.DefaultWidth, plot.DefaultHeight), img.Bounds())
	assert.Greater(t, bluish(img), 200, "curve should leave visible ink")
	corner := img.RGBAAt(plot.DefaultWidth-2, 2)
	assert.True(t, corner.R > 0xf0 && corner.G > 0xf0 && corner.B > 0xf0, "corner stays background, got %v", corner)
}

func TestRender_Options(t *testing.T) {
	img, err := plot.Render(trefoil(t),
		plot.WithSize(160, 120),
		plot.WithView(90, 0),
		plot.WithSupersample(1),
		plot.WithLineColor(color.RGBA{R: 0xff, A: 0xff}),
	)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 160, 120), img.Bounds())
	assert.Zero(t, bluish(img))
	red := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{R: 0xff, A: 0xff}) {
				red++
			}
		}
	}
	assert.Greater(t, red, 50)
}

func TestRender_IsPerCall(t *testing.T) {
	c := trefoil(t)
	a, err := plot.Render(c)
	require.NoError(t, err)
	b, err := plot.Render(c)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Pix, b.Pix, "rendering is deterministic and stateless")
}

func TestRender_Uninitialized(t *testing.T) {
	c, err := knot.NewSpecial(knot.Granny)
	require.NoError(t, err)

	img, err := plot.Render(c)
	assert.ErrorIs(t, err, knot.ErrUninitialized)
	assert.Nil(t, img)

	_, path, err := plot.Plot(c, plot.WithSave(t.TempDir()))
	assert.ErrorIs(t, err, knot.ErrUninitialized)
	assert.Empty(t, path)
}

func TestRender_SinglePoint(t *testing.T) {
	buf, err := coords.FromPoints([]coords.Point{{X: 1, Y: 1, Z: 1}})
	require.NoError(t, err)
	c, err := knot.New(knot.WithName("dot"), knot.WithCoordinates(buf))
	require.NoError(t, err)

	img, err := plot.Render(c, plot.WithSupersample(1))
	require.NoError(t, err)
	assert.Equal(t, 1, bluish(img))
}

func TestPlot_NoSave(t *testing.T) {
	img, path, err := plot.Plot(trefoil(t))
	require.NoError(t, err)
	assert.NotNil(t, img)
	assert.Empty(t, path)
}

func TestPlot_Save(t *testing.T) {
	dir := t.TempDir()
	img, path, err := plot.Plot(trefoil(t), plot.WithSave(dir), plot.WithSize(200, 150))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "(3-2)-Torus-righthanded.100_knot.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestPlot_SaveMissingDir(t *testing.T) {
	_, _, err := plot.Plot(trefoil(t), plot.WithSave(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileName(t *testing.T) {
	c, err := knot.New()
	require.NoError(t, err)
	assert.Equal(t, "Knot_knot.png", plot.FileName(c))
	assert.Equal(t, "(3-2)-Torus-righthanded.100_knot.png", plot.FileName(trefoil(t)))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { plot.WithSize(0, 10) })
	assert.Panics(t, func() { plot.WithSize(10, -1) })
	assert.Panics(t, func() { plot.WithSupersample(0) })
	assert.Panics(t, func() { plot.WithSupersample(plot.MaxSupersample + 1) })
	assert.Panics(t, func() { plot.WithLineColor(nil) })
	assert.Panics(t, func() { plot.WithLogger(nil) })
}
