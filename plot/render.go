// SPDX-License-Identifier: MIT
// Package: knots/plot
//
// render.go - Render draws a curve; Plot renders and optionally saves.

package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
)

// Layout constants in output pixels.
const (
	margin     = 24
	titleSpace = 48
	triadLen   = 28
	triadInset = 16
)

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	axisColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	textColor  = color.RGBA{A: 0xff}
)

// Render draws c on a fresh canvas and returns it.
func Render(c *knot.Curve, opts ...Option) (*image.RGBA, error) {
	buf, err := c.Coordinates()
	if err != nil {
		return nil, fmt.Errorf("plot.Render: %w", err)
	}
	cfg := newConfig(opts...)
	cfg.logger.Debugf("render %q: %d points at %dx%d", c.Name(), buf.Rows(), cfg.width, cfg.height)

	return render(buf, c.Name(), cfg), nil
}

func render(buf *coords.Buffer, name string, cfg config) *image.RGBA {
	k := cfg.supersample
	cam := NewCamera(cfg.elev, cfg.azim)

	big := image.NewRGBA(image.Rect(0, 0, cfg.width*k, cfg.height*k))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	n := buf.Rows()
	us, vs := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		p, _ := buf.Point(i)
		us[i], vs[i] = cam.Project(p)
	}
	area := image.Rect(margin*k, titleSpace*k, (cfg.width-margin)*k, (cfg.height-margin)*k)
	if area.Empty() {
		area = big.Bounds()
	}
	f := newFit(us, vs, area)

	// Closed polyline: segment i joins bead i to bead (i+1) mod n.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		x0, y0 := f.pixel(us[i], vs[i])
		x1, y1 := f.pixel(us[j], vs[j])
		stroke(big, x0, y0, x1, y1, k, cfg.lineColor)
	}

	ox, oy := triadInset+triadLen, cfg.height-triadInset-triadLen
	tips := triad(cam)
	for _, t := range tips {
		stroke(big, ox*k, oy*k, (ox+t.dx)*k, (oy+t.dy)*k, k, axisColor)
	}

	out := downscale(big, cfg.width, cfg.height, k)
	for _, t := range tips {
		label(out, ox+t.dx+labelOffset(t.dx), oy+t.dy+labelOffset(t.dy)+4, t.name, textColor)
	}
	label(out, cfg.width*15/100, cfg.height*15/100, name, textColor)

	return out
}

type axisTip struct {
	name   string
	dx, dy int
}

// triad projects the three unit axes to pixel offsets of length triadLen.
func triad(cam Camera) []axisTip {
	axes := []struct {
		name string
		p    coords.Point
	}{
		{"X", coords.Point{X: 1}},
		{"Y", coords.Point{Y: 1}},
		{"Z", coords.Point{Z: 1}},
	}
	tips := make([]axisTip, len(axes))
	for i, a := range axes {
		u, v := cam.Project(a.p)
		tips[i] = axisTip{
			name: a.name,
			dx:   int(u * triadLen),
			dy:   int(-v * triadLen),
		}
	}

	return tips
}

// labelOffset nudges a label away from the end of its axis.
func labelOffset(d int) int {
	switch {
	case d > 2:
		return 3
	case d < -2:
		return -9
	}
	return -3
}

func downscale(big *image.RGBA, w, h, k int) *image.RGBA {
	if k == 1 {
		return big
	}
	small := resize.Resize(uint(w), uint(h), big, resize.Lanczos3)
	if rgba, ok := small.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), small, small.Bounds().Min, draw.Src)

	return out
}

// FileName returns the file name Plot uses when saving c.
func FileName(c *knot.Curve) string {
	name := c.Name()
	if name == "" {
		name = export.DefaultTitle
	}

	return name + FileSuffix
}

// Plot renders c and, with WithSave, writes it as PNG. The returned path is
// empty when nothing was saved.
func Plot(c *knot.Curve, opts ...Option) (image.Image, string, error) {
	buf, err := c.Coordinates()
	if err != nil {
		return nil, "", fmt.Errorf("plot.Plot: %w", err)
	}
	cfg := newConfig(opts...)
	img := render(buf, c.Name(), cfg)
	if !cfg.save {
		return img, "", nil
	}

	path := filepath.Join(cfg.saveDir, FileName(c))
	if err = savePNG(path, img); err != nil {
		cfg.logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("save plot failed")
		return nil, "", fmt.Errorf("plot.Plot: %w", err)
	}
	cfg.logger.WithFields(l.StringField("path", path)).Debug("plot saved")

	return img, path, nil
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}

	return enc.Encode(f, img)
}
