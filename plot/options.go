// SPDX-License-Identifier: MIT
// Package: knots/plot
//
// options.go - functional options for Render and Plot.
//
// Defaults mirror a 6×5 inch figure at 100 dpi with matplotlib's 3D view
// angles.

package plot

import (
	"image/color"
	"math"

	"github.com/sgostarter/i/l"
)

const (
	// DefaultWidth and DefaultHeight are the output size in pixels.
	DefaultWidth  = 600
	DefaultHeight = 500
	// DefaultElevation and DefaultAzimuth are the view angles in degrees.
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
	// DefaultSupersample is the drawing scale before the Lanczos3 downscale.
	DefaultSupersample = 2
	// MaxSupersample bounds WithSupersample.
	MaxSupersample = 8
	// FileSuffix is appended to the curve name when saving.
	FileSuffix = "_knot.png"
)

// DefaultLineColor is matplotlib's first cycle colour (#1f77b4).
var DefaultLineColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Option customises Render and Plot.
type Option func(*config)

type config struct {
	width, height int
	elev, azim    float64
	lineColor     color.RGBA
	supersample   int
	saveDir       string
	save          bool
	logger        l.Wrapper
}

func newConfig(opts ...Option) config {
	cfg := config{
		width:       DefaultWidth,
		height:      DefaultHeight,
		elev:        DefaultElevation,
		azim:        DefaultAzimuth,
		lineColor:   DefaultLineColor,
		supersample: DefaultSupersample,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = l.NewNopLoggerWrapper()
	}
	cfg.logger = cfg.logger.WithFields(l.StringField(l.ClsKey, "plot"))

	return cfg
}

// WithSize sets the output size in pixels. Panics unless both are positive.
func WithSize(width, height int) Option {
	if width < 1 || height < 1 {
		panic("plot: WithSize requires positive width and height")
	}
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithView sets elevation and azimuth in degrees. Panics on NaN or ±Inf.
func WithView(elev, azim float64) Option {
	if math.IsNaN(elev) || math.IsInf(elev, 0) || math.IsNaN(azim) || math.IsInf(azim, 0) {
		panic("plot: WithView(non-finite)")
	}
	return func(c *config) {
		c.elev, c.azim = elev, azim
	}
}

// WithLineColor sets the curve colour. Panics on nil.
func WithLineColor(col color.Color) Option {
	if col == nil {
		panic("plot: WithLineColor(nil)")
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	return func(c *config) {
		c.lineColor = rgba
	}
}

// WithSupersample sets the drawing scale factor, 1 disables the downscale.
// Panics outside [1, MaxSupersample].
func WithSupersample(k int) Option {
	if k < 1 || k > MaxSupersample {
		panic("plot: WithSupersample out of range")
	}
	return func(c *config) {
		c.supersample = k
	}
}

// WithSave makes Plot write the image to dir/<name>_knot.png. An empty dir
// means the working directory.
func WithSave(dir string) Option {
	if dir == "" {
		dir = "."
	}
	return func(c *config) {
		c.save, c.saveDir = true, dir
	}
}

// WithLogger sets the logger used for render and save diagnostics.
// Panics on nil.
func WithLogger(logger l.Wrapper) Option {
	if logger == nil {
		panic("plot: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}
