// SPDX-License-Identifier: MIT
// Package: knots/view
//
// options.go - functional options for NewModel and Run.

package view

import (
	"io"
	"time"

	"github.com/katalvlaran/knots/plot"
)

const (
	// DefaultCols and DefaultRows size the scatter canvas in cells.
	DefaultCols = 60
	DefaultRows = 24
	// DefaultFPS is the redraw rate.
	DefaultFPS = 30
	// DefaultSpin is the azimuth advance per frame, in degrees.
	DefaultSpin = 1.0
	// RotateStep is the angle one arrow key press turns, in degrees.
	RotateStep = 5.0
	// ZoomStep multiplies or divides the zoom per key press.
	ZoomStep = 1.1
	// MinZoom and MaxZoom bound the zoom factor.
	MinZoom = 0.2
	MaxZoom = 8.0
)

// Option customises NewModel and Run.
type Option func(*config)

type config struct {
	cols, rows int
	fps        int
	spin       float64
	elev, azim float64
	in         io.Reader
	out        io.Writer
}

func newConfig(opts ...Option) config {
	cfg := config{
		cols: DefaultCols,
		rows: DefaultRows,
		fps:  DefaultFPS,
		spin: DefaultSpin,
		elev: plot.DefaultElevation,
		azim: plot.DefaultAzimuth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCanvasSize sets the canvas size in terminal cells. Panics below 8×4.
func WithCanvasSize(cols, rows int) Option {
	if cols < 8 || rows < 4 {
		panic("view: WithCanvasSize too small")
	}
	return func(c *config) {
		c.cols, c.rows = cols, rows
	}
}

// WithFPS sets the redraw rate. Panics if fps < 1.
func WithFPS(fps int) Option {
	if fps < 1 {
		panic("view: WithFPS(fps<1)")
	}
	return func(c *config) {
		c.fps = fps
	}
}

// WithSpin sets the auto-rotation in degrees per frame; 0 starts still.
func WithSpin(deg float64) Option {
	return func(c *config) {
		c.spin = deg
	}
}

// WithView sets the initial elevation and azimuth in degrees.
func WithView(elev, azim float64) Option {
	return func(c *config) {
		c.elev, c.azim = elev, azim
	}
}

// WithIO replaces the terminal for Run, e.g. for scripted sessions.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *config) {
		c.in, c.out = in, out
	}
}

func (c config) frame() time.Duration {
	return time.Second / time.Duration(c.fps)
}
