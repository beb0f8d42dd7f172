// SPDX-License-Identifier: MIT
// Package: knots/plot
//
// raster.go - thick Bresenham lines and bitmap text on *image.RGBA.

package plot

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// stroke draws a line of the given width (in pixels) from (x0,y0) to
// (x1,y1). Pixels outside the canvas are clipped.
func stroke(img *image.RGBA, x0, y0, x1, y1, width int, col color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		brush(img, x0, y0, width, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// brush fills a width×width square centred on (x, y).
func brush(img *image.RGBA, x, y, width int, col color.RGBA) {
	lo := -(width - 1) / 2
	b := img.Bounds()
	for oy := lo; oy < lo+width; oy++ {
		for ox := lo; ox < lo+width; ox++ {
			p := image.Pt(x+ox, y+oy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

// label writes s with its baseline-left corner at (x, y).
func label(img *image.RGBA, x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
