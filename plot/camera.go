// SPDX-License-Identifier: MIT
// Package: knots/plot
//
// camera.go - orthographic view and fitting into a pixel rectangle.

package plot

import (
	"image"
	"math"

	"github.com/katalvlaran/knots/coords"
)

const degree = math.Pi / 180

// Camera is an orthographic view. Right and Up span the screen plane, Eye
// points from the origin towards the viewer; the three are orthonormal.
type Camera struct {
	Right, Up, Eye coords.Point
}

// NewCamera looks at the origin from elevation elev and azimuth azim
// (degrees). azim rotates about +z, elev tilts towards +z.
func NewCamera(elev, azim float64) Camera {
	se, ce := math.Sincos(elev * degree)
	sa, ca := math.Sincos(azim * degree)

	return Camera{
		Right: coords.Point{X: -sa, Y: ca},
		Up:    coords.Point{X: -se * ca, Y: -se * sa, Z: ce},
		Eye:   coords.Point{X: ce * ca, Y: ce * sa, Z: se},
	}
}

// Project returns screen-plane coordinates (u to the right, v up).
func (c Camera) Project(p coords.Point) (u, v float64) {
	return dot(p, c.Right), dot(p, c.Up)
}

// Depth returns the distance of p towards the viewer; larger is nearer.
func (c Camera) Depth(p coords.Point) float64 {
	return dot(p, c.Eye)
}

func dot(a, b coords.Point) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// fit maps screen-plane coordinates into a pixel rectangle with a uniform
// scale, centred. Zero extent along an axis leaves that axis centred.
type fit struct {
	uc, vc float64 // screen-plane centre
	cx, cy float64 // pixel centre
	scale  float64
}

func newFit(us, vs []float64, area image.Rectangle) fit {
	umin, umax := minMax(us)
	vmin, vmax := minMax(vs)
	f := fit{
		uc: (umin + umax) / 2,
		vc: (vmin + vmax) / 2,
		cx: float64(area.Min.X+area.Max.X) / 2,
		cy: float64(area.Min.Y+area.Max.Y) / 2,
	}

	w, h := float64(area.Dx()), float64(area.Dy())
	su, sv := math.Inf(1), math.Inf(1)
	if du := umax - umin; du > 0 {
		su = w / du
	}
	if dv := vmax - vmin; dv > 0 {
		sv = h / dv
	}
	f.scale = math.Min(su, sv)
	if math.IsInf(f.scale, 1) {
		f.scale = 1
	}

	return f
}

// pixel returns the canvas position of (u, v); image y grows downwards.
func (f fit) pixel(u, v float64) (x, y int) {
	return int(math.Round(f.cx + (u-f.uc)*f.scale)), int(math.Round(f.cy - (v-f.vc)*f.scale))
}

func minMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return lo, hi
}
