// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// special.go - hand-coded parametrisations selected by SpecialID.
//
// Figure-eight (4_1), torus-like with fixed multipliers:
//   - r = cos(2t) + r_inner
//   - x = r_outer · r · cos(3t)
//   - y = r_outer · r · sin(3t)
//   - z = −r_outer · sin(4t)
//
// Granny, fixed sum of sinusoids (no tunable radii):
//   - x = (−22cos t − 128sin t − 44cos 3t − 78sin 3t) / 80
//   - y = (−10cos 2t − 27sin 2t + 38cos 4t + 46sin 4t) / 80
//   - z = (70cos 3t − 40sin 3t) / 100

package knot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knots/coords"
)

// Special is the hand-coded shape family.
type Special struct {
	ID          SpecialID
	InnerRadius float64 // figure-eight only
	OuterRadius float64 // figure-eight only
}

// NewSpecial builds an ungenerated special curve. Ids other than FigureEight
// and Granny fail with ErrUnsupportedVariant.
// Options: WithSamples, WithInnerRadius, WithOuterRadius (figure-eight only),
// WithCrossings.
func NewSpecial(id SpecialID, opts ...Option) (*Curve, error) {
	cfg := newConfig(opts...)
	shape := Special{
		ID:          id,
		InnerRadius: cfg.innerRadius,
		OuterRadius: cfg.outerRadius,
	}

	return newShaped(MethodNewSpecial, shape, cfg)
}

// Kind implements Shape.
func (Special) Kind() Kind { return KindSpecial }

// Label implements Shape: "Figure-eight.N" or "Granny.N".
func (s Special) Label(samples int) string {
	return fmt.Sprintf("%s.%d", s.ID, samples)
}

// Validate implements Shape.
func (s Special) Validate() error {
	if !s.ID.Valid() {
		return fmt.Errorf("special id %d: %w", int(s.ID), ErrUnsupportedVariant)
	}

	return nil
}

// Eval implements Shape. Unsupported ids evaluate to the origin; Generate
// rejects them through Validate before sampling.
func (s Special) Eval(t float64) coords.Point {
	switch s.ID {
	case FigureEight:
		return s.figureEight(t)
	case Granny:
		return granny(t)
	}

	return coords.Point{}
}

func (s Special) figureEight(t float64) coords.Point {
	r := math.Cos(2*t) + s.InnerRadius

	return coords.Point{
		X: s.OuterRadius * (r * math.Cos(3*t)),
		Y: s.OuterRadius * (r * math.Sin(3*t)),
		Z: s.OuterRadius * (-math.Sin(4 * t)),
	}
}

func granny(t float64) coords.Point {
	return coords.Point{
		X: (-22*math.Cos(t) - 128*math.Sin(t) - 44*math.Cos(3*t) - 78*math.Sin(3*t)) / 80,
		Y: (-10*math.Cos(2*t) - 27*math.Sin(2*t) + 38*math.Cos(4*t) + 46*math.Sin(4*t)) / 80,
		Z: (70*math.Cos(3*t) - 40*math.Sin(3*t)) / 100,
	}
}
