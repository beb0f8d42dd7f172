// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// options.go - functional options for curve constructors.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (WithSamples(0), WithCrossings(-1), non-finite radii). Constructors and
//     Generate never panic.
//   - Options a shape does not use are ignored (e.g. WithAmplitude on a Torus,
//     radii on the granny knot).

package knot

import (
	"math"

	"github.com/katalvlaran/knots/coords"
)

// Option customises a curve constructor by mutating its config.
type Option func(*config)

// WithSamples sets the bead count N. Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic("knot: WithSamples(n<1)")
	}
	return func(c *config) {
		c.samples = n
	}
}

// WithInnerRadius sets r_inner for Torus and the figure-eight.
// Panics on NaN or ±Inf.
func WithInnerRadius(r float64) Option {
	mustFinite("WithInnerRadius", r)
	return func(c *config) {
		c.innerRadius = r
	}
}

// WithOuterRadius sets r_outer for Torus and the figure-eight.
// Panics on NaN or ±Inf.
func WithOuterRadius(r float64) Option {
	mustFinite("WithOuterRadius", r)
	return func(c *config) {
		c.outerRadius = r
	}
}

// WithAmplitude sets the Lissajous amplitude (r_outer in the original
// parametrisation). Panics on NaN or ±Inf.
func WithAmplitude(a float64) Option {
	mustFinite("WithAmplitude", a)
	return func(c *config) {
		c.amplitude = a
	}
}

// WithChirality sets torus handedness.
func WithChirality(ch Chirality) Option {
	return func(c *config) {
		c.chirality = ch
	}
}

// WithChiralityName sets torus handedness from text; see ParseChirality.
// Unrecognised names fall back to right-handed without error.
func WithChiralityName(s string) Option {
	return WithChirality(ParseChirality(s))
}

// WithCrossings records the minimal crossing number as caller metadata.
// Generators never compute it. Panics if n < 0.
func WithCrossings(n int) Option {
	if n < 0 {
		panic("knot: WithCrossings(n<0)")
	}
	return func(c *config) {
		v := n
		c.crossings = &v
	}
}

// WithName names a curve built by New. Shaped constructors derive their name
// from parameters and ignore this option.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithCoordinates supplies a pre-built buffer. New takes N from its rows;
// shaped constructors adopt it as already generated and reject a row count
// that differs from N. Panics on nil.
func WithCoordinates(b *coords.Buffer) Option {
	if b == nil {
		panic("knot: WithCoordinates(nil)")
	}
	return func(c *config) {
		c.coordinates = b
	}
}

func mustFinite(method string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("knot: " + method + "(non-finite)")
	}
}
