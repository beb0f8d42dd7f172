// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// curve.go - the Curve entity and the shared sampling loop.
//
// Lifecycle:
//   - Construction fixes name, sample count N and shape.
//   - Coordinates stay nil until Generate runs (or were supplied to New).
//   - Generate fills a fresh N×3 buffer and swaps it in only on success, so a
//     curve never holds a partial buffer. Re-running Generate replaces the
//     buffer wholesale.

package knot

import (
	"fmt"

	"github.com/katalvlaran/knots/coords"
)

// Curve is a named, ordered 3D point sequence plus the shape that produced it.
// A Curve is not safe for concurrent mutation.
type Curve struct {
	name      string
	crossings *int
	samples   int
	shape     Shape          // nil for curves built from supplied coordinates
	coords    *coords.Buffer // nil until generated or supplied
}

// New builds a curve that is not backed by a generator: a name, optional
// crossing number and, optionally, a pre-built coordinate buffer.
// No validation of the coordinates is performed.
func New(opts ...Option) (*Curve, error) {
	cfg := newConfig(opts...)
	c := &Curve{
		name:      cfg.name,
		crossings: cfg.crossings,
		samples:   cfg.samples,
		coords:    cfg.coordinates,
	}
	if c.coords != nil {
		c.samples = c.coords.Rows()
	}

	return c, nil
}

// newShaped validates shape and assembles a shaped curve. A supplied buffer
// (WithCoordinates) becomes the generated coordinates and must have exactly
// N rows.
func newShaped(method string, shape Shape, cfg config) (*Curve, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if cfg.coordinates != nil && cfg.coordinates.Rows() != cfg.samples {
		return nil, knotErrorf(method, ErrInvalidParameter, "%d coordinate rows for %d samples",
			cfg.coordinates.Rows(), cfg.samples)
	}

	return &Curve{
		name:      shape.Label(cfg.samples),
		crossings: cfg.crossings,
		samples:   cfg.samples,
		shape:     shape,
		coords:    cfg.coordinates,
	}, nil
}

// Name returns the name assigned at construction.
func (c *Curve) Name() string { return c.name }

// Samples returns the bead count N.
func (c *Curve) Samples() int { return c.samples }

// Shape returns the generating shape, or nil for custom curves.
func (c *Curve) Shape() Shape { return c.shape }

// Kind returns the shape's Kind, KindCustom when there is none.
func (c *Curve) Kind() Kind {
	if c.shape == nil {
		return KindCustom
	}

	return c.shape.Kind()
}

// Crossings returns the caller-supplied minimal crossing number.
func (c *Curve) Crossings() (int, bool) {
	if c.crossings == nil {
		return 0, false
	}

	return *c.crossings, true
}

// SetCrossings records the minimal crossing number. Negative values clear it.
func (c *Curve) SetCrossings(n int) {
	if n < 0 {
		c.crossings = nil
		return
	}
	c.crossings = &n
}

// Generated reports whether coordinates are available.
func (c *Curve) Generated() bool { return c.coords != nil }

// Coordinates returns the N×3 buffer, or ErrUninitialized if the curve has
// not been generated yet. The buffer is shared, treat it as read-only.
func (c *Curve) Coordinates() (*coords.Buffer, error) {
	if c.coords == nil {
		return nil, knotErrorf(MethodCoordinates, ErrUninitialized, "curve %q", c.name)
	}

	return c.coords, nil
}

// Generate evaluates the shape at N evenly spaced beads, stores the buffer
// and returns it. Curves without a shape fail with ErrNoShape.
// Complexity: O(N) time and memory.
func (c *Curve) Generate() (*coords.Buffer, error) {
	if c.shape == nil {
		return nil, knotErrorf(MethodGenerate, ErrNoShape, "curve %q", c.name)
	}
	buf, err := Sample(c.shape, c.samples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	c.coords = buf

	return buf, nil
}

// String implements fmt.Stringer.
func (c *Curve) String() string {
	return fmt.Sprintf("%s{kind=%s samples=%d generated=%t}", c.name, c.Kind(), c.samples, c.Generated())
}

// Sample evaluates s at n beads, bead i at t = 2π·i/n, into a new buffer.
// It is the single sampling loop behind every shape.
func Sample(s Shape, n int) (*coords.Buffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	buf, err := coords.NewBuffer(n)
	if err != nil {
		return nil, err
	}
	for bead := 0; bead < n; bead++ {
		if err := buf.SetPoint(bead, s.Eval(BeadAngle(bead, n))); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// BeadAngle returns t = 2π·bead/n. bead == n gives 2π, the closing point.
func BeadAngle(bead, n int) float64 {
	return tau * float64(bead) / float64(n)
}
