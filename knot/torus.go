// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// torus.go - (p,q) torus knots.
//
// Model (t ∈ [0, 2π), (p', q') the effective winding numbers):
//   - r = cos(q't) + r_inner
//   - x = r_outer · r · cos(p't)
//   - y = r_outer · r · sin(p't)
//   - z = r_outer · (−sin(q't))
//
// Handedness is resolved at evaluation time by Windings; stored P and Q are
// never negated, so regenerating a left-handed curve is idempotent.

package knot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knots/coords"
)

// Torus is the torus-knot shape.
type Torus struct {
	P, Q        int       // winding numbers along the two torus directions
	Chirality   Chirality // LeftHanded negates both windings
	InnerRadius float64   // r_inner
	OuterRadius float64   // r_outer
}

// NewTorus builds an ungenerated (p,q) torus-knot curve.
// Options: WithSamples, WithChirality/WithChiralityName, WithInnerRadius,
// WithOuterRadius, WithCrossings.
func NewTorus(p, q int, opts ...Option) (*Curve, error) {
	cfg := newConfig(opts...)
	shape := Torus{
		P:           p,
		Q:           q,
		Chirality:   cfg.chirality,
		InnerRadius: cfg.innerRadius,
		OuterRadius: cfg.outerRadius,
	}

	return newShaped(MethodNewTorus, shape, cfg)
}

// DefaultTorus builds the right-handed (3,2) trefoil unless opts say otherwise.
func DefaultTorus(opts ...Option) (*Curve, error) {
	return NewTorus(DefaultP, DefaultQ, opts...)
}

// Kind implements Shape.
func (Torus) Kind() Kind { return KindTorus }

// Label implements Shape: "(p-q)-Torus-<chirality>.N" with the stored,
// un-negated windings.
func (s Torus) Label(samples int) string {
	return fmt.Sprintf("(%d-%d)-Torus-%s.%d", s.P, s.Q, s.Chirality, samples)
}

// Validate implements Shape. Every integer winding pair is valid.
func (Torus) Validate() error { return nil }

// Windings returns the winding numbers actually used for evaluation:
// (−P, −Q) when left-handed, (P, Q) otherwise.
func (s Torus) Windings() (p, q int) {
	if s.Chirality == LeftHanded {
		return -s.P, -s.Q
	}

	return s.P, s.Q
}

// Eval implements Shape.
func (s Torus) Eval(t float64) coords.Point {
	p, q := s.Windings()
	fp, fq := float64(p), float64(q)
	r := math.Cos(fq*t) + s.InnerRadius

	return coords.Point{
		X: s.OuterRadius * (r * math.Cos(fp*t)),
		Y: s.OuterRadius * (r * math.Sin(fp*t)),
		Z: s.OuterRadius * (-math.Sin(fq * t)),
	}
}
