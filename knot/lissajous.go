// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// lissajous.go - Lissajous knots: independent cosines per axis.
//
// Model: coordinate[d] = A · cos(n[d]·t + φ[d]) for d ∈ {x, y, z}.

package knot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knots/coords"
)

// Lissajous is the Lissajous-knot shape.
type Lissajous struct {
	Frequencies [LissajousDims]int     // n_x, n_y, n_z
	Phases      [LissajousDims]float64 // φ_x, φ_y, φ_z in radians
	Amplitude   float64                // A (r_outer in the original parametrisation)
}

// NewLissajous builds an ungenerated Lissajous curve. n and phi must have
// exactly three entries each, otherwise ErrInvalidParameter is returned
// before anything is allocated.
// Options: WithSamples, WithAmplitude, WithCrossings.
func NewLissajous(n []int, phi []float64, opts ...Option) (*Curve, error) {
	if len(n) != LissajousDims {
		return nil, knotErrorf(MethodNewLissajous, ErrInvalidParameter, "n has %d entries, want %d", len(n), LissajousDims)
	}
	if len(phi) != LissajousDims {
		return nil, knotErrorf(MethodNewLissajous, ErrInvalidParameter, "phi has %d entries, want %d", len(phi), LissajousDims)
	}

	cfg := newConfig(opts...)
	shape := Lissajous{Amplitude: cfg.amplitude}
	copy(shape.Frequencies[:], n)
	copy(shape.Phases[:], phi)

	return newShaped(MethodNewLissajous, shape, cfg)
}

// Kind implements Shape.
func (Lissajous) Kind() Kind { return KindLissajous }

// Label implements Shape: "(nx-ny-nz)-Lissajous.N".
func (s Lissajous) Label(samples int) string {
	f := s.Frequencies
	return fmt.Sprintf("(%d-%d-%d)-Lissajous.%d", f[0], f[1], f[2], samples)
}

// Validate implements Shape; phases must be finite.
func (s Lissajous) Validate() error {
	for d, ph := range s.Phases {
		if math.IsNaN(ph) || math.IsInf(ph, 0) {
			return fmt.Errorf("phase %d is not finite: %w", d, ErrInvalidParameter)
		}
	}

	return nil
}

// Eval implements Shape.
func (s Lissajous) Eval(t float64) coords.Point {
	var v [LissajousDims]float64
	for d := 0; d < LissajousDims; d++ {
		v[d] = s.Amplitude * math.Cos(float64(s.Frequencies[d])*t+s.Phases[d])
	}

	return coords.Point{X: v[0], Y: v[1], Z: v[2]}
}
