// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - config is the single source of truth for every constructor knob.
//   - Defaults are named constants (constants.go); no globals.
//   - newConfig applies options in order (later overrides earlier).
//
// Defaults:
//   - samples     = DefaultSamples      (100)
//   - innerRadius = DefaultInnerRadius  (2)
//   - outerRadius = DefaultOuterRadius  (1)
//   - amplitude   = DefaultAmplitude    (2)
//   - chirality   = RightHanded
//   - crossings   = unset
//   - name        = ""                  (shaped curves derive their own)

package knot

import "github.com/katalvlaran/knots/coords"

// config aggregates all knobs used by constructors.
// It is passed by value once resolved.
type config struct {
	samples     int
	innerRadius float64
	outerRadius float64
	amplitude   float64
	chirality   Chirality

	// Entity metadata.
	crossings   *int
	name        string
	coordinates *coords.Buffer
}

// newConfig resolves opts over the defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		samples:     DefaultSamples,
		innerRadius: DefaultInnerRadius,
		outerRadius: DefaultOuterRadius,
		amplitude:   DefaultAmplitude,
		chirality:   RightHanded,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
