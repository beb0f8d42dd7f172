// Package knot defines shared constants used by the curve constructors, so
// defaults and error prefixes stay consistent across shapes.
package knot

import "math"

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNew is the canonical name for the generic entity constructor.
	MethodNew = "New"
	// MethodNewTorus is the canonical name for the Torus constructor.
	MethodNewTorus = "NewTorus"
	// MethodNewLissajous is the canonical name for the Lissajous constructor.
	MethodNewLissajous = "NewLissajous"
	// MethodNewSpecial is the canonical name for the Special constructor.
	MethodNewSpecial = "NewSpecial"
	// MethodGenerate is the canonical name for Curve.Generate.
	MethodGenerate = "Generate"
	// MethodCoordinates is the canonical name for Curve.Coordinates.
	MethodCoordinates = "Coordinates"
	// MethodRecipeBuild is the canonical name for Recipe.Build.
	MethodRecipeBuild = "Recipe.Build"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultSamples is the number of beads sampled when WithSamples is not given.
const DefaultSamples = 100

// DefaultP and DefaultQ are the winding numbers of the trefoil, the torus
// knot built by DefaultTorus.
const (
	DefaultP = 3
	DefaultQ = 2
)

// DefaultInnerRadius offsets the tube centre line; DefaultOuterRadius scales
// the whole torus. Both apply to Torus and to the figure-eight.
const (
	DefaultInnerRadius = 2.0
	DefaultOuterRadius = 1.0
)

// DefaultAmplitude is the Lissajous per-axis amplitude.
const DefaultAmplitude = 2.0

// LissajousDims is the required length of the frequency and phase sequences.
const LissajousDims = 3

// tau is 2π; bead i of N sits at t = tau*i/N.
const tau = 2.0 * math.Pi
