// Package knot generates explicit parametric space curves ("knots") and
// holds them in a single entity type.
//
// A Curve is a name, an optional caller-supplied minimal crossing number and
// an ordered N×3 coordinate buffer (coords.Buffer). Shaped curves also carry
// the tagged variant that produced them:
//
//   - Torus      (p,q) torus knots with chirality and two radii.
//   - Lissajous  per-axis cosines with integer frequencies and phases.
//   - Special    hand-coded figure-eight (4_1) and granny knots.
//
// Every variant implements Shape (t ↦ point over t ∈ [0, 2π)); Generate
// samples it at bead i ↦ t = 2π·i/N and stores the result wholesale.
//
// Usage:
//
//	c, err := knot.NewTorus(3, 2, knot.WithChiralityName("left"))
//	if err != nil { ... }
//	buf, err := c.Generate()
//
// Errors (match with errors.Is):
//
//   - ErrUninitialized       Coordinates requested before generation.
//   - ErrInvalidParameter    Lissajous n/phi not exactly three entries.
//   - ErrUnsupportedVariant  Special id outside {FigureEight, Granny}.
//   - ErrNoShape             Generate on a curve built from coordinates only.
//
// Unrecognised chirality text is not an error: it selects RightHanded.
//
// Generation is pure and deterministic: the same shape and N always yield the
// same buffer, and regenerating never alters stored parameters.
package knot
