// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// errors.go - sentinel errors for the knot package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Constructors and Generate attach method context with %w
//     ("NewLissajous: n has 2 entries, want 3: knot: invalid parameter").
//   - Generation never panics. Option constructors (WithX) panic on
//     meaningless values, the same split the builder options use.

package knot

import (
	"errors"
	"fmt"
)

// ErrUninitialized indicates that coordinates were requested before the
// curve was generated (or supplied). Presentation and export adapters surface
// this instead of operating on empty data.
var ErrUninitialized = errors.New("knot: uninitialized coordinates")

// ErrInvalidParameter indicates a shape parameter that cannot describe a
// curve, e.g. Lissajous frequency/phase sequences that are not exactly 3 long.
var ErrInvalidParameter = errors.New("knot: invalid parameter")

// ErrUnsupportedVariant indicates a Special selector outside the known set
// (FigureEight, Granny).
var ErrUnsupportedVariant = errors.New("knot: unsupported variant")

// ErrNoShape indicates Generate was called on a curve built from supplied
// coordinates only; there is no parametrisation to evaluate.
var ErrNoShape = errors.New("knot: curve has no shape to generate from")

// knotErrorf prefixes err with the method name and a formatted detail while
// keeping err matchable via errors.Is.
func knotErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
