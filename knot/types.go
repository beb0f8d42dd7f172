// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// types.go - tagged shape variants and their enums.

package knot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knots/coords"
)

// Kind tags the shape variant behind a Curve.
type Kind int

const (
	// KindCustom marks a curve built from supplied coordinates (no shape).
	KindCustom Kind = iota
	// KindTorus marks a (p,q) torus knot.
	KindTorus
	// KindLissajous marks a Lissajous knot.
	KindLissajous
	// KindSpecial marks one of the hand-coded curves (figure-eight, granny).
	KindSpecial
)

var kindNames = map[Kind]string{
	KindCustom:    "custom",
	KindTorus:     "torus",
	KindLissajous: "lissajous",
	KindSpecial:   "special",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a case-insensitive kind name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, true
		}
	}

	return KindCustom, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("kind %q: %w", b, ErrInvalidParameter)
	}
	*k = v

	return nil
}

// Chirality is the handedness of a torus knot.
type Chirality int

const (
	// RightHanded is the default orientation.
	RightHanded Chirality = iota
	// LeftHanded mirrors the knot by negating both winding numbers.
	LeftHanded
)

// String returns "righthanded" or "lefthanded"; this is the token used in
// torus names.
func (c Chirality) String() string {
	if c == LeftHanded {
		return "lefthanded"
	}

	return "righthanded"
}

// ParseChirality is case-insensitive: "left" (or "lefthanded") selects
// LeftHanded, anything else, including malformed text, is RightHanded.
func ParseChirality(s string) Chirality {
	if strings.EqualFold(s, "left") || strings.EqualFold(s, LeftHanded.String()) {
		return LeftHanded
	}

	return RightHanded
}

// MarshalText implements encoding.TextMarshaler.
func (c Chirality) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it never fails.
func (c *Chirality) UnmarshalText(b []byte) error {
	*c = ParseChirality(string(b))
	return nil
}

// SpecialID selects one of the hand-coded curves.
type SpecialID int

const (
	// FigureEight is the 4_1 knot.
	FigureEight SpecialID = 0
	// Granny is the granny knot (connected sum of two trefoils of equal handedness).
	Granny SpecialID = 1
)

// specialNames doubles as the set of supported ids.
var specialNames = map[SpecialID]string{
	FigureEight: "Figure-eight",
	Granny:      "Granny",
}

// specialCrossings holds the minimal crossing numbers from knot tables.
var specialCrossings = map[SpecialID]int{
	FigureEight: 4,
	Granny:      6,
}

// Valid reports whether id names a supported curve.
func (id SpecialID) Valid() bool {
	_, ok := specialNames[id]
	return ok
}

// String returns the display name ("Figure-eight", "Granny").
func (id SpecialID) String() string {
	if s, ok := specialNames[id]; ok {
		return s
	}

	return fmt.Sprintf("SpecialID(%d)", int(id))
}

// KnownCrossings returns the tabulated minimal crossing number for id.
// It is informational: generators never set Curve crossings themselves.
func (id SpecialID) KnownCrossings() (int, bool) {
	n, ok := specialCrossings[id]
	return n, ok
}

// ParseSpecialID accepts "figure-eight", "figure8", "4_1" and "granny",
// case-insensitively.
func ParseSpecialID(s string) (SpecialID, bool) {
	switch strings.ToLower(s) {
	case "figure-eight", "figure8", "figureeight", "4_1":
		return FigureEight, true
	case "granny":
		return Granny, true
	}

	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (id SpecialID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("special id %d: %w", int(id), ErrUnsupportedVariant)
	}

	return []byte(strings.ToLower(id.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *SpecialID) UnmarshalText(b []byte) error {
	v, ok := ParseSpecialID(string(b))
	if !ok {
		return fmt.Errorf("special id %q: %w", b, ErrUnsupportedVariant)
	}
	*id = v

	return nil
}

// Shape is a closed-form parametrisation t ↦ (x, y, z) over t ∈ [0, 2π).
// Torus, Lissajous and Special implement it; a Curve samples its Shape at N
// evenly spaced beads.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Label returns the curve name for the given sample count.
	Label(samples int) string
	// Validate reports parameters that cannot be evaluated.
	Validate() error
	// Eval returns the point at parameter t. Eval is pure.
	Eval(t float64) coords.Point
}

// Compile-time checks.
var (
	_ Shape = Torus{}
	_ Shape = Lissajous{}
	_ Shape = Special{}
)
