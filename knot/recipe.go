// SPDX-License-Identifier: MIT
// Package: knots/knot
//
// recipe.go - serialisable construction parameters.
//
// A Recipe is the flat, JSON/YAML-friendly form of "which constructor with
// which options". Manifests decode into recipes, the store persists them next
// to the points, and Curve.Recipe recovers one from a shaped curve.

package knot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Recipe describes a shaped curve. Fields a kind does not use are ignored;
// nil pointers and zero Samples mean "use the default".
type Recipe struct {
	Kind        Kind                   `json:"kind" yaml:"kind"`
	P           int                    `json:"p,omitempty" yaml:"p,omitempty"`
	Q           int                    `json:"q,omitempty" yaml:"q,omitempty"`
	Chirality   Chirality              `json:"chirality" yaml:"chirality"`
	Frequencies [LissajousDims]int     `json:"n" yaml:"n"`
	Phases      [LissajousDims]float64 `json:"phi" yaml:"phi"`
	Special     SpecialID              `json:"-" yaml:"-"`
	Samples     int                    `json:"samples,omitempty" yaml:"samples,omitempty"`
	InnerRadius *float64               `json:"r_inner,omitempty" yaml:"r_inner,omitempty"`
	OuterRadius *float64               `json:"r_outer,omitempty" yaml:"r_outer,omitempty"`
	Amplitude   *float64               `json:"amplitude,omitempty" yaml:"amplitude,omitempty"`
	Crossings   *int                   `json:"crossings,omitempty" yaml:"crossings,omitempty"`

	// SpecialName carries Special through JSON as text ("granny"); it is
	// kept in sync by Build and Curve.Recipe.
	SpecialName string `json:"id,omitempty" yaml:"id,omitempty"`
}

// options translates the recipe's optional fields into constructor options.
// Non-finite radii or amplitude fail here instead of reaching the panicking
// option constructors.
func (r Recipe) options() ([]Option, error) {
	for _, f := range []struct {
		name string
		v    *float64
	}{{"r_inner", r.InnerRadius}, {"r_outer", r.OuterRadius}, {"amplitude", r.Amplitude}} {
		if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return nil, knotErrorf(MethodRecipeBuild, ErrInvalidParameter, "%s is %v", f.name, *f.v)
		}
	}
	var opts []Option
	if r.Samples > 0 {
		opts = append(opts, WithSamples(r.Samples))
	}
	if r.InnerRadius != nil {
		opts = append(opts, WithInnerRadius(*r.InnerRadius))
	}
	if r.OuterRadius != nil {
		opts = append(opts, WithOuterRadius(*r.OuterRadius))
	}
	if r.Amplitude != nil {
		opts = append(opts, WithAmplitude(*r.Amplitude))
	}
	if r.Crossings != nil && *r.Crossings >= 0 {
		opts = append(opts, WithCrossings(*r.Crossings))
	}

	return append(opts, WithChirality(r.Chirality)), nil
}

// special resolves the selector, preferring SpecialName when present.
func (r Recipe) special() (SpecialID, error) {
	if r.SpecialName == "" {
		return r.Special, nil
	}
	if id, ok := ParseSpecialID(r.SpecialName); ok {
		return id, nil
	}
	if n, err := strconv.Atoi(r.SpecialName); err == nil {
		return SpecialID(n), nil
	}

	return 0, fmt.Errorf("special id %q: %w", r.SpecialName, ErrUnsupportedVariant)
}

// Build constructs the curve the recipe describes. extra options are
// applied after the recipe's own, e.g. WithCoordinates to restore a stored
// buffer; without them the curve is ungenerated.
func (r Recipe) Build(extra ...Option) (*Curve, error) {
	opts, err := r.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)
	switch r.Kind {
	case KindTorus:
		return NewTorus(r.P, r.Q, opts...)
	case KindLissajous:
		return NewLissajous(r.Frequencies[:], r.Phases[:], opts...)
	case KindSpecial:
		id, err := r.special()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRecipeBuild, err)
		}
		return NewSpecial(id, opts...)
	}

	return nil, knotErrorf(MethodRecipeBuild, ErrInvalidParameter, "kind %s has no constructor", r.Kind)
}

// Key returns a canonical string covering every parameter that affects the
// coordinates, with defaults resolved. Two recipes with equal keys generate
// identical buffers. Names are not a substitute: Lissajous names omit the
// phases and amplitude, so two Lissajous curves differing only there share a
// name and therefore a default export file name.
func (r Recipe) Key() string {
	samples := r.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	inner := floatOr(r.InnerRadius, DefaultInnerRadius)
	outer := floatOr(r.OuterRadius, DefaultOuterRadius)

	var sb strings.Builder
	sb.WriteString(r.Kind.String())
	switch r.Kind {
	case KindTorus:
		fmt.Fprintf(&sb, ":p=%d,q=%d,chirality=%s,r_inner=%g,r_outer=%g", r.P, r.Q, r.Chirality, inner, outer)
	case KindLissajous:
		f, ph := r.Frequencies, r.Phases
		fmt.Fprintf(&sb, ":n=%d,%d,%d,phi=%g,%g,%g,amplitude=%g",
			f[0], f[1], f[2], ph[0], ph[1], ph[2], floatOr(r.Amplitude, DefaultAmplitude))
	case KindSpecial:
		id, err := r.special()
		if err != nil {
			fmt.Fprintf(&sb, ":id=%s", r.SpecialName)
			break
		}
		fmt.Fprintf(&sb, ":id=%d", int(id))
		if id == FigureEight {
			fmt.Fprintf(&sb, ",r_inner=%g,r_outer=%g", inner, outer)
		}
	}
	fmt.Fprintf(&sb, ",samples=%d", samples)

	return sb.String()
}

// Recipe recovers the construction parameters of a shaped curve. Custom
// curves report false.
func (c *Curve) Recipe() (Recipe, bool) {
	r := Recipe{Kind: c.Kind(), Samples: c.samples, Crossings: c.crossings}
	switch s := c.shape.(type) {
	case Torus:
		r.P, r.Q, r.Chirality = s.P, s.Q, s.Chirality
		r.InnerRadius, r.OuterRadius = floatPtr(s.InnerRadius), floatPtr(s.OuterRadius)
	case Lissajous:
		r.Frequencies, r.Phases = s.Frequencies, s.Phases
		r.Amplitude = floatPtr(s.Amplitude)
	case Special:
		r.Special = s.ID
		r.SpecialName = strings.ToLower(s.ID.String())
		if s.ID == FigureEight {
			r.InnerRadius, r.OuterRadius = floatPtr(s.InnerRadius), floatPtr(s.OuterRadius)
		}
	default:
		return Recipe{}, false
	}

	return r, true
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}

func floatPtr(v float64) *float64 { return &v }
