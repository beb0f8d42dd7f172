// SPDX-License-Identifier: MIT
// Package: knots/manifest
//
// manifest.go - YAML decoding into knot recipes.

package manifest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knots/knot"
)

// document is the raw YAML shape; entries stay loosely typed until decode.
type document struct {
	Samples any              `yaml:"samples"`
	Curves  []map[string]any `yaml:"curves"`
}

// fieldError reports a bad value at curves[index].key.
func fieldError(index int, key string, err error) error {
	return fmt.Errorf("curves[%d].%s: %v: %w", index, key, err, ErrBadField)
}

// Parse decodes a manifest into recipes, one per entry, in order.
func Parse(r io.Reader) ([]knot.Recipe, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	defSamples := 0
	if doc.Samples != nil {
		n, err := toInt(doc.Samples)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("samples: %v: %w", doc.Samples, ErrBadField)
		}
		defSamples = n
	}

	out := make([]knot.Recipe, 0, len(doc.Curves))
	for i, entry := range doc.Curves {
		r, err := decodeEntry(i, entry)
		if err != nil {
			return nil, err
		}
		if r.Samples == 0 {
			r.Samples = defSamples
		}
		out = append(out, r)
	}

	return out, nil
}

// Load parses the manifest file at path.
func Load(path string) ([]knot.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recipes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recipes, nil
}

// Build constructs and generates every recipe. It stops at the first
// failure and reports its index.
func Build(recipes []knot.Recipe) ([]*knot.Curve, error) {
	out := make([]*knot.Curve, 0, len(recipes))
	for i, r := range recipes {
		c, err := r.Build()
		if err != nil {
			return nil, fmt.Errorf("curves[%d]: %w", i, err)
		}
		if _, err = c.Generate(); err != nil {
			return nil, fmt.Errorf("curves[%d]: %w", i, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func decodeEntry(i int, entry map[string]any) (knot.Recipe, error) {
	var r knot.Recipe

	rawKind, ok := entry["kind"]
	if !ok {
		return r, fieldError(i, "kind", errors.New("missing"))
	}
	kindName, err := cast.ToStringE(rawKind)
	if err != nil {
		return r, fieldError(i, "kind", err)
	}
	kind, ok := knot.ParseKind(kindName)
	if !ok || kind == knot.KindCustom {
		return r, fmt.Errorf("curves[%d].kind: %q: %w", i, kindName, ErrUnknownKind)
	}
	r.Kind = kind

	for key, v := range entry {
		if err = decodeField(&r, key, v); err != nil {
			if errors.Is(err, knot.ErrInvalidParameter) {
				return r, fmt.Errorf("curves[%d].%s: %w", i, key, err)
			}
			return r, fieldError(i, key, err)
		}
	}

	return r, nil
}

func decodeField(r *knot.Recipe, key string, v any) error {
	var err error
	switch key {
	case "kind":
	case "p":
		r.P, err = toInt(v)
	case "q":
		r.Q, err = toInt(v)
	case "chirality":
		var s string
		s, err = cast.ToStringE(v)
		r.Chirality = knot.ParseChirality(s)
	case "n":
		err = decodeInts(v, r.Frequencies[:])
	case "phi":
		err = decodeFloats(v, r.Phases[:])
	case "id":
		r.SpecialName, err = cast.ToStringE(v)
	case "samples":
		r.Samples, err = toInt(v)
		if err == nil && r.Samples < 1 {
			err = fmt.Errorf("%d is not positive", r.Samples)
		}
	case "r_inner":
		r.InnerRadius, err = floatPtr(v)
	case "r_outer":
		r.OuterRadius, err = floatPtr(v)
	case "amplitude":
		r.Amplitude, err = floatPtr(v)
	case "crossings":
		var n int
		n, err = toInt(v)
		if err == nil && n < 0 {
			err = fmt.Errorf("%d is negative", n)
		}
		r.Crossings = &n
	default:
		err = errors.New("unknown key")
	}

	return err
}

// toInt converts v, refusing values with a fractional part that
// cast.ToIntE would truncate.
func toInt(v any) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, err
	}
	if f, ferr := cast.ToFloat64E(v); ferr == nil && f != float64(n) {
		return 0, fmt.Errorf("%v is not an integer", v)
	}

	return n, nil
}

// floatPtr converts v to a finite float.
func floatPtr(v any) (*float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not finite", f)
	}

	return &f, nil
}

func decodeInts(v any, dst []int) error {
	items, err := cast.ToSliceE(v)
	if err != nil {
		return err
	}
	if len(items) != len(dst) {
		return fmt.Errorf("%d entries, want %d: %w", len(items), len(dst), knot.ErrInvalidParameter)
	}
	for j, item := range items {
		if dst[j], err = toInt(item); err != nil {
			return fmt.Errorf("[%d]: %w", j, err)
		}
	}

	return nil
}

func decodeFloats(v any, dst []float64) error {
	items, err := cast.ToSliceE(v)
	if err != nil {
		return err
	}
	if len(items) != len(dst) {
		return fmt.Errorf("%d entries, want %d: %w", len(items), len(dst), knot.ErrInvalidParameter)
	}
	for j, item := range items {
		if dst[j], err = cast.ToFloat64E(item); err != nil {
			return fmt.Errorf("[%d]: %w", j, err)
		}
	}

	return nil
}
