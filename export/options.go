// SPDX-License-Identifier: MIT
// Package: knots/export
//
// options.go - functional options for Save.

package export

import "strings"

// DefaultTitle names files written for curves without a name.
const DefaultTitle = "Knot"

// DefaultSuffix is the file extension used when WithSuffix is not given.
const DefaultSuffix = "dat"

// Option customises Save.
type Option func(*config)

type config struct {
	title  string
	suffix string
	dir    string
}

func newConfig(opts ...Option) config {
	cfg := config{suffix: DefaultSuffix, dir: "."}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTitle overrides the file name stem. An empty title keeps the default.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSuffix sets the file extension, with or without a leading dot.
// Panics on an empty suffix.
func WithSuffix(suffix string) Option {
	suffix = strings.TrimPrefix(suffix, ".")
	if suffix == "" {
		panic("export: WithSuffix(\"\")")
	}
	return func(c *config) {
		c.suffix = suffix
	}
}

// WithDir sets the output directory. It must exist.
func WithDir(dir string) Option {
	return func(c *config) {
		if dir != "" {
			c.dir = dir
		}
	}
}
