// SPDX-License-Identifier: MIT
// Package: knots/store
//
// options.go - functional options for Open.

package store

import (
	"time"

	"github.com/sgostarter/i/l"
)

// DefaultCacheTTL is how long a decoded curve stays cached after Get.
const DefaultCacheTTL = 5 * time.Minute

// Option customises Open.
type Option func(*config)

type config struct {
	logger   l.Wrapper
	cacheTTL time.Duration
	now      func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = l.NewNopLoggerWrapper()
	}

	return cfg
}

// WithLogger sets the store logger. Panics on nil.
func WithLogger(logger l.Wrapper) Option {
	if logger == nil {
		panic("store: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithCacheTTL sets the cache lifetime of decoded curves. Panics if d <= 0.
func WithCacheTTL(d time.Duration) Option {
	if d <= 0 {
		panic("store: WithCacheTTL(d<=0)")
	}
	return func(c *config) {
		c.cacheTTL = d
	}
}

// WithClock replaces time.Now for created_at stamps. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("store: WithClock(nil)")
	}
	return func(c *config) {
		c.now = now
	}
}
