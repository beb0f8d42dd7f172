// SPDX-License-Identifier: MIT
// Package: knots/store

package store

import "errors"

// ErrNotFound indicates no curve has the requested id.
var ErrNotFound = errors.New("store: curve not found")

// ErrClosed indicates use of a Store after Close.
var ErrClosed = errors.New("store: closed")
