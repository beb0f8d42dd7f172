// SPDX-License-Identifier: MIT
// Package: knots/manifest

package manifest

import "errors"

// ErrUnknownKind indicates an entry whose kind is not torus, lissajous or
// special.
var ErrUnknownKind = errors.New("manifest: unknown kind")

// ErrBadField indicates an unknown key or a value of the wrong type.
var ErrBadField = errors.New("manifest: bad field")
