// SPDX-License-Identifier: MIT
// Package: knots/coords
//
// errors.go - sentinel errors for the coordinate buffer.
// Callers branch with errors.Is; context is attached with %w at the call site.

package coords

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a buffer would have no rows.
	ErrBadShape = errors.New("coords: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the buffer.
	// Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("coords: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("coords: NaN or Inf encountered")
)

// bufferErrorf wraps err with Buffer method context: "Buffer.<method>(r,c): <err>".
func bufferErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d): %w", method, row, col, err)
}
