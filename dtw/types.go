// SPDX-License-Identifier: MIT
// Package: knots/dtw

package dtw

import "errors"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix keeps the entire (n+1)×(m+1) matrix and can recover the
//     warping path. Memory: O(n·m).
//   - TwoRows keeps only the previous and current row. Memory: O(m), no path.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota
	// TwoRows keeps two rows and returns the distance only.
	TwoRows
)

// Options configures DTW.
//
// Fields:
//   - Window: maximum |i-j| allowed (Sakoe–Chiba band); -1 means unlimited.
//   - SlopePenalty: extra cost of every insertion or deletion step.
//   - ReturnPath: backtrack and return the alignment; needs FullMatrix.
//   - MemoryMode: FullMatrix or TwoRows.
//   - Cyclic: treat b as closed and minimise over its starting bead.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
	Cyclic       bool
}

// DefaultOptions returns unlimited window, no penalty, no path, TwoRows.
func DefaultOptions() Options {
	return Options{Window: -1, MemoryMode: TwoRows}
}

// Coord is one aligned pair: bead I of a with bead J of b.
type Coord struct {
	I, J int
}

var (
	// ErrEmptyInput indicates a buffer with no rows.
	ErrEmptyInput = errors.New("dtw: input curves must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or
	// non-finite SlopePenalty, unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)
