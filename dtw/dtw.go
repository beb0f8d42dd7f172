// SPDX-License-Identifier: MIT
// Package: knots/dtw
//
// dtw.go - DTW over N×3 coordinate buffers.
//
// Algorithm Outline (FullMatrix):
//  1. n, m = rows of a and b. D is (n+1)×(m+1).
//  2. D[0][0] = 0, D[i][0] = D[0][j] = +Inf.
//  3. For each in-window (i, j):
//     cost = |a[i-1] − b[j-1]| (Euclidean)
//     D[i][j] = cost + min(D[i-1][j]+penalty, D[i][j-1]+penalty, D[i-1][j-1])
//  4. distance = D[n][m]; backtrack from (n, m) when a path is wanted.
//
// Cyclic mode repeats this for every rotation of b and keeps the minimum.

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
)

// Curves runs DTW on the coordinates of two curves. Ungenerated curves fail
// with knot.ErrUninitialized.
func Curves(a, b *knot.Curve, opts *Options) (float64, []Coord, error) {
	ab, err := a.Coordinates()
	if err != nil {
		return 0, nil, fmt.Errorf("dtw.Curves: %w", err)
	}
	bb, err := b.Coordinates()
	if err != nil {
		return 0, nil, fmt.Errorf("dtw.Curves: %w", err)
	}

	return DTW(ab, bb, opts)
}

// DTW computes the warping distance between a and b and, if requested, the
// alignment path from (0,0) to (n-1,m-1). nil opts means DefaultOptions.
// A window narrower than |n-m| yields +Inf, not an error.
func DTW(a, b *coords.Buffer, opts *Options) (distance float64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(o); err != nil {
		return 0, nil, err
	}
	if a == nil || b == nil || a.Rows() == 0 || b.Rows() == 0 {
		return 0, nil, ErrEmptyInput
	}

	pa, pb := a.Points(), b.Points()
	if !o.Cyclic {
		return align(pa, pb, o)
	}

	m := len(pb)
	best, bestShift := math.Inf(1), 0
	rotated := make([]coords.Point, m)
	distOnly := o
	distOnly.ReturnPath, distOnly.MemoryMode = false, TwoRows
	for shift := 0; shift < m; shift++ {
		rotate(rotated, pb, shift)
		d, _, _ := align(pa, rotated, distOnly)
		if d < best {
			best, bestShift = d, shift
		}
	}
	if !o.ReturnPath {
		return best, nil, nil
	}

	rotate(rotated, pb, bestShift)
	distance, path, err = align(pa, rotated, o)
	for k := range path {
		path[k].J = (path[k].J + bestShift) % m
	}

	return distance, path, err
}

func validate(o Options) error {
	if o.Window < -1 {
		return fmt.Errorf("window %d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return fmt.Errorf("slope penalty %v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// rotate fills dst with src starting at bead shift.
func rotate(dst, src []coords.Point, shift int) {
	m := len(src)
	for j := range dst {
		dst[j] = src[(j+shift)%m]
	}
}

func cost(p, q coords.Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func align(a, b []coords.Point, o Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	window := o.Window
	if window < 0 {
		window = n + m
	}
	inf := math.Inf(1)

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = cost(a[i-1], b[j-1]) + best
		}
	}
	distance := row(n)[m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, o.SlopePenalty), nil
}

// backtrack walks from (n, m) to (1, 1) choosing the cheapest predecessor.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case i == 1 && j == 1:
			i, j = 0, 0
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
