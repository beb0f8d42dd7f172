// SPDX-License-Identifier: MIT
// Package: knots/coords
//
// buffer.go - row-major N×3 coordinate storage.

package coords

import (
	"fmt"
	"math"
	"strings"
)

// Dim is the number of columns of every Buffer (X, Y, Z).
const Dim = 3

// Column indices.
const (
	ColX = 0
	ColY = 1
	ColZ = 2
)

// Point is one sampled position along a curve.
type Point struct {
	X, Y, Z float64
}

// Component returns the d-th coordinate (0=X, 1=Y, 2=Z); other d yield 0.
func (p Point) Component(d int) float64 {
	switch d {
	case ColX:
		return p.X
	case ColY:
		return p.Y
	case ColZ:
		return p.Z
	}

	return 0
}

// Buffer is a row-major N×3 matrix of float64 values.
// rows is N, data holds rows*Dim elements in row-major order.
type Buffer struct {
	rows int       // number of sampled points
	data []float64 // flat backing storage, length == rows*Dim
}

// NewBuffer creates a rows×3 Buffer initialised to zeros.
// Returns ErrBadShape if rows <= 0.
// Complexity: O(rows) time and memory.
func NewBuffer(rows int) (*Buffer, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("NewBuffer(%d): %w", rows, ErrBadShape)
	}

	return &Buffer{rows: rows, data: make([]float64, rows*Dim)}, nil
}

// FromPoints copies pts into a new Buffer, preserving order.
// Returns ErrBadShape for an empty slice.
func FromPoints(pts []Point) (*Buffer, error) {
	b, err := NewBuffer(len(pts))
	if err != nil {
		return nil, err
	}
	for i, p := range pts {
		b.put(i, p)
	}

	return b, nil
}

// Rows returns the number of points N.
func (b *Buffer) Rows() int {
	return b.rows
}

// Cols returns Dim; present so a Buffer reads like any other matrix.
func (b *Buffer) Cols() int {
	return Dim
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (b *Buffer) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= b.rows || col < 0 || col >= Dim {
		return 0, bufferErrorf(method, row, col, ErrOutOfRange)
	}

	return row*Dim + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (b *Buffer) At(row, col int) (float64, error) {
	idx, err := b.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return b.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (b *Buffer) Set(row, col int, v float64) error {
	idx, err := b.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	b.data[idx] = v

	return nil
}

// Point returns row as a Point.
func (b *Buffer) Point(row int) (Point, error) {
	if _, err := b.indexOf("Point", row, 0); err != nil {
		return Point{}, err
	}

	return b.get(row), nil
}

// SetPoint overwrites row with p.
func (b *Buffer) SetPoint(row int, p Point) error {
	if _, err := b.indexOf("SetPoint", row, 0); err != nil {
		return err
	}
	b.put(row, p)

	return nil
}

// Segment returns the endpoints of the edge leaving row i. The last row
// wraps around to row 0 because every curve here is closed.
func (b *Buffer) Segment(i int) (Point, Point, error) {
	if _, err := b.indexOf("Segment", i, 0); err != nil {
		return Point{}, Point{}, err
	}

	return b.get(i), b.get((i + 1) % b.rows), nil
}

// Points returns a copy of all rows in generation order.
// Complexity: O(N).
func (b *Buffer) Points() []Point {
	out := make([]Point, b.rows)
	for i := range out {
		out[i] = b.get(i)
	}

	return out
}

// Column returns a copy of column col (0=X, 1=Y, 2=Z), or nil when col is
// out of range.
func (b *Buffer) Column(col int) []float64 {
	if col < 0 || col >= Dim {
		return nil
	}
	out := make([]float64, b.rows)
	for i := range out {
		out[i] = b.data[i*Dim+col]
	}

	return out
}

// Clone returns a deep copy of the buffer.
// Complexity: O(N) time and memory.
func (b *Buffer) Clone() *Buffer {
	cp := make([]float64, len(b.data))
	copy(cp, b.data)

	return &Buffer{rows: b.rows, data: cp}
}

// CheckFinite reports the first NaN or ±Inf element as ErrNaNInf.
func (b *Buffer) CheckFinite() error {
	for idx, v := range b.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return bufferErrorf("CheckFinite", idx/Dim, idx%Dim, ErrNaNInf)
		}
	}

	return nil
}

// Bounds returns the component-wise minimum and maximum over all rows.
func (b *Buffer) Bounds() (lo, hi Point) {
	lo, hi = b.get(0), b.get(0)
	for i := 1; i < b.rows; i++ {
		p := b.get(i)
		lo = Point{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Point{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}

	return lo, hi
}

// String implements fmt.Stringer for debugging; one bracketed row per line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i := 0; i < b.rows; i++ {
		p := b.get(i)
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", p.X, p.Y, p.Z)
	}

	return sb.String()
}

// get and put skip bounds checks; callers validate first.
func (b *Buffer) get(row int) Point {
	o := row * Dim
	return Point{X: b.data[o], Y: b.data[o+1], Z: b.data[o+2]}
}

func (b *Buffer) put(row int, p Point) {
	o := row * Dim
	b.data[o], b.data[o+1], b.data[o+2] = p.X, p.Y, p.Z
}
