// SPDX-License-Identifier: MIT
// Package: knots/view
//
// canvas.go - character grid with a depth buffer.

package view

import (
	"math"
	"strings"
)

// markers from far to near.
var markers = []rune{'·', '•', '●'}

type canvas struct {
	cols, rows int
	cells      []rune
	depth      []float64
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]rune, cols*rows),
		depth: make([]float64, cols*rows),
	}
	c.clear()

	return c
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = ' '
		c.depth[i] = math.Inf(-1)
	}
}

// plot puts a marker at (col, row) unless a nearer one is already there.
// level in [0,1] picks the glyph, 1 being nearest.
func (c *canvas) plot(col, row int, depth, level float64) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	i := row*c.cols + col
	if depth <= c.depth[i] {
		return
	}
	c.depth[i] = depth
	g := int(level * float64(len(markers)))
	if g >= len(markers) {
		g = len(markers) - 1
	}
	if g < 0 {
		g = 0
	}
	c.cells[i] = markers[g]
}

// count returns the number of occupied cells.
func (c *canvas) count() int {
	n := 0
	for _, r := range c.cells {
		if r != ' ' {
			n++
		}
	}

	return n
}

func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.cols + 1) * c.rows * 3)
	for r := 0; r < c.rows; r++ {
		sb.WriteString(string(c.cells[r*c.cols : (r+1)*c.cols]))
		if r < c.rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
