// SPDX-License-Identifier: MIT
// Package: knots/export
//
// export.go - fixed-precision text codec for coordinate buffers.

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
)

// precision is the number of decimals written per value.
const precision = 4

// FileName returns the file name Save would use for c, without directory.
func FileName(c *knot.Curve, opts ...Option) string {
	cfg := newConfig(opts...)

	return cfg.fileName(c.Name())
}

func (cfg config) fileName(name string) string {
	title := cfg.title
	if title == "" {
		title = name
	}
	if title == "" {
		title = DefaultTitle
	}

	return title + "." + cfg.suffix
}

// Save writes the coordinates of c to <dir>/<title>.<suffix> and returns the
// path. The file is truncated if it exists.
func Save(c *knot.Curve, opts ...Option) (path string, err error) {
	buf, err := c.Coordinates()
	if err != nil {
		return "", fmt.Errorf("export.Save: %w", err)
	}
	cfg := newConfig(opts...)
	path = filepath.Join(cfg.dir, cfg.fileName(c.Name()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export.Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export.Save: %w", cerr)
			path = ""
		}
	}()

	if err = Write(f, buf); err != nil {
		return "", fmt.Errorf("export.Save: %s: %w", path, err)
	}

	return path, nil
}

// Write encodes buf, one "x y z" row per point.
func Write(w io.Writer, buf *coords.Buffer) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 64)
	for i := 0; i < buf.Rows(); i++ {
		p, err := buf.Point(i)
		if err != nil {
			return err
		}
		line = line[:0]
		line = strconv.AppendFloat(line, p.X, 'f', precision, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Y, 'f', precision, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Z, 'f', precision, 64)
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read decodes rows written by Write. Blank lines are skipped; anything
// else that is not three numbers fails with ErrMalformedRow. Input with no
// rows fails with coords.ErrBadShape.
func Read(r io.Reader) (*coords.Buffer, error) {
	var pts []coords.Point
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != coords.Dim {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", lineNo, len(fields), coords.Dim, ErrMalformedRow)
		}
		var v [coords.Dim]float64
		for d, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d %q: %w", lineNo, d+1, f, ErrMalformedRow)
			}
			v[d] = x
		}
		pts = append(pts, coords.Point{X: v[0], Y: v[1], Z: v[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return coords.FromPoints(pts)
}

// Load reads the file at path with Read.
func Load(path string) (*coords.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("export.Load %s: %w", path, err)
	}

	return buf, nil
}
