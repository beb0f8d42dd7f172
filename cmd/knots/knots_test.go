package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knots/dtw"
	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/store"
	"github.com/katalvlaran/knots/view"
)

// execute runs one command line against a fresh root rooted at dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(view.WithIO(strings.NewReader("q"), io.Discard))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", dir, "--out", dir}, args...))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

// storedID extracts the id from a "stored <id>" line.
func storedID(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if id, ok := strings.CutPrefix(line, "stored "); ok {
			return id
		}
	}
	t.Fatalf("no stored line in %q", out)
	return ""
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "knots dev\n", out)
}

func TestTorus_Default(t *testing.T) {
	out, err := execute(t, t.TempDir(), "torus")
	require.NoError(t, err)
	assert.Equal(t, "(3-2)-Torus-righthanded.100\n", out)
}

func TestTorus_SaveFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "torus", "--chirality", "left", "-s", "8", "--save", "dat,png")
	require.NoError(t, err)

	dat := filepath.Join(dir, "(3-2)-Torus-lefthanded.8.dat")
	png := filepath.Join(dir, "(3-2)-Torus-lefthanded.8_knot.png")
	assert.Contains(t, out, "saved "+dat)
	assert.Contains(t, out, "saved "+png)
	assert.FileExists(t, png)

	buf, err := export.Load(dat)
	require.NoError(t, err)
	assert.Equal(t, 8, buf.Rows())
	p, _ := buf.Point(0)
	assert.InDelta(t, 3.0, p.X, 1e-4)
}

func TestLissajous_Flags(t *testing.T) {
	out, err := execute(t, t.TempDir(), "lissajous", "-n", "3,5,7", "--phi", "0.1,0.7,1.3", "-s", "40")
	require.NoError(t, err)
	assert.Equal(t, "(3-5-7)-Lissajous.40\n", out)
}

func TestSpecial_ByNameAndNumber(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "special", "--id", "4_1", "-s", "12")
	require.NoError(t, err)
	assert.Equal(t, "Figure-eight.12\n", out)

	out, err = execute(t, dir, "special", "--id", "1")
	require.NoError(t, err)
	assert.Equal(t, "Granny.100\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("samples: 12\nformat: dat\n"), 0o644))

	out, err := execute(t, dir, "torus")
	require.NoError(t, err)
	assert.Contains(t, out, "(3-2)-Torus-righthanded.12\n")
	assert.FileExists(t, filepath.Join(dir, "(3-2)-Torus-righthanded.12.dat"))

	out, err = execute(t, dir, "torus", "-s", "20", "--save", "")
	require.NoError(t, err)
	assert.Equal(t, "(3-2)-Torus-righthanded.20\n", out, "flags override config")
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("KNOTS_SAMPLES", "7")
	out, err := execute(t, t.TempDir(), "special")
	require.NoError(t, err)
	assert.Equal(t, "Figure-eight.7\n", out)
}

func TestStoreLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "No curves stored.\n", out)

	out, err = execute(t, dir, "special", "--id", "granny", "--store", "--crossings", "6")
	require.NoError(t, err)
	id := storedID(t, out)
	assert.FileExists(t, filepath.Join(dir, defaultDBName))

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Granny.100")
	assert.Contains(t, out, "special")

	out, err = execute(t, dir, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Name:      Granny.100\n")
	assert.Contains(t, out, "Crossings: 6\n")
	assert.Contains(t, out, "Recipe:    special:id=1,samples=100\n")

	out, err = execute(t, dir, "view", id)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, dir, "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id+"\n", out)

	_, err = execute(t, dir, "show", id)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestDBFlag(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "nested", "curves.db")

	_, err := execute(t, dir, "--db", db, "torus", "--store")
	require.NoError(t, err)
	assert.FileExists(t, db)
	assert.NoFileExists(t, filepath.Join(dir, defaultDBName))
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.yaml")
	doc := "samples: 10\ncurves:\n  - kind: torus\n    p: 2\n    q: 5\n  - kind: special\n    id: granny\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, dir, "batch", path, "--save", "dat", "--store")
	require.NoError(t, err)
	assert.Contains(t, out, "(2-5)-Torus-righthanded.10\n")
	assert.Contains(t, out, "Granny.10\n")
	assert.FileExists(t, filepath.Join(dir, "Granny.10.dat"))
	assert.Equal(t, 2, strings.Count(out, "stored "))
}

func TestBatch_NameClash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.yaml")
	doc := "samples: 10\ncurves:\n" +
		"  - kind: lissajous\n    n: [3, 2, 7]\n    phi: [0.1, 0.7, 0]\n" +
		"  - kind: lissajous\n    n: [3, 2, 7]\n    phi: [0.2, 0.7, 0]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := execute(t, dir, "batch", path, "--save", "dat")
	require.ErrorIs(t, err, errNameClash)
	assert.Contains(t, err.Error(), "curves[0] and curves[1]")
	assert.Equal(t, exitUserError, exitCode(err))
	matches, _ := filepath.Glob(filepath.Join(dir, "*.dat"))
	assert.Empty(t, matches)

	_, err = execute(t, dir, "batch", path)
	require.NoError(t, err)
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "special", "--id", "granny", "--save", "dat")
	require.NoError(t, err)
	dat := filepath.Join(dir, "Granny.100.dat")

	out, err := execute(t, dir, "compare", dat, dat, "--path")
	require.NoError(t, err)
	assert.Contains(t, out, "DTW(Granny.100, Granny.100) = 0.0000\n")
	assert.Contains(t, out, "path: 100 steps")

	_, err = execute(t, dir, "compare", dat, dat, "--window", "-3")
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	out, err = execute(t, dir, "special", "--id", "granny", "-s", "50", "--store")
	require.NoError(t, err)
	id := storedID(t, out)

	out, err = execute(t, dir, "compare", id, dat, "--cyclic", "--window", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "DTW(Granny.50, Granny.100) = ")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
		code int
	}{
		{"lissajous two frequencies", []string{"lissajous", "-n", "3,2"}, knot.ErrInvalidParameter, exitUserError},
		{"special unknown name", []string{"special", "--id", "square"}, knot.ErrUnsupportedVariant, exitUserError},
		{"special unknown number", []string{"special", "--id", "5"}, knot.ErrUnsupportedVariant, exitUserError},
		{"bad save format", []string{"torus", "--save", "gif"}, errBadFlag, exitUserError},
		{"non-finite radius", []string{"torus", "--r-inner", "NaN"}, errBadFlag, exitUserError},
		{"zero samples", []string{"torus", "-s", "0"}, errBadFlag, exitUserError},
		{"negative crossings", []string{"special", "--crossings", "-1"}, errBadFlag, exitUserError},
		{"missing data file", []string{"compare", "a.dat", "b.dat"}, os.ErrNotExist, exitSysError},
		{"missing id", []string{"delete", "nope"}, store.ErrNotFound, exitUserError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, t.TempDir(), tc.args...)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.code, exitCode(err))
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--config-dir", dir, "version"}, &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "knots dev\n", stdout.String())

	code = run(context.Background(), []string{"--config-dir", dir, "special", "--id", "9"}, &stdout, &stderr)
	assert.Equal(t, exitUserError, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "knots: "))

	assert.Equal(t, exitSysError, exitCode(errors.New("disk full")))
}
