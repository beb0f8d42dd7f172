package manifest_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knots/knot"
	"github.com/katalvlaran/knots/manifest"
)

const sample = `
samples: 200
curves:
  - kind: torus
    p: 3
    q: "2"
    chirality: LEFT
    r_inner: 3
  - kind: lissajous
    n: [3, 2, "7"]
    phi: [0.7, "0.2", 0]
    amplitude: "1.5"
    samples: 64
  - kind: special
    id: granny
    crossings: 6
  - kind: Special
    id: 0
`

func TestParse_MixedNumerics(t *testing.T) {
	recipes, err := manifest.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recipes, 4)

	torus := recipes[0]
	assert.Equal(t, knot.KindTorus, torus.Kind)
	assert.Equal(t, 3, torus.P)
	assert.Equal(t, 2, torus.Q)
	assert.Equal(t, knot.LeftHanded, torus.Chirality)
	require.NotNil(t, torus.InnerRadius)
	assert.Equal(t, 3.0, *torus.InnerRadius)
	assert.Equal(t, 200, torus.Samples, "top-level samples is the default")

	liss := recipes[1]
	assert.Equal(t, [3]int{3, 2, 7}, liss.Frequencies)
	assert.Equal(t, [3]float64{0.7, 0.2, 0}, liss.Phases)
	require.NotNil(t, liss.Amplitude)
	assert.Equal(t, 1.5, *liss.Amplitude)
	assert.Equal(t, 64, liss.Samples)

	granny := recipes[2]
	assert.Equal(t, "granny", granny.SpecialName)
	require.NotNil(t, granny.Crossings)
	assert.Equal(t, 6, *granny.Crossings)

	assert.Equal(t, "0", recipes[3].SpecialName)
}

func TestBuild(t *testing.T) {
	recipes, err := manifest.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	curves, err := manifest.Build(recipes)
	require.NoError(t, err)
	require.Len(t, curves, 4)

	names := make([]string, len(curves))
	for i, c := range curves {
		names[i] = c.Name()
		assert.True(t, c.Generated(), c.Name())
	}
	assert.Equal(t, []string{
		"(3-2)-Torus-lefthanded.200",
		"(3-2-7)-Lissajous.64",
		"Granny.200",
		"Figure-eight.200",
	}, names)

	n, ok := curves[2].Crossings()
	require.True(t, ok)
	assert.Equal(t, 6, n)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
		msg  string
	}{
		{"unknown kind", "curves:\n  - kind: trefoil\n", manifest.ErrUnknownKind, "curves[0].kind"},
		{"custom kind", "curves:\n  - kind: custom\n", manifest.ErrUnknownKind, "curves[0].kind"},
		{"missing kind", "curves:\n  - p: 3\n", manifest.ErrBadField, "curves[0].kind"},
		{"bad int", "curves:\n  - kind: torus\n  - kind: torus\n    p: three\n", manifest.ErrBadField, "curves[1].p"},
		{"bad float", "curves:\n  - kind: lissajous\n    n: [1, 2, 3]\n    phi: [0, x, 0]\n", manifest.ErrBadField, "curves[0].phi"},
		{"unknown key", "curves:\n  - kind: torus\n    pp: 3\n", manifest.ErrBadField, "curves[0].pp"},
		{"short n", "curves:\n  - kind: lissajous\n    n: [1, 2]\n", knot.ErrInvalidParameter, "curves[0].n"},
		{"zero samples", "curves:\n  - kind: torus\n    samples: 0\n", manifest.ErrBadField, "curves[0].samples"},
		{"negative crossings", "curves:\n  - kind: torus\n    crossings: -2\n", manifest.ErrBadField, "curves[0].crossings"},
		{"bad default samples", "samples: lots\ncurves: []\n", manifest.ErrBadField, "samples"},
		{"infinite r_outer", "curves:\n  - kind: torus\n    r_outer: .inf\n", manifest.ErrBadField, "curves[0].r_outer"},
		{"negative infinite r_inner", "curves:\n  - kind: special\n    r_inner: -.inf\n", manifest.ErrBadField, "curves[0].r_inner"},
		{"nan amplitude", "curves:\n  - kind: lissajous\n    amplitude: .nan\n", manifest.ErrBadField, "curves[0].amplitude"},
		{"fractional p", "curves:\n  - kind: torus\n    p: 3.7\n", manifest.ErrBadField, "curves[0].p"},
		{"fractional frequency", "curves:\n  - kind: lissajous\n    n: [3, 2.5, 7]\n", manifest.ErrBadField, "curves[0].n"},
		{"fractional samples", "curves:\n  - kind: torus\n    samples: 10.5\n", manifest.ErrBadField, "curves[0].samples"},
		{"fractional default samples", "samples: 99.9\ncurves: []\n", manifest.ErrBadField, "samples"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Parse(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParse_IntegralFloatsAccepted(t *testing.T) {
	recipes, err := manifest.Parse(strings.NewReader("curves:\n  - kind: torus\n    p: 5.0\n    q: \"3\"\n"))
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 5, recipes[0].P)
	assert.Equal(t, 3, recipes[0].Q)
}

func TestBuild_NonFiniteNeverPanics(t *testing.T) {
	inf := math.Inf(1)
	recipes := []knot.Recipe{
		{Kind: knot.KindTorus, P: 3, Q: 2},
		{Kind: knot.KindTorus, P: 3, Q: 2, OuterRadius: &inf},
	}

	var err error
	require.NotPanics(t, func() { _, err = manifest.Build(recipes) })
	assert.ErrorIs(t, err, knot.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "curves[1]")
}

func TestParse_Empty(t *testing.T) {
	recipes, err := manifest.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recipes)

	_, err = manifest.Parse(strings.NewReader("curves: [\n"))
	assert.Error(t, err)
}

func TestBuild_ReportsIndex(t *testing.T) {
	recipes, err := manifest.Parse(strings.NewReader("curves:\n  - kind: special\n  - kind: special\n    id: square\n"))
	require.NoError(t, err)

	_, err = manifest.Build(recipes)
	assert.ErrorIs(t, err, knot.ErrUnsupportedVariant)
	assert.Contains(t, err.Error(), "curves[1]")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	recipes, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Len(t, recipes, 4)

	_, err = manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
