package knot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knots/knot"
)

func TestSpecial_GrannyFirstBead(t *testing.T) {
	c, err := knot.NewSpecial(knot.Granny, knot.WithSamples(100))
	buf := mustGenerate(t, c, err)
	requireFiniteShape(t, buf, 100)

	p0, err := buf.Point(0)
	require.NoError(t, err)
	assert.InDelta(t, -0.825, p0.X, eps)
	assert.InDelta(t, 0.35, p0.Y, eps)
	assert.InDelta(t, 0.70, p0.Z, eps)
}

func TestSpecial_GrannyIgnoresRadii(t *testing.T) {
	plain, err := knot.NewSpecial(knot.Granny)
	a := mustGenerate(t, plain, err)

	scaled, err := knot.NewSpecial(knot.Granny, knot.WithInnerRadius(10), knot.WithOuterRadius(10))
	b := mustGenerate(t, scaled, err)

	assert.Equal(t, a.Points(), b.Points())
}

func TestSpecial_FigureEightFirstBead(t *testing.T) {
	c, err := knot.NewSpecial(knot.FigureEight)
	buf := mustGenerate(t, c, err)
	requireFiniteShape(t, buf, knot.DefaultSamples)

	p0, err := buf.Point(0)
	require.NoError(t, err)
	// r_outer·(cos 0 + r_inner) on the x axis.
	assert.InDelta(t, 3.0, p0.X, eps)
	assert.InDelta(t, 0.0, p0.Y, eps)
	assert.InDelta(t, 0.0, p0.Z, eps)
}

func TestSpecial_FigureEightUsesRadii(t *testing.T) {
	c, err := knot.NewSpecial(knot.FigureEight, knot.WithInnerRadius(1), knot.WithOuterRadius(3))
	buf := mustGenerate(t, c, err)

	p0, err := buf.Point(0)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, p0.X, eps)
}

func TestSpecial_UnsupportedID(t *testing.T) {
	for _, id := range []knot.SpecialID{-1, 2, 42} {
		c, err := knot.NewSpecial(id)
		assert.ErrorIs(t, err, knot.ErrUnsupportedVariant, "id %d", id)
		assert.Nil(t, c)
	}

	_, err := knot.Sample(knot.Special{ID: 7}, 10)
	assert.ErrorIs(t, err, knot.ErrUnsupportedVariant)
}

func TestSpecial_Names(t *testing.T) {
	fig, err := knot.NewSpecial(knot.FigureEight, knot.WithSamples(10))
	require.NoError(t, err)
	assert.Equal(t, "Figure-eight.10", fig.Name())

	gr, err := knot.NewSpecial(knot.Granny)
	require.NoError(t, err)
	assert.Equal(t, "Granny.100", gr.Name())
}

func TestSpecial_CrossingsNeverPopulated(t *testing.T) {
	c, err := knot.NewSpecial(knot.Granny)
	mustGenerate(t, c, err)

	_, ok := c.Crossings()
	assert.False(t, ok)

	known, ok := knot.Granny.KnownCrossings()
	require.True(t, ok)
	assert.Equal(t, 6, known)
	known, ok = knot.FigureEight.KnownCrossings()
	require.True(t, ok)
	assert.Equal(t, 4, known)
}

func TestParseSpecialID(t *testing.T) {
	tests := []struct {
		in   string
		want knot.SpecialID
		ok   bool
	}{
		{"figure-eight", knot.FigureEight, true},
		{"4_1", knot.FigureEight, true},
		{"Granny", knot.Granny, true},
		{"square", 0, false},
	}
	for _, tc := range tests {
		got, ok := knot.ParseSpecialID(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
