package plot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/knots/coords"
)

func TestCamera_Project(t *testing.T) {
	const eps = 1e-12
	tests := []struct {
		name       string
		elev, azim float64
		p          coords.Point
		u, v       float64
	}{
		{"side on, along -x", 0, 0, coords.Point{X: 1, Y: 2, Z: 3}, 2, 3},
		{"side on, along -y", 0, 90, coords.Point{X: 1, Y: 2, Z: 3}, -1, 3},
		{"top down", 90, 0, coords.Point{X: 1, Y: 2, Z: 3}, 2, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, v := NewCamera(tc.elev, tc.azim).Project(tc.p)
			assert.InDelta(t, tc.u, u, eps)
			assert.InDelta(t, tc.v, v, eps)
		})
	}
}

func TestCamera_Orthonormal(t *testing.T) {
	cam := NewCamera(DefaultElevation, DefaultAzimuth)
	for _, v := range []coords.Point{cam.Right, cam.Up, cam.Eye} {
		assert.InDelta(t, 1, dot(v, v), 1e-12)
	}
	assert.InDelta(t, 0, dot(cam.Right, cam.Up), 1e-12)
	assert.InDelta(t, 0, dot(cam.Right, cam.Eye), 1e-12)
	assert.InDelta(t, 0, dot(cam.Up, cam.Eye), 1e-12)

	top := NewCamera(90, 0)
	assert.InDelta(t, 5, top.Depth(coords.Point{Z: 5}), 1e-12)
}

func TestFit(t *testing.T) {
	area := image.Rect(0, 0, 100, 50)
	f := newFit([]float64{-1, 1}, []float64{-1, 1}, area)

	assert.Equal(t, 25.0, f.scale, "height limits the uniform scale")
	x, y := f.pixel(0, 0)
	assert.Equal(t, [2]int{50, 25}, [2]int{x, y})
	x, y = f.pixel(1, 1)
	assert.Equal(t, [2]int{75, 0}, [2]int{x, y}, "v grows upwards")
}

func TestFit_Degenerate(t *testing.T) {
	area := image.Rect(10, 10, 30, 30)
	f := newFit([]float64{5}, []float64{-2}, area)

	assert.Equal(t, 1.0, f.scale)
	x, y := f.pixel(5, -2)
	assert.Equal(t, [2]int{20, 20}, [2]int{x, y})

	line := newFit([]float64{0, 4}, []float64{1, 1}, area)
	assert.Equal(t, 5.0, line.scale)
}

func TestStroke_Clips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.NotPanics(t, func() {
		stroke(img, -10, -10, 20, 20, 3, DefaultLineColor)
	})
	assert.Equal(t, DefaultLineColor, img.RGBAAt(2, 2))
}
