package knot_test

import (
	"testing"

	"github.com/katalvlaran/knots/coords"
	"github.com/katalvlaran/knots/knot"
)

var benchBuf *coords.Buffer

func benchmarkGenerate(b *testing.B, c *knot.Curve, err error) {
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBuf, err = c.Generate()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTorus_Generate_1k(b *testing.B) {
	c, err := knot.NewTorus(3, 2, knot.WithSamples(1000))
	benchmarkGenerate(b, c, err)
}

func BenchmarkLissajous_Generate_1k(b *testing.B) {
	c, err := knot.NewLissajous([]int{3, 5, 7}, []float64{0.1, 0.7, 1.3}, knot.WithSamples(1000))
	benchmarkGenerate(b, c, err)
}

func BenchmarkGranny_Generate_1k(b *testing.B) {
	c, err := knot.NewSpecial(knot.Granny, knot.WithSamples(1000))
	benchmarkGenerate(b, c, err)
}
