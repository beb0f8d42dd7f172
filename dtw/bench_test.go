package dtw_test

import (
	"testing"

	"github.com/katalvlaran/knots/dtw"
	"github.com/katalvlaran/knots/knot"
)

var benchDist float64

func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	ca := generated(b)(knot.NewTorus(3, 2, knot.WithSamples(n)))
	cb := generated(b)(knot.NewLissajous([]int{3, 2, 7}, []float64{0.7, 0.2, 0}, knot.WithSamples(m)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, _, err := dtw.Curves(ca, cb, &opts)
		if err != nil {
			b.Fatal(err)
		}
		benchDist = d
	}
}

func BenchmarkDTW_TwoRows_500(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.DefaultOptions())
}

func BenchmarkDTW_FullMatrixPath_500(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.Options{Window: -1, MemoryMode: dtw.FullMatrix, ReturnPath: true})
}

func BenchmarkDTW_Window_500(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.Options{Window: 25, MemoryMode: dtw.TwoRows})
}

func BenchmarkDTW_Cyclic_100(b *testing.B) {
	benchmarkDTW(b, 100, 100, dtw.Options{Window: -1, MemoryMode: dtw.TwoRows, Cyclic: true})
}
