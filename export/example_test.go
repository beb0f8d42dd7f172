package export_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/knots/export"
	"github.com/katalvlaran/knots/knot"
)

func ExampleWrite() {
	c, _ := knot.NewSpecial(knot.Granny, knot.WithSamples(2))
	buf, _ := c.Generate()

	_ = export.Write(os.Stdout, buf)
	// Output:
	// -0.8250 0.3500 0.7000
	// 0.8250 0.3500 -0.7000
}

func ExampleFileName() {
	c, _ := knot.NewLissajous([]int{3, 2, 5}, []float64{0, 0, 0}, knot.WithSamples(50))
	fmt.Println(export.FileName(c))
	fmt.Println(export.FileName(c, export.WithTitle("liss"), export.WithSuffix("xyz")))
	// Output:
	// (3-2-5)-Lissajous.50.dat
	// liss.xyz
}
