package deconv_test

import (
	"fmt"

	"github.com/cwbudde/algo-sci/imaging/deconv"
	"github.com/cwbudde/algo-sci/imaging/grid"
	"github.com/cwbudde/algo-sci/imaging/psf"
)

func ExampleConvolve() {
	img, _ := grid.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	h, _ := psf.Impulse(4, 4)

	out, _ := deconv.Convolve(img, h)
	fmt.Printf("%.1f %.1f\n", out.At(0, 0), out.At(3, 3))

	// Output:
	// 1.0 16.0
}

func ExampleRichardsonLucy() {
	object, _ := grid.Fill(8, 8, 1)
	object.Set(4, 4, 9)
	disk, _ := psf.Disk(8, 8, 1.5)
	kernel := psf.Normalize(disk)

	blurred, _ := deconv.Convolve(object, kernel)
	restored, _ := deconv.RichardsonLucy(blurred, kernel, deconv.WithIterations(50))

	fmt.Println(restored.At(4, 4) > blurred.At(4, 4))

	// Output:
	// true
}
