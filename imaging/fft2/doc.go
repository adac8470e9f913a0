// Package fft2 computes two-dimensional discrete Fourier transforms of
// row-major complex arrays.
//
// A [Plan] decomposes the 2-D transform into 1-D transforms over every row
// followed by every column. Power-of-two lengths use algo-fft plans; other
// lengths fall back to gonum's mixed-radix transform so any image shape is
// accepted.
//
// The forward transform is unscaled. The inverse transform is scaled by
// 1/(rows*cols) so that Inverse(Forward(x)) == x.
//
//	p, err := fft2.NewPlan(rows, cols)
//	spec, err := p.ForwardReal(img.Data)
//	back, err := p.InverseReal(spec)
package fft2
