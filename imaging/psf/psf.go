// Package psf builds point-spread functions for the deconvolution engine.
//
// Kernels are laid out for convolution followed by a centring shift: a PSF
// centred at (rows/2, cols/2) leaves an image in place on even shapes, and
// [Impulse] is an exact identity kernel for any shape.
package psf

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sci/imaging/grid"
)

// ErrInvalidRadius is returned for non-positive aperture radii.
var ErrInvalidRadius = errors.New("psf: radius must be > 0")

// Disk returns a pinhole aperture: 1 where (x-cols/2)^2 + (y-rows/2)^2 < r^2
// and 0 elsewhere. The kernel is not normalised.
func Disk(rows, cols int, radius float64) (*grid.Grid, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	cy, cx := rows/2, cols/2
	r2 := radius * radius
	for y := range rows {
		dy := float64(y - cy)
		for x := range cols {
			dx := float64(x - cx)
			if dx*dx+dy*dy < r2 {
				g.Set(y, x, 1)
			}
		}
	}
	return g, nil
}

// Impulse returns the single-pixel PSF for which centred convolution is the
// identity. The pixel sits at the ifftshifted origin.
func Impulse(rows, cols int) (*grid.Grid, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	g.Set(0, 0, 1)
	return grid.IFFTShift(g), nil
}

// Normalize returns g scaled to unit sum. A zero-sum kernel is returned
// unchanged.
func Normalize(g *grid.Grid) *grid.Grid {
	s := g.Sum()
	if s == 0 {
		return g.Clone()
	}
	return g.Scale(1 / s)
}
