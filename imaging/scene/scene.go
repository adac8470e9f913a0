// Package scene generates deterministic synthetic objects to image through
// a point-spread function.
package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sci/imaging/grid"
)

// ErrInvalidParam is returned for non-positive cell sizes or blob counts.
var ErrInvalidParam = errors.New("scene: invalid parameter")

// Checkerboard returns alternating cell x cell squares of lo and hi,
// starting with lo at the origin.
func Checkerboard(rows, cols, cell int, lo, hi float64) (*grid.Grid, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("%w: cell %d", ErrInvalidParam, cell)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for y := range rows {
		for x := range cols {
			v := lo
			if (y/cell+x/cell)%2 == 1 {
				v = hi
			}
			g.Set(y, x, v)
		}
	}
	return g, nil
}

// Blobs returns a background of 1 with n Gaussian spots of random position,
// width and brightness added on top. Every sample is at least 1.
func Blobs(rows, cols, n int, seed int64) (*grid.Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: blob count %d", ErrInvalidParam, n)
	}
	g, err := grid.Fill(rows, cols, 1)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	minDim := float64(min(rows, cols))
	for range n {
		cy := rng.Float64() * float64(rows)
		cx := rng.Float64() * float64(cols)
		sigma := (0.02 + 0.08*rng.Float64()) * minDim
		amp := 50 + 200*rng.Float64()
		inv := 1 / (2 * sigma * sigma)
		for y := range rows {
			dy := float64(y) - cy
			for x := range cols {
				dx := float64(x) - cx
				g.Data[y*cols+x] += amp * math.Exp(-(dx*dx+dy*dy)*inv)
			}
		}
	}
	return g, nil
}
