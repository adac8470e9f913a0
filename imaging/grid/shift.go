package grid

// FFTShift returns g rotated by (rows/2, cols/2) so the zero-lag sample at
// the origin moves to the centre.
func FFTShift(g *Grid) *Grid {
	return roll(g, g.Rows/2, g.Cols/2)
}

// IFFTShift undoes FFTShift. It differs from FFTShift only for odd sizes.
func IFFTShift(g *Grid) *Grid {
	return roll(g, -(g.Rows / 2), -(g.Cols / 2))
}

// roll moves the sample at (r, c) to ((r+dr) mod rows, (c+dc) mod cols).
func roll(g *Grid, dr, dc int) *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	for r := range g.Rows {
		rr := mod(r+dr, g.Rows)
		src := g.Data[r*g.Cols : (r+1)*g.Cols]
		dst := out.Data[rr*g.Cols : (rr+1)*g.Cols]
		for c, v := range src {
			dst[mod(c+dc, g.Cols)] = v
		}
	}
	return out
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
