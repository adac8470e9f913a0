package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid functions.
var (
	ErrEmpty         = errors.New("grid: empty grid")
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	ErrRagged        = errors.New("grid: rows differ in length")
)

// Grid is a rows x cols array of float64 samples stored row-major.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// Fill returns a grid with every sample set to v.
func Fill(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.Data {
		g.Data[i] = v
	}
	return g, nil
}

// FromRows copies a slice of equal-length rows into a new grid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, r, len(row), g.Cols)
		}
		copy(g.Data[r*g.Cols:(r+1)*g.Cols], row)
	}
	return g, nil
}

// Rows2D returns a copy of g as a slice of rows.
func (g *Grid) Rows2D() [][]float64 {
	out := make([][]float64, g.Rows)
	for r := range out {
		out[r] = make([]float64, g.Cols)
		copy(out[r], g.Data[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}

// Len returns the number of samples.
func (g *Grid) Len() int { return len(g.Data) }

// Shape returns the number of rows and columns.
func (g *Grid) Shape() (rows, cols int) { return g.Rows, g.Cols }

// At returns the sample at row r, column c.
func (g *Grid) At(r, c int) float64 { return g.Data[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) { g.Data[r*g.Cols+c] = v }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Validate reports whether g is non-empty and its data matches its shape.
func (g *Grid) Validate() error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 {
		return ErrEmpty
	}
	if len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %dx%d grid holds %d samples", ErrShapeMismatch, g.Rows, g.Cols, len(g.Data))
	}
	return nil
}

// CheckSameShape validates a and b and reports whether they share a shape.
func CheckSameShape(a, b *Grid) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return nil
}

// Mul returns the elementwise product a*b.
func Mul(a, b *Grid) (*Grid, error) {
	if err := CheckSameShape(a, b); err != nil {
		return nil, err
	}
	out := &Grid{Rows: a.Rows, Cols: a.Cols, Data: make([]float64, len(a.Data))}
	vecmath.MulBlock(out.Data, a.Data, b.Data)
	return out, nil
}

// Div returns the elementwise quotient a/b. Zero divisors are not guarded.
func Div(a, b *Grid) (*Grid, error) {
	if err := CheckSameShape(a, b); err != nil {
		return nil, err
	}
	out := &Grid{Rows: a.Rows, Cols: a.Cols, Data: make([]float64, len(a.Data))}
	for i, v := range a.Data {
		out.Data[i] = v / b.Data[i]
	}
	return out, nil
}

// Scale returns g multiplied by k.
func (g *Grid) Scale(k float64) *Grid {
	out := g.Clone()
	for i := range out.Data {
		out.Data[i] *= k
	}
	return out
}

// Sum returns the sum of all samples.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.Data {
		s += v
	}
	return s
}

// Mean returns the average sample value.
func (g *Grid) Mean() float64 {
	if len(g.Data) == 0 {
		return math.NaN()
	}
	return g.Sum() / float64(len(g.Data))
}

// MinMax returns the smallest and largest finite samples. Both are NaN if
// the grid holds no finite sample.
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	found := false
	for _, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		found = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !found {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// CountNonFinite returns the number of NaN or infinite samples.
func (g *Grid) CountNonFinite() int {
	n := 0
	for _, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}
