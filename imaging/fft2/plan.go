package fft2

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by plan functions.
var (
	ErrInvalidSize    = errors.New("fft2: rows and cols must be > 0")
	ErrLengthMismatch = errors.New("fft2: buffer length mismatch")
)

// Plan holds the row and column transforms for one 2-D shape plus scratch
// buffers. A Plan is not safe for concurrent use.
type Plan struct {
	rows, cols int
	rowFFT     transform
	colFFT     transform

	rowBuf []complex128
	colIn  []complex128
	colOut []complex128
}

// NewPlan prepares transforms for rows x cols arrays.
func NewPlan(rows, cols int) (*Plan, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	rowFFT, err := newTransform(cols)
	if err != nil {
		return nil, err
	}
	colFFT := rowFFT
	if rows != cols {
		if colFFT, err = newTransform(rows); err != nil {
			return nil, err
		}
	}

	return &Plan{
		rows:   rows,
		cols:   cols,
		rowFFT: rowFFT,
		colFFT: colFFT,
		rowBuf: make([]complex128, cols),
		colIn:  make([]complex128, rows),
		colOut: make([]complex128, rows),
	}, nil
}

// Rows returns the number of rows the plan transforms.
func (p *Plan) Rows() int { return p.rows }

// Cols returns the number of columns the plan transforms.
func (p *Plan) Cols() int { return p.cols }

// Len returns rows*cols.
func (p *Plan) Len() int { return p.rows * p.cols }

// Forward computes the unscaled 2-D DFT of src into dst. dst and src may
// alias.
func (p *Plan) Forward(dst, src []complex128) error {
	return p.run(dst, src, false)
}

// Inverse computes the normalised inverse 2-D DFT of src into dst. dst and
// src may alias.
func (p *Plan) Inverse(dst, src []complex128) error {
	return p.run(dst, src, true)
}

// ForwardReal transforms a real row-major array and returns its spectrum.
func (p *Plan) ForwardReal(src []float64) ([]complex128, error) {
	if len(src) != p.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(src), p.Len())
	}
	buf := make([]complex128, len(src))
	for i, v := range src {
		buf[i] = complex(v, 0)
	}
	if err := p.Forward(buf, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// InverseReal inverts spec and returns the real part of the result. spec is
// left unchanged.
func (p *Plan) InverseReal(spec []complex128) ([]float64, error) {
	buf := make([]complex128, len(spec))
	if err := p.Inverse(buf, spec); err != nil {
		return nil, err
	}
	out := make([]float64, len(buf))
	for i, v := range buf {
		out[i] = real(v)
	}
	return out, nil
}

// Power returns |X|^2 for every bin of spec.
func Power(spec []complex128) []float64 {
	re := make([]float64, len(spec))
	im := make([]float64, len(spec))
	for i, v := range spec {
		re[i] = real(v)
		im[i] = imag(v)
	}
	out := make([]float64, len(spec))
	vecmath.Power(out, re, im)
	return out
}

func (p *Plan) run(dst, src []complex128, inverse bool) error {
	n := p.Len()
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst %d, src %d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	rowStep, colStep := p.rowFFT.forward, p.colFFT.forward
	if inverse {
		rowStep, colStep = p.rowFFT.inverse, p.colFFT.inverse
	}

	// rows
	for r := range p.rows {
		lo, hi := r*p.cols, (r+1)*p.cols
		copy(p.rowBuf, src[lo:hi])
		if err := rowStep(dst[lo:hi], p.rowBuf); err != nil {
			return fmt.Errorf("fft2: row %d: %w", r, err)
		}
	}

	// columns
	for c := range p.cols {
		for r := range p.rows {
			p.colIn[r] = dst[r*p.cols+c]
		}
		if err := colStep(p.colOut, p.colIn); err != nil {
			return fmt.Errorf("fft2: column %d: %w", c, err)
		}
		for r := range p.rows {
			dst[r*p.cols+c] = p.colOut[r]
		}
	}
	return nil
}
