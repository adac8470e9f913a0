package deconv

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sci/imaging/fft2"
	"github.com/cwbudde/algo-sci/imaging/grid"
)

// Errors returned by deconvolution functions.
var (
	ErrInvalidIterations = errors.New("deconv: iterations must be > 0")
	ErrInvalidEpsilon    = errors.New("deconv: epsilon must be positive")
)

// Engine convolves and deconvolves images with one fixed kernel. The kernel
// spectrum is computed once. An Engine is not safe for concurrent use.
type Engine struct {
	kernel     *grid.Grid
	kernelFreq []complex128
	plan       *fft2.Plan
}

// NewEngine prepares an engine for kernel. The kernel is copied.
func NewEngine(kernel *grid.Grid) (*Engine, error) {
	if err := kernel.Validate(); err != nil {
		return nil, err
	}
	plan, err := fft2.NewPlan(kernel.Rows, kernel.Cols)
	if err != nil {
		return nil, err
	}
	freq, err := plan.ForwardReal(kernel.Data)
	if err != nil {
		return nil, fmt.Errorf("deconv: kernel transform: %w", err)
	}
	return &Engine{
		kernel:     kernel.Clone(),
		kernelFreq: freq,
		plan:       plan,
	}, nil
}

// Kernel returns a copy of the engine's kernel.
func (e *Engine) Kernel() *grid.Grid {
	return e.kernel.Clone()
}

// Convolve returns fftshift(Re(IFFT(FFT(f) * FFT(h)))).
func (e *Engine) Convolve(f *grid.Grid) (*grid.Grid, error) {
	return e.apply(f, func(x, h complex128) complex128 { return x * h })
}

// Deconvolve returns fftshift(Re(IFFT(FFT(g) / FFT(h)))). Zero bins in the
// kernel spectrum are divided by as-is.
func (e *Engine) Deconvolve(g *grid.Grid) (*grid.Grid, error) {
	return e.apply(g, func(x, h complex128) complex128 { return x / h })
}

// MinSpectrumMagnitude returns the smallest |H| over all frequency bins of
// the kernel.
func (e *Engine) MinSpectrumMagnitude() float64 {
	lo := math.Inf(1)
	for _, p := range fft2.Power(e.kernelFreq) {
		lo = math.Min(lo, p)
	}
	return math.Sqrt(lo)
}

// apply transforms img, combines each bin with the kernel bin, inverts and
// recentres.
func (e *Engine) apply(img *grid.Grid, op func(x, h complex128) complex128) (*grid.Grid, error) {
	if err := grid.CheckSameShape(img, e.kernel); err != nil {
		return nil, err
	}

	spec, err := e.plan.ForwardReal(img.Data)
	if err != nil {
		return nil, err
	}
	for i, h := range e.kernelFreq {
		spec[i] = op(spec[i], h)
	}
	data, err := e.plan.InverseReal(spec)
	if err != nil {
		return nil, err
	}
	return grid.FFTShift(&grid.Grid{Rows: img.Rows, Cols: img.Cols, Data: data}), nil
}

// regularizedQuotient returns x*conj(h)/(|h|^2 + eps).
func regularizedQuotient(eps float64) func(x, h complex128) complex128 {
	return func(x, h complex128) complex128 {
		hMagSq := real(h)*real(h) + imag(h)*imag(h)
		return x * cmplx.Conj(h) / complex(hMagSq+eps, 0)
	}
}

// Convolve blurs f with kernel h. f and h must share a shape.
func Convolve(f, h *grid.Grid) (*grid.Grid, error) {
	if err := grid.CheckSameShape(f, h); err != nil {
		return nil, err
	}
	e, err := NewEngine(h)
	if err != nil {
		return nil, err
	}
	return e.Convolve(f)
}

// Deconvolve inverts Convolve by spectral division. g and h must share a
// shape.
func Deconvolve(g, h *grid.Grid) (*grid.Grid, error) {
	if err := grid.CheckSameShape(g, h); err != nil {
		return nil, err
	}
	e, err := NewEngine(h)
	if err != nil {
		return nil, err
	}
	return e.Deconvolve(g)
}

// MinSpectrumMagnitude returns the smallest frequency-response magnitude of
// kernel h.
func MinSpectrumMagnitude(h *grid.Grid) (float64, error) {
	e, err := NewEngine(h)
	if err != nil {
		return 0, err
	}
	return e.MinSpectrumMagnitude(), nil
}
