package fft2

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// transform is a 1-D complex FFT of fixed length. Inverse is normalised.
type transform interface {
	forward(dst, src []complex128) error
	inverse(dst, src []complex128) error
}

// newTransform picks algo-fft for power-of-two lengths and gonum otherwise.
func newTransform(n int) (transform, error) {
	if n == 1 {
		return identityTransform{}, nil
	}
	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("fft2: failed to create FFT plan: %w", err)
		}
		return &algoTransform{plan: plan}, nil
	}
	return &gonumTransform{fft: fourier.NewCmplxFFT(n), scale: complex(1/float64(n), 0)}, nil
}

type algoTransform struct {
	plan *algofft.Plan[complex128]
}

func (a *algoTransform) forward(dst, src []complex128) error {
	return a.plan.Forward(dst, src)
}

func (a *algoTransform) inverse(dst, src []complex128) error {
	return a.plan.Inverse(dst, src)
}

// gonumTransform wraps fourier.CmplxFFT, whose Sequence is unnormalised.
type gonumTransform struct {
	fft   *fourier.CmplxFFT
	scale complex128
}

func (g *gonumTransform) forward(dst, src []complex128) error {
	g.fft.Coefficients(dst, src)
	return nil
}

func (g *gonumTransform) inverse(dst, src []complex128) error {
	g.fft.Sequence(dst, src)
	for i := range dst {
		dst[i] *= g.scale
	}
	return nil
}

// identityTransform is the length-1 DFT.
type identityTransform struct{}

func (identityTransform) forward(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

func (identityTransform) inverse(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
