package deconv

import (
	"fmt"

	"github.com/cwbudde/algo-sci/imaging/grid"
)

// DefaultIterations is the number of Richardson–Lucy steps when none is
// configured.
const DefaultIterations = 100

// Option configures RichardsonLucy.
type Option func(*rlConfig)

type rlConfig struct {
	iterations int
	progress   func(iter int, estimate *grid.Grid)
}

// WithIterations sets the number of Richardson–Lucy steps.
func WithIterations(n int) Option {
	return func(c *rlConfig) {
		c.iterations = n
	}
}

// WithProgress registers fn to receive the estimate after every step.
// iter counts from 1. fn must not modify the estimate.
func WithProgress(fn func(iter int, estimate *grid.Grid)) Option {
	return func(c *rlConfig) {
		c.progress = fn
	}
}

// RichardsonLucyStep returns
// estimate * Convolve(observed / Convolve(estimate, kernel), kernel).
func (e *Engine) RichardsonLucyStep(estimate, observed *grid.Grid) (*grid.Grid, error) {
	if err := grid.CheckSameShape(estimate, observed); err != nil {
		return nil, err
	}
	reblurred, err := e.Convolve(estimate)
	if err != nil {
		return nil, err
	}
	ratio, err := grid.Div(observed, reblurred)
	if err != nil {
		return nil, err
	}
	correction, err := e.Convolve(ratio)
	if err != nil {
		return nil, err
	}
	return grid.Mul(estimate, correction)
}

// RichardsonLucy restores observed, starting from observed itself and
// applying a fixed number of steps.
func (e *Engine) RichardsonLucy(observed *grid.Grid, opts ...Option) (*grid.Grid, error) {
	cfg := rlConfig{iterations: DefaultIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.iterations <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, cfg.iterations)
	}
	if err := grid.CheckSameShape(observed, e.kernel); err != nil {
		return nil, err
	}

	estimate := observed.Clone()
	for i := 1; i <= cfg.iterations; i++ {
		next, err := e.RichardsonLucyStep(estimate, observed)
		if err != nil {
			return nil, fmt.Errorf("deconv: richardson-lucy step %d: %w", i, err)
		}
		estimate = next
		if cfg.progress != nil {
			cfg.progress(i, estimate)
		}
	}
	return estimate, nil
}

// RichardsonLucyStep performs one Richardson–Lucy update of estimate.
func RichardsonLucyStep(estimate, observed, kernel *grid.Grid) (*grid.Grid, error) {
	if err := grid.CheckSameShape(estimate, kernel); err != nil {
		return nil, err
	}
	e, err := NewEngine(kernel)
	if err != nil {
		return nil, err
	}
	return e.RichardsonLucyStep(estimate, observed)
}

// RichardsonLucy restores observed blurred by kernel.
func RichardsonLucy(observed, kernel *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if err := grid.CheckSameShape(observed, kernel); err != nil {
		return nil, err
	}
	e, err := NewEngine(kernel)
	if err != nil {
		return nil, err
	}
	return e.RichardsonLucy(observed, opts...)
}
