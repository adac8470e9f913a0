package ising

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sci/stats/series"
)

// Trace records the state of a chain after each unit of Monte Carlo time.
type Trace struct {
	Energy        []float64
	Magnetization []float64
}

// Len returns the number of recorded units.
func (tr Trace) Len() int { return len(tr.Energy) }

// SweepPoint summarises the magnetization observed at one temperature.
type SweepPoint struct {
	Temperature       float64
	MeanMagnetization float64
	StdMagnetization  float64 // population standard deviation
	MeanEnergy        float64
}

// Run advances s by steps units of Monte Carlo time at temperature t and
// records energy and magnetization after each unit.
func (m *Model) Run(s Lattice, t float64, steps int) (Trace, error) {
	if steps <= 0 {
		return Trace{}, fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}

	tr := Trace{
		Energy:        make([]float64, steps),
		Magnetization: make([]float64, steps),
	}
	for i := range steps {
		var err error
		if s, err = m.Metropolis(s, t); err != nil {
			return Trace{}, err
		}
		tr.Magnetization[i] = Magnetization(s)
		tr.Energy[i] = m.Energy(s)
	}
	return tr, nil
}

// SweepOption configures Sweep.
type SweepOption func(*sweepConfig)

type sweepConfig struct {
	progress func(SweepPoint)
}

// WithSweepProgress registers fn to be called after each temperature.
func WithSweepProgress(fn func(SweepPoint)) SweepOption {
	return func(c *sweepConfig) {
		c.progress = fn
	}
}

// Sweep runs steps units at every temperature in temps, in order, carrying
// the same lattice from one temperature to the next.
func (m *Model) Sweep(s Lattice, temps []float64, steps int, opts ...SweepOption) ([]SweepPoint, error) {
	var cfg sweepConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	points := make([]SweepPoint, 0, len(temps))
	for _, t := range temps {
		tr, err := m.Run(s, t, steps)
		if err != nil {
			return nil, fmt.Errorf("ising: sweep at T=%g: %w", t, err)
		}
		mag := series.Calculate(tr.Magnetization)
		en := series.Calculate(tr.Energy)
		p := SweepPoint{
			Temperature:       t,
			MeanMagnetization: mag.Mean,
			StdMagnetization:  mag.PopStdDev,
			MeanEnergy:        en.Mean,
		}
		points = append(points, p)
		if cfg.progress != nil {
			cfg.progress(p)
		}
	}
	return points, nil
}

// Temperatures returns n evenly spaced temperatures from lo to hi inclusive.
func Temperatures(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi < 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidTemperature, lo, hi)
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	out := make([]float64, n)
	floats.Span(out, lo, hi)
	return out, nil
}
