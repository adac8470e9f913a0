// Package series summarises scalar time series such as Monte Carlo traces.
package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a series.
type Summary struct {
	Length    int
	Mean      float64
	StdDev    float64 // sample standard deviation (n-1 denominator)
	PopStdDev float64 // population standard deviation (n denominator)
	Min       float64
	Max       float64
	MinPos    int
	MaxPos    int
}

// emptySummary returns the summary of a zero-length series.
func emptySummary() Summary {
	nan := math.NaN()
	return Summary{
		Mean:      nan,
		StdDev:    nan,
		PopStdDev: nan,
		Min:       nan,
		Max:       nan,
		MinPos:    -1,
		MaxPos:    -1,
	}
}

// Calculate computes the summary of x. A single-sample series has an
// undefined (NaN) sample standard deviation.
func Calculate(x []float64) Summary {
	if len(x) == 0 {
		return emptySummary()
	}

	s := Summary{Length: len(x)}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		s.StdDev = math.NaN()
	}

	_, popVar := stat.PopMeanVariance(x, nil)
	s.PopStdDev = math.Sqrt(popVar)

	s.MinPos = floats.MinIdx(x)
	s.MaxPos = floats.MaxIdx(x)
	s.Min = x[s.MinPos]
	s.Max = x[s.MaxPos]
	return s
}

// Tail returns the last fraction of x, for discarding a burn-in period.
// frac is clamped to [0, 1].
func Tail(x []float64, frac float64) []float64 {
	if frac <= 0 || len(x) == 0 {
		return x[:0]
	}
	if frac >= 1 {
		return x
	}
	n := int(math.Round(float64(len(x)) * frac))
	return x[len(x)-n:]
}
