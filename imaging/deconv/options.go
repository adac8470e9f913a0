package deconv

import (
	"fmt"

	"github.com/cwbudde/algo-sci/imaging/grid"
)

// DeconvMethod specifies the spectral deconvolution method.
type DeconvMethod int

const (
	// DeconvNaive divides by the kernel spectrum directly.
	// Exact for well-conditioned kernels, unbounded near spectral zeros.
	DeconvNaive DeconvMethod = iota

	// DeconvRegularized computes G*conj(H)/(|H|^2 + Epsilon).
	DeconvRegularized
)

// String returns the method name used in configuration files.
func (m DeconvMethod) String() string {
	switch m {
	case DeconvNaive:
		return "naive"
	case DeconvRegularized:
		return "regularized"
	default:
		return fmt.Sprintf("DeconvMethod(%d)", int(m))
	}
}

// ParseMethod returns the method named s.
func ParseMethod(s string) (DeconvMethod, error) {
	switch s {
	case "naive", "":
		return DeconvNaive, nil
	case "regularized":
		return DeconvRegularized, nil
	default:
		return 0, fmt.Errorf("deconv: unknown method %q", s)
	}
}

// DeconvOptions configures DeconvolveWith.
type DeconvOptions struct {
	Method DeconvMethod

	// Epsilon is the regularisation term for DeconvRegularized.
	// Typical values: 1e-6 to 1e-2 relative to the kernel's peak power.
	Epsilon float64
}

// DefaultDeconvOptions returns naive spectral division.
func DefaultDeconvOptions() DeconvOptions {
	return DeconvOptions{
		Method:  DeconvNaive,
		Epsilon: 1e-6,
	}
}

// DeconvolveWith deconvolves g using the method in opts.
func (e *Engine) DeconvolveWith(g *grid.Grid, opts DeconvOptions) (*grid.Grid, error) {
	switch opts.Method {
	case DeconvNaive:
		return e.Deconvolve(g)
	case DeconvRegularized:
		if !(opts.Epsilon > 0) {
			return nil, fmt.Errorf("%w: %g", ErrInvalidEpsilon, opts.Epsilon)
		}
		return e.apply(g, regularizedQuotient(opts.Epsilon))
	default:
		return nil, fmt.Errorf("deconv: unknown method %v", opts.Method)
	}
}
