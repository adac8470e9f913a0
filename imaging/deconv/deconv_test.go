package deconv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sci/imaging/grid"
	"github.com/cwbudde/algo-sci/imaging/psf"
	"github.com/cwbudde/algo-sci/internal/testutil"
)

func noiseGrid(t *testing.T, seed int64, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	copy(g.Data, testutil.PositiveNoise(seed, 0.5, 2, rows*cols))
	return g
}

// wellConditionedKernel has |H| >= 0.5 at every frequency.
func wellConditionedKernel(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	h, err := grid.New(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	h.Set(0, 0, 1)
	h.Set(0, 1, 0.3)
	h.Set(1, 0, 0.2)
	return h
}

// directCircular computes the circular convolution of f and h followed by
// fftshift.
func directCircular(f, h *grid.Grid) *grid.Grid {
	out := &grid.Grid{Rows: f.Rows, Cols: f.Cols, Data: make([]float64, f.Len())}
	for r := range f.Rows {
		for c := range f.Cols {
			var sum float64
			for i := range f.Rows {
				for j := range f.Cols {
					hr := ((r-i)%f.Rows + f.Rows) % f.Rows
					hc := ((c-j)%f.Cols + f.Cols) % f.Cols
					sum += f.At(i, j) * h.At(hr, hc)
				}
			}
			out.Set(r, c, sum)
		}
	}
	return grid.FFTShift(out)
}

func TestConvolveMatchesDirectCircular(t *testing.T) {
	for _, shape := range [][2]int{{8, 8}, {6, 5}, {4, 16}} {
		f := noiseGrid(t, 1, shape[0], shape[1])
		h := noiseGrid(t, 2, shape[0], shape[1])

		got, err := Convolve(f, h)
		if err != nil {
			t.Fatalf("Convolve %v: %v", shape, err)
		}
		testutil.RequireSliceNearlyEqual(t, got.Data, directCircular(f, h).Data, 1e-9)
	}
}

func TestConvolveWithImpulseIsIdentity(t *testing.T) {
	for _, shape := range [][2]int{{8, 8}, {7, 5}, {1, 9}} {
		f := noiseGrid(t, 3, shape[0], shape[1])
		h, err := psf.Impulse(shape[0], shape[1])
		if err != nil {
			t.Fatal(err)
		}
		got, err := Convolve(f, h)
		if err != nil {
			t.Fatalf("Convolve %v: %v", shape, err)
		}
		testutil.RequireSliceNearlyEqual(t, got.Data, f.Data, 1e-12)
	}
}

func TestConvolveDeconvolveRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{8, 8}, {16, 4}, {6, 10}} {
		f := noiseGrid(t, 4, shape[0], shape[1])
		h := wellConditionedKernel(t, shape[0], shape[1])

		blurred, err := Convolve(f, h)
		if err != nil {
			t.Fatalf("Convolve: %v", err)
		}
		restored, err := Deconvolve(blurred, h)
		if err != nil {
			t.Fatalf("Deconvolve: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, restored.Data, f.Data, 1e-10)
	}
}

func TestDeconvolveZeroFrequencyGivesNonFinite(t *testing.T) {
	// h = delta(0,0) - delta(0,1) has H(k, 0) == 0 for every row frequency k.
	h, err := grid.New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	h.Set(0, 0, 1)
	h.Set(0, 1, -1)

	mag, err := MinSpectrumMagnitude(h)
	if err != nil {
		t.Fatal(err)
	}
	if mag > 1e-12 {
		t.Fatalf("MinSpectrumMagnitude = %v, want 0", mag)
	}

	g := noiseGrid(t, 5, 8, 8)
	out, err := Deconvolve(g, h)
	if err != nil {
		t.Fatalf("Deconvolve returned error for zero spectrum bin: %v", err)
	}
	testutil.RequireNonFinite(t, out.Data)
	if out.CountNonFinite() == 0 {
		t.Fatal("CountNonFinite = 0")
	}
}

func TestDeconvolveRegularized(t *testing.T) {
	f := noiseGrid(t, 6, 8, 8)
	h := wellConditionedKernel(t, 8, 8)
	e, err := NewEngine(h)
	if err != nil {
		t.Fatal(err)
	}
	blurred, err := e.Convolve(f)
	if err != nil {
		t.Fatal(err)
	}

	opts := DeconvOptions{Method: DeconvRegularized, Epsilon: 1e-12}
	restored, err := e.DeconvolveWith(blurred, opts)
	if err != nil {
		t.Fatalf("DeconvolveWith: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, restored.Data, f.Data, 1e-8)

	// a zero bin stays finite once regularised
	z, _ := grid.New(8, 8)
	z.Set(0, 0, 1)
	z.Set(0, 1, -1)
	ez, err := NewEngine(z)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ez.DeconvolveWith(f, DeconvOptions{Method: DeconvRegularized, Epsilon: 1e-3})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireFinite(t, out.Data)

	if _, err := e.DeconvolveWith(f, DeconvOptions{Method: DeconvRegularized}); !errors.Is(err, ErrInvalidEpsilon) {
		t.Errorf("zero epsilon: got %v, want ErrInvalidEpsilon", err)
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []DeconvMethod{DeconvNaive, DeconvRegularized} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("wiener"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestShapeMismatch(t *testing.T) {
	a := noiseGrid(t, 1, 4, 4)
	b := noiseGrid(t, 1, 4, 8)

	if _, err := Convolve(a, b); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("Convolve: got %v", err)
	}
	if _, err := Deconvolve(a, b); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("Deconvolve: got %v", err)
	}
	if _, err := RichardsonLucyStep(a, a, b); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("RichardsonLucyStep kernel: got %v", err)
	}
	if _, err := RichardsonLucyStep(a, b, a); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("RichardsonLucyStep observed: got %v", err)
	}
	if _, err := RichardsonLucy(a, b); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("RichardsonLucy: got %v", err)
	}
	if _, err := Convolve(a, nil); !errors.Is(err, grid.ErrEmpty) {
		t.Errorf("Convolve(nil): got %v", err)
	}
}

func TestSNR(t *testing.T) {
	a := noiseGrid(t, 1, 4, 4)
	if !math.IsInf(SNR(a, a), 1) {
		t.Errorf("SNR(a, a) = %v, want +Inf", SNR(a, a))
	}
	if !math.IsInf(SNR(a, noiseGrid(t, 1, 2, 8)), -1) {
		t.Error("SNR of mismatched shapes should be -Inf")
	}
	half := a.Scale(0.5)
	// noise power is a quarter of signal power: 10*log10(4)
	if got, want := SNR(a, half), 10*math.Log10(4); math.Abs(got-want) > 1e-12 {
		t.Errorf("SNR = %v, want %v", got, want)
	}
}
