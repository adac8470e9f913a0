package ising

import (
	"errors"
	"math"
	"testing"
)

func TestRun_RecordsEveryUnit(t *testing.T) {
	m := NewModel(WithSeed(4))
	s, err := m.RandomLattice(40, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := m.Run(s, 2, 25)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tr.Len() != 25 || len(tr.Magnetization) != 25 {
		t.Fatalf("trace lengths %d/%d, want 25", len(tr.Energy), len(tr.Magnetization))
	}
	// the last entry describes the lattice left behind
	if tr.Energy[24] != m.Energy(s) || tr.Magnetization[24] != Magnetization(s) {
		t.Fatal("final trace entry does not match the lattice")
	}
	for i := range tr.Energy {
		if tr.Energy[i] < -1-tolerance || tr.Energy[i] > 1+tolerance {
			t.Fatalf("energy %g out of [-J, J]", tr.Energy[i])
		}
	}
}

func TestRun_InvalidSteps(t *testing.T) {
	m := NewModel()
	if _, err := m.Run(Alternating(4), 1, 0); !errors.Is(err, ErrInvalidSteps) {
		t.Fatalf("got %v, want ErrInvalidSteps", err)
	}
}

func TestSweep(t *testing.T) {
	m := NewModel(WithSeed(6))
	s := Uniform(60, Up)
	temps := []float64{1e-6, 1e-6, 50}

	var seen []float64
	points, err := m.Sweep(s, temps, 30, WithSweepProgress(func(p SweepPoint) {
		seen = append(seen, p.Temperature)
	}))
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(points) != 3 || len(seen) != 3 {
		t.Fatalf("got %d points and %d callbacks, want 3", len(points), len(seen))
	}

	// an aligned lattice stays aligned at low temperature
	for _, p := range points[:2] {
		if p.MeanMagnetization != 1 || p.StdMagnetization != 0 {
			t.Errorf("T=%g: M=%g±%g, want 1±0", p.Temperature, p.MeanMagnetization, p.StdMagnetization)
		}
		if math.Abs(p.MeanEnergy+1) > tolerance {
			t.Errorf("T=%g: E=%g, want -1", p.Temperature, p.MeanEnergy)
		}
	}
	if points[2].StdMagnetization <= 0 {
		t.Errorf("T=50: std %g, want > 0", points[2].StdMagnetization)
	}
}

func TestSweep_InvalidTemperature(t *testing.T) {
	m := NewModel()
	_, err := m.Sweep(Alternating(4), []float64{1, -1}, 5)
	if !errors.Is(err, ErrInvalidTemperature) {
		t.Fatalf("got %v, want ErrInvalidTemperature", err)
	}
}

func TestTemperatures(t *testing.T) {
	ts, err := Temperatures(0.001, 0.2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 10 || ts[0] != 0.001 || math.Abs(ts[9]-0.2) > tolerance {
		t.Fatalf("Temperatures = %v", ts)
	}
	step := ts[1] - ts[0]
	for i := 2; i < len(ts); i++ {
		if math.Abs(ts[i]-ts[i-1]-step) > 1e-12 {
			t.Fatalf("uneven spacing at %d: %v", i, ts)
		}
	}

	one, err := Temperatures(2, 3, 1)
	if err != nil || len(one) != 1 || one[0] != 2 {
		t.Fatalf("Temperatures(n=1) = %v, %v", one, err)
	}
	if _, err := Temperatures(0, 1, 0); !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("n=0: got %v", err)
	}
	if _, err := Temperatures(-1, 1, 3); !errors.Is(err, ErrInvalidTemperature) {
		t.Errorf("negative: got %v", err)
	}
}
