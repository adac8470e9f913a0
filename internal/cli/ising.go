package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sci/mc/ising"
	"github.com/cwbudde/algo-sci/stats/series"
)

func newIsingCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ising",
		Short: "One-dimensional Ising chain with Metropolis sampling",
	}
	cmd.AddCommand(newIsingDemoCommand(a), newIsingRunCommand(a), newIsingSweepCommand(a))
	return cmd
}

// model builds a Metropolis model from the resolved configuration.
func (a *app) model() *ising.Model {
	opts := []ising.Option{
		ising.WithCoupling(a.cfg.Ising.Coupling),
		ising.WithBoltzmann(a.cfg.Ising.Boltzmann),
		ising.WithSeed(a.cfg.Seed),
	}
	if a.cfg.Ising.FullRecompute {
		opts = append(opts, ising.WithFullRecompute())
	}
	return ising.NewModel(opts...)
}

func newIsingDemoCommand(a *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print energy and magnetization of random, all-up and all-down lattices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("size") {
				a.cfg.Ising.Size = size
			}
			m := a.model()
			a.log.WithField("size", a.cfg.Ising.Size).Info("Running lattice demo")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "p\tenergy\tmagnetization")
			for _, p := range []float64{0.5, 1, 0} {
				s, err := m.RandomLattice(a.cfg.Ising.Size, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%.1f\t%.6f\t%.6f\n", p, m.Energy(s), ising.Magnetization(s))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&size, "size", 100, "Number of sites")
	return cmd
}

func newIsingRunCommand(a *app) *cobra.Command {
	var (
		temperature float64
		steps       int
		size        int
		p           float64
		keep        float64
		fullRecomp  bool
		trace       bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a Metropolis chain at one temperature",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &a.cfg.Ising
			if cmd.Flags().Changed("temperature") {
				c.Temperature = temperature
			}
			if cmd.Flags().Changed("steps") {
				c.Steps = steps
			}
			if cmd.Flags().Changed("size") {
				c.Size = size
			}
			if cmd.Flags().Changed("p") {
				c.Probability = p
			}
			if cmd.Flags().Changed("full-recompute") {
				c.FullRecompute = fullRecomp
			}

			m := a.model()
			s, err := m.RandomLattice(c.Size, c.Probability)
			if err != nil {
				return err
			}

			log := a.log.WithFields(logrus.Fields{
				"temperature": c.Temperature,
				"steps":       c.Steps,
				"size":        c.Size,
			})
			log.Info("Starting Metropolis run")
			tr, err := m.Run(s, c.Temperature, c.Steps)
			if err != nil {
				return err
			}
			log.Info("Metropolis run finished")

			out := cmd.OutOrStdout()
			if err := writeTraceSummary(out, tr, keep); err != nil {
				return err
			}
			if trace {
				return writeTrace(out, tr)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&temperature, "temperature", 199, "Temperature T")
	cmd.Flags().IntVar(&steps, "steps", 1000, "Units of Monte Carlo time")
	cmd.Flags().IntVar(&size, "size", 100, "Number of sites")
	cmd.Flags().Float64Var(&p, "p", 0.5, "Probability of an up spin in the initial lattice")
	cmd.Flags().Float64Var(&keep, "keep", 1, "Fraction of the trace, from the end, included in the summary")
	cmd.Flags().BoolVar(&fullRecomp, "full-recompute", false, "Recompute the total energy for every proposed flip")
	cmd.Flags().BoolVar(&trace, "trace", false, "Also print the per-step series")
	return cmd
}

// writeTraceSummary prints statistics over the last keep fraction of tr.
func writeTraceSummary(out io.Writer, tr ising.Trace, keep float64) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "quantity\tmean\tstd\tmin\tmax")
	for _, row := range []struct {
		name string
		x    []float64
	}{
		{"energy", tr.Energy},
		{"magnetization", tr.Magnetization},
	} {
		s := series.Calculate(series.Tail(row.x, keep))
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n", row.name, s.Mean, s.StdDev, s.Min, s.Max)
	}
	return w.Flush()
}

func writeTrace(out io.Writer, tr ising.Trace) error {
	if _, err := fmt.Fprintln(out, "step\tenergy\tmagnetization"); err != nil {
		return err
	}
	for i := range tr.Len() {
		if _, err := fmt.Fprintf(out, "%d\t%g\t%g\n", i+1, tr.Energy[i], tr.Magnetization[i]); err != nil {
			return err
		}
	}
	return nil
}

func newIsingSweepCommand(a *app) *cobra.Command {
	var (
		tMin, tMax float64
		count      int
		steps      int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan magnetization over a range of temperatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &a.cfg.Sweep
			if cmd.Flags().Changed("t-min") {
				c.TMin = tMin
			}
			if cmd.Flags().Changed("t-max") {
				c.TMax = tMax
			}
			if cmd.Flags().Changed("count") {
				c.Count = count
			}
			if cmd.Flags().Changed("steps") {
				c.Steps = steps
			}

			temps, err := ising.Temperatures(c.TMin, c.TMax, c.Count)
			if err != nil {
				return err
			}
			m := a.model()
			s, err := m.RandomLattice(a.cfg.Ising.Size, a.cfg.Ising.Probability)
			if err != nil {
				return err
			}

			a.log.WithField("points", len(temps)).Info("Starting temperature sweep")
			points, err := m.Sweep(s, temps, c.Steps, ising.WithSweepProgress(func(p ising.SweepPoint) {
				a.log.WithField("temperature", p.Temperature).Debug("Sweep point done")
			}))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "temperature\tmean_m\tstd_m\tmean_e")
			for _, p := range points {
				fmt.Fprintf(w, "%g\t%.6f\t%.6f\t%.6f\n", p.Temperature, p.MeanMagnetization, p.StdMagnetization, p.MeanEnergy)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&tMin, "t-min", 0.001, "Lowest temperature")
	cmd.Flags().Float64Var(&tMax, "t-max", 0.2, "Highest temperature")
	cmd.Flags().IntVar(&count, "count", 10, "Number of temperatures")
	cmd.Flags().IntVar(&steps, "steps", 1000, "Units of Monte Carlo time per temperature")
	return cmd
}
