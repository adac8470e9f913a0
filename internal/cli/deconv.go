package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sci/imaging/deconv"
	"github.com/cwbudde/algo-sci/imaging/grid"
	"github.com/cwbudde/algo-sci/imaging/psf"
	"github.com/cwbudde/algo-sci/imaging/scene"
)

const sceneBlobs = 12

type stage struct {
	name string
	img  *grid.Grid
}

func newDeconvCommand(a *app) *cobra.Command {
	var (
		rows, cols int
		radius     float64
		iterations int
		method     string
		epsilon    float64
		normalize  bool
	)
	cmd := &cobra.Command{
		Use:   "deconv",
		Short: "Blur a synthetic scene with a pinhole and restore it",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &a.cfg.Deconv
			if cmd.Flags().Changed("rows") {
				c.Rows = rows
			}
			if cmd.Flags().Changed("cols") {
				c.Cols = cols
			}
			if cmd.Flags().Changed("radius") {
				c.Radius = radius
			}
			if cmd.Flags().Changed("iterations") {
				c.Iterations = iterations
			}
			if cmd.Flags().Changed("method") {
				c.Method = method
			}
			if cmd.Flags().Changed("epsilon") {
				c.Epsilon = epsilon
			}
			if cmd.Flags().Changed("normalize") {
				c.Normalize = normalize
			}

			m, err := deconv.ParseMethod(c.Method)
			if err != nil {
				return err
			}

			obj, err := scene.Blobs(c.Rows, c.Cols, sceneBlobs, a.cfg.Seed)
			if err != nil {
				return err
			}
			lens, err := psf.Disk(c.Rows, c.Cols, c.Radius)
			if err != nil {
				return err
			}
			if c.Normalize {
				lens = psf.Normalize(lens)
			}
			eng, err := deconv.NewEngine(lens)
			if err != nil {
				return err
			}

			log := a.log.WithFields(logrus.Fields{
				"rows":   c.Rows,
				"cols":   c.Cols,
				"radius": c.Radius,
				"method": m.String(),
			})
			log.WithField("min_spectrum", eng.MinSpectrumMagnitude()).Info("Blurring scene")

			blurred, err := eng.Convolve(obj)
			if err != nil {
				return err
			}
			restored, err := eng.DeconvolveWith(blurred, deconv.DeconvOptions{Method: m, Epsilon: c.Epsilon})
			if err != nil {
				return err
			}
			if n := restored.CountNonFinite(); n > 0 {
				log.WithField("non_finite", n).Warn("Spectral division produced non-finite samples")
			}

			log.WithField("iterations", c.Iterations).Info("Starting Richardson-Lucy")
			rl, err := eng.RichardsonLucy(blurred,
				deconv.WithIterations(c.Iterations),
				deconv.WithProgress(func(iter int, est *grid.Grid) {
					log.WithField("iteration", iter).Debug("Richardson-Lucy step")
				}),
			)
			if err != nil {
				return err
			}
			if n := rl.CountNonFinite(); n > 0 {
				log.WithField("non_finite", n).Warn("Richardson-Lucy produced non-finite samples")
			}
			log.Info("Deconvolution finished")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "stage\tmin\tmax\tmean\tsnr_db\tnon_finite")
			for _, st := range []stage{
				{"scene", obj},
				{"blurred", blurred},
				{"deconvolved", restored},
				{"richardson-lucy", rl},
			} {
				lo, hi := st.img.MinMax()
				fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.2f\t%d\n",
					st.name, lo, hi, st.img.Mean(), deconv.SNR(obj, st.img), st.img.CountNonFinite())
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 256, "Image height")
	cmd.Flags().IntVar(&cols, "cols", 256, "Image width")
	cmd.Flags().Float64Var(&radius, "radius", 20, "Pinhole radius in pixels")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "Richardson-Lucy iterations")
	cmd.Flags().StringVar(&method, "method", "naive", "Spectral division method (naive, regularized)")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-6, "Regularisation term for the regularized method")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Scale the pinhole to unit sum")
	return cmd
}
