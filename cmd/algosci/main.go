// Command algosci runs the Ising Metropolis sampler and the FFT image
// deconvolution pipeline.
//
// Usage:
//
//	algosci [--log level] [--config file] [--seed n] <command> [flags]
//
// Examples:
//
//	algosci ising demo
//	algosci ising run --temperature 0.5 --steps 2000 --trace
//	algosci ising sweep --t-min 0.001 --t-max 0.2 --count 10
//	algosci deconv --radius 20 --iterations 100
//	algosci deconv --method regularized --epsilon 1e-4
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-sci/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logrus.Errorf("algosci: %v", err)
		os.Exit(1)
	}
}
