// Package cli implements the algosci command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-sci/internal/config"
)

// app carries the resolved configuration and logger of one invocation.
type app struct {
	// persistent flags
	logLevel   string
	configPath string
	seed       int64

	cfg config.Config
	log *logrus.Entry
}

// NewRootCommand builds the algosci command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "algosci",
		Short:         "Ising Monte Carlo and FFT image deconvolution",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Seed for all random sources (0 derives one from the clock)")

	root.AddCommand(newIsingCommand(a), newDeconvCommand(a))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves defaults < YAML < env < flags and prepares the run logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	path := config.ConfigPath()
	if cmd.Flags().Changed("config") {
		path = a.configPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("log") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)

	a.log = logger.WithFields(logrus.Fields{
		"run_id":  uuid.New().String(),
		"command": cmd.CommandPath(),
	})

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		a.log.WithField("seed", cfg.Seed).Info("Derived seed from clock")
	}
	a.cfg = cfg
	return nil
}
