// Package config holds the run parameters of the algosci command line tool.
//
// Values are resolved from built-in defaults, an optional YAML file and
// ALGOSCI_* environment variables, in that order. Command line flags are
// applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvSeed     = "ALGOSCI_SEED"
	EnvLogLevel = "ALGOSCI_LOG_LEVEL"
	EnvConfig   = "ALGOSCI_CONFIG"
)

// Ising configures the spin chain commands.
type Ising struct {
	Size          int     `yaml:"size"`
	Coupling      float64 `yaml:"coupling"`
	Boltzmann     float64 `yaml:"boltzmann"`
	Probability   float64 `yaml:"probability"`
	Steps         int     `yaml:"steps"`
	Temperature   float64 `yaml:"temperature"`
	FullRecompute bool    `yaml:"full_recompute"`
}

// Sweep configures the temperature scan.
type Sweep struct {
	TMin  float64 `yaml:"t_min"`
	TMax  float64 `yaml:"t_max"`
	Count int     `yaml:"count"`
	Steps int     `yaml:"steps"`
}

// Deconv configures the image restoration pipeline.
type Deconv struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Radius     float64 `yaml:"radius"`
	Iterations int     `yaml:"iterations"`
	Method     string  `yaml:"method"`
	Epsilon    float64 `yaml:"epsilon"`

	// Normalize scales the pinhole to unit sum before use.
	Normalize bool `yaml:"normalize"`
}

// Config is the full configuration file layout.
type Config struct {
	// Seed seeds every random source. 0 derives a seed from the clock.
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	Ising    Ising  `yaml:"ising"`
	Sweep    Sweep  `yaml:"sweep"`
	Deconv   Deconv `yaml:"deconv"`
}

// Default returns the stock parameters.
func Default() Config {
	return Config{
		LogLevel: "info",
		Ising: Ising{
			Size:        100,
			Coupling:    1,
			Boltzmann:   1,
			Probability: 0.5,
			Steps:       1000,
			Temperature: 199,
		},
		Sweep: Sweep{
			TMin:  0.001,
			TMax:  0.2,
			Count: 10,
			Steps: 1000,
		},
		Deconv: Deconv{
			Rows:       256,
			Cols:       256,
			Radius:     20,
			Iterations: 100,
			Method:     "naive",
			Epsilon:    1e-6,
		},
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are
// rejected. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// empty document
		return nil
	}
	return err
}

// LoadEnv loads KEY=VALUE files into the process environment. Missing
// files are skipped. Without arguments ".env" is tried.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ConfigPath returns the configuration file named by ALGOSCI_CONFIG.
func ConfigPath() string {
	return os.Getenv(EnvConfig)
}

// ApplyEnv overrides cfg with ALGOSCI_SEED and ALGOSCI_LOG_LEVEL when set.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate checks every section for values the engines would reject.
func (c Config) Validate() error {
	switch {
	case c.Ising.Size <= 0:
		return fmt.Errorf("%w: ising.size must be positive, got %d", ErrInvalid, c.Ising.Size)
	case !(c.Ising.Boltzmann > 0):
		return fmt.Errorf("%w: ising.boltzmann must be positive, got %g", ErrInvalid, c.Ising.Boltzmann)
	case !(c.Ising.Probability >= 0 && c.Ising.Probability <= 1):
		return fmt.Errorf("%w: ising.probability must be in [0, 1], got %g", ErrInvalid, c.Ising.Probability)
	case c.Ising.Steps <= 0:
		return fmt.Errorf("%w: ising.steps must be positive, got %d", ErrInvalid, c.Ising.Steps)
	case !(c.Ising.Temperature >= 0):
		return fmt.Errorf("%w: ising.temperature must be non-negative, got %g", ErrInvalid, c.Ising.Temperature)
	case !(c.Sweep.TMin >= 0) || !(c.Sweep.TMax >= 0):
		return fmt.Errorf("%w: sweep temperatures must be non-negative", ErrInvalid)
	case c.Sweep.Count <= 0 || c.Sweep.Steps <= 0:
		return fmt.Errorf("%w: sweep.count and sweep.steps must be positive", ErrInvalid)
	case c.Deconv.Rows <= 0 || c.Deconv.Cols <= 0:
		return fmt.Errorf("%w: deconv image must be at least 1x1, got %dx%d", ErrInvalid, c.Deconv.Rows, c.Deconv.Cols)
	case !(c.Deconv.Radius > 0) || math.IsInf(c.Deconv.Radius, 0):
		return fmt.Errorf("%w: deconv.radius must be finite and positive, got %g", ErrInvalid, c.Deconv.Radius)
	case c.Deconv.Iterations <= 0:
		return fmt.Errorf("%w: deconv.iterations must be positive, got %d", ErrInvalid, c.Deconv.Iterations)
	case !(c.Deconv.Epsilon >= 0):
		return fmt.Errorf("%w: deconv.epsilon must be non-negative, got %g", ErrInvalid, c.Deconv.Epsilon)
	}
	switch c.Deconv.Method {
	case "", "naive", "regularized":
	default:
		return fmt.Errorf("%w: unknown deconv.method %q", ErrInvalid, c.Deconv.Method)
	}
	return nil
}
