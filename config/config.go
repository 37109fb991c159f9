// Package config assembles CLI settings from defaults, an optional YAML file,
// an optional .env file and LITHOCYCLE_* environment variables, in that order
// of increasing precedence. Command-line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/logging"
	"github.com/katalvlaran/lithocycle/synth"
)

// Environment variables read by Load.
const (
	EnvLogMode   = "LITHOCYCLE_LOG_MODE"
	EnvMaxFacies = "LITHOCYCLE_MAX_FACIES"
	EnvWorkers   = "LITHOCYCLE_WORKERS"
	EnvOutputDir = "LITHOCYCLE_OUTPUT_DIR"
	EnvSeed      = "LITHOCYCLE_SEED"
)

// ErrInvalidConfig is returned for unreadable or inconsistent settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting of a CLI run.
type Config struct {
	LogMode   string        `yaml:"log_mode"`
	OutputDir string        `yaml:"output_dir"`
	Analysis  Analysis      `yaml:"analysis"`
	Synth     synth.Options `yaml:"synth"`
}

// Analysis holds the permutation search settings.
type Analysis struct {
	MaxFacies     int `yaml:"max_facies"`
	Workers       int `yaml:"workers"`
	HistogramBins int `yaml:"histogram_bins"`
	// Tolerance > 0 compares m-values with ToleranceEqual instead of exactly.
	Tolerance    float64 `yaml:"tolerance"`
	Proportional bool    `yaml:"proportional"`
	Format       string  `yaml:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogMode:   "dev",
		OutputDir: ".",
		Analysis: Analysis{
			MaxFacies:     burgess.DefaultMaxFacies,
			HistogramBins: burgess.DefaultHistogramBins,
			Format:        "text",
		},
		Synth: synth.DefaultOptions(),
	}
}

// Load builds a Config. Empty paths are skipped. Variables already present in
// the process environment win over the .env file.
func Load(path, envFile string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return cfg, fmt.Errorf("config: read env file %s: %w", envFile, err)
		}
		fileVars = vars
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogMode); ok {
		c.LogMode = v
	}
	if v, ok := lookup(EnvOutputDir); ok {
		c.OutputDir = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMaxFacies, &c.Analysis.MaxFacies},
		{EnvWorkers, &c.Analysis.Workers},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, e.key, v, err)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Synth.Seed = seed
	}

	return nil
}

// Validate rejects settings the analysis or the generator would refuse.
func (c Config) Validate() error {
	a := c.Analysis
	switch {
	case a.MaxFacies < 0 || a.Workers < 0 || a.HistogramBins < 0:
		return fmt.Errorf("%w: negative analysis setting", ErrInvalidConfig)
	case a.Tolerance < 0:
		return fmt.Errorf("%w: tolerance %g", ErrInvalidConfig, a.Tolerance)
	case c.OutputDir == "":
		return fmt.Errorf("%w: empty output_dir", ErrInvalidConfig)
	}

	return nil
}

// BurgessOptions converts the analysis settings.
func (c Config) BurgessOptions(log *logging.Logger) burgess.Options {
	opts := burgess.DefaultOptions()
	opts.MaxFacies = c.Analysis.MaxFacies
	opts.Workers = c.Analysis.Workers
	opts.HistogramBins = c.Analysis.HistogramBins
	if c.Analysis.Tolerance > 0 {
		opts.Equal = burgess.ToleranceEqual(c.Analysis.Tolerance)
	}
	opts.Logger = log

	return opts
}

// SynthOptions returns the generator settings with log attached.
func (c Config) SynthOptions(log *logging.Logger) synth.Options {
	opts := c.Synth
	opts.Logger = log

	return opts
}
