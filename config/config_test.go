package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lithocycle/burgess"
	"github.com/katalvlaran/lithocycle/config"
	"github.com/katalvlaran/lithocycle/logging"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Equal(t, burgess.DefaultMaxFacies, cfg.Analysis.MaxFacies)
	assert.Equal(t, 5, cfg.Synth.N)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "lithocycle.yaml", `
log_mode: prod
analysis:
  max_facies: 6
  workers: 2
  tolerance: 1e-9
synth:
  n: 12
  alpha: 1.5
  gamma: 0.1
`)
	envFile := writeFile(t, ".env", "LITHOCYCLE_WORKERS=3\nLITHOCYCLE_OUTPUT_DIR=out\nLITHOCYCLE_SEED=42\n")
	t.Setenv(config.EnvLogMode, "quiet")

	cfg, err := config.Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "quiet", cfg.LogMode)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 6, cfg.Analysis.MaxFacies)
	assert.Equal(t, 3, cfg.Analysis.Workers)
	assert.Equal(t, 12, cfg.Synth.N)
	assert.Equal(t, 0.25, cfg.Synth.Resolution)
	assert.Equal(t, 1.5, cfg.Synth.Alpha)
	assert.Equal(t, int64(42), cfg.Synth.Seed)

	opts := cfg.BurgessOptions(logging.Nop())
	assert.Equal(t, 6, opts.MaxFacies)
	assert.True(t, opts.Equal(1, 1+1e-12))
	assert.Equal(t, 12, cfg.SynthOptions(nil).N)
}

func TestLoad_ProcessEnvWinsOverEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "LITHOCYCLE_MAX_FACIES=5\n")
	t.Setenv(config.EnvMaxFacies, "7")

	cfg, err := config.Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Analysis.MaxFacies)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := config.Load(writeFile(t, "bad.yaml", "analysis:\n  colour: red\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "neg.yaml", "analysis:\n  workers: -1\n"), "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load("", "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
