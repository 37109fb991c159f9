package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lithocycle/logging"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "quiet", ""} {
		l, err := logging.New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestFromCore_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.FromCore(core).With("run", "r1")

	l.Info("search finished", "permutations", 6)
	l.Debug("detail")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "search finished", entry.Message)
	assert.Equal(t, map[string]interface{}{"run": "r1", "permutations": int64(6)}, entry.ContextMap())
}

func TestOrNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.OrNop(nil).Warn("dropped") })
}
