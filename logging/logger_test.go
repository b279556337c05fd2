package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig_WarnOnStderr(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "stderr", cfg.OutputPath)

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := New(Config{Level: "loud", OutputPath: "stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONOnStdout(t *testing.T) {
	logger, err := New(Config{Level: "debug", OutputPath: "stdout", Format: "json"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_RejectsFileOutput(t *testing.T) {
	// GIVEN an output that is neither stdout nor stderr
	cfg := Config{Level: "info", OutputPath: "/var/log/reimburse.log"}

	// WHEN building the logger
	logger, err := New(cfg)

	// THEN nothing is opened
	assert.Nil(t, logger)
	assert.ErrorContains(t, err, "unsupported log output")
}
