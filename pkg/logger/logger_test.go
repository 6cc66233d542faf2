package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogsSafelyBeforeInitialize(t *testing.T) {
	// Packages log during their own setup paths; the default logger must
	// accept that before Initialize has run.
	assert.NotNil(t, Log)
	Info("starting up", zap.String("component", "test"))
	Warn("still not initialized")
	LogError(nil, "no-op error entry")
}

func TestInitializeReplacesDefaultLogger(t *testing.T) {
	prev := Log
	require.NoError(t, Initialize(Config{Level: "debug", Environment: "development"}))
	assert.NotSame(t, prev, Log)
	Info("initialized")
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	assert.Error(t, Initialize(Config{Level: "loud"}))
}
