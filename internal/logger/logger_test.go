package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_SetsLevelAndGlobal(t *testing.T) {
	log, err := New("warn", "json")
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Sync() })

	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))
	require.Same(t, log, zap.L())
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", "console")
	require.Error(t, err)
}
