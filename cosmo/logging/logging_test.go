package logging_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/cosmo/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := logging.New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.FromZap(zap.New(core)).With("run_id", "r1")

	l.Error("metric failed", "path", "/g/a_000.xml", "metric", "hurst")
	l.Debug("skip", "metric", "entropy")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "r1", fields["run_id"])
	require.Equal(t, "/g/a_000.xml", fields["path"])
	require.Equal(t, "hurst", fields["metric"])
}

func TestNewNop(t *testing.T) {
	l := logging.NewNop()
	l.Info("dropped", "k", 1)
	l.Warn("dropped")
	l.Sync()
}
