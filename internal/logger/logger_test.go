package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, cfg := range []Config{{Level: "debug"}, {Level: "bogus", Development: true}} {
		l, err := New(cfg)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core)).With(String("component", "adjudicator"))

	l.Info("scored", Float64("score", 42.5), Strings("tags", []string{"a"}))
	l.Debug("dropped below level")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scored", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "adjudicator", fields["component"])
	assert.Equal(t, 42.5, fields["score"])
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens", Err(assert.AnError))
	assert.NoError(t, l.With(Int("n", 1)).Sync())
}
