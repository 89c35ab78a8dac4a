package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestEffectiveLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, EffectiveLevel(Options{}))
	assert.Equal(t, zapcore.WarnLevel, EffectiveLevel(Options{Level: "warn"}))
	assert.Equal(t, zapcore.DebugLevel, EffectiveLevel(Options{Level: "warn", Verbose: true}))
	assert.Equal(t, zapcore.ErrorLevel, EffectiveLevel(Options{Verbose: true, Quiet: true}))
	assert.Equal(t, zapcore.InfoLevel, EffectiveLevel(Options{Level: "nonsense"}))
}

func TestNewWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: "info"})
	log.Debug("hidden")
	log.Info("rewrite complete", zap.Int("records", 3))
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "rewrite complete")
	assert.Contains(t, out, `"records": 3`)
}

func TestQuietKeepsErrors(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Quiet: true})
	log.Warn("dropped")
	log.Error("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
