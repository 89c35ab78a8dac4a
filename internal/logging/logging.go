// Package logging builds the zap logger used by the CLI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects verbosity. Quiet wins over Verbose; Verbose wins over Level.
type Options struct {
	Level   string // debug | info | warn | error
	Quiet   bool
	Verbose bool
}

// EffectiveLevel resolves the level implied by o.
func EffectiveLevel(o Options) zapcore.Level {
	switch {
	case o.Quiet:
		return zapcore.ErrorLevel
	case o.Verbose:
		return zapcore.DebugLevel
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(o.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// New returns a console logger writing to w (normally stderr).
func New(w io.Writer, o Options) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(EffectiveLevel(o)),
	)
	return zap.New(core)
}
