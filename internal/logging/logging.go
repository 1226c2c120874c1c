package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a console logger writing to stderr. Level names are coloured
// only when stderr is a terminal so redirected output stays plain.
func New(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	return zap.New(newCore(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level))
}

func newCore(w zapcore.WriteSyncer, color bool, level zapcore.Level) zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(w), level)
}
