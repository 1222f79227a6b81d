package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Setup replaces the package logger. With verbose set, debug events go
// to stderr; otherwise logging stays off so command output is clean.
func Setup(verbose bool) {
	if !verbose {
		logger = zap.NewNop()
		return
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}

// L returns the package logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered entries before the process exits.
func Sync() {
	_ = logger.Sync()
}
