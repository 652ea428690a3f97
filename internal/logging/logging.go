// Package logging holds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Init builds the logger. Verbose lowers the threshold to debug; otherwise
// only warnings and errors reach the console, keeping scan output clean.
func Init(verbose bool) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return
	}
	logger = l.Sugar()
}

// L returns the current sugared logger.
func L() *zap.SugaredLogger { return logger }
