package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// NewLogger returns a JSON logger suitable for CloudWatch. All loggers share a
// single level so SetDebug affects the package-level loggers created in init.
func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	t, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return t.Sugar()
}

func SetDebug(enabled bool) {
	if enabled {
		level.SetLevel(zap.DebugLevel)
	} else {
		level.SetLevel(zap.InfoLevel)
	}
}
