package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Console encoding and debug
// level by default; LOG_ENCODING=json switches to production JSON output.
func NewLogger() *zap.Logger {
	encoding := os.Getenv("LOG_ENCODING")
	if encoding == "" {
		encoding = "console"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}
