package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// NewLogger builds the production logger, with debug level outside prod
func NewLogger(env string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if env != "prod" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// GetLogger returns the process logger, built on first use
func GetLogger(env string) *zap.Logger {
	once.Do(func() {
		logger, err := NewLogger(env)
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
