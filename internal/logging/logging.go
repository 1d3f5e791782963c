// Package logging builds the application logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger wraps a sugared zap logger for workflow progress output.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a logger. Debug mode uses the human-readable console
// encoder at debug level; otherwise output is production JSON.
func New(debug bool) *Logger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "msg"

	logger, err := cfg.Build()
	if err != nil {
		// The static configs above always build; fall back just in case.
		return &Logger{zap.NewNop().Sugar()}
	}
	return &Logger{logger.Sugar()}
}

// Nop returns a logger that discards everything. Used by tests and as
// the default before configuration is loaded.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
