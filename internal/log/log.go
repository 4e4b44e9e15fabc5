// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger returns a console sugared logger writing to stderr at the given level.
// LOG_LEVEL, when set to a valid level, takes precedence.
func NewZapLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if ll, err := zapcore.ParseLevel(env); err == nil {
			lvl = ll
		}
	}

	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(lvl)
	loggerConfig.Development = false
	loggerConfig.DisableStacktrace = true
	loggerConfig.DisableCaller = true
	loggerConfig.EncoderConfig.TimeKey = ""
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.OutputPaths = []string{"stderr"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
