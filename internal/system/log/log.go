/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package log provides the zap based logger shared by all the components.
package log

import (
	"errors"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/asgardeo/certcampaign/internal/system/constants"
)

var (
	logger *zap.Logger
	mu     sync.RWMutex
)

// InitLogger initializes the logger with a plain text format and the given level.
// An empty level falls back to the CERTCAMPAIGN_LOG_LEVEL environment variable and then to info.
func InitLogger(level string) error {
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvironmentVariable)
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.New("error parsing log level: " + err.Error())
	}

	l := newLogger(zapLevel)
	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

// newLogger builds the console logger. Standard output is reserved for the run report, so
// entries go to standard error.
func newLogger(level zapcore.Level) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller())
}

// GetLogger returns the logger instance, initializing it with the defaults if required.
func GetLogger() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}

	if err := InitLogger(""); err != nil {
		// An invalid level in the environment should not stop the tool from logging.
		mu.Lock()
		logger = newLogger(zapcore.InfoLevel)
		mu.Unlock()
	}

	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// ReplaceLogger swaps the logger instance and returns a function that restores the previous one.
func ReplaceLogger(l *zap.Logger) func() {
	mu.Lock()
	previous := logger
	logger = l
	mu.Unlock()

	return func() {
		mu.Lock()
		logger = previous
		mu.Unlock()
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

// MaskString masks characters in a string except for the first and last characters.
func MaskString(s string) string {
	if len(s) <= 3 {
		return strings.Repeat("*", len(s))
	}
	return s[:1] + strings.Repeat("*", len(s)-2) + s[len(s)-1:]
}
