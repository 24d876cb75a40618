// Copyright 2021-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is the logging facade of the smbios tools. The encoder
// packages never log; only the commands and the code generator do.
package log

import (
	"log"
	"os"
)

// Logger describes a logger to be used by the smbios tools.
type Logger interface {
	// Infof logs an informational message.
	Infof(format string, args ...interface{})

	// Warnf logs an warning message.
	Warnf(format string, args ...interface{})

	// Errorf logs an error message.
	Errorf(format string, args ...interface{})

	// Fatalf logs a fatal message and immediately exits the application
	// with os.Exit.
	Fatalf(format string, args ...interface{})
}

// DefaultLogger is the logger used by default everywhere within the tools.
var DefaultLogger Logger

func init() {
	DefaultLogger = NewLogger(log.New(os.Stderr, "", log.LstdFlags))
}

// NewLogger wraps a standard library logger into a Logger which prefixes
// every message with its level.
func NewLogger(l *log.Logger) Logger {
	return logWrapper{Logger: l}
}

type logWrapper struct {
	Logger *log.Logger
}

// Infof implements Logger.
func (logger logWrapper) Infof(format string, args ...interface{}) {
	logger.Logger.Printf("[smbios][INFO] "+format, args...)
}

// Warnf implements Logger.
func (logger logWrapper) Warnf(format string, args ...interface{}) {
	logger.Logger.Printf("[smbios][WARN] "+format, args...)
}

// Errorf implements Logger.
func (logger logWrapper) Errorf(format string, args ...interface{}) {
	logger.Logger.Printf("[smbios][ERROR] "+format, args...)
}

// Fatalf implements Logger.
func (logger logWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatalf("[smbios][FATAL] "+format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	DefaultLogger.Infof(format, args...)
}

// Warnf logs an warning message.
func Warnf(format string, args ...interface{}) {
	DefaultLogger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	DefaultLogger.Errorf(format, args...)
}

// Fatalf logs a fatal message and immediately exits the application
// with os.Exit (which is expected to be called by the DefaultLogger.Fatalf).
func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
