//
// trace.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package trace defines the logging capability that the arithmetic
// core consumes. The core never depends on a concrete logging
// backend; callers inject any implementation of Logger, for example
// a *zap.SugaredLogger, which satisfies the interface as-is.
package trace

// Logger receives trace output from the arithmetic core.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Nop is a Logger that discards all output. It is the default logger
// of all packages consuming the trace capability.
type Nop struct{}

// Debugf implements Logger.Debugf.
func (Nop) Debugf(format string, args ...interface{}) {}

// Infof implements Logger.Infof.
func (Nop) Infof(format string, args ...interface{}) {}

// Warnf implements Logger.Warnf.
func (Nop) Warnf(format string, args ...interface{}) {}

// Errorf implements Logger.Errorf.
func (Nop) Errorf(format string, args ...interface{}) {}
