// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package log provides helper function over the standard log/slog
// structured logging package. By default, slog package-level functions
// such as slog.Info accept a message and a series of interleaved key
// and value arguments as a series of "any" arguments. A more efficient
// API is also provided which takes slog.Attr arguments which are typed
// statically and avoid memory allocation for simple data types.
// This log package exports Debug, Info, Warn, and Error functions
// which accept a context, message, and a series of slog.Attr arguments
// facilitating usage of the slog.LogAttrs function.
// It also provides helper functions for preparing slog.Attr instances.
//
// Components which are injected with their own *slog.Logger instance,
// such as a migration context, may wrap it by the New function and use
// the same API through the returned Logger methods.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Debug logs msg and attrs with the given context at the debug level.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, nil, slog.LevelDebug, msg, attrs...)
}

// Info logs msg and attrs with the given context at the info level.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, nil, slog.LevelInfo, msg, attrs...)
}

// Warn logs msg and attrs with the given context at the warning level.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, nil, slog.LevelWarn, msg, attrs...)
}

// Error logs msg and attrs with the given context at the error level.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, nil, slog.LevelError, msg, attrs...)
}

// Logger wraps a *slog.Logger with the same attrs based API as the
// package-level functions. Its zero value logs to the slog.Default().
type Logger struct {
	l *slog.Logger
}

// New wraps the l logger. A nil l is resolved as slog.Default() at the
// time of logging, so later changes of the default logger are honored.
func New(l *slog.Logger) Logger {
	return Logger{l: l}
}

// Slog returns the wrapped logger, or slog.Default() if it is nil.
func (lg Logger) Slog() *slog.Logger {
	if lg.l == nil {
		return slog.Default()
	}
	return lg.l
}

// Debug logs msg and attrs with the given context at the debug level.
func (lg Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, lg.l, slog.LevelDebug, msg, attrs...)
}

// Info logs msg and attrs with the given context at the info level.
func (lg Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, lg.l, slog.LevelInfo, msg, attrs...)
}

// Warn logs msg and attrs with the given context at the warning level.
func (lg Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, lg.l, slog.LevelWarn, msg, attrs...)
}

// Error logs msg and attrs with the given context at the error level.
func (lg Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, lg.l, slog.LevelError, msg, attrs...)
}

// logAttrs logs the msg and given attrs using the level log-level.
// The l logger is used if it is non-nil, otherwise, slog.Default().
// It ignores the direct caller of logAttrs function when looking for
// its caller file name and line number, hence, it must be either
// exported and only called by client codes or non-exported and caller
// from this package itself. And since it is called from this package,
// it has to be non-exported.
func logAttrs(
	ctx context.Context,
	l *slog.Logger,
	level slog.Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l == nil {
		l = slog.Default()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, its parent in log pkg]
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
