// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine, so other layers may create
// an engine with the project middlewares without importing gin-gonic.
package gin

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momeni/ddlwork/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// New creates a gin-gonic engine without any default middleware and
// registers the given middlewares on it.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns a middleware which logs one record per request using
// the l logger. Server errors are logged at the error level, client
// errors at the warning level, and others at the info level.
func Logger(l *slog.Logger) HandlerFunc {
	lg := log.New(l)
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}
		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client", c.ClientIP()),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			attrs = append(attrs, slog.String("errors", errs.String()))
		}
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			lg.Error(ctx, "request is served", attrs...)
		case status >= 400:
			lg.Warn(ctx, "request is served", attrs...)
		default:
			lg.Info(ctx, "request is served", attrs...)
		}
	}
}

// Recovery returns a middleware which recovers from panics and writes
// a 500 status code.
func Recovery() HandlerFunc {
	return gin.Recovery()
}
