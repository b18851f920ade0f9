// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migration contains the expression based schema migrations.
// A Migration populates a Context with ddl.Expression values in its Up
// or Down methods and performs no I/O by itself. The accumulated
// expressions are rendered for the Context dialect and executed later
// by the migrationuc use cases, inside a unit of work.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/log"
)

// Context is the ordered accumulator of the expressions of one
// migration run. It is bound to one dialect and one logger.
//
// Expressions are kept in their append order, which is the order of
// their execution. They are never reordered or deduplicated.
// A Context is not safe for concurrent use. It is populated by one
// migration and then closed and read by one executor.
type Context struct {
	dialect ddl.Dialect
	logger  log.Logger
	exprs   []ddl.Expression
	closed  bool

	// rejected is the first expression which was refused by Append
	// since the last mark, so Apply can fail a migration even if its
	// body has ignored the Append error.
	rejected error
}

// NewContext creates an empty migration context for the d dialect.
// The l logger is used for reporting the appended expressions and may
// be nil in order to use the slog.Default() logger.
func NewContext(d ddl.Dialect, l *slog.Logger) (*Context, error) {
	if d == nil {
		return nil, cerr.InvalidConfiguration("dialect")
	}
	return &Context{dialect: d, logger: log.New(l)}, nil
}

// Append adds the e expression to the end of the c context. A deep copy
// of e is stored, so e may be modified by the caller afterwards.
//
// ErrContextClosed is returned if c was closed. The e expression must
// have all of its required attributes, otherwise, it is rejected with
// a *cerr.MissingAttributeError.
func (c *Context) Append(e ddl.Expression) error {
	if c.closed {
		return fmt.Errorf("appending %s: %w", ddl.Describe(e), cerr.ErrContextClosed)
	}
	if err := ddl.Validate(e); err != nil {
		if c.rejected == nil {
			c.rejected = err
		}
		return err
	}
	c.exprs = append(c.exprs, ddl.Clone(e))
	c.logger.Debug(
		context.Background(), "expression is appended",
		slog.String("expression", ddl.Describe(e)),
		slog.Int("index", len(c.exprs)-1),
	)
	return nil
}

// Expressions returns the accumulated expressions in their append
// order. The returned slice is a copy and modifying it has no effect
// on the c context.
func (c *Context) Expressions() []ddl.Expression {
	return slices.Clone(c.exprs)
}

// Len returns the number of accumulated expressions.
func (c *Context) Len() int {
	return len(c.exprs)
}

// Close finalizes the c context. It is called when c is handed to an
// executor, so a migration cannot append more expressions afterwards.
// Closing a closed context is a no-op.
func (c *Context) Close() {
	c.closed = true
}

// Closed reports whether c is finalized.
func (c *Context) Closed() bool {
	return c.closed
}

// Dialect returns the target dialect of c.
func (c *Context) Dialect() ddl.Dialect {
	return c.dialect
}

// Logger returns the logger of c.
func (c *Context) Logger() *slog.Logger {
	return c.logger.Slog()
}

// Render renders all accumulated expressions with the c dialect and
// returns the SQL statements in the execution order. If any expression
// cannot be rendered, no statement is returned, so nothing may be
// executed partially.
func (c *Context) Render() ([]string, error) {
	stmts := make([]string, 0, len(c.exprs))
	for i, e := range c.exprs {
		s, err := ddl.Render(c.dialect, e)
		if err != nil {
			return nil, fmt.Errorf("rendering expression #%d: %w", i, err)
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// mark returns the current length of c and forgets the past rejected
// expressions, so expressions appended afterwards can be truncated.
func (c *Context) mark() int {
	c.rejected = nil
	return len(c.exprs)
}

// truncate drops the expressions which were appended after n.
func (c *Context) truncate(n int) {
	clear(c.exprs[n:])
	c.exprs = c.exprs[:n]
}
