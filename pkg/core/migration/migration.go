// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/model"
)

// Migration is a unit of schema change. Each implementation is created
// by its Descriptor.New function, receiving the Context which its Up
// and Down methods must append their expressions to.
//
// Up applies the schema change and Down reverts it. They perform no
// I/O and must append the same expressions whenever they are called.
// Calling Up (or Down) twice appends those expressions twice; it is the
// responsibility of the caller to invoke each of them at most once per
// migration run. Returning an error aborts the whole migration run.
type Migration interface {
	Up() error
	Down() error
}

// Apply runs the dir method of the m migration, so it may append its
// expressions to the c context.
//
// If the m body returns an error, panics, or tries to append a malformed
// expression (even if it ignores the Append error), all expressions
// which it has appended are removed from c and an ErrMigrationDefinition
// error is returned, wrapping the original error too. Therefore, c never
// keeps a partial migration.
func Apply(c *Context, m Migration, dir model.Direction) (err error) {
	switch {
	case c == nil:
		return cerr.InvalidConfiguration("migration context")
	case m == nil:
		return cerr.InvalidConfiguration("migration")
	case c.Closed():
		return fmt.Errorf("applying %s: %w", nameOf(m), cerr.ErrContextClosed)
	}
	n := c.mark()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panicked: %v", r)
		}
		if err != nil {
			c.truncate(n)
			err = cerr.MigrationDefinition(nameOf(m), err)
		}
	}()
	switch dir {
	case model.Up:
		err = m.Up()
	case model.Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown direction: %v", dir)
	}
	if err == nil {
		err = c.rejected
	}
	if err == nil {
		c.logger.Info(
			context.Background(), "migration body is applied",
			log.Stringer("direction", dir),
			slog.String("migration", nameOf(m)),
			slog.Int("expressions", c.Len()-n),
		)
	}
	return err
}

// Named may be implemented by a migration in order to be reported by
// its name instead of its type name.
type Named interface {
	Name() string
}

func nameOf(m Migration) string {
	if n, ok := m.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", m)
}

// Describe returns the human readable list of the c expressions, one
// ddl.Describe string per expression.
func Describe(c *Context) []string {
	ds := make([]string, 0, c.Len())
	for _, e := range c.exprs {
		ds = append(ds, ddl.Describe(e))
	}
	return ds
}
