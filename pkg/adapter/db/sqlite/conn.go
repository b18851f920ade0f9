// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Conn represents one SQLite connection. It embeds *sql.Conn and is
// unsafe to be used concurrently.
type Conn struct {
	*sql.Conn
}

// Tx begins a transaction, passes it to the f handler, and commits it
// if f returns nil. Otherwise, or if f panics, it is rolled back.
func (c *Conn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	tx, err := c.Conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = tx.Rollback()
			if err == nil {
				err = fmt.Errorf("panicked: %v", r)
				return
			}
			err = fmt.Errorf("panicked: %v, rollback: %w", r, err)
			return
		}
		if err != nil {
			if err2 := tx.Rollback(); err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		err = tx.Commit()
		if err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, &Tx{Tx: tx})
}

// Begin begins a transaction which must be ended by its Commit or
// Rollback methods.
func (c *Conn) Begin(ctx context.Context) (repo.ManagedTx, error) {
	tx, err := c.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{Tx: tx}, nil
}

// Exec runs the sql statement with args on the c connection.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(ctx, c.Conn, sql, args...)
}

// Query runs the sql query with args on the c connection.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(ctx, c.Conn, sql, args...)
}

// IsConn method prevents a non-Conn object (such as a Tx) to
// mistakenly implement the Conn interface.
func (c *Conn) IsConn() {
}
