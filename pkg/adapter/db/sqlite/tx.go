// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"

	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Tx represents a SQLite transaction. It embeds *sql.Tx and is unsafe
// to be used concurrently. SQLite transactions are serializable.
//
// Parameters in sql statements should be written as ? placeholders.
type Tx struct {
	*sql.Tx
}

// Exec runs the sql statement with args in the tx transaction.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(ctx, tx.Tx, sql, args...)
}

// Query runs the sql query with args in the tx transaction.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(ctx, tx.Tx, sql, args...)
}

// Commit commits a transaction which was created by Conn.Begin.
func (tx *Tx) Commit(ctx context.Context) error {
	return tx.Tx.Commit()
}

// Rollback rolls back a transaction which was created by Conn.Begin.
func (tx *Tx) Rollback(ctx context.Context) error {
	return tx.Tx.Rollback()
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}
