// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/ddlwork/pkg/core/model"
)

// Schema is the repository which changes the database schema by
// executing rendered DDL statements.
type Schema interface {
	// Exec executes the stmts statements one by one, in their order.
	// It stops at the first failing statement and returns its error.
	Exec(ctx context.Context, stmts ...string) error
}

// Migrations is the repository of the migrations history table which
// records the applied schema migrations.
type Migrations interface {
	// EnsureTable creates the history table if it does not exist.
	EnsureTable(ctx context.Context) error

	// Applied lists the applied migrations by their version order.
	Applied(ctx context.Context) ([]model.AppliedMigration, error)

	// Record inserts the m migration into the history.
	Record(ctx context.Context, m model.AppliedMigration) error

	// Remove deletes the v version from the history. It returns
	// a cerr.NotFound error if v was not recorded.
	Remove(ctx context.Context, v model.SemVer) error
}
