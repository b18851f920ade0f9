// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationsrp is the adapter for the migrations repository.
// It maintains the ddlworkMigration history table which records the
// applied schema migrations of a database. All statements are built
// with the identifiers quoting of the database dialect and with the
// ? placeholders, so they can run on all supported databases.
package migrationsrp

import (
	"context"

	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Repo implements the repo.Migrations interface for one transaction.
type Repo struct {
	tx      repo.Tx
	dialect ddl.Dialect
}

// New instantiates a migrations repository which runs its statements
// in the tx transaction, quoting identifiers by the d dialect.
func New(tx repo.Tx, d ddl.Dialect) *Repo {
	return &Repo{tx: tx, dialect: d}
}

func (r *Repo) EnsureTable(ctx context.Context) error {
	return EnsureTable(ctx, r.tx, r.dialect)
}

func (r *Repo) Applied(ctx context.Context) ([]model.AppliedMigration, error) {
	return Applied(ctx, r.tx, r.dialect)
}

func (r *Repo) Record(ctx context.Context, m model.AppliedMigration) error {
	return Record(ctx, r.tx, r.dialect, m)
}

func (r *Repo) Remove(ctx context.Context, v model.SemVer) error {
	return Remove(ctx, r.tx, r.dialect, v)
}
