// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp is the adapter for the schema repository. It runs
// the rendered DDL statements of the migrations in a transaction of
// any of the supported databases.
package schemarp

import (
	"context"
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Repo implements the repo.Schema interface for one transaction.
type Repo struct {
	tx repo.Tx
}

// New instantiates a schema repository which runs its statements in
// the tx transaction.
func New(tx repo.Tx) *Repo {
	return &Repo{tx: tx}
}

// Exec executes stmts one by one, in their order, and stops at the
// first failing statement.
func (r *Repo) Exec(ctx context.Context, stmts ...string) error {
	for i, s := range stmts {
		if _, err := r.tx.Exec(ctx, s); err != nil {
			return fmt.Errorf("executing statement #%d (%s): %w", i, s, err)
		}
	}
	return nil
}
