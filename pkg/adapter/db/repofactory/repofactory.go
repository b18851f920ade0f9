// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repofactory builds the repositories of the adapter layer
// for the units of work, implementing the repo.RepositoryFactory.
package repofactory

import (
	"fmt"

	"github.com/momeni/ddlwork/pkg/adapter/db/migrationsrp"
	"github.com/momeni/ddlwork/pkg/adapter/db/schemarp"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Factory is a stateless repo.RepositoryFactory.
type Factory struct {
}

// New instantiates a repositories Factory.
func New() *Factory {
	return &Factory{}
}

// Build builds a repository of the given kind which runs its statements
// in the tx transaction.
func (f *Factory) Build(
	kind repo.Kind, tx repo.Tx, dbc *repo.DatabaseContext,
) (any, error) {
	if tx == nil {
		return nil, cerr.InvalidConfiguration("transaction")
	}
	switch kind {
	case repo.KindSchema:
		return schemarp.New(tx), nil
	case repo.KindMigrations:
		if dbc == nil || dbc.Dialect == nil {
			return nil, cerr.InvalidConfiguration("database dialect")
		}
		return migrationsrp.New(tx, dbc.Dialect), nil
	default:
		return nil, fmt.Errorf("unknown repository kind: %q", kind)
	}
}
