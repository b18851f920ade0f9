// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migration is the catalog of the built-in schema migrations.
// They create and evolve the users and apps schema, one migration for
// each minor version. The New function registers all of them.
//
// Migrations only describe their schema changes and never run them.
// Changes which a dialect cannot express, such as foreign keys on
// SQLite, are skipped by checking the dialect of the migration context.
package migration

import (
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/migration"
	"github.com/momeni/ddlwork/pkg/core/model"
)

// These table names are created by the catalog migrations.
const (
	UsersTable    = "users"
	User2AppTable = "user2app"
	UserAppTable  = "userApp"
)

// New returns the registry of all catalog migrations.
func New() (*migration.Registry, error) {
	return migration.NewRegistry(
		migration.Descriptor{
			Version: model.SemVer{1, 0, 0},
			Name:    "create users",
			New: func(c *migration.Context) migration.Migration {
				return createUsers{c: c}
			},
		},
		migration.Descriptor{
			Version: model.SemVer{1, 1, 0},
			Name:    "add user details",
			New: func(c *migration.Context) migration.Migration {
				return addUserDetails{c: c}
			},
		},
		migration.Descriptor{
			Version: model.SemVer{1, 2, 0},
			Name:    "rename user apps",
			New: func(c *migration.Context) migration.Migration {
				return renameUserApps{c: c}
			},
		},
	)
}

// appendAll appends es to c in order and stops at the first error.
func appendAll(c *migration.Context, es ...ddl.Expression) error {
	for _, e := range es {
		if err := c.Append(e); err != nil {
			return err
		}
	}
	return nil
}
