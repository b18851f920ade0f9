// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/migration"
)

const fkUser2AppUsers = "FK_user2app_users_id"

// createUsers creates the users table and the user2app table which
// relates users to the names of their apps.
type createUsers struct {
	c *migration.Context
}

func (m createUsers) Name() string {
	return "create users"
}

func (m createUsers) Up() error {
	err := appendAll(m.c,
		ddl.CreateTable{
			Table: UsersTable,
			Columns: []ddl.Column{
				{Name: "id", Type: ddl.Int32, PrimaryKey: true, Identity: true},
				{Name: "userName", Type: ddl.String, Size: 180},
				{Name: "email", Type: ddl.String, Size: 255},
				{
					Name:    "createdAt",
					Type:    ddl.DateTime,
					Default: ddl.Literal("CURRENT_TIMESTAMP"),
				},
			},
		},
		ddl.CreateIndex{
			Name:    "IX_users_email",
			Table:   UsersTable,
			Columns: []string{"email"},
			Unique:  true,
		},
		ddl.CreateTable{
			Table: User2AppTable,
			Columns: []ddl.Column{
				{Name: "userId", Type: ddl.Int32, PrimaryKey: true},
				{Name: "app", Type: ddl.String, Size: 50, PrimaryKey: true},
			},
		},
	)
	if err != nil || !m.c.Dialect().Supports(ddl.FeatureAlterConstraint) {
		return err
	}
	return m.c.Append(ddl.CreateForeignKey{
		Name:           fkUser2AppUsers,
		Table:          User2AppTable,
		Columns:        []string{"userId"},
		PrimaryTable:   UsersTable,
		PrimaryColumns: []string{"id"},
		OnDelete:       ddl.Cascade,
	})
}

func (m createUsers) Down() error {
	if m.c.Dialect().Supports(ddl.FeatureAlterConstraint) {
		err := m.c.Append(ddl.DropForeignKey{
			Table: User2AppTable,
			Name:  fkUser2AppUsers,
		})
		if err != nil {
			return err
		}
	}
	return appendAll(m.c,
		ddl.DeleteTable{Table: User2AppTable},
		ddl.DeleteIndex{Table: UsersTable, Name: "IX_users_email"},
		ddl.DeleteTable{Table: UsersTable},
	)
}
