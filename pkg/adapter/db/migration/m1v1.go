// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/migration"
)

// addUserDetails adds the birthday and disabled columns to the users
// table and widens its userName column where it is possible.
type addUserDetails struct {
	c *migration.Context
}

func (m addUserDetails) Name() string {
	return "add user details"
}

func (m addUserDetails) Up() error {
	err := appendAll(m.c,
		ddl.AddColumn{
			Table:  UsersTable,
			Column: ddl.Column{Name: "birthday", Type: ddl.DateTime, Nullable: true},
		},
		ddl.AddColumn{
			Table: UsersTable,
			Column: ddl.Column{
				Name: "disabled", Type: ddl.Bool, Default: ddl.Literal("'0'"),
			},
		},
		ddl.CreateIndex{
			Name:    "IX_users_userName",
			Table:   UsersTable,
			Columns: []string{"userName"},
		},
	)
	if err != nil || !m.c.Dialect().Supports(ddl.FeatureAlterColumn) {
		return err
	}
	return m.c.Append(ddl.AlterColumn{
		Table:  UsersTable,
		Column: ddl.Column{Name: "userName", Type: ddl.String, Size: 255},
	})
}

func (m addUserDetails) Down() error {
	if m.c.Dialect().Supports(ddl.FeatureAlterColumn) {
		err := m.c.Append(ddl.AlterColumn{
			Table:  UsersTable,
			Column: ddl.Column{Name: "userName", Type: ddl.String, Size: 180},
		})
		if err != nil {
			return err
		}
	}
	return appendAll(m.c,
		ddl.DeleteIndex{Table: UsersTable, Name: "IX_users_userName"},
		ddl.DeleteColumn{Table: UsersTable, Column: "disabled"},
		ddl.DeleteColumn{Table: UsersTable, Column: "birthday"},
	)
}
