// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/migration"
)

// renameUserApps renames the user2app table and its app column, and
// removes the rows which have no app name.
type renameUserApps struct {
	c *migration.Context
}

func (m renameUserApps) Name() string {
	return "rename user apps"
}

func (m renameUserApps) Up() error {
	q := m.c.Dialect().QuoteIdentifier
	return appendAll(m.c,
		ddl.ExecuteSQL{Statement: fmt.Sprintf(
			"DELETE FROM %s WHERE %s = ''", q(User2AppTable), q("app"),
		)},
		ddl.RenameTable{Table: User2AppTable, NewName: UserAppTable},
		ddl.RenameColumn{Table: UserAppTable, Column: "app", NewName: "appAlias"},
	)
}

func (m renameUserApps) Down() error {
	return appendAll(m.c,
		ddl.RenameColumn{Table: UserAppTable, Column: "appAlias", NewName: "app"},
		ddl.RenameTable{Table: UserAppTable, NewName: User2AppTable},
	)
}
