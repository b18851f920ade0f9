// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/ddlwork/pkg/core/ddl"
)

// DatabaseContext describes the target database of the units of work.
// It is passed explicitly to the unit of work provider and from there
// to the repository factory, so repositories may render their dialect
// specific statements.
type DatabaseContext struct {
	// Name identifies the database in logs, e.g., its DSN without
	// the password or the SQLite file path.
	Name string

	// Dialect is the SQL syntax provider of the database.
	Dialect ddl.Dialect
}

// Database is one database connection which is supplied by a
// DatabaseFactory. It may be a fresh connection or an ambient one which
// is shared by all Database instances of the same logical scope.
type Database interface {
	// Conn returns the underlying connection.
	Conn() Conn

	// Ambient reports whether Conn is owned by an enclosing scope.
	// Callers must not assume exclusive ownership of an ambient
	// connection beyond their own operations.
	Ambient() bool

	// Release gives the connection back to its origin. Releasing an
	// ambient database is a no-op because its connection is released
	// when its scope ends.
	Release(ctx context.Context) error
}

// DatabaseFactory supplies the database connection of the current
// logical scope, as found in the ctx context.
type DatabaseFactory interface {
	Database(ctx context.Context) (Database, error)
}
