// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// Queryer is the statement execution interface which is implemented
// by both of Conn and Tx.
type Queryer interface {
	// Exec executes the sql statement with its args placeholders
	// values and returns the number of affected rows.
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)

	// Query executes the sql query and returns its result rows.
	// Caller must Close the returned Rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows is an iterator over the result rows of a query.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}
