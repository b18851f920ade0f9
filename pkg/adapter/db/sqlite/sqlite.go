// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite is the SQLite database adapter. It implements the
// repo.Pool, repo.Conn, and repo.Tx interfaces using the database/sql
// package and the pure Go modernc.org/sqlite driver, so migrations can
// be applied on an embedded database file without any DBMS server.
package sqlite

import (
	"errors"
	"net/url"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DSN returns the data source name of the path database file, enabling
// the foreign keys enforcement and waiting for the locked database
// for at most five seconds.
func DSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

// Code returns the extended result code of the err error if it wraps
// a SQLite error. Otherwise, it returns zero.
func Code(err error) int {
	var sErr *sqlite.Error
	if errors.As(err, &sErr) {
		return sErr.Code()
	}
	return 0
}

// IsUniqueViolation reports whether err indicates that a row could not
// be inserted because of a duplicate primary or unique key.
func IsUniqueViolation(err error) bool {
	switch Code(err) {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	default:
		return false
	}
}
