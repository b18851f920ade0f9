// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres is the PostgreSQL database adapter. It implements
// the repo.Pool, repo.Conn, and repo.Tx interfaces using the GORM
// framework and its pgx based PostgreSQL driver, so the repositories
// of the pkg/adapter/db/... packages can run their statements on
// a PostgreSQL server.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// These constants are the SQLSTATE codes which are classified by
// this package. See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	CodeUniqueViolation  = "23505"
	CodeUndefinedTable   = "42P01"
	CodeCannotConnectNow = "57P03"
)

// Code returns the SQLSTATE code of the err error if it wraps a PgError
// which is reported by the PostgreSQL server. Otherwise, it returns an
// empty string.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err indicates that a row could not
// be inserted because of a duplicate primary or unique key.
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsStartingUp reports whether err indicates that the server is still
// starting up and a later connection attempt may succeed.
func IsStartingUp(err error) bool {
	return Code(err) == CodeCannotConnectNow
}
