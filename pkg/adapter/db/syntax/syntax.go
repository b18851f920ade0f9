// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package syntax provides the SQL syntax providers, reifying the
// ddl.Dialect interface for the supported database families.
// Two bracket quoting dialects, namely the compact SQLCe and the full
// SQLServer, and two double-quote dialects, namely Postgres and SQLite,
// are provided. They differ in their type names and in the statements
// which they use for the same logical schema change, as reported by
// their ddl.Feature capabilities.
package syntax

import (
	"fmt"
	"strings"

	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
)

// These constants are the names of the provided dialects, as accepted
// by the Lookup function and the configuration files.
const (
	SQLCeName     = "sqlce"
	SQLServerName = "sqlserver"
	PostgresName  = "postgres"
	SQLiteName    = "sqlite"
)

// Dialect is the common implementation of all syntax providers. Each
// dialect is a fixed value which is configured by its constructor, so
// it is safe for concurrent use.
type Dialect struct {
	name       string
	open       string
	close      string
	features   ddl.Feature
	columnType func(c ddl.Column) (string, error)
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return d.name
}

// QuoteIdentifier wraps name in the dialect quotation marks, doubling
// any closing quotation mark which is embedded in the name.
func (d *Dialect) QuoteIdentifier(name string) string {
	return d.open + strings.ReplaceAll(name, d.close, d.close+d.close) +
		d.close
}

// ColumnType returns the dialect type name for the c column.
func (d *Dialect) ColumnType(c ddl.Column) (string, error) {
	if c.Identity && !c.Type.IsInteger() {
		return "", fmt.Errorf(
			"%w: identity %s column", cerr.ErrUnsupported, c.Type,
		)
	}
	return d.columnType(c)
}

// Supports reports whether d has all of the f capabilities.
func (d *Dialect) Supports(f ddl.Feature) bool {
	return d.features&f == f
}

// String returns the dialect name, so it can be logged easily.
func (d *Dialect) String() string {
	return d.name
}

// Lookup returns the dialect which is named by `name`.
func Lookup(name string) (*Dialect, error) {
	switch strings.ToLower(name) {
	case SQLCeName:
		return SQLCe(), nil
	case SQLServerName, "mssql":
		return SQLServer(), nil
	case PostgresName, "postgresql":
		return Postgres(), nil
	case SQLiteName:
		return SQLite(), nil
	default:
		return nil, fmt.Errorf("unknown dialect: %q", name)
	}
}

func sized(name string, size, fallback int) string {
	if size <= 0 {
		size = fallback
	}
	return fmt.Sprintf("%s(%d)", name, size)
}

func decimal(name string, c ddl.Column) string {
	p, s := c.Precision, c.Scale
	if p <= 0 {
		p, s = 18, 2
	}
	return fmt.Sprintf("%s(%d,%d)", name, p, s)
}

func unknownType(c ddl.Column) error {
	return fmt.Errorf("%w: column type %s", cerr.ErrUnsupported, c.Type)
}
