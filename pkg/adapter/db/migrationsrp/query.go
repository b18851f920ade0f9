// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationsrp

import (
	"context"
	"fmt"
	"slices"

	"github.com/momeni/ddlwork/pkg/adapter/db/postgres"
	"github.com/momeni/ddlwork/pkg/adapter/db/sqlite"
	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// TableName is the name of the migrations history table.
const TableName = "ddlworkMigration"

// HistoryTable returns the expression which creates the migrations
// history table.
func HistoryTable() ddl.CreateTable {
	return ddl.CreateTable{
		Table: TableName,
		Columns: []ddl.Column{
			{Name: "version", Type: ddl.String, Size: 32, PrimaryKey: true},
			{Name: "name", Type: ddl.String, Size: 255},
			{Name: "appliedAt", Type: ddl.DateTime},
		},
	}
}

// EnsureTable creates the history table using the q queryer if it
// does not exist yet.
func EnsureTable(ctx context.Context, q repo.Queryer, d ddl.Dialect) error {
	ok, err := tableExists(ctx, q, d, TableName)
	if err != nil {
		return fmt.Errorf("checking %s table: %w", TableName, err)
	}
	if ok {
		return nil
	}
	stmt, err := ddl.Render(d, HistoryTable())
	if err != nil {
		return fmt.Errorf("rendering %s table: %w", TableName, err)
	}
	if _, err = q.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("creating %s table: %w", TableName, err)
	}
	return nil
}

func tableExists(
	ctx context.Context, q repo.Queryer, d ddl.Dialect, name string,
) (bool, error) {
	var query string
	switch d.Name() {
	case syntax.SQLiteName:
		query = "SELECT count(*) FROM sqlite_master " +
			"WHERE type = 'table' AND name = ?"
	case syntax.PostgresName:
		query = "SELECT count(*) FROM information_schema.tables " +
			"WHERE table_schema = current_schema() AND table_name = ?"
	default:
		query = "SELECT count(*) FROM information_schema.tables " +
			"WHERE table_name = ?"
	}
	rows, err := q.Query(ctx, query, name)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	var n int64
	if rows.Next() {
		if err = rows.Scan(&n); err != nil {
			return false, err
		}
	}
	return n > 0, rows.Err()
}

// Applied lists the recorded migrations using the q queryer, sorted by
// their versions.
func Applied(
	ctx context.Context, q repo.Queryer, d ddl.Dialect,
) ([]model.AppliedMigration, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s, %s FROM %s",
		d.QuoteIdentifier("version"), d.QuoteIdentifier("name"),
		d.QuoteIdentifier("appliedAt"), d.QuoteIdentifier(TableName),
	)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	var ms []model.AppliedMigration
	for rows.Next() {
		var v string
		var m model.AppliedMigration
		if err = rows.Scan(&v, &m.Name, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if m.Version, err = model.ParseSemVer(v); err != nil {
			return nil, fmt.Errorf("parsing version %q: %w", v, err)
		}
		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	slices.SortFunc(ms, func(a, b model.AppliedMigration) int {
		return a.Version.Compare(b.Version)
	})
	return ms, nil
}

// Record inserts the m migration into the history table using the q
// queryer. A cerr.Conflict error is returned if m.Version is recorded
// already.
func Record(
	ctx context.Context, q repo.Queryer, d ddl.Dialect,
	m model.AppliedMigration,
) error {
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
		d.QuoteIdentifier(TableName), d.QuoteIdentifier("version"),
		d.QuoteIdentifier("name"), d.QuoteIdentifier("appliedAt"),
	)
	_, err := q.Exec(ctx, stmt, m.Version.String(), m.Name, m.AppliedAt.UTC())
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return cerr.Conflict(fmt.Errorf(
			"migration v%s is already recorded: %w", m.Version, err,
		))
	default:
		return fmt.Errorf("inserting v%s: %w", m.Version, err)
	}
}

// Remove deletes the v version from the history table using the q
// queryer. A cerr.NotFound error is returned if v was not recorded.
func Remove(
	ctx context.Context, q repo.Queryer, d ddl.Dialect, v model.SemVer,
) error {
	stmt := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ?",
		d.QuoteIdentifier(TableName), d.QuoteIdentifier("version"),
	)
	n, err := q.Exec(ctx, stmt, v.String())
	if err != nil {
		return fmt.Errorf("deleting v%s: %w", v, err)
	}
	if n != 1 {
		return cerr.NotFound(fmt.Errorf(
			"expected one v%s row, but got %d", v, n,
		))
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return postgres.IsUniqueViolation(err) || sqlite.IsUniqueViolation(err)
}
