// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ddl

import (
	"fmt"
	"strings"

	"github.com/momeni/ddlwork/pkg/core/cerr"
)

// Render returns the literal SQL statement of the e expression for the
// d dialect. It is a pure function: rendering the same expression with
// the same dialect always yields the same string.
//
// All identifiers are quoted by d. A *cerr.MissingAttributeError is
// returned if e lacks a required attribute and a *cerr.UnsupportedError
// is returned if d has no syntax for e.
func Render(d Dialect, e Expression) (string, error) {
	if d == nil {
		return "", cerr.InvalidConfiguration("dialect")
	}
	if err := Validate(e); err != nil {
		return "", err
	}
	r := renderer{d: d}
	switch e := e.(type) {
	case CreateTable:
		return r.createTable(e)
	case DeleteTable:
		return "DROP TABLE " + r.q(e.Table), nil
	case RenameTable:
		return r.renameTable(e)
	case AddColumn:
		return r.addColumn(e)
	case AlterColumn:
		return r.alterColumn(e)
	case DeleteColumn:
		return fmt.Sprintf(
			"ALTER TABLE %s DROP COLUMN %s", r.q(e.Table), r.q(e.Column),
		), nil
	case RenameColumn:
		return r.renameColumn(e)
	case CreateForeignKey:
		return r.createForeignKey(e)
	case DropForeignKey:
		if !d.Supports(FeatureAlterConstraint) {
			return "", r.unsupported(e)
		}
		return fmt.Sprintf(
			"ALTER TABLE %s DROP CONSTRAINT %s", r.q(e.Table), r.q(e.Name),
		), nil
	case CreateIndex:
		unique := ""
		if e.Unique {
			unique = "UNIQUE "
		}
		return fmt.Sprintf(
			"CREATE %sINDEX %s ON %s (%s)",
			unique, r.q(e.Name), r.q(e.Table), r.list(e.Columns),
		), nil
	case DeleteIndex:
		return r.deleteIndex(e), nil
	case ExecuteSQL:
		return e.Statement, nil
	default:
		return "", fmt.Errorf("unknown expression variant: %T", e)
	}
}

type renderer struct {
	d Dialect
}

func (r renderer) q(name string) string {
	return r.d.QuoteIdentifier(name)
}

func (r renderer) list(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, r.q(n))
	}
	return strings.Join(quoted, ", ")
}

func (r renderer) unsupported(e Expression) error {
	return &cerr.UnsupportedError{Dialect: r.d.Name(), Expression: e.Kind()}
}

// literal quotes s as a SQL string literal for the sp_rename arguments.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func nullability(nullable bool) string {
	if nullable {
		return "NULL"
	}
	return "NOT NULL"
}

func (r renderer) columnDefinition(c Column) (string, error) {
	typ, err := r.d.ColumnType(c)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", c.Name, err)
	}
	def := fmt.Sprintf("%s %s %s", r.q(c.Name), typ, nullability(c.Nullable))
	if c.Default != nil {
		def += " DEFAULT " + *c.Default
	}
	return def, nil
}

func (r renderer) createTable(e CreateTable) (string, error) {
	defs := make([]string, 0, len(e.Columns)+1)
	var pk []string
	for _, c := range e.Columns {
		if c.PrimaryKey {
			c.Nullable = false
		}
		def, err := r.columnDefinition(c)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
		if c.PrimaryKey {
			pk = append(pk, c.Name)
		}
	}
	if len(pk) > 0 {
		defs = append(defs, fmt.Sprintf(
			"CONSTRAINT %s PRIMARY KEY (%s)", r.q("PK_"+e.Table), r.list(pk),
		))
	}
	return fmt.Sprintf(
		"CREATE TABLE %s (%s)", r.q(e.Table), strings.Join(defs, ", "),
	), nil
}

func (r renderer) renameTable(e RenameTable) (string, error) {
	switch {
	case r.d.Supports(FeatureRenameClause):
		return fmt.Sprintf(
			"ALTER TABLE %s RENAME TO %s", r.q(e.Table), r.q(e.NewName),
		), nil
	case r.d.Supports(FeatureRenameProcedure):
		return fmt.Sprintf(
			"EXEC sp_rename %s, %s", literal(e.Table), literal(e.NewName),
		), nil
	default:
		return "", r.unsupported(e)
	}
}

func (r renderer) addColumn(e AddColumn) (string, error) {
	def, err := r.columnDefinition(e.Column)
	if err != nil {
		return "", err
	}
	verb := "ADD"
	if r.d.Supports(FeatureAddColumnKeyword) {
		verb = "ADD COLUMN"
	}
	return fmt.Sprintf("ALTER TABLE %s %s %s", r.q(e.Table), verb, def), nil
}

// alterColumn changes the type and nullability of an existing column.
// Identity columns cannot be introduced by altering. Setting a default
// value is only possible with the ALTER COLUMN c TYPE t syntax.
func (r renderer) alterColumn(e AlterColumn) (string, error) {
	if !r.d.Supports(FeatureAlterColumn) || e.Column.Identity {
		return "", r.unsupported(e)
	}
	typ, err := r.d.ColumnType(e.Column)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", e.Column.Name, err)
	}
	t, c := r.q(e.Table), r.q(e.Column.Name)
	if r.d.Supports(FeatureAlterColumnTypeClause) {
		null := "SET NOT NULL"
		if e.Column.Nullable {
			null = "DROP NOT NULL"
		}
		stmt := fmt.Sprintf(
			"ALTER TABLE %s ALTER COLUMN %s TYPE %s, ALTER COLUMN %s %s",
			t, c, typ, c, null,
		)
		if e.Column.Default != nil {
			stmt += fmt.Sprintf(
				", ALTER COLUMN %s SET DEFAULT %s", c, *e.Column.Default,
			)
		}
		return stmt, nil
	}
	if e.Column.Default != nil {
		return "", r.unsupported(e)
	}
	return fmt.Sprintf(
		"ALTER TABLE %s ALTER COLUMN %s %s %s",
		t, c, typ, nullability(e.Column.Nullable),
	), nil
}

func (r renderer) renameColumn(e RenameColumn) (string, error) {
	switch {
	case r.d.Supports(FeatureRenameClause):
		return fmt.Sprintf(
			"ALTER TABLE %s RENAME COLUMN %s TO %s",
			r.q(e.Table), r.q(e.Column), r.q(e.NewName),
		), nil
	case r.d.Supports(FeatureRenameColumnProcedure):
		return fmt.Sprintf(
			"EXEC sp_rename %s, %s, 'COLUMN'",
			literal(e.Table+"."+e.Column), literal(e.NewName),
		), nil
	default:
		return "", r.unsupported(e)
	}
}

var referentialActions = map[ReferentialAction]string{
	Cascade:    "CASCADE",
	SetNull:    "SET NULL",
	SetDefault: "SET DEFAULT",
}

func (r renderer) createForeignKey(e CreateForeignKey) (string, error) {
	if !r.d.Supports(FeatureAlterConstraint) {
		return "", r.unsupported(e)
	}
	var b strings.Builder
	fmt.Fprintf(
		&b, "ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) "+
			"REFERENCES %s (%s)",
		r.q(e.Table), r.q(e.Name), r.list(e.Columns),
		r.q(e.PrimaryTable), r.list(e.PrimaryColumns),
	)
	if a, ok := referentialActions[e.OnDelete]; ok {
		b.WriteString(" ON DELETE " + a)
	}
	if a, ok := referentialActions[e.OnUpdate]; ok {
		b.WriteString(" ON UPDATE " + a)
	}
	return b.String(), nil
}

func (r renderer) deleteIndex(e DeleteIndex) string {
	switch {
	case r.d.Supports(FeatureDropIndexOnTable):
		return fmt.Sprintf("DROP INDEX %s ON %s", r.q(e.Name), r.q(e.Table))
	case r.d.Supports(FeatureDropIndexQualified):
		return fmt.Sprintf("DROP INDEX %s.%s", r.q(e.Table), r.q(e.Name))
	default:
		return "DROP INDEX " + r.q(e.Name)
	}
}
