// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ddl contains the dialect independent representation of the
// schema changes. Each schema change intent, such as dropping a foreign
// key or adding a column, is represented by one Expression value.
// Expressions are inert values; they are turned into literal SQL
// statements by the Render function for a given Dialect and executed
// by some other component.
//
// The set of Expression variants is closed. Render switches over all of
// them and refuses unknown variants, so adding a new variant requires
// the renderer (and its tests which enumerate the variants) to be
// updated in the same change.
package ddl

// Feature is a bit set of dialect capabilities which select between
// the alternative syntaxes of a logical schema change.
type Feature uint

// These constants enumerate the supported dialect capabilities.
const (
	// FeatureAlterConstraint allows ALTER TABLE ... ADD CONSTRAINT and
	// ALTER TABLE ... DROP CONSTRAINT statements.
	FeatureAlterConstraint Feature = 1 << iota

	// FeatureAlterColumn allows changing the type or nullability of an
	// existing column.
	FeatureAlterColumn

	// FeatureAlterColumnTypeClause selects the ALTER COLUMN c TYPE t
	// form (plus SET/DROP NOT NULL) instead of ALTER COLUMN c t NULL.
	FeatureAlterColumnTypeClause

	// FeatureAddColumnKeyword selects ADD COLUMN instead of ADD.
	FeatureAddColumnKeyword

	// FeatureRenameClause allows ALTER TABLE ... RENAME TO and
	// ALTER TABLE ... RENAME COLUMN ... TO statements.
	FeatureRenameClause

	// FeatureRenameProcedure allows renaming tables (and columns, when
	// FeatureRenameColumnProcedure is present too) by sp_rename.
	FeatureRenameProcedure

	// FeatureRenameColumnProcedure allows renaming columns by sp_rename.
	FeatureRenameColumnProcedure

	// FeatureDropIndexOnTable selects DROP INDEX ix ON t.
	FeatureDropIndexOnTable

	// FeatureDropIndexQualified selects DROP INDEX t.ix.
	FeatureDropIndexQualified
)

// Dialect is the SQL syntax provider which is consumed by Render.
// Implementations must be safe for concurrent use and must not have
// side effects, so rendering remains a pure function of an expression
// and its dialect.
type Dialect interface {
	// Name returns the dialect name, such as sqlserver or postgres.
	Name() string

	// QuoteIdentifier quotes a table, column, index, or constraint
	// name. Embedded quote characters must be escaped.
	QuoteIdentifier(name string) string

	// ColumnType returns the dialect type name for the given column,
	// considering its size, precision, scale, and identity attributes.
	ColumnType(c Column) (string, error)

	// Supports reports whether all capabilities in f are available.
	Supports(f Feature) bool
}
