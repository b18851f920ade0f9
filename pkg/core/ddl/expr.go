// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ddl

import (
	"slices"

	"github.com/momeni/ddlwork/pkg/core/cerr"
)

// Expression is one atomic schema change intent. It is implemented
// only by the variants of this package (see the unexported methods),
// so a type switch over them may be exhaustive.
//
// Expressions are values. A migration context stores a deep copy of
// each appended expression, so later changes to the caller's copy
// (e.g., to a Columns slice) do not affect the appended one.
type Expression interface {
	// Kind returns the variant name, such as DropForeignKey.
	Kind() string

	// TableName returns the name of the affected table. It is empty
	// for ExecuteSQL expressions.
	TableName() string

	validate() error
	clone() Expression
}

// Validate returns a *cerr.MissingAttributeError if some required
// attribute of e is empty. A nil e is malformed too.
func Validate(e Expression) error {
	if e == nil {
		return &cerr.MissingAttributeError{
			Expression: "Expression", Attribute: "value",
		}
	}
	return e.validate()
}

// Clone returns a deep copy of e. Nil is returned as is.
func Clone(e Expression) Expression {
	if e == nil {
		return nil
	}
	return e.clone()
}

// ReferentialAction is the ON DELETE or ON UPDATE rule of a foreign key.
type ReferentialAction int

// These constants enumerate the referential actions. NoAction is the
// default and is omitted from the rendered statement.
const (
	NoAction ReferentialAction = iota
	Cascade
	SetNull
	SetDefault
)

// CreateTable creates Table with the given Columns. Columns which are
// marked as PrimaryKey form the PK_{Table} primary key constraint.
type CreateTable struct {
	Table   string
	Columns []Column
}

// DeleteTable drops Table.
type DeleteTable struct {
	Table string
}

// RenameTable renames Table to NewName.
type RenameTable struct {
	Table   string
	NewName string
}

// AddColumn adds Column to Table.
type AddColumn struct {
	Table  string
	Column Column
}

// AlterColumn changes the type and nullability of Column.Name in Table
// to the ones which are described by Column. A non-nil Column.Default
// sets the default value too, while a nil one keeps it unchanged.
// Identity columns may not be altered.
type AlterColumn struct {
	Table  string
	Column Column
}

// DeleteColumn drops Column from Table.
type DeleteColumn struct {
	Table  string
	Column string
}

// RenameColumn renames Column of Table to NewName.
type RenameColumn struct {
	Table   string
	Column  string
	NewName string
}

// CreateForeignKey adds the Name foreign key constraint to Table, so its
// Columns refer to the PrimaryColumns of PrimaryTable.
type CreateForeignKey struct {
	Name           string
	Table          string
	Columns        []string
	PrimaryTable   string
	PrimaryColumns []string
	OnDelete       ReferentialAction
	OnUpdate       ReferentialAction
}

// DropForeignKey drops the Name foreign key constraint from Table.
type DropForeignKey struct {
	Table string
	Name  string
}

// CreateIndex creates the Name index on the Columns of Table.
type CreateIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// DeleteIndex drops the Name index of Table.
type DeleteIndex struct {
	Table string
	Name  string
}

// ExecuteSQL runs a literal SQL statement. It is rendered verbatim and
// so it is the migration author's responsibility to keep it portable.
type ExecuteSQL struct {
	Statement string
}

func (CreateTable) Kind() string      { return "CreateTable" }
func (DeleteTable) Kind() string      { return "DeleteTable" }
func (RenameTable) Kind() string      { return "RenameTable" }
func (AddColumn) Kind() string        { return "AddColumn" }
func (AlterColumn) Kind() string      { return "AlterColumn" }
func (DeleteColumn) Kind() string     { return "DeleteColumn" }
func (RenameColumn) Kind() string     { return "RenameColumn" }
func (CreateForeignKey) Kind() string { return "CreateForeignKey" }
func (DropForeignKey) Kind() string   { return "DropForeignKey" }
func (CreateIndex) Kind() string      { return "CreateIndex" }
func (DeleteIndex) Kind() string      { return "DeleteIndex" }
func (ExecuteSQL) Kind() string       { return "ExecuteSQL" }

func (e CreateTable) TableName() string      { return e.Table }
func (e DeleteTable) TableName() string      { return e.Table }
func (e RenameTable) TableName() string      { return e.Table }
func (e AddColumn) TableName() string        { return e.Table }
func (e AlterColumn) TableName() string      { return e.Table }
func (e DeleteColumn) TableName() string     { return e.Table }
func (e RenameColumn) TableName() string     { return e.Table }
func (e CreateForeignKey) TableName() string { return e.Table }
func (e DropForeignKey) TableName() string   { return e.Table }
func (e CreateIndex) TableName() string      { return e.Table }
func (e DeleteIndex) TableName() string      { return e.Table }
func (ExecuteSQL) TableName() string         { return "" }

// checker collects the first missing attribute of an expression.
type checker struct {
	kind string
	err  error
}

func (c *checker) str(attr, v string) {
	if c.err == nil && v == "" {
		c.err = &cerr.MissingAttributeError{
			Expression: c.kind, Attribute: attr,
		}
	}
}

func (c *checker) strs(attr string, vs []string) {
	if len(vs) == 0 {
		c.str(attr, "")
		return
	}
	for _, v := range vs {
		c.str(attr, v)
	}
}

func (c *checker) column(attr string, col Column) {
	c.str(attr+".Name", col.Name)
	if c.err == nil && !col.Type.Valid() {
		c.err = &cerr.MissingAttributeError{
			Expression: c.kind, Attribute: attr + ".Type",
		}
	}
}

func (e CreateTable) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	if len(e.Columns) == 0 {
		c.str("Columns", "")
	}
	for _, col := range e.Columns {
		c.column("Columns", col)
	}
	return c.err
}

func (e DeleteTable) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	return c.err
}

func (e RenameTable) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.str("NewName", e.NewName)
	return c.err
}

func (e AddColumn) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.column("Column", e.Column)
	return c.err
}

func (e AlterColumn) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.column("Column", e.Column)
	return c.err
}

func (e DeleteColumn) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.str("Column", e.Column)
	return c.err
}

func (e RenameColumn) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.str("Column", e.Column)
	c.str("NewName", e.NewName)
	return c.err
}

func (e CreateForeignKey) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Name", e.Name)
	c.str("Table", e.Table)
	c.strs("Columns", e.Columns)
	c.str("PrimaryTable", e.PrimaryTable)
	c.strs("PrimaryColumns", e.PrimaryColumns)
	if c.err == nil && len(e.Columns) != len(e.PrimaryColumns) {
		c.err = &cerr.MissingAttributeError{
			Expression: e.Kind(), Attribute: "PrimaryColumns",
		}
	}
	return c.err
}

func (e DropForeignKey) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.str("Name", e.Name)
	return c.err
}

func (e CreateIndex) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Name", e.Name)
	c.str("Table", e.Table)
	c.strs("Columns", e.Columns)
	return c.err
}

func (e DeleteIndex) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Table", e.Table)
	c.str("Name", e.Name)
	return c.err
}

func (e ExecuteSQL) validate() error {
	c := &checker{kind: e.Kind()}
	c.str("Statement", e.Statement)
	return c.err
}

func (e CreateTable) clone() Expression {
	cols := make([]Column, 0, len(e.Columns))
	for _, col := range e.Columns {
		cols = append(cols, col.clone())
	}
	e.Columns = cols
	return e
}

func (e DeleteTable) clone() Expression  { return e }
func (e RenameTable) clone() Expression  { return e }
func (e DeleteColumn) clone() Expression { return e }
func (e RenameColumn) clone() Expression { return e }

func (e AddColumn) clone() Expression {
	e.Column = e.Column.clone()
	return e
}

func (e AlterColumn) clone() Expression {
	e.Column = e.Column.clone()
	return e
}

func (e CreateForeignKey) clone() Expression {
	e.Columns = slices.Clone(e.Columns)
	e.PrimaryColumns = slices.Clone(e.PrimaryColumns)
	return e
}

func (e DropForeignKey) clone() Expression { return e }

func (e CreateIndex) clone() Expression {
	e.Columns = slices.Clone(e.Columns)
	return e
}

func (e DeleteIndex) clone() Expression { return e }
func (e ExecuteSQL) clone() Expression  { return e }

// Describe returns a short human readable description of e, such as
// DropForeignKey(umbracoUser2app), for logging purposes.
func Describe(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	if t := e.TableName(); t != "" {
		return e.Kind() + "(" + t + ")"
	}
	return e.Kind()
}
