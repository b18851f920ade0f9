// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ddl

import "fmt"

// DataType is the logical type of a column. Each Dialect maps it to
// its own type name.
type DataType int

// These constants enumerate the supported logical column types.
const (
	String   DataType = iota + 1 // bounded unicode text, uses Size
	Text                         // unbounded unicode text
	Int32                        // 32 bits integer
	Int64                        // 64 bits integer
	Bool                         // boolean flag
	DateTime                     // date and time without zone
	Decimal                      // exact numeric, uses Precision/Scale
	GUID                         // 128 bits unique identifier
	Binary                       // byte string, uses Size if positive
)

var dataTypeNames = map[DataType]string{
	String:   "String",
	Text:     "Text",
	Int32:    "Int32",
	Int64:    "Int64",
	Bool:     "Bool",
	DateTime: "DateTime",
	Decimal:  "Decimal",
	GUID:     "GUID",
	Binary:   "Binary",
}

// String returns the logical type name.
func (dt DataType) String() string {
	if n, ok := dataTypeNames[dt]; ok {
		return n
	}
	return fmt.Sprintf("DataType(%d)", int(dt))
}

// Valid reports whether dt is one of the known logical types.
func (dt DataType) Valid() bool {
	_, ok := dataTypeNames[dt]
	return ok
}

// IsInteger reports whether dt may be used for an identity column.
func (dt DataType) IsInteger() bool {
	return dt == Int32 || dt == Int64
}

// Column describes one column of a table. It is used by CreateTable,
// AddColumn, and AlterColumn expressions.
type Column struct {
	Name      string
	Type      DataType
	Size      int // length of String and Binary columns, zero for default
	Precision int // digits of Decimal columns, zero for default
	Scale     int // fraction digits of Decimal columns

	Nullable   bool // ignored for PrimaryKey columns
	PrimaryKey bool // member of the table primary key (CreateTable only)
	Identity   bool // database generated integer values

	// Default is the literal SQL default value expression, e.g., '0'
	// or CURRENT_TIMESTAMP. A nil Default means no DEFAULT clause.
	Default *string
}

// Literal returns a pointer to s, so it may be used as Column.Default.
func Literal(s string) *string {
	return &s
}

func (c Column) clone() Column {
	if c.Default != nil {
		c.Default = Literal(*c.Default)
	}
	return c
}
