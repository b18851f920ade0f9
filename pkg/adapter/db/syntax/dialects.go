// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package syntax

import "github.com/momeni/ddlwork/pkg/core/ddl"

const identitySuffix = " IDENTITY(1,1)"

// SQLCe returns the compact edition dialect. It quotes by brackets,
// cannot rename columns, and drops indices by their qualified names.
func SQLCe() *Dialect {
	return &Dialect{
		name:  SQLCeName,
		open:  "[",
		close: "]",
		features: ddl.FeatureAlterConstraint | ddl.FeatureAlterColumn |
			ddl.FeatureRenameProcedure | ddl.FeatureDropIndexQualified,
		columnType: func(c ddl.Column) (string, error) {
			t, err := serverType(c, "NTEXT", "IMAGE")
			if err == nil && c.Identity {
				t += identitySuffix
			}
			return t, err
		},
	}
}

// SQLServer returns the full server dialect. It quotes by brackets and
// renames tables and columns by the sp_rename stored procedure.
func SQLServer() *Dialect {
	return &Dialect{
		name:  SQLServerName,
		open:  "[",
		close: "]",
		features: ddl.FeatureAlterConstraint | ddl.FeatureAlterColumn |
			ddl.FeatureRenameProcedure | ddl.FeatureRenameColumnProcedure |
			ddl.FeatureDropIndexOnTable,
		columnType: func(c ddl.Column) (string, error) {
			t, err := serverType(c, "NVARCHAR(MAX)", "VARBINARY(MAX)")
			if err == nil && c.Identity {
				t += identitySuffix
			}
			return t, err
		},
	}
}

func serverType(c ddl.Column, text, blob string) (string, error) {
	switch c.Type {
	case ddl.String:
		return sized("NVARCHAR", c.Size, 255), nil
	case ddl.Text:
		return text, nil
	case ddl.Int32:
		return "INT", nil
	case ddl.Int64:
		return "BIGINT", nil
	case ddl.Bool:
		return "BIT", nil
	case ddl.DateTime:
		return "DATETIME", nil
	case ddl.Decimal:
		return decimal("DECIMAL", c), nil
	case ddl.GUID:
		return "UNIQUEIDENTIFIER", nil
	case ddl.Binary:
		if c.Size > 0 {
			return sized("VARBINARY", c.Size, 0), nil
		}
		return blob, nil
	default:
		return "", unknownType(c)
	}
}

// Postgres returns the PostgreSQL dialect.
func Postgres() *Dialect {
	return &Dialect{
		name:  PostgresName,
		open:  `"`,
		close: `"`,
		features: ddl.FeatureAlterConstraint | ddl.FeatureAlterColumn |
			ddl.FeatureAlterColumnTypeClause | ddl.FeatureAddColumnKeyword |
			ddl.FeatureRenameClause,
		columnType: func(c ddl.Column) (string, error) {
			t, err := postgresType(c)
			if err == nil && c.Identity {
				t += " GENERATED BY DEFAULT AS IDENTITY"
			}
			return t, err
		},
	}
}

func postgresType(c ddl.Column) (string, error) {
	switch c.Type {
	case ddl.String:
		return sized("VARCHAR", c.Size, 255), nil
	case ddl.Text:
		return "TEXT", nil
	case ddl.Int32:
		return "INTEGER", nil
	case ddl.Int64:
		return "BIGINT", nil
	case ddl.Bool:
		return "BOOLEAN", nil
	case ddl.DateTime:
		return "TIMESTAMP", nil
	case ddl.Decimal:
		return decimal("NUMERIC", c), nil
	case ddl.GUID:
		return "UUID", nil
	case ddl.Binary:
		return "BYTEA", nil
	default:
		return "", unknownType(c)
	}
}

// SQLite returns the SQLite dialect. It can neither add nor drop the
// constraints of an existing table and cannot alter columns. Integer
// identity columns need no suffix, because an INTEGER primary key is
// an alias of the row identifier.
func SQLite() *Dialect {
	return &Dialect{
		name:  SQLiteName,
		open:  `"`,
		close: `"`,
		features: ddl.FeatureAddColumnKeyword | ddl.FeatureRenameClause,
		columnType: func(c ddl.Column) (string, error) {
			switch c.Type {
			case ddl.String:
				return sized("VARCHAR", c.Size, 255), nil
			case ddl.Text, ddl.GUID:
				return "TEXT", nil
			case ddl.Int32, ddl.Int64, ddl.Bool:
				return "INTEGER", nil
			case ddl.DateTime:
				return "DATETIME", nil
			case ddl.Decimal:
				return decimal("NUMERIC", c), nil
			case ddl.Binary:
				return "BLOB", nil
			default:
				return "", unknownType(c)
			}
		},
	}
}
