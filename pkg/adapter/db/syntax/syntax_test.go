// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package syntax_test

import (
	"testing"

	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These conversions ensure that all dialects implement ddl.Dialect.
var (
	_ ddl.Dialect = syntax.SQLCe()
	_ ddl.Dialect = syntax.SQLServer()
	_ ddl.Dialect = syntax.Postgres()
	_ ddl.Dialect = syntax.SQLite()
)

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "[users]", syntax.SQLCe().QuoteIdentifier("users"))
	assert.Equal(t, "[a]]b]", syntax.SQLServer().QuoteIdentifier("a]b"))
	assert.Equal(t, `"users"`, syntax.Postgres().QuoteIdentifier("users"))
	assert.Equal(t, `"a""b"`, syntax.SQLite().QuoteIdentifier(`a"b`))
}

func TestColumnType(t *testing.T) {
	cases := []struct {
		d   *syntax.Dialect
		c   ddl.Column
		typ string
	}{
		{syntax.SQLServer(), ddl.Column{Type: ddl.String}, "NVARCHAR(255)"},
		{syntax.SQLServer(), ddl.Column{Type: ddl.Text}, "NVARCHAR(MAX)"},
		{syntax.SQLCe(), ddl.Column{Type: ddl.Text}, "NTEXT"},
		{syntax.SQLCe(), ddl.Column{Type: ddl.Binary}, "IMAGE"},
		{
			syntax.SQLServer(),
			ddl.Column{Type: ddl.Binary, Size: 16}, "VARBINARY(16)",
		},
		{
			syntax.SQLServer(),
			ddl.Column{Type: ddl.Int32, Identity: true}, "INT IDENTITY(1,1)",
		},
		{
			syntax.Postgres(),
			ddl.Column{Type: ddl.Decimal, Precision: 10, Scale: 3},
			"NUMERIC(10,3)",
		},
		{syntax.Postgres(), ddl.Column{Type: ddl.Decimal}, "NUMERIC(18,2)"},
		{syntax.Postgres(), ddl.Column{Type: ddl.GUID}, "UUID"},
		{syntax.SQLite(), ddl.Column{Type: ddl.Bool}, "INTEGER"},
		{
			syntax.SQLite(),
			ddl.Column{Type: ddl.Int64, Identity: true}, "INTEGER",
		},
	}
	for _, tc := range cases {
		typ, err := tc.d.ColumnType(tc.c)
		require.NoError(t, err, tc.d.Name())
		assert.Equal(t, tc.typ, typ, tc.d.Name())
	}

	_, err := syntax.SQLServer().ColumnType(ddl.Column{Type: ddl.DataType(99)})
	assert.ErrorIs(t, err, cerr.ErrUnsupported)
	_, err = syntax.SQLite().ColumnType(
		ddl.Column{Type: ddl.GUID, Identity: true},
	)
	assert.ErrorIs(t, err, cerr.ErrUnsupported)
}

func TestSupports(t *testing.T) {
	assert.True(t, syntax.SQLCe().Supports(ddl.FeatureAlterConstraint))
	assert.False(t, syntax.SQLCe().Supports(
		ddl.FeatureRenameProcedure|ddl.FeatureRenameColumnProcedure,
	))
	assert.True(t, syntax.SQLServer().Supports(
		ddl.FeatureRenameProcedure|ddl.FeatureRenameColumnProcedure,
	))
	assert.False(t, syntax.SQLite().Supports(ddl.FeatureAlterColumn))
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]string{
		"sqlce":      syntax.SQLCeName,
		"SQLServer":  syntax.SQLServerName,
		"mssql":      syntax.SQLServerName,
		"postgresql": syntax.PostgresName,
		"sqlite":     syntax.SQLiteName,
	} {
		d, err := syntax.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, d.Name())
	}
	_, err := syntax.Lookup("oracle")
	assert.Error(t, err)
}
