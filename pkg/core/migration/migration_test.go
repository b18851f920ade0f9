// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration_test

import (
	"errors"
	"testing"

	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/migration"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropForeignKeyMigrationStub struct {
	c *migration.Context
}

func (m dropForeignKeyMigrationStub) Up() error {
	return m.c.Append(ddl.DropForeignKey{
		Table: "umbracoUser2app",
		Name:  "FK_umbracoUser2app_umbracoUser_id",
	})
}

func (m dropForeignKeyMigrationStub) Down() error {
	return m.c.Append(ddl.CreateForeignKey{
		Name:           "FK_umbracoUser2app_umbracoUser_id",
		Table:          "umbracoUser2app",
		Columns:        []string{"user"},
		PrimaryTable:   "umbracoUser",
		PrimaryColumns: []string{"id"},
	})
}

type alterUserTableMigrationStub struct {
	c *migration.Context
}

func (m alterUserTableMigrationStub) Up() error {
	exprs := []ddl.Expression{
		ddl.AddColumn{
			Table: "umbracoUser",
			Column: ddl.Column{
				Name: "Birthday", Type: ddl.DateTime, Nullable: true,
			},
		},
		ddl.AlterColumn{
			Table: "umbracoUser",
			Column: ddl.Column{
				Name: "userEmail", Type: ddl.String, Size: 255,
			},
		},
		ddl.AlterColumn{
			Table: "umbracoUser",
			Column: ddl.Column{
				Name: "userLogin", Type: ddl.String, Size: 125,
			},
		},
	}
	for _, e := range exprs {
		if err := m.c.Append(e); err != nil {
			return err
		}
	}
	return nil
}

func (m alterUserTableMigrationStub) Down() error {
	return m.c.Append(ddl.DeleteColumn{
		Table: "umbracoUser", Column: "Birthday",
	})
}

type failingMigrationStub struct {
	c   *migration.Context
	err error
}

func (m failingMigrationStub) Name() string {
	return "failing"
}

func (m failingMigrationStub) Up() error {
	_ = m.c.Append(ddl.DeleteTable{Table: "a"})
	_ = m.c.Append(ddl.DeleteTable{Table: "b"})
	return m.err
}

func (m failingMigrationStub) Down() error {
	// the malformed expression error is ignored deliberately
	_ = m.c.Append(ddl.DropForeignKey{Table: "a"})
	return m.c.Append(ddl.DeleteTable{Table: "b"})
}

type panickingMigrationStub struct {
	c *migration.Context
}

func (m panickingMigrationStub) Up() error {
	_ = m.c.Append(ddl.DeleteTable{Table: "a"})
	panic("broken body")
}

func (m panickingMigrationStub) Down() error {
	return nil
}

func newContext(t *testing.T, d ddl.Dialect) *migration.Context {
	t.Helper()
	c, err := migration.NewContext(d, nil)
	require.NoError(t, err)
	return c
}

func TestDropForeignKeyMigration(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	require.NoError(t, migration.Apply(
		c, dropForeignKeyMigrationStub{c: c}, model.Up,
	))
	require.Len(t, c.Expressions(), 1)

	c.Close()
	stmts, err := c.Render()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ALTER TABLE [umbracoUser2app] DROP CONSTRAINT " +
			"[FK_umbracoUser2app_umbracoUser_id]",
	}, stmts)
}

func TestAlterUserTableMigration(t *testing.T) {
	c := newContext(t, syntax.SQLServer())
	require.NoError(t, migration.Apply(
		c, alterUserTableMigrationStub{c: c}, model.Up,
	))
	assert.Equal(t, []string{
		"AddColumn(umbracoUser)",
		"AlterColumn(umbracoUser)",
		"AlterColumn(umbracoUser)",
	}, migration.Describe(c))
}

func TestContextPreservesAppendOrder(t *testing.T) {
	c := newContext(t, syntax.Postgres())
	var want []ddl.Expression
	for _, tbl := range []string{"c", "a", "b", "a"} {
		e := ddl.DeleteTable{Table: tbl}
		require.NoError(t, c.Append(e))
		want = append(want, e)
	}
	assert.Equal(t, want, c.Expressions())

	got := c.Expressions()
	got[0] = ddl.DeleteTable{Table: "z"}
	assert.Equal(t, want, c.Expressions(), "view must be read-only")
}

func TestContextStoresCopies(t *testing.T) {
	c := newContext(t, syntax.Postgres())
	cols := []string{"email"}
	require.NoError(t, c.Append(ddl.CreateIndex{
		Name: "ix", Table: "users", Columns: cols,
	}))
	cols[0] = "name"
	ix := c.Expressions()[0].(ddl.CreateIndex)
	assert.Equal(t, []string{"email"}, ix.Columns)
}

func TestClosedContext(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	c.Close()
	assert.True(t, c.Closed())
	err := c.Append(ddl.DeleteTable{Table: "t"})
	assert.ErrorIs(t, err, cerr.ErrContextClosed)
	err = migration.Apply(c, dropForeignKeyMigrationStub{c: c}, model.Up)
	assert.ErrorIs(t, err, cerr.ErrContextClosed)
	assert.Zero(t, c.Len())
}

func TestNewContextWithoutDialect(t *testing.T) {
	c, err := migration.NewContext(nil, nil)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, cerr.ErrInvalidConfiguration)
}

func TestAppendNil(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	assert.ErrorIs(t, c.Append(nil), cerr.ErrMalformedExpression)
	assert.Zero(t, c.Len())
}

func TestApplyTruncatesFailedBody(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	require.NoError(t, c.Append(ddl.DeleteTable{Table: "kept"}))

	boom := errors.New("boom")
	err := migration.Apply(c, failingMigrationStub{c: c, err: boom}, model.Up)
	require.ErrorIs(t, err, cerr.ErrMigrationDefinition)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, []string{"DeleteTable(kept)"}, migration.Describe(c))
}

func TestApplyTruncatesPanickedBody(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	require.NoError(t, c.Append(ddl.DeleteTable{Table: "kept"}))

	var err error
	require.NotPanics(t, func() {
		err = migration.Apply(c, panickingMigrationStub{c: c}, model.Up)
	})
	require.ErrorIs(t, err, cerr.ErrMigrationDefinition)
	assert.Contains(t, err.Error(), "panicked: broken body")
	assert.Equal(t, []string{"DeleteTable(kept)"}, migration.Describe(c))
}

func TestApplyDetectsIgnoredMalformedExpression(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	err := migration.Apply(c, failingMigrationStub{c: c}, model.Down)
	require.ErrorIs(t, err, cerr.ErrMigrationDefinition)
	assert.ErrorIs(t, err, cerr.ErrMalformedExpression)
	assert.Zero(t, c.Len())

	// a later successful body is not blamed for the past rejection
	err = migration.Apply(c, dropForeignKeyMigrationStub{c: c}, model.Up)
	assert.NoError(t, err)
}

func TestApplyReinvocationReappends(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	m := dropForeignKeyMigrationStub{c: c}
	require.NoError(t, migration.Apply(c, m, model.Up))
	require.NoError(t, migration.Apply(c, m, model.Up))
	exprs := c.Expressions()
	require.Len(t, exprs, 2)
	assert.Equal(t, exprs[0], exprs[1])
}

func TestApplyInvalidArguments(t *testing.T) {
	c := newContext(t, syntax.SQLCe())
	err := migration.Apply(nil, dropForeignKeyMigrationStub{}, model.Up)
	assert.ErrorIs(t, err, cerr.ErrInvalidConfiguration)
	err = migration.Apply(c, nil, model.Up)
	assert.ErrorIs(t, err, cerr.ErrInvalidConfiguration)
	err = migration.Apply(c, dropForeignKeyMigrationStub{c: c}, 7)
	assert.Error(t, err)
	assert.Zero(t, c.Len())
}

func TestUpDownRoundTrip(t *testing.T) {
	up := newContext(t, syntax.SQLServer())
	down := newContext(t, syntax.SQLServer())
	require.NoError(t, migration.Apply(
		up, alterUserTableMigrationStub{c: up}, model.Up,
	))
	require.NoError(t, migration.Apply(
		down, alterUserTableMigrationStub{c: down}, model.Down,
	))

	add, ok := up.Expressions()[0].(ddl.AddColumn)
	require.True(t, ok)
	require.Len(t, down.Expressions(), 1)
	del, ok := down.Expressions()[0].(ddl.DeleteColumn)
	require.True(t, ok)
	assert.Equal(t, add.Table, del.Table)
	assert.Equal(t, add.Column.Name, del.Column)
}

func TestRenderFailsAtomically(t *testing.T) {
	c := newContext(t, syntax.SQLite())
	require.NoError(t, c.Append(ddl.DeleteTable{Table: "t"}))
	require.NoError(t, c.Append(ddl.DropForeignKey{Table: "t", Name: "fk"}))
	stmts, err := c.Render()
	assert.Nil(t, stmts)
	assert.ErrorIs(t, err, cerr.ErrUnsupported)
}
