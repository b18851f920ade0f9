// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repofactory_test

import (
	"testing"

	"github.com/momeni/ddlwork/internal/test/repomock"
	"github.com/momeni/ddlwork/pkg/adapter/db/migrationsrp"
	"github.com/momeni/ddlwork/pkg/adapter/db/repofactory"
	"github.com/momeni/ddlwork/pkg/adapter/db/schemarp"
	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	tx := repomock.NewMockManagedTx(ctrl)
	dbc := &repo.DatabaseContext{Name: "test", Dialect: syntax.SQLite()}
	f := repofactory.New()

	r, err := f.Build(repo.KindSchema, tx, dbc)
	require.NoError(t, err)
	assert.IsType(t, &schemarp.Repo{}, r)

	r, err = f.Build(repo.KindMigrations, tx, dbc)
	require.NoError(t, err)
	assert.IsType(t, &migrationsrp.Repo{}, r)

	_, err = f.Build(repo.KindMigrations, tx, &repo.DatabaseContext{})
	assert.ErrorIs(t, err, cerr.ErrInvalidConfiguration)

	_, err = f.Build(repo.KindSchema, nil, dbc)
	assert.ErrorIs(t, err, cerr.ErrInvalidConfiguration)

	_, err = f.Build(repo.Kind("cars"), tx, dbc)
	assert.ErrorContains(t, err, `unknown repository kind: "cars"`)
}
