// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration_test

import (
	"testing"

	"github.com/momeni/ddlwork/pkg/core/migration"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(v model.SemVer, name string) migration.Descriptor {
	return migration.Descriptor{
		Version: v,
		Name:    name,
		New: func(c *migration.Context) migration.Migration {
			return dropForeignKeyMigrationStub{c: c}
		},
	}
}

func versions(ds []migration.Descriptor) []model.SemVer {
	vs := make([]model.SemVer, 0, len(ds))
	for _, d := range ds {
		vs = append(vs, d.Version)
	}
	return vs
}

func TestRegistry(t *testing.T) {
	r, err := migration.NewRegistry(
		stub(model.SemVer{1, 1, 0}, "second"),
		stub(model.SemVer{1, 0, 0}, "first"),
		stub(model.SemVer{2, 0, 0}, "third"),
	)
	require.NoError(t, err)

	assert.Equal(t, []model.SemVer{
		{1, 0, 0}, {1, 1, 0}, {2, 0, 0},
	}, versions(r.All()))

	d, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, "third", d.Name)

	d, ok = r.Find(model.SemVer{1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, "second", d.Name)
	_, ok = r.Find(model.SemVer{1, 2, 0})
	assert.False(t, ok)

	assert.Equal(t, []model.SemVer{{1, 1, 0}, {2, 0, 0}}, versions(
		r.Between(model.SemVer{1, 0, 0}, model.SemVer{2, 0, 0}),
	))
	assert.Empty(t, r.Between(model.SemVer{2, 0, 0}, model.SemVer{3, 0, 0}))

	applied := []model.SemVer{{1, 0, 0}}
	assert.Equal(t, []model.SemVer{{1, 1, 0}, {2, 0, 0}}, versions(
		r.Pending(applied, model.SemVer{}),
	))
	assert.Equal(t, []model.SemVer{{1, 1, 0}}, versions(
		r.Pending(applied, model.SemVer{1, 1, 0}),
	))
}

func TestInvalidRegistry(t *testing.T) {
	cases := [][]migration.Descriptor{
		{stub(model.SemVer{}, "zero")},
		{stub(model.SemVer{1, 0, 0}, "")},
		{{Version: model.SemVer{1, 0, 0}, Name: "nil-ctor"}},
		{
			stub(model.SemVer{1, 0, 0}, "a"),
			stub(model.SemVer{1, 0, 0}, "b"),
		},
	}
	for _, ds := range cases {
		r, err := migration.NewRegistry(ds...)
		assert.Nil(t, r)
		assert.Error(t, err)
	}

	r, err := migration.NewRegistry()
	require.NoError(t, err)
	_, ok := r.Latest()
	assert.False(t, ok)
	assert.Empty(t, r.Pending(nil, model.SemVer{}))
}
