// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationsrp_test

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/momeni/ddlwork/pkg/adapter/db/migrationsrp"
	"github.com/momeni/ddlwork/pkg/adapter/db/sqlite"
	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTx(t *testing.T, f func(ctx context.Context, r *migrationsrp.Repo)) {
	t.Helper()
	ctx := context.Background()
	pool, err := sqlite.NewPool(ctx, filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	defer pool.Close()
	err = pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			f(ctx, migrationsrp.New(tx, syntax.SQLite()))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestHistory(t *testing.T) {
	inTx(t, func(ctx context.Context, r *migrationsrp.Repo) {
		require.NoError(t, r.EnsureTable(ctx))
		require.NoError(t, r.EnsureTable(ctx), "must be idempotent")

		ms, err := r.Applied(ctx)
		require.NoError(t, err)
		assert.Empty(t, ms)

		at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		for _, m := range []model.AppliedMigration{
			{Version: model.SemVer{1, 10, 0}, Name: "ten", AppliedAt: at},
			{Version: model.SemVer{1, 2, 0}, Name: "two", AppliedAt: at},
		} {
			require.NoError(t, r.Record(ctx, m))
		}
		ms, err = r.Applied(ctx)
		require.NoError(t, err)
		require.Len(t, ms, 2)
		assert.Equal(t, model.SemVer{1, 2, 0}, ms[0].Version, "semver order")
		assert.Equal(t, "ten", ms[1].Name)
		assert.True(t, at.Equal(ms[1].AppliedAt), ms[1].AppliedAt)

		err = r.Record(ctx, model.AppliedMigration{
			Version: model.SemVer{1, 2, 0}, Name: "again", AppliedAt: at,
		})
		var ce *cerr.Error
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, http.StatusConflict, ce.HTTPStatusCode)

		require.NoError(t, r.Remove(ctx, model.SemVer{1, 10, 0}))
		err = r.Remove(ctx, model.SemVer{1, 10, 0})
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, http.StatusNotFound, ce.HTTPStatusCode)
	})
}

func ExampleHistoryTable() {
	stmt, _ := ddl.Render(syntax.Postgres(), migrationsrp.HistoryTable())
	fmt.Println(stmt)
	// Output:
	// CREATE TABLE "ddlworkMigration" ("version" VARCHAR(32) NOT NULL, "name" VARCHAR(255) NOT NULL, "appliedAt" TIMESTAMP NOT NULL, CONSTRAINT "PK_ddlworkMigration" PRIMARY KEY ("version"))
}
