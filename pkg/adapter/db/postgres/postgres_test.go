// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/ddlwork/internal/test/dbcontainer"
	catalog "github.com/momeni/ddlwork/pkg/adapter/db/migration"
	"github.com/momeni/ddlwork/pkg/adapter/db/postgres"
	"github.com/momeni/ddlwork/pkg/adapter/db/repofactory"
	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/core/dbscope"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
	"github.com/momeni/ddlwork/pkg/core/uow"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"github.com/stretchr/testify/suite"
)

type IntegrationPostgresTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	P    *uow.Provider
	UC   *migrationuc.UseCase
}

func TestIntegrationPostgresTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationPostgresTestSuite{
		Ctx:  ctx,
		Pool: pool,
	})
}

func (ipts *IntegrationPostgresTestSuite) SetupSuite() {
	df, err := dbscope.NewFactory(ipts.Pool)
	ipts.Require().NoError(err)
	dbc := &repo.DatabaseContext{Name: "test", Dialect: syntax.Postgres()}
	ipts.P, err = uow.NewProvider(df, repofactory.New(), dbc)
	ipts.Require().NoError(err)
	reg, err := catalog.New()
	ipts.Require().NoError(err)
	ipts.UC, err = migrationuc.New(reg, ipts.P)
	ipts.Require().NoError(err)
}

// tables lists the table names of the current schema, sorted by name.
func (ipts *IntegrationPostgresTestSuite) tables() []string {
	var names []string
	err := ipts.Pool.Conn(
		ipts.Ctx, func(ctx context.Context, c repo.Conn) error {
			rows, err := c.Query(ctx, `SELECT table_name
FROM information_schema.tables
WHERE table_schema = current_schema()
ORDER BY table_name`)
			if err != nil {
				return err
			}
			defer rows.Close()
			for rows.Next() {
				var n string
				if err := rows.Scan(&n); err != nil {
					return err
				}
				names = append(names, n)
			}
			return rows.Err()
		},
	)
	ipts.Require().NoError(err)
	return names
}

func (ipts *IntegrationPostgresTestSuite) exec(sql string) error {
	return ipts.P.Do(
		ipts.Ctx, func(ctx context.Context, u *uow.UnitOfWork) error {
			s, err := uow.Get[repo.Schema](u, repo.KindSchema)
			if err != nil {
				return err
			}
			return s.Exec(ctx, sql)
		},
	)
}

func (ipts *IntegrationPostgresTestSuite) TestMigrationsRoundTrip() {
	steps, err := ipts.UC.Up(ipts.Ctx, model.SemVer{1, 0, 0})
	ipts.Require().NoError(err)
	ipts.Require().Len(steps, 1)
	ipts.Equal(
		[]string{catalog.User2AppTable, "ddlworkMigration", catalog.UsersTable},
		ipts.tables(),
	)

	ipts.Require().NoError(ipts.exec(
		`INSERT INTO "users" ("userName", "email") VALUES ('a', 'a@x.org')`,
	))
	err = ipts.exec(
		`INSERT INTO "users" ("userName", "email") VALUES ('b', 'a@x.org')`,
	)
	ipts.True(postgres.IsUniqueViolation(err), "unique email: %v", err)
	err = ipts.exec(`INSERT INTO "user2app" ("userId", "app") VALUES (99, 'x')`)
	ipts.Error(err, "foreign key must be enforced")

	steps, err = ipts.UC.Up(ipts.Ctx, model.SemVer{})
	ipts.Require().NoError(err)
	ipts.Len(steps, 2)
	ipts.Equal(
		[]string{"ddlworkMigration", catalog.UserAppTable, catalog.UsersTable},
		ipts.tables(),
	)

	sts, err := ipts.UC.Status(ipts.Ctx)
	ipts.Require().NoError(err)
	for _, st := range sts {
		ipts.NotNil(st.AppliedAt, st.Version.String())
	}

	steps, err = ipts.UC.Down(ipts.Ctx, model.SemVer{})
	ipts.Require().NoError(err)
	ipts.Len(steps, 3)
	ipts.Equal([]string{"ddlworkMigration"}, ipts.tables())
}

func (ipts *IntegrationPostgresTestSuite) TestFailedUnitOfWorkLeavesNoTable() {
	err := ipts.P.Do(
		ipts.Ctx, func(ctx context.Context, u *uow.UnitOfWork) error {
			s, err := uow.Get[repo.Schema](u, repo.KindSchema)
			if err != nil {
				return err
			}
			return s.Exec(ctx,
				`CREATE TABLE "transient" ("id" INTEGER NOT NULL)`,
				`CREATE TABLE "transient" ("id" INTEGER NOT NULL)`,
			)
		},
	)
	ipts.Error(err)
	ipts.NotContains(ipts.tables(), "transient")
}
