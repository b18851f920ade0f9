// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc provides the schema migration use cases.
// A UseCase takes the registered migrations from a migration.Registry
// and applies (or reverts) them on the database of a uow.Provider.
// Each migration is built into a migration.Context and is rendered
// completely before anything is executed. Thereafter, its statements
// and its history record are executed in one unit of work, so either
// all of them take effect or none of them.
// The Plan use case reports the same statements without executing them.
package migrationuc

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/dbscope"
	"github.com/momeni/ddlwork/pkg/core/ddl"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/migration"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
	"github.com/momeni/ddlwork/pkg/core/uow"
)

// Step is one migration which is (or will be) applied or reverted
// together with its rendered statements.
type Step struct {
	Version    model.SemVer    `json:"version"`
	Name       string          `json:"name"`
	Direction  model.Direction `json:"direction"`
	Statements []string        `json:"statements"`
}

// UseCase represents the schema migration use cases.
type UseCase struct {
	reg *migration.Registry
	p   *uow.Provider

	logger      *slog.Logger
	now         func() time.Time
	planDialect ddl.Dialect
}

// New instantiates a migration use case for the migrations of the reg
// registry and the database of the p units of work provider.
// Optional parameters are passed as a series of functional options.
func New(
	reg *migration.Registry, p *uow.Provider, opts ...Option,
) (*UseCase, error) {
	switch {
	case reg == nil:
		return nil, cerr.InvalidConfiguration("migrations registry")
	case p == nil:
		return nil, cerr.InvalidConfiguration("unit of work provider")
	}
	uc := &UseCase{reg: reg, p: p}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.logger == nil {
		uc.logger = slog.Default()
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.planDialect == nil {
		uc.planDialect = p.DatabaseContext().Dialect
	}
	if uc.planDialect == nil {
		return nil, cerr.InvalidConfiguration("dialect")
	}
	return uc, nil
}

// Plan renders the migrations which should be applied (for model.Up)
// or reverted (for model.Down) in order to reach the target version,
// without executing them. The database is only read and Plan leaves no
// trace on it, not even the migrations history table.
// A zero target stands for the latest registered version when dir is
// model.Up, and for an empty schema when dir is model.Down.
func (uc *UseCase) Plan(
	ctx context.Context, dir model.Direction, target model.SemVer,
) ([]Step, error) {
	ms, err := uc.applied(ctx, false)
	if err != nil {
		return nil, err
	}
	ds, err := uc.descriptors(ms, dir, target)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(ds))
	for _, d := range ds {
		s, err := uc.render(d, dir, uc.planDialect)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Up applies the pending migrations whose versions are not greater than
// target, in their ascending order. A zero target stands for the latest
// registered version. Each migration is applied in its own unit of
// work and the first failure aborts the run. The successfully applied
// steps are returned in both cases.
func (uc *UseCase) Up(ctx context.Context, target model.SemVer) ([]Step, error) {
	return uc.run(ctx, model.Up, target)
}

// Down reverts the applied migrations whose versions are greater than
// target, in their descending order. A zero target reverts all of them.
// Before reverting a migration, it is checked to be the last applied
// one, or a cerr.MismatchingSemVerError is returned. The successfully
// reverted steps are returned in all cases.
func (uc *UseCase) Down(ctx context.Context, target model.SemVer) ([]Step, error) {
	return uc.run(ctx, model.Down, target)
}

// Status lists the registered migrations, and the applied migrations
// which are not registered anymore, by their version order. Applied
// migrations have their AppliedAt field filled.
func (uc *UseCase) Status(ctx context.Context) ([]model.MigrationStatus, error) {
	ms, err := uc.applied(ctx, false)
	if err != nil {
		return nil, err
	}
	var sts []model.MigrationStatus
	for _, d := range uc.reg.All() {
		sts = append(sts, model.MigrationStatus{
			Version: d.Version, Name: d.Name,
		})
	}
	for _, m := range ms {
		i, found := slices.BinarySearchFunc(
			sts, m.Version,
			func(st model.MigrationStatus, v model.SemVer) int {
				return st.Version.Compare(v)
			},
		)
		if !found {
			sts = slices.Insert(sts, i, model.MigrationStatus{
				Version: m.Version, Name: m.Name,
			})
		}
		at := m.AppliedAt
		sts[i].AppliedAt = &at
	}
	return sts, nil
}

func (uc *UseCase) run(
	ctx context.Context, dir model.Direction, target model.SemVer,
) ([]Step, error) {
	ctx, end := dbscope.Begin(ctx)
	steps, err := uc.runInScope(ctx, dir, target)
	if err2 := end(); err2 != nil {
		if err == nil {
			return steps, err2
		}
		return steps, fmt.Errorf("%w, ending scope: %w", err, err2)
	}
	return steps, err
}

func (uc *UseCase) runInScope(
	ctx context.Context, dir model.Direction, target model.SemVer,
) ([]Step, error) {
	ms, err := uc.applied(ctx, true)
	if err != nil {
		return nil, err
	}
	ds, err := uc.descriptors(ms, dir, target)
	if err != nil {
		return nil, err
	}
	d := uc.p.DatabaseContext().Dialect
	var steps []Step
	for _, desc := range ds {
		s, err := uc.render(desc, dir, d)
		if err != nil {
			return steps, err
		}
		if err := uc.execute(ctx, s); err != nil {
			return steps, fmt.Errorf(
				"%s v%s (%s): %w", dir, s.Version, s.Name, err,
			)
		}
		steps = append(steps, s)
	}
	log.Info(
		ctx, "migration run is completed",
		log.Stringer("direction", dir),
		slog.Int("count", len(steps)),
	)
	return steps, nil
}

// applied reads the migrations history. The history table is created
// if it is missing and the ensured table is kept only if persist is
// true.
func (uc *UseCase) applied(
	ctx context.Context, persist bool,
) (ms []model.AppliedMigration, err error) {
	u, err := uc.p.CreateUnitOfWork(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating unit of work: %w", err)
	}
	defer func() {
		var err2 error
		if persist && err == nil {
			err2 = u.Commit(ctx)
		} else {
			err2 = u.Rollback(ctx)
		}
		if err2 != nil {
			if err == nil {
				err = err2
				return
			}
			err = fmt.Errorf("%w, ending unit of work: %w", err, err2)
		}
	}()
	mr, err := uow.Get[repo.Migrations](u, repo.KindMigrations)
	if err != nil {
		return nil, err
	}
	if err = mr.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensuring history table: %w", err)
	}
	ms, err = mr.Applied(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing applied migrations: %w", err)
	}
	return ms, nil
}

// descriptors finds the descriptors which must be applied (or reverted)
// in order to reach target, in their execution order.
func (uc *UseCase) descriptors(
	ms []model.AppliedMigration, dir model.Direction, target model.SemVer,
) ([]migration.Descriptor, error) {
	if !target.IsZero() {
		if _, ok := uc.reg.Find(target); !ok {
			return nil, cerr.NotFound(fmt.Errorf(
				"target v%s is not registered", target,
			))
		}
	}
	vs := make([]model.SemVer, 0, len(ms))
	for _, m := range ms {
		vs = append(vs, m.Version)
	}
	switch dir {
	case model.Up:
		return uc.reg.Pending(vs, target), nil
	case model.Down:
		var ds []migration.Descriptor
		for _, v := range slices.Backward(vs) {
			if !target.Less(v) {
				break
			}
			d, ok := uc.reg.Find(v)
			if !ok {
				return nil, cerr.NotFound(fmt.Errorf(
					"applied v%s is not registered", v,
				))
			}
			ds = append(ds, d)
		}
		return ds, nil
	default:
		return nil, fmt.Errorf("invalid direction: %s", dir)
	}
}

func (uc *UseCase) render(
	desc migration.Descriptor, dir model.Direction, d ddl.Dialect,
) (Step, error) {
	s := Step{Version: desc.Version, Name: desc.Name, Direction: dir}
	c, err := migration.NewContext(d, uc.logger)
	if err != nil {
		return s, err
	}
	if err = migration.Apply(c, desc.New(c), dir); err != nil {
		return s, fmt.Errorf("building v%s: %w", desc.Version, err)
	}
	c.Close()
	s.Statements, err = c.Render()
	if err != nil {
		return s, fmt.Errorf("rendering v%s: %w", desc.Version, err)
	}
	return s, nil
}

func (uc *UseCase) execute(ctx context.Context, s Step) error {
	return uc.p.Do(ctx, func(ctx context.Context, u *uow.UnitOfWork) error {
		mr, err := uow.Get[repo.Migrations](u, repo.KindMigrations)
		if err != nil {
			return err
		}
		sr, err := uow.Get[repo.Schema](u, repo.KindSchema)
		if err != nil {
			return err
		}
		if s.Direction == model.Down {
			if err := lastApplied(ctx, mr, s.Version); err != nil {
				return err
			}
		}
		if err := sr.Exec(ctx, s.Statements...); err != nil {
			return err
		}
		if s.Direction == model.Down {
			return mr.Remove(ctx, s.Version)
		}
		return mr.Record(ctx, model.AppliedMigration{
			Version:   s.Version,
			Name:      s.Name,
			AppliedAt: uc.now(),
		})
	})
}

// lastApplied ensures that v is the last applied migration.
func lastApplied(ctx context.Context, mr repo.Migrations, v model.SemVer) error {
	ms, err := mr.Applied(ctx)
	if err != nil {
		return fmt.Errorf("listing applied migrations: %w", err)
	}
	var last model.SemVer
	if len(ms) > 0 {
		last = ms[len(ms)-1].Version
	}
	if last != v {
		return cerr.MismatchingSemVer(v, last)
	}
	return nil
}
