// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package uow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// State is the lifecycle state of a UnitOfWork. Committed and
// RolledBack states are terminal.
type State int

// These constants enumerate the UnitOfWork states.
const (
	Open State = iota
	Committed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled-back"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// UnitOfWork is the boundary of one transaction. All repositories
// which are obtained from a UnitOfWork share its transaction and fail
// with cerr.ErrUnitOfWorkClosed after it is committed or rolled back.
// A UnitOfWork is meant to be used by one logical operation, but its
// methods may be called concurrently.
type UnitOfWork struct {
	id  uuid.UUID
	db  repo.Database
	tx  repo.ManagedTx
	rf  repo.RepositoryFactory
	dbc *repo.DatabaseContext

	mu    sync.Mutex
	repos map[repo.Kind]any
	state State
}

// ID returns the unique identifier of u, as reported in logs.
func (u *UnitOfWork) ID() uuid.UUID {
	return u.id
}

// Context returns the database context of u.
func (u *UnitOfWork) Context() *repo.DatabaseContext {
	return u.dbc
}

// State returns the current state of u.
func (u *UnitOfWork) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *UnitOfWork) closedErr(op string) error {
	return fmt.Errorf("%s: %w (%s)", op, cerr.ErrUnitOfWorkClosed, u.state)
}

// Repository returns the repository of the given kind. Repositories are
// built once per kind and unit of work, so repeated calls return the
// same instance.
func (u *UnitOfWork) Repository(kind repo.Kind) (any, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state != Open {
		return nil, u.closedErr(fmt.Sprintf("repository %q", kind))
	}
	if r, ok := u.repos[kind]; ok {
		return r, nil
	}
	r, err := u.rf.Build(kind, guardTx{u: u}, u.dbc)
	if err != nil {
		return nil, fmt.Errorf("building %q repository: %w", kind, err)
	}
	u.repos[kind] = r
	return r, nil
}

// Get returns the repository of the given kind from the u unit of
// work, asserting it to have the T type.
func Get[T any](u *UnitOfWork, kind repo.Kind) (T, error) {
	var zero T
	r, err := u.Repository(kind)
	if err != nil {
		return zero, err
	}
	t, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf(
			"repository %q is %T, not %T", kind, r, (*T)(nil),
		)
	}
	return t, nil
}

// Commit commits the transaction of u and releases its database.
// Afterwards, u is terminal. If the commit fails, u is considered as
// rolled back and the underlying error is returned after wrapping.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	return u.end(ctx, "commit", Committed, u.tx.Commit)
}

// Rollback rolls back the transaction of u, discarding the changes of
// all of its repositories, and releases its database. Afterwards, u is
// terminal.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	return u.end(ctx, "rollback", RolledBack, u.tx.Rollback)
}

func (u *UnitOfWork) end(
	ctx context.Context,
	op string,
	s State,
	f func(context.Context) error,
) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state != Open {
		return u.closedErr(op)
	}
	err := f(ctx)
	if err != nil {
		s = RolledBack
		err = fmt.Errorf("%s: %w", op, err)
	}
	u.state = s
	clear(u.repos)
	if err2 := u.db.Release(ctx); err2 != nil {
		if err == nil {
			err = fmt.Errorf("release: %w", err2)
		} else {
			err = fmt.Errorf("%w, release: %w", err, err2)
		}
	}
	log.Debug(
		ctx, "unit of work is ended",
		log.Stringer("uow", u.id),
		log.Stringer("state", s),
		log.Err("err", err),
	)
	return err
}

// guardTx is the transaction which is passed to the repositories of
// a unit of work. It refuses the statements after the unit of work is
// ended, so a retained repository cannot be used anymore.
type guardTx struct {
	u *UnitOfWork
}

func (g guardTx) check(op string) error {
	u := g.u
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state != Open {
		return u.closedErr(op)
	}
	return nil
}

func (g guardTx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	if err := g.check("exec"); err != nil {
		return 0, err
	}
	return g.u.tx.Exec(ctx, sql, args...)
}

func (g guardTx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	if err := g.check("query"); err != nil {
		return nil, err
	}
	return g.u.tx.Query(ctx, sql, args...)
}

func (g guardTx) IsTx() {
}
