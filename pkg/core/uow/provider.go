// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package uow provides the units of work. A UnitOfWork is the boundary
// of one transaction. It wraps a database connection, which is supplied
// by a repo.DatabaseFactory, and builds the repositories of its callers
// using a repo.RepositoryFactory, so they share its transaction.
// Units of work are created by a Provider which is injected with both
// factories and the target database context explicitly.
package uow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Provider creates units of work. It holds no mutable state and so
// its CreateUnitOfWork may be called concurrently.
type Provider struct {
	df  repo.DatabaseFactory
	rf  repo.RepositoryFactory
	dbc *repo.DatabaseContext
}

// NewProvider instantiates a Provider. All arguments are required and
// a cerr.ErrInvalidConfiguration error is returned (without creating
// any Provider) if one of them is nil.
func NewProvider(
	df repo.DatabaseFactory,
	rf repo.RepositoryFactory,
	dbc *repo.DatabaseContext,
) (*Provider, error) {
	switch {
	case df == nil:
		return nil, cerr.InvalidConfiguration("database factory")
	case rf == nil:
		return nil, cerr.InvalidConfiguration("repository factory")
	case dbc == nil:
		return nil, cerr.InvalidConfiguration("database context")
	}
	return &Provider{df: df, rf: rf, dbc: dbc}, nil
}

// DatabaseContext returns the database context of p.
func (p *Provider) DatabaseContext() *repo.DatabaseContext {
	return p.dbc
}

// CreateUnitOfWork obtains a database from the database factory, which
// may be the ambient database of the ctx scope, and begins a unit of
// work on it. If the transaction cannot be begun, the database is
// released and no unit of work is returned.
func (p *Provider) CreateUnitOfWork(ctx context.Context) (*UnitOfWork, error) {
	db, err := p.df.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("obtaining database: %w", err)
	}
	tx, err := db.Conn().Begin(ctx)
	if err != nil {
		if err2 := db.Release(ctx); err2 != nil {
			return nil, fmt.Errorf("begin: %w, release: %w", err, err2)
		}
		return nil, fmt.Errorf("begin: %w", err)
	}
	u := &UnitOfWork{
		id:    uuid.New(),
		db:    db,
		tx:    tx,
		rf:    p.rf,
		dbc:   p.dbc,
		repos: make(map[repo.Kind]any),
	}
	log.Debug(
		ctx, "unit of work is begun",
		log.Stringer("uow", u.id),
		slog.Bool("ambient", db.Ambient()),
	)
	return u, nil
}

// Handler is a function which runs its operations in a unit of work.
type Handler func(ctx context.Context, u *UnitOfWork) error

// Do creates a unit of work and passes it to the f handler. The unit
// of work is committed if f returns nil. Otherwise, or if f panics, it
// is rolled back. Errors of f are returned after being wrapped.
func (p *Provider) Do(ctx context.Context, f Handler) (err error) {
	u, err := p.CreateUnitOfWork(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = u.Rollback(ctx)
			if err == nil {
				err = fmt.Errorf("panicked: %v", r)
				return
			}
			err = fmt.Errorf("panicked: %v, rollback: %w", r, err)
			return
		}
		if err != nil {
			if err2 := u.Rollback(ctx); err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		err = u.Commit(ctx)
	}()
	return f(ctx, u)
}
