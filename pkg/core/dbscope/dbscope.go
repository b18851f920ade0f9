// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbscope implements the repo.DatabaseFactory interface with
// ambient connections. A logical scope, such as one inbound request or
// one migration run, is started by the Begin function and is carried by
// its returned context. Within a scope, all Database calls of a Factory
// share one connection which is acquired lazily and released when the
// scope ends. Outside of any scope, each Database call acquires a fresh
// connection which is released by its Database.Release method.
//
// The shared connection joins nested transactions. The first Begin on
// it starts a real transaction and the following Begin calls (until it
// ends) return nested views of that transaction. Committing a nested
// view has no effect, while rolling it back dooms the real transaction,
// so its final Commit rolls back and reports ErrDoomed instead.
package dbscope

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/momeni/ddlwork/pkg/core/cerr"
	"github.com/momeni/ddlwork/pkg/core/repo"
)

// ErrDoomed is returned by the Commit of an ambient transaction when
// one of its nested transactions was rolled back.
var ErrDoomed = errors.New("transaction is doomed by a nested rollback")

// ErrScopeEnded is returned when a database is asked from a scope which
// has already ended.
var ErrScopeEnded = errors.New("database scope has ended")

type scopeKey struct{}

// scope holds the ambient connections of one logical scope, one per
// Factory, so factories of distinct pools do not share connections.
type scope struct {
	mu    sync.Mutex
	conns map[*Factory]*ambient
	ended bool
}

type ambient struct {
	conn    *sharedConn
	release repo.ReleaseFunc
}

// EndFunc ends a scope, releasing its ambient connections.
type EndFunc func() error

// Begin starts a new logical scope and returns its context. The end
// function must be called when the scope is finished. If ctx carries
// a scope already, it is returned intact with a no-op end function,
// so the outermost scope owns the ambient connections.
func Begin(ctx context.Context) (context.Context, EndFunc) {
	if _, ok := ctx.Value(scopeKey{}).(*scope); ok {
		return ctx, func() error { return nil }
	}
	s := &scope{conns: make(map[*Factory]*ambient)}
	return context.WithValue(ctx, scopeKey{}, s), s.end
}

// InScope reports whether ctx carries a logical scope.
func InScope(ctx context.Context) bool {
	_, ok := ctx.Value(scopeKey{}).(*scope)
	return ok
}

func (s *scope) end() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil
	}
	s.ended = true
	var errs []error
	for _, a := range s.conns {
		if err := a.release(); err != nil {
			errs = append(errs, err)
		}
	}
	clear(s.conns)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("releasing ambient connections: %w", err)
	}
	return nil
}

// Factory is a repo.DatabaseFactory which takes connections from
// a pool. It holds no mutable state and is safe for concurrent use.
type Factory struct {
	pool repo.Pool
}

// NewFactory instantiates a Factory for the p connections pool.
// The cerr.ErrInvalidConfiguration is returned if p is nil.
func NewFactory(p repo.Pool) (*Factory, error) {
	if p == nil {
		return nil, cerr.InvalidConfiguration("connections pool")
	}
	return &Factory{pool: p}, nil
}

// Database returns the ambient database of the ctx scope, acquiring
// its connection if this is the first call in that scope. Without a
// scope, a fresh database is returned.
func (f *Factory) Database(ctx context.Context) (repo.Database, error) {
	s, ok := ctx.Value(scopeKey{}).(*scope)
	if !ok {
		c, release, err := f.pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		return &database{conn: c, release: release}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return nil, ErrScopeEnded
	}
	a, ok := s.conns[f]
	if !ok {
		c, release, err := f.pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		a = &ambient{conn: &sharedConn{Conn: c}, release: release}
		s.conns[f] = a
	}
	return &database{conn: a.conn, ambient: true}, nil
}

// database implements repo.Database. Releasing it twice is a no-op.
type database struct {
	conn    repo.Conn
	ambient bool

	once    sync.Once
	release repo.ReleaseFunc
}

func (db *database) Conn() repo.Conn {
	return db.conn
}

func (db *database) Ambient() bool {
	return db.ambient
}

func (db *database) Release(ctx context.Context) (err error) {
	if db.ambient {
		return nil
	}
	db.once.Do(func() {
		err = db.release()
	})
	return err
}
