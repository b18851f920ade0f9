// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/repo"
)

// Pool represents a SQLite connections pool. It embeds *sql.DB and
// is safe to be used concurrently.
type Pool struct {
	*sql.DB
}

// NewPool opens the path database file, creating it if it does not
// exist, and tests it by acquiring one connection.
func NewPool(ctx context.Context, path string) (*Pool, error) {
	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	pool := &Pool{DB: db}
	if err = db.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// Conn acquires a connection, passes it to the f handler, and releases
// it when f returns.
func (p *Pool) Conn(ctx context.Context, f repo.ConnHandler) (err error) {
	c, release, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := release(); err2 != nil && err == nil {
			err = fmt.Errorf("releasing connection: %w", err2)
		}
	}()
	return f(ctx, c)
}

// Acquire acquires a dedicated connection from the pool. The returned
// release function must be called in order to return it to the pool.
func (p *Pool) Acquire(ctx context.Context) (
	repo.Conn, repo.ReleaseFunc, error,
) {
	sc, err := p.DB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquiring connection: %w", err)
	}
	return &Conn{Conn: sc}, sc.Close, nil
}
