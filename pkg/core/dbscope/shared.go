// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dbscope

import (
	"context"
	"fmt"
	"sync"

	"github.com/momeni/ddlwork/pkg/core/repo"
)

// sharedConn is an ambient connection. It joins the transactions which
// are begun while another transaction is active on it.
type sharedConn struct {
	repo.Conn

	mu     sync.Mutex
	active repo.ManagedTx // outermost transaction, nil if there is none
	doomed bool
}

// Begin begins a real transaction or returns a nested view of the
// active one.
func (sc *sharedConn) Begin(ctx context.Context) (repo.ManagedTx, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.active != nil {
		return &nestedTx{ManagedTx: sc.active, sc: sc}, nil
	}
	tx, err := sc.Conn.Begin(ctx)
	if err != nil {
		return nil, err
	}
	sc.active, sc.doomed = tx, false
	return &outerTx{ManagedTx: tx, sc: sc}, nil
}

// Tx runs f in a transaction which is begun by the Begin method, so it
// joins the active transaction (if any) too.
func (sc *sharedConn) Tx(ctx context.Context, f repo.TxHandler) (err error) {
	tx, err := sc.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = tx.Rollback(ctx)
			if err == nil {
				err = fmt.Errorf("panicked: %v", r)
				return
			}
			err = fmt.Errorf("panicked: %v, rollback: %w", r, err)
			return
		}
		if err != nil {
			if err2 := tx.Rollback(ctx); err2 != nil {
				err = fmt.Errorf("handler: %w, rollback: %w", err, err2)
				return
			}
			err = fmt.Errorf("handler: %w", err)
			return
		}
		err = tx.Commit(ctx)
		if err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()
	return f(ctx, tx)
}

// outerTx is the real transaction of a shared connection.
type outerTx struct {
	repo.ManagedTx
	sc *sharedConn
}

func (tx *outerTx) Commit(ctx context.Context) error {
	sc := tx.sc
	sc.mu.Lock()
	defer sc.mu.Unlock()
	doomed := sc.doomed
	sc.active, sc.doomed = nil, false
	if doomed {
		if err := tx.ManagedTx.Rollback(ctx); err != nil {
			return fmt.Errorf("%w, rollback: %w", ErrDoomed, err)
		}
		return ErrDoomed
	}
	return tx.ManagedTx.Commit(ctx)
}

func (tx *outerTx) Rollback(ctx context.Context) error {
	sc := tx.sc
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.active, sc.doomed = nil, false
	return tx.ManagedTx.Rollback(ctx)
}

// nestedTx is a view of the real transaction. Its statements run in
// the real transaction, but it cannot end it.
type nestedTx struct {
	repo.ManagedTx
	sc *sharedConn
}

func (tx *nestedTx) Commit(ctx context.Context) error {
	return nil
}

func (tx *nestedTx) Rollback(ctx context.Context) error {
	sc := tx.sc
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.active == tx.ManagedTx {
		sc.doomed = true
	}
	return nil
}
