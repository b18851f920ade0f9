// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// TxHandler is a function which runs its statements in the given Tx.
type TxHandler func(context.Context, Tx) error

// Conn represents one database connection which is taken from a Pool.
// It is unsafe to be used concurrently.
//
// Statements may be executed directly on a Conn (in the auto-commit
// mode) or in a transaction. The Tx method begins a transaction, runs
// a handler in it, and commits it if the handler returns no error (or
// rolls it back otherwise). The Begin method begins a transaction whose
// end is controlled by the caller instead.
type Conn interface {
	Queryer

	// Tx begins a transaction and passes it to the handler. It is
	// committed if handler returns nil, otherwise, it is rolled back.
	// A panicking handler rolls the transaction back too.
	Tx(ctx context.Context, handler TxHandler) error

	// Begin begins a transaction and returns it. Caller must call
	// either its Commit or Rollback method exactly once.
	Begin(ctx context.Context) (ManagedTx, error)

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
