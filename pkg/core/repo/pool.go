// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler is a function which uses the given Conn.
type ConnHandler func(context.Context, Conn) error

// ReleaseFunc returns an acquired connection to its pool.
type ReleaseFunc func() error

// Pool represents a database connections pool. It is safe to be used
// concurrently.
type Pool interface {
	// Conn acquires a connection, passes it to the handler, and
	// releases it when handler returns.
	Conn(ctx context.Context, handler ConnHandler) error

	// Acquire acquires a dedicated connection. Caller must call the
	// returned ReleaseFunc exactly once, when Conn is not needed
	// anymore, in order to return it to the pool.
	Acquire(ctx context.Context) (Conn, ReleaseFunc, error)
}
