// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"errors"
	"log/slog"
	"time"

	"github.com/momeni/ddlwork/pkg/core/ddl"
)

// Option is a functional option for the migration use case.
type Option func(uc *UseCase) error

// WithLogger option configures the logger which is passed to the
// migration contexts. The slog.Default logger is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(uc *UseCase) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		if uc.logger != nil {
			return errors.New("logger is already configured")
		}
		uc.logger = l
		return nil
	}
}

// WithClock option configures the function which reports the current
// time when an applied migration is recorded.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}

// WithPlanDialect option makes the Plan use case to render statements
// for the d dialect instead of the dialect of the database. It allows
// the SQL scripts of a dialect to be reviewed without connecting to a
// database of that kind. Up and Down use cases are not affected.
func WithPlanDialect(d ddl.Dialect) Option {
	return func(uc *UseCase) error {
		if d == nil {
			return errors.New("dialect is nil")
		}
		if uc.planDialect != nil {
			return errors.New("plan dialect is already configured")
		}
		uc.planDialect = d
		return nil
	}
}
