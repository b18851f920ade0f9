// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core layer error kinds. Sentinel errors
// describe the error taxonomy of the schema migration and unit of work
// use cases, so callers may classify a returned error by errors.Is,
// while the Error struct attaches an HTTP status code to an error so
// the REST adapters can report it without knowing about its kind.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// These sentinel errors are never returned bare. They are wrapped
// with some context about the failed operation and must be checked
// with errors.Is.
var (
	// ErrInvalidConfiguration indicates that a required collaborator
	// was missing when a component was being constructed.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMigrationDefinition indicates that the Up or Down body of a
	// migration could not produce a valid expression. It is fatal for
	// the whole migration run.
	ErrMigrationDefinition = errors.New("migration definition error")

	// ErrMalformedExpression indicates that the attributes of an
	// expression do not suffice for rendering a valid SQL statement.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrContextClosed is returned when an expression is appended to
	// a migration context which has been handed to an executor.
	ErrContextClosed = errors.New("migration context is closed")

	// ErrUnitOfWorkClosed is returned when a committed or rolled back
	// unit of work is used again.
	ErrUnitOfWorkClosed = errors.New("unit of work is closed")

	// ErrUnsupported indicates that a dialect cannot express some
	// schema change.
	ErrUnsupported = errors.New("unsupported by dialect")
)

// InvalidConfiguration returns an ErrInvalidConfiguration error which
// names the missing `name` collaborator.
func InvalidConfiguration(name string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidConfiguration, name)
}

// MigrationDefinition wraps err as an ErrMigrationDefinition error for
// the `name` migration. Both of the ErrMigrationDefinition and err may
// be found by errors.Is afterwards.
func MigrationDefinition(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMigrationDefinition, name, err)
}

// Error attaches an HTTP status code to its wrapped error.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
