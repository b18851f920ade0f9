// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Kind identifies a repository type which may be built by
// a RepositoryFactory.
type Kind string

// These constants enumerate the known repository kinds.
const (
	// KindSchema identifies the Schema repository.
	KindSchema Kind = "schema"

	// KindMigrations identifies the Migrations repository.
	KindMigrations Kind = "migrations"
)

// RepositoryFactory builds repositories of a given kind which run
// all of their statements in the tx transaction. The dbc database
// context provides the dialect of the target database.
// An error is returned for unknown kinds.
type RepositoryFactory interface {
	Build(kind Kind, tx Tx, dbc *DatabaseContext) (any, error)
}
