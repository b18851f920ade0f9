// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// Direction tells whether a migration is being applied or reverted.
type Direction int

const (
	Up   Direction = iota // apply a migration
	Down                  // revert a migration
)

// String returns "up" or "down".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses "up" or "down" strings as a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("invalid direction: %q", s)
	}
}

// MarshalText encodes d as its String.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Up, Down:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction: %d", int(d))
	}
}

// UnmarshalText parses text using ParseDirection.
func (d *Direction) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDirection(string(text))
	return err
}

// AppliedMigration is one row of the migrations history table.
type AppliedMigration struct {
	Version   SemVer
	Name      string
	AppliedAt time.Time
}

// MigrationStatus describes a registered migration and reports if and
// when it was applied on a database. AppliedAt is nil for the pending
// migrations.
type MigrationStatus struct {
	Version   SemVer     `json:"version"`
	Name      string     `json:"name"`
	AppliedAt *time.Time `json:"applied_at"`
}
