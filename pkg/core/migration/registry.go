// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"errors"
	"fmt"
	"slices"

	"github.com/momeni/ddlwork/pkg/core/model"
)

// Descriptor describes a registered migration. Version is the schema
// version which is produced by its Up method and Name is a short human
// readable name which is recorded in the migrations history.
// The New function creates a fresh Migration instance for a context.
type Descriptor struct {
	Version model.SemVer
	Name    string
	New     func(c *Context) Migration
}

// Registry is an immutable and ordered set of migration descriptors.
// Descriptors are sorted by their versions and no two of them may have
// the same version.
type Registry struct {
	descs []Descriptor
}

// NewRegistry validates and sorts the ds descriptors and returns
// their registry. Descriptors must have non-zero and unique versions,
// non-empty names, and non-nil New functions.
func NewRegistry(ds ...Descriptor) (*Registry, error) {
	descs := slices.Clone(ds)
	slices.SortFunc(descs, func(a, b Descriptor) int {
		return a.Version.Compare(b.Version)
	})
	var errs []error
	for i, d := range descs {
		switch {
		case d.Version.IsZero():
			errs = append(errs, fmt.Errorf(
				"migration %q: zero version is reserved", d.Name,
			))
		case d.Name == "":
			errs = append(errs, fmt.Errorf(
				"migration v%s: empty name", d.Version,
			))
		case d.New == nil:
			errs = append(errs, fmt.Errorf(
				"migration v%s: nil constructor", d.Version,
			))
		case i > 0 && descs[i-1].Version == d.Version:
			errs = append(errs, fmt.Errorf(
				"migration v%s: duplicate version", d.Version,
			))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid migrations registry: %w", err)
	}
	return &Registry{descs: descs}, nil
}

// All returns all descriptors in their ascending version order.
func (r *Registry) All() []Descriptor {
	return slices.Clone(r.descs)
}

// Latest returns the descriptor with the greatest version. It returns
// false if r is empty.
func (r *Registry) Latest() (Descriptor, bool) {
	if len(r.descs) == 0 {
		return Descriptor{}, false
	}
	return r.descs[len(r.descs)-1], true
}

// Find returns the descriptor which has the v version.
func (r *Registry) Find(v model.SemVer) (Descriptor, bool) {
	i, ok := slices.BinarySearchFunc(
		r.descs, v, func(d Descriptor, v model.SemVer) int {
			return d.Version.Compare(v)
		},
	)
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// Between returns the descriptors whose versions are greater than the
// `from` version and are not greater than the `to` version, in their
// ascending order. These are the migrations which must be applied in
// order to upgrade a schema from `from` to `to`, or reverted in the
// reverse order to downgrade it from `to` to `from`.
func (r *Registry) Between(from, to model.SemVer) []Descriptor {
	var ds []Descriptor
	for _, d := range r.descs {
		if from.Less(d.Version) && !to.Less(d.Version) {
			ds = append(ds, d)
		}
	}
	return ds
}

// Pending returns the descriptors which are not included in applied
// and whose versions are not greater than the target version, in their
// ascending order. A zero target stands for the Latest version.
func (r *Registry) Pending(
	applied []model.SemVer, target model.SemVer,
) []Descriptor {
	if target.IsZero() {
		if d, ok := r.Latest(); ok {
			target = d.Version
		}
	}
	var ds []Descriptor
	for _, d := range r.descs {
		if target.Less(d.Version) {
			break
		}
		if !slices.Contains(applied, d.Version) {
			ds = append(ds, d)
		}
	}
	return ds
}
