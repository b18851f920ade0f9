// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import (
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/model"
)

// MismatchingSemVerError indicates an error condition where a specific
// semantic version was expected, but another version was present.
// The first element is the expected version and the second element is
// the actual version. It is reported when a configuration file has an
// unsupported format version and when the last applied migration of a
// database does not match the migration which is asked to be reverted.
type MismatchingSemVerError [2]model.SemVer

// MismatchingSemVer creates a *MismatchingSemVerError for the given
// `expected` and `actual` versions.
func MismatchingSemVer(expected, actual model.SemVer) error {
	return &MismatchingSemVerError{expected, actual}
}

// Error returns a string representation of `msve` error instance.
func (msve *MismatchingSemVerError) Error() string {
	return fmt.Sprintf(
		"expected v%s, but got v%s", msve[0].String(), msve[1].String(),
	)
}
