// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr

import "fmt"

// MissingAttributeError indicates that an expression could not be
// rendered because one of its required attributes was left empty.
// It matches ErrMalformedExpression when checked by errors.Is.
type MissingAttributeError struct {
	Expression string // expression variant name, e.g., DropForeignKey
	Attribute  string // name of the empty attribute, e.g., Table
}

// Error returns a string representation of `mae` error instance.
func (mae *MissingAttributeError) Error() string {
	return fmt.Sprintf(
		"%s: %s: missing %s",
		ErrMalformedExpression.Error(), mae.Expression, mae.Attribute,
	)
}

// Is reports whether target is the ErrMalformedExpression sentinel.
func (mae *MissingAttributeError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// UnsupportedError indicates that the `Dialect` dialect has no syntax
// for the `Expression` schema change. It matches ErrUnsupported when
// checked by errors.Is.
type UnsupportedError struct {
	Dialect    string
	Expression string
}

// Error returns a string representation of `ue` error instance.
func (ue *UnsupportedError) Error() string {
	return fmt.Sprintf(
		"%s: %s cannot render %s",
		ErrUnsupported.Error(), ue.Dialect, ue.Expression,
	)
}

// Is reports whether target is the ErrUnsupported sentinel.
func (ue *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
