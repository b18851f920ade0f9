// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the helpers which are shared by all of the
// configuration file versions, such as the Duration type for human
// readable durations and functions which fill the omitted settings by
// their defaults or keep them in their acceptable ranges.
package settings

import (
	"cmp"
	"fmt"
)

// Default makes the (*dst) pointer to point to a copy of def if it was
// nil. Otherwise, (*dst) is kept intact.
func Default[T any](dst **T, def T) {
	if (*dst) != nil {
		return
	}
	(*dst) = &def
}

// Nil2Zero makes the (*t) pointer to point to the zero value of T if
// it was nil.
func Nil2Zero[T any](t **T) {
	var zero T
	Default(t, zero)
}

// Bounds is a closed range of acceptable values. A nil Min (or Max)
// leaves the range open from below (or above).
type Bounds[T cmp.Ordered] struct {
	Min, Max *T
}

// OutOfRangeError indicates that Value was out of its acceptable range.
type OutOfRangeError[T cmp.Ordered] struct {
	Value       T    // the actual out-of-range value
	LessThanMin bool // true if the Min bound was violated
}

func (e *OutOfRangeError[T]) Error() string {
	if e.LessThanMin {
		return fmt.Sprintf("%v is less than min", e.Value)
	}
	return fmt.Sprintf("%v is greater than max", e.Value)
}

// Clamp moves the (*v) value into the b range, if it is not nil and is
// out of that range, and returns an *OutOfRangeError describing the
// original value. A nil error is returned if (*v) was acceptable.
func (b Bounds[T]) Clamp(v *T) *OutOfRangeError[T] {
	if v == nil {
		return nil
	}
	switch x := *v; {
	case b.Min != nil && x < *b.Min:
		*v = *b.Min
		return &OutOfRangeError[T]{Value: x, LessThanMin: true}
	case b.Max != nil && x > *b.Max:
		*v = *b.Max
		return &OutOfRangeError[T]{Value: x}
	}
	return nil
}
