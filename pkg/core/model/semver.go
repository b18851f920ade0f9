// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer represents a released semantic version, consisting of three
// components. First component indicates the major version. Incrementing
// it represents backward-incompatible changes. Second component is the
// minor version which represents feature additions and changes which
// are backward compatible and visible in the versioned API level.
// The last component is the patch version. It represents internal
// implementation changes which are invisible in the API level.
//
// Each schema migration is identified by the SemVer of the schema which
// it produces. No pre-release version is considered because unreleased
// schema versions are not supposed to be recorded in a migration history.
type SemVer [3]uint

// UnmarshalText deserializes text byte slice as a string consisting of
// three dot-separated numbers and fills the sv SemVer instance. In case
// of errors, sv will be left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) (err error) {
	p := strings.Split(string(text), ".")
	l := len(p)
	if l == 0 || l > 3 {
		return fmt.Errorf("the %q has wrong number of components", text)
	}
	var v [3]int
	for i := 0; i < l; i++ {
		v[i], err = strconv.Atoi(p[i])
		if err != nil {
			return fmt.Errorf("the %q component is not numeric", p[i])
		}
		if v[i] < 0 {
			return fmt.Errorf("the %q component is negative", p[i])
		}
	}
	(*sv)[0] = uint(v[0])
	(*sv)[1] = uint(v[1])
	(*sv)[2] = uint(v[2])
	return nil
}

// MarshalText implements encoding.TextMarshaler interface and
// serializes `sv` semantic version as its string representation.
func (sv SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// ParseSemVer parses the s string as a dot-separated semantic version
// like 1.2.0 where missing minor or patch components are taken as zero.
func ParseSemVer(s string) (sv SemVer, err error) {
	err = sv.UnmarshalText([]byte(s))
	return
}

// Compare returns -1, 0, or +1 if sv is older than, equal to, or newer
// than the other semantic version respectively. Components are compared
// from the major version towards the patch version.
func (sv SemVer) Compare(other SemVer) int {
	for i := range sv {
		switch {
		case sv[i] < other[i]:
			return -1
		case sv[i] > other[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether sv is older than the other semantic version.
func (sv SemVer) Less(other SemVer) bool {
	return sv.Compare(other) < 0
}

// IsZero reports whether all components of sv are zero. The zero
// version is used as "before the first migration" target.
func (sv SemVer) IsZero() bool {
	return sv == SemVer{}
}

// String returns the sv semantic version as a dot-separated string
// consisting of three numbers like major.minor.patch where all numbers
// are non-negative.
func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}
