// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemVer(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected model.SemVer
		fails    bool
	}{
		{in: "1.2.3", expected: model.SemVer{1, 2, 3}},
		{in: "7", expected: model.SemVer{7, 0, 0}},
		{in: "7.1", expected: model.SemVer{7, 1, 0}},
		{in: "", fails: true},
		{in: "1.2.3.4", fails: true},
		{in: "1.x", fails: true},
		{in: "1.-2", fails: true},
	} {
		sv, err := model.ParseSemVer(tc.in)
		if tc.fails {
			assert.Error(t, err, "parsing %q", tc.in)
			continue
		}
		require.NoError(t, err, "parsing %q", tc.in)
		assert.Equal(t, tc.expected, sv)
	}
}

func TestSemVerCompare(t *testing.T) {
	a := model.SemVer{1, 2, 3}
	assert.Equal(t, 0, a.Compare(model.SemVer{1, 2, 3}))
	assert.Equal(t, -1, a.Compare(model.SemVer{1, 3, 0}))
	assert.Equal(t, 1, a.Compare(model.SemVer{1, 2, 2}))
	assert.True(t, model.SemVer{0, 9, 9}.Less(a))
	assert.True(t, model.SemVer{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestDirection(t *testing.T) {
	d, err := model.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, model.Down, d)
	assert.Equal(t, "up", model.Up.String())
	_, err = model.ParseDirection("sideways")
	assert.Error(t, err)
}
