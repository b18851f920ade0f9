// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vers_test

import (
	"testing"

	"github.com/momeni/ddlwork/pkg/adapter/config/vers"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	vc, err := vers.Load([]byte("versions:\n  config: 1.2.3\nother: x\n"))
	require.NoError(t, err)
	assert.Equal(t, model.SemVer{1, 2, 3}, vc.Versions.Config)
	assert.NoError(t, vc.Validate(1, 2))
	assert.NoError(t, vc.Validate(1, 5))
	assert.ErrorContains(t, vc.Validate(1, 1), "unsupported minor")
	assert.ErrorContains(t, vc.Validate(2, 2), "incompatible major")

	_, err = vers.Load([]byte("database: {}\n"))
	assert.ErrorContains(t, err, "missing versions.config")
	_, err = vers.Load([]byte("versions:\n  config: one\n"))
	assert.Error(t, err)
}
