// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	planAsJSON, statusAsJSON = false, false
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDatabaseCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	data := fmt.Sprintf(
		"database:\n  driver: sqlite\n  path: %s\n"+
			"logger:\n  level: error\n"+
			"versions:\n  config: 1.0.0\n",
		filepath.Join(dir, "ddlwork.db"),
	)
	require.NoError(t, os.WriteFile(cfg, []byte(data), 0o600))

	out, err := run(t, "db", "status", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "pending")

	out, err = run(t, "db", "plan", "up", "1.0.0", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "-- up v1.0.0: create users\n")
	assert.Contains(t, out, `CREATE TABLE "users"`)
	assert.NotContains(t, out, "v1.1.0")

	out, err = run(t, "db", "migrate", "up", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"-- up v1.0.0: create users\n"+
			"-- up v1.1.0: add user details\n"+
			"-- up v1.2.0: rename user apps\n",
		out,
	)

	out, err = run(t, "db", "migrate", "up", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "nothing to migrate\n", out)

	_, err = run(t, "db", "migrate", "down", "-c", cfg)
	assert.ErrorContains(t, err, "requires a target version")

	out, err = run(t, "db", "migrate", "down", "1.1.0", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "-- down v1.2.0: rename user apps\n", out)

	out, err = run(t, "db", "status", "--json", "-c", cfg)
	require.NoError(t, err)
	var sts []struct {
		Version   string  `json:"version"`
		AppliedAt *string `json:"applied_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sts))
	require.Len(t, sts, 3)
	assert.NotNil(t, sts[1].AppliedAt)
	assert.Nil(t, sts[2].AppliedAt)

	_, err = run(t, "db", "plan", "sideways", "-c", cfg)
	assert.ErrorContains(t, err, "invalid direction")
}
