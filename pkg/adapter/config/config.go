// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the ddlw to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// These settings are versioned and maintained by sub-packages, so a
// configuration file may be loaded as long as its major version is
// known. The parsed and validated configurations are passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items).
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/momeni/ddlwork/pkg/adapter/config/cfg1"
	"github.com/momeni/ddlwork/pkg/adapter/config/vers"
	"gopkg.in/yaml.v3"
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// Given path must belong to a configuration file which conforms with
// a known major version of the configuration settings format.
func Load(ctx context.Context, path string) (*cfg1.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	v, err := vers.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading versions: %w", err)
	}
	switch major := v.Versions.Config[0]; major {
	case cfg1.Major:
		c, err := cfg1.Load(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("loading cfg1.Config: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf(
			"unsupported config version: %s", v.Versions.Config,
		)
	}
}

// Save serializes c with the latest configuration format version and
// writes it into the path file, keeping the comments which c was loaded
// with. The file is created with 0600 permissions if it is missing.
func Save(path string, c *cfg1.Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
