// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers parses the versions section which is shared by all
// configuration file formats. The configuration format version is read
// before the rest of the file, so the matching format can be chosen for
// decoding and validating the remaining settings.
package vers

import (
	"fmt"

	"github.com/momeni/ddlwork/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config may be embedded inline by each configuration format in order
// to carry its versions.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file format version. The schema
// version of a database is not kept here, because it is recorded in
// the migrations history table of that database.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Load decodes the versions section of data, ignoring other fields.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	if vc.Versions.Config.IsZero() {
		return nil, fmt.Errorf("missing versions.config")
	}
	return vc, nil
}

// Validate returns an error if the configuration format version of
// vc is not supported by a loader for the major.minor format. Stored
// major version must be equal to major and the stored minor version
// must not be newer than minor.
func (vc *Config) Validate(major, minor uint) error {
	v := vc.Versions.Config
	if v[0] != major {
		return fmt.Errorf("incompatible major version: %d", v[0])
	}
	if v[1] > minor {
		return fmt.Errorf("unsupported minor version: %d", v[1])
	}
	return nil
}
