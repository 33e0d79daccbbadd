// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers contains the versions parsing which is required by all
// config versions. The configuration file version should be known
// before trying to parse the actual settings, so their format can be
// selected and verified while loading them. The format of keeping
// versions is less likely to change over time.
package vers

import (
	"fmt"

	"github.com/momeni/parkmock/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config contains the versions of those system components which may
// need migration support. It may be embedded with inline format in the
// released config struct versions in order to indicate their format.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file version which is used for
// detecting its format. Each binary only supports the latest major
// version which is known to it.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Marshalled is an alternative form of Config struct which replaces
// its model.SemVer inner fields by their string representation.
// The Marshalled is used during the YAML serialization operation
// instead of the main Config struct.
//
// MarshalYAML is only used for replacing the most top level value,
// where the serialization begins. The Marshalled struct (returned by
// the Marshal method) allows nested structs to participate in this
// value replacement during a serialization operation.
type Marshalled struct {
	Versions struct {
		Config string
	}
}

// Marshal creates and returns a Marshalled instance representing the vc
// Config instance. It may be serialized instead of vc to YAML format.
func (vc *Config) Marshal() *Marshalled {
	m := &Marshalled{}
	m.Versions.Config = vc.Versions.Config.String()
	return m
}

// Load deserializes the data byte slice into a new instance of Config
// struct. Extra fields in data are ignored, so the deserialized version
// can be used to detect the format of the remaining settings.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	return vc, nil
}

// Validate returns an error if the configuration settings version which
// is stored in the `vc` Config instance is not supported by the given
// major and minor version arguments. That is, stored major version
// must match with the major argument and the stored minor version must
// be at most equal with the given minor version (not newer than it).
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
