/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pdfwriter

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Version is a PDF version number, e.g. {1, 7} for "PDF-1.7".
type Version struct {
	Major int
	Minor int
}

// String renders the version as it appears in the file header, e.g.
// "1.7".
func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// DefaultVersion is the version DefaultConfig sets, and the one
// LoadConfig keeps when the file sets no versionMajor. The writer
// itself applies no fallback to a zero Version.
var DefaultVersion = Version{Major: 1, Minor: 7}

// Config holds the writer's operational knobs.
type Config struct {
	Version    Version `yaml:"version"`
	ProducerID string  `yaml:"producerID"`
	EOL        string  `yaml:"-"`
}

// eol is always CRLF: the spec's byte layout is fixed-width and
// depends on it. Config.EOL exists for forward compatibility only and
// is not yet honored.
const eol = "\r\n"

// DefaultConfig returns the writer's default configuration.
func DefaultConfig() Config {
	return Config{Version: DefaultVersion, ProducerID: "pdfstream", EOL: eol}
}

// configFile mirrors Config's shape for YAML (de)serialization,
// following the teacher's yaml-tagged shadow-struct pattern rather
// than tagging Config itself with package-private fields.
type configFile struct {
	VersionMajor int    `yaml:"versionMajor"`
	VersionMinor int    `yaml:"versionMinor"`
	ProducerID   string `yaml:"producerID"`
}

// LoadConfig reads a YAML configuration file produced by SaveConfig.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "pdfstream: read config")
	}
	var cf configFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return Config{}, errors.Wrap(err, "pdfstream: parse config")
	}
	cfg := DefaultConfig()
	if cf.VersionMajor != 0 {
		cfg.Version = Version{Major: cf.VersionMajor, Minor: cf.VersionMinor}
	}
	if cf.ProducerID != "" {
		cfg.ProducerID = cf.ProducerID
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(path string, cfg Config) error {
	cf := configFile{
		VersionMajor: cfg.Version.Major,
		VersionMinor: cfg.Version.Minor,
		ProducerID:   cfg.ProducerID,
	}
	b, err := yaml.Marshal(cf)
	if err != nil {
		return errors.Wrap(err, "pdfstream: marshal config")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, "pdfstream: write config")
	}
	return nil
}
