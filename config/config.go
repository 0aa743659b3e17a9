// Copyright 2025 uzqw
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads cache construction parameters from a file instead
// of flags, since CLI harnesses are out of this library's scope. Two
// equivalent formats are supported: plain YAML, and HuJSON (JSON with
// comments and trailing commas) for operators who want to annotate the
// configuration in place.
package config

import (
	"fmt"
	"os"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/uzqw/proximity/numerics"
)

// Kind names a cache family buildable from Config.
type Kind string

const (
	KindFIFO    Kind = "fifo"
	KindLRU     Kind = "lru"
	KindLSHFIFO Kind = "lsh-fifo"
	KindLSHLRU  Kind = "lsh-lru"
)

// Config mirrors the construction parameters of every cache family in one
// schema; only the fields relevant to Kind are consulted.
type Config struct {
	Kind           Kind    `yaml:"kind" json:"kind"`
	Capacity       int     `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Planes         int     `yaml:"planes,omitempty" json:"planes,omitempty"`
	Dimension      int     `yaml:"dimension,omitempty" json:"dimension,omitempty"`
	BucketCapacity int     `yaml:"bucket_capacity,omitempty" json:"bucket_capacity,omitempty"`
	Seed           *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// LoadYAML reads and parses a Config from a YAML file.
func LoadYAML(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadHuJSON reads and parses a Config from a HuJSON (JSON-with-comments)
// file, standardizing it to plain JSON before unmarshaling.
func LoadHuJSON(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that Config carries the parameters its Kind requires.
// It never panics: unlike the cache constructors, a malformed config file
// is an external-boundary error, not a programmer error.
func (c Config) Validate() error {
	switch c.Kind {
	case KindFIFO, KindLRU:
		if c.Capacity <= 0 {
			return fmt.Errorf("config: %s requires a positive capacity", c.Kind)
		}
	case KindLSHFIFO, KindLSHLRU:
		if c.Planes <= 0 {
			return fmt.Errorf("config: %s requires positive planes", c.Kind)
		}
		if c.Dimension <= 0 || c.Dimension%numerics.Lanes != 0 {
			return fmt.Errorf("config: %s requires dimension to be a positive multiple of %d", c.Kind, numerics.Lanes)
		}
		if c.BucketCapacity <= 0 {
			return fmt.Errorf("config: %s requires a positive bucket_capacity", c.Kind)
		}
	default:
		return fmt.Errorf("config: unknown kind %q", c.Kind)
	}
	return nil
}
