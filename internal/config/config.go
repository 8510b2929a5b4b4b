// seehuhn.de/go/fractal - golden spiral fractals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the goldenspiral command from YAML
// or JSON files and from "key=value" overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/goldenspiral"
)

// Config holds the settings for rendering one figure.
type Config struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Depth  int     `yaml:"depth" json:"depth"`
	Format string  `yaml:"format" json:"format"`

	// Driver holds the options of the golden spiral driver, in the form
	// understood by [goldenspiral.DecodeOptions].
	Driver map[string]any `yaml:"driver" json:"driver"`
}

// Formats lists the supported output formats.
var Formats = []string{"svg", "png", "pdf", "json"}

// ErrInvalid is returned by [Config.Validate].
var ErrInvalid = errors.New("invalid configuration")

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:  400,
		Height: 250,
		Depth:  fractal.DefaultDepth,
		Format: "svg",
	}
}

// Load reads a configuration file on top of the defaults.  Files with the
// extension ".json" are parsed as JSON, all others as YAML.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Set overrides a single setting.  The key is a dotted path like "depth" or
// "driver.glyphs.square.lastOnly", and the value is parsed as a YAML
// scalar, so that "true" and "7" give a boolean and a number.
func (c *Config) Set(key, value string) error {
	var v any
	if err := yaml.Unmarshal([]byte(value), &v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("%w: malformed key %q", ErrInvalid, key)
		}
	}

	if parts[0] != "driver" {
		if len(parts) > 1 || !isField(key) {
			return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
		}
		// Round-trip through YAML, so that the struct tags and type
		// checks of the decoder apply.
		data, err := yaml.Marshal(map[string]any{key: v})
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	}

	if len(parts) == 1 {
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: driver must be a map", ErrInvalid)
		}
		c.Driver = m
		return nil
	}
	if c.Driver == nil {
		c.Driver = make(map[string]any)
	}
	m := c.Driver
	for _, p := range parts[1 : len(parts)-1] {
		sub, ok := m[p].(map[string]any)
		if !ok {
			// booleans like "square: true" are replaced by a map
			sub = make(map[string]any)
			if b, isBool := m[p].(bool); isBool {
				sub["enabled"] = b
			}
			m[p] = sub
		}
		m = sub
	}
	m[parts[len(parts)-1]] = v
	return nil
}

func isField(key string) bool {
	switch key {
	case "width", "height", "depth", "format":
		return true
	}
	return false
}

// Validate checks the settings which do not depend on the driver.
func (c *Config) Validate() error {
	if err := fractal.CheckDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrInvalid, c.Depth)
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
}

// Options decodes the driver settings.
func (c *Config) Options() (goldenspiral.Options, error) {
	return goldenspiral.DecodeOptions(c.Driver)
}
