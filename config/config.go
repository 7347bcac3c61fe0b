// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads planner configuration from an optional YAML file,
// filling in defaults for anything unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/awhiting/skymosaic/pointing"
)

// Config is the top-level configuration.
type Config struct {
	Beam    BeamConfig    `yaml:"beam"`
	Catalog CatalogConfig `yaml:"catalog"`
	Serve   ServeConfig   `yaml:"serve"`
}

// BeamConfig holds the primary-beam model parameters.
type BeamConfig struct {
	// FWHM is the full-width half-max in arcmin·GHz.
	FWHM float64 `yaml:"fwhm"`
	// FrequencyGHz is the observing frequency in GHz.
	FrequencyGHz float64 `yaml:"frequencyGHz"`
}

// CatalogConfig holds target-catalogue settings.
type CatalogConfig struct {
	// DbPath is the directory holding the duckdb catalogue database.
	DbPath string `yaml:"dbPath"`
	// DropLast drops the final record of loaded catalogue files, the
	// convention for catalogues that end in a sentinel or calibrator row.
	DropLast bool `yaml:"dropLast"`
}

// ServeConfig holds the local visualization server settings.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Beam: BeamConfig{
			FWHM:         pointing.DefaultFWHM,
			FrequencyGHz: pointing.DefaultFrequencyGHz,
		},
		Catalog: CatalogConfig{
			DbPath:   "data",
			DropLast: true,
		},
		Serve: ServeConfig{
			Addr: "localhost:8080",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects physically meaningless settings.
func (c Config) Validate() error {
	if c.Beam.FWHM <= 0 {
		return fmt.Errorf("config: beam fwhm must be positive, got %v", c.Beam.FWHM)
	}

	if c.Beam.FrequencyGHz <= 0 {
		return fmt.Errorf("config: beam frequency must be positive, got %v", c.Beam.FrequencyGHz)
	}

	if c.Serve.Addr == "" {
		return fmt.Errorf("config: serve address must not be empty")
	}

	return nil
}

// BeamModel returns the beam model described by the configuration.
func (c Config) BeamModel() pointing.Beam {
	return pointing.Beam{FWHM: c.Beam.FWHM, FrequencyGHz: c.Beam.FrequencyGHz}
}
