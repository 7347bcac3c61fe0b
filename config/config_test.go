// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awhiting/skymosaic/pointing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, pointing.DefaultFWHM, cfg.Beam.FWHM)
	assert.Equal(t, pointing.DefaultFrequencyGHz, cfg.Beam.FrequencyGHz)
	assert.True(t, cfg.Catalog.DropLast)
	assert.Equal(t, "localhost:8080", cfg.Serve.Addr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skymosaic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
beam:
  fwhm: 50.0
  frequencyGHz: 2.1
catalog:
  dbPath: /tmp/cat
  dropLast: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Beam.FWHM)
	assert.Equal(t, 2.1, cfg.Beam.FrequencyGHz)
	assert.Equal(t, "/tmp/cat", cfg.Catalog.DbPath)
	assert.False(t, cfg.Catalog.DropLast)

	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost:8080", cfg.Serve.Addr)

	beam := cfg.BeamModel()
	assert.Equal(t, pointing.Beam{FWHM: 50.0, FrequencyGHz: 2.1}, beam)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "beam: ["},
		{"zero fwhm", "beam:\n  fwhm: 0\n"},
		{"negative frequency", "beam:\n  frequencyGHz: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "skymosaic.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
