// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeamSensitivityAtCentre(t *testing.T) {
	assert.Equal(t, 1.0, DefaultBeam().SensitivityAt(0))
}

func TestBeamHalfPower(t *testing.T) {
	b := DefaultBeam()

	// Half the FWHM off axis is the half-power point by definition.
	halfWidthDeg := 0.5 * b.FWHM / b.FrequencyGHz / 60

	assert.InDelta(t, 0.5, b.SensitivityAt(halfWidthDeg), 1e-12)
	assert.InDelta(t, halfWidthDeg, b.RadiusForSensitivity(0.5), 1e-12)
}

func TestBeamRoundTrip(t *testing.T) {
	b := DefaultBeam()

	for _, p := range []float64{0.001, 0.01, 0.1, 0.25, 0.5, 1 / 1.4142, 0.9, 0.999, 1.0} {
		r := b.RadiusForSensitivity(p)
		require.GreaterOrEqual(t, r, 0.0)
		assert.InDelta(t, p, b.SensitivityAt(r), 1e-9, "P = %v", p)
	}
}

func TestBeamSensitivityMonotone(t *testing.T) {
	b := DefaultBeam()

	prev := 2.0

	for r := 0.0; r <= 1.0; r += 0.01 {
		s := b.SensitivityAt(r)
		require.Greater(t, s, 0.0)
		require.Less(t, s, prev)

		prev = s
	}
}

func TestBeamRadiusForSensitivityPrecondition(t *testing.T) {
	b := DefaultBeam()

	for _, p := range []float64{0, -0.5, 1.0000001, 2} {
		assert.Panics(t, func() { b.RadiusForSensitivity(p) }, "P = %v", p)
	}
}

func TestBeamOtherFrequency(t *testing.T) {
	// A lower frequency widens the beam, so the same sensitivity is
	// reached further out.
	low := Beam{FWHM: DefaultFWHM, FrequencyGHz: 2.1}
	high := Beam{FWHM: DefaultFWHM, FrequencyGHz: 9.0}

	assert.Greater(t, low.RadiusForSensitivity(0.5), high.RadiusForSensitivity(0.5))
}
