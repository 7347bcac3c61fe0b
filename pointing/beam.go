// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"fmt"
	"math"
)

// Defaults model the ATCA primary beam at 5.5 GHz.
const (
	// DefaultFWHM is the full-width half-max of the primary beam in
	// arcmin·GHz; divide by the observing frequency for the width at a
	// given band.
	DefaultFWHM = 48.3

	// DefaultFrequencyGHz is the observing frequency in GHz.
	DefaultFrequencyGHz = 5.5
)

// Beam maps between angular radius and relative sensitivity for a
// Gaussian primary-beam response.
type Beam struct {
	FWHM         float64 // arcmin·GHz
	FrequencyGHz float64
}

// DefaultBeam returns the beam model with the package defaults.
func DefaultBeam() Beam {
	return Beam{FWHM: DefaultFWHM, FrequencyGHz: DefaultFrequencyGHz}
}

// SensitivityAt returns the relative sensitivity at the given radius from
// beam centre, in degrees. The response is Gaussian: 1 at the centre, 0.5
// at half the FWHM, falling towards (but never reaching) zero.
func (b Beam) SensitivityAt(radiusDeg float64) float64 {
	arcmin := radiusDeg * 60

	x := arcmin * b.FrequencyGHz / b.FWHM

	return math.Exp(-4 * math.Ln2 * x * x)
}

// RadiusForSensitivity returns the radius in degrees at which the
// relative sensitivity drops to p.
//
// p must be in (0, 1]; anything else is a caller bug and panics.
func (b Beam) RadiusForSensitivity(p float64) float64 {
	if p <= 0 || p > 1 {
		panic(fmt.Sprintf("pointing: sensitivity %v outside (0, 1]", p))
	}

	arcmin := 0.5 * b.FWHM * math.Sqrt(-math.Log(p)/math.Ln2) / b.FrequencyGHz

	return arcmin / 60
}
