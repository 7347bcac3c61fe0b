// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog loads and stores the target catalogue that feeds the
// pointing planner. The planner itself never touches files or databases;
// it only sees the ordered positions this package hands over.
package catalog

import (
	"github.com/awhiting/skymosaic/spherical"
)

// Target is one catalogued source: a unique label and its J2000 position
// in degrees. The order of a catalogue is significant, as the planner
// identifies targets by index.
type Target struct {
	Name string  `json:"name"`
	RA   float64 `json:"ra"`
	Dec  float64 `json:"dec"`
}

// Point returns the target's direction on the unit sphere.
func (t Target) Point() spherical.Point {
	return spherical.NewPoint(t.RA, t.Dec)
}

// Points returns the directions of all targets, in catalogue order.
func Points(targets []Target) []spherical.Point {
	points := make([]spherical.Point, len(targets))
	for i, t := range targets {
		points[i] = t.Point()
	}

	return points
}
