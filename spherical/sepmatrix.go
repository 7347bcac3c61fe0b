// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package spherical

import "math"

// sepPrecision is the number of decimal places kept for pairwise
// separations. Rounding stabilizes tie-breaking in the clustering stage
// across platforms.
const sepPrecision = 1e5

// SeparationMatrix holds the great-circle angular distance in degrees
// between every pair of a fixed, ordered set of directions. It is
// symmetric with a zero diagonal and is never mutated after construction.
type SeparationMatrix struct {
	n    int
	vals []float64
}

// NewSeparationMatrix computes all pairwise separations for the given
// directions, rounded to five decimal places.
func NewSeparationMatrix(points []Point) *SeparationMatrix {
	return NewSeparationMatrixWithProgress(points, nil)
}

// NewSeparationMatrixWithProgress is NewSeparationMatrix with a per-row
// callback, so callers driving large catalogues can report progress.
// onRow may be nil.
func NewSeparationMatrixWithProgress(points []Point, onRow func(row int)) *SeparationMatrix {
	n := len(points)
	m := &SeparationMatrix{
		n:    n,
		vals: make([]float64, n*n),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sep := math.Round(points[i].Separation(points[j])*sepPrecision) / sepPrecision
			m.vals[i*n+j] = sep
			m.vals[j*n+i] = sep
		}

		if onRow != nil {
			onRow(i)
		}
	}

	return m
}

// Len returns the number of directions the matrix was built over.
func (m *SeparationMatrix) Len() int {
	return m.n
}

// At returns the separation between directions i and j in degrees.
func (m *SeparationMatrix) At(i, j int) float64 {
	return m.vals[i*m.n+j]
}
