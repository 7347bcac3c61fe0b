// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"github.com/awhiting/skymosaic/spherical"
)

// estimateCentre approximates the centre of the smallest circle enclosing
// the cluster's members. members is the order-sensitive list produced by
// DecodeClusters/ReorderLeaves: the first and last entries are presumed
// to be (close to) the cluster's diameter pair.
//
// The first guess is the arc midpoint of that pair. If some other member
// lies further from it than the pair itself, the two-point circle is too
// small and the centre is recomputed as the circumcentre of (first,
// furthest, last).
//
// This is a bounded heuristic, not a general minimal-enclosing-circle
// solver: it is exact when the diameter pair really sits at the ends and
// at most one member falls outside their circle, and approximate beyond
// that. The planner compensates by always re-measuring the true maximum
// member distance from whatever centre comes back.
func estimateCentre(members []int, points []spherical.Point) (spherical.Point, error) {
	first := members[0]
	last := members[len(members)-1]

	centre := spherical.Centroid(points[first], points[last])
	if centre.Norm() == 0 {
		// Antipodal ends have no midpoint.
		return spherical.Point{}, spherical.ErrDegenerate
	}

	maxArg := 0
	maxDist := -1.0

	for k, m := range members {
		if d := centre.Separation(points[m]); d > maxDist {
			maxArg = k
			maxDist = d
		}
	}

	if maxArg != 0 && maxArg != len(members)-1 {
		return spherical.Circumcentre(points[first], points[members[maxArg]], points[last])
	}

	return centre, nil
}
