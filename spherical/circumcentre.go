// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package spherical

import "errors"

// ErrDegenerate reports geometry with no well-defined answer, such as a
// circumcentre of (near-)collinear directions.
var ErrDegenerate = errors.New("spherical: degenerate geometry")

// minTriangleCross guards the circumcentre division. Below this the three
// directions are collinear for any practical purpose and the plane of the
// triangle is undefined.
const minTriangleCross = 1e-12

// Circumcentre returns the direction equidistant from the three given
// directions. It is computed with the closed-form circumcentre of the
// triangle in the embedding 3-space and projected back onto the sphere,
// so the result is the centre of the small circle through a, b and c.
//
// Collinear or coincident inputs, and triangles whose circumcentre passes
// through the sphere's centre, return ErrDegenerate.
func Circumcentre(a, b, c Point) (Point, error) {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)

	n := ab.Cross(bc)

	normSq := n.Dot(n)
	if normSq < minTriangleCross {
		return Point{}, ErrDegenerate
	}

	// Planar circumcentre: midpoint of the a-c side plus the correction
	// along the direction perpendicular to that side within the triangle
	// plane. 2K = |ab × bc| is twice the triangle area.
	e := a.Add(c).Scale(0.5).Add(ca.Cross(n).Scale(ab.Dot(bc) / (2 * normSq)))

	if e.Norm() < 1e-9 {
		// The circle through the three points is a great circle: both of
		// its poles are equidistant, there is no unique centre.
		return Point{}, ErrDegenerate
	}

	return e.Normalize(), nil
}
