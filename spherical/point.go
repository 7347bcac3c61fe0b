// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package spherical

import (
	"fmt"
	"math"
)

// Point is a sky direction represented as a unit vector in 3-space.
// The embedding makes centroid and circumcentre calculations closed-form
// instead of iterating in (ra, dec).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewPoint builds the unit vector for a position given as right ascension
// and declination in degrees.
func NewPoint(raDeg, decDeg float64) Point {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180

	return Point{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// RA returns the right ascension in degrees, normalized to [0, 360).
func (p Point) RA() float64 {
	ra := math.Atan2(p.Y, p.X) * 180 / math.Pi
	if ra < 0 {
		ra += 360
	}

	return ra
}

// Dec returns the declination in degrees, in [-90, 90].
func (p Point) Dec() float64 {
	return math.Asin(p.Z/p.Norm()) * 180 / math.Pi
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("SKYPOINT(%f %f)", p.RA(), p.Dec())
}

// Norm returns the Euclidean norm of the vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Cross returns the cross product p × other.
func (p Point) Cross(other Point) Point {
	return Point{
		X: p.Y*other.Z - p.Z*other.Y,
		Y: p.Z*other.X - p.X*other.Z,
		Z: p.X*other.Y - p.Y*other.X,
	}
}

// Normalize projects the vector back onto the unit sphere.
// The zero vector has no direction and is returned unchanged.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return p
	}

	return p.Scale(1 / n)
}

// Separation returns the great-circle angle between two directions in
// degrees. Computed as atan2(|p×q|, p·q), which stays accurate for both
// very small and near-antipodal separations where acos loses precision.
func (p Point) Separation(other Point) float64 {
	return math.Atan2(p.Cross(other).Norm(), p.Dot(other)) * 180 / math.Pi
}

// Centroid returns the normalized vector mean of the given directions.
// For two points this is the midpoint of the connecting great-circle arc.
// Directions that cancel out, such as an antipodal pair, have no defined
// centroid and yield the zero Point.
func Centroid(points ...Point) Point {
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}

	if sum.Norm() < 1e-12 {
		return Point{}
	}

	return sum.Normalize()
}
