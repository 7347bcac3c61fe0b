// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"errors"
	"fmt"

	"github.com/awhiting/skymosaic/spherical"
)

// ErrInsufficientTargets is returned when fewer than two targets are
// supplied. A hierarchy of mergers is undefined below that.
var ErrInsufficientTargets = errors.New("pointing: need at least two targets")

// GeometryError marks a candidate cluster whose centre could not be
// placed, typically because its extremal members are collinear or
// antipodal. The planner rejects such a cluster and falls through to its
// subclusters; it is not fatal for the run.
type GeometryError struct {
	Node int
	Err  error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("pointing: degenerate geometry in cluster %d: %v", e.Node, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// IsDegenerateGeometry reports whether err stems from geometry with no
// well-defined circle centre.
func IsDegenerateGeometry(err error) bool {
	return errors.Is(err, spherical.ErrDegenerate)
}
