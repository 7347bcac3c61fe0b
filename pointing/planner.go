// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

// Package pointing groups catalogued sky positions into a minimal set of
// telescope pointings. Targets close enough to share a single beam within
// an acceptable sensitivity loss become one pointing; everything else is
// observed individually.
package pointing

import (
	"log"
	"math"

	"github.com/awhiting/skymosaic/spherical"
)

// Pointing is one beam placement of the final plan: which targets it
// covers (as indices into the input order), where the beam is centred,
// and the integration time it needs relative to a single-target
// observation at beam centre.
type Pointing struct {
	Members []int
	Centre  spherical.Point
	IntTime float64
}

// Planner turns a set of sky positions into a pointing plan for a given
// beam model.
type Planner struct {
	beam Beam
}

// NewPlanner returns a planner for the given beam.
func NewPlanner(beam Beam) *Planner {
	return &Planner{beam: beam}
}

// Beam returns the beam model the planner was built with.
func (pl *Planner) Beam() Beam {
	return pl.beam
}

// Plan computes the pointing plan for the given directions. It needs at
// least two targets; see PlanMatrix for the pipeline.
func (pl *Planner) Plan(points []spherical.Point) ([]Pointing, error) {
	if len(points) < 2 {
		return nil, ErrInsufficientTargets
	}

	return pl.PlanMatrix(points, spherical.NewSeparationMatrix(points))
}

// PlanMatrix is Plan for callers that already hold the separation matrix
// (e.g. to report progress while building it over a large catalogue).
//
// Pipeline: complete-linkage clustering over the matrix, merge-tree
// decoding with the distant-ends leaf reordering, then a single greedy
// pass over candidate clusters from the outermost merge down. A cluster
// becomes a pointing when its members all fit inside the break-even
// radius around the estimated centre; its members are then consumed and
// smaller candidates containing them are skipped. Whatever survives the
// pass unconsumed is observed as singletons at baseline cost.
func (pl *Planner) PlanMatrix(points []spherical.Point, sep *spherical.SeparationMatrix) ([]Pointing, error) {
	n := len(points)

	merges, err := CompleteLinkage(sep)
	if err != nil {
		return nil, err
	}

	clusters := DecodeClusters(merges, n)
	ReorderLeaves(clusters, merges, n, sep)

	assigned := make([]bool, n)

	var plan []Pointing

	for node := 2*n - 2; node >= n; node-- {
		members := clusters[node]

		if anyAssigned(members, assigned) {
			continue
		}

		centre, err := estimateCentre(members, points)
		if err != nil {
			// No usable centre for this candidate; its subclusters
			// will be considered instead.
			log.Printf("rejecting cluster %d: %v", node, &GeometryError{Node: node, Err: err})

			continue
		}

		// Radius at which one shared shallow pointing stops paying off
		// against len(members) separate ones.
		breakEven := pl.beam.RadiusForSensitivity(1 / math.Sqrt(float64(len(members))))

		maxDist := 0.0

		for _, m := range members {
			if d := centre.Separation(points[m]); d > maxDist {
				maxDist = d
			}
		}

		if maxDist >= breakEven {
			continue
		}

		for _, m := range members {
			assigned[m] = true
		}

		// Integration time grows with the inverse square of the beam
		// response at the worst-placed member, amortized over the group.
		p := pl.beam.SensitivityAt(maxDist)

		plan = append(plan, Pointing{
			Members: members,
			Centre:  centre,
			IntTime: 1 / (p * p * float64(len(members))),
		})
	}

	for i := 0; i < n; i++ {
		if assigned[i] {
			continue
		}

		plan = append(plan, Pointing{
			Members: []int{i},
			Centre:  points[i],
			IntTime: 1.0,
		})
	}

	return plan, nil
}

func anyAssigned(members []int, assigned []bool) bool {
	for _, m := range members {
		if assigned[m] {
			return true
		}
	}

	return false
}
