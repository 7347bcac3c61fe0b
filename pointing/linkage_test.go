// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awhiting/skymosaic/spherical"
)

// equatorPoints puts targets on the equator, so every pairwise
// separation is just the RA difference and merge order is easy to
// reason about by hand.
func equatorPoints(ras ...float64) []spherical.Point {
	points := make([]spherical.Point, len(ras))
	for i, ra := range ras {
		points[i] = spherical.NewPoint(ra, 0)
	}

	return points
}

func TestCompleteLinkageKnownTree(t *testing.T) {
	// Pairwise: d(0,1)=1, d(0,2)=3, d(0,3)=7, d(1,2)=2, d(1,3)=6, d(2,3)=4.
	points := equatorPoints(0, 1, 3, 7)
	sep := spherical.NewSeparationMatrix(points)

	merges, err := CompleteLinkage(sep)
	if err != nil {
		t.Fatalf("CompleteLinkage() error: %v", err)
	}

	want := []Merge{
		{Left: 0, Right: 1, Distance: 1, Size: 2}, // node 4
		{Left: 2, Right: 4, Distance: 3, Size: 3}, // node 5: max(d(2,0), d(2,1)) = 3
		{Left: 3, Right: 5, Distance: 7, Size: 4}, // node 6: root
	}

	if diff := cmp.Diff(want, merges); diff != "" {
		t.Errorf("merge tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteLinkageProducesNMinusOneMerges(t *testing.T) {
	points := []spherical.Point{
		spherical.NewPoint(12, -3),
		spherical.NewPoint(12.2, -3.1),
		spherical.NewPoint(44, 80),
		spherical.NewPoint(190, 0.5),
		spherical.NewPoint(190.4, 0.1),
		spherical.NewPoint(300, -60),
		spherical.NewPoint(299.5, -60.2),
	}

	merges, err := CompleteLinkage(spherical.NewSeparationMatrix(points))
	if err != nil {
		t.Fatalf("CompleteLinkage() error: %v", err)
	}

	if len(merges) != len(points)-1 {
		t.Fatalf("got %d merges, want %d", len(merges), len(points)-1)
	}

	if root := merges[len(merges)-1]; root.Size != len(points) {
		t.Errorf("root size = %d, want %d", root.Size, len(points))
	}

	// Distances never decrease across merges for complete linkage.
	for i := 1; i < len(merges); i++ {
		if merges[i].Distance < merges[i-1].Distance {
			t.Errorf("merge %d distance %v below previous %v", i, merges[i].Distance, merges[i-1].Distance)
		}
	}
}

func TestCompleteLinkageInsufficientTargets(t *testing.T) {
	for _, points := range [][]spherical.Point{nil, equatorPoints(5)} {
		if _, err := CompleteLinkage(spherical.NewSeparationMatrix(points)); !errors.Is(err, ErrInsufficientTargets) {
			t.Errorf("n=%d: error = %v, want ErrInsufficientTargets", len(points), err)
		}
	}
}

func TestDecodeClustersCoverage(t *testing.T) {
	points := equatorPoints(0, 1, 3, 7, 20, 21)
	n := len(points)

	merges, err := CompleteLinkage(spherical.NewSeparationMatrix(points))
	if err != nil {
		t.Fatalf("CompleteLinkage() error: %v", err)
	}

	clusters := DecodeClusters(merges, n)

	if len(clusters) != n-1 {
		t.Fatalf("decoded %d clusters, want %d", len(clusters), n-1)
	}

	// The root covers every index exactly once.
	root := append([]int(nil), clusters[2*n-2]...)
	sort.Ints(root)

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}

	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("root members mismatch (-want +got):\n%s", diff)
	}

	// Every cluster's size matches its merge row.
	for i, m := range merges {
		if len(clusters[n+i]) != m.Size {
			t.Errorf("cluster %d has %d members, merge says %d", n+i, len(clusters[n+i]), m.Size)
		}
	}
}

func TestReorderLeavesDistantEnds(t *testing.T) {
	points := equatorPoints(0, 1, 3, 7)
	n := len(points)
	sep := spherical.NewSeparationMatrix(points)

	merges, err := CompleteLinkage(sep)
	if err != nil {
		t.Fatalf("CompleteLinkage() error: %v", err)
	}

	clusters := DecodeClusters(merges, n)
	ReorderLeaves(clusters, merges, n, sep)

	// In this tree the true diameter pair of every cluster can sit at
	// the ends, so the heuristic should find it.
	for node, members := range clusters {
		first, last := members[0], members[len(members)-1]
		endSep := sep.At(first, last)

		for _, a := range members {
			for _, b := range members {
				if sep.At(a, b) > endSep {
					t.Errorf("cluster %d: members %d,%d separated by %v exceed ends %d,%d at %v",
						node, a, b, sep.At(a, b), first, last, endSep)
				}
			}
		}
	}
}
