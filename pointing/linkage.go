// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"github.com/awhiting/skymosaic/spherical"
)

// Merge is one step of the agglomerative clustering: the two cluster ids
// joined, the complete-linkage distance at which they joined, and the
// number of original targets under the new node.
//
// For n targets, leaves are ids 0..n-1 and the i-th merge creates node
// n+i, so the full tree has 2n-1 nodes with the root at 2n-2.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// CompleteLinkage builds the full merge hierarchy over the targets of the
// separation matrix. At every step the pair of clusters with the smallest
// maximum pairwise member distance is joined; the distance from the new
// cluster to any other is the larger of its constituents' distances.
//
// Ties are broken towards the lowest cluster ids, so the output is
// deterministic for a given matrix. Runs in O(n³) time and O(n²) space,
// which is fine for catalogue-sized inputs.
func CompleteLinkage(sep *spherical.SeparationMatrix) ([]Merge, error) {
	n := sep.Len()
	if n < 2 {
		return nil, ErrInsufficientTargets
	}

	total := 2*n - 1

	dist := make([][]float64, total)
	for i := range dist {
		dist[i] = make([]float64, total)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dist[i][j] = sep.At(i, j)
		}
	}

	size := make([]int, total)
	for i := 0; i < n; i++ {
		size[i] = 1
	}

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	merges := make([]Merge, 0, n-1)

	for step := 0; step < n-1; step++ {
		// Active ids are kept ascending, so scanning in order and
		// requiring a strict improvement gives the lowest-id tie break.
		bestA, bestB := -1, -1
		bestDist := 0.0

		for ai := 0; ai < len(active); ai++ {
			for bi := ai + 1; bi < len(active); bi++ {
				a, b := active[ai], active[bi]
				if bestA < 0 || dist[a][b] < bestDist {
					bestA, bestB = a, b
					bestDist = dist[a][b]
				}
			}
		}

		node := n + step
		size[node] = size[bestA] + size[bestB]

		next := active[:0]

		for _, k := range active {
			if k == bestA || k == bestB {
				continue
			}

			d := dist[bestA][k]
			if dist[bestB][k] > d {
				d = dist[bestB][k]
			}

			dist[node][k] = d
			dist[k][node] = d

			next = append(next, k)
		}

		active = append(next, node)

		merges = append(merges, Merge{
			Left:     bestA,
			Right:    bestB,
			Distance: bestDist,
			Size:     size[node],
		})
	}

	return merges, nil
}
