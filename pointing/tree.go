// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package pointing

import (
	"github.com/awhiting/skymosaic/spherical"
)

// DecodeClusters expands the merge hierarchy into an explicit mapping
// from every merge-node id to the ordered list of original target indices
// under it. A node's list is the concatenation of its children's lists
// (single index for leaf children), so member order reflects the shape of
// the tree rather than index order. Leaves themselves are not entries;
// only merge nodes are candidate pointings.
func DecodeClusters(merges []Merge, n int) map[int][]int {
	clusters := make(map[int][]int, len(merges))

	resolve := func(child int) []int {
		if child < n {
			return []int{child}
		}

		return clusters[child]
	}

	for i, m := range merges {
		left := resolve(m.Left)
		right := resolve(m.Right)

		members := make([]int, 0, len(left)+len(right))
		members = append(members, left...)
		members = append(members, right...)

		clusters[n+i] = members
	}

	return clusters
}

// ReorderLeaves rewrites every cluster's member list so that the pair of
// members with the largest mutual separation tends to sit at the first
// and last positions. Working from the smallest merge node up, each node
// re-concatenates its children's (already reordered) lists in whichever
// of the four orientations puts the most separated ends outermost.
//
// This is a heuristic: it only ever reverses child lists, so a deeply
// buried diameter pair can stay buried. The circle estimator treats the
// property accordingly, as an approximation with a fallback.
func ReorderLeaves(clusters map[int][]int, merges []Merge, n int, sep *spherical.SeparationMatrix) {
	reversed := func(s []int) []int {
		out := make([]int, len(s))
		for i, v := range s {
			out[len(s)-1-i] = v
		}

		return out
	}

	for i, m := range merges {
		node := n + i

		left := clusters[m.Left]
		if m.Left < n {
			left = []int{m.Left}
		}

		right := clusters[m.Right]
		if m.Right < n {
			right = []int{m.Right}
		}

		best := clusters[node]
		bestSep := -1.0

		for _, l := range [][]int{left, reversed(left)} {
			for _, r := range [][]int{right, reversed(right)} {
				endSep := sep.At(l[0], r[len(r)-1])
				if endSep > bestSep {
					members := make([]int, 0, len(l)+len(r))
					members = append(members, l...)
					members = append(members, r...)

					best = members
					bestSep = endSep
				}
			}
		}

		clusters[node] = best
	}
}
