// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package moffat computes binary minimum-redundancy code lengths in place.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
package moffat

import (
	"cmp"
	"slices"
)

// CodeLens replaces the weights in w, which must be sorted in non-increasing
// order, with the lengths of an optimal binary prefix code and returns the
// longest length.
func CodeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal node
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := uint64(0)
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth
		for ; root < n && w[root] == depth; root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = depth
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}

// Cost returns the weighted path length of an optimal binary prefix code
// for weights, in any order.
func Cost(weights []uint64) uint64 {
	w := slices.Clone(weights)
	slices.SortFunc(w, func(a, b uint64) int {
		return cmp.Compare(b, a)
	})
	sorted := slices.Clone(w)
	CodeLens(w)
	var cost uint64
	for i, l := range w {
		cost += sorted[i] * l
	}
	return cost
}
