// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "cmp"

type node[S Symbol] struct {
	symbol      S
	placeholder bool
	frequency   uint64
	id          uint64
	children    []*node[S]
}

func (n *node[S]) leaf() bool {
	return len(n.children) == 0
}

// compareNodes orders nodes by frequency, then leaves before internal
// nodes, then leaf symbol, then creation order. It never returns 0 for two
// distinct nodes of the same tree.
func compareNodes[S Symbol](a, b *node[S]) int {
	if c := cmp.Compare(a.frequency, b.frequency); c != 0 {
		return c
	}
	aLeaf, bLeaf := a.leaf(), b.leaf()
	if aLeaf != bLeaf {
		if aLeaf {
			return -1
		}
		return 1
	}
	if aLeaf {
		if c := cmp.Compare(a.symbol, b.symbol); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.id, b.id)
}
