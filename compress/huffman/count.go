// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"cmp"
	"slices"
)

// CountBytes returns the frequency table of data, ordered by ascending
// frequency and then byte value. Bytes that do not occur are omitted.
func CountBytes(data []byte) []Pair[byte] {
	var histogram [256]uint64
	for _, b := range data {
		histogram[b]++
	}
	pairs := make([]Pair[byte], 0, 64)
	for i, n := range histogram {
		if n != 0 {
			pairs = append(pairs, Pair[byte]{Symbol: byte(i), Frequency: n})
		}
	}
	slices.SortStableFunc(pairs, func(a, b Pair[byte]) int {
		return cmp.Compare(a.Frequency, b.Frequency)
	})
	return pairs
}
