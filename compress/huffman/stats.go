// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"math"

	"github.com/intel/naryhuff/compress/huffman/internal/moffat"
)

// Stats summarizes a tree.
type Stats struct {
	Order        int
	Leaves       int // real symbols
	Placeholders int
	Internal     int
	Depth        int

	TotalFrequency uint64
	// WeightedLength is the sum over symbols of frequency times codeword
	// length in digits, i.e. the length of the digit string encoding the
	// frequency table's own text.
	WeightedLength uint64

	MeanDigits float64 // per symbol
	MeanBits   float64 // MeanDigits * log2(Order)
	Entropy    float64 // bits per symbol
}

// Stats walks the tree. A tree without a root yields zero counts.
func (t *Tree[S]) Stats() Stats {
	s := Stats{Order: t.order}
	if t.root == nil {
		return s
	}
	var freqs []uint64
	if t.root.leaf() {
		s.Leaves = 1
		s.TotalFrequency = t.root.frequency
		s.WeightedLength = t.root.frequency
		freqs = append(freqs, t.root.frequency)
	} else {
		freqs = t.walk(t.root, 0, &s)
	}
	s.Depth = depth(t.root)
	if s.TotalFrequency > 0 {
		total := float64(s.TotalFrequency)
		s.MeanDigits = float64(s.WeightedLength) / total
		s.MeanBits = s.MeanDigits * math.Log2(float64(t.order))
		for _, f := range freqs {
			if f > 0 {
				p := float64(f) / total
				s.Entropy -= p * math.Log2(p)
			}
		}
	}
	return s
}

func (t *Tree[S]) walk(n *node[S], level int, s *Stats) (freqs []uint64) {
	if n.leaf() {
		if n.placeholder {
			s.Placeholders++
			return nil
		}
		s.Leaves++
		s.TotalFrequency += n.frequency
		s.WeightedLength += n.frequency * uint64(level)
		return []uint64{n.frequency}
	}
	s.Internal++
	for _, c := range n.children {
		freqs = append(freqs, t.walk(c, level+1, s)...)
	}
	return freqs
}

// OptimalBinaryCost returns the weighted path length, in bits, of an optimal
// binary prefix code over freqs. It is computed independently of Tree and
// serves as the baseline that an order-2 tree must match.
func OptimalBinaryCost(freqs []uint64) uint64 {
	return moffat.Cost(freqs)
}
