// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements deterministic n-ary Huffman codes.
//
// A Tree of order k merges the k least frequent nodes at every step, so each
// internal node has up to k children and a codeword is the sequence of child
// indexes on the path from the root, written with the digits 0-9 followed by
// a-f. Orders from 2 (classic binary Huffman) to 16 are supported.
//
// Ties are broken by a total order (frequency, then leaves before internal
// nodes, then symbol value, then creation order) so that the same frequency
// table always yields the same codes. When the number of symbols does not
// fill the last merge, zero-frequency placeholder leaves are added; their
// codewords are never handed out and decoding one is an error.
//
// Codewords are ASCII digit strings, not packed bits. A typical use:
//
//	codec, err := huffman.NewCodec(3, huffman.CountBytes(sample))
//	code, err := codec.Encode([]byte("some text"))
//	text, err := codec.Decode(code)
package huffman
