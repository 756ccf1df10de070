// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"strings"
)

const alphabet = "0123456789abcdef"

// CodeTable is the symbol to codeword store filled by GenerateCodes and read
// by Encode. chainmap.NewCodeTable provides an implementation.
type CodeTable[S Symbol] interface {
	Put(symbol S, code string)
	// Get fails when symbol has no code.
	Get(symbol S) (string, error)
	ContainsKey(symbol S) bool
	Clear()
	// Keys returns every symbol, in no particular order.
	Keys() []S
}

// Digit returns the code character for child index i.
func Digit(i int) byte {
	return alphabet[i]
}

// Index returns the child index encoded by the code character c.
func Index(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// GenerateCodes clears table and fills it with the codeword of every real
// symbol in the tree. A tree with a single symbol gives it the one digit
// code for k-1.
func (t *Tree[S]) GenerateCodes(table CodeTable[S]) {
	table.Clear()
	if t.root == nil {
		return
	}
	if t.root.leaf() {
		if !t.root.placeholder {
			table.Put(t.root.symbol, string(Digit(t.order-1)))
		}
		return
	}
	path := make([]byte, 0, 16)
	generate(t.root, path, table)
}

func generate[S Symbol](n *node[S], path []byte, table CodeTable[S]) {
	if n.leaf() {
		if !n.placeholder {
			table.Put(n.symbol, string(path))
		}
		return
	}
	for i, c := range n.children {
		generate(c, append(path, Digit(i)), table)
	}
}

// Encode concatenates the codewords of symbols. Every symbol must be in
// table.
func Encode[S Symbol](table CodeTable[S], symbols []S) (string, error) {
	var sb strings.Builder
	for i, s := range symbols {
		if !table.ContainsKey(s) {
			return "", fmt.Errorf("%w: %v at offset %d", ErrUnknownSymbol, s, i)
		}
		code, err := table.Get(s)
		if err != nil {
			return "", err
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}
