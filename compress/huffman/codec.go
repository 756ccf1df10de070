// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"cmp"
	"slices"

	"github.com/intel/naryhuff/container/chainmap"
)

// Code is a symbol and its codeword.
type Code[S Symbol] struct {
	Symbol S
	Code   string
}

// Codec pairs a built tree with its code table.
type Codec[S Symbol] struct {
	tree  *Tree[S]
	table CodeTable[S]
}

// NewCodec builds an order-k tree over pairs and generates its code table.
func NewCodec[S Symbol](order int, pairs []Pair[S], opts ...Option) (*Codec[S], error) {
	tree, err := New[S](order, opts...)
	if err != nil {
		return nil, err
	}
	c := &Codec[S]{tree: tree, table: chainmap.NewCodeTable[S]()}
	c.Rebuild(pairs)
	return c, nil
}

// Rebuild replaces the tree and the code table.
func (c *Codec[S]) Rebuild(pairs []Pair[S]) {
	c.tree.Build(pairs)
	c.tree.GenerateCodes(c.table)
}

// Encode returns the digit string for symbols.
func (c *Codec[S]) Encode(symbols []S) (string, error) {
	if !c.tree.Built() {
		return "", ErrEmptyTree
	}
	return Encode(c.table, symbols)
}

// Decode returns the symbols encoded by code.
func (c *Codec[S]) Decode(code string) ([]S, error) {
	return c.tree.Decode(code)
}

// Tree returns the underlying tree.
func (c *Codec[S]) Tree() *Tree[S] {
	return c.tree
}

// Table returns the code table.
func (c *Codec[S]) Table() CodeTable[S] {
	return c.table
}

// Codes returns every codeword ordered by symbol.
func (c *Codec[S]) Codes() []Code[S] {
	keys := c.table.Keys()
	codes := make([]Code[S], 0, len(keys))
	for _, k := range keys {
		code, err := c.table.Get(k)
		if err != nil {
			continue
		}
		codes = append(codes, Code[S]{Symbol: k, Code: code})
	}
	slices.SortFunc(codes, func(a, b Code[S]) int {
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return codes
}

// Stats describes the current tree.
func (c *Codec[S]) Stats() Stats {
	return c.tree.Stats()
}
