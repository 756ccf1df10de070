// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package codebook reads and writes the frequency tables a Huffman codec is
// built from. A codebook is an order plus a list of byte symbols with their
// frequencies, stored as YAML, JSONC or CBOR depending on the file
// extension.
package codebook

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/intel/naryhuff"
	"github.com/intel/naryhuff/compress/huffman"
)

var ErrInvalid = errors.New("codebook: invalid")

// Entry is one symbol of a codebook. Exactly one of Symbol, a one byte
// string, or Byte, its numeric value, is set.
type Entry struct {
	Symbol    *string `yaml:"symbol,omitempty" json:"symbol,omitempty" cbor:"symbol,omitempty"`
	Byte      *int    `yaml:"byte,omitempty" json:"byte,omitempty" cbor:"byte,omitempty"`
	Frequency uint64  `yaml:"frequency" json:"frequency" cbor:"frequency"`
}

// Value returns the byte the entry stands for.
func (e Entry) Value() (byte, error) {
	switch {
	case e.Symbol != nil && e.Byte != nil:
		return 0, fmt.Errorf("%w: entry sets both symbol and byte", ErrInvalid)
	case e.Symbol != nil:
		if len(*e.Symbol) != 1 {
			return 0, fmt.Errorf("%w: symbol %q is not a single byte", ErrInvalid, *e.Symbol)
		}
		return (*e.Symbol)[0], nil
	case e.Byte != nil:
		if *e.Byte < 0 || *e.Byte > 255 {
			return 0, fmt.Errorf("%w: byte %d out of range", ErrInvalid, *e.Byte)
		}
		return byte(*e.Byte), nil
	}
	return 0, fmt.Errorf("%w: entry has neither symbol nor byte", ErrInvalid)
}

// Codebook is an order and a byte frequency table.
type Codebook struct {
	Order   int     `yaml:"order" json:"order" cbor:"order"`
	Entries []Entry `yaml:"entries" json:"entries" cbor:"entries"`
}

// FromText derives a codebook of the given order from the byte frequencies
// of data. Printable ASCII is written as symbols, everything else as bytes.
func FromText(order int, data []byte) *Codebook {
	pairs := huffman.CountBytes(data)
	c := &Codebook{Order: order, Entries: make([]Entry, 0, len(pairs))}
	for _, p := range pairs {
		c.Entries = append(c.Entries, newEntry(p.Symbol, p.Frequency))
	}
	return c
}

func newEntry(b byte, frequency uint64) Entry {
	if b >= ' ' && b <= '~' {
		s := string([]byte{b})
		return Entry{Symbol: &s, Frequency: frequency}
	}
	v := int(b)
	return Entry{Byte: &v, Frequency: frequency}
}

// Validate checks the order and that every entry names a distinct byte.
func (c *Codebook) Validate() error {
	_, err := c.Pairs()
	return err
}

// Pairs returns the validated frequency table in entry order.
func (c *Codebook) Pairs() ([]huffman.Pair[byte], error) {
	if !naryhuff.SupportedOrder(c.Order) {
		return nil, fmt.Errorf("%w: order %d not in [%d, %d]", ErrInvalid, c.Order, huffman.MinOrder, naryhuff.MaxOrder)
	}
	var seen [256]bool
	pairs := make([]huffman.Pair[byte], 0, len(c.Entries))
	for i, e := range c.Entries {
		b, err := e.Value()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[b] {
			return nil, fmt.Errorf("%w: entry %d repeats byte %#02x", ErrInvalid, i, b)
		}
		seen[b] = true
		pairs = append(pairs, huffman.Pair[byte]{Symbol: b, Frequency: e.Frequency})
	}
	return pairs, nil
}

// Codec builds a byte codec from the codebook.
func (c *Codebook) Codec(opts ...huffman.Option) (*huffman.Codec[byte], error) {
	pairs, err := c.Pairs()
	if err != nil {
		return nil, err
	}
	return huffman.NewCodec(c.Order, pairs, opts...)
}

// canonical returns an equivalent codebook with entries sorted by byte and
// every entry in its preferred form.
func (c *Codebook) canonical() (*Codebook, error) {
	pairs, err := c.Pairs()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(pairs, func(a, b huffman.Pair[byte]) int {
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	out := &Codebook{Order: c.Order, Entries: make([]Entry, len(pairs))}
	for i, p := range pairs {
		out.Entries[i] = newEntry(p.Symbol, p.Frequency)
	}
	return out, nil
}
