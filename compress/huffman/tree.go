// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/intel/naryhuff/container/pqueue"
)

const (
	// MinOrder is the smallest supported merge order (binary Huffman).
	MinOrder = 2
	// MaxOrder is the largest merge order the digit alphabet can express.
	MaxOrder = len(alphabet)
)

var (
	ErrInvalidOrder  = errors.New("huffman: invalid order")
	ErrInvalidCode   = errors.New("huffman: invalid code")
	ErrEmptyTree     = errors.New("huffman: empty tree")
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")
)

// Symbol is the set of types a Tree can encode. Symbols are compared by
// numeric value when frequencies tie.
type Symbol interface {
	constraints.Integer
}

// Pair is one row of a frequency table.
type Pair[S Symbol] struct {
	Symbol    S
	Frequency uint64
}

// Option configures a Tree.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for build diagnostics. Trees are silent by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Tree is an order-k Huffman tree. It is not safe for concurrent use.
type Tree[S Symbol] struct {
	order  int
	root   *node[S]
	nextID uint64
	logger *slog.Logger
}

// New returns an empty tree of the given merge order.
func New[S Symbol](order int, opts ...Option) (*Tree[S], error) {
	if order < MinOrder || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidOrder, order, MinOrder, MaxOrder)
	}
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[S]{order: order, logger: o.logger}, nil
}

// Order returns the merge order k.
func (t *Tree[S]) Order() int {
	return t.order
}

// Built reports whether the tree has a root, i.e. the last Build received
// at least one pair.
func (t *Tree[S]) Built() bool {
	return t.root != nil
}

// Reset discards the current tree.
func (t *Tree[S]) Reset() {
	t.root = nil
}

// Padding returns the number of placeholder leaves an order-k tree over n
// symbols needs so that every merge combines exactly k nodes.
func Padding(n, order int) int {
	if n == 0 || order < MinOrder {
		return 0
	}
	if m := (n - 1) % (order - 1); m != 0 {
		return order - 1 - m
	}
	return 0
}

// Build replaces the tree with one built from pairs. Frequencies may be zero
// or repeated; symbols are expected to be distinct. An empty table leaves
// the tree without a root.
func (t *Tree[S]) Build(pairs []Pair[S]) {
	t.root = nil
	if len(pairs) == 0 {
		t.logger.Debug("huffman tree reset", "order", t.order)
		return
	}

	padding := Padding(len(pairs), t.order)
	leaves := make([]*node[S], 0, len(pairs)+padding)
	for _, p := range pairs {
		leaves = append(leaves, t.newNode(p.Symbol, p.Frequency, nil))
	}
	for i := 0; i < padding; i++ {
		n := t.newNode(0, 0, nil)
		n.placeholder = true
		leaves = append(leaves, n)
	}

	q := pqueue.New(compareNodes[S])
	q.Heapify(leaves)

	merges := 0
	for q.Len() > 1 {
		children := make([]*node[S], 0, t.order)
		var sum uint64
		for len(children) < t.order {
			n, err := q.Pop()
			if err != nil {
				break
			}
			children = append(children, n)
			sum += n.frequency
		}
		q.Push(t.newNode(0, sum, children))
		merges++
	}
	t.root, _ = q.Pop()

	t.logger.Debug("huffman tree built",
		"order", t.order,
		"symbols", len(pairs),
		"placeholders", padding,
		"merges", merges,
		"depth", depth(t.root),
	)
}

func (t *Tree[S]) newNode(symbol S, frequency uint64, children []*node[S]) *node[S] {
	n := &node[S]{
		symbol:    symbol,
		frequency: frequency,
		id:        t.nextID,
		children:  children,
	}
	t.nextID++
	return n
}

func depth[S Symbol](n *node[S]) int {
	if n == nil || n.leaf() {
		return 0
	}
	d := 0
	for _, c := range n.children {
		d = max(d, depth(c))
	}
	return d + 1
}
