// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "fmt"

// Decode turns a digit string back into symbols. The whole call fails with
// ErrInvalidCode if code contains a character outside the alphabet, a branch
// the current node does not have, the codeword of a placeholder, or ends in
// the middle of a codeword. An empty code decodes to no symbols.
func (t *Tree[S]) Decode(code string) ([]S, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	if t.root.leaf() {
		return t.decodeSingle(code)
	}

	out := make([]S, 0, len(code))
	current := t.root
	for i := 0; i < len(code); i++ {
		idx, ok := Index(code[i])
		if !ok {
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrInvalidCode, code[i], i)
		}
		if idx >= len(current.children) {
			return nil, fmt.Errorf("%w: branch %c at offset %d out of range", ErrInvalidCode, code[i], i)
		}
		current = current.children[idx]
		if !current.leaf() {
			continue
		}
		if current.placeholder {
			return nil, fmt.Errorf("%w: padding codeword ending at offset %d", ErrInvalidCode, i)
		}
		out = append(out, current.symbol)
		current = t.root
	}
	if current != t.root {
		return nil, fmt.Errorf("%w: truncated codeword at end of input", ErrInvalidCode)
	}
	return out, nil
}

// decodeSingle handles a tree whose root is its only leaf: every character
// must be the fixed one digit code.
func (t *Tree[S]) decodeSingle(code string) ([]S, error) {
	if t.root.placeholder {
		return nil, ErrEmptyTree
	}
	want := Digit(t.order - 1)
	out := make([]S, len(code))
	for i := 0; i < len(code); i++ {
		if code[i] != want {
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrInvalidCode, code[i], i)
		}
		out[i] = t.root.symbol
	}
	return out, nil
}
