// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package chainmap

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

func TestPutGet(t *testing.T) {
	m := NewCodeTable[byte]()
	m.Put('A', "0")
	m.Put('B', "10")
	if v, err := m.Get('A'); err != nil || v != "0" {
		t.Fatalf("get A: %q %v", v, err)
	}
	prev, loaded := m.Swap('A', "11")
	if !loaded || prev != "0" {
		t.Fatalf("swap returned %q %v", prev, loaded)
	}
	if v, _ := m.Get('A'); v != "11" {
		t.Fatalf("expected replaced value, got %q", v)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
	if _, err := m.Get('Z'); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if m.ContainsKey('Z') || !m.ContainsKey('B') {
		t.Fatal("ContainsKey disagrees with contents")
	}
	eq := func(a, b string) bool { return a == b }
	if !m.ContainsValue("10", eq) || m.ContainsValue("0", eq) {
		t.Fatal("ContainsValue disagrees with contents")
	}
}

func TestRehash(t *testing.T) {
	m := NewInteger[int, int]()
	for i := 0; i < 1000; i++ {
		m.Put(i, i*i)
		if float64(m.Len()) > defaultLoadFactor*float64(m.Capacity()) {
			t.Fatalf("load factor exceeded: %d entries in %d buckets", m.Len(), m.Capacity())
		}
	}
	for i := 0; i < 1000; i++ {
		if v, err := m.Get(i); err != nil || v != i*i {
			t.Fatalf("get %d: %d %v", i, v, err)
		}
	}
	keys := m.Keys()
	slices.Sort(keys)
	if len(keys) != 1000 || keys[0] != 0 || keys[999] != 999 {
		t.Fatalf("unexpected keys (%d)", len(keys))
	}
	if len(m.Values()) != 1000 {
		t.Fatal("values length mismatch")
	}
}

func TestRemoveAndClear(t *testing.T) {
	m := NewString[int](WithCapacity(2), WithLoadFactor(1))
	for i := 0; i < 20; i++ {
		m.Put("k"+strconv.Itoa(i), i)
	}
	if v, ok := m.Remove("k7"); !ok || v != 7 {
		t.Fatalf("remove k7: %d %v", v, ok)
	}
	if _, ok := m.Remove("k7"); ok {
		t.Fatal("removed k7 twice")
	}
	if m.Len() != 19 || m.ContainsKey("k7") {
		t.Fatal("remove left the map inconsistent")
	}
	m.Clear()
	if !m.Empty() || m.Capacity() != defaultCapacity || len(m.Keys()) != 0 {
		t.Fatal("clear did not reset the map")
	}
	m.Put("x", 1)
	if v, _ := m.Get("x"); v != 1 {
		t.Fatal("map unusable after clear")
	}
}

func TestIntegerHashSpreads(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 256; i++ {
		seen[IntegerHash(byte(i))] = true
	}
	if len(seen) != 256 {
		t.Fatalf("expected 256 distinct digests, got %d", len(seen))
	}
}
