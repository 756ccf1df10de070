// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package chainmap implements a hash map that resolves collisions by
// separate chaining. Buckets are indexed by an xxhash digest of the key and
// the table grows by half once the load factor is exceeded.
//
// Its main client is the Huffman code table: NewCodeTable returns a map
// from integer symbols to code strings that satisfies huffman.CodeTable.
package chainmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

const (
	defaultCapacity   = 10
	defaultLoadFactor = 0.75
)

// ErrKeyNotFound is returned by Get for a key that is not in the map.
var ErrKeyNotFound = errors.New("chainmap: key not found")

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a separate-chaining hash map. The zero value is not usable; create
// maps with New, NewInteger or NewString.
type Map[K comparable, V any] struct {
	buckets    [][]entry[K, V]
	count      int
	loadFactor float64
	hash       func(K) uint64
}

// Option configures a Map.
type Option func(*settings)

type settings struct {
	capacity   int
	loadFactor float64
}

// WithCapacity sets the initial number of buckets.
func WithCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}

// WithLoadFactor sets the ratio of entries to buckets above which the table
// grows. Values outside (0, 1] are ignored.
func WithLoadFactor(loadFactor float64) Option {
	return func(s *settings) {
		if loadFactor > 0 && loadFactor <= 1 {
			s.loadFactor = loadFactor
		}
	}
}

// New returns an empty map that places keys using hash.
func New[K comparable, V any](hash func(K) uint64, opts ...Option) *Map[K, V] {
	s := settings{capacity: defaultCapacity, loadFactor: defaultLoadFactor}
	for _, opt := range opts {
		opt(&s)
	}
	return &Map[K, V]{
		buckets:    make([][]entry[K, V], s.capacity),
		loadFactor: s.loadFactor,
		hash:       hash,
	}
}

// NewInteger returns an empty map keyed by an integer type.
func NewInteger[K constraints.Integer, V any](opts ...Option) *Map[K, V] {
	return New[K, V](IntegerHash[K], opts...)
}

// NewString returns an empty map keyed by strings.
func NewString[V any](opts ...Option) *Map[string, V] {
	return New[string, V](xxhash.Sum64String, opts...)
}

// NewCodeTable returns a map from symbols to code strings.
func NewCodeTable[S constraints.Integer](opts ...Option) *Map[S, string] {
	return NewInteger[S, string](opts...)
}

// IntegerHash hashes the 64-bit little endian form of key.
func IntegerHash[K constraints.Integer](key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return xxhash.Sum64(buf[:])
}

// Put associates value with key, replacing any previous value.
func (m *Map[K, V]) Put(key K, value V) {
	m.Swap(key, value)
}

// Swap associates value with key and returns the previous value, if any.
func (m *Map[K, V]) Swap(key K, value V) (previous V, loaded bool) {
	b := m.bucket(key)
	for i := range m.buckets[b] {
		if m.buckets[b][i].key == key {
			previous = m.buckets[b][i].value
			m.buckets[b][i].value = value
			return previous, true
		}
	}
	m.buckets[b] = append(m.buckets[b], entry[K, V]{key: key, value: value})
	m.count++
	m.ensureLoadFactor()
	return previous, false
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	if v, ok := m.Lookup(key); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Lookup returns the value stored for key and whether it was present.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	for _, e := range m.buckets[m.bucket(key)] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes key and returns its value and whether it was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	b := m.bucket(key)
	for i, e := range m.buckets[b] {
		if e.key == key {
			chain := m.buckets[b]
			chain[i] = chain[len(chain)-1]
			chain[len(chain)-1] = entry[K, V]{}
			m.buckets[b] = chain[:len(chain)-1]
			m.count--
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Lookup(key)
	return ok
}

// ContainsValue reports whether some key maps to a value for which equal
// returns true.
func (m *Map[K, V]) ContainsValue(value V, equal func(a, b V) bool) bool {
	for _, chain := range m.buckets {
		for _, e := range chain {
			if equal(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Keys returns every key in bucket order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for _, chain := range m.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns every value in bucket order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	for _, chain := range m.buckets {
		for _, e := range chain {
			values = append(values, e.value)
		}
	}
	return values
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.count == 0
}

// Clear removes every entry and shrinks the table back to its default size.
func (m *Map[K, V]) Clear() {
	m.buckets = make([][]entry[K, V], defaultCapacity)
	m.count = 0
}

// Capacity returns the number of buckets.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

func (m *Map[K, V]) bucket(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

func (m *Map[K, V]) ensureLoadFactor() {
	capacity := len(m.buckets)
	for float64(m.count) > m.loadFactor*float64(capacity) {
		capacity = int(math.Ceil(float64(capacity) * 1.5))
	}
	if capacity != len(m.buckets) {
		m.rehash(capacity)
	}
}

func (m *Map[K, V]) rehash(capacity int) {
	old := m.buckets
	m.buckets = make([][]entry[K, V], capacity)
	for _, chain := range old {
		for _, e := range chain {
			b := m.bucket(e.key)
			m.buckets[b] = append(m.buckets[b], e)
		}
	}
}
