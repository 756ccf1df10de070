// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package pqueue implements an array backed binary min-heap with an
// injected three-way comparator.
//
// Unlike container/heap, a Queue supports removing an arbitrary element by
// value and rebuilding itself from a slice in linear time. The comparator is
// the only notion of order and equality the queue has: Contains and Remove
// match elements for which compare returns 0.
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"
)

const defaultCapacity = 10

// ErrUnderflow is returned by Pop and Peek on an empty queue.
var ErrUnderflow = errors.New("pqueue: underflow")

// Queue is a binary min-heap over elements of type T.
type Queue[T any] struct {
	elements []T // elements[:count] is a valid heap
	count    int
	compare  func(a, b T) int
	release  func(T)
}

// Option configures a Queue.
type Option[T any] func(*Queue[T])

// WithRelease registers a hook run over every element still held by the
// queue when it is cleared or rebuilt by Heapify. Use it when the queue
// owns resources reachable from its elements.
func WithRelease[T any](release func(T)) Option[T] {
	return func(q *Queue[T]) {
		q.release = release
	}
}

// WithCapacity sets the initial capacity of the element array.
func WithCapacity[T any](capacity int) Option[T] {
	return func(q *Queue[T]) {
		if capacity > 0 {
			q.elements = make([]T, capacity)
		}
	}
}

// New returns an empty queue ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to
// or greater than b.
func New[T any](compare func(a, b T) int, opts ...Option[T]) *Queue[T] {
	if compare == nil {
		panic("pqueue: nil comparator")
	}
	q := &Queue[T]{
		elements: make([]T, defaultCapacity),
		compare:  compare,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewOrdered returns an empty queue using the natural order of T.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Queue[T] {
	return New(cmp.Compare[T], opts...)
}

// Push adds item to the queue. The complexity is O(log n).
func (q *Queue[T]) Push(item T) {
	q.ensureCapacity(q.count + 1)
	q.elements[q.count] = item
	q.count++
	q.up(q.count - 1)
}

// Pop removes and returns the minimum element.
// The complexity is O(log n).
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrUnderflow
	}
	item := q.elements[0]
	q.count--
	q.elements[0] = q.elements[q.count]
	q.elements[q.count] = zero
	q.down(0)
	return item, nil
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return q.elements[0], nil
}

// Remove deletes the first element, in array order, that compares equal to
// item. It reports whether an element was removed.
func (q *Queue[T]) Remove(item T) bool {
	return q.RemoveFunc(item, nil)
}

// RemoveFunc is like Remove but also calls release, if not nil, on the
// removed element.
func (q *Queue[T]) RemoveFunc(item T, release func(T)) bool {
	idx := q.index(item)
	if idx < 0 {
		return false
	}
	removed := q.elements[idx]

	var zero T
	q.count--
	q.elements[idx] = q.elements[q.count]
	q.elements[q.count] = zero

	// The element moved into the hole may belong above or below it.
	if idx < q.count {
		if idx > 0 && q.less(idx, (idx-1)/2) {
			q.up(idx)
		} else {
			left, right := 2*idx+1, 2*idx+2
			if (left < q.count && q.less(left, idx)) || (right < q.count && q.less(right, idx)) {
				q.down(idx)
			}
		}
	}

	if release != nil {
		release(removed)
	}
	return true
}

// Contains reports whether some element compares equal to item.
func (q *Queue[T]) Contains(item T) bool {
	return q.index(item) >= 0
}

// Heapify replaces the contents of the queue with a copy of items and
// restores heap order bottom-up. The complexity is O(n).
func (q *Queue[T]) Heapify(items []T) {
	q.Clear()
	q.ensureCapacity(len(items))
	copy(q.elements, items)
	q.count = len(items)
	for i := (q.count - 2) / 2; i >= 0; i-- {
		q.down(i)
	}
}

// Heapsort sorts items in ascending order using the queue's comparator.
// The queue's previous contents are discarded.
func (q *Queue[T]) Heapsort(items []T) {
	q.Heapify(items)
	for i := range items {
		items[i], _ = q.Pop()
	}
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.count
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.count == 0
}

// Clear runs the release hook over the held elements, if one was
// registered, and resets the queue to an empty array of default capacity.
func (q *Queue[T]) Clear() {
	if q.release != nil {
		for _, e := range q.elements[:q.count] {
			q.release(e)
		}
	}
	q.elements = make([]T, defaultCapacity)
	q.count = 0
}

// All yields the elements in array (heap) order, not in sorted order.
// The queue must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range q.elements[:q.count] {
			if !yield(e) {
				return
			}
		}
	}
}

// String formats the elements in array order as [e0,e1,...].
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range q.elements[:q.count] {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (q *Queue[T]) ensureCapacity(minCapacity int) {
	if minCapacity <= len(q.elements) {
		return
	}
	capacity := len(q.elements)
	for capacity < minCapacity {
		capacity += capacity >> 2
		if capacity < defaultCapacity {
			capacity = defaultCapacity
		}
	}
	elements := make([]T, capacity)
	copy(elements, q.elements[:q.count])
	q.elements = elements
}

func (q *Queue[T]) index(item T) int {
	for i, e := range q.elements[:q.count] {
		if q.compare(e, item) == 0 {
			return i
		}
	}
	return -1
}

func (q *Queue[T]) less(i, j int) bool {
	return q.compare(q.elements[i], q.elements[j]) < 0
}

func (q *Queue[T]) swap(i, j int) {
	q.elements[i], q.elements[j] = q.elements[j], q.elements[i]
}

func (q *Queue[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *Queue[T]) down(i int) {
	for {
		left := 2*i + 1
		if left >= q.count {
			break
		}
		small := left
		if right := left + 1; right < q.count && !q.less(left, right) {
			small = right
		}
		if !q.less(small, i) {
			break
		}
		q.swap(i, small)
		i = small
	}
}
