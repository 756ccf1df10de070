// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package pqueue

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// verify fails the test if q does not satisfy the heap order invariant.
func verify[T any](t testing.TB, q *Queue[T]) {
	t.Helper()
	for i := 1; i < q.count; i++ {
		parent := (i - 1) / 2
		if q.compare(q.elements[i], q.elements[parent]) < 0 {
			t.Fatalf("heap order violated at %d (parent %d): %v", i, parent, q)
		}
	}
}

func drain[T any](t testing.TB, q *Queue[T]) []T {
	t.Helper()
	var out []T
	for !q.Empty() {
		v, err := q.Pop()
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, v)
		verify(t, q)
	}
	return out
}

func TestPushPop(t *testing.T) {
	q := NewOrdered[int]()
	for _, v := range []int{18, 15, 13, 25, 1, 7, 7, 40} {
		q.Push(v)
		verify(t, q)
	}
	if q.Len() != 8 {
		t.Fatalf("expected 8 elements, got %d", q.Len())
	}
	top, err := q.Peek()
	if err != nil || top != 1 {
		t.Fatalf("peek: got %d, %v", top, err)
	}
	got := drain(t, q)
	want := []int{1, 7, 7, 13, 15, 18, 25, 40}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestUnderflow(t *testing.T) {
	q := NewOrdered[int]()
	if _, err := q.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("pop on new queue: %v", err)
	}
	if _, err := q.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("peek on new queue: %v", err)
	}
	q.Push(3)
	q.Clear()
	if _, err := q.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("pop on cleared queue: %v", err)
	}
	if _, err := q.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("peek on cleared queue: %v", err)
	}
}

func TestCustomComparator(t *testing.T) {
	// max-heap through a reversed comparator
	q := New(func(a, b int) int { return b - a })
	for _, v := range []int{4, 9, 2, 7} {
		q.Push(v)
	}
	got := drain(t, q)
	if !slices.Equal(got, []int{9, 7, 4, 2}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestHeapify(t *testing.T) {
	q := NewOrdered[int]()
	q.Push(100)
	input := []int{4, 2, 1, 7, 3, 9, 10, 6, 8, 5}
	q.Heapify(input)
	verify(t, q)
	if q.Len() != len(input) {
		t.Fatalf("expected %d elements, got %d", len(input), q.Len())
	}
	if q.Contains(100) {
		t.Fatal("heapify kept old contents")
	}
	if !slices.Equal(input, []int{4, 2, 1, 7, 3, 9, 10, 6, 8, 5}) {
		t.Fatal("heapify modified its input")
	}
	got := drain(t, q)
	if !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Fatalf("unexpected order %v", got)
	}

	q.Heapify(nil)
	if !q.Empty() {
		t.Fatal("heapify of nil should leave the queue empty")
	}
}

func TestRemove(t *testing.T) {
	q := NewOrdered[int]()
	q.Heapify([]int{1, 5, 2, 6, 7, 3, 4})
	if q.Remove(42) {
		t.Fatal("removed an absent element")
	}
	if q.Len() != 7 {
		t.Fatalf("expected 7 elements, got %d", q.Len())
	}
	for _, v := range []int{5, 1, 4, 7} {
		if !q.Remove(v) {
			t.Fatalf("failed to remove %d", v)
		}
		verify(t, q)
		if q.Contains(v) {
			t.Fatalf("%d still present", v)
		}
	}
	got := drain(t, q)
	if !slices.Equal(got, []int{2, 3, 6}) {
		t.Fatalf("unexpected order %v", got)
	}
}

// The last element moved into the hole must sift up when it is smaller than
// the hole's parent.
func TestRemoveSiftsUp(t *testing.T) {
	q := NewOrdered[int]()
	q.Heapify([]int{1, 10, 2, 11, 12, 3, 4})
	// elements: [1 10 2 11 12 3 4]; removing 11 moves 4 under 10
	if !q.Remove(11) {
		t.Fatal("failed to remove 11")
	}
	verify(t, q)
	if q.elements[1] != 4 {
		t.Fatalf("expected 4 to move up to index 1, got %v", q)
	}
}

func TestRemoveFirstMatch(t *testing.T) {
	type item struct {
		key, tag int
	}
	q := New(func(a, b item) int { return a.key - b.key })
	q.Push(item{1, 0})
	q.Push(item{2, 1})
	q.Push(item{2, 2})
	first := q.elements[1]
	var released []item
	if !q.RemoveFunc(item{key: 2}, func(v item) { released = append(released, v) }) {
		t.Fatal("failed to remove")
	}
	if len(released) != 1 || released[0] != first {
		t.Fatalf("expected release of %v, got %v", first, released)
	}
	if !q.Contains(item{key: 2}) {
		t.Fatal("second duplicate should remain")
	}
}

func TestClearRelease(t *testing.T) {
	var released []int
	q := NewOrdered(WithRelease(func(v int) { released = append(released, v) }))
	q.Clear()
	if len(released) != 0 {
		t.Fatalf("clear of empty queue released %v", released)
	}
	for _, v := range []int{3, 1, 2} {
		q.Push(v)
	}
	q.Clear()
	slices.Sort(released)
	if !slices.Equal(released, []int{1, 2, 3}) {
		t.Fatalf("expected release of every element, got %v", released)
	}
	if !q.Empty() || len(q.elements) != defaultCapacity {
		t.Fatalf("clear did not reset the array: len=%d cap=%d", q.Len(), len(q.elements))
	}

	released = released[:0]
	q.Push(9)
	q.Heapify([]int{4, 5})
	if !slices.Equal(released, []int{9}) {
		t.Fatalf("heapify should release previous contents, got %v", released)
	}
}

func TestGrowth(t *testing.T) {
	q := NewOrdered[int](WithCapacity[int](1))
	last := len(q.elements)
	for i := 1000; i > 0; i-- {
		q.Push(i)
		if c := len(q.elements); c != last {
			if c < last+last/4 {
				t.Fatalf("capacity grew from %d to %d, less than 1.25x", last, c)
			}
			last = c
		}
	}
	verify(t, q)
	if v, _ := q.Peek(); v != 1 {
		t.Fatalf("expected minimum 1, got %d", v)
	}
}

func TestHeapsort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 64; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = r.Intn(20)
		}
		want := slices.Clone(input)
		slices.Sort(want)

		q := NewOrdered[int]()
		q.Heapsort(input)
		if !slices.Equal(input, want) {
			t.Fatalf("n=%d: expected %v got %v", n, want, input)
		}
	}
}

func TestAllAndString(t *testing.T) {
	q := NewOrdered[int]()
	if s := q.String(); s != "[]" {
		t.Fatalf("expected [] got %s", s)
	}
	q.Heapify([]int{3, 1, 2})
	if s := q.String(); s != "[1,3,2]" {
		t.Fatalf("expected [1,3,2] got %s", s)
	}
	var seen []int
	for v := range q.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 3}) {
		t.Fatalf("unexpected iteration %v", seen)
	}
}

func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := NewOrdered[int]()
	var model []int
	for step := 0; step < 5000; step++ {
		switch op := r.Intn(4); {
		case op < 2:
			v := r.Intn(100)
			q.Push(v)
			model = append(model, v)
		case op == 2:
			v, err := q.Pop()
			if len(model) == 0 {
				if !errors.Is(err, ErrUnderflow) {
					t.Fatalf("step %d: expected underflow, got %v", step, err)
				}
				continue
			}
			slices.Sort(model)
			if err != nil || v != model[0] {
				t.Fatalf("step %d: expected %d got %d (%v)", step, model[0], v, err)
			}
			model = model[1:]
		default:
			v := r.Intn(100)
			i := slices.Index(model, v)
			if q.Remove(v) != (i >= 0) {
				t.Fatalf("step %d: remove(%d) disagreed with model", step, v)
			}
			if i >= 0 {
				model = slices.Delete(model, i, i+1)
			}
		}
		verify(t, q)
		if q.Len() != len(model) {
			t.Fatalf("step %d: expected %d elements got %d", step, len(model), q.Len())
		}
	}
}

func BenchmarkPushPop(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	input := make([]int, 4096)
	for i := range input {
		input[i] = r.Int()
	}
	b.Run("push", func(b *testing.B) {
		q := NewOrdered[int]()
		for i := 0; i < b.N; i++ {
			for _, v := range input {
				q.Push(v)
			}
			for !q.Empty() {
				q.Pop()
			}
		}
	})
	b.Run("heapify", func(b *testing.B) {
		q := NewOrdered[int]()
		for i := 0; i < b.N; i++ {
			q.Heapify(input)
			for !q.Empty() {
				q.Pop()
			}
		}
	})
}
