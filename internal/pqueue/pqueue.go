// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pqueue is the event queue of the sweep: a binary heap whose
// entries can be withdrawn before they are popped.
package pqueue

import "container/heap"

// Item is the handle returned by Push.
type Item[T any] struct {
	Value T
	index int
}

func (it *Item[T]) Queued() bool {
	return it.index >= 0
}

type Queue[T any] struct {
	h items[T]
}

// New returns an empty queue popping the least value by less first.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: items[T]{less: less}}
}

func (q *Queue[T]) Len() int {
	return len(q.h.s)
}

func (q *Queue[T]) Push(v T) *Item[T] {
	it := &Item[T]{Value: v}
	heap.Push(&q.h, it)
	return it
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.h.s) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&q.h).(*Item[T]).Value, true
}

// Remove withdraws it. It is a no-op for items already popped or removed.
func (q *Queue[T]) Remove(it *Item[T]) bool {
	if !it.Queued() || it.index >= len(q.h.s) || q.h.s[it.index] != it {
		return false
	}
	heap.Remove(&q.h, it.index)
	return true
}

type items[T any] struct {
	s    []*Item[T]
	less func(a, b T) bool
}

func (h *items[T]) Len() int { return len(h.s) }

func (h *items[T]) Less(i, j int) bool { return h.less(h.s[i].Value, h.s[j].Value) }

func (h *items[T]) Swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
	h.s[i].index, h.s[j].index = i, j
}

func (h *items[T]) Push(x any) {
	it := x.(*Item[T])
	it.index = len(h.s)
	h.s = append(h.s, it)
}

func (h *items[T]) Pop() any {
	last := len(h.s) - 1
	it := h.s[last]
	h.s[last] = nil
	h.s = h.s[:last]
	it.index = -1
	return it
}
