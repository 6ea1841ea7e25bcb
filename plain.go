// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dary

import "golang.org/x/exp/constraints"

// PlainHeap is a d-ary min-heap with no position tracker. It is the
// cheapest of the three concrete heaps and the only one that behaves as a
// multiset: nothing prevents the same element from being pushed more than
// once, and there is no way to locate, revise, or remove an
// already-enqueued element short of popping down to it.
//
// PlainHeap is not safe for concurrent use without external
// synchronization.
type PlainHeap[N any, K constraints.Ordered] struct {
	engine *engine[N, K]
}

// NewPlainHeap creates an empty PlainHeap with branching factor d (d must
// be >= 2; 2, 4, 8, 16, 32, 64 get specialized arithmetic).
func NewPlainHeap[N any, K constraints.Ordered](d int) *PlainHeap[N, K] {
	return NewPlainHeapWithCapacity[N, K](d, 0)
}

// NewPlainHeapWithCapacity creates an empty PlainHeap with branching
// factor d and a capacity hint, to avoid reallocating the tree on the hot
// path of the first capacity pushes.
func NewPlainHeapWithCapacity[N any, K constraints.Ordered](d, capacity int) *PlainHeap[N, K] {
	return &PlainHeap[N, K]{engine: newEngine[N, K](d, capacity, noneTracker[N]{})}
}

func (h *PlainHeap[N, K]) Len() int      { return h.engine.len() }
func (h *PlainHeap[N, K]) IsEmpty() bool { return h.engine.isEmpty() }
func (h *PlainHeap[N, K]) Cap() int      { return h.engine.capacity() }

func (h *PlainHeap[N, K]) Peek() (N, K, bool) { return h.engine.peek() }

func (h *PlainHeap[N, K]) Clear() { h.engine.clear() }

func (h *PlainHeap[N, K]) Pop() (N, K, bool) { return h.engine.pop() }

func (h *PlainHeap[N, K]) PopNode() (N, bool) {
	elem, _, ok := h.engine.pop()
	return elem, ok
}

func (h *PlainHeap[N, K]) PopKey() (K, bool) {
	_, key, ok := h.engine.pop()
	return key, ok
}

func (h *PlainHeap[N, K]) Push(elem N, key K) { h.engine.push(elem, key) }

func (h *PlainHeap[N, K]) PushThenPop(elem N, key K) (N, K) {
	return h.engine.pushThenPop(elem, key)
}

func (h *PlainHeap[N, K]) AsSlice() []Pair[N, K] { return h.engine.asSlice() }

// Clone returns an independent PlainHeap with identical observable state.
func (h *PlainHeap[N, K]) Clone() *PlainHeap[N, K] {
	clonedTree := make([]Pair[N, K], len(h.engine.tree), cap(h.engine.tree))
	copy(clonedTree, h.engine.tree)
	return &PlainHeap[N, K]{engine: &engine[N, K]{
		d:       h.engine.d,
		offset:  h.engine.offset,
		tree:    clonedTree,
		tracker: noneTracker[N]{},
	}}
}

var _ Queue[int, int] = (*PlainHeap[int, int])(nil)
