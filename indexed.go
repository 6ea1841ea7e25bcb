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

// IndexedHeap is a d-ary min-heap backed by a dense, array-based position
// tracker. Elements must implement HasIndex with a stable identifier drawn
// from the half-open range [0, IndexBound()); this is the heap of choice for
// algorithms like Dijkstra's shortest path over a fixed-size graph, where
// node ids are already small dense integers and a plain array outperforms
// a hash map.
//
// IndexedHeap is not safe for concurrent use without external
// synchronization.
type IndexedHeap[N HasIndex, K constraints.Ordered] struct {
	engine  *engine[N, K]
	tracker *denseTracker[N]
}

// NewIndexedHeap creates an empty IndexedHeap with branching factor d and
// the given strict upper bound on element identifiers.
func NewIndexedHeap[N HasIndex, K constraints.Ordered](d, indexBound int) *IndexedHeap[N, K] {
	t := newDenseTracker[N](indexBound)
	return &IndexedHeap[N, K]{
		engine:  newEngine[N, K](d, indexBound, t),
		tracker: t,
	}
}

// IndexBound returns the strict upper bound on element identifiers that
// may be pushed to this heap.
func (h *IndexedHeap[N, K]) IndexBound() int { return h.tracker.indexBound }

func (h *IndexedHeap[N, K]) Len() int      { return h.engine.len() }
func (h *IndexedHeap[N, K]) IsEmpty() bool { return h.engine.isEmpty() }
func (h *IndexedHeap[N, K]) Cap() int      { return h.engine.capacity() }

func (h *IndexedHeap[N, K]) Peek() (N, K, bool) { return h.engine.peek() }

func (h *IndexedHeap[N, K]) Clear() { h.engine.clear() }

func (h *IndexedHeap[N, K]) Pop() (N, K, bool) { return h.engine.pop() }

func (h *IndexedHeap[N, K]) PopNode() (N, bool) {
	elem, _, ok := h.engine.pop()
	return elem, ok
}

func (h *IndexedHeap[N, K]) PopKey() (K, bool) {
	_, key, ok := h.engine.pop()
	return key, ok
}

// Push adds (elem, key) to the queue.
//
// Panics with *IndexOutOfBoundError if elem.Index() >= h.IndexBound(), or
// with *DuplicateInsertError if elem is already present.
func (h *IndexedHeap[N, K]) Push(elem N, key K) { h.engine.push(elem, key) }

func (h *IndexedHeap[N, K]) PushThenPop(elem N, key K) (N, K) {
	return h.engine.pushThenPop(elem, key)
}

func (h *IndexedHeap[N, K]) AsSlice() []Pair[N, K] { return h.engine.asSlice() }

func (h *IndexedHeap[N, K]) Contains(elem N) bool { return h.engine.contains(elem) }

func (h *IndexedHeap[N, K]) KeyOf(elem N) (K, bool) { return h.engine.keyOf(elem) }

func (h *IndexedHeap[N, K]) DecreaseKey(elem N, newKey K) { h.engine.decreaseKey(elem, newKey) }

func (h *IndexedHeap[N, K]) UpdateKey(elem N, newKey K) ResUpdateKey {
	return h.engine.updateKey(elem, newKey)
}

func (h *IndexedHeap[N, K]) Remove(elem N) K { return h.engine.remove(elem) }

// Clone returns an independent IndexedHeap with identical observable
// state.
func (h *IndexedHeap[N, K]) Clone() *IndexedHeap[N, K] {
	clonedTree := make([]Pair[N, K], len(h.engine.tree), cap(h.engine.tree))
	copy(clonedTree, h.engine.tree)
	clonedPositions := make([]int, len(h.tracker.positions))
	copy(clonedPositions, h.tracker.positions)
	clonedTracker := &denseTracker[N]{positions: clonedPositions, indexBound: h.tracker.indexBound}
	return &IndexedHeap[N, K]{
		engine: &engine[N, K]{
			d:       h.engine.d,
			offset:  h.engine.offset,
			tree:    clonedTree,
			tracker: clonedTracker,
		},
		tracker: clonedTracker,
	}
}

var (
	_ Queue[indexedStub, int]       = (*IndexedHeap[indexedStub, int])(nil)
	_ ReviseQueue[indexedStub, int] = (*IndexedHeap[indexedStub, int])(nil)
)

type indexedStub int

func (s indexedStub) Index() int { return int(s) }
