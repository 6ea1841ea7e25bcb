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

// MappedHeap is a d-ary min-heap backed by a hash-map position tracker. It
// offers the same revise capability as IndexedHeap (decrease-key,
// update-key, remove, contains, key-of) without requiring elements to
// carry a dense integer identity — only comparability, so that the map can
// key on the element itself. Prefer IndexedHeap when the elements are
// already small dense integers and the index bound is known up front;
// prefer MappedHeap when they are not, or when the set of elements that
// will ever enter the queue is sparse relative to some larger universe.
//
// MappedHeap is not safe for concurrent use without external
// synchronization.
type MappedHeap[N comparable, K constraints.Ordered] struct {
	engine *engine[N, K]
}

// NewMappedHeap creates an empty MappedHeap with branching factor d.
func NewMappedHeap[N comparable, K constraints.Ordered](d int) *MappedHeap[N, K] {
	return NewMappedHeapWithCapacity[N, K](d, 0)
}

// NewMappedHeapWithCapacity creates an empty MappedHeap with branching
// factor d and a capacity hint for both the tree and the backing map.
func NewMappedHeapWithCapacity[N comparable, K constraints.Ordered](d, capacity int) *MappedHeap[N, K] {
	return &MappedHeap[N, K]{engine: newEngine[N, K](d, capacity, newMapTracker[N](capacity))}
}

func (h *MappedHeap[N, K]) Len() int      { return h.engine.len() }
func (h *MappedHeap[N, K]) IsEmpty() bool { return h.engine.isEmpty() }
func (h *MappedHeap[N, K]) Cap() int      { return h.engine.capacity() }

func (h *MappedHeap[N, K]) Peek() (N, K, bool) { return h.engine.peek() }

func (h *MappedHeap[N, K]) Clear() { h.engine.clear() }

func (h *MappedHeap[N, K]) Pop() (N, K, bool) { return h.engine.pop() }

func (h *MappedHeap[N, K]) PopNode() (N, bool) {
	elem, _, ok := h.engine.pop()
	return elem, ok
}

func (h *MappedHeap[N, K]) PopKey() (K, bool) {
	_, key, ok := h.engine.pop()
	return key, ok
}

// Push adds (elem, key) to the queue.
//
// Panics with *DuplicateInsertError if elem is already present.
func (h *MappedHeap[N, K]) Push(elem N, key K) { h.engine.push(elem, key) }

func (h *MappedHeap[N, K]) PushThenPop(elem N, key K) (N, K) {
	return h.engine.pushThenPop(elem, key)
}

func (h *MappedHeap[N, K]) AsSlice() []Pair[N, K] { return h.engine.asSlice() }

func (h *MappedHeap[N, K]) Contains(elem N) bool { return h.engine.contains(elem) }

func (h *MappedHeap[N, K]) KeyOf(elem N) (K, bool) { return h.engine.keyOf(elem) }

func (h *MappedHeap[N, K]) DecreaseKey(elem N, newKey K) { h.engine.decreaseKey(elem, newKey) }

func (h *MappedHeap[N, K]) UpdateKey(elem N, newKey K) ResUpdateKey {
	return h.engine.updateKey(elem, newKey)
}

func (h *MappedHeap[N, K]) Remove(elem N) K { return h.engine.remove(elem) }

// Clone returns an independent MappedHeap with identical observable
// state.
func (h *MappedHeap[N, K]) Clone() *MappedHeap[N, K] {
	clonedTree := make([]Pair[N, K], len(h.engine.tree), cap(h.engine.tree))
	copy(clonedTree, h.engine.tree)

	srcTracker := h.engine.tracker.(*mapTracker[N])
	clonedPositions := make(map[N]int, len(srcTracker.positions))
	for k, v := range srcTracker.positions {
		clonedPositions[k] = v
	}
	clonedTracker := &mapTracker[N]{positions: clonedPositions}

	return &MappedHeap[N, K]{engine: &engine[N, K]{
		d:       h.engine.d,
		offset:  h.engine.offset,
		tree:    clonedTree,
		tracker: clonedTracker,
	}}
}

var (
	_ Queue[int, int]       = (*MappedHeap[int, int])(nil)
	_ ReviseQueue[int, int] = (*MappedHeap[int, int])(nil)
)
