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

// HasIndex is implemented by elements entering an IndexedHeap. Index is
// expected to be a stable identifier drawn from the half-open range
// [0, indexBound) — for example, the id of a node in a fixed-size graph.
// Having a stable integer identity lets the heap track an element's
// position with a plain array instead of a hash map.
type HasIndex interface {
	Index() int
}

const absentSlot = -1

// denseTracker is an array-backed position tracker: a preallocated array
// of size indexBound, one cell per possible element identity, holding
// either the element's current slot or absentSlot.
// Every operation is O(1); clear is O(indexBound), not O(occupancy), which
// is acceptable because occupancy is expected to approach indexBound in the
// heap's intended use (e.g. Dijkstra over a fixed-size graph).
type denseTracker[N HasIndex] struct {
	positions  []int
	indexBound int
}

func newDenseTracker[N HasIndex](indexBound int) *denseTracker[N] {
	t := &denseTracker[N]{
		positions:  make([]int, indexBound),
		indexBound: indexBound,
	}
	t.clear()
	return t
}

func (t *denseTracker[N]) clear() {
	for i := range t.positions {
		t.positions[i] = absentSlot
	}
}

func (t *denseTracker[N]) contains(e N) bool {
	return t.positions[e.Index()] != absentSlot
}

func (t *denseTracker[N]) positionOf(e N) (int, bool) {
	slot := t.positions[e.Index()]
	return slot, slot != absentSlot
}

func (t *denseTracker[N]) insert(e N, slot int) {
	idx := e.Index()
	if idx < 0 || idx >= t.indexBound {
		panic(&IndexOutOfBoundError{Index: idx, IndexBound: t.indexBound})
	}
	if t.positions[idx] != absentSlot {
		panic(&DuplicateInsertError{})
	}
	t.positions[idx] = slot
}

func (t *denseTracker[N]) remove(e N) {
	t.positions[e.Index()] = absentSlot
}

func (t *denseTracker[N]) updatePositionOf(e N, slot int) {
	t.positions[e.Index()] = slot
}
