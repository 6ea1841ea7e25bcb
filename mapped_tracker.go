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

// mapTracker is a hash-map-backed position tracker, for elements that do
// not carry a dense integer identity. Operations are amortized O(1).
type mapTracker[N comparable] struct {
	positions map[N]int
}

func newMapTracker[N comparable](capacity int) *mapTracker[N] {
	return &mapTracker[N]{positions: make(map[N]int, capacity)}
}

func (t *mapTracker[N]) clear() {
	clear(t.positions)
}

func (t *mapTracker[N]) contains(e N) bool {
	_, ok := t.positions[e]
	return ok
}

func (t *mapTracker[N]) positionOf(e N) (int, bool) {
	slot, ok := t.positions[e]
	return slot, ok
}

func (t *mapTracker[N]) insert(e N, slot int) {
	if _, ok := t.positions[e]; ok {
		panic(&DuplicateInsertError{})
	}
	t.positions[e] = slot
}

func (t *mapTracker[N]) remove(e N) {
	delete(t.positions, e)
}

func (t *mapTracker[N]) updatePositionOf(e N, slot int) {
	t.positions[e] = slot
}
