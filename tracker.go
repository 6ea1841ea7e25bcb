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

// tracker is the position-tracker contract: a side structure mapping an
// element to its current logical index (slot) in the engine's
// tree. The engine notifies the tracker on every slot move so that
// DecreaseKey/UpdateKey/Remove can locate an already-enqueued element in
// O(log_d n) instead of scanning the tree.
type tracker[N any] interface {
	// clear forgets every tracked element.
	clear()

	// contains reports whether e is currently tracked.
	contains(e N) bool

	// positionOf returns the slot currently recorded for e, if any.
	positionOf(e N) (slot int, ok bool)

	// insert records e at slot. Preconditions: e is not already tracked.
	insert(e N, slot int)

	// remove forgets e. Preconditions: e is currently tracked.
	remove(e N)

	// updatePositionOf moves the record for e to slot. Preconditions: e is
	// currently tracked.
	updatePositionOf(e N, slot int)
}

// noneTracker is the trivial tracker backing PlainHeap: every query reports
// absence and every mutation is a no-op. This is intentional: it makes
// PlainHeap behave as a multiset rather than a set, and nothing stops the
// same element from being pushed more than once.
type noneTracker[N any] struct{}

func (noneTracker[N]) clear()                   {}
func (noneTracker[N]) contains(N) bool          { return false }
func (noneTracker[N]) positionOf(N) (int, bool) { return 0, false }
func (noneTracker[N]) insert(N, int)            {}
func (noneTracker[N]) remove(N)                 {}
func (noneTracker[N]) updatePositionOf(N, int)  {}
