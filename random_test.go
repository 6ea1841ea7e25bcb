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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIndexedHeapRandomizedPushPopInvariants pushes many random
// (identifier, key) pairs with distinct identifiers, pops a random
// prefix of them, and checks that the popped keys are non-decreasing,
// the remaining elements are exactly those not popped, and the heap-order
// and tracker-agreement invariants hold throughout.
func TestIndexedHeapRandomizedPushPopInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const n = 500
	h := NewIndexedHeap[nodeID, int](4, n)
	remaining := make(map[nodeID]int, n)
	for i := 0; i < n; i++ {
		key := rng.Intn(10_000)
		h.Push(nodeID(i), key)
		remaining[nodeID(i)] = key
	}

	assert.True(t, checkHeapOrder[nodeID, int](h.engine))
	assert.True(t, checkDenseAgreement[nodeID, int](h.engine, h.tracker))

	k := n/2 + rng.Intn(n/2)
	lastKey := -1
	for i := 0; i < k; i++ {
		elem, key, ok := h.Pop()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, key, lastKey)
		lastKey = key
		delete(remaining, elem)

		assert.True(t, checkHeapOrder[nodeID, int](h.engine))
		assert.True(t, checkDenseAgreement[nodeID, int](h.engine, h.tracker))
	}

	assert.Equal(t, n-k, h.Len())
	for _, pair := range h.AsSlice() {
		want, ok := remaining[pair.Elem]
		assert.True(t, ok, "element %v was popped but still present", pair.Elem)
		assert.Equal(t, want, pair.Key)
		delete(remaining, pair.Elem)
	}
	assert.Empty(t, remaining)
}

// TestIndexedHeapMixedRemovePushPop runs many rounds of (remove a random
// live element, push some new ones respecting the index bound and the
// set discipline, pop one) starting from a handful of initial elements,
// then drains the heap and checks the final pop order is non-decreasing.
func TestIndexedHeapMixedRemovePushPop(t *testing.T) {
	const bound = 125
	rng := rand.New(rand.NewSource(2))

	h := NewIndexedHeap[nodeID, int](2, bound)
	used := make(map[int]bool, bound)

	freshID := func() (nodeID, bool) {
		for tries := 0; tries < bound*2; tries++ {
			candidate := rng.Intn(bound)
			if !used[candidate] {
				used[candidate] = true
				return nodeID(candidate), true
			}
		}
		return 0, false
	}

	for i := 0; i < 10; i++ {
		if id, ok := freshID(); ok {
			h.Push(id, rng.Intn(1000))
		}
	}

	for round := 0; round < 100; round++ {
		if h.Len() > 0 {
			live := h.AsSlice()
			victim := live[rng.Intn(len(live))].Elem
			h.Remove(victim)
			used[victim.Index()] = false
		}

		pushCount := rng.Intn(3)
		for i := 0; i < pushCount; i++ {
			if id, ok := freshID(); ok {
				h.Push(id, rng.Intn(1000))
			}
		}

		if h.Len() > 0 {
			h.Pop()
		}

		assert.True(t, checkHeapOrder[nodeID, int](h.engine))
		assert.True(t, checkDenseAgreement[nodeID, int](h.engine, h.tracker))
	}

	lastKey := -1
	for {
		_, key, ok := h.Pop()
		if !ok {
			break
		}
		assert.GreaterOrEqual(t, key, lastKey)
		lastKey = key
	}
}
