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

import "fmt"

// AbsentElementError is panicked by DecreaseKey, UpdateKey, TryDecreaseKey,
// and Remove when called with an element that is not currently in the queue.
type AbsentElementError struct {
	Op string
}

func (e *AbsentElementError) Error() string {
	return fmt.Sprintf("dary: %s called on an element that is not in the queue", e.Op)
}

// KeyNotDecreasedError is panicked by DecreaseKey when the supplied key is
// strictly greater than the element's current key.
type KeyNotDecreasedError struct{}

func (e *KeyNotDecreasedError) Error() string {
	return "dary: DecreaseKey called with a key greater than the current key"
}

// IndexOutOfBoundError is panicked by IndexedHeap.Push when the element's
// identifier is not strictly less than the heap's index bound.
type IndexOutOfBoundError struct {
	Index      int
	IndexBound int
}

func (e *IndexOutOfBoundError) Error() string {
	return fmt.Sprintf("dary: element index %d is out of bound [0, %d)", e.Index, e.IndexBound)
}

// DuplicateInsertError is panicked by IndexedHeap.Push and MappedHeap.Push
// when the element is already present in the queue. A queue with a position
// tracker behaves as a set: an element may only be pushed once.
type DuplicateInsertError struct{}

func (e *DuplicateInsertError) Error() string {
	return "dary: Push called with an element already present in the queue"
}
