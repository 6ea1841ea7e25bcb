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

// Queue is the basic priority-queue capability: push, pop, peek, and the
// combined push-then-pop. Every concrete heap in this package, and the
// StdBinaryHeapAdapter, satisfies Queue.
type Queue[N any, K constraints.Ordered] interface {
	// Len returns the number of elements currently in the queue.
	Len() int
	// IsEmpty reports whether the queue has no elements.
	IsEmpty() bool
	// Cap returns the allocated slot capacity of the queue.
	Cap() int
	// Peek returns the foremost (element, key) pair without removing it.
	// ok is false iff the queue is empty.
	Peek() (elem N, key K, ok bool)
	// Clear empties the queue, preserving capacity.
	Clear()
	// Pop removes and returns the foremost (element, key) pair.
	// ok is false iff the queue is empty.
	Pop() (elem N, key K, ok bool)
	// PopNode removes and returns only the foremost element.
	PopNode() (elem N, ok bool)
	// PopKey removes and returns only the foremost key.
	PopKey() (key K, ok bool)
	// Push adds (elem, key) to the queue.
	Push(elem N, key K)
	// PushThenPop pushes (elem, key) and immediately pops the new
	// foremost pair. When the queue is empty, or key is strictly less than
	// the current root's key, this returns (elem, key) unchanged and leaves
	// the queue's contents untouched.
	PushThenPop(elem N, key K) (poppedElem N, poppedKey K)
	// AsSlice returns a live view of the occupied slots in unspecified
	// order. It must not be retained across a subsequent mutating call.
	AsSlice() []Pair[N, K]
}

// ReviseQueue extends Queue with operations that revise the key of an
// already-enqueued element in logarithmic time. Only heaps backed by a
// position tracker (IndexedHeap, MappedHeap) implement
// it; PlainHeap does not, since its "none" tracker cannot answer Contains
// or KeyOf.
type ReviseQueue[N any, K constraints.Ordered] interface {
	Queue[N, K]

	// Contains reports whether elem is currently in the queue.
	Contains(elem N) bool
	// KeyOf returns the current key of elem, if present.
	KeyOf(elem N) (key K, ok bool)
	// DecreaseKey lowers elem's key to newKey.
	//
	// Panics with *AbsentElementError if elem is not in the queue, or
	// with *KeyNotDecreasedError if newKey is greater than elem's
	// current key.
	DecreaseKey(elem N, newKey K)
	// UpdateKey sets elem's key to newKey, sifting in whichever direction
	// restores heap order, and reports which direction was taken. Ties
	// (newKey == old key) resolve to Increased.
	//
	// Panics with *AbsentElementError if elem is not in the queue.
	UpdateKey(elem N, newKey K) ResUpdateKey
	// Remove takes elem out of the queue and returns its former key.
	//
	// Panics with *AbsentElementError if elem is not in the queue.
	Remove(elem N) K
}

// ResDecreaseKeyOrPush is the outcome of DecreaseKeyOrPush.
type ResDecreaseKeyOrPush int

const (
	// PushedDK means elem was absent and has been pushed with key.
	PushedDK ResDecreaseKeyOrPush = iota
	// DecreasedDK means elem was present and its key has been decreased.
	DecreasedDK
)

func (r ResDecreaseKeyOrPush) String() string {
	if r == PushedDK {
		return "Pushed"
	}
	return "Decreased"
}

// DecreaseKeyOrPush is the Dijkstra-relaxation primitive: if elem is
// absent, it is pushed with key and PushedDK is returned; otherwise
// elem's key is decreased to key (inheriting DecreaseKey's precondition
// that key <= elem's current key) and DecreasedDK is returned. It is a
// free function, not a method, because Go interfaces cannot carry
// default implementations.
func DecreaseKeyOrPush[N any, K constraints.Ordered](q ReviseQueue[N, K], elem N, key K) ResDecreaseKeyOrPush {
	if !q.Contains(elem) {
		q.Push(elem, key)
		return PushedDK
	}
	q.DecreaseKey(elem, key)
	return DecreasedDK
}

// ResUpdateKeyOrPush is the outcome of UpdateKeyOrPush.
type ResUpdateKeyOrPush int

const (
	// PushedUK means elem was absent and has been pushed with key.
	PushedUK ResUpdateKeyOrPush = iota
	// DecreasedUK means elem was present and its key strictly decreased.
	DecreasedUK
	// IncreasedUK means elem was present and its key did not strictly
	// decrease.
	IncreasedUK
)

func (r ResUpdateKeyOrPush) String() string {
	switch r {
	case PushedUK:
		return "Pushed"
	case DecreasedUK:
		return "Decreased"
	default:
		return "Increased"
	}
}

// UpdateKeyOrPush pushes elem with key if absent (returning PushedUK), or
// otherwise delegates to UpdateKey and maps its result.
func UpdateKeyOrPush[N any, K constraints.Ordered](q ReviseQueue[N, K], elem N, key K) ResUpdateKeyOrPush {
	if !q.Contains(elem) {
		q.Push(elem, key)
		return PushedUK
	}
	if q.UpdateKey(elem, key) == Decreased {
		return DecreasedUK
	}
	return IncreasedUK
}

// ResTryDecreaseKeyOrPush is the outcome of TryDecreaseKeyOrPush.
type ResTryDecreaseKeyOrPush int

const (
	// PushedTDK means elem was absent and has been pushed with key.
	PushedTDK ResTryDecreaseKeyOrPush = iota
	// DecreasedTDK means elem was present, key improved on its current
	// key, and its key was decreased.
	DecreasedTDK
	// UnchangedTDK means elem was present but key did not improve on its
	// current key, so the queue was left untouched.
	UnchangedTDK
)

func (r ResTryDecreaseKeyOrPush) String() string {
	switch r {
	case PushedTDK:
		return "Pushed"
	case DecreasedTDK:
		return "Decreased"
	default:
		return "Unchanged"
	}
}

// TryDecreaseKeyOrPush pushes elem with key if absent (returning
// PushedTDK); otherwise it decreases elem's key only if key is strictly
// less than its current key (DecreasedTDK), leaving the queue untouched
// otherwise (UnchangedTDK). Unlike DecreaseKeyOrPush, this never panics on
// a key that fails to improve.
func TryDecreaseKeyOrPush[N any, K constraints.Ordered](q ReviseQueue[N, K], elem N, key K) ResTryDecreaseKeyOrPush {
	if !q.Contains(elem) {
		q.Push(elem, key)
		return PushedTDK
	}
	if TryDecreaseKey(q, elem, key) == DecreasedTD {
		return DecreasedTDK
	}
	return UnchangedTDK
}

// ResTryDecreaseKey is the outcome of TryDecreaseKey.
type ResTryDecreaseKey int

const (
	// DecreasedTD means key improved on elem's current key and the key
	// was decreased.
	DecreasedTD ResTryDecreaseKey = iota
	// UnchangedTD means key did not improve on elem's current key.
	UnchangedTD
)

func (r ResTryDecreaseKey) String() string {
	if r == DecreasedTD {
		return "Decreased"
	}
	return "Unchanged"
}

// TryDecreaseKey decreases elem's key to key only if key is strictly less
// than elem's current key, and reports whether it did so.
//
// Panics with *AbsentElementError if elem is not in the queue.
func TryDecreaseKey[N any, K constraints.Ordered](q ReviseQueue[N, K], elem N, key K) ResTryDecreaseKey {
	current, ok := q.KeyOf(elem)
	if !ok {
		panic(&AbsentElementError{Op: "TryDecreaseKey"})
	}
	if key < current {
		q.DecreaseKey(elem, key)
		return DecreasedTD
	}
	return UnchangedTD
}
