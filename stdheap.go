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
	"container/heap"

	"golang.org/x/exp/constraints"
)

// stdHeapData implements heap.Interface over a slice of Pair, backing
// StdBinaryHeapAdapter.
type stdHeapData[N any, K constraints.Ordered] struct {
	items []Pair[N, K]
}

func (d *stdHeapData[N, K]) Len() int           { return len(d.items) }
func (d *stdHeapData[N, K]) Less(i, j int) bool { return d.items[i].Key < d.items[j].Key }
func (d *stdHeapData[N, K]) Swap(i, j int)      { d.items[i], d.items[j] = d.items[j], d.items[i] }

func (d *stdHeapData[N, K]) Push(x any) {
	d.items = append(d.items, x.(Pair[N, K]))
}

func (d *stdHeapData[N, K]) Pop() any {
	old := d.items
	n := len(old)
	item := old[n-1]
	d.items = old[:n-1]
	return item
}

// StdBinaryHeapAdapter wraps container/heap behind the basic Queue
// contract only. It exists as a comparison baseline for benchmarks and
// for algorithms that only need Queue, not ReviseQueue; it offers none
// of PlainHeap's, IndexedHeap's, or MappedHeap's notion of branching
// factor, since container/heap is a fixed binary heap.
//
// StdBinaryHeapAdapter is not safe for concurrent use without external
// synchronization.
type StdBinaryHeapAdapter[N any, K constraints.Ordered] struct {
	data *stdHeapData[N, K]
}

// NewStdBinaryHeapAdapter creates an empty StdBinaryHeapAdapter.
func NewStdBinaryHeapAdapter[N any, K constraints.Ordered]() *StdBinaryHeapAdapter[N, K] {
	d := &stdHeapData[N, K]{}
	heap.Init(d)
	return &StdBinaryHeapAdapter[N, K]{data: d}
}

func (h *StdBinaryHeapAdapter[N, K]) Len() int      { return h.data.Len() }
func (h *StdBinaryHeapAdapter[N, K]) IsEmpty() bool { return h.data.Len() == 0 }
func (h *StdBinaryHeapAdapter[N, K]) Cap() int      { return cap(h.data.items) }

func (h *StdBinaryHeapAdapter[N, K]) Peek() (N, K, bool) {
	if h.data.Len() == 0 {
		var n N
		var k K
		return n, k, false
	}
	root := h.data.items[0]
	return root.Elem, root.Key, true
}

func (h *StdBinaryHeapAdapter[N, K]) Clear() {
	h.data.items = h.data.items[:0]
}

func (h *StdBinaryHeapAdapter[N, K]) Pop() (N, K, bool) {
	if h.data.Len() == 0 {
		var n N
		var k K
		return n, k, false
	}
	popped := heap.Pop(h.data).(Pair[N, K])
	return popped.Elem, popped.Key, true
}

func (h *StdBinaryHeapAdapter[N, K]) PopNode() (N, bool) {
	elem, _, ok := h.Pop()
	return elem, ok
}

func (h *StdBinaryHeapAdapter[N, K]) PopKey() (K, bool) {
	_, key, ok := h.Pop()
	return key, ok
}

func (h *StdBinaryHeapAdapter[N, K]) Push(elem N, key K) {
	heap.Push(h.data, Pair[N, K]{Elem: elem, Key: key})
}

func (h *StdBinaryHeapAdapter[N, K]) PushThenPop(elem N, key K) (N, K) {
	h.Push(elem, key)
	poppedElem, poppedKey, _ := h.Pop()
	return poppedElem, poppedKey
}

func (h *StdBinaryHeapAdapter[N, K]) AsSlice() []Pair[N, K] { return h.data.items }

var _ Queue[int, int] = (*StdBinaryHeapAdapter[int, int])(nil)
