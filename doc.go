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

// Package dary provides generalized d-ary min-heaps intended to serve as
// the priority queue at the core of graph and network algorithms such as
// Dijkstra's shortest path, Prim's minimum spanning tree, and A*.
//
// A d-ary heap is a binary heap generalized to up to d children per node
// instead of 2; a larger d shortens the tree (fewer levels to sift down
// through) at the cost of more comparisons per level, which tends to pay
// off for workloads dominated by decrease-key relative to pop, such as
// Dijkstra's algorithm.
//
// Three concrete heap types share one internal engine and differ only in
// which position tracker is plugged in:
//
//   - PlainHeap has no tracker. It supports Push, Pop, Peek, and
//     PushThenPop only, and behaves as a multiset.
//   - IndexedHeap tracks positions in a dense array keyed by each
//     element's HasIndex identity. It additionally supports Contains,
//     KeyOf, DecreaseKey, UpdateKey, and Remove in O(log_d n).
//   - MappedHeap tracks positions in a hash map keyed by the element
//     itself. It supports the same revise operations as IndexedHeap,
//     without requiring a dense integer identity.
//
// IndexedHeap and MappedHeap both implement ReviseQueue, and the package's
// DecreaseKeyOrPush, UpdateKeyOrPush, TryDecreaseKeyOrPush, and
// TryDecreaseKey free functions compose the revise capability into the
// combined "find-or-insert and revise priority" operations that a
// relaxation step in Dijkstra's algorithm actually needs.
//
// None of the three heap types, nor StdBinaryHeapAdapter, are safe for
// concurrent use without external synchronization.
package dary
