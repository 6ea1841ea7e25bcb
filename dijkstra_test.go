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

package dary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	dary "github.com/gopq/dary"
)

// dijkstraNodeID is the sole collaborator responsible for wiring a graph's
// node ids into dary.HasIndex; the queue itself has no notion of a graph.
type dijkstraNodeID int

func (n dijkstraNodeID) Index() int { return int(n) }

type weightedEdge struct {
	from, to dijkstraNodeID
	weight   float64
}

// dijkstra runs Dijkstra's shortest-path algorithm over a graph with
// numNodes nodes using an IndexedHeap as its priority queue, relaxing
// edges through DecreaseKeyOrPush.
func dijkstra(numNodes int, edges []weightedEdge, source dijkstraNodeID) []float64 {
	adjacency := make([][]weightedEdge, numNodes)
	for _, e := range edges {
		adjacency[e.from] = append(adjacency[e.from], e)
	}

	const unreachable = math.MaxFloat64
	dist := make([]float64, numNodes)
	for i := range dist {
		dist[i] = unreachable
	}
	dist[source] = 0

	queue := dary.NewIndexedHeap[dijkstraNodeID, float64](4, numNodes)
	dary.DecreaseKeyOrPush[dijkstraNodeID, float64](queue, source, 0)

	for !queue.IsEmpty() {
		u, d, _ := queue.Pop()
		if d > dist[u] {
			continue
		}
		for _, e := range adjacency[u] {
			alt := d + e.weight
			if alt < dist[e.to] {
				dist[e.to] = alt
				dary.DecreaseKeyOrPush[dijkstraNodeID, float64](queue, e.to, alt)
			}
		}
	}
	return dist
}

// TestDijkstraShortestPathsOnSmallGraph runs Dijkstra over a small
// directed graph with asymmetric edge weights and checks the resulting
// shortest-path costs from a few different sources, including a case
// where the target is unreachable.
func TestDijkstraShortestPathsOnSmallGraph(t *testing.T) {
	edges := []weightedEdge{
		{0, 2, 10},
		{0, 1, 1},
		{1, 3, 2},
		{2, 1, 1},
		{2, 3, 3},
		{2, 4, 1},
		{3, 0, 7},
		{3, 4, 2},
	}

	from0 := dijkstra(5, edges, 0)
	assert.Equal(t, 1.0, from0[1])
	assert.Equal(t, 3.0, from0[3])
	assert.Equal(t, 5.0, from0[4])

	from3 := dijkstra(5, edges, 3)
	assert.Equal(t, 7.0, from3[0])

	from4 := dijkstra(5, edges, 4)
	assert.Equal(t, math.MaxFloat64, from4[0], "4 -> 0 must be unreachable")
}
