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

import "testing"

func TestBranchingOffset(t *testing.T) {
	tests := []struct {
		d    int
		want int
	}{
		{2, 1},
		{3, 0},
		{4, 0},
		{5, 0},
		{6, 0},
		{7, 0},
		{8, 0},
		{16, 0},
		{32, 0},
		{64, 0},
		{100, 0},
	}
	for _, test := range tests {
		if got := branchingOffset(test.d); got != test.want {
			t.Errorf("branchingOffset(%d) = %d, want %d", test.d, got, test.want)
		}
	}
}

func TestParentAndChild(t *testing.T) {
	for _, d := range []int{2, 3, 4, 5, 8, 16, 32, 64, 100} {
		offset := branchingOffset(d)

		// A contiguously-filled tree must be a valid heap: the root's
		// leftmost child must land immediately after the sentinel prefix,
		// so that slots offset, offset+1, offset+2, ... pack with no gaps.
		if got := leftChildOf(d, offset); got != offset+1 {
			t.Errorf("d=%d: leftChildOf(offset=%d) = %d, want %d", d, offset, got, offset+1)
		}

		// Every node's children must report the node as their parent, and
		// the leftmost child address must be the smallest of the d
		// addresses returned for a parent.
		for parent := offset; parent < offset+50; parent++ {
			first := leftChildOf(d, parent)
			for i := 0; i < d; i++ {
				child := first + i
				if got := parentOf(d, child); got != parent {
					t.Errorf("d=%d: parentOf(leftChildOf(%d)+%d)=%d, want %d", d, parent, i, got, parent)
				}
			}
		}
	}
}
