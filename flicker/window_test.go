// Copyright 2025 go-reduceflicker Authors
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

package flicker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, last, strength  int
		prev, next         [3]int
		prevTaps, nextTaps int
		indices            []int
	}{
		{"first frame", 0, 9, 3, [3]int{0, 0, 0}, [3]int{1, 2, 3}, 3, 3, []int{0, 1, 2, 3}},
		{"last frame", 9, 9, 3, [3]int{8, 7, 6}, [3]int{9, 9, 9}, 3, 3, []int{9, 8, 7, 6}},
		{"middle strength 2", 5, 9, 2, [3]int{4, 3, 2}, [3]int{6, 7, 8}, 2, 2, []int{5, 4, 3, 6, 7}},
		{"strength 1 reaches two back", 5, 9, 1, [3]int{4, 3, 2}, [3]int{6, 7, 8}, 2, 1, []int{5, 4, 3, 6}},
		{"second frame", 1, 9, 3, [3]int{0, 0, 0}, [3]int{2, 3, 4}, 3, 3, []int{1, 0, 2, 3, 4}},
		{"single frame clip", 0, 0, 3, [3]int{0, 0, 0}, [3]int{0, 0, 0}, 3, 3, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWindow(tt.n, tt.last, tt.strength)
			if w.Prev != tt.prev || w.Next != tt.next {
				t.Errorf("Prev %v Next %v, want %v %v", w.Prev, w.Next, tt.prev, tt.next)
			}
			if w.PrevTaps != tt.prevTaps || w.NextTaps != tt.nextTaps {
				t.Errorf("taps %d/%d, want %d/%d", w.PrevTaps, w.NextTaps, tt.prevTaps, tt.nextTaps)
			}
			if diff := cmp.Diff(tt.indices, w.Indices()); diff != "" {
				t.Errorf("Indices() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every index a window reads lies inside the clip.
func TestResolveWindowInRange(t *testing.T) {
	for last := 0; last < 8; last++ {
		for n := 0; n <= last; n++ {
			for s := 1; s <= 3; s++ {
				for _, k := range ResolveWindow(n, last, s).Indices() {
					if k < 0 || k > last {
						t.Fatalf("n=%d last=%d strength=%d: index %d out of range", n, last, s, k)
					}
				}
			}
		}
	}
}
