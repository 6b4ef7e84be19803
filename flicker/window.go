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

import "github.com/samber/lo"

// Window lists the frames one output frame is computed from.
//
// Prev[i] and Next[i] are the frames at distance i+1 before and after
// Current, clamped to [0, Last]. Near the ends of the clip several slots
// collapse onto the boundary frame. Only the first PrevTaps entries of Prev
// and NextTaps entries of Next are read by the kernels.
type Window struct {
	Current  int
	Last     int
	Prev     [3]int
	Next     [3]int
	PrevTaps int
	NextTaps int
}

// ResolveWindow returns the window of frame n in a clip whose last index
// is last, for the given strength.
//
// Strength 1 still reads the frame two before n: its tolerance comes from
// distance 2 while its bounds come from distance 1. So PrevTaps is never
// below 2.
func ResolveWindow(n, last, strength int) Window {
	w := Window{
		Current:  n,
		Last:     last,
		PrevTaps: max(strength, 2),
		NextTaps: strength,
	}
	for i := range 3 {
		w.Prev[i] = min(max(n-(i+1), 0), last)
		w.Next[i] = min(max(n+(i+1), 0), last)
	}
	return w
}

// Indices returns the distinct frame indices the window reads: the current
// frame first, then the previous taps nearest first, then the next taps.
func (w Window) Indices() []int {
	idx := make([]int, 0, 1+w.PrevTaps+w.NextTaps)
	idx = append(idx, w.Current)
	idx = append(idx, w.Prev[:w.PrevTaps]...)
	idx = append(idx, w.Next[:w.NextTaps]...)
	return lo.Uniq(idx)
}
