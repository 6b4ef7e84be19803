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

package hwy

// Lane-wise loops shared by the fixed-width vector types. The loop bounds
// are the array lengths of the callers, so the compiler sees constant trip
// counts after inlining.

func lanesMin[T Sample](r, a, b []T) {
	for i := range r {
		r[i] = min(a[i], b[i])
	}
}

func lanesMax[T Sample](r, a, b []T) {
	for i := range r {
		r[i] = max(a[i], b[i])
	}
}

func lanesAbsDiff[T Sample](r, a, b []T) {
	for i := range r {
		r[i] = absDiff(a[i], b[i])
	}
}

func lanesSet[T Sample](r []T, x T) {
	for i := range r {
		r[i] = x
	}
}

func lanesAddSat[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = saturatedAdd(a[i], b[i])
	}
}

func lanesSubSat[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = saturatedSub(a[i], b[i])
	}
}

func lanesAvg[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = roundedAvg(a[i], b[i])
	}
}

func lanesGreaterEqual[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = maskOf[T](a[i] >= b[i])
	}
}

func lanesSelect[T UnsignedInts](r, mask, yes, no []T) {
	for i := range r {
		r[i] = selectLane(mask[i], yes[i], no[i])
	}
}

func lanesBlendBits[T UnsignedInts](r, mask, yes, no []T) {
	for i := range r {
		r[i] = blendBits(mask[i], yes[i], no[i])
	}
}

func lanesMinBySaturation[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = minBySaturation(a[i], b[i])
	}
}

func lanesMaxBySaturation[T UnsignedInts](r, a, b []T) {
	for i := range r {
		r[i] = maxBySaturation(a[i], b[i])
	}
}

func lanesMinSigned16(r, a, b []uint16) {
	for i := range r {
		r[i] = minSigned16(a[i], b[i])
	}
}

func lanesMaxSigned16(r, a, b []uint16) {
	for i := range r {
		r[i] = maxSigned16(a[i], b[i])
	}
}

func lanesAddF32(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

func lanesSubF32(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

func lanesAvgF32(r, a, b []float32) {
	for i := range r {
		r[i] = halfSum(a[i], b[i])
	}
}

func lanesGreaterEqualF32(r, a, b []float32) {
	for i := range r {
		r[i] = maskOfF32(a[i] >= b[i])
	}
}

func lanesSelectF32(r, mask, yes, no []float32) {
	for i := range r {
		r[i] = selectLaneF32(mask[i], yes[i], no[i])
	}
}

func lanesBlendBitsF32(r, mask, yes, no []float32) {
	for i := range r {
		r[i] = blendBitsF32(mask[i], yes[i], no[i])
	}
}
