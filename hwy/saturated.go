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

import "math"

// This file provides the per-lane arithmetic every backend is built from.
// Scalar backends call these directly; vector backends apply them across
// their lanes. Sharing one definition is what keeps all backends
// bit-identical.

// maskBitsF32 is an all-ones float32 lane, the float form of a true mask.
var maskBitsF32 = math.Float32frombits(0xFFFFFFFF)

// saturatedAdd returns a + b clamped to the type's maximum.
// For example, uint8: 250 + 10 = 255 (not 4).
func saturatedAdd[T UnsignedInts](a, b T) T {
	sum := a + b
	if sum < a {
		return ^T(0)
	}
	return sum
}

// saturatedSub returns a - b clamped to zero.
// For example, uint8: 10 - 20 = 0 (not 246).
func saturatedSub[T UnsignedInts](a, b T) T {
	if a < b {
		return 0
	}
	return a - b
}

// absDiff returns max(a,b) - min(a,b), which never wraps for unsigned types.
func absDiff[T Sample](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// roundedAvg returns (a + b + 1) / 2 computed without overflow, matching the
// PAVGB/PAVGW instructions.
func roundedAvg[T UnsignedInts](a, b T) T {
	return T((uint32(a) + uint32(b) + 1) >> 1)
}

// halfSum returns (a + b) / 2 for floats.
func halfSum(a, b float32) float32 {
	return (a + b) * 0.5
}

// maskOf returns the all-ones lane for true and zero for false.
func maskOf[T UnsignedInts](b bool) T {
	if b {
		return ^T(0)
	}
	return 0
}

// maskOfF32 is maskOf for float32 lanes.
func maskOfF32(b bool) float32 {
	if b {
		return maskBitsF32
	}
	return 0
}

// selectLane picks yes when the lane's mask is non-zero, the way blendv
// picks per lane.
func selectLane[T UnsignedInts](mask, yes, no T) T {
	if mask != 0 {
		return yes
	}
	return no
}

// blendBits computes (mask & yes) | (^mask & no), the baseline-tier blend.
func blendBits[T UnsignedInts](mask, yes, no T) T {
	return (mask & yes) | (^mask & no)
}

// selectLaneF32 picks yes when the float lane's mask bits are non-zero.
func selectLaneF32(mask, yes, no float32) float32 {
	if math.Float32bits(mask) != 0 {
		return yes
	}
	return no
}

// blendBitsF32 is blendBits on the bit patterns of float32 lanes.
func blendBitsF32(mask, yes, no float32) float32 {
	m := math.Float32bits(mask)
	return math.Float32frombits((m & math.Float32bits(yes)) | (^m & math.Float32bits(no)))
}

// minBySaturation computes min(a, b) as a - sat(a - b), the way the baseline
// tier emulates unsigned 16-bit min.
func minBySaturation[T UnsignedInts](a, b T) T {
	return a - saturatedSub(a, b)
}

// maxBySaturation computes max(a, b) as b + sat(a - b).
func maxBySaturation[T UnsignedInts](a, b T) T {
	return saturatedAdd(b, saturatedSub(a, b))
}

// minSigned16 compares uint16 lanes as int16, the way PMINSW does.
func minSigned16(a, b uint16) uint16 {
	if int16(a) < int16(b) {
		return a
	}
	return b
}

// maxSigned16 compares uint16 lanes as int16, the way PMAXSW does.
func maxSigned16(a, b uint16) uint16 {
	if int16(a) > int16(b) {
		return a
	}
	return b
}
