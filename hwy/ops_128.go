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

// 128-bit backends. U8x16Ops, U16x8Ops and F32x4Ops model the full 128-bit
// instruction set (SSE4.1 or NEON): native unsigned min/max at every width
// and a per-lane blend. The *BaseOps variants model the SSE2 baseline, which
// lacks unsigned 16-bit min/max and blendv and composes them from saturating
// and bitwise operations instead.

// U8x16 holds sixteen 8-bit lanes.
type U8x16 [16]uint8

// U8x16Ops is the 128-bit backend for 8-bit samples.
type U8x16Ops struct{}

func (U8x16Ops) Name() string { return "u8x16" }
func (U8x16Ops) Lanes() int { return 16 }
func (U8x16Ops) Load(src []uint8) U8x16 { return U8x16(src[:16]) }
func (U8x16Ops) Stream(dst []uint8, v U8x16) { copy(dst[:16], v[:]) }
func (U8x16Ops) Zero() U8x16 { return U8x16{} }
func (U8x16Ops) Bias() uint8 { return 1 }

func (U8x16Ops) Set(x uint8) (r U8x16) {
	lanesSet(r[:], x)
	return r
}

func (U8x16Ops) Min(a, b U8x16) (r U8x16) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) Max(a, b U8x16) (r U8x16) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) AddSat(a, b U8x16) (r U8x16) {
	lanesAddSat(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) SubSat(a, b U8x16) (r U8x16) {
	lanesSubSat(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) AbsDiff(a, b U8x16) (r U8x16) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) Avg(a, b U8x16) (r U8x16) {
	lanesAvg(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) GreaterEqual(a, b U8x16) (r U8x16) {
	lanesGreaterEqual(r[:], a[:], b[:])
	return r
}

func (U8x16Ops) IfThenElse(mask, yes, no U8x16) (r U8x16) {
	lanesSelect(r[:], mask[:], yes[:], no[:])
	return r
}

// U16x8 holds eight 16-bit lanes.
type U16x8 [8]uint16

// U16x8Ops is the 128-bit backend for 9 to 16-bit samples.
type U16x8Ops struct{}

func (U16x8Ops) Name() string { return "u16x8" }
func (U16x8Ops) Lanes() int { return 8 }
func (U16x8Ops) Load(src []uint16) U16x8 { return U16x8(src[:8]) }
func (U16x8Ops) Stream(dst []uint16, v U16x8) { copy(dst[:8], v[:]) }
func (U16x8Ops) Zero() U16x8 { return U16x8{} }
func (U16x8Ops) Bias() uint16 { return 1 }

func (U16x8Ops) Set(x uint16) (r U16x8) {
	lanesSet(r[:], x)
	return r
}

func (U16x8Ops) Min(a, b U16x8) (r U16x8) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) Max(a, b U16x8) (r U16x8) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) AddSat(a, b U16x8) (r U16x8) {
	lanesAddSat(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) SubSat(a, b U16x8) (r U16x8) {
	lanesSubSat(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) AbsDiff(a, b U16x8) (r U16x8) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) Avg(a, b U16x8) (r U16x8) {
	lanesAvg(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) GreaterEqual(a, b U16x8) (r U16x8) {
	lanesGreaterEqual(r[:], a[:], b[:])
	return r
}

func (U16x8Ops) IfThenElse(mask, yes, no U16x8) (r U16x8) {
	lanesSelect(r[:], mask[:], yes[:], no[:])
	return r
}

// F32x4 holds four float32 lanes.
type F32x4 [4]float32

// F32x4Ops is the 128-bit backend for float samples.
type F32x4Ops struct{}

func (F32x4Ops) Name() string { return "f32x4" }
func (F32x4Ops) Lanes() int { return 4 }
func (F32x4Ops) Load(src []float32) F32x4 { return F32x4(src[:4]) }
func (F32x4Ops) Stream(dst []float32, v F32x4) { copy(dst[:4], v[:]) }
func (F32x4Ops) Zero() F32x4 { return F32x4{} }
func (F32x4Ops) Bias() float32 { return 0 }

func (F32x4Ops) Set(x float32) (r F32x4) {
	lanesSet(r[:], x)
	return r
}

func (F32x4Ops) Min(a, b F32x4) (r F32x4) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) Max(a, b F32x4) (r F32x4) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) AddSat(a, b F32x4) (r F32x4) {
	lanesAddF32(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) SubSat(a, b F32x4) (r F32x4) {
	lanesSubF32(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) AbsDiff(a, b F32x4) (r F32x4) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) Avg(a, b F32x4) (r F32x4) {
	lanesAvgF32(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) GreaterEqual(a, b F32x4) (r F32x4) {
	lanesGreaterEqualF32(r[:], a[:], b[:])
	return r
}

func (F32x4Ops) IfThenElse(mask, yes, no F32x4) (r F32x4) {
	lanesSelectF32(r[:], mask[:], yes[:], no[:])
	return r
}

// U8x16BaseOps is the SSE2 backend for 8-bit samples. Unsigned byte min/max
// exist in SSE2; only the blend is composed from and/andnot/or.
type U8x16BaseOps struct{ U8x16Ops }

func (U8x16BaseOps) Name() string { return "u8x16-base" }

func (U8x16BaseOps) IfThenElse(mask, yes, no U8x16) (r U8x16) {
	lanesBlendBits(r[:], mask[:], yes[:], no[:])
	return r
}

// U16x8BaseOps is the SSE2 backend for 11 to 16-bit samples. min(a, b) is
// a - sat(a - b) and max(a, b) is b + sat(a - b).
type U16x8BaseOps struct{ U16x8Ops }

func (U16x8BaseOps) Name() string { return "u16x8-base" }

func (U16x8BaseOps) Min(a, b U16x8) (r U16x8) {
	lanesMinBySaturation(r[:], a[:], b[:])
	return r
}

func (U16x8BaseOps) Max(a, b U16x8) (r U16x8) {
	lanesMaxBySaturation(r[:], a[:], b[:])
	return r
}

func (U16x8BaseOps) IfThenElse(mask, yes, no U16x8) (r U16x8) {
	lanesBlendBits(r[:], mask[:], yes[:], no[:])
	return r
}

// I16x8BaseOps is the SSE2 backend for 9 and 10-bit samples. Such samples
// never reach the sign bit, so the signed 16-bit min/max SSE2 does have
// give the unsigned answer.
type I16x8BaseOps struct{ U16x8Ops }

func (I16x8BaseOps) Name() string { return "i16x8-base" }

func (I16x8BaseOps) Min(a, b U16x8) (r U16x8) {
	lanesMinSigned16(r[:], a[:], b[:])
	return r
}

func (I16x8BaseOps) Max(a, b U16x8) (r U16x8) {
	lanesMaxSigned16(r[:], a[:], b[:])
	return r
}

func (I16x8BaseOps) IfThenElse(mask, yes, no U16x8) (r U16x8) {
	lanesBlendBits(r[:], mask[:], yes[:], no[:])
	return r
}

// F32x4BaseOps is the SSE2 backend for float samples.
type F32x4BaseOps struct{ F32x4Ops }

func (F32x4BaseOps) Name() string { return "f32x4-base" }

func (F32x4BaseOps) IfThenElse(mask, yes, no F32x4) (r F32x4) {
	lanesBlendBitsF32(r[:], mask[:], yes[:], no[:])
	return r
}
