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

//go:build !amd64 || !goexperiment.simd

package hwy

// 256-bit backends (AVX2), portable form. Builds with GOEXPERIMENT=simd on
// amd64 use the archsimd versions in ops_avx2.go instead.

// nativeAVX2 is false: these backends run on any CPU.
const nativeAVX2 = false

// U8x32 holds thirty-two 8-bit lanes.
type U8x32 [32]uint8

// U8x32Ops is the 256-bit backend for 8-bit samples.
type U8x32Ops struct{}

func (U8x32Ops) Name() string { return "u8x32" }
func (U8x32Ops) Lanes() int { return 32 }
func (U8x32Ops) Load(src []uint8) U8x32 { return U8x32(src[:32]) }
func (U8x32Ops) Stream(dst []uint8, v U8x32) { copy(dst[:32], v[:]) }
func (U8x32Ops) Zero() U8x32 { return U8x32{} }
func (U8x32Ops) Bias() uint8 { return 1 }

func (U8x32Ops) Set(x uint8) (r U8x32) {
	lanesSet(r[:], x)
	return r
}

func (U8x32Ops) Min(a, b U8x32) (r U8x32) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) Max(a, b U8x32) (r U8x32) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) AddSat(a, b U8x32) (r U8x32) {
	lanesAddSat(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) SubSat(a, b U8x32) (r U8x32) {
	lanesSubSat(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) AbsDiff(a, b U8x32) (r U8x32) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) Avg(a, b U8x32) (r U8x32) {
	lanesAvg(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) GreaterEqual(a, b U8x32) (r U8x32) {
	lanesGreaterEqual(r[:], a[:], b[:])
	return r
}

func (U8x32Ops) IfThenElse(mask, yes, no U8x32) (r U8x32) {
	lanesSelect(r[:], mask[:], yes[:], no[:])
	return r
}

// U16x16 holds sixteen 16-bit lanes.
type U16x16 [16]uint16

// U16x16Ops is the 256-bit backend for 9 to 16-bit samples.
type U16x16Ops struct{}

func (U16x16Ops) Name() string { return "u16x16" }
func (U16x16Ops) Lanes() int { return 16 }
func (U16x16Ops) Load(src []uint16) U16x16 { return U16x16(src[:16]) }
func (U16x16Ops) Stream(dst []uint16, v U16x16) { copy(dst[:16], v[:]) }
func (U16x16Ops) Zero() U16x16 { return U16x16{} }
func (U16x16Ops) Bias() uint16 { return 1 }

func (U16x16Ops) Set(x uint16) (r U16x16) {
	lanesSet(r[:], x)
	return r
}

func (U16x16Ops) Min(a, b U16x16) (r U16x16) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) Max(a, b U16x16) (r U16x16) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) AddSat(a, b U16x16) (r U16x16) {
	lanesAddSat(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) SubSat(a, b U16x16) (r U16x16) {
	lanesSubSat(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) AbsDiff(a, b U16x16) (r U16x16) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) Avg(a, b U16x16) (r U16x16) {
	lanesAvg(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) GreaterEqual(a, b U16x16) (r U16x16) {
	lanesGreaterEqual(r[:], a[:], b[:])
	return r
}

func (U16x16Ops) IfThenElse(mask, yes, no U16x16) (r U16x16) {
	lanesSelect(r[:], mask[:], yes[:], no[:])
	return r
}

// F32x8 holds eight float32 lanes.
type F32x8 [8]float32

// F32x8Ops is the 256-bit backend for float samples.
type F32x8Ops struct{}

func (F32x8Ops) Name() string { return "f32x8" }
func (F32x8Ops) Lanes() int { return 8 }
func (F32x8Ops) Load(src []float32) F32x8 { return F32x8(src[:8]) }
func (F32x8Ops) Stream(dst []float32, v F32x8) { copy(dst[:8], v[:]) }
func (F32x8Ops) Zero() F32x8 { return F32x8{} }
func (F32x8Ops) Bias() float32 { return 0 }

func (F32x8Ops) Set(x float32) (r F32x8) {
	lanesSet(r[:], x)
	return r
}

func (F32x8Ops) Min(a, b F32x8) (r F32x8) {
	lanesMin(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) Max(a, b F32x8) (r F32x8) {
	lanesMax(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) AddSat(a, b F32x8) (r F32x8) {
	lanesAddF32(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) SubSat(a, b F32x8) (r F32x8) {
	lanesSubF32(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) AbsDiff(a, b F32x8) (r F32x8) {
	lanesAbsDiff(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) Avg(a, b F32x8) (r F32x8) {
	lanesAvgF32(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) GreaterEqual(a, b F32x8) (r F32x8) {
	lanesGreaterEqualF32(r[:], a[:], b[:])
	return r
}

func (F32x8Ops) IfThenElse(mask, yes, no F32x8) (r F32x8) {
	lanesSelectF32(r[:], mask[:], yes[:], no[:])
	return r
}
