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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// 256-bit backends on AVX2 registers. Every operation maps onto one or two
// AVX2 instructions; the results match the scalar helpers lane for lane.

// nativeAVX2 is true: these backends execute AVX2 instructions and need a
// CPU that has them.
const nativeAVX2 = true

// U8x32 holds thirty-two 8-bit lanes.
type U8x32 = archsimd.Uint8x32

// U8x32Ops is the 256-bit backend for 8-bit samples.
type U8x32Ops struct{}

var u8x32Ones = archsimd.BroadcastUint8x32(0xFF)

func (U8x32Ops) Name() string { return "u8x32" }
func (U8x32Ops) Lanes() int { return 32 }
func (U8x32Ops) Load(src []uint8) U8x32 { return archsimd.LoadUint8x32Slice(src) }
func (U8x32Ops) Stream(dst []uint8, v U8x32) { v.StoreSlice(dst) }
func (U8x32Ops) Set(x uint8) U8x32 { return archsimd.BroadcastUint8x32(x) }
func (U8x32Ops) Zero() U8x32 { return U8x32{} }
func (U8x32Ops) Bias() uint8 { return 1 }
func (U8x32Ops) Min(a, b U8x32) U8x32 { return a.Min(b) }
func (U8x32Ops) Max(a, b U8x32) U8x32 { return a.Max(b) }
func (U8x32Ops) AddSat(a, b U8x32) U8x32 { return a.AddSaturated(b) }
func (U8x32Ops) SubSat(a, b U8x32) U8x32 { return a.SubSaturated(b) }
func (U8x32Ops) AbsDiff(a, b U8x32) U8x32 { return a.Max(b).Sub(a.Min(b)) }
func (U8x32Ops) Avg(a, b U8x32) U8x32 { return a.Average(b) }

// GreaterEqual uses max(a, b) == a, which AVX2 has for unsigned lanes.
func (U8x32Ops) GreaterEqual(a, b U8x32) U8x32 {
	return u8x32Ones.Merge(U8x32{}, a.Max(b).Equal(a))
}

func (U8x32Ops) IfThenElse(mask, yes, no U8x32) U8x32 {
	return no.Merge(yes, mask.Equal(U8x32{}))
}

// U16x16 holds sixteen 16-bit lanes.
type U16x16 = archsimd.Uint16x16

// U16x16Ops is the 256-bit backend for 9 to 16-bit samples.
type U16x16Ops struct{}

var u16x16Ones = archsimd.BroadcastUint16x16(0xFFFF)

func (U16x16Ops) Name() string { return "u16x16" }
func (U16x16Ops) Lanes() int { return 16 }
func (U16x16Ops) Load(src []uint16) U16x16 { return archsimd.LoadUint16x16Slice(src) }
func (U16x16Ops) Stream(dst []uint16, v U16x16) { v.StoreSlice(dst) }
func (U16x16Ops) Set(x uint16) U16x16 { return archsimd.BroadcastUint16x16(x) }
func (U16x16Ops) Zero() U16x16 { return U16x16{} }
func (U16x16Ops) Bias() uint16 { return 1 }
func (U16x16Ops) Min(a, b U16x16) U16x16 { return a.Min(b) }
func (U16x16Ops) Max(a, b U16x16) U16x16 { return a.Max(b) }
func (U16x16Ops) AddSat(a, b U16x16) U16x16 { return a.AddSaturated(b) }
func (U16x16Ops) SubSat(a, b U16x16) U16x16 { return a.SubSaturated(b) }
func (U16x16Ops) AbsDiff(a, b U16x16) U16x16 { return a.Max(b).Sub(a.Min(b)) }
func (U16x16Ops) Avg(a, b U16x16) U16x16 { return a.Average(b) }

func (U16x16Ops) GreaterEqual(a, b U16x16) U16x16 {
	return u16x16Ones.Merge(U16x16{}, a.Max(b).Equal(a))
}

func (U16x16Ops) IfThenElse(mask, yes, no U16x16) U16x16 {
	return no.Merge(yes, mask.Equal(U16x16{}))
}

// F32x8 holds eight float32 lanes.
type F32x8 = archsimd.Float32x8

// F32x8Ops is the 256-bit backend for float samples.
type F32x8Ops struct{}

var (
	f32x8Half    = archsimd.BroadcastFloat32x8(0.5)
	i32x8AllOnes = archsimd.BroadcastInt32x8(-1)
)

func (F32x8Ops) Name() string { return "f32x8" }
func (F32x8Ops) Lanes() int { return 8 }
func (F32x8Ops) Load(src []float32) F32x8 { return archsimd.LoadFloat32x8Slice(src) }
func (F32x8Ops) Stream(dst []float32, v F32x8) { v.StoreSlice(dst) }
func (F32x8Ops) Set(x float32) F32x8 { return archsimd.BroadcastFloat32x8(x) }
func (F32x8Ops) Zero() F32x8 { return F32x8{} }
func (F32x8Ops) Bias() float32 { return 0 }
func (F32x8Ops) Min(a, b F32x8) F32x8 { return a.Min(b) }
func (F32x8Ops) Max(a, b F32x8) F32x8 { return a.Max(b) }
func (F32x8Ops) AddSat(a, b F32x8) F32x8 { return a.Add(b) }
func (F32x8Ops) SubSat(a, b F32x8) F32x8 { return a.Sub(b) }
func (F32x8Ops) AbsDiff(a, b F32x8) F32x8 { return a.Max(b).Sub(a.Min(b)) }
func (F32x8Ops) Avg(a, b F32x8) F32x8 { return a.Add(b).Mul(f32x8Half) }

func (F32x8Ops) GreaterEqual(a, b F32x8) F32x8 {
	return i32x8AllOnes.Merge(archsimd.Int32x8{}, a.GreaterEqual(b)).AsFloat32x8()
}

func (F32x8Ops) IfThenElse(mask, yes, no F32x8) F32x8 {
	return no.Merge(yes, mask.AsInt32x8().Equal(archsimd.Int32x8{}))
}
