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

// This file provides the scalar backends. They process one sample per call
// and are the fallback when no vector tier is available or HWY_NO_SIMD is set.

// ScalarInt is the scalar backend for unsigned integer samples.
type ScalarInt[T UnsignedInts] struct{}

// ScalarU8 processes 8-bit samples one at a time.
type ScalarU8 = ScalarInt[uint8]

// ScalarU16 processes 9 to 16-bit samples one at a time.
type ScalarU16 = ScalarInt[uint16]

func (ScalarInt[T]) Name() string {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return "scalar-u8"
	default:
		return "scalar-u16"
	}
}

func (ScalarInt[T]) Lanes() int { return 1 }
func (ScalarInt[T]) Load(src []T) T { return src[0] }
func (ScalarInt[T]) Stream(dst []T, v T) { dst[0] = v }
func (ScalarInt[T]) Set(x T) T { return x }
func (ScalarInt[T]) Zero() T { return 0 }
func (ScalarInt[T]) Min(a, b T) T { return min(a, b) }
func (ScalarInt[T]) Max(a, b T) T { return max(a, b) }
func (ScalarInt[T]) AddSat(a, b T) T { return saturatedAdd(a, b) }
func (ScalarInt[T]) SubSat(a, b T) T { return saturatedSub(a, b) }
func (ScalarInt[T]) AbsDiff(a, b T) T { return absDiff(a, b) }
func (ScalarInt[T]) Avg(a, b T) T { return roundedAvg(a, b) }
func (ScalarInt[T]) GreaterEqual(a, b T) T { return maskOf[T](a >= b) }
func (ScalarInt[T]) IfThenElse(mask, yes, no T) T { return selectLane(mask, yes, no) }
func (ScalarInt[T]) Bias() T { return 1 }

// ScalarF32 is the scalar backend for float samples.
type ScalarF32 struct{}

func (ScalarF32) Name() string { return "scalar-f32" }
func (ScalarF32) Lanes() int { return 1 }
func (ScalarF32) Load(src []float32) float32 { return src[0] }
func (ScalarF32) Stream(dst []float32, v float32) { dst[0] = v }
func (ScalarF32) Set(x float32) float32 { return x }
func (ScalarF32) Zero() float32 { return 0 }
func (ScalarF32) Min(a, b float32) float32 { return min(a, b) }
func (ScalarF32) Max(a, b float32) float32 { return max(a, b) }
func (ScalarF32) AddSat(a, b float32) float32 { return a + b }
func (ScalarF32) SubSat(a, b float32) float32 { return a - b }
func (ScalarF32) AbsDiff(a, b float32) float32 { return absDiff(a, b) }
func (ScalarF32) Avg(a, b float32) float32 { return halfSum(a, b) }
func (ScalarF32) GreaterEqual(a, b float32) float32 { return maskOfF32(a >= b) }
func (ScalarF32) IfThenElse(mask, yes, no float32) float32 { return selectLaneF32(mask, yes, no) }
func (ScalarF32) Bias() float32 { return 0 }
