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

// Package hwy provides the sample operations the temporal filter kernels
// are written against, one backend per (sample type, vector width) pair.
//
// It follows the Highway design: the algorithm is written once against a
// small operation set and instantiated for every target. Backends exist for
// scalar code, 128-bit lanes and 256-bit lanes, over uint8, uint16 and
// float32 samples. Every backend produces bit-identical results for the
// same input; wider backends only change how many samples one call covers.
//
// Basic usage:
//
//	var o hwy.U8x16Ops
//	a := o.Load(row0)
//	b := o.Load(row1)
//	o.Stream(out, o.Avg(a, b))
package hwy

// Floats is a constraint for floating-point sample types.
type Floats interface {
	~float32
}

// UnsignedInts is a constraint for unsigned integer sample types.
type UnsignedInts interface {
	~uint8 | ~uint16
}

// Sample is a constraint for all types a plane can store.
type Sample interface {
	Floats | UnsignedInts
}

// Ops is the operation set shared by all backends. T is the sample type
// stored in memory and V is the register type: the sample itself for scalar
// backends, a fixed-size lane array for vector backends.
//
// Masks are represented as V with every bit of a lane set (true) or clear
// (false), the way SSE and NEON compare instructions produce them.
type Ops[T Sample, V any] interface {
	// Name identifies the backend, e.g. "u8x16".
	Name() string

	// Lanes returns how many samples one V holds.
	Lanes() int

	// Load reads Lanes() samples from src. src needs no alignment.
	Load(src []T) V

	// Stream writes Lanes() samples to dst.
	Stream(dst []T, v V)

	// Set broadcasts x to every lane.
	Set(x T) V

	// Zero returns a vector with all lanes zero.
	Zero() V

	Min(a, b V) V
	Max(a, b V) V

	// AddSat and SubSat saturate at the sample type's range for integers.
	// Float lanes do not saturate.
	AddSat(a, b V) V
	SubSat(a, b V) V

	// AbsDiff returns |a - b| per lane.
	AbsDiff(a, b V) V

	// Avg returns (a + b + 1) / 2 for integers and (a + b) / 2 for floats.
	Avg(a, b V) V

	// GreaterEqual returns a mask of lanes where a >= b.
	GreaterEqual(a, b V) V

	// IfThenElse returns yes where mask is set and no elsewhere.
	IfThenElse(mask, yes, no V) V

	// Bias is the amount subtracted from the neighbour average before it is
	// blended with the current sample: 1 for integers, 0 for floats.
	Bias() T
}
