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
	"fmt"

	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
)

// Precision is the sample class a kernel is instantiated for.
type Precision int

const (
	Precision8 Precision = iota
	Precision10
	Precision16
	PrecisionFloat

	numPrecisions
)

func (p Precision) String() string {
	switch p {
	case Precision8:
		return "8-bit"
	case Precision10:
		return "10-bit"
	case Precision16:
		return "16-bit"
	case PrecisionFloat:
		return "float"
	default:
		return "unknown"
	}
}

// PrecisionOf classifies a sample format: 1 to 8 bits, 9 and 10 bits, 11 to
// 16 bits, or 32-bit float.
func PrecisionOf(f *frame.Format) (Precision, error) {
	switch {
	case f.SampleType == frame.Float && f.BitsPerSample == 16:
		return 0, fmt.Errorf("%w: half precision is not supported.", ErrUnsupportedFormat)
	case f.SampleType == frame.Float && f.BitsPerSample == 32:
		return PrecisionFloat, nil
	case f.SampleType == frame.Integer && f.BitsPerSample >= 1 && f.BitsPerSample <= 8:
		return Precision8, nil
	case f.SampleType == frame.Integer && f.BitsPerSample >= 9 && f.BitsPerSample <= 10:
		return Precision10, nil
	case f.SampleType == frame.Integer && f.BitsPerSample >= 11 && f.BitsPerSample <= 16:
		return Precision16, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit %s samples", ErrUnsupportedFormat, f.BitsPerSample, f.SampleType)
	}
}

type entry struct {
	kernel  Kernel
	backend string
}

// table holds one kernel per (tier, strength-1, aggressive, precision). It
// is filled in init and read-only afterwards.
var table [hwy.NumDispatchLevels][3][2][numPrecisions]entry

func register[T hwy.Sample, V any, O hwy.Ops[T, V]](level hwy.DispatchLevel, p Precision) {
	var o O
	for s := 1; s <= 3; s++ {
		for v, aggressive := range []bool{false, true} {
			table[level][s-1][v][p] = entry{newKernel[T, V, O](s, aggressive), o.Name()}
		}
	}
}

func init() {
	register[uint8, uint8, hwy.ScalarU8](hwy.DispatchScalar, Precision8)
	register[uint16, uint16, hwy.ScalarU16](hwy.DispatchScalar, Precision10)
	register[uint16, uint16, hwy.ScalarU16](hwy.DispatchScalar, Precision16)
	register[float32, float32, hwy.ScalarF32](hwy.DispatchScalar, PrecisionFloat)

	// The SSE2 baseline is the only tier with a dedicated 10-bit path.
	register[uint8, hwy.U8x16, hwy.U8x16BaseOps](hwy.DispatchSSE2, Precision8)
	register[uint16, hwy.U16x8, hwy.I16x8BaseOps](hwy.DispatchSSE2, Precision10)
	register[uint16, hwy.U16x8, hwy.U16x8BaseOps](hwy.DispatchSSE2, Precision16)
	register[float32, hwy.F32x4, hwy.F32x4BaseOps](hwy.DispatchSSE2, PrecisionFloat)

	for _, level := range []hwy.DispatchLevel{hwy.DispatchSSE41, hwy.DispatchNEON} {
		register[uint8, hwy.U8x16, hwy.U8x16Ops](level, Precision8)
		register[uint16, hwy.U16x8, hwy.U16x8Ops](level, Precision10)
		register[uint16, hwy.U16x8, hwy.U16x8Ops](level, Precision16)
		register[float32, hwy.F32x4, hwy.F32x4Ops](level, PrecisionFloat)
	}

	register[uint8, hwy.U8x32, hwy.U8x32Ops](hwy.DispatchAVX2, Precision8)
	register[uint16, hwy.U16x16, hwy.U16x16Ops](hwy.DispatchAVX2, Precision10)
	register[uint16, hwy.U16x16, hwy.U16x16Ops](hwy.DispatchAVX2, Precision16)
	register[float32, hwy.F32x8, hwy.F32x8Ops](hwy.DispatchAVX2, PrecisionFloat)
}

// Lookup returns the kernel for a tier, strength, variant and precision,
// along with the name of the backend it runs on.
func Lookup(level hwy.DispatchLevel, strength int, aggressive bool, p Precision) (Kernel, string, error) {
	if level < 0 || int(level) >= hwy.NumDispatchLevels {
		return nil, "", fmt.Errorf("%w: unknown dispatch level %d", ErrConfig, int(level))
	}
	if strength < 1 || strength > 3 {
		return nil, "", fmt.Errorf("%w: strength must be set to 1, 2 or 3.", ErrConfig)
	}
	if p < 0 || p >= numPrecisions {
		return nil, "", fmt.Errorf("%w: unknown precision %d", ErrConfig, int(p))
	}
	v := 0
	if aggressive {
		v = 1
	}
	e := table[level][strength-1][v][p]
	return e.kernel, e.backend, nil
}
