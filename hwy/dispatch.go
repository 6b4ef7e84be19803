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

import (
	"fmt"
	"os"
	"strconv"
)

// DispatchLevel identifies an instruction-set tier a kernel can be built for.
type DispatchLevel int

const (
	// DispatchScalar processes one sample at a time.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the x86-64 baseline: 128-bit lanes without unsigned
	// 16-bit min/max or a per-lane blend.
	DispatchSSE2

	// DispatchSSE41 is 128-bit lanes with the full unsigned min/max set and
	// blendv.
	DispatchSSE41

	// DispatchAVX2 is 256-bit lanes.
	DispatchAVX2

	// DispatchNEON is ARM Advanced SIMD, 128-bit lanes.
	DispatchNEON

	// NumDispatchLevels is the number of tiers.
	NumDispatchLevels = int(DispatchNEON) + 1
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE41:
		return "sse4.1"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the number of bytes one vector covers at this level: 32
// for AVX2 and 16 otherwise. Output planes are aligned to it. Any stride
// is accepted; samples past the last whole vector of a row go through
// the scalar backend.
func (d DispatchLevel) Width() int {
	if d == DispatchAVX2 {
		return 32
	}
	return 16
}

// Capabilities is the set of instruction-set extensions available.
type Capabilities struct {
	SSE2  bool
	SSE41 bool
	AVX2  bool
	NEON  bool
}

// HasSIMD reports whether any vector extension is available.
func (c Capabilities) HasSIMD() bool {
	return c.SSE2 || c.SSE41 || c.AVX2 || c.NEON
}

// String lists the available extensions, e.g. "sse2,sse4.1,avx2".
func (c Capabilities) String() string {
	var s string
	add := func(ok bool, name string) {
		if !ok {
			return
		}
		if s != "" {
			s += ","
		}
		s += name
	}
	add(c.SSE2, "sse2")
	add(c.SSE41, "sse4.1")
	add(c.AVX2, "avx2")
	add(c.NEON, "neon")
	if s == "" {
		return "none"
	}
	return s
}

// DetectCapabilities probes the running CPU. When HWY_NO_SIMD is set the
// result is empty and every kernel resolves to the scalar tier.
func DetectCapabilities() Capabilities {
	if NoSimdEnv() {
		return Capabilities{}
	}
	return detectCapabilities()
}

// X86Capabilities returns the capabilities of an x86-64 CPU with AVX2, for
// exercising every x86 tier regardless of the host. When the 256-bit
// backends execute real AVX2 instructions, AVX2 is only reported if the
// host has it.
func X86Capabilities() Capabilities {
	return Capabilities{SSE2: true, SSE41: true, AVX2: avx2Runnable()}
}

// avx2Runnable reports whether the 256-bit backends can execute here.
func avx2Runnable() bool {
	return !nativeAVX2 || detectCapabilities().AVX2
}

// ARMCapabilities returns the capabilities of an ARMv8 CPU.
func ARMCapabilities() Capabilities {
	return Capabilities{NEON: true}
}

// ResolveLevel picks the tier for an optimization cap and a capability set.
//
//	opt 0                 -> scalar
//	no SIMD available     -> scalar
//	NEON available        -> neon
//	opt 1 or no SSE4.1    -> sse2
//	opt 2 or no AVX2      -> sse4.1
//	otherwise             -> avx2
//
// opt must be within 0..3.
func ResolveLevel(opt int, caps Capabilities) (DispatchLevel, error) {
	if opt < 0 || opt > 3 {
		return DispatchScalar, fmt.Errorf("opt must be between 0 and 3, got %d", opt)
	}
	switch {
	case opt == 0 || !caps.HasSIMD():
		return DispatchScalar, nil
	case caps.NEON:
		return DispatchNEON, nil
	case opt == 1 || !caps.SSE41:
		if !caps.SSE2 {
			return DispatchScalar, nil
		}
		return DispatchSSE2, nil
	case opt == 2 || !caps.AVX2:
		return DispatchSSE41, nil
	default:
		return DispatchAVX2, nil
	}
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, scalar kernels are used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
