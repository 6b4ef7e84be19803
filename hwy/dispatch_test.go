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

import "testing"

func TestResolveLevel(t *testing.T) {
	x86 := Capabilities{SSE2: true, SSE41: true, AVX2: true}
	tests := []struct {
		name string
		opt  int
		caps Capabilities
		want DispatchLevel
	}{
		{"opt0", 0, x86, DispatchScalar},
		{"opt1", 1, x86, DispatchSSE2},
		{"opt2", 2, x86, DispatchSSE41},
		{"opt3", 3, x86, DispatchAVX2},
		{"no avx2", 3, Capabilities{SSE2: true, SSE41: true}, DispatchSSE41},
		{"sse2 only", 3, Capabilities{SSE2: true}, DispatchSSE2},
		{"no simd", 3, Capabilities{}, DispatchScalar},
		{"neon", 3, ARMCapabilities(), DispatchNEON},
		{"neon opt1", 1, ARMCapabilities(), DispatchNEON},
		{"neon opt0", 0, ARMCapabilities(), DispatchScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLevel(tt.opt, tt.caps)
			if err != nil {
				t.Fatalf("ResolveLevel(%d) error: %v", tt.opt, err)
			}
			if got != tt.want {
				t.Errorf("ResolveLevel(%d, %v) = %v, want %v", tt.opt, tt.caps, got, tt.want)
			}
		})
	}
}

func TestResolveLevelRejectsOpt(t *testing.T) {
	for _, opt := range []int{-1, 4, 100} {
		if _, err := ResolveLevel(opt, X86Capabilities()); err == nil {
			t.Errorf("ResolveLevel(%d) succeeded, want error", opt)
		}
	}
}

func TestDispatchLevelWidth(t *testing.T) {
	for level := DispatchLevel(0); int(level) < NumDispatchLevels; level++ {
		want := 16
		if level == DispatchAVX2 {
			want = 32
		}
		if got := level.Width(); got != want {
			t.Errorf("%v.Width() = %d, want %d", level, got, want)
		}
		if level.String() == "unknown" {
			t.Errorf("level %d has no name", int(level))
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "1")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv() = false with HWY_NO_SIMD=1")
	}
	if caps := DetectCapabilities(); caps.HasSIMD() {
		t.Errorf("DetectCapabilities() = %v with HWY_NO_SIMD set", caps)
	}

	t.Setenv("HWY_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() = true with HWY_NO_SIMD=false")
	}
}

func TestCapabilitiesString(t *testing.T) {
	if got := (Capabilities{SSE2: true, SSE41: true, AVX2: true}).String(); got != "sse2,sse4.1,avx2" {
		t.Errorf("String() = %q", got)
	}
	if got := (Capabilities{}).String(); got != "none" {
		t.Errorf("empty String() = %q", got)
	}
}
