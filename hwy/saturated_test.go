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
	"math"
	"testing"
)

func TestSaturatedAddUint8(t *testing.T) {
	a := []uint8{250, 100, 0, 255}
	b := []uint8{10, 50, 100, 1}
	expected := []uint8{255, 150, 100, 255} // 250+10 saturates to 255
	for i := range a {
		if got := saturatedAdd(a[i], b[i]); got != expected[i] {
			t.Errorf("saturatedAdd uint8: lane %d: got %d, want %d", i, got, expected[i])
		}
	}
}

func TestSaturatedAddUint16(t *testing.T) {
	a := []uint16{65530, 100, 0, 65535}
	b := []uint16{10, 50, 100, 1}
	expected := []uint16{65535, 150, 100, 65535}
	for i := range a {
		if got := saturatedAdd(a[i], b[i]); got != expected[i] {
			t.Errorf("saturatedAdd uint16: lane %d: got %d, want %d", i, got, expected[i])
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := []uint8{10, 100, 0, 255}
	b := []uint8{20, 50, 100, 1}
	expected := []uint8{0, 50, 0, 254} // 10-20 saturates to 0
	for i := range a {
		if got := saturatedSub(a[i], b[i]); got != expected[i] {
			t.Errorf("saturatedSub uint8: lane %d: got %d, want %d", i, got, expected[i])
		}
	}
}

func TestRoundedAvg(t *testing.T) {
	tests := []struct {
		a, b, want uint16
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 2, 2},
		{10, 20, 15},
		{65535, 65535, 65535},
		{65535, 65534, 65535},
	}
	for _, tt := range tests {
		if got := roundedAvg(tt.a, tt.b); got != tt.want {
			t.Errorf("roundedAvg(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if got := roundedAvg[uint8](255, 254); got != 255 {
		t.Errorf("roundedAvg uint8 (255, 254) = %d, want 255", got)
	}
}

func TestAbsDiff(t *testing.T) {
	if got := absDiff[uint8](3, 250); got != 247 {
		t.Errorf("absDiff(3, 250) = %d, want 247", got)
	}
	if got := absDiff[uint16](1000, 24); got != 976 {
		t.Errorf("absDiff(1000, 24) = %d, want 976", got)
	}
	if got := absDiff[float32](0.25, 1); got != 0.75 {
		t.Errorf("absDiff(0.25, 1) = %v, want 0.75", got)
	}
}

// The baseline min/max emulation must agree with the builtins on every
// 8-bit pair.
func TestMinMaxBySaturationExhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			x, y := uint8(a), uint8(b)
			if got := minBySaturation(x, y); got != min(x, y) {
				t.Fatalf("minBySaturation(%d, %d) = %d", x, y, got)
			}
			if got := maxBySaturation(x, y); got != max(x, y) {
				t.Fatalf("maxBySaturation(%d, %d) = %d", x, y, got)
			}
		}
	}
}

func TestMinMaxBySaturationUint16Edges(t *testing.T) {
	values := []uint16{0, 1, 1023, 32767, 32768, 65534, 65535}
	for _, a := range values {
		for _, b := range values {
			if got := minBySaturation(a, b); got != min(a, b) {
				t.Errorf("minBySaturation(%d, %d) = %d", a, b, got)
			}
			if got := maxBySaturation(a, b); got != max(a, b) {
				t.Errorf("maxBySaturation(%d, %d) = %d", a, b, got)
			}
		}
	}
}

func TestMinMaxSigned16(t *testing.T) {
	// Exact for samples below the sign bit, which covers 10-bit video.
	for a := uint16(0); a < 1024; a += 7 {
		for b := uint16(0); b < 1024; b += 5 {
			if got := minSigned16(a, b); got != min(a, b) {
				t.Fatalf("minSigned16(%d, %d) = %d", a, b, got)
			}
			if got := maxSigned16(a, b); got != max(a, b) {
				t.Fatalf("maxSigned16(%d, %d) = %d", a, b, got)
			}
		}
	}
	// Above it the comparison is signed.
	if got := minSigned16(40000, 1); got != 40000 {
		t.Errorf("minSigned16(40000, 1) = %d, want 40000", got)
	}
}

func TestBlendBits(t *testing.T) {
	if got := blendBits[uint8](0xFF, 7, 9); got != 7 {
		t.Errorf("blendBits all-ones = %d, want 7", got)
	}
	if got := blendBits[uint8](0, 7, 9); got != 9 {
		t.Errorf("blendBits zero = %d, want 9", got)
	}
	if got := blendBits[uint16](0x00FF, 0x1234, 0xABCD); got != 0xAB34 {
		t.Errorf("blendBits partial = %#x, want 0xab34", got)
	}
	if got := blendBitsF32(maskOfF32(true), 1.5, -2); got != 1.5 {
		t.Errorf("blendBitsF32 true = %v, want 1.5", got)
	}
	if got := blendBitsF32(maskOfF32(false), 1.5, -2); got != -2 {
		t.Errorf("blendBitsF32 false = %v, want -2", got)
	}
}

func TestMaskOfF32(t *testing.T) {
	if bits := math.Float32bits(maskOfF32(true)); bits != 0xFFFFFFFF {
		t.Errorf("maskOfF32(true) bits = %#x, want 0xffffffff", bits)
	}
	if bits := math.Float32bits(maskOfF32(false)); bits != 0 {
		t.Errorf("maskOfF32(false) bits = %#x, want 0", bits)
	}
}
