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

func TestAlignedBytes(t *testing.T) {
	for _, align := range []int{1, 2, 16, 32, 64} {
		for _, n := range []int{1, 7, 100, 4096} {
			b := AlignedBytes(n, align)
			if len(b) != n || cap(b) != n {
				t.Errorf("AlignedBytes(%d, %d): len %d cap %d", n, align, len(b), cap(b))
			}
			if !IsAligned(b, align) {
				t.Errorf("AlignedBytes(%d, %d) is not aligned", n, align)
			}
		}
	}
	if b := AlignedBytes(0, 32); len(b) != 0 {
		t.Errorf("AlignedBytes(0, 32) has length %d", len(b))
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct{ n, align, want int }{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 32, 32},
		{100, 32, 128},
	}
	for _, tt := range tests {
		if got := AlignUp(tt.n, tt.align); got != tt.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", tt.n, tt.align, got, tt.want)
		}
	}
}

func TestSamplesOf(t *testing.T) {
	b := AlignedBytes(12, 16)
	s := SamplesOf[uint16](b)
	if len(s) != 6 {
		t.Fatalf("len(SamplesOf[uint16]) = %d, want 6", len(s))
	}
	s[1] = 0x0201
	if b[2] != 0x01 || b[3] != 0x02 {
		t.Errorf("write through uint16 view gave bytes %v", b[:4])
	}
	f := SamplesOf[float32](b)
	if len(f) != 3 {
		t.Errorf("len(SamplesOf[float32]) = %d, want 3", len(f))
	}
	if SamplesOf[uint16]([]byte{1}) != nil {
		t.Error("SamplesOf of a partial sample should be nil")
	}
}
