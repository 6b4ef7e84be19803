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

import "unsafe"

// This file provides the byte-level views plane data is accessed through.
// Planes are stored as []byte so one frame type serves every sample type;
// kernels reinterpret rows with SamplesOf.

// SizeOf returns the size in bytes of one sample of type T.
func SizeOf[T Sample]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SamplesOf reinterprets b as a slice of T. len(b) is truncated to a whole
// number of samples. b must be aligned for T, which every buffer returned
// by AlignedBytes is.
func SamplesOf[T Sample](b []byte) []T {
	size := SizeOf[T]()
	n := len(b) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AlignUp rounds n up to a multiple of align, which must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// AlignedBytes returns a zeroed slice of n bytes whose first byte sits on
// an align-byte boundary. align must be a power of two.
func AlignedBytes(n, align int) []byte {
	if n == 0 {
		return []byte{}
	}
	buf := make([]byte, n+align-1)
	rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) % uintptr(align))
	off := (align - rem) & (align - 1)
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first byte of b sits on an align-byte
// boundary.
func IsAligned(b []byte, align int) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%uintptr(align) == 0
}
