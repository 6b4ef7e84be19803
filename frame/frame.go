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

// Package frame provides the planar video frames the flicker filter reads
// and writes.
//
// Sample data is stored as bytes with rows padded to a multiple of
// Alignment, so one frame type serves every sample type and every vector
// width. Kernels view rows as typed samples with hwy.SamplesOf.
package frame

import "github.com/ajroetker/go-reduceflicker/hwy"

// Alignment is the row and buffer alignment of frames allocated by New. It
// covers the widest vector tier.
const Alignment = 32

// Plane is one 2D array of samples.
type Plane struct {
	Data           []byte
	Width          int // samples
	Height         int
	Stride         int // bytes between row starts
	BytesPerSample int
}

// RowBytes returns the number of meaningful bytes per row.
func (p *Plane) RowBytes() int {
	return p.Width * p.BytesPerSample
}

// Row returns the meaningful bytes of row y.
func (p *Plane) Row(y int) []byte {
	start := y * p.Stride
	return p.Data[start : start+p.RowBytes()]
}

// Frame is a video frame made of Format.NumPlanes planes.
type Frame struct {
	Format *Format
	Width  int
	Height int
	Planes []Plane

	// N is the index of the frame in its clip.
	N int
}

// New allocates a zeroed frame whose planes and rows start on Alignment
// byte boundaries.
func New(f *Format, width, height int) *Frame {
	return NewAligned(f, width, height, Alignment)
}

// NewAligned is New with an explicit alignment, a power of two.
func NewAligned(f *Format, width, height, align int) *Frame {
	fr := &Frame{Format: f, Width: width, Height: height, Planes: make([]Plane, f.NumPlanes)}
	bps := f.BytesPerSample()
	for p := range fr.Planes {
		w, h := f.PlaneWidth(p, width), f.PlaneHeight(p, height)
		if !f.Planar {
			// Packed layouts interleave three components per pixel.
			w *= 3
		}
		stride := hwy.AlignUp(w*bps, align)
		fr.Planes[p] = Plane{
			Data:           hwy.AlignedBytes(stride*h, align),
			Width:          w,
			Height:         h,
			Stride:         stride,
			BytesPerSample: bps,
		}
	}
	return fr
}

// CopyPlane copies the samples of src into dst, which must be at least as
// large. Planes sharing a stride are copied in one block.
func CopyPlane(dst, src *Plane) {
	rowBytes := src.RowBytes()
	if src.Height == 0 || rowBytes == 0 {
		return
	}
	if dst.Stride == src.Stride {
		n := (src.Height-1)*src.Stride + rowBytes
		copy(dst.Data[:n], src.Data[:n])
		return
	}
	for y := range src.Height {
		copy(dst.Data[y*dst.Stride:y*dst.Stride+rowBytes], src.Row(y))
	}
}
