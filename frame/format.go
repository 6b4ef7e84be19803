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

package frame

import "fmt"

// SampleType distinguishes integer from floating-point samples.
type SampleType int

const (
	Integer SampleType = iota
	Float
)

func (s SampleType) String() string {
	if s == Float {
		return "float"
	}
	return "integer"
}

// Format describes how the samples of a frame are laid out.
type Format struct {
	Name          string
	SampleType    SampleType
	BitsPerSample int
	NumPlanes     int

	// SubSamplingW and SubSamplingH are log2 of the horizontal and vertical
	// chroma decimation: 1,1 for 4:2:0, 1,0 for 4:2:2, 0,0 for 4:4:4.
	SubSamplingW int
	SubSamplingH int

	// Planar is false for packed (interleaved) layouts.
	Planar bool
}

// BytesPerSample is 1 for 8-bit, 2 for 9 to 16-bit and 4 for float32.
func (f *Format) BytesPerSample() int {
	if f.SampleType == Float {
		return f.BitsPerSample / 8
	}
	return (f.BitsPerSample + 7) / 8
}

// PlaneWidth returns the width of plane p for a frame of the given width.
func (f *Format) PlaneWidth(p, width int) int {
	if p == 0 {
		return width
	}
	return (width + 1<<f.SubSamplingW - 1) >> f.SubSamplingW
}

// PlaneHeight returns the height of plane p for a frame of the given height.
func (f *Format) PlaneHeight(p, height int) int {
	if p == 0 {
		return height
	}
	return (height + 1<<f.SubSamplingH - 1) >> f.SubSamplingH
}

func (f *Format) String() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("%s%d/%dp/ss%d%d", f.SampleType, f.BitsPerSample, f.NumPlanes, f.SubSamplingW, f.SubSamplingH)
}

// Gray returns a single-plane integer format of the given depth.
func Gray(bits int) *Format {
	return &Format{
		Name:          fmt.Sprintf("gray%d", bits),
		SampleType:    Integer,
		BitsPerSample: bits,
		NumPlanes:     1,
		Planar:        true,
	}
}

// GrayS returns a single-plane float32 format.
func GrayS() *Format {
	return &Format{Name: "grays", SampleType: Float, BitsPerSample: 32, NumPlanes: 1, Planar: true}
}

// YUV returns a three-plane integer format with the given chroma
// subsampling and depth.
func YUV(ssw, ssh, bits int) *Format {
	return &Format{
		Name:          fmt.Sprintf("yuv%sp%d", chromaName(ssw, ssh), bits),
		SampleType:    Integer,
		BitsPerSample: bits,
		NumPlanes:     3,
		SubSamplingW:  ssw,
		SubSamplingH:  ssh,
		Planar:        true,
	}
}

// YUVS returns a three-plane float32 format.
func YUVS(ssw, ssh int) *Format {
	f := YUV(ssw, ssh, 32)
	f.Name = fmt.Sprintf("yuv%sps", chromaName(ssw, ssh))
	f.SampleType = Float
	return f
}

// RGB24 is a packed 8-bit RGB format. Filters that need planar input
// reject it.
var RGB24 = &Format{Name: "rgb24", SampleType: Integer, BitsPerSample: 8, NumPlanes: 1, Planar: false}

func chromaName(ssw, ssh int) string {
	switch {
	case ssw == 1 && ssh == 1:
		return "420"
	case ssw == 1 && ssh == 0:
		return "422"
	case ssw == 2 && ssh == 0:
		return "411"
	case ssw == 0 && ssh == 0:
		return "444"
	default:
		return fmt.Sprintf("ss%d%d", ssw, ssh)
	}
}

// VideoInfo describes a clip.
type VideoInfo struct {
	// Format is nil when frames may change format mid-clip.
	Format    *Format
	Width     int
	Height    int
	NumFrames int
	FPSNum    int64
	FPSDen    int64
}

// Constant reports whether every frame shares one format and size.
func (vi VideoInfo) Constant() bool {
	return vi.Format != nil && vi.Width > 0 && vi.Height > 0
}
