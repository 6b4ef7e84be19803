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

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-reduceflicker/hwy"
)

// WriteTIFFToFile writes plane p of f as a grayscale TIFF file.
func (f *Frame) WriteTIFFToFile(fileName string, p int) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := f.WriteTIFF(writer, p); err != nil {
		return err
	}
	return writer.Flush()
}

// WriteTIFF writes plane p of f as a grayscale TIFF. 8-bit planes become
// 8-bit images. 9 to 16-bit planes are scaled to 16 bits. Float planes
// are clamped to [0, 1] and written as 16-bit.
func (f *Frame) WriteTIFF(w io.Writer, p int) error {
	if p < 0 || p >= len(f.Planes) {
		return fmt.Errorf("frame has no plane %d", p)
	}
	if !f.Format.Planar {
		return fmt.Errorf("snapshots of packed format %s are not supported", f.Format)
	}
	plane := &f.Planes[p]
	rect := image.Rect(0, 0, plane.Width, plane.Height)

	var img image.Image
	switch {
	case f.Format.SampleType == Float:
		g := image.NewGray16(rect)
		for y := range plane.Height {
			for x, v := range hwy.SamplesOf[float32](plane.Row(y)) {
				// replace NaNs with zeros, TIFF has no room for them
				if math.IsNaN(float64(v)) || v < 0 {
					v = 0
				}
				v = min(v, 1)
				putGray16(g, x, y, uint16(v*65535+0.5))
			}
		}
		img = g
	case f.Format.BitsPerSample > 8:
		g := image.NewGray16(rect)
		shift := 16 - f.Format.BitsPerSample
		for y := range plane.Height {
			for x, v := range hwy.SamplesOf[uint16](plane.Row(y)) {
				putGray16(g, x, y, v<<shift)
			}
		}
		img = g
	default:
		g := image.NewGray(rect)
		for y := range plane.Height {
			copy(g.Pix[y*g.Stride:], plane.Row(y))
		}
		img = g
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func putGray16(g *image.Gray16, x, y int, v uint16) {
	i := y*g.Stride + 2*x
	g.Pix[i] = uint8(v >> 8)
	g.Pix[i+1] = uint8(v)
}
