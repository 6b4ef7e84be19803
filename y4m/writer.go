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

package y4m

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ajroetker/go-reduceflicker/frame"
)

// Writer encodes frames as a YUV4MPEG2 stream.
type Writer struct {
	bw     *bufio.Writer
	hdr    Header
	format *frame.Format
}

// NewWriter writes the stream header for hdr to w.
func NewWriter(w io.Writer, hdr Header) (*Writer, error) {
	format, err := hdr.Format()
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriterSize(w, 1<<16)
	if _, err := fmt.Fprintf(bw, "%s\n", hdr); err != nil {
		return nil, err
	}
	return &Writer{bw: bw, hdr: hdr, format: format}, nil
}

// HeaderFor builds a header describing frames of format f.
func HeaderFor(f *frame.Format, width, height int, fpsNum, fpsDen int64) (Header, error) {
	cs, err := Colorspace(f)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Width:      width,
		Height:     height,
		FPSNum:     fpsNum,
		FPSDen:     fpsDen,
		Interlace:  'p',
		AspectNum:  1,
		AspectDen:  1,
		Colorspace: cs,
	}, nil
}

// WriteFrame appends one frame. Its format and size must match the header.
func (w *Writer) WriteFrame(f *frame.Frame) error {
	if *f.Format != *w.format || f.Width != w.hdr.Width || f.Height != w.hdr.Height {
		return fmt.Errorf("y4m: frame is %s %dx%d, stream is %s %dx%d",
			f.Format, f.Width, f.Height, w.format, w.hdr.Width, w.hdr.Height)
	}
	if _, err := w.bw.WriteString(frameMagic + "\n"); err != nil {
		return err
	}
	for p := range f.Planes {
		pl := &f.Planes[p]
		for y := range pl.Height {
			if _, err := w.bw.Write(pl.Row(y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
