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

// Package y4m reads and writes YUV4MPEG2 streams.
//
// A stream is one header line followed by frames, each a "FRAME" line and
// the raw planes in Y, Cb, Cr order. Samples deeper than 8 bits take two
// bytes, little-endian.
package y4m

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-reduceflicker/frame"
)

// ErrBadHeader reports a malformed or unsupported stream or frame header.
var ErrBadHeader = errors.New("y4m: bad header")

const (
	streamMagic = "YUV4MPEG2"
	frameMagic  = "FRAME"
)

// Header is the parsed stream header.
type Header struct {
	Width, Height  int
	FPSNum, FPSDen int64

	// Interlace is the I tag: 'p', 't', 'b' or 'm'. Zero when absent.
	Interlace byte

	AspectNum, AspectDen int

	// Colorspace is the C tag, e.g. "420jpeg" or "422p10". Empty means
	// 4:2:0 8-bit.
	Colorspace string

	// Extensions holds X tags verbatim, without the X.
	Extensions []string
}

// ParseHeader parses a stream header line without its trailing newline.
func ParseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != streamMagic {
		return Header{}, fmt.Errorf("%w: missing %s signature", ErrBadHeader, streamMagic)
	}
	var h Header
	for _, f := range fields[1:] {
		tag, val := f[0], f[1:]
		var err error
		switch tag {
		case 'W':
			h.Width, err = strconv.Atoi(val)
		case 'H':
			h.Height, err = strconv.Atoi(val)
		case 'F':
			h.FPSNum, h.FPSDen, err = parseRatio64(val)
		case 'A':
			var n, d int64
			n, d, err = parseRatio64(val)
			h.AspectNum, h.AspectDen = int(n), int(d)
		case 'I':
			if len(val) > 0 {
				h.Interlace = val[0]
			}
		case 'C':
			h.Colorspace = val
		case 'X':
			h.Extensions = append(h.Extensions, val)
		default:
			// Unknown tags are ignored.
		}
		if err != nil {
			return Header{}, fmt.Errorf("%w: tag %q: %v", ErrBadHeader, f, err)
		}
	}
	if h.Width <= 0 || h.Height <= 0 {
		return Header{}, fmt.Errorf("%w: invalid size %dx%d", ErrBadHeader, h.Width, h.Height)
	}
	if _, err := h.Format(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func parseRatio64(s string) (int64, int64, error) {
	num, den, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("missing ':' in ratio %q", s)
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return n, d, nil
}

// String formats the header line without its trailing newline.
func (h Header) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s W%d H%d", streamMagic, h.Width, h.Height)
	if h.FPSDen != 0 {
		fmt.Fprintf(&b, " F%d:%d", h.FPSNum, h.FPSDen)
	}
	if h.Interlace != 0 {
		fmt.Fprintf(&b, " I%c", h.Interlace)
	}
	if h.AspectDen != 0 {
		fmt.Fprintf(&b, " A%d:%d", h.AspectNum, h.AspectDen)
	}
	if h.Colorspace != "" {
		fmt.Fprintf(&b, " C%s", h.Colorspace)
	}
	for _, x := range h.Extensions {
		fmt.Fprintf(&b, " X%s", x)
	}
	return b.String()
}

// Format maps the colourspace tag to a frame format.
func (h Header) Format() (*frame.Format, error) {
	cs := h.Colorspace
	switch cs {
	case "", "420", "420jpeg", "420paldv", "420mpeg2":
		return frame.YUV(1, 1, 8), nil
	case "mono":
		return frame.Gray(8), nil
	case "mono16":
		return frame.Gray(16), nil
	}

	chroma, depth, deep := strings.Cut(cs, "p")
	bits := 8
	if deep {
		var err error
		bits, err = strconv.Atoi(depth)
		if err != nil || bits < 9 || bits > 16 {
			return nil, fmt.Errorf("%w: unsupported colourspace %q", ErrBadHeader, cs)
		}
	}
	switch chroma {
	case "420":
		return frame.YUV(1, 1, bits), nil
	case "422":
		return frame.YUV(1, 0, bits), nil
	case "444":
		return frame.YUV(0, 0, bits), nil
	case "411":
		return frame.YUV(2, 0, bits), nil
	}
	return nil, fmt.Errorf("%w: unsupported colourspace %q", ErrBadHeader, cs)
}

// Colorspace returns the C tag for a frame format.
func Colorspace(f *frame.Format) (string, error) {
	if f.SampleType != frame.Integer || !f.Planar || f.BitsPerSample > 16 {
		return "", fmt.Errorf("%w: format %s cannot be stored", ErrBadHeader, f)
	}
	if f.NumPlanes == 1 {
		switch f.BitsPerSample {
		case 8:
			return "mono", nil
		case 16:
			return "mono16", nil
		}
		return "", fmt.Errorf("%w: format %s cannot be stored", ErrBadHeader, f)
	}

	var chroma string
	switch {
	case f.SubSamplingW == 1 && f.SubSamplingH == 1:
		chroma = "420"
	case f.SubSamplingW == 1 && f.SubSamplingH == 0:
		chroma = "422"
	case f.SubSamplingW == 0 && f.SubSamplingH == 0:
		chroma = "444"
	case f.SubSamplingW == 2 && f.SubSamplingH == 0:
		chroma = "411"
	default:
		return "", fmt.Errorf("%w: format %s cannot be stored", ErrBadHeader, f)
	}
	switch {
	case f.BitsPerSample == 8 && chroma == "420":
		return "420jpeg", nil
	case f.BitsPerSample == 8:
		return chroma, nil
	default:
		return fmt.Sprintf("%sp%d", chroma, f.BitsPerSample), nil
	}
}

// FrameBytes returns the payload size of one frame, without its FRAME line.
func FrameBytes(f *frame.Format, width, height int) int {
	n := 0
	for p := range f.NumPlanes {
		n += f.PlaneWidth(p, width) * f.PlaneHeight(p, height) * f.BytesPerSample()
	}
	return n
}
