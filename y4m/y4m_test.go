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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
)

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader("YUV4MPEG2 W720 H480 F30000:1001 It A10:11 C422p10 XYSCSS=422P10 XCOLORRANGE=LIMITED")
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	want := Header{
		Width: 720, Height: 480,
		FPSNum: 30000, FPSDen: 1001,
		Interlace: 't',
		AspectNum: 10, AspectDen: 11,
		Colorspace: "422p10",
		Extensions: []string{"YSCSS=422P10", "COLORRANGE=LIMITED"},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if got := h.String(); got != "YUV4MPEG2 W720 H480 F30000:1001 It A10:11 C422p10 XYSCSS=422P10 XCOLORRANGE=LIMITED" {
		t.Errorf("String() = %q", got)
	}
	f, err := h.Format()
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if f.BitsPerSample != 10 || f.SubSamplingW != 1 || f.SubSamplingH != 0 {
		t.Errorf("Format() = %+v, want 4:2:2 10-bit", f)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"YUV4MPEG W16 H16",
		"YUV4MPEG2 W16",
		"YUV4MPEG2 W16 H16 Fabc",
		"YUV4MPEG2 W16 H16 C444alpha",
		"YUV4MPEG2 W16 H16 C420p20",
	} {
		if _, err := ParseHeader(line); !errors.Is(err, ErrBadHeader) {
			t.Errorf("ParseHeader(%q) error = %v, want ErrBadHeader", line, err)
		}
	}
}

func TestColorspaceRoundTrip(t *testing.T) {
	for _, f := range []*frame.Format{
		frame.YUV(1, 1, 8), frame.YUV(1, 0, 8), frame.YUV(0, 0, 8), frame.YUV(2, 0, 8),
		frame.YUV(1, 1, 10), frame.YUV(0, 0, 16), frame.Gray(8), frame.Gray(16),
	} {
		cs, err := Colorspace(f)
		if err != nil {
			t.Errorf("Colorspace(%s): %v", f, err)
			continue
		}
		back, err := Header{Width: 2, Height: 2, Colorspace: cs}.Format()
		if err != nil {
			t.Errorf("Format(%q): %v", cs, err)
			continue
		}
		if *back != *f {
			t.Errorf("%s -> %q -> %s", f, cs, back)
		}
	}
	if _, err := Colorspace(frame.YUVS(1, 1)); err == nil {
		t.Error("Colorspace accepted float samples")
	}
}

func makeFrame(f *frame.Format, w, h, seed int) *frame.Frame {
	fr := frame.New(f, w, h)
	for p := range fr.Planes {
		pl := &fr.Planes[p]
		for y := range pl.Height {
			if f.BytesPerSample() == 2 {
				for x := range pl.Width {
					hwy.SamplesOf[uint16](pl.Row(y))[x] = uint16((seed*31 + p*7 + y*13 + x) % (1 << f.BitsPerSample))
				}
				continue
			}
			for x := range pl.Width {
				pl.Row(y)[x] = byte(seed*31 + p*7 + y*13 + x)
			}
		}
	}
	return fr
}

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format *frame.Format
		w, h   int
	}{
		{"420 8-bit", frame.YUV(1, 1, 8), 18, 10},
		{"422 10-bit", frame.YUV(1, 0, 10), 33, 7},
		{"mono16", frame.Gray(16), 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr, err := HeaderFor(tt.format, tt.w, tt.h, 25, 1)
			if err != nil {
				t.Fatalf("HeaderFor: %v", err)
			}
			var buf bytes.Buffer
			w, err := NewWriter(&buf, hdr)
			if err != nil {
				t.Fatalf("NewWriter: %v", err)
			}
			var frames []*frame.Frame
			for i := range 3 {
				fr := makeFrame(tt.format, tt.w, tt.h, i)
				frames = append(frames, fr)
				if err := w.WriteFrame(fr); err != nil {
					t.Fatalf("WriteFrame: %v", err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}

			n, err := CountFrames(bytes.NewReader(buf.Bytes()))
			if err != nil || n != 3 {
				t.Fatalf("CountFrames = %d, %v; want 3", n, err)
			}

			r, err := NewReader(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("NewReader: %v", err)
			}
			if diff := cmp.Diff(hdr, r.Header()); diff != "" {
				t.Errorf("header mismatch (-want +got):\n%s", diff)
			}
			for i, want := range frames {
				got, err := r.Next()
				if err != nil {
					t.Fatalf("frame %d: %v", i, err)
				}
				if got.N != i {
					t.Errorf("frame %d has N %d", i, got.N)
				}
				for p := range want.Planes {
					for y := range want.Planes[p].Height {
						if !bytes.Equal(got.Planes[p].Row(y), want.Planes[p].Row(y)) {
							t.Fatalf("frame %d plane %d row %d differs", i, p, y)
						}
					}
				}
			}
			if _, err := r.Next(); err != io.EOF {
				t.Errorf("after last frame: err = %v, want io.EOF", err)
			}
		})
	}
}

func TestTruncatedFrame(t *testing.T) {
	hdr, _ := HeaderFor(frame.Gray(8), 4, 4, 25, 1)
	var buf bytes.Buffer
	w, _ := NewWriter(&buf, hdr)
	_ = w.WriteFrame(makeFrame(frame.Gray(8), 4, 4, 0))
	_ = w.Flush()
	data := buf.Bytes()[:buf.Len()-3]

	n, err := CountFrames(bytes.NewReader(data))
	if err != nil || n != 0 {
		t.Errorf("CountFrames of truncated stream = %d, %v; want 0", n, err)
	}
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Next() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestBadFrameMarker(t *testing.T) {
	data := []byte("YUV4MPEG2 W2 H2 Cmono\nFRAMX\n1234")
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.Next(); !errors.Is(err, ErrBadHeader) {
		t.Errorf("Next() error = %v, want ErrBadHeader", err)
	}
}

func TestWriterRejectsMismatch(t *testing.T) {
	hdr, _ := HeaderFor(frame.Gray(8), 4, 4, 25, 1)
	w, _ := NewWriter(io.Discard, hdr)
	if err := w.WriteFrame(frame.New(frame.Gray(8), 8, 4)); err == nil {
		t.Error("WriteFrame accepted a frame of the wrong size")
	}
}
