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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ajroetker/go-reduceflicker/frame"
)

// maxLine bounds header and FRAME lines.
const maxLine = 4096

// Reader decodes frames from a YUV4MPEG2 stream.
type Reader struct {
	br         *bufio.Reader
	hdr        Header
	format     *frame.Format
	frameBytes int
	n          int
}

// NewReader reads the stream header from r.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(r, 1<<16)
	line, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	hdr, err := ParseHeader(line)
	if err != nil {
		return nil, err
	}
	format, err := hdr.Format()
	if err != nil {
		return nil, err
	}
	return &Reader{
		br:         br,
		hdr:        hdr,
		format:     format,
		frameBytes: FrameBytes(format, hdr.Width, hdr.Height),
	}, nil
}

// Header returns the stream header.
func (r *Reader) Header() Header { return r.hdr }

// Format returns the frame format of the stream. Every frame shares it.
func (r *Reader) Format() *frame.Format { return r.format }

// FrameBytes returns the payload size of one frame.
func (r *Reader) FrameBytes() int { return r.frameBytes }

// NewFrame allocates a frame sized for this stream.
func (r *Reader) NewFrame() *frame.Frame {
	return frame.New(r.format, r.hdr.Width, r.hdr.Height)
}

// ReadFrame decodes the next frame into dst, which must come from
// NewFrame. It returns io.EOF when the stream ends cleanly and
// io.ErrUnexpectedEOF when it ends mid-frame.
func (r *Reader) ReadFrame(dst *frame.Frame) error {
	line, err := readLine(r.br)
	if err == io.EOF && line == "" {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("frame %d: %w", r.n, err)
	}
	if !strings.HasPrefix(line, frameMagic) {
		return fmt.Errorf("%w: frame %d starts with %q", ErrBadHeader, r.n, truncate(line))
	}
	for p := range dst.Planes {
		pl := &dst.Planes[p]
		for y := range pl.Height {
			// Samples are stored little-endian in memory too.
			if _, err := io.ReadFull(r.br, pl.Row(y)); err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return fmt.Errorf("frame %d: %w", r.n, err)
			}
		}
	}
	dst.N = r.n
	r.n++
	return nil
}

// Next allocates and decodes the next frame.
func (r *Reader) Next() (*frame.Frame, error) {
	f := r.NewFrame()
	if err := r.ReadFrame(f); err != nil {
		return nil, err
	}
	return f, nil
}

// readLine reads up to and excluding the next newline.
func readLine(br *bufio.Reader) (string, error) {
	var b strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				err = io.ErrUnexpectedEOF
			}
			return b.String(), err
		}
		if c == '\n' {
			return b.String(), nil
		}
		if b.Len() >= maxLine {
			return "", fmt.Errorf("%w: line longer than %d bytes", ErrBadHeader, maxLine)
		}
		b.WriteByte(c)
	}
}

func truncate(s string) string {
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}

// CountFrames returns the number of whole frames in a seekable stream and
// leaves rs positioned at its start. Only the FRAME lines are read.
func CountFrames(rs io.ReadSeeker) (int, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	br := bufio.NewReaderSize(rs, maxLine)
	line, err := readLine(br)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	hdr, err := ParseHeader(line)
	if err != nil {
		return 0, err
	}
	format, _ := hdr.Format()
	frameBytes := int64(FrameBytes(format, hdr.Width, hdr.Height))

	pos := int64(len(line) + 1)
	n := 0
	for pos < size {
		if _, err := rs.Seek(pos, io.SeekStart); err != nil {
			return 0, err
		}
		br.Reset(rs)
		line, err := readLine(br)
		if err != nil {
			break
		}
		if !strings.HasPrefix(line, frameMagic) {
			return 0, fmt.Errorf("%w: frame %d starts with %q", ErrBadHeader, n, truncate(line))
		}
		pos += int64(len(line)+1) + frameBytes
		if pos > size {
			break
		}
		n++
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return n, nil
}
