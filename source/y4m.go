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

package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/pbnjay/memory"

	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/y4m"
)

// Y4M decodes a YUV4MPEG2 file on demand. Decoded frames stay in a
// sliding cache until it is full; the oldest frame nobody holds is then
// evicted and its buffers are reused. Requests must therefore move
// forward through the clip roughly in order: a frame that has left the
// cache cannot be decoded again and Fetch reports ErrEvicted.
type Y4M struct {
	mu       sync.Mutex
	file     io.Closer
	dec      *y4m.Reader
	info     frame.VideoInfo
	capacity int

	cache map[int]*entry
	free  []*frame.Frame
	next  int // index the decoder produces next
	err   error
}

type entry struct {
	f    *frame.Frame
	refs int
}

// CacheFrames returns the cache capacity for a window of window frames
// and the given number of frames in flight. The capacity is capped so the
// cache uses at most an eighth of physical memory, but never drops below
// window+inFlight-1: that many frames are needed at once when inFlight
// consecutive frames are filtered together.
func CacheFrames(window, inFlight, frameBytes int) int {
	inFlight = max(inFlight, 1)
	want := window + inFlight
	floor := window + inFlight - 1
	total := memory.TotalMemory()
	if total == 0 || frameBytes == 0 {
		return want
	}
	budget := int(total / 8 / uint64(frameBytes))
	if budget < floor {
		slog.Warn("y4m-source: frame cache exceeds the memory budget",
			"frames", floor, "budget_frames", budget)
	}
	return max(min(want, budget), floor)
}

// OpenY4M opens a YUV4MPEG2 file with room for capacity frames.
func OpenY4M(path string, capacity int) (*Y4M, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	n, err := y4m.CountFrames(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dec, err := y4m.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s := NewY4M(dec, n, capacity)
	s.file = file
	return s, nil
}

// NewY4M serves numFrames frames from dec.
func NewY4M(dec *y4m.Reader, numFrames, capacity int) *Y4M {
	hdr := dec.Header()
	s := &Y4M{
		dec: dec,
		info: frame.VideoInfo{
			Format:    dec.Format(),
			Width:     hdr.Width,
			Height:    hdr.Height,
			NumFrames: numFrames,
			FPSNum:    hdr.FPSNum,
			FPSDen:    hdr.FPSDen,
		},
		capacity: max(capacity, 1),
		cache:    make(map[int]*entry, capacity+1),
	}
	slog.Debug("y4m-source: opened",
		"size", fmt.Sprintf("%dx%d", hdr.Width, hdr.Height),
		"format", dec.Format().String(),
		"frames", numFrames,
		"cache_frames", s.capacity)
	return s
}

func (s *Y4M) Info() frame.VideoInfo { return s.info }

// Header returns the stream header, for writing output with the same
// properties.
func (s *Y4M) Header() y4m.Header { return s.dec.Header() }

func (s *Y4M) Fetch(ctx context.Context, n int) (*frame.Frame, error) {
	if n < 0 || n >= s.info.NumFrames {
		return nil, fmt.Errorf("%w: %d", ErrNoFrame, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for n >= s.next {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.decode(); err != nil {
			return nil, err
		}
	}
	e, ok := s.cache[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d (decoder is at %d)", ErrEvicted, n, s.next)
	}
	e.refs++
	return e.f, nil
}

// decode reads frame s.next into the cache. s.mu must be held.
func (s *Y4M) decode() error {
	if s.err != nil {
		return s.err
	}
	var f *frame.Frame
	if len(s.free) > 0 {
		f, s.free = s.free[len(s.free)-1], s.free[:len(s.free)-1]
	} else {
		f = s.dec.NewFrame()
	}
	if err := s.dec.ReadFrame(f); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("%w: stream ended at frame %d", ErrNoFrame, s.next)
		}
		s.err = err
		slog.Error("y4m-source: decode failed", "frame", s.next, "error", err)
		return err
	}
	s.cache[s.next] = &entry{f: f}
	s.next++
	s.evict()
	return nil
}

// evict drops the oldest unreferenced frames while the cache is over
// capacity. The newest frame is never dropped. s.mu must be held.
func (s *Y4M) evict() {
	newest := s.next - 1
	for len(s.cache) > s.capacity {
		victim := -1
		for n, e := range s.cache {
			if n != newest && e.refs == 0 && (victim < 0 || n < victim) {
				victim = n
			}
		}
		if victim < 0 {
			slog.Warn("y4m-source: every cached frame is in use, cache grows past capacity",
				"cached", len(s.cache), "capacity", s.capacity)
			return
		}
		s.free = append(s.free, s.cache[victim].f)
		delete(s.cache, victim)
	}
}

func (s *Y4M) Release(f *frame.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.cache[f.N]; ok && e.f == f && e.refs > 0 {
		e.refs--
		return
	}
	slog.Warn("y4m-source: release of a frame not held", "frame", f.N)
}

// Close closes the underlying file, if OpenY4M opened one.
func (s *Y4M) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
