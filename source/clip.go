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

// Package source provides frame sources for the flicker filter: an
// in-memory clip and a streaming YUV4MPEG2 decoder with a bounded cache.
package source

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ajroetker/go-reduceflicker/frame"
)

var (
	// ErrNoFrame reports a frame index outside the clip.
	ErrNoFrame = errors.New("source: no such frame")

	// ErrEvicted reports a frame that has already left the decode cache.
	ErrEvicted = errors.New("source: frame evicted from cache")
)

// Clip is a read-only in-memory clip. Fetch hands out the stored frames
// themselves, so callers must not modify them.
type Clip struct {
	frames []*frame.Frame
	info   frame.VideoInfo

	fetched     atomic.Int64
	outstanding atomic.Int64
}

// NewClip wraps frames, which must share one format and size.
func NewClip(frames []*frame.Frame, fpsNum, fpsDen int64) (*Clip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: empty clip", ErrNoFrame)
	}
	first := frames[0]
	for i, f := range frames {
		if *f.Format != *first.Format || f.Width != first.Width || f.Height != first.Height {
			return nil, fmt.Errorf("source: frame %d is %s %dx%d, frame 0 is %s %dx%d",
				i, f.Format, f.Width, f.Height, first.Format, first.Width, first.Height)
		}
		f.N = i
	}
	return &Clip{
		frames: frames,
		info: frame.VideoInfo{
			Format:    first.Format,
			Width:     first.Width,
			Height:    first.Height,
			NumFrames: len(frames),
			FPSNum:    fpsNum,
			FPSDen:    fpsDen,
		},
	}, nil
}

func (c *Clip) Info() frame.VideoInfo { return c.info }

func (c *Clip) Fetch(ctx context.Context, n int) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 0 || n >= len(c.frames) {
		return nil, fmt.Errorf("%w: %d", ErrNoFrame, n)
	}
	c.fetched.Add(1)
	c.outstanding.Add(1)
	return c.frames[n], nil
}

func (c *Clip) Release(*frame.Frame) {
	c.outstanding.Add(-1)
}

// Fetched returns how many frames have been handed out.
func (c *Clip) Fetched() int64 { return c.fetched.Load() }

// Outstanding returns how many fetched frames have not been released.
func (c *Clip) Outstanding() int64 { return c.outstanding.Load() }
