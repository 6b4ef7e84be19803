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

package flicker

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
)

// Source supplies the frames of a clip. Fetch may block and may be called
// from several goroutines at once. Every frame returned by Fetch is handed
// back through Release exactly once, after which the source may reuse it.
type Source interface {
	Info() frame.VideoInfo
	Fetch(ctx context.Context, n int) (*frame.Frame, error)
	Release(f *frame.Frame)
}

// Filter produces flicker-reduced frames from a Source. GetFrame may be
// called concurrently for different frames.
type Filter struct {
	src       Source
	cfg       Config
	info      frame.VideoInfo
	level     hwy.DispatchLevel
	precision Precision
	backend   string
	driver    *driver
	closeOnce sync.Once
}

// New validates cfg against the clip of src and selects the kernel for
// the best tier caps allows.
func New(src Source, cfg Config, caps hwy.Capabilities) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	process, _ := cfg.process()

	vi := src.Info()
	if !vi.Constant() {
		return nil, fmt.Errorf("%w: clip is not constant format.", ErrUnsupportedFormat)
	}
	if !vi.Format.Planar {
		return nil, fmt.Errorf("%w: input clip must be planar format.", ErrUnsupportedFormat)
	}
	if vi.Format.NumPlanes > 3 {
		return nil, fmt.Errorf("%w: %d planes, at most 3 are supported.", ErrUnsupportedFormat, vi.Format.NumPlanes)
	}
	if len(cfg.Planes) > vi.Format.NumPlanes {
		return nil, fmt.Errorf("%w: 'planes' has %d entries but the clip has %d planes.", ErrConfig, len(cfg.Planes), vi.Format.NumPlanes)
	}
	if vi.NumFrames < 1 {
		return nil, fmt.Errorf("%w: clip has no frames.", ErrUnsupportedFormat)
	}
	prec, err := PrecisionOf(vi.Format)
	if err != nil {
		return nil, err
	}
	level, err := hwy.ResolveLevel(cfg.Opt, caps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	k, backend, err := Lookup(level, cfg.Strength, cfg.Aggressive, prec)
	if err != nil {
		return nil, err
	}
	for p := vi.Format.NumPlanes; p < 3; p++ {
		process[p] = false
	}

	cfg.Planes = append([]int(nil), cfg.Planes...)
	return &Filter{
		src:       src,
		cfg:       cfg,
		info:      vi,
		level:     level,
		precision: prec,
		backend:   backend,
		driver:    newDriver(k, process, cfg.Workers),
	}, nil
}

// Info describes the output clip, which matches the input clip.
func (f *Filter) Info() frame.VideoInfo { return f.info }

// Level returns the instruction tier the kernel was selected for.
func (f *Filter) Level() hwy.DispatchLevel { return f.level }

// Precision returns the sample class the kernel was selected for.
func (f *Filter) Precision() Precision { return f.precision }

// Describe summarises the selected kernel, e.g.
// "strength=2 basic avx2/8-bit/u8x32".
func (f *Filter) Describe() string {
	variant := "basic"
	if f.cfg.Aggressive {
		variant = "aggressive"
	}
	return fmt.Sprintf("strength=%d %s %s/%s/%s", f.cfg.Strength, variant, f.level, f.precision, f.backend)
}

// GetFrame returns output frame n. The window frames are fetched
// concurrently and released before GetFrame returns, also on error.
func (f *Filter) GetFrame(ctx context.Context, n int) (*frame.Frame, error) {
	last := f.info.NumFrames - 1
	if n < 0 || n > last {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrFrameRange, n, last)
	}

	w := ResolveWindow(n, last, f.cfg.Strength)
	indices := w.Indices()
	frames := make([]*frame.Frame, len(indices))
	defer func() {
		for _, fr := range frames {
			if fr != nil {
				f.src.Release(fr)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range indices {
		g.Go(func() error {
			fr, err := f.src.Fetch(gctx, k)
			if err != nil {
				return fmt.Errorf("fetching frame %d: %w", k, err)
			}
			frames[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slot := make(map[int]*frame.Frame, len(indices))
	for i, k := range indices {
		fr := frames[i]
		if *fr.Format != *f.info.Format || fr.Width != f.info.Width || fr.Height != f.info.Height {
			return nil, fmt.Errorf("%w: frame %d is %s %dx%d, clip is %s %dx%d", ErrUnsupportedFormat,
				k, fr.Format, fr.Width, fr.Height, f.info.Format, f.info.Width, f.info.Height)
		}
		slot[k] = fr
	}
	frameAt := func(k int) *frame.Frame { return slot[k] }

	cur := frameAt(n)
	dst := frame.NewAligned(cur.Format, cur.Width, cur.Height, f.level.Width())
	dst.N = n
	for p := range cur.Planes {
		f.driver.plane(dst, cur, p, w, frameAt)
	}
	return dst, nil
}

// Fetch makes a Filter usable as the Source of another Filter.
func (f *Filter) Fetch(ctx context.Context, n int) (*frame.Frame, error) {
	return f.GetFrame(ctx, n)
}

// Release is a no-op: output frames belong to the caller.
func (f *Filter) Release(*frame.Frame) {}

// Close stops the row workers. The Filter must not be used afterwards.
func (f *Filter) Close() {
	f.closeOnce.Do(f.driver.close)
}
