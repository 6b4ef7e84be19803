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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
	"github.com/ajroetker/go-reduceflicker/source"
	"github.com/ajroetker/go-reduceflicker/y4m"
)

// rampClip returns n gray frames whose samples step by 20 per frame, with
// every other frame flickering up by 30.
func rampClip(n, w, h int) []*frame.Frame {
	frames := make([]*frame.Frame, n)
	for i := range frames {
		v := byte(i*20 + (i%2)*30)
		f := frame.New(frame.Gray(8), w, h)
		for y := range h {
			row := f.Planes[0].Row(y)
			for x := range row {
				row[x] = v + byte(x)
			}
		}
		frames[i] = f
	}
	return frames
}

func writeY4M(t *testing.T, path string, frames []*frame.Frame) {
	t.Helper()
	f0 := frames[0]
	hdr, err := y4m.HeaderFor(f0.Format, f0.Width, f0.Height, 25, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w, err := y4m.NewWriter(&buf, hdr)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range frames {
		if err := w.WriteFrame(f); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// run filters in batches but must write every frame in clip order, equal
// to what the library produces frame by frame.
func TestRunWritesFramesInOrder(t *testing.T) {
	const (
		numFrames = 11
		width     = 37
		height    = 5
	)
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.y4m"), filepath.Join(dir, "out.y4m")
	snap := filepath.Join(dir, "snap.tiff")
	frames := rampClip(numFrames, width, height)
	writeY4M(t, in, frames)

	cfg := defaultFileConfig()
	cfg.Strength = 3
	cfg.Jobs = 4
	cfg.Snapshot = snap
	cfg.SnapshotFrame = 6
	ctx := context.Background()
	if err := run(ctx, in, out, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	clip, err := source.NewClip(rampClip(numFrames, width, height), 25, 1)
	if err != nil {
		t.Fatal(err)
	}
	want, err := flicker.New(clip, cfg.Config, hwy.DetectCapabilities())
	if err != nil {
		t.Fatal(err)
	}
	defer want.Close()

	file, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	dec, err := y4m.NewReader(file)
	if err != nil {
		t.Fatal(err)
	}
	var snapWant *frame.Frame
	for n := range numFrames {
		got, err := dec.Next()
		if err != nil {
			t.Fatalf("reading output frame %d: %v", n, err)
		}
		w, err := want.GetFrame(ctx, n)
		if err != nil {
			t.Fatal(err)
		}
		for y := range height {
			if !bytes.Equal(got.Planes[0].Row(y), w.Planes[0].Row(y)) {
				t.Fatalf("output frame %d row %d = %v, want %v", n, y, got.Planes[0].Row(y), w.Planes[0].Row(y))
			}
		}
		if n == cfg.SnapshotFrame {
			snapWant = w
		}
	}
	if _, err := dec.Next(); err == nil {
		t.Error("output has more frames than the input")
	}

	data, err := os.ReadFile(snap)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		t.Errorf("snapshot is %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
	r, _, _, _ := img.At(3, 2).RGBA()
	if got, want := byte(r>>8), snapWant.Planes[0].Row(2)[3]; got != want {
		t.Errorf("snapshot sample (3,2) = %d, want %d", got, want)
	}
}

func TestRunMissingInput(t *testing.T) {
	cfg := defaultFileConfig()
	cfg.Jobs = 2
	err := run(context.Background(), filepath.Join(t.TempDir(), "none.y4m"), "-", cfg)
	if err == nil {
		t.Error("run with a missing input succeeded")
	}
}
