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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
	"github.com/ajroetker/go-reduceflicker/source"
	"github.com/ajroetker/go-reduceflicker/y4m"
)

func newRunCmd() *cobra.Command {
	var (
		ff            filterFlags
		input, output string
		jobs          int
		snapshot      string
		snapshotFrame int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Filter a YUV4MPEG2 file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ff.config(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("jobs") || cfg.Jobs == 0 {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("snapshot") {
				cfg.Snapshot = snapshot
			}
			if cmd.Flags().Changed("snapshot-frame") {
				cfg.SnapshotFrame = snapshotFrame
			}
			if cfg.Jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, input, output, cfg)
		},
	}
	ff.register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&input, "input", "i", "", "input .y4m file")
	fl.StringVarP(&output, "output", "o", "-", "output .y4m file, - for stdout")
	fl.IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "frames filtered at once")
	fl.StringVar(&snapshot, "snapshot", "", "write plane 0 of --snapshot-frame to this TIFF file")
	fl.IntVar(&snapshotFrame, "snapshot-frame", 0, "frame index for --snapshot")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func run(ctx context.Context, input, output string, cfg fileConfig) error {
	headFile, err := os.Open(input)
	if err != nil {
		return err
	}
	dec, err := y4m.NewReader(headFile)
	headFile.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	win := flicker.ResolveWindow(0, 0, cfg.Strength)
	window := 1 + win.PrevTaps + win.NextTaps
	capacity := source.CacheFrames(window, cfg.Jobs, dec.FrameBytes())

	src, err := source.OpenY4M(input, capacity)
	if err != nil {
		return err
	}
	defer src.Close()

	f, err := flicker.New(src, cfg.Config, hwy.DetectCapabilities())
	if err != nil {
		return err
	}
	defer f.Close()

	var out io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	w, err := y4m.NewWriter(out, src.Header())
	if err != nil {
		return err
	}

	info := f.Info()
	slog.Info("rdfl: filtering",
		"input", input,
		"frames", info.NumFrames,
		"size", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"format", info.Format.String(),
		"kernel", f.Describe(),
		"jobs", cfg.Jobs,
		"cache_frames", capacity)

	start := time.Now()
	// Frames are filtered in batches of cfg.Jobs so the frames in flight
	// stay within one window of each other and inside the source cache.
	for first := 0; first < info.NumFrames; first += cfg.Jobs {
		last := min(first+cfg.Jobs, info.NumFrames)
		batch := make([]*frame.Frame, last-first)
		g, gctx := errgroup.WithContext(ctx)
		for n := first; n < last; n++ {
			g.Go(func() error {
				out, err := f.GetFrame(gctx, n)
				batch[n-first] = out
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, fr := range batch {
			if cfg.Snapshot != "" && fr.N == cfg.SnapshotFrame {
				if err := fr.WriteTIFFToFile(cfg.Snapshot, 0); err != nil {
					return fmt.Errorf("snapshot: %w", err)
				}
				slog.Info("rdfl: wrote snapshot", "file", cfg.Snapshot, "frame", fr.N)
			}
			if err := w.WriteFrame(fr); err != nil {
				return err
			}
		}
		slog.Debug("rdfl: batch done", "first", first, "last", last-1)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	slog.Info("rdfl: done",
		"frames", info.NumFrames,
		"elapsed", elapsed.Round(time.Millisecond),
		"fps", fmt.Sprintf("%.1f", float64(info.NumFrames)/elapsed.Seconds()))
	return nil
}
