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

// Package stats measures temporal flicker in a clip: how much the average
// brightness of plane 0 jumps from one frame to the next.
package stats

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy"
)

// Source is the part of flicker.Source Analyze needs.
type Source interface {
	Info() frame.VideoInfo
	Fetch(ctx context.Context, n int) (*frame.Frame, error)
	Release(f *frame.Frame)
}

// Report summarises a clip.
type Report struct {
	Frames int

	// Means holds the mean sample value of plane 0 for every frame,
	// normalised to [0, 1] for integer formats.
	Means []float64

	// MeanDelta is the mean absolute difference between the means of
	// consecutive frames; DeltaStdDev is its standard deviation.
	MeanDelta   float64
	DeltaStdDev float64

	// MaxDelta is the largest jump and MaxDeltaAt the frame it leads into.
	MaxDelta   float64
	MaxDeltaAt int
}

// Analyze reads every frame of src in order.
func Analyze(ctx context.Context, src Source) (Report, error) {
	info := src.Info()
	r := Report{Frames: info.NumFrames, Means: make([]float64, 0, info.NumFrames)}
	for n := range info.NumFrames {
		f, err := src.Fetch(ctx, n)
		if err != nil {
			return Report{}, fmt.Errorf("frame %d: %w", n, err)
		}
		m, err := PlaneMean(f, 0)
		src.Release(f)
		if err != nil {
			return Report{}, err
		}
		r.Means = append(r.Means, m)
	}
	if len(r.Means) < 2 {
		return r, nil
	}

	deltas := make([]float64, len(r.Means)-1)
	for i := range deltas {
		deltas[i] = math.Abs(r.Means[i+1] - r.Means[i])
		if deltas[i] > r.MaxDelta {
			r.MaxDelta, r.MaxDeltaAt = deltas[i], i+1
		}
	}
	r.MeanDelta, r.DeltaStdDev = stat.MeanStdDev(deltas, nil)
	if len(deltas) == 1 {
		r.DeltaStdDev = 0
	}
	return r, nil
}

// PlaneMean returns the mean of plane p, normalised to [0, 1] for integer
// samples.
func PlaneMean(f *frame.Frame, p int) (float64, error) {
	pl := &f.Planes[p]
	if pl.Width == 0 || pl.Height == 0 {
		return 0, nil
	}
	rowMeans := make([]float64, pl.Height)
	row := make([]float64, pl.Width)
	scale := 1.0
	switch {
	case f.Format.SampleType == frame.Float:
		for y := range pl.Height {
			rowMeans[y] = rowMean(row, hwy.SamplesOf[float32](pl.Row(y)))
		}
	case f.Format.BytesPerSample() == 2:
		scale = float64(int(1)<<f.Format.BitsPerSample - 1)
		for y := range pl.Height {
			rowMeans[y] = rowMean(row, hwy.SamplesOf[uint16](pl.Row(y)))
		}
	case f.Format.BytesPerSample() == 1:
		scale = float64(int(1)<<f.Format.BitsPerSample - 1)
		for y := range pl.Height {
			rowMeans[y] = rowMean(row, pl.Row(y))
		}
	default:
		return 0, fmt.Errorf("stats: unsupported format %s", f.Format)
	}
	// Rows have equal length, so the mean of row means is the plane mean.
	return stat.Mean(rowMeans, nil) / scale, nil
}

// rowMean widens s into buf and returns its mean.
func rowMean[T hwy.Sample](buf []float64, s []T) float64 {
	for i, v := range s {
		buf[i] = float64(v)
	}
	return floats.Sum(buf) / float64(len(buf))
}
