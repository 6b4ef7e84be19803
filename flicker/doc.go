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

// Package flicker implements ReduceFlicker, a temporal filter that removes
// frame-to-frame flicker from video.
//
// For each sample the filter looks at the same position in up to three
// frames before and after the current one. The current sample is pulled
// toward the average of its immediate neighbours, but only as far as the
// more distant frames allow: where those disagree with the current frame
// (real motion), the sample is left alone.
//
// Two variants exist. The basic variant uses one symmetric tolerance. The
// aggressive variant keeps separate tolerances for brightening and
// darkening, and zeroes one side whenever a distant frame falls on the
// other side of the current sample.
//
// Kernels are written once against hwy.Ops and instantiated for every
// (tier, strength, variant, precision) combination when the package is
// initialised. A Filter picks one at construction; nothing on the per-frame
// path branches on the configuration.
//
// Basic usage:
//
//	f, err := flicker.New(src, flicker.DefaultConfig(), hwy.DetectCapabilities())
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	out, err := f.GetFrame(ctx, 42)
package flicker
