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
	"github.com/ajroetker/go-reduceflicker/frame"
	"github.com/ajroetker/go-reduceflicker/hwy/contrib/workerpool"
)

// minBand is the thinnest row band handed to one worker.
const minBand = 16

// driver runs the selected kernel over whole planes and copies the planes
// that are not filtered.
type driver struct {
	kernel  Kernel
	process [3]bool
	pool    *workerpool.Pool
}

func newDriver(k Kernel, process [3]bool, workers int) *driver {
	d := &driver{kernel: k, process: process}
	if workers > 1 {
		d.pool = workerpool.New(workers)
	}
	return d
}

// plane filters or copies plane p of cur into dst.
func (d *driver) plane(dst, cur *frame.Frame, p int, w Window, frameAt func(int) *frame.Frame) {
	dp, cp := &dst.Planes[p], &cur.Planes[p]
	if !d.process[p] {
		frame.CopyPlane(dp, cp)
		return
	}

	a := PlaneArgs{
		Dst:       dp.Data,
		DstStride: dp.Stride,
		Cur:       cp.Data,
		CurStride: cp.Stride,
		Width:     cp.Width,
		Height:    cp.Height,
	}
	for i := range w.PrevTaps {
		tp := &frameAt(w.Prev[i]).Planes[p]
		a.Prev[i], a.PrevStride[i] = tp.Data, tp.Stride
	}
	for i := range w.NextTaps {
		tp := &frameAt(w.Next[i]).Planes[p]
		a.Next[i], a.NextStride[i] = tp.Data, tp.Stride
	}

	d.pool.Rows(a.Height, minBand, func(y0, y1 int) {
		d.kernel(&a, y0, y1)
	})
}

func (d *driver) close() {
	d.pool.Close()
}
