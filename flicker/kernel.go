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

import "github.com/ajroetker/go-reduceflicker/hwy"

// PlaneArgs is one plane of the current frame together with the same plane
// of every frame in its window. Slots of Prev and Next beyond the window's
// taps are nil. Strides are in bytes; Width is in samples.
type PlaneArgs struct {
	Dst        []byte
	DstStride  int
	Cur        []byte
	CurStride  int
	Prev       [3][]byte
	PrevStride [3]int
	Next       [3][]byte
	NextStride [3]int
	Width      int
	Height     int
}

// Kernel filters rows [y0, y1) of a plane. Kernels hold no state, so
// disjoint row ranges of one plane may run concurrently.
type Kernel func(a *PlaneArgs, y0, y1 int)

// taps holds one row of every plane in PlaneArgs, viewed as samples.
type taps[T hwy.Sample] struct {
	dst  []T
	cur  []T
	prev [3][]T
	next [3][]T

	// far are the taps the tolerance is computed from, in the order
	// prev[1], next[1], prev[2], next[2], truncated by strength.
	far [4][]T
	nfar int
}

// farTaps is the number of tolerance taps for each strength.
var farTaps = [4]int{1: 1, 2: 2, 3: 4}

func rowOf[T hwy.Sample](buf []byte, stride, y, width int) []T {
	if buf == nil {
		return nil
	}
	off := y * stride
	return hwy.SamplesOf[T](buf[off : off+width*hwy.SizeOf[T]()])
}

func (r *taps[T]) load(a *PlaneArgs, y int) {
	r.dst = rowOf[T](a.Dst, a.DstStride, y, a.Width)
	r.cur = rowOf[T](a.Cur, a.CurStride, y, a.Width)
	for i := range 3 {
		r.prev[i] = rowOf[T](a.Prev[i], a.PrevStride[i], y, a.Width)
		r.next[i] = rowOf[T](a.Next[i], a.NextStride[i], y, a.Width)
	}
	r.far = [4][]T{r.prev[1], r.next[1], r.prev[2], r.next[2]}
}

// clamp pulls cur toward the neighbour average avg, limited to the band
// the near taps p and n open up after shrinking it by the tolerances.
//
//	avg = Avg(SubSat(Avg(p, n), bias), cur)
//	ul  = Max(SubSat(Min(p, n), up), cur)
//	ll  = Min(AddSat(Max(p, n), down), cur)
//	out = Min(Max(avg, ll), ul)
func clamp[T hwy.Sample, V any, O hwy.Ops[T, V]](o O, bias, cur, p, n, up, down V) V {
	avg := o.Avg(o.SubSat(o.Avg(p, n), bias), cur)
	ul := o.Max(o.SubSat(o.Min(p, n), up), cur)
	ll := o.Min(o.AddSat(o.Max(p, n), down), cur)
	return o.Min(o.Max(avg, ll), ul)
}

// basicRow filters samples [x0, x1) with one symmetric tolerance: the
// smallest distance between cur and any far tap. x1-x0 must be a multiple
// of o.Lanes().
func basicRow[T hwy.Sample, V any, O hwy.Ops[T, V]](o O, r *taps[T], x0, x1 int) {
	bias := o.Set(o.Bias())
	far := r.far[:r.nfar]
	for x := x0; x < x1; x += o.Lanes() {
		cur := o.Load(r.cur[x:])
		d := o.AbsDiff(cur, o.Load(far[0][x:]))
		for _, tap := range far[1:] {
			d = o.Min(d, o.AbsDiff(cur, o.Load(tap[x:])))
		}
		p, n := o.Load(r.prev[0][x:]), o.Load(r.next[0][x:])
		o.Stream(r.dst[x:], clamp(o, bias, cur, p, n, d, d))
	}
}

// aggressiveRow filters samples [x0, x1) with one tolerance per direction.
// A far tap at or above cur tightens up and zeroes down; a tap below cur
// tightens down and zeroes up. Tolerances only ever shrink.
func aggressiveRow[T hwy.Sample, V any, O hwy.Ops[T, V]](o O, r *taps[T], x0, x1 int) {
	bias := o.Set(o.Bias())
	zero := o.Zero()
	far := r.far[:r.nfar]
	for x := x0; x < x1; x += o.Lanes() {
		cur := o.Load(r.cur[x:])
		tap := o.Load(far[0][x:])
		above := o.GreaterEqual(tap, cur)
		diff := o.AbsDiff(cur, tap)
		up := o.IfThenElse(above, diff, zero)
		down := o.IfThenElse(above, zero, diff)
		for _, t := range far[1:] {
			tap = o.Load(t[x:])
			above = o.GreaterEqual(tap, cur)
			diff = o.AbsDiff(cur, tap)
			up = o.IfThenElse(above, o.Min(diff, up), zero)
			down = o.IfThenElse(above, zero, o.Min(diff, down))
		}
		p, n := o.Load(r.prev[0][x:]), o.Load(r.next[0][x:])
		o.Stream(r.dst[x:], clamp(o, bias, cur, p, n, up, down))
	}
}

// scalarOps returns the scalar backend for T, used for the samples past
// the last whole vector of a row.
func scalarOps[T hwy.Sample]() hwy.Ops[T, T] {
	var zero T
	var o any
	switch any(zero).(type) {
	case uint8:
		o = hwy.ScalarU8{}
	case uint16:
		o = hwy.ScalarU16{}
	default:
		o = hwy.ScalarF32{}
	}
	return o.(hwy.Ops[T, T])
}

// newKernel instantiates the filter for backend O. Whole vectors are
// processed with O and the rest of each row with the scalar backend; both
// produce identical samples.
func newKernel[T hwy.Sample, V any, O hwy.Ops[T, V]](strength int, aggressive bool) Kernel {
	var o O
	s := scalarOps[T]()
	nfar := farTaps[strength]

	row, tail := basicRow[T, V, O], basicRow[T, T, hwy.Ops[T, T]]
	if aggressive {
		row, tail = aggressiveRow[T, V, O], aggressiveRow[T, T, hwy.Ops[T, T]]
	}

	return func(a *PlaneArgs, y0, y1 int) {
		full := a.Width - a.Width%o.Lanes()
		r := taps[T]{nfar: nfar}
		for y := y0; y < y1; y++ {
			r.load(a, y)
			row(o, &r, 0, full)
			if full < a.Width {
				tail(s, &r, full, a.Width)
			}
		}
	}
}
