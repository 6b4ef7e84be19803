// Copyright 2025 The go-reduceflicker Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that splits the rows
// of a plane into bands and filters them in parallel. A Pool is created
// once per filter and reused for every plane of every frame, so no
// goroutines are spawned on the per-frame path.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, plane := range planes {
//	    pool.Rows(plane.Height, 8, func(y0, y1 int) {
//	        kernel(plane, y0, y1)
//	    })
//	}
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	numWorkers int
	workC      chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan job, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.workC {
		j.fn()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// sequential reports whether work must run on the calling goroutine.
func (p *Pool) sequential() bool {
	return p == nil || p.numWorkers == 1 || p.closed.Load()
}

// ParallelFor calls fn over [0, n) split into one contiguous chunk per
// worker. It blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential() || n == 1 {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- job{fn: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// Rows calls fn over the rows [0, height) in bands of at least minBand
// rows. Workers grab bands from a shared counter, which keeps them busy
// when some bands run slower than others. It blocks until every row is
// done; the bands passed to fn never overlap.
func (p *Pool) Rows(height, minBand int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p.sequential() {
		fn(0, height)
		return
	}

	// About four bands per worker, but never thinner than minBand.
	band := max(minBand, 1, height/(p.numWorkers*4))
	bands := (height + band - 1) / band
	workers := min(p.numWorkers, bands)
	if workers == 1 {
		fn(0, height)
		return
	}

	// One ParallelFor chunk per worker; each chunk pulls bands until none
	// are left.
	var next atomic.Int32
	p.ParallelFor(workers, func(_, _ int) {
		for {
			y0 := (int(next.Add(1)) - 1) * band
			if y0 >= height {
				return
			}
			fn(y0, min(y0+band, height))
		}
	})
}
