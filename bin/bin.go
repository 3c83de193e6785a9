// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bin implements the shared fragment bin array that the
// vertex processor publishes clipped primitives into and the
// rasterizer consumes from (spec.md §3's FragmentBin and Bin
// counters, §4.2 step 7).
package bin

import (
	"sync/atomic"

	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/shader"
)

// FragmentBin is the rasterization record for one clipped
// primitive: three screen-space vertex positions (window-space
// xyz plus the reciprocal w used for perspective correction),
// three barycentric basis vectors, and per-vertex varyings.
//
// A bin with NumVerts == 1 is a point; NumVerts == 2 is a line
// (in which case Basis is unused); NumVerts == 3 is a triangle.
type FragmentBin struct {
	Pos      [3]linear.V4
	Basis    [3]linear.V4
	Varyings [3]shader.Varyings
	NumVerts int
}

// Array is a fixed-capacity, append-only slab of FragmentBins
// shared by every vertex-processor worker during the vertex
// phase of a draw call. Claiming a slot is a single atomic
// fetch-add (spec.md §4.2 step 7: "relaxed ordering is sufficient
// because the producer phase is fork/join"); readiness is
// published with a release store and observed with an acquire
// load at the pool's phase barrier, which is the only place a
// consumer reads binsUsed/binsReady.
type Array struct {
	bins []FragmentBin

	binsUsed       atomic.Int64
	fragProcessors atomic.Int64
	binsReady      atomic.Int64
}

// NewArray creates a bin array with room for capacity bins.
func NewArray(capacity int) *Array {
	return &Array{bins: make([]FragmentBin, capacity)}
}

// Cap returns the array's fixed capacity.
func (a *Array) Cap() int { return len(a.bins) }

// Reset clears the counters for a new draw call. It must only be
// called while no worker holds a claimed-but-unpublished slot,
// i.e. at a pool barrier.
func (a *Array) Reset() {
	a.binsUsed.Store(0)
	a.fragProcessors.Store(0)
	a.binsReady.Store(-1)
}

// Claim reserves the next free slot and reports its index. ok is
// false when the array is full; the caller must force a flush
// and retry (spec.md §4.2's "Failure" clause: bin overflow is the
// sole back-pressure mechanism).
func (a *Array) Claim() (idx int, ok bool) {
	n := a.binsUsed.Add(1) - 1
	if int(n) >= len(a.bins) {
		a.binsUsed.Add(-1)
		return 0, false
	}
	return int(n), true
}

// Publish writes b into the slot previously returned by Claim and
// signals that it is ready for the rasterizer phase to consume.
func (a *Array) Publish(idx int, b FragmentBin) {
	a.bins[idx] = b
	a.binsReady.Add(1)
}

// Used returns the number of bins claimed so far in the current
// draw call.
func (a *Array) Used() int {
	n := a.binsUsed.Load()
	if int(n) > len(a.bins) {
		return len(a.bins)
	}
	return int(n)
}

// Ready returns the number of bins published so far. binsReady
// holds -1 while the array is idle after Reset and grows by one per
// Publish, so the count is one more than the stored value.
func (a *Array) Ready() int { return int(a.binsReady.Load()) + 1 }

// Bins returns the slice of bins claimed during the current draw
// call. It is only safe to call at the rasterizer-phase barrier,
// after every vertex worker has returned from the vertex phase.
func (a *Array) Bins() []FragmentBin { return a.bins[:a.Used()] }

// Full reports whether the array has no room left to claim a bin.
func (a *Array) Full() bool { return a.Used() >= len(a.bins) }
