// Copyright 2023 Gustavo C. Viegas. All rights reserved.

//go:build amd64

package raster

import "golang.org/x/sys/cpu"

// avx2Backend names the capability-gated fast path spec.md §9
// reserves for "SIMD intrinsics... behind a capability-gated
// module". Go has no portable way to emit AVX2 intrinsics outside
// hand-written assembly, so Process's scanline stepping and
// barycentric test always run the scalar kernel in raster.go; this
// backend exists so that kernel (or a future one backed by a
// .s file) has a capability check to gate on, matching the
// teacher's driver-selection pattern of probing hardware before
// committing to a code path.
type avx2Backend struct{}

func (avx2Backend) Name() string    { return "avx2" }
func (avx2Backend) Available() bool { return cpu.X86.HasAVX2 }

func init() {
	RegisterBackend(avx2Backend{})
}
