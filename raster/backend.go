// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"log"
	"sync"
)

// Backend names a rasterization kernel and reports whether it can
// run on the current hardware, so a capability-gated variant (e.g.
// an AVX2 kernel) can be registered beside the scalar one. The
// interface carries no kernel methods: Process always runs the
// scalar code in this package.
type Backend interface {
	// Name identifies the backend, e.g. "scalar" or "avx2".
	Name() string

	// Available reports whether the backend can run on the current
	// hardware. It must not have side effects.
	Available() bool
}

// scalarBackend is the reference kernel described normatively by
// the triangle/line/point rasterization routines in this package;
// it is always available and always registered first.
type scalarBackend struct{}

func (scalarBackend) Name() string   { return "scalar" }
func (scalarBackend) Available() bool { return true }

var (
	mu       sync.Mutex
	backends = []Backend{scalarBackend{}}
)

// RegisterBackend registers b as a candidate rasterization backend.
// Backend implementations gated on CPU features call this from an
// init function in a build-tagged file; if no such file is linked
// in, Backends returns only the scalar backend. If a backend with
// the same name is already registered, it is replaced by b.
func RegisterBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	for i := range backends {
		if backends[i].Name() == b.Name() {
			backends[i] = b
			log.Printf("[!] rasterizer backend '%s' replaced", b.Name())
			return
		}
	}
	backends = append(backends, b)
	log.Printf("rasterizer backend '%s' registered", b.Name())
}

// Backends returns the registered backends, in registration order
// (the scalar backend is always first).
func Backends() []Backend {
	mu.Lock()
	defer mu.Unlock()
	bs := make([]Backend, len(backends))
	copy(bs, backends)
	return bs
}

// SelectBackend returns the last-registered available backend, which
// is the most capable one a build-tagged init has contributed (an
// AVX2 kernel registers after the scalar default and is preferred
// when Available reports true). Process/rasterTriangle itself is
// always the scalar Go implementation, whichever backend is
// selected. On amd64 hosts with AVX2, simd_amd64.go's "avx2"
// backend is registered and available, so SelectBackend returns it;
// elsewhere it returns the scalar backend.
func SelectBackend() Backend {
	mu.Lock()
	defer mu.Unlock()
	selected := backends[0]
	for _, b := range backends {
		if b.Available() {
			selected = b
		}
	}
	return selected
}
