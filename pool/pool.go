// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package pool implements the processor pool: the fixed set of
// worker goroutines that run the vertex and rasterizer phases of
// a draw call, and the blit phase of a presentation flip (spec.md
// §4.6, §5).
package pool

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/mesh"
	"github.com/kvlabs/swrast/raster"
	"github.com/kvlabs/swrast/shader"
	"github.com/kvlabs/swrast/texture"
	"github.com/kvlabs/swrast/vproc"
)

const poolPrefix = "pool: "

// ErrOverflow is returned when the bin array overflows more times
// than a single draw call's flush budget allows, which spec.md §7
// classifies as an InvalidOperation indicating pool corruption.
var ErrOverflow = errors.New(poolPrefix + "bin array overflow could not be drained")

// maxFlushesPerDraw bounds the number of overflow-triggered
// flush/resume cycles a single draw call tolerates before it is
// treated as corrupted state rather than legitimate back-pressure.
const maxFlushesPerDraw = 64

// ProcessorPool owns NumThreads() worker goroutines (spec.md
// §4.6: "Owns N worker threads") and the bin array they share
// during a draw call. It is the only component allowed to mutate
// the bin array's counters.
type ProcessorPool struct {
	n    int
	bins *bin.Array
}

// New creates a pool with the given thread count and bin array
// capacity. The bin array is allocated once here and shared by all
// workers; Resize changes only the worker count and does not
// reallocate it.
func New(numThreads, binCapacity int) *ProcessorPool {
	if numThreads < 1 {
		numThreads = 1
	}
	return &ProcessorPool{n: numThreads, bins: bin.NewArray(binCapacity)}
}

// NumThreads returns the pool's worker count.
func (p *ProcessorPool) NumThreads() int { return p.n }

// Resize changes the worker count, per spec.md §4.6's
// `num_threads(n)`.
func (p *ProcessorPool) Resize(numThreads int) {
	if numThreads < 1 {
		numThreads = 1
	}
	p.n = numThreads
}

// RunShaderProcessors launches the vertex phase over m, waits,
// then launches the rasterizer phase and waits, per spec.md
// §4.6's `run_shader_processors`. instanceID identifies which
// instance of m is being drawn; callers drawing N instances issue
// N calls.
func (p *ProcessorPool) RunShaderProcessors(m *mesh.Mesh, instanceID uint32, sh *shader.Shader, fb *framebuffer.Framebuffer) error {
	// resumeFrom holds, per worker, the primitive index its next
	// pass should start at. It begins at each worker's ThreadID and
	// is advanced from vproc.Process's returned resumeFrom after
	// every flush so a retried pass never regenerates and
	// re-rasterizes a primitive a prior pass already published.
	resumeFrom := make([]int, p.n)
	for t := range resumeFrom {
		resumeFrom[t] = t
	}
	for flush := 0; ; flush++ {
		overflowed, err := p.runVertexPhase(m, instanceID, sh, fb, resumeFrom)
		if err != nil {
			return err
		}
		p.runRasterPhase(sh, fb, m.Wireframe())
		if !overflowed {
			return nil
		}
		if flush >= maxFlushesPerDraw {
			return fmt.Errorf("%w: instance %d", ErrOverflow, instanceID)
		}
	}
}

// runVertexPhase forks p.n workers over the vertex processor,
// joins, and reports whether any worker hit a bin-array overflow
// (in which case the caller must flush and resume). resumeFrom is
// indexed by ThreadID and updated in place with each worker's next
// StartPrim, whether or not that worker overflowed this pass.
func (p *ProcessorPool) runVertexPhase(m *mesh.Mesh, instanceID uint32, sh *shader.Shader, fb *framebuffer.Framebuffer, resumeFrom []int) (overflowed bool, err error) {
	p.bins.Reset()
	var g errgroup.Group
	overflows := make([]bool, p.n)
	for t := 0; t < p.n; t++ {
		t := t
		g.Go(func() error {
			next, of := vproc.Process(vproc.Args{
				Mesh: m, InstanceID: instanceID, Shader: sh, Bins: p.bins,
				FBWidth: fb.Width(), FBHeight: fb.Height(),
				ThreadID: t, NumThreads: p.n, StartPrim: resumeFrom[t],
			})
			resumeFrom[t] = next
			overflows[t] = of
			return nil
		})
	}
	if gerr := g.Wait(); gerr != nil {
		return false, gerr
	}
	for _, of := range overflows {
		if of {
			return true, nil
		}
	}
	return false, nil
}

// runRasterPhase forks p.n workers over the rasterizer and joins.
func (p *ProcessorPool) runRasterPhase(sh *shader.Shader, fb *framebuffer.Framebuffer, wireframe bool) {
	var g errgroup.Group
	for t := 0; t < p.n; t++ {
		t := t
		g.Go(func() error {
			raster.Process(raster.Args{
				Bins: p.bins, Shader: sh, FB: fb,
				ThreadID: t, NumThreads: p.n, Wireframe: wireframe,
			})
			return nil
		})
	}
	// The workers above never return an error; Wait only joins.
	_ = g.Wait()
}

// RunBlitProcessors launches the blit phase that copies srcRect
// of src into dstRect of dst, partitioned by destination row
// (spec.md §4.6's `run_blit_processors`, §4.5's "Thread t
// processes destination rows where row mod N == t").
func (p *ProcessorPool) RunBlitProcessors(dst, src *texture.Texture, dstRect, srcRect texture.Rect) {
	const fixShift = 16
	dw, dh := dstRect.X1-dstRect.X0, dstRect.Y1-dstRect.Y0
	if dw <= 0 || dh <= 0 {
		return
	}
	xStep := (srcRect.X1 - srcRect.X0) << fixShift / dw
	yStep := (srcRect.Y1 - srcRect.Y0) << fixShift / dh

	var g errgroup.Group
	for t := 0; t < p.n; t++ {
		t := t
		g.Go(func() error {
			for row := t; row < dh; row += p.n {
				texture.BlitRows(dst, src, dstRect, srcRect, row, row+1, xStep, yStep)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Execute runs fn on a background goroutine and blocks until it
// returns, the primitive fork/join control of spec.md §4.6's
// `execute()`. It never abandons fn: it returns ctx.Err() once fn
// has returned, which is nil unless ctx was done by then. The
// draw/blit calls above are not themselves context-aware (spec.md
// §5: "A draw call is not cancellable once issued").
func (p *ProcessorPool) Execute(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
		return ctx.Err()
	case <-ctx.Done():
		<-done
		return ctx.Err()
	}
}
