// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package pool

import (
	"context"
	"testing"

	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/mesh"
	"github.com/kvlabs/swrast/shader"
	"github.com/kvlabs/swrast/texture"
)

func newFB(t *testing.T, w, h int) *framebuffer.Framebuffer {
	t.Helper()
	c, err := texture.New(w, h, 1, color.RGBAU8, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	d, err := texture.New(w, h, 1, color.Type{Layout: color.R, Elem: color.F32}, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := framebuffer.New(c, d)
	if err != nil {
		t.Fatal(err)
	}
	return fb
}

func TestRunShaderProcessorsDrawsTriangle(t *testing.T) {
	const w, h = 16, 16
	fb := newFB(t, w, h)
	fb.Clear(color.NColor{0, 0, 0, 1}, 1)

	verts := [3]linear.V4{
		{-0.5, -0.5, 0.4, 1},
		{0.5, -0.5, 0.4, 1},
		{0, 0.5, 0.4, 1},
	}
	sh := &shader.Shader{
		Vertex: func(vertexID, instanceID uint32, uniforms shader.UniformBuffer) (linear.V4, shader.Varyings) {
			return verts[vertexID], shader.Varyings{}
		},
		Fragment: func(_ shader.FragCoord, _ shader.Varyings, _ shader.UniformBuffer, out *[shader.MaxRenderTargets]color.NColor) bool {
			out[0] = color.NColor{1, 0, 0, 1}
			return true
		},
		State: shader.DefaultPipelineState(),
	}
	sh.State.DepthFunc = shader.DepthLT
	sh.State.DepthMask = true

	m, err := mesh.New(mesh.Triangles, nil, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	p := New(4, 256)
	if err := p.RunShaderProcessors(m, 0, sh, fb); err != nil {
		t.Fatal(err)
	}

	center := fb.Color().At(w/2, h/2, 0)
	if center[0] != 1 {
		t.Fatalf("center pixel after draw:\nhave %v\nwant {1,0,0,1}", center)
	}
	corner := fb.Color().At(0, 0, 0)
	if corner[0] != 0 {
		t.Fatalf("corner pixel (outside triangle) after draw:\nhave %v\nwant unchanged {0,0,0,1}", corner)
	}
}

// TestRunShaderProcessorsOverflowResumeDoesNotDoubleBlend pins the
// bin-overflow flush/resume contract end to end: a mesh with more
// primitives than the bin array can hold in one pass must still
// rasterize each primitive exactly once, even though
// RunShaderProcessors has to flush and resume several times. A
// broken resume that restarts each pass from scratch would
// re-rasterize already-published primitives, and with additive
// blending (no depth test) that shows up as an over-summed color.
func TestRunShaderProcessorsOverflowResumeDoesNotDoubleBlend(t *testing.T) {
	const w, h = 16, 16
	// A float color attachment keeps the additive sum exact; an 8-bit
	// one rounds after every blend (8 adds of 0.1 store 207/255).
	c, err := texture.New(w, h, 1, color.RGBAF32, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	d, err := texture.New(w, h, 1, color.Type{Layout: color.R, Elem: color.F32}, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := framebuffer.New(c, d)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(color.NColor{0, 0, 0, 1}, 1)

	verts := [3]linear.V4{
		{-0.9, -0.9, 0, 1},
		{0.9, -0.9, 0, 1},
		{0, 0.9, 0, 1},
	}
	const nPrims = 8
	const inc = float32(0.1)
	sh := &shader.Shader{
		Vertex: func(vertexID, instanceID uint32, uniforms shader.UniformBuffer) (linear.V4, shader.Varyings) {
			return verts[vertexID%3], shader.Varyings{}
		},
		Fragment: func(_ shader.FragCoord, _ shader.Varyings, _ shader.UniformBuffer, out *[shader.MaxRenderTargets]color.NColor) bool {
			out[0] = color.NColor{inc, 0, 0, 1}
			return true
		},
		State: shader.DefaultPipelineState(),
	}
	sh.State.Blend = color.BlendAdditive

	m, err := mesh.New(mesh.Triangles, nil, nPrims*3, nPrims)
	if err != nil {
		t.Fatal(err)
	}

	// A single-threaded pool with room for only 2 bins forces
	// RunShaderProcessors to flush and resume nPrims/2-1 times
	// (overflows at primitives 2, 4 and 6).
	p := New(1, 2)
	if err := p.RunShaderProcessors(m, 0, sh, fb); err != nil {
		t.Fatal(err)
	}

	center := fb.Color().At(w/2, h/2, 0)
	want := inc * nPrims
	if center[0] < want-1e-4 || center[0] > want+1e-4 {
		t.Fatalf("center pixel after %d overlapping additive draws:\nhave %v\nwant channel 0 = %v", nPrims, center, want)
	}
}

func TestRunBlitProcessors(t *testing.T) {
	src, err := texture.New(4, 4, 1, color.RGBAU8, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	src.Clear(color.NColor{0, 1, 0, 1})
	dst, err := texture.New(8, 8, 1, color.RGBAU8, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}

	p := New(2, 16)
	p.RunBlitProcessors(dst, src, texture.Rect{X0: 0, Y0: 0, X1: 8, Y1: 8}, texture.Rect{X0: 0, Y0: 0, X1: 4, Y1: 4})

	got := dst.At(5, 5, 0)
	if got[1] != 1 {
		t.Fatalf("blitted pixel:\nhave %v\nwant {0,1,0,1}", got)
	}
}

func TestExecute(t *testing.T) {
	p := New(1, 1)
	ran := false
	if err := p.Execute(context.Background(), func() { ran = true }); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("Execute did not run the function")
	}
}

func TestExecuteCancellation(t *testing.T) {
	p := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	started := make(chan struct{})
	err := p.Execute(ctx, func() {
		close(started)
	})
	<-started
	if err == nil {
		t.Fatal("Execute with a cancelled context: have nil error, want context.Canceled")
	}
}
