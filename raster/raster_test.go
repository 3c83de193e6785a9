// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package raster

import (
	"testing"

	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/shader"
	"github.com/kvlabs/swrast/texture"
)

func edgeArea(p0, p1, p2 linear.V4) float32 {
	return (p1[0]-p0[0])*(p2[1]-p0[1]) - (p1[1]-p0[1])*(p2[0]-p0[0])
}

func basisOf(p0, p1, p2 linear.V4) [3]linear.V4 {
	area := edgeArea(p0, p1, p2)
	inv := 1 / area
	edges := [3][2]linear.V4{{p1, p2}, {p2, p0}, {p0, p1}}
	var basis [3]linear.V4
	for i, e := range edges {
		a, b := e[0], e[1]
		basis[i] = linear.V4{
			-(b[1] - a[1]) * inv,
			(b[0] - a[0]) * inv,
			((b[1]-a[1])*a[0] - (b[0]-a[0])*a[1]) * inv,
			0,
		}
	}
	return basis
}

func fullScreenTriangleBin(fbw, fbh int) bin.FragmentBin {
	p0 := linear.V4{-1, -1, 0.5, 1}
	p1 := linear.V4{float32(fbw) * 3, -1, 0.5, 1}
	p2 := linear.V4{-1, float32(fbh) * 3, 0.5, 1}
	b := bin.FragmentBin{NumVerts: 3}
	b.Pos = [3]linear.V4{p0, p1, p2}
	b.Basis = basisOf(p0, p1, p2)
	return b
}

func solidShader() *shader.Shader {
	return &shader.Shader{
		Fragment: func(_ shader.FragCoord, _ shader.Varyings, _ shader.UniformBuffer, out *[shader.MaxRenderTargets]color.NColor) bool {
			out[0] = color.NColor{1, 0, 0, 1}
			return true
		},
		State: shader.DefaultPipelineState(),
	}
}

func TestProcessFillsFramebuffer(t *testing.T) {
	const w, h = 8, 8
	c, err := texture.New(w, h, 1, color.RGBAU8, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := framebuffer.New(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(color.NColor{0, 0, 0, 1}, 1)

	b := fullScreenTriangleBin(w, h)
	bins := bin.NewArray(1)
	bins.Reset()
	idx, _ := bins.Claim()
	bins.Publish(idx, b)

	sh := solidShader()
	const n = 3
	for t2 := 0; t2 < n; t2++ {
		Process(Args{Bins: bins, Shader: sh, FB: fb, ThreadID: t2, NumThreads: n})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := fb.Color().At(x, y, 0)
			if got[0] != 1 {
				t.Fatalf("pixel (%d,%d) not covered:\nhave %v\nwant {1,0,0,1}", x, y, got)
			}
		}
	}
}

func TestRasterPoint(t *testing.T) {
	const w, h = 4, 4
	c, err := texture.New(w, h, 1, color.RGBAU8, texture.Ordered)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := framebuffer.New(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(color.NColor{0, 0, 0, 1}, 1)

	b := bin.FragmentBin{NumVerts: 1}
	b.Pos[0] = linear.V4{2, 1, 0, 1}
	bins := bin.NewArray(1)
	bins.Reset()
	idx, _ := bins.Claim()
	bins.Publish(idx, b)

	sh := solidShader()
	for t2 := 0; t2 < h; t2++ {
		Process(Args{Bins: bins, Shader: sh, FB: fb, ThreadID: t2, NumThreads: h})
	}

	if got := fb.Color().At(2, 1, 0); got[0] != 1 {
		t.Fatalf("point pixel:\nhave %v\nwant {1,0,0,1}", got)
	}
	if got := fb.Color().At(0, 0, 0); got[0] != 0 {
		t.Fatalf("unrelated pixel modified:\nhave %v\nwant unchanged", got)
	}
}
