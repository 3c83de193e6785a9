// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package fragment

import (
	"testing"

	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/linear"
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

func solidShader(c color.NColor, blend color.BlendMode, depthFn shader.DepthFunc) *shader.Shader {
	s := shader.DefaultPipelineState()
	s.Blend = blend
	s.DepthFunc = depthFn
	s.DepthMask = true
	return &shader.Shader{
		Fragment: func(_ shader.FragCoord, _ shader.Varyings, _ shader.UniformBuffer, out *[shader.MaxRenderTargets]color.NColor) bool {
			out[0] = c
			return true
		},
		State: s,
	}
}

func TestShadeDepthCulling(t *testing.T) {
	fb := newFB(t, 4, 4)
	fb.Clear(color.NColor{}, 1)

	b := &bin.FragmentBin{NumVerts: 3}
	b.Pos = [3]linear.V4{{0, 0, 0, 1}, {4, 0, 0, 1}, {0, 4, 0, 1}}

	shA := solidShader(color.NColor{1, 0, 0, 1}, color.BlendOff, shader.DepthLT)
	Shade(shA, fb, Fragment{X: 1, Y: 1, Depth: 0.5, Bary: [3]float32{0.34, 0.33, 0.33}, Bin: b})

	shB := solidShader(color.NColor{0, 1, 0, 1}, color.BlendOff, shader.DepthLT)
	Shade(shB, fb, Fragment{X: 1, Y: 1, Depth: 0.8, Bary: [3]float32{0.34, 0.33, 0.33}, Bin: b})

	got := fb.Color().At(1, 1, 0)
	if got[0] != 1 || got[1] != 0 {
		t.Fatalf("Shade depth culling:\nhave %v\nwant A's color to survive", got)
	}
	if gd := fb.Depth().At(1, 1, 0); gd[0] != 0.5 {
		t.Fatalf("Depth after culling:\nhave %v\nwant 0.5", gd[0])
	}
}

func TestShadeAlphaBlend(t *testing.T) {
	fb := newFB(t, 2, 2)
	fb.Clear(color.NColor{0, 0, 0, 1}, 1)

	b := &bin.FragmentBin{NumVerts: 3}
	b.Pos = [3]linear.V4{{0, 0, 0, 1}, {2, 0, 0, 1}, {0, 2, 0, 1}}

	sh := solidShader(color.NColor{1, 0, 0, 0.5}, color.BlendAlpha, shader.DepthOff)
	Shade(sh, fb, Fragment{X: 0, Y: 0, Depth: 0, Bary: [3]float32{1, 0, 0}, Bin: b})

	got := fb.Color().At(0, 0, 0)
	if got[0] < 0.45 || got[0] > 0.55 {
		t.Fatalf("Shade alpha blend:\nhave %v\nwant channel 0 ≈ 0.5", got)
	}
}

func TestShadeDiscard(t *testing.T) {
	fb := newFB(t, 2, 2)
	fb.Clear(color.NColor{0, 1, 0, 1}, 1)

	b := &bin.FragmentBin{NumVerts: 3}
	s := shader.DefaultPipelineState()
	sh := &shader.Shader{
		Fragment: func(shader.FragCoord, shader.Varyings, shader.UniformBuffer, *[shader.MaxRenderTargets]color.NColor) bool {
			return false
		},
		State: s,
	}
	Shade(sh, fb, Fragment{X: 0, Y: 0, Bin: b})
	got := fb.Color().At(0, 0, 0)
	if got[1] != 1 {
		t.Fatalf("Shade with discarding shader modified the framebuffer:\nhave %v\nwant unchanged", got)
	}
}
