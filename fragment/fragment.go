// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package fragment implements the depth-test, shading and blend
// stage that consumes rasterized fragments and writes the
// framebuffer (spec.md §4.4).
package fragment

import (
	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/shader"
)

// Fragment is one rasterized sample awaiting the depth test and
// shading (spec.md §3's "FragCoord queue" entry).
type Fragment struct {
	X, Y  uint16
	Depth float32
	Bary  [3]float32
	Bin   *bin.FragmentBin
}

// Shade runs the full per-fragment pipeline: depth test,
// perspective-corrected varying interpolation, the user fragment
// shader, blend, and writeback (spec.md §4.4). Only outColors[0] is
// ever written back, regardless of state.NumRenderTargets: fb has a
// single color attachment, so the renderer validates
// NumRenderTargets == 1 before a draw reaches here.
func Shade(sh *shader.Shader, fb *framebuffer.Framebuffer, f Fragment) {
	state := &sh.State

	if state.DepthFunc != shader.DepthOff {
		if fb.Depth() == nil {
			return
		}
		dst := fb.Depth().At(int(f.X), int(f.Y), 0)
		if !state.DepthFunc.Keep(f.Depth, dst[0]) {
			return
		}
	}

	varyings := interpolate(state, f)

	coord := shader.FragCoord{X: f.X, Y: f.Y, Depth: f.Depth}
	var outColors [shader.MaxRenderTargets]color.NColor
	if !sh.Fragment(coord, varyings, sh.Uniforms, &outColors) {
		return
	}

	dstColor := fb.Color().At(int(f.X), int(f.Y), 0)
	blended := color.Apply(state.Blend, outColors[0], dstColor)
	fb.Color().Set(int(f.X), int(f.Y), 0, blended)

	if state.DepthMask && fb.Depth() != nil {
		fb.Depth().Set(int(f.X), int(f.Y), 0, color.NColor{f.Depth})
	}
}

// interpolate computes the fragment's varyings from the bin's
// per-vertex varyings and the fragment's barycentric weights,
// applying perspective correction per spec.md §9's open question
// when state.PerspectiveCorrect is set: the bin stores 1/w in
// each vertex position's w component, so the corrected weight for
// vertex i is bary[i]*iw[i] normalized by their sum. Slots whose
// state.VaryingKinds entry is NoPerspective use the uncorrected
// screen-space weights instead.
func interpolate(state *shader.PipelineState, f Fragment) shader.Varyings {
	w := [3]float32{1, 1, 1}
	if state.PerspectiveCorrect && f.Bin.NumVerts == 3 {
		w[0], w[1], w[2] = f.Bin.Pos[0][3], f.Bin.Pos[1][3], f.Bin.Pos[2][3]
	}
	weighted := [3]float32{f.Bary[0] * w[0], f.Bary[1] * w[1], f.Bary[2] * w[2]}
	screen := f.Bary
	sum := weighted[0] + weighted[1] + weighted[2]
	ssum := screen[0] + screen[1] + screen[2]
	for i := range weighted {
		if sum != 0 {
			weighted[i] /= sum
		}
		if ssum != 0 {
			screen[i] /= ssum
		}
	}

	var out shader.Varyings
	for k := 0; k < state.NumVaryings && k < shader.MaxVaryings; k++ {
		wts := &weighted
		if state.VaryingKinds[k] == shader.NoPerspective {
			wts = &screen
		}
		for c := 0; c < 4; c++ {
			var sum float32
			for v := 0; v < f.Bin.NumVerts; v++ {
				sum += wts[v] * f.Bin.Varyings[v][k][c]
			}
			out[k][c] = sum
		}
	}
	return out
}
