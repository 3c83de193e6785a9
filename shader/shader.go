// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package shader defines the shader ABI and pipeline state that
// the vertex processor, rasterizer and fragment pipeline share
// (spec.md §3's Shader, §4.4, §6's Shader ABI).
package shader

import (
	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/linear"
)

// MaxVaryings bounds the number of per-vertex vec4 varying slots
// a shader may produce (spec.md §3: "up to K vec4 slots, K a
// compile-time bound, typically 4").
const MaxVaryings = 4

// MaxRenderTargets bounds the number of color attachments a
// single draw call may write to.
const MaxRenderTargets = 4

// Varyings holds up to MaxVaryings interpolated vec4 attributes
// produced by the vertex shader for a single vertex.
type Varyings [MaxVaryings]linear.V4

// VaryingKind selects whether a varying slot is interpolated
// perspective-correctly or linearly in screen space (spec.md §9's
// open question on barycentric perspective correction, resolved
// as a per-slot pipeline-state switch).
type VaryingKind int

// Varying interpolation kinds.
const (
	Perspective VaryingKind = iota
	NoPerspective
)

// DepthFunc selects the comparison a fragment's depth must pass
// against the stored depth to be kept (spec.md §4.4).
type DepthFunc int

// Depth comparison functions.
const (
	DepthLT DepthFunc = iota
	DepthLE
	DepthGT
	DepthGE
	DepthEQ
	DepthNE
	DepthOff
)

// Keep reports whether a fragment with depth src passes against
// the framebuffer's stored depth dst under f.
func (f DepthFunc) Keep(src, dst float32) bool {
	switch f {
	case DepthLT:
		return src < dst
	case DepthLE:
		return src <= dst
	case DepthGT:
		return src > dst
	case DepthGE:
		return src >= dst
	case DepthEQ:
		return src == dst
	case DepthNE:
		return src != dst
	case DepthOff:
		return true
	default:
		panic("shader: invalid DepthFunc")
	}
}

// CullMode selects which winding of a triangle's window-space
// area is discarded before rasterization.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// PipelineState bundles the fixed-function knobs a shader pair
// is evaluated under (spec.md §3's Shader: "blend mode, depth
// test function, depth mask on/off, number of render targets,
// number of varyings, cull mode").
type PipelineState struct {
	Blend     color.BlendMode
	DepthFunc DepthFunc
	DepthMask bool
	// NumRenderTargets must be 1: a framebuffer.Framebuffer holds
	// exactly one color attachment and the fragment pipeline only
	// ever writes outColors[0]; the renderer rejects any other value
	// rather than silently dropping the rest.
	NumRenderTargets   int
	NumVaryings        int
	CullMode           CullMode
	VaryingKinds       [MaxVaryings]VaryingKind
	PerspectiveCorrect bool
}

// DefaultPipelineState returns the pipeline state a newly created
// shader should start from: one render target, no varyings, no
// depth test, no culling, alpha blending off.
func DefaultPipelineState() PipelineState {
	return PipelineState{
		Blend:              color.BlendOff,
		DepthFunc:          DepthOff,
		DepthMask:          false,
		NumRenderTargets:   1,
		NumVaryings:        0,
		CullMode:           CullNone,
		PerspectiveCorrect: true,
	}
}

// UniformBuffer is an opaque, read-only-during-a-draw byte block
// holding shader constants (spec.md's Glossary).
type UniformBuffer []byte

// FragCoord is the rasterized pixel coordinate and interpolated
// depth passed to a fragment shader.
type FragCoord struct {
	X, Y  uint16
	Depth float32
}

// VertexFunc is the vertex shader ABI of spec.md §6: given a
// vertex index, an instance index and the uniform buffer, it
// returns the vertex's clip-space position and its varyings.
type VertexFunc func(vertexID, instanceID uint32, uniforms UniformBuffer) (clipPos linear.V4, varyings Varyings)

// FragmentFunc is the fragment shader ABI of spec.md §6: given a
// fragment's coordinate, interpolated varyings and the uniform
// buffer, it writes up to MaxRenderTargets output colors and
// reports whether the fragment survives (false discards it).
type FragmentFunc func(coord FragCoord, varyings Varyings, uniforms UniformBuffer, colors *[MaxRenderTargets]color.NColor) bool

// Shader pairs a vertex/fragment function pair with the pipeline
// state and uniform buffer they are evaluated under. The pipeline
// holds a Shader by reference for the lifetime of one draw call;
// ownership of the uniform buffer's contents remains with the
// caller.
type Shader struct {
	Vertex   VertexFunc
	Fragment FragmentFunc
	State    PipelineState
	Uniforms UniformBuffer
}
