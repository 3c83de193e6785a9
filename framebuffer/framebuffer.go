// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package framebuffer implements the color and depth attachment
// pair that the fragment pipeline writes into (spec.md §3's
// Framebuffer, §4.4's fragment pipeline writeback target).
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/texture"
)

const fbPrefix = "framebuffer: "

// Errors returned by New.
var (
	// ErrSize is returned when the color and depth attachments
	// do not share the same width and height.
	ErrSize = errors.New(fbPrefix + "color and depth attachment sizes differ")
	// ErrColorType is returned when the color attachment's type
	// is a depth-only type.
	ErrColorType = errors.New(fbPrefix + "invalid color attachment type")
	// ErrDepthType is returned when the depth attachment's
	// element type is not one of f16, f32 or f64.
	ErrDepthType = errors.New(fbPrefix + "invalid depth attachment type")
)

// Framebuffer pairs a color attachment with an optional depth
// attachment. Both attachments, when both are present, must
// share the same width and height (spec.md §3's Framebuffer
// invariants).
//
// A Framebuffer holds exactly one color attachment: spec.md §3's
// "configurable number of color attachments" and the per-attachment
// wording in §4.4 are not implemented. shader.PipelineState.NumRenderTargets
// above 1 is rejected by the renderer rather than silently writing
// only the first attachment.
type Framebuffer struct {
	color *texture.Texture
	depth *texture.Texture
}

// New creates a Framebuffer from the given color and depth
// attachments. depth may be nil for color-only rendering.
func New(colorTex, depthTex *texture.Texture) (*Framebuffer, error) {
	if colorTex == nil {
		return nil, fmt.Errorf("%w: color attachment must not be nil", ErrColorType)
	}
	if colorTex.Type().IsDepthType() {
		return nil, fmt.Errorf("%w: %v", ErrColorType, colorTex.Type())
	}
	if depthTex != nil {
		if !depthTex.Type().IsDepthType() {
			return nil, fmt.Errorf("%w: %v", ErrDepthType, depthTex.Type())
		}
		if colorTex.Width() != depthTex.Width() || colorTex.Height() != depthTex.Height() {
			return nil, fmt.Errorf("%w: color %dx%d, depth %dx%d", ErrSize,
				colorTex.Width(), colorTex.Height(), depthTex.Width(), depthTex.Height())
		}
	}
	return &Framebuffer{color: colorTex, depth: depthTex}, nil
}

// Color returns the color attachment.
func (fb *Framebuffer) Color() *texture.Texture { return fb.color }

// Depth returns the depth attachment, or nil if none was set.
func (fb *Framebuffer) Depth() *texture.Texture { return fb.depth }

// Width and Height return the framebuffer's dimensions, taken
// from the color attachment.
func (fb *Framebuffer) Width() int  { return fb.color.Width() }
func (fb *Framebuffer) Height() int { return fb.color.Height() }

// Clear clears the color attachment to c and, if present, the
// depth attachment to depth.
func (fb *Framebuffer) Clear(c color.NColor, depth float32) {
	fb.color.Clear(c)
	if fb.depth != nil {
		fb.depth.Clear(color.NColor{depth})
	}
}

// ClearColor clears only the color attachment.
func (fb *Framebuffer) ClearColor(c color.NColor) { fb.color.Clear(c) }

// ClearDepth clears only the depth attachment, if present.
func (fb *Framebuffer) ClearDepth(depth float32) {
	if fb.depth != nil {
		fb.depth.Clear(color.NColor{depth})
	}
}
