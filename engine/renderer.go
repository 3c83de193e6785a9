// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"

	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/shader"
	"github.com/kvlabs/swrast/texture"
)

// Draw validates d against fb and submits it to the processor
// pool's vertex/rasterize fork-join phases (spec.md §2, §5). It
// validates once at the top and returns nil on success; every
// failure wraps one of the error kinds in engine.go so callers can
// classify it with errors.Is, replacing spec.md §7's "return an
// integer status (0 = ok, negative = error code)" with Go's native
// error-return convention.
func (c *Context) Draw(d Drawable, fb *framebuffer.Framebuffer) error {
	if d.Shader == nil {
		return fmt.Errorf("%w: Drawable has no Shader", ErrConfiguration)
	}
	if fb == nil {
		return fmt.Errorf("%w: Draw requires a non-nil framebuffer", ErrConfiguration)
	}
	if d.Shader.State.DepthFunc != shader.DepthOff && fb.Depth() == nil {
		// spec.md §7's InvalidOperation: "draw call issued with no
		// depth buffer but a depth-test-enabled pipeline".
		return fmt.Errorf("%w: depth test enabled but framebuffer has no depth attachment", ErrInvalidOperation)
	}
	if d.Shader.State.NumRenderTargets != 1 {
		// framebuffer.Framebuffer holds a single color attachment
		// and fragment.Shade only ever writes outColors[0]; reject
		// rather than silently drop the rest (spec.md §3, §4.4).
		return fmt.Errorf("%w: NumRenderTargets must be 1, have %d", ErrConfiguration, d.Shader.State.NumRenderTargets)
	}

	m, err := c.Mesh(d.Mesh)
	if err != nil {
		return err
	}

	// Resolve d.InstanceID against the registered instance-transform
	// store, if any, so the vertex shader can decode its world
	// matrix out of Uniforms rather than the caller having to track
	// per-instance transforms itself (spec.md §4.2's vertex-processor
	// input `(..., instanceId, ...)`).
	if world, ok := c.instances.World(d.InstanceID); ok {
		if len(d.Shader.Uniforms) < M4Size {
			buf := make([]byte, M4Size)
			copy(buf, d.Shader.Uniforms)
			d.Shader.Uniforms = buf
		}
		PutM4(d.Shader.Uniforms, 0, world)
	}

	if err := c.pool.RunShaderProcessors(m, d.InstanceID, d.Shader, fb); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return nil
}

// Present blits src into dst's rectangle, the role spec.md §4.6's
// `run_blit_processors` plays when flipping a rendered frame into a
// WindowBuffer's presentation texture (spec.md §6).
func (c *Context) Present(dst, src *texture.Texture, dstRect, srcRect texture.Rect) {
	c.pool.RunBlitProcessors(dst, src, dstRect, srcRect)
}
