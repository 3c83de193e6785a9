// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import "github.com/kvlabs/swrast/linear"

// SetInstanceWorld records instanceID's world transform, resolving
// the gap between a Drawable's opaque InstanceID and the actual
// matrix a vertex shader needs: Draw packs it into the front of the
// Drawable's Shader.Uniforms before submitting the draw call.
func (c *Context) SetInstanceWorld(instanceID uint32, world linear.M4) {
	c.instances.Set(instanceID, world)
	c.instances.Update()
}

// RemoveInstance forgets instanceID's transform. Draw calls that
// reference it afterward run with whatever Uniforms the caller
// supplied directly.
func (c *Context) RemoveInstance(instanceID uint32) {
	c.instances.Remove(instanceID)
}

// NumInstances returns the number of instances registered through
// SetInstanceWorld.
func (c *Context) NumInstances() int { return c.instances.Len() }
