// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import "github.com/kvlabs/swrast/shader"

// Drawable describes one draw call: a mesh, the instance of it
// being drawn, and the shader pipeline to run over it. It plays the
// same role as the teacher's drawable descriptor, minus the
// GPU-specific per-instance uniform layout (spec.md's shader
// contract takes an opaque uniform byte block; a caller fills
// Shader.Uniforms itself before submitting the Drawable). If
// InstanceID was registered through Context.SetInstanceWorld, Draw
// overwrites the front of Shader.Uniforms with that instance's world
// matrix before submitting.
type Drawable struct {
	Mesh       MeshID
	InstanceID uint32
	Shader     *shader.Shader
}
