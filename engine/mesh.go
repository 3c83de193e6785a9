// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"

	"github.com/kvlabs/swrast/internal/handle"
	"github.com/kvlabs/swrast/mesh"
)

// meshEntry is what the Context's mesh table stores.
type meshEntry struct {
	mesh *mesh.Mesh
}

// CreateMesh validates and stores a mesh topology, returning a
// handle to it (spec.md §3's Mesh data model).
func (c *Context) CreateMesh(mode mesh.RenderMode, indices []uint32, vertexCount, primCount int) (MeshID, error) {
	m, err := mesh.New(mode, indices, vertexCount, primCount)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	h := c.meshes.Insert(&meshEntry{mesh: m})
	return MeshID(h), nil
}

// Mesh returns the mesh identified by id.
func (c *Context) Mesh(id MeshID) (*mesh.Mesh, error) {
	e, ok := c.meshes.Get(handle.Handle(id))
	if !ok {
		return nil, fmt.Errorf("%w: unknown mesh id %d", ErrInvalidOperation, id)
	}
	return e.mesh, nil
}

// DestroyMesh releases the mesh identified by id. It is a no-op if
// id does not identify a live mesh.
func (c *Context) DestroyMesh(id MeshID) {
	c.meshes.Remove(handle.Handle(id))
}
