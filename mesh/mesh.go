// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package mesh describes the primitive topology a draw call
// walks: an optional index buffer plus a render mode (spec.md
// §3's Mesh).
//
// Unlike the teacher's GPU-backed mesh, which owns device vertex
// buffers, a Mesh here carries no vertex storage of its own — the
// vertex shader closure supplied to a draw call is responsible
// for indexing its own host-memory attribute arrays by the
// vertex ID the vertex processor hands it (spec.md §6's shader
// ABI takes only a vertex_id/instance_id pair, not raw buffers).
package mesh

import (
	"errors"
	"fmt"
)

const meshPrefix = "mesh: "

// ErrPrimCount is returned when a Mesh's primitive count is not
// compatible with its RenderMode and index/vertex counts.
var ErrPrimCount = errors.New(meshPrefix + "invalid primitive count")

// RenderMode selects how a Mesh's vertices assemble into
// primitives.
type RenderMode int

// Render modes.
const (
	Points RenderMode = iota
	Lines
	Triangles
	IndexedTriangles
	TriWire
	IndexedTriWire
)

func (m RenderMode) indexed() bool {
	return m == IndexedTriangles || m == IndexedTriWire
}

func (m RenderMode) wireframe() bool {
	return m == TriWire || m == IndexedTriWire
}

func (m RenderMode) vertsPerPrim() int {
	switch m {
	case Points:
		return 1
	case Lines:
		return 2
	default:
		return 3
	}
}

// Mesh is an (index buffer, vertex count) pair tagged with a
// RenderMode and the number of primitives it contains.
type Mesh struct {
	Indices     []uint32
	VertexCount int
	Mode        RenderMode
	PrimCount   int
}

// New validates and constructs a Mesh. indices may be nil for
// non-indexed modes; for indexed modes its length must equal
// primCount*vertsPerPrim.
func New(mode RenderMode, indices []uint32, vertexCount, primCount int) (*Mesh, error) {
	vpp := mode.vertsPerPrim()
	if mode.indexed() {
		if len(indices) != primCount*vpp {
			return nil, fmt.Errorf("%w: indexed mode wants %d indices, have %d",
				ErrPrimCount, primCount*vpp, len(indices))
		}
	} else if vertexCount < primCount*vpp {
		return nil, fmt.Errorf("%w: %d vertices cannot supply %d primitives of %d verts each",
			ErrPrimCount, vertexCount, primCount, vpp)
	}
	return &Mesh{Indices: indices, VertexCount: vertexCount, Mode: mode, PrimCount: primCount}, nil
}

// VertsPerPrim returns the number of vertices each primitive of
// m's RenderMode consumes (1 for points, 2 for lines, 3 for
// triangle-family modes).
func (m *Mesh) VertsPerPrim() int { return m.Mode.vertsPerPrim() }

// Wireframe reports whether m's RenderMode rasterizes as an edge
// outline rather than a filled interior.
func (m *Mesh) Wireframe() bool { return m.Mode.wireframe() }

// Indexed reports whether m's RenderMode reads vertex IDs through
// the index buffer.
func (m *Mesh) Indexed() bool { return m.Mode.indexed() }

// VertexID returns the vertex_id to pass to the vertex shader for
// the v-th vertex (0-based, 0 <= v < VertsPerPrim()) of the
// prim-th primitive (0-based, 0 <= prim < PrimCount).
func (m *Mesh) VertexID(prim, v int) uint32 {
	vpp := m.VertsPerPrim()
	i := prim*vpp + v
	if m.Indexed() {
		return m.Indices[i]
	}
	return uint32(i)
}
