// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"testing"

	"github.com/kvlabs/swrast/mesh"
)

func TestCreateMeshAndFetch(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	id, err := c.CreateMesh(mesh.Triangles, nil, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	m, err := c.Mesh(id)
	if err != nil {
		t.Fatal(err)
	}
	if m.PrimCount != 1 {
		t.Fatalf("PrimCount: have %d, want 1", m.PrimCount)
	}
}

func TestCreateMeshInvalid(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.CreateMesh(mesh.IndexedTriangles, []uint32{0, 1}, 3, 1); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("CreateMesh with mismatched index count: have %v, want ErrConfiguration", err)
	}
}

func TestMeshUnknownID(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Mesh(MeshID(99)); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Mesh with unknown id: have %v, want ErrInvalidOperation", err)
	}
}

func TestDestroyMeshInvalidatesID(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	id, err := c.CreateMesh(mesh.Points, nil, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	c.DestroyMesh(id)
	if _, err := c.Mesh(id); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("Mesh after Destroy: have %v, want ErrInvalidOperation", err)
	}
}
