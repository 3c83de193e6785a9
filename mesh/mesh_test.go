// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"errors"
	"testing"
)

func TestNewTriangles(t *testing.T) {
	m, err := New(Triangles, nil, 9, 3)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertsPerPrim() != 3 {
		t.Fatalf("VertsPerPrim:\nhave %d\nwant 3", m.VertsPerPrim())
	}
	if m.VertexID(1, 2) != 5 {
		t.Fatalf("VertexID(1,2):\nhave %d\nwant 5", m.VertexID(1, 2))
	}
}

func TestNewIndexedTriangles(t *testing.T) {
	idx := []uint32{0, 1, 2, 2, 1, 3}
	m, err := New(IndexedTriangles, idx, 4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.VertexID(1, 0) != 2 {
		t.Fatalf("VertexID(1,0):\nhave %d\nwant 2", m.VertexID(1, 0))
	}
}

func TestNewIndexedTrianglesBadCount(t *testing.T) {
	idx := []uint32{0, 1, 2}
	if _, err := New(IndexedTriangles, idx, 4, 2); !errors.Is(err, ErrPrimCount) {
		t.Fatalf("New with short index buffer:\nhave %v\nwant ErrPrimCount", err)
	}
}

func TestNewNonIndexedInsufficientVerts(t *testing.T) {
	if _, err := New(Lines, nil, 2, 3); !errors.Is(err, ErrPrimCount) {
		t.Fatalf("New with too few vertices:\nhave %v\nwant ErrPrimCount", err)
	}
}

func TestWireframeAndIndexed(t *testing.T) {
	for _, x := range [...]struct {
		mode      RenderMode
		wireframe bool
		indexed   bool
	}{
		{Points, false, false},
		{Lines, false, false},
		{Triangles, false, false},
		{IndexedTriangles, false, true},
		{TriWire, true, false},
		{IndexedTriWire, true, true},
	} {
		var m *Mesh
		var err error
		if x.indexed {
			m, err = New(x.mode, []uint32{0, 1, 2}, 3, 1)
		} else {
			m, err = New(x.mode, nil, 3, 1)
		}
		if err != nil {
			t.Fatal(err)
		}
		if m.Wireframe() != x.wireframe {
			t.Fatalf("%v.Wireframe:\nhave %t\nwant %t", x.mode, m.Wireframe(), x.wireframe)
		}
		if m.Indexed() != x.indexed {
			t.Fatalf("%v.Indexed:\nhave %t\nwant %t", x.mode, m.Indexed(), x.indexed)
		}
	}
}
