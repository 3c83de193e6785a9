// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package vproc implements the vertex processor: shader
// invocation, frustum clipping, perspective divide, viewport
// mapping, back-face culling and barycentric basis computation,
// publishing the results as bin.FragmentBins (spec.md §4.2).
package vproc

import (
	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/mesh"
	"github.com/kvlabs/swrast/shader"
)

// Args bundles the inputs a single worker's vertex-phase pass
// needs (spec.md §4.2's "Inputs").
type Args struct {
	Mesh        *mesh.Mesh
	InstanceID  uint32
	Shader      *shader.Shader
	Bins        *bin.Array
	FBWidth     int
	FBHeight    int
	ThreadID    int
	NumThreads  int
	// StartPrim is the primitive index this pass begins at. It is
	// ThreadID on a worker's first pass over a mesh, and the
	// resumeFrom value Process previously returned on every
	// subsequent pass after an overflow flush, so a resumed pass
	// never re-emits a primitive the prior pass already published.
	StartPrim int
}

// Process runs the vertex phase over the primitives of args.Mesh
// assigned to args.ThreadID (primitive index modulo NumThreads),
// starting at args.StartPrim rather than always at args.ThreadID so
// a resumed pass picks up exactly where a prior pass's bin claim
// failed, publishing zero or more bins into args.Bins. It returns
// overflowed == true, with resumeFrom set to the primitive whose bin
// claim failed, if the bin array overflowed and a flush is required
// before the remaining primitives can be processed; the caller then
// forces a rasterizer-phase flush and calls Process again with
// StartPrim set to the returned resumeFrom index. Otherwise it
// returns (args.Mesh.PrimCount, false).
func Process(args Args) (resumeFrom int, overflowed bool) {
	vpp := args.Mesh.VertsPerPrim()
	for prim := args.StartPrim; prim < args.Mesh.PrimCount; prim += args.NumThreads {
		var ok bool
		switch vpp {
		case 1:
			ok = processPoint(args, prim)
		case 2:
			ok = processLine(args, prim)
		default:
			ok = processTriangle(args, prim)
		}
		if !ok {
			return prim, true
		}
	}
	return args.Mesh.PrimCount, false
}

func invokeVertex(args Args, prim, v int) clipVertex {
	id := args.Mesh.VertexID(prim, v)
	pos, vry := args.Shader.Vertex(id, args.InstanceID, args.Shader.Uniforms)
	return clipVertex{pos: clipVec(pos), vry: vry}
}

func processPoint(args Args, prim int) bool {
	cv := invokeVertex(args, prim, 0)
	if outcode(cv.pos) != 0 {
		return true // clipped away; not an overflow
	}
	win := toWindow(cv.pos, args.FBWidth, args.FBHeight)
	idx, ok := args.Bins.Claim()
	if !ok {
		return false
	}
	var b bin.FragmentBin
	b.NumVerts = 1
	b.Pos[0] = win
	b.Varyings[0] = cv.vry
	args.Bins.Publish(idx, b)
	return true
}

func processLine(args Args, prim int) bool {
	a := invokeVertex(args, prim, 0)
	c := invokeVertex(args, prim, 1)
	// Cohen-Sutherland: trivial reject if both endpoints share an
	// outside plane; otherwise clip iteratively against the
	// violated planes via the same Sutherland-Hodgman machinery
	// used for triangles, since a 2-vertex "polygon" clipped
	// against a half-space degenerates to the same interpolation.
	ca, cc := outcode(a.pos), outcode(c.pos)
	if ca&cc != 0 {
		return true
	}
	poly := []clipVertex{a, c}
	if ca|cc != 0 {
		poly = clipPolygon(poly, ca|cc)
		if len(poly) < 2 {
			return true
		}
	}
	idx, ok := args.Bins.Claim()
	if !ok {
		return false
	}
	var b bin.FragmentBin
	b.NumVerts = 2
	b.Pos[0] = toWindow(poly[0].pos, args.FBWidth, args.FBHeight)
	b.Pos[1] = toWindow(poly[1].pos, args.FBWidth, args.FBHeight)
	b.Varyings[0] = poly[0].vry
	b.Varyings[1] = poly[1].vry
	args.Bins.Publish(idx, b)
	return true
}

func processTriangle(args Args, prim int) bool {
	v0 := invokeVertex(args, prim, 0)
	v1 := invokeVertex(args, prim, 1)
	v2 := invokeVertex(args, prim, 2)

	c0, c1, c2 := outcode(v0.pos), outcode(v1.pos), outcode(v2.pos)
	switch classify(c0, c1, c2) {
	case NotVisible:
		return true
	case FullyVisible:
		return publishTriangle(args, v0, v1, v2)
	default:
		poly := clipPolygon([]clipVertex{v0, v1, v2}, c0|c1|c2)
		for _, tri := range fanTriangles(poly) {
			if !publishTriangle(args, tri[0], tri[1], tri[2]) {
				return false
			}
		}
		return true
	}
}

func publishTriangle(args Args, v0, v1, v2 clipVertex) bool {
	p0 := toWindow(v0.pos, args.FBWidth, args.FBHeight)
	p1 := toWindow(v1.pos, args.FBWidth, args.FBHeight)
	p2 := toWindow(v2.pos, args.FBWidth, args.FBHeight)

	if cull(args.Shader.State.CullMode, p0, p1, p2) {
		return true
	}

	basis, ok := barycentricBasis(p0, p1, p2)
	if !ok {
		return true // degenerate triangle, drop
	}

	idx, claimOK := args.Bins.Claim()
	if !claimOK {
		return false
	}
	var b bin.FragmentBin
	b.NumVerts = 3
	b.Pos = [3]linear.V4{p0, p1, p2}
	b.Basis = basis
	b.Varyings = [3]shader.Varyings{v0.vry, v1.vry, v2.vry}
	args.Bins.Publish(idx, b)
	return true
}

// toWindow perspective-divides a clip-space position and maps
// the result to window space, storing 1/w in the w component so
// the fragment pipeline can perspective-correct varyings (spec.md
// §4.2 step 4, §9's open question on perspective correction).
func toWindow(p clipVec, fbWidth, fbHeight int) linear.V4 {
	iw := float32(1)
	if p[3] != 0 {
		iw = 1 / p[3]
	}
	ndc := linear.V3{p[0] * iw, p[1] * iw, p[2] * iw}
	win := linear.Viewport(&ndc, fbWidth, fbHeight)
	return linear.V4{win[0], win[1], win[2], iw}
}

// cull reports whether the window-space triangle should be
// discarded under mode, using the signed area of the 2-D
// projection (spec.md §4.2 step 5). Positive area is
// counter-clockwise winding.
func cull(mode shader.CullMode, p0, p1, p2 linear.V4) bool {
	area := edgeArea(p0, p1, p2)
	switch mode {
	case shader.CullNone:
		return false
	case shader.CullBack:
		return area <= 0
	case shader.CullFront:
		return area >= 0
	default:
		return false
	}
}

func edgeArea(p0, p1, p2 linear.V4) float32 {
	return (p1[0]-p0[0])*(p2[1]-p0[1]) - (p1[1]-p0[1])*(p2[0]-p0[0])
}

// barycentricBasis derives three vec4 (a,b,c,0) such that the
// barycentric coordinate of vertex i at pixel (x,y) is
// a*x + b*y + c (spec.md §4.2 step 6, the "standard edge-function
// inversion").
func barycentricBasis(p0, p1, p2 linear.V4) (basis [3]linear.V4, ok bool) {
	area := edgeArea(p0, p1, p2)
	if area == 0 {
		return basis, false
	}
	inv := 1 / area
	edges := [3][2]linear.V4{
		{p1, p2}, // opposite p0
		{p2, p0}, // opposite p1
		{p0, p1}, // opposite p2
	}
	for i, e := range edges {
		a, b := e[0], e[1]
		coefX := -(b[1] - a[1]) * inv
		coefY := (b[0] - a[0]) * inv
		coefC := ((b[1]-a[1])*a[0] - (b[0]-a[0])*a[1]) * inv
		basis[i] = linear.V4{coefX, coefY, coefC, 0}
	}
	return basis, true
}
