// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package vproc

import "github.com/kvlabs/swrast/shader"

// Visibility classifies a primitive against the six homogeneous
// clip planes (spec.md §4.2 step 2).
type Visibility int

// Visibility classes.
const (
	NotVisible Visibility = iota
	FullyVisible
	PartiallyVisible
)

// outside bits, one per clip plane: -w<=x, x<=w, -w<=y, y<=w,
// -w<=z, z<=w.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
	outNear
	outFar
)

// outcode computes the six-bit clip-plane violation mask of a
// clip-space position.
func outcode(p clipVec) (code int) {
	if p[0] < -p[3] {
		code |= outLeft
	}
	if p[0] > p[3] {
		code |= outRight
	}
	if p[1] < -p[3] {
		code |= outBottom
	}
	if p[1] > p[3] {
		code |= outTop
	}
	if p[2] < -p[3] {
		code |= outNear
	}
	if p[2] > p[3] {
		code |= outFar
	}
	return
}

// clipVec is a clip-space homogeneous position, aliasing the
// shader's vec4 representation so this package does not need to
// import linear just for a 4-float tuple.
type clipVec = [4]float32

// classify returns the Visibility of a triangle given the
// outcodes of its three vertices (spec.md §4.2 step 2): trivial
// accept when every vertex is inside all planes, trivial reject
// when all three vertices share a violated plane, partial
// otherwise.
func classify(c0, c1, c2 int) Visibility {
	if c0|c1|c2 == 0 {
		return FullyVisible
	}
	if c0&c1&c2 != 0 {
		return NotVisible
	}
	return PartiallyVisible
}

// clipVertex is one vertex of the polygon being clipped: its
// clip-space position and its interpolated varyings.
type clipVertex struct {
	pos clipVec
	vry shader.Varyings
}

// maxClipVerts bounds the polygon produced by clipping a triangle
// against all six planes (spec.md §4.2: "a fan of ≤ 7 triangles",
// i.e. at most 9 vertices).
const maxClipVerts = 9

// plane identifies one of the six clip planes for clipPolygon.
type plane int

const (
	planeLeft plane = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

// dist returns the signed distance of v from plane pl; v is
// inside (dist >= 0) when it satisfies that plane's inequality.
func (pl plane) dist(v clipVec) float32 {
	switch pl {
	case planeLeft:
		return v[3] + v[0]
	case planeRight:
		return v[3] - v[0]
	case planeBottom:
		return v[3] + v[1]
	case planeTop:
		return v[3] - v[1]
	case planeNear:
		return v[3] + v[2]
	case planeFar:
		return v[3] - v[2]
	default:
		panic("vproc: invalid plane")
	}
}

// clipPolygon runs Sutherland–Hodgman clipping of poly against
// every plane named in violated, interpolating varyings linearly
// on the clip-plane crossing parameter (spec.md §4.2 step 3).
func clipPolygon(poly []clipVertex, violated int) []clipVertex {
	planes := [...]struct {
		bit int
		pl  plane
	}{
		{outLeft, planeLeft},
		{outRight, planeRight},
		{outBottom, planeBottom},
		{outTop, planeTop},
		{outNear, planeNear},
		{outFar, planeFar},
	}
	for _, p := range planes {
		if violated&p.bit == 0 {
			continue
		}
		poly = clipAgainstPlane(poly, p.pl)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

func clipAgainstPlane(poly []clipVertex, pl plane) []clipVertex {
	if len(poly) == 0 {
		return nil
	}
	out := make([]clipVertex, 0, maxClipVerts)
	prev := poly[len(poly)-1]
	prevDist := pl.dist(prev.pos)
	for _, cur := range poly {
		curDist := pl.dist(cur.pos)
		curIn := curDist >= 0
		prevIn := prevDist >= 0
		if curIn != prevIn {
			t := prevDist / (prevDist - curDist)
			out = append(out, lerpVertex(prev, cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevDist = cur, curDist
	}
	return out
}

func lerpVertex(a, b clipVertex, t float32) clipVertex {
	var v clipVertex
	for i := range v.pos {
		v.pos[i] = a.pos[i] + (b.pos[i]-a.pos[i])*t
	}
	for k := range v.vry {
		for i := range v.vry[k] {
			v.vry[k][i] = a.vry[k][i] + (b.vry[k][i]-a.vry[k][i])*t
		}
	}
	return v
}

// fanTriangles splits a convex polygon into a triangle fan
// anchored at vertex 0.
func fanTriangles(poly []clipVertex) [][3]clipVertex {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]clipVertex, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]clipVertex{poly[0], poly[i], poly[i+1]})
	}
	return tris
}
