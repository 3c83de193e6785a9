// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package raster implements the rasterizer: it consumes published
// bin.FragmentBins, walks the scanlines each worker owns, and
// appends surviving fragments to the fragment package's pipeline
// (spec.md §4.3).
package raster

import (
	"github.com/kvlabs/swrast/bin"
	"github.com/kvlabs/swrast/fragment"
	"github.com/kvlabs/swrast/framebuffer"
	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/scanline"
	"github.com/kvlabs/swrast/shader"
)

func toV3(v linear.V4) linear.V3 { return linear.V3{v[0], v[1], v[2]} }

// MaxQueuedFrags bounds a worker's fragment queue before it must
// flush through the fragment pipeline (spec.md §3's FragCoord
// queue: "SL_SHADER_MAX_QUEUED_FRAGS (e.g. 64)").
const MaxQueuedFrags = 64

// queue is a worker-local, append-only buffer of fragments that
// passed the coverage test and await the depth test and shading.
type queue struct {
	frags [MaxQueuedFrags]fragment.Fragment
	n     int
}

func (q *queue) push(f fragment.Fragment) bool {
	if q.n >= len(q.frags) {
		return false
	}
	q.frags[q.n] = f
	q.n++
	return true
}

func (q *queue) flush(sh *shader.Shader, fb *framebuffer.Framebuffer) {
	for i := 0; i < q.n; i++ {
		fragment.Shade(sh, fb, q.frags[i])
	}
	q.n = 0
}

// Args bundles the inputs a single worker's rasterizer-phase pass
// needs. Wireframe selects the edge-margin walk of spec.md §4.3
// for triangle bins; it is set from the source mesh.Mesh's
// RenderMode by the caller, since a bin itself carries no mode
// tag.
type Args struct {
	Bins       *bin.Array
	Shader     *shader.Shader
	FB         *framebuffer.Framebuffer
	ThreadID   int
	NumThreads int
	Wireframe  bool
}

// Process rasterizes every bin in args.Bins, restricted to the
// scanlines args.ThreadID owns (spec.md §4.3's "Scanline
// partitioning"). Triangle, line and point bins are each
// dispatched to their own walk.
func Process(args Args) {
	var q queue
	for _, b := range args.Bins.Bins() {
		switch b.NumVerts {
		case 3:
			rasterTriangle(args, &b, &q)
		case 2:
			rasterLine(args, &b, &q)
		case 1:
			rasterPoint(args, &b, &q)
		}
	}
	q.flush(args.Shader, args.FB)
}

func rasterTriangle(args Args, b *bin.FragmentBin, q *queue) {
	var sb scanline.Bounds
	p0, p1, p2 := toV3(b.Pos[0]), toV3(b.Pos[1]), toV3(b.Pos[2])
	sb.Init(p0, p1, p2, args.FB.Width())

	t, n := args.ThreadID, args.NumThreads
	minY, maxY := sb.MinY(), sb.MaxY()
	if minY < 0 {
		minY = 0
	}
	if maxY > args.FB.Height() {
		maxY = args.FB.Height()
	}

	prevMin, prevMax := sb.Step(float32(minY - 1))
	for y := minY + scanline.Offset(n, t, minY); y < maxY; y += n {
		xMin, xMax := sb.Step(float32(y))
		if args.Wireframe {
			d0 := abs(xMin - prevMin)
			d1 := abs(xMax - prevMax)
			if d0 < 1 {
				d0 = 1
			}
			if d1 < 1 {
				d1 = 1
			}
			for x := xMin; x < xMin+d0 && x < xMax; x++ {
				emitTriangleFragment(args, b, x, y, q)
			}
			for x := xMax - d1; x < xMax; x++ {
				if x >= xMin+d0 {
					emitTriangleFragment(args, b, x, y, q)
				}
			}
		} else {
			for x := xMin; x < xMax; x++ {
				emitTriangleFragment(args, b, x, y, q)
			}
		}
		prevMin, prevMax = xMin, xMax
	}
}

func emitTriangleFragment(args Args, b *bin.FragmentBin, x, y int, q *queue) {
	fx, fy := float32(x)+0.5, float32(y)+0.5
	bc0 := b.Basis[0][0]*fx + b.Basis[0][1]*fy + b.Basis[0][2]
	bc1 := b.Basis[1][0]*fx + b.Basis[1][1]*fy + b.Basis[1][2]
	bc2 := b.Basis[2][0]*fx + b.Basis[2][1]*fy + b.Basis[2][2]
	if bc0 < 0 || bc1 < 0 || bc2 < 0 {
		return
	}
	depth := bc0*b.Pos[0][2] + bc1*b.Pos[1][2] + bc2*b.Pos[2][2]

	f := fragment.Fragment{
		X: uint16(x), Y: uint16(y), Depth: depth,
		Bary: [3]float32{bc0, bc1, bc2},
		Bin:  b,
	}
	if !q.push(f) {
		q.flush(args.Shader, args.FB)
		q.push(f)
	}
}

func rasterLine(args Args, b *bin.FragmentBin, q *queue) {
	x0, y0 := int(b.Pos[0][0]), int(b.Pos[0][1])
	x1, y1 := int(b.Pos[1][0]), int(b.Pos[1][1])
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		if mod(y, args.NumThreads) == args.ThreadID {
			t := lineParam(x0, y0, x1, y1, x, y)
			bc0, bc1 := 1-t, t
			depth := bc0*b.Pos[0][2] + bc1*b.Pos[1][2]
			f := fragment.Fragment{
				X: uint16(x), Y: uint16(y), Depth: depth,
				Bary: [3]float32{bc0, bc1, 0},
				Bin:  b,
			}
			if !q.push(f) {
				q.flush(args.Shader, args.FB)
				q.push(f)
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func lineParam(x0, y0, x1, y1, x, y int) float32 {
	dx, dy := x1-x0, y1-y0
	len2 := float32(dx*dx + dy*dy)
	if len2 == 0 {
		return 0
	}
	return (float32((x-x0)*dx+(y-y0)*dy)) / len2
}

func rasterPoint(args Args, b *bin.FragmentBin, q *queue) {
	x, y := int(b.Pos[0][0]), int(b.Pos[0][1])
	if mod(y, args.NumThreads) != args.ThreadID {
		return
	}
	f := fragment.Fragment{
		X: uint16(x), Y: uint16(y), Depth: b.Pos[0][2],
		Bary: [3]float32{1, 0, 0},
		Bin:  b,
	}
	if !q.push(f) {
		q.flush(args.Shader, args.FB)
		q.push(f)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return ((a % n) + n) % n
}
