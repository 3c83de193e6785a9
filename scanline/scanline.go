// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package scanline implements the per-triangle scanline algebra
// used by the rasterizer: vertex sort, edge-slope precomputation
// and per-row horizontal span stepping (spec.md §4.1), plus the
// scanline-to-thread partition function (spec.md §4.3, §8
// invariant 2).
package scanline

import "github.com/kvlabs/swrast/linear"

// Bounds precomputes the slopes of a single triangle's three
// edges so that Step can answer, for any integer y within the
// triangle's vertical extent, the horizontal span of pixels to
// rasterize.
type Bounds struct {
	p0, p1, p2 linear.V3

	p10xy float32
	p21xy float32
	p20y  float32
	p20x  float32

	bboxMinX, bboxMaxX int
	bboxMinY, bboxMaxY int
}

// Init sorts a, b, c by descending y and precomputes the edge
// slopes (spec.md §4.1, steps 1-3). fbWidth clamps the horizontal
// bounding box; pass a very large value to disable clamping when
// the caller has already clipped against the viewport.
func (s *Bounds) Init(a, b, c linear.V3, fbWidth int) {
	s.p0, s.p1, s.p2 = a, b, c
	if s.p0[1] < s.p1[1] {
		s.p0, s.p1 = s.p1, s.p0
	}
	if s.p1[1] < s.p2[1] {
		s.p1, s.p2 = s.p2, s.p1
	}
	if s.p0[1] < s.p1[1] {
		s.p0, s.p1 = s.p1, s.p0
	}

	if dy := s.p1[1] - s.p0[1]; dy != 0 {
		s.p10xy = (s.p1[0] - s.p0[0]) / dy
	}
	if dy := s.p2[1] - s.p1[1]; dy != 0 {
		s.p21xy = (s.p2[0] - s.p1[0]) / dy
	}
	if dy := s.p2[1] - s.p0[1]; dy != 0 {
		s.p20y = 1 / dy
	}
	s.p20x = s.p2[0] - s.p0[0]

	minX, maxX := s.p0[0], s.p0[0]
	for _, p := range [...]linear.V3{s.p1, s.p2} {
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
	}
	s.bboxMinX = clampInt(int(minX), 0, fbWidth)
	s.bboxMaxX = clampInt(int(maxX)+1, 0, fbWidth)
	s.bboxMinY = int(s.p2[1])
	s.bboxMaxY = int(s.p0[1]) + 1
}

// MinY and MaxY return the half-open vertical range [MinY, MaxY)
// of scanlines the triangle covers.
func (s *Bounds) MinY() int { return s.bboxMinY }
func (s *Bounds) MaxY() int { return s.bboxMaxY }

// Step returns the horizontal span [xMin, xMax) of pixels to
// rasterize at row y (spec.md §4.1). The result is clamped to the
// triangle's bounding box computed by Init; xMin may equal xMax
// when the span is empty.
func (s *Bounds) Step(y float32) (xMin, xMax int) {
	d0 := y - s.p0[1]
	d1 := y - s.p1[1]

	var xLeft float32
	if d1 >= 0 {
		xLeft = s.p0[0] + s.p10xy*d0
	} else {
		xLeft = s.p1[0] + s.p21xy*d1
	}
	xRight := s.p0[0] + s.p20x*(d0*s.p20y)

	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	xMin = clampInt(int(xLeft), s.bboxMinX, s.bboxMaxX)
	xMax = clampInt(int(xRight)+1, s.bboxMinX, s.bboxMaxX)
	if xMax < xMin {
		xMax = xMin
	}
	return
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Offset returns the smallest non-negative k such that
// (y0+k) mod N == t. It is the building block of the scanline
// partition: worker t of N processes the scanlines starting at
// y0 + Offset(N, t, y0), stepping by N (spec.md §4.3).
func Offset(n, t, y0 int) int {
	if n <= 0 {
		panic("scanline: n must be positive")
	}
	k := ((t - y0) % n + n) % n
	return k
}
