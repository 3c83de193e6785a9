// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import "github.com/kvlabs/swrast/color"

// Rect is an axis-aligned region of a Texture, in texel
// coordinates, half-open on (x1, y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) dx() int { return r.X1 - r.X0 }
func (r Rect) dy() int { return r.Y1 - r.Y0 }

// Blit samples src within srcRect using nearest-neighbor
// filtering and writes the result into dst within dstRect,
// scaling as needed. Coordinates are stepped with 16.16
// fixed-point precision (spec.md §4.5), so it supports both
// up- and down-scaling without float drift across a row.
//
// The two textures' color types need not match: every texel is
// decoded through color.Decode and re-encoded with color.Encode,
// which is the generalization of spec.md §4.5's per-format blit
// specialization table to an arbitrary (srcType, dstType) pair.
func Blit(dst, src *Texture, dstRect, srcRect Rect) {
	dw, dh := dstRect.dx(), dstRect.dy()
	if dw <= 0 || dh <= 0 {
		return
	}
	const fixShift = 16
	xStep := (srcRect.dx() << fixShift) / dw
	yStep := (srcRect.dy() << fixShift) / dh

	BlitRows(dst, src, dstRect, srcRect, 0, dh, xStep, yStep)
}

// BlitRows performs the same sampling as Blit but restricted to
// destination rows in [rowLo, rowHi) relative to dstRect.Y0,
// letting a caller partition work across worker threads the way
// the rasterizer partitions scanlines (spec.md §4.6: "Thread t
// processes destination rows where row mod N == t").
func BlitRows(dst, src *Texture, dstRect, srcRect Rect, rowLo, rowHi, xStep, yStep int) {
	const fixShift = 16
	dw := dstRect.dx()
	for dy := rowLo; dy < rowHi; dy++ {
		sy := srcRect.Y0 + ((dy*yStep)>>fixShift)
		if sy >= srcRect.Y1 {
			sy = srcRect.Y1 - 1
		}
		sxFixed := srcRect.X0 << fixShift
		for dx := 0; dx < dw; dx++ {
			sx := sxFixed >> fixShift
			if sx >= srcRect.X1 {
				sx = srcRect.X1 - 1
			}
			c := src.At(sx, sy, 0)
			dst.Set(dstRect.X0+dx, dstRect.Y0+dy, 0, c)
			sxFixed += xStep
		}
	}
}

// BlitSolid fills dstRect of dst with a single color, bypassing
// sampling entirely. Useful for debug clears of a sub-rectangle.
func BlitSolid(dst *Texture, dstRect Rect, c color.NColor) {
	for y := dstRect.Y0; y < dstRect.Y1; y++ {
		for x := dstRect.X0; x < dstRect.X1; x++ {
			dst.Set(x, y, 0, c)
		}
	}
}
