// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"
)

// ImageView adapts a Texture's z=0 plane to the standard
// image.Image interface, letting presentation code hand a rendered
// Texture to the broader image ecosystem (encoders, display
// surfaces) without this package hand-rolling image.Image glue
// (spec.md §6's WindowBuffer).
type ImageView struct {
	Tex *Texture
}

func (v ImageView) ColorModel() stdcolor.Model { return stdcolor.NRGBAModel }

func (v ImageView) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Tex.Width(), v.Tex.Height())
}

func (v ImageView) At(x, y int) stdcolor.Color {
	c := v.Tex.At(x, y, 0)
	clamp := func(f float32) uint8 {
		switch {
		case f <= 0:
			return 0
		case f >= 1:
			return 255
		default:
			return uint8(f*255 + 0.5)
		}
	}
	return stdcolor.NRGBA{clamp(c[0]), clamp(c[1]), clamp(c[2]), clamp(c[3])}
}

// Present copies t's z=0 plane into dst at dst's origin using
// golang.org/x/image/draw's standard same-size Draw, the
// presentation-surface flip of spec.md §6. Scaling, when a source
// and destination rect differ in size, stays the fixed-point kernel
// in blit.go (that stepping is itself a testable invariant, so it
// is not delegated to draw.NearestNeighbor); this helper covers the
// common case of flipping a fully-rendered frame into a same-size
// window surface.
func Present(dst draw.Image, t *Texture) {
	v := ImageView{t}
	draw.Draw(dst, v.Bounds(), v, image.Point{}, draw.Src)
}
