// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package texture implements the 3-D texel storage model: ordered
// and swizzled addressing, typed clear, and nearest-neighbor
// blit, as described by spec.md §3 and §4.5.
package texture

import (
	"errors"
	"fmt"

	"github.com/kvlabs/swrast/color"
)

const texPrefix = "texture: "

// ErrDimension is returned when a texture's requested dimensions
// are not positive.
var ErrDimension = errors.New(texPrefix + "invalid dimensions")

// Order selects how a Texture maps (x, y, z) coordinates to a
// linear texel index.
type Order int

// Texel orders.
const (
	// Ordered is row-major: idx = x + w*y + w*h*z.
	Ordered Order = iota
	// Swizzled interleaves the bits of x, y and z within 4×4×4
	// tiles (Morton/Z-order); the tile index itself is
	// row-major. Depth textures are always Ordered.
	Swizzled
)

// Texture is a 3-D array of texels of a single color.Type.
// Storage is a flat byte slice whose length is rounded up to a
// multiple of 4096 bytes; its start address is not aligned to a
// page boundary. Addressing is a pure function of (x, y, z) and
// the texture's metadata, so no allocation happens on access.
type Texture struct {
	width, height, depth int
	typ                  color.Type
	bpp                  int
	order                Order
	data                 []byte
}

// New creates a texture of the given dimensions and color type.
// depth must be 1 for a 2-D texture. order is forced to Ordered
// when typ is a depth type, regardless of the requested value.
func New(width, height, depth int, typ color.Type, order Order) (*Texture, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrDimension, width, height, depth)
	}
	if typ.IsDepthType() {
		order = Ordered
	}
	bpp := typ.Size()
	// Round the backing allocation's length up to a multiple of
	// 4096 bytes. This has no effect on addressing.
	const pageSize = 4096
	n := width * height * depth * bpp
	if rem := n % pageSize; rem != 0 {
		n += pageSize - rem
	}
	return &Texture{
		width:  width,
		height: height,
		depth:  depth,
		typ:    typ,
		bpp:    bpp,
		order:  order,
		data:   make([]byte, n),
	}, nil
}

// Width, Height and Depth return the texture's dimensions.
func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }
func (t *Texture) Depth() int  { return t.depth }

// Type returns the texture's color type.
func (t *Texture) Type() color.Type { return t.typ }

// BPP returns the number of bytes occupied by a single texel.
func (t *Texture) BPP() int { return t.bpp }

// Order returns the texture's texel order.
func (t *Texture) Order() Order { return t.order }

// index computes the flat texel index of (x, y, z) according to
// the texture's Order.
func (t *Texture) index(x, y, z int) int {
	if t.order == Swizzled {
		return t.swizzledIndex(x, y, z)
	}
	return x + t.width*y + t.width*t.height*z
}

// swizzledIndex computes the Morton-interleaved index of (x, y, z)
// within 4×4×4 tiles, the tiles themselves being addressed
// row-major.
func (t *Texture) swizzledIndex(x, y, z int) int {
	const tile = 4
	tw := (t.width + tile - 1) / tile
	th := (t.height + tile - 1) / tile

	tx, ty, tz := x/tile, y/tile, z/tile
	lx, ly, lz := x%tile, y%tile, z%tile

	tileIdx := tx + tw*ty + tw*th*tz
	within := interleave3(lx, ly, lz)
	return tileIdx*tile*tile*tile + within
}

// interleave3 bit-interleaves the low 2 bits of x, y and z (the
// coordinates within a 4×4×4 tile) into a single 6-bit index, in
// x,y,z,x,y,z,... bit order.
func interleave3(x, y, z int) int {
	var idx int
	for bit := 0; bit < 2; bit++ {
		idx |= (x >> bit & 1) << (3 * bit)
		idx |= (y >> bit & 1) << (3*bit + 1)
		idx |= (z >> bit & 1) << (3*bit + 2)
	}
	return idx
}

// Texel returns the raw byte slice backing the texel at (x, y, z).
// The returned slice has length BPP(); mutating it writes through
// to the texture.
func (t *Texture) Texel(x, y, z int) []byte {
	i := t.index(x, y, z) * t.bpp
	return t.data[i : i+t.bpp]
}

// At decodes the texel at (x, y, z) into a normalized color.
func (t *Texture) At(x, y, z int) color.NColor {
	return color.Decode(t.typ, t.Texel(x, y, z))
}

// Set encodes c into the texel at (x, y, z).
func (t *Texture) Set(x, y, z int, c color.NColor) {
	color.Encode(t.typ, c, t.Texel(x, y, z))
}

// Clear broadcasts c to every texel, using a memset specialized
// on the element size (spec.md §4.5: "a fast-memset specialized
// on element size (4-byte, 8-byte, generic)").
func (t *Texture) Clear(c color.NColor) {
	var texel [32]byte
	color.Encode(t.typ, c, texel[:t.bpp])
	switch t.bpp {
	case 4:
		clear4(t.data, texel[:4])
	case 8:
		clear8(t.data, texel[:8])
	default:
		clearGeneric(t.data, texel[:t.bpp])
	}
}

func clear4(dst, pattern []byte) {
	p := uint32(pattern[0]) | uint32(pattern[1])<<8 | uint32(pattern[2])<<16 | uint32(pattern[3])<<24
	for i := 0; i+4 <= len(dst); i += 4 {
		dst[i] = byte(p)
		dst[i+1] = byte(p >> 8)
		dst[i+2] = byte(p >> 16)
		dst[i+3] = byte(p >> 24)
	}
}

func clear8(dst, pattern []byte) {
	for i := 0; i+8 <= len(dst); i += 8 {
		copy(dst[i:i+8], pattern)
	}
}

func clearGeneric(dst, pattern []byte) {
	n := len(pattern)
	if n == 0 {
		return
	}
	for i := 0; i+n <= len(dst); i += n {
		copy(dst[i:i+n], pattern)
	}
}
