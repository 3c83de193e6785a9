// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package color

// Decode reads a single texel of type t from b and returns it
// as an NColor. b must be at least t.Size() bytes long.
func Decode(t Type, b []byte) NColor {
	if t.IsPacked() {
		return decodePacked(t, b)
	}
	var c NColor
	c[3] = 1
	n := t.Layout.N()
	sz := t.Elem.Size()
	for i := 0; i < n; i++ {
		c[i] = decodeElem(t.Elem, b[i*sz:])
	}
	return c
}

// Encode writes c into b as a texel of type t. b must be at
// least t.Size() bytes long.
func Encode(t Type, c NColor, b []byte) {
	if t.IsPacked() {
		encodePacked(t, c, b)
		return
	}
	n := t.Layout.N()
	sz := t.Elem.Size()
	for i := 0; i < n; i++ {
		encodeElem(t.Elem, c[i], b[i*sz:])
	}
}

// Cast performs a saturating conversion of a single texel from
// color type src to color type dst, writing the result into out
// (which must be at least dst.Size() bytes long).
//
// Conversion goes through the common NColor representation:
// integer elements are normalized by dividing by the maximum
// value of the source type, and denormalized by multiplying by
// the maximum value of the destination type, clamping to the
// representable range at every step (spec.md §3's color_cast).
func Cast(dst, src Type, dstBuf, srcBuf []byte) {
	Encode(dst, Decode(src, srcBuf), dstBuf)
}

func decodeElem(e Elem, b []byte) float32 {
	switch e {
	case U8:
		return float32(b[0]) / float32(maxOfType(U8))
	case U16:
		return float32(leU16(b)) / float32(maxOfType(U16))
	case U32:
		return float32(leU32(b)) / float32(maxOfType(U32))
	case U64:
		return float32(leU64(b)) / float32(maxOfType(U64))
	case F16:
		return f16ToF32(leU16(b))
	case F32:
		return f32FromBits(leU32(b))
	case F64:
		return float32(f64FromBits(leU64(b)))
	default:
		panic("color: invalid Elem")
	}
}

func encodeElem(e Elem, v float32, b []byte) {
	switch e {
	case U8:
		b[0] = byte(clamp01(float64(v))*maxOfType(U8) + 0.5)
	case U16:
		putLeU16(b, uint16(clamp01(float64(v))*maxOfType(U16)+0.5))
	case U32:
		putLeU32(b, uint32(clamp01(float64(v))*maxOfType(U32)+0.5))
	case U64:
		// maxOfType(U64) rounds up to 2^64 as a float64, which does not
		// convert to uint64; saturate explicitly at the top.
		f := clamp01(float64(v)) * maxOfType(U64)
		if f >= maxOfType(U64) {
			putLeU64(b, ^uint64(0))
		} else {
			putLeU64(b, uint64(f+0.5))
		}
	case F16:
		putLeU16(b, f32ToF16(v))
	case F32:
		putLeU32(b, f32Bits(v))
	case F64:
		putLeU64(b, f64Bits(float64(v)))
	default:
		panic("color: invalid Elem")
	}
}
