// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package color

import (
	"encoding/binary"
	"math"
)

func leU16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func leU32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func leU64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func putLeU16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func putLeU32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func putLeU64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

func f32Bits(v float32) uint32        { return math.Float32bits(v) }
func f32FromBits(b uint32) float32    { return math.Float32frombits(b) }
func f64Bits(v float64) uint64        { return math.Float64bits(v) }
func f64FromBits(b uint64) float64    { return math.Float64frombits(b) }

// f32ToF16 converts v to IEEE 754 binary16, rounding to nearest
// and flushing overflow to infinity. Subnormal results are
// flushed to zero; this package only uses f16 for color data,
// which never needs subnormal precision.
func f32ToF16(v float32) uint16 {
	bits := math.Float32bits(v)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff

	switch {
	case (bits & 0x7fffffff) == 0:
		return sign
	case exp >= 0x1f:
		return sign | 0x7c00 // infinity
	case exp <= 0:
		return sign // flush subnormals to zero
	default:
		h := sign | uint16(exp)<<10 | uint16(mant>>13)
		if mant&0x1000 != 0 {
			h++ // round half up; a mantissa carry moves into the exponent
		}
		return h
	}
}

// f16ToF32 converts an IEEE 754 binary16 value to float32.
func f16ToF32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h & 0x3ff)

	switch {
	case exp == 0 && mant == 0:
		return math.Float32frombits(sign)
	case exp == 0x1f:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7f800000 | mant<<13)
	case exp == 0:
		// Subnormal binary16; normalize.
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &^= 0x400
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}
