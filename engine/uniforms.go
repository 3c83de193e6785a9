// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"encoding/binary"
	"math"

	"github.com/kvlabs/swrast/linear"
	"github.com/kvlabs/swrast/shader"
)

// M4Size is the byte size of an encoded linear.M4 in a
// shader.UniformBuffer (16 float32 values in 4 columns, little-endian).
const M4Size = 16 * 4

// PutM4 encodes m into buf at offset in column-major order, the
// layout a vertex shader's Uniforms slice is expected to decode its
// instance world matrix from.
func PutM4(buf shader.UniformBuffer, offset int, m linear.M4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			i := offset + (col*4+row)*4
			binary.LittleEndian.PutUint32(buf[i:i+4], math.Float32bits(m[col][row]))
		}
	}
}

// M4At decodes the linear.M4 previously written by PutM4 at offset.
func M4At(buf shader.UniformBuffer, offset int) linear.M4 {
	var m linear.M4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			i := offset + (col*4+row)*4
			m[col][row] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i : i+4]))
		}
	}
	return m
}
