// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package color

// BlendMode selects how a fragment's output color combines with
// the color already stored in the destination attachment
// (spec.md §4.4's fragment pipeline, "color blend stage").
type BlendMode int

// Blend modes.
const (
	// BlendOff writes src over dst unmodified.
	BlendOff BlendMode = iota
	// BlendAlpha is conventional source-over compositing using
	// the source alpha channel: out = src*src.a + dst*(1-src.a).
	BlendAlpha
	// BlendPremultiplied assumes src's color channels are
	// already multiplied by its alpha: out = src + dst*(1-src.a).
	BlendPremultiplied
	// BlendAdditive adds the source color to the destination:
	// out = src + dst.
	BlendAdditive
	// BlendScreen inverts, multiplies and inverts again:
	// out = 1 - (1-src)*(1-dst).
	BlendScreen
)

// Apply combines src over dst according to mode and returns the
// resulting color. Alpha is carried through unclamped except by
// the caller's eventual Encode, matching a hardware blend unit
// that only clamps on writeback.
func Apply(mode BlendMode, src, dst NColor) NColor {
	switch mode {
	case BlendOff:
		return src
	case BlendAlpha:
		a := src[3]
		var out NColor
		for i := 0; i < 3; i++ {
			out[i] = src[i]*a + dst[i]*(1-a)
		}
		out[3] = a + dst[3]*(1-a)
		return out
	case BlendPremultiplied:
		a := src[3]
		var out NColor
		for i := 0; i < 3; i++ {
			out[i] = src[i] + dst[i]*(1-a)
		}
		out[3] = a + dst[3]*(1-a)
		return out
	case BlendAdditive:
		var out NColor
		for i := 0; i < 3; i++ {
			out[i] = src[i] + dst[i]
		}
		out[3] = dst[3]
		return out
	case BlendScreen:
		var out NColor
		for i := 0; i < 3; i++ {
			out[i] = 1 - (1-src[i])*(1-dst[i])
		}
		out[3] = dst[3]
		return out
	default:
		panic("color: invalid BlendMode")
	}
}
