// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package texture

import (
	"image"
	"testing"

	"github.com/kvlabs/swrast/color"
)

func TestImageViewAt(t *testing.T) {
	tex, err := New(2, 2, 1, color.RGBAU8, Ordered)
	if err != nil {
		t.Fatal(err)
	}
	tex.Set(1, 0, 0, color.NColor{1, 0, 0, 1})

	v := ImageView{tex}
	if b := v.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("Bounds: have %v, want 2x2", b)
	}
	r, g, b2, a := v.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b2>>8 != 0 || a>>8 != 255 {
		t.Fatalf("At(1,0): have (%d,%d,%d,%d), want (255,0,0,255)", r>>8, g>>8, b2>>8, a>>8)
	}
}

func TestPresent(t *testing.T) {
	tex, err := New(2, 2, 1, color.RGBAU8, Ordered)
	if err != nil {
		t.Fatal(err)
	}
	tex.Clear(color.NColor{0, 1, 0, 1})

	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	Present(dst, tex)

	r, g, b, a := dst.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 || a>>8 != 255 {
		t.Fatalf("Present result at (0,0): have (%d,%d,%d,%d), want (0,255,0,255)", r>>8, g>>8, b>>8, a>>8)
	}
}
