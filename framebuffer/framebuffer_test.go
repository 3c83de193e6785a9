// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framebuffer

import (
	"errors"
	"testing"

	"github.com/kvlabs/swrast/color"
	"github.com/kvlabs/swrast/texture"
)

func mustTex(t *testing.T, w, h, d int, typ color.Type, order texture.Order) *texture.Texture {
	t.Helper()
	tex, err := texture.New(w, h, d, typ, order)
	if err != nil {
		t.Fatal(err)
	}
	return tex
}

func TestNewMismatchedSize(t *testing.T) {
	c := mustTex(t, 4, 4, 1, color.RGBAU8, texture.Ordered)
	d := mustTex(t, 8, 8, 1, color.Type{Layout: color.R, Elem: color.F32}, texture.Ordered)
	if _, err := New(c, d); !errors.Is(err, ErrSize) {
		t.Fatalf("New with mismatched sizes:\nhave %v\nwant ErrSize", err)
	}
}

func TestNewBadColorType(t *testing.T) {
	c := mustTex(t, 4, 4, 1, color.Type{Layout: color.R, Elem: color.F32}, texture.Ordered)
	if _, err := New(c, nil); !errors.Is(err, ErrColorType) {
		t.Fatalf("New with depth type as color:\nhave %v\nwant ErrColorType", err)
	}
}

func TestNewBadDepthType(t *testing.T) {
	c := mustTex(t, 4, 4, 1, color.RGBAU8, texture.Ordered)
	d := mustTex(t, 4, 4, 1, color.RGBAU8, texture.Ordered)
	if _, err := New(c, d); !errors.Is(err, ErrDepthType) {
		t.Fatalf("New with non-depth type as depth:\nhave %v\nwant ErrDepthType", err)
	}
}

func TestClear(t *testing.T) {
	c := mustTex(t, 4, 4, 1, color.RGBAU8, texture.Ordered)
	d := mustTex(t, 4, 4, 1, color.Type{Layout: color.R, Elem: color.F32}, texture.Ordered)
	fb, err := New(c, d)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(color.NColor{0.2, 0.4, 0.6, 1}, 1)
	got := fb.Color().At(2, 2, 0)
	if got[3] != 1 {
		t.Fatalf("Color().At after Clear:\nhave %v\nwant alpha 1", got)
	}
	if gd := fb.Depth().At(2, 2, 0); gd[0] != 1 {
		t.Fatalf("Depth().At after Clear:\nhave %v\nwant 1", gd[0])
	}
}

func TestNewNilDepthAllowed(t *testing.T) {
	c := mustTex(t, 4, 4, 1, color.RGBAU8, texture.Ordered)
	fb, err := New(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Depth() != nil {
		t.Fatal("Depth() should be nil when no depth attachment was provided")
	}
}
