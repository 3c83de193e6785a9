// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package shader

import "testing"

func TestDepthFuncKeep(t *testing.T) {
	for _, x := range [...]struct {
		f        DepthFunc
		src, dst float32
		want     bool
	}{
		{DepthLT, 0.4, 0.5, true},
		{DepthLT, 0.5, 0.5, false},
		{DepthLE, 0.5, 0.5, true},
		{DepthGT, 0.6, 0.5, true},
		{DepthGE, 0.5, 0.5, true},
		{DepthEQ, 0.5, 0.5, true},
		{DepthEQ, 0.4, 0.5, false},
		{DepthNE, 0.4, 0.5, true},
		{DepthOff, 100, -100, true},
	} {
		if ok := x.f.Keep(x.src, x.dst); ok != x.want {
			t.Fatalf("DepthFunc.Keep(%v, %v, %v):\nhave %t\nwant %t", x.f, x.src, x.dst, ok, x.want)
		}
	}
}

func TestDefaultPipelineState(t *testing.T) {
	s := DefaultPipelineState()
	if s.NumRenderTargets != 1 {
		t.Fatalf("DefaultPipelineState.NumRenderTargets:\nhave %d\nwant 1", s.NumRenderTargets)
	}
	if s.DepthFunc != DepthOff {
		t.Fatalf("DefaultPipelineState.DepthFunc:\nhave %v\nwant DepthOff", s.DepthFunc)
	}
	if !s.PerspectiveCorrect {
		t.Fatal("DefaultPipelineState.PerspectiveCorrect: have false, want true")
	}
}
