// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"testing"
)

// TestOpenWindowWrapsPlatformFailure exercises the wsi boundary: in
// this headless test environment wsi has no backend, so OpenWindow
// must surface that as ErrPlatform rather than wsi's own sentinel.
func TestOpenWindowWrapsPlatformFailure(t *testing.T) {
	win, err := OpenWindow(320, 240, "test")
	if win != nil {
		t.Fatalf("OpenWindow in a headless environment: have non-nil Window %v, want nil", win)
	}
	if !errors.Is(err, ErrPlatform) {
		t.Fatalf("OpenWindow in a headless environment: have %v, want ErrPlatform", err)
	}
}
