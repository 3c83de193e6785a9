// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package wsi

import "testing"

type noopHandler struct{}

func (noopHandler) WindowClose(Window)                   {}
func (noopHandler) WindowResize(Window, int, int)        {}
func (noopHandler) KeyboardIn(Window)                    {}
func (noopHandler) KeyboardOut(Window)                   {}
func (noopHandler) KeyboardKey(Key, bool, Modifier)      {}
func (noopHandler) PointerIn(Window, int, int)           {}
func (noopHandler) PointerOut(Window)                    {}
func (noopHandler) PointerMotion(int, int)               {}
func (noopHandler) PointerButton(Button, bool, int, int) {}

func TestPlatformInUseIsNoneWithoutABackend(t *testing.T) {
	if p := PlatformInUse(); p != None {
		t.Fatalf("PlatformInUse: have %v, want None", p)
	}
}

func TestNewWindowFailsWithoutABackend(t *testing.T) {
	win, err := NewWindow(480, 360, "headless")
	if win != nil || err != errMissing {
		t.Fatalf("NewWindow: have (%v, %v), want (nil, %v)", win, err, errMissing)
	}
	if n := len(Windows()); n != 0 {
		t.Fatalf("len(Windows()): have %d, want 0", n)
	}
}

func TestDispatchAndSetAppNameAreNoops(t *testing.T) {
	// Dummy Dispatch/SetAppName must not panic. SetAppName still
	// records the name for AppName, though no backend displays it.
	Dispatch()
	SetAppName("won't be displayed")
	if s := AppName(); s != "won't be displayed" {
		t.Fatalf("AppName: have %q, want %q (SetAppName still records the string)", s, "won't be displayed")
	}
}

func TestSetHandlersAcceptsImplementation(t *testing.T) {
	SetWindowHandler(noopHandler{})
	SetKeyboardHandler(noopHandler{})
	SetPointerHandler(noopHandler{})
}
