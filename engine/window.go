// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"fmt"

	"github.com/kvlabs/swrast/wsi"
)

// OpenWindow creates a presentation window through wsi, wrapping any
// failure (including the headless/no-backend case) in ErrPlatform so
// callers can tell a platform failure apart from a configuration or
// draw-call error (spec.md §6, §7). A caller that obtains a Window
// drives its own platform-specific surface and calls Present to blit
// a rendered frame into it; wsi's job ends at sizing and event
// dispatch (Dispatch, SetWindowHandler/SetKeyboardHandler/
// SetPointerHandler), the same division of labor the teacher's wsi
// package draws between window-system glue and the renderer.
func OpenWindow(width, height int, title string) (wsi.Window, error) {
	win, err := wsi.NewWindow(width, height, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatform, err)
	}
	return win, nil
}
