// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// These constants are pan direction masks that should be applied to the second return value of HandleInputs.
const (
	PanUp uint8 = 1 << iota
	PanLeft
	PanDown
	PanRight
)

// HandleInputs parses all input events waiting in the queue.
// This function returns: (running, new pan directions, zoom steps).
// Positive zoom steps zoom in, negative steps zoom out.
func HandleInputs(panDirs uint8) (bool, uint8, int) {
	running := true // We assume this to be true.
	zoom := 0

	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			keyEvent := event.(*sdl.KeyboardEvent)
			if keyEvent.Keysym.Mod == sdl.KMOD_NONE {
				if keyEvent.Type == sdl.KEYDOWN {
					switch keyEvent.Keysym.Sym {
					case sdl.K_ESCAPE:
						running = false
					case sdl.K_UP:
						if panDirs&PanDown != 0 {
							panDirs &^= PanUp | PanDown
						} else {
							panDirs |= PanUp
						}
					case sdl.K_LEFT:
						if panDirs&PanRight != 0 {
							panDirs &^= PanLeft | PanRight
						} else {
							panDirs |= PanLeft
						}
					case sdl.K_DOWN:
						if panDirs&PanUp != 0 {
							panDirs &^= PanDown | PanUp
						} else {
							panDirs |= PanDown
						}
					case sdl.K_RIGHT:
						if panDirs&PanLeft != 0 {
							panDirs &^= PanRight | PanLeft
						} else {
							panDirs |= PanRight
						}
					case sdl.K_EQUALS, sdl.K_KP_PLUS:
						zoom++
					case sdl.K_MINUS, sdl.K_KP_MINUS:
						zoom--
					}
				} else if keyEvent.Type == sdl.KEYUP {
					switch keyEvent.Keysym.Sym {
					case sdl.K_UP:
						panDirs &^= PanUp
					case sdl.K_LEFT:
						panDirs &^= PanLeft
					case sdl.K_DOWN:
						panDirs &^= PanDown
					case sdl.K_RIGHT:
						panDirs &^= PanRight
					}
				}
			}
		}
	}
	return running, panDirs, zoom
}
