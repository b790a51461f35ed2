// Package screen provides screen-related functionality for the interactive viewer.
package screen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mwindels/magnet-solver/shared/colour"
)

// These constants are timing values related to screen-updating.
const (
	FPS        uint32 = 30
	MsPerFrame uint32 = 1000 / FPS
)

// Screen wraps an SDL2 window and its drawing surface.
type Screen struct {
	window  *sdl.Window
	surface *sdl.Surface
}

// Start initializes SDL2 and opens a new window.
func Start(name string, width, height int) (*Screen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	return &Screen{window: window, surface: surface}, nil
}

// Stop closes the window and shuts down SDL2.
func (s *Screen) Stop() {
	s.window.Destroy()
	sdl.Quit()
}

// Size returns the dimensions of the drawing surface in pixels.
func (s *Screen) Size() (int, int) {
	return int(s.surface.W), int(s.surface.H)
}

// Set colours the pixel at column i, row j.
// Row zero is the top of the window.
func (s *Screen) Set(i, j int, c colour.RGB) {
	s.surface.Set(i, j, c)
}

// Clear blanks the drawing surface.
func (s *Screen) Clear() {
	s.surface.FillRect(nil, 0)
}

// Present pushes the drawing surface to the window.
func (s *Screen) Present() {
	s.window.UpdateSurface()
}
