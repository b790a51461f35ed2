package main

import (
	"context"
	"math"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mwindels/magnet-solver/shared/colour"
	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/grid"
	"github.com/mwindels/magnet-solver/shared/input"
	"github.com/mwindels/magnet-solver/shared/scene"
	"github.com/mwindels/magnet-solver/shared/screen"
)

// These constants control how far one frame of input moves the viewport.
const (
	panFraction float64 = 0.05
	zoomFactor  float64 = 1.25
)

// initialHalfWidth is the world-space half-width of the starting viewport.
const initialHalfWidth float64 = 5.0

// viewport maps the window onto a world-space rectangle.
type viewport struct {
	center    geom.Vector2
	halfWidth float64
}

// bounds returns the world-space rectangle the viewport covers for a
// window with the given aspect ratio.
func (v viewport) bounds(aspect float64) (geom.Vector2, geom.Vector2) {
	halfHeight := v.halfWidth / aspect
	return geom.Vector2{X: v.center.X - v.halfWidth, Y: v.center.Y - halfHeight},
		geom.Vector2{X: v.center.X + v.halfWidth, Y: v.center.Y + halfHeight}
}

// draw renders the field magnitude over the viewport onto the screen.
// Magnitudes are tone mapped logarithmically against the brightest pixel
// in the frame, and singular pixels render white.
func draw(scr *screen.Screen, s *scene.Scene, view viewport) error {
	width, height := scr.Size()

	min, max := view.bounds(float64(width) / float64(height))
	g, err := grid.New(min, max, width, height)
	if err != nil {
		return err
	}
	res, err := g.MapParallel(context.Background(), s, 0)
	if err != nil {
		return err
	}

	peak := 0.0
	for _, sample := range res.Samples {
		if m := sample.B.Len(); m > peak {
			peak = m
		}
	}

	scr.Clear()
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			// Row zero of the grid is the bottom of the viewport.
			sample := res.At(i, height-1-j)
			if sample.Singular {
				scr.Set(i, j, colour.NewRGB(255, 255, 255))
			} else if peak > 0.0 {
				scr.Set(i, j, colour.Heat(math.Log1p(sample.B.Len())/math.Log1p(peak)))
			} else {
				scr.Set(i, j, colour.Heat(0.0))
			}
		}
	}
	scr.Present()
	return nil
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// Make sure we have enough parameters.
	if len(os.Args) != 4 {
		log.Fatal("Improper parameters.  This program requires the parameters:" +
			"\n\t(1) scene file path" +
			"\n\t(2) window width" +
			"\n\t(3) window height")
	}

	// Parse the command line parameters.
	s, err := scene.FromFile(os.Args[1])
	if err != nil {
		log.Fatalf("Could not read in scene %q: %v.", os.Args[1], err)
	}
	width, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse window width %q: %v.", os.Args[2], err)
	}
	height, err := strconv.ParseUint(os.Args[3], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse window height %q: %v.", os.Args[3], err)
	}

	// Set up the screen.
	scr, err := screen.Start("Magnet Field Viewer", int(width), int(height))
	if err != nil {
		log.Fatalf("Could not start screen: %v.", err)
	}
	defer scr.Stop()

	log.Infow("viewer started", "scene", os.Args[1], "magnets", s.Size())

	// Parse user input and redraw whenever the viewport moves.
	view := viewport{halfWidth: initialHalfWidth}
	dirty := true
	var prevUpdate, currentUpdate uint32
	for running, panDirs, zoom := true, uint8(0), 0; running; {
		prevUpdate = sdl.GetTicks()

		// Collect new inputs.
		running, panDirs, zoom = input.HandleInputs(panDirs)

		if panDirs != 0 || zoom != 0 {
			step := panFraction * view.halfWidth
			if panDirs&input.PanUp != 0 {
				view.center.Y += step
			}
			if panDirs&input.PanDown != 0 {
				view.center.Y -= step
			}
			if panDirs&input.PanLeft != 0 {
				view.center.X -= step
			}
			if panDirs&input.PanRight != 0 {
				view.center.X += step
			}
			view.halfWidth *= math.Pow(zoomFactor, -float64(zoom))
			dirty = true
		}

		if dirty {
			if err := draw(scr, s, view); err != nil {
				log.Fatalf("Could not draw frame: %v.", err)
			}
			dirty = false
		}

		// If this frame took less time than a frame should, wait.
		currentUpdate = sdl.GetTicks()
		if currentUpdate-prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
