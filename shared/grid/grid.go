// Package grid provides rectangular observation lattices and bulk field evaluation over them.
package grid

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/magnet"
)

// Grid represents a rectangular lattice of observation points.
// Points are addressed by column i in [0, Nx) and row j in [0, Ny).
type Grid struct {
	Min, Max geom.Vector2
	Nx, Ny   int
}

// New creates an Nx-by-Ny grid spanning the rectangle from min to max
// inclusive on both ends.
func New(min, max geom.Vector2, nx, ny int) (Grid, error) {
	if nx < 1 || ny < 1 {
		return Grid{}, fmt.Errorf("grid size %dx%d: at least one point per axis", nx, ny)
	}
	if max.X < min.X || max.Y < min.Y {
		return Grid{}, fmt.Errorf("grid extent (%v, %v) to (%v, %v): max below min", min.X, min.Y, max.X, max.Y)
	}
	return Grid{Min: min, Max: max, Nx: nx, Ny: ny}, nil
}

// Point returns the observation point at column i, row j.
func (g Grid) Point(i, j int) geom.Vector2 {
	return geom.Vector2{
		X: g.Min.X + float64(i)*g.stepX(),
		Y: g.Min.Y + float64(j)*g.stepY(),
	}
}

// stepX returns the lattice spacing along x.
func (g Grid) stepX() float64 {
	if g.Nx < 2 {
		return 0.0
	}
	return (g.Max.X - g.Min.X) / float64(g.Nx-1)
}

// stepY returns the lattice spacing along y.
func (g Grid) stepY() float64 {
	if g.Ny < 2 {
		return 0.0
	}
	return (g.Max.Y - g.Min.Y) / float64(g.Ny-1)
}

// Result holds the samples of one bulk evaluation in row-major order.
type Result struct {
	Grid    Grid
	Samples []field.Sample2
}

// At returns the sample at column i, row j.
func (r *Result) At(i, j int) field.Sample2 {
	return r.Samples[j*r.Grid.Nx+i]
}

// Map evaluates src at every grid point sequentially.
func (g Grid) Map(src magnet.Source2) (*Result, error) {
	res := &Result{Grid: g, Samples: make([]field.Sample2, g.Nx*g.Ny)}
	for j := 0; j < g.Ny; j++ {
		if err := g.mapRow(src, res, j); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// MapParallel evaluates src at every grid point, partitioning rows across
// at most workers goroutines.  Each evaluation is pure, and rows write to
// disjoint ranges of the result, so no synchronization is needed beyond
// the group itself.  The first error cancels the remaining rows.
// If workers is not positive, one worker per CPU is used.
func (g Grid) MapParallel(ctx context.Context, src magnet.Source2, workers int) (*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	res := &Result{Grid: g, Samples: make([]field.Sample2, g.Nx*g.Ny)}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for j := 0; j < g.Ny; j++ {
		j := j
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.mapRow(src, res, j)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// mapRow evaluates src across row j of the grid.
func (g Grid) mapRow(src magnet.Source2, res *Result, j int) error {
	for i := 0; i < g.Nx; i++ {
		sample, err := src.Field(g.Point(i, j))
		if err != nil {
			return fmt.Errorf("grid point (%d, %d): %w", i, j, err)
		}
		res.Samples[j*g.Nx+i] = sample
	}
	return nil
}
