// Package scene provides superposition of multiple 2D field sources over a spatial index.
package scene

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/magnet"
)

// queryTol is the half-extent of the degenerate box used to turn a point
// query into an R-tree intersection query.
const queryTol float64 = 1e-12

// Scene represents a collection of 2D field sources whose fields superpose.
// Sources are held in an R-tree keyed on their influence boxes, so point
// queries skip sources whose contribution is provably below each source's
// remanence scaled by field.ErrCutoff.  A Scene is safe for concurrent
// reads once assembly is complete; it is itself a magnet.Source2.
type Scene struct {
	sources []magnet.Spatial2
	index   *rtreego.Rtree
}

// New creates a new scene containing the given sources.
func New(sources ...magnet.Spatial2) *Scene {
	s := &Scene{
		sources: make([]magnet.Spatial2, 0, len(sources)),
		index:   rtreego.NewTree(2, 2, 8),
	}
	for _, src := range sources {
		s.Add(src)
	}
	return s
}

// Add adds a source to the scene.
// Adding is not safe to interleave with field queries.
func (s *Scene) Add(src magnet.Spatial2) {
	s.sources = append(s.sources, src)
	s.index.Insert(src)
}

// Size returns the number of sources in the scene.
func (s *Scene) Size() int {
	return len(s.sources)
}

// Field returns the superposed magnetic field of every in-range source at
// the point p.  Contributions combine by vector addition, and a singular
// contribution marks the whole sample singular.
func (s *Scene) Field(p geom.Vector2) (field.Sample2, error) {
	var sample field.Sample2
	for _, hit := range s.index.SearchIntersect(rtreego.Point{p.X, p.Y}.ToRect(queryTol)) {
		src := hit.(magnet.Spatial2)

		contribution, err := src.Field(p)
		if err != nil {
			return field.Sample2{}, fmt.Errorf("scene field at (%v, %v): %w", p.X, p.Y, err)
		}
		sample = sample.Combine(contribution)
	}
	return sample, nil
}
