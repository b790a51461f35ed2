// Package magnet provides uniformly-magnetized source descriptors and the
// closed-form kernels that evaluate their fields.
package magnet

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Source2 is the capability interface for 2D field sources.
// Given an observation point in global coordinates, a source produces the
// field it contributes there, or an error when the point lies outside the
// kernel's valid domain.  Implementations are immutable after construction
// and safe for concurrent use.
type Source2 interface {
	Field(p geom.Vector2) (field.Sample2, error)
}

// Source3 is the capability interface for 3D field sources.
type Source3 interface {
	Field(p geom.Vector3) (field.Sample3, error)
}

// Spatial2 is implemented by 2D sources that can bound their own influence,
// allowing a scene to index them spatially.
type Spatial2 interface {
	Source2

	// Bounds returns the axis-aligned box outside which the source's
	// contribution is provably below field.ErrCutoff of its remanence.
	Bounds() rtreego.Rect
}

// Every shape satisfies its dimension's interface by value.
var (
	_ Spatial2 = Rectangle{}
	_ Spatial2 = Circle{}
	_ Source3  = Prism{}
	_ Source3  = Sphere{}
	_ Source3  = Cylinder{}
)

// influenceBounds builds the influence box for a source centered at c whose
// far field is bounded by jr*(size/r)^falloff, where falloff is 2 for 2D
// sources and 3 for 3D cross sections.
func influenceBounds(c geom.Vector2, size float64, falloff float64) rtreego.Rect {
	radius := size * math.Pow(1.0/field.ErrCutoff, 1.0/falloff)
	bounds, err := rtreego.NewRect(rtreego.Point{c.X - radius, c.Y - radius}, []float64{2.0 * radius, 2.0 * radius})
	if err != nil {
		panic(err)
	}
	return bounds
}

// radians converts an angle in degrees to radians.
func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// guard intercepts an indeterminate kernel result.
// A non-finite value corresponds to an observation point exactly on a magnet
// boundary, where the chosen formula's branch is singular even though the
// physical field is finite.  The value is replaced with zero and flagged.
func guard(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0, false
	}
	return v, true
}
