package magnet

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Rectangle represents a uniformly-magnetized rectangular region in 2D space.
// It is immutable after construction; all derived quantities are computed
// once and never recomputed per query.
type Rectangle struct {
	A, B     float64      // Half-width and half-height.
	Center   geom.Vector2 // Position of the rectangle's center.
	Rotation float64      // Rotation of the rectangle about its center, in degrees.

	Jr    float64 // Remanent magnetization magnitude.
	Theta float64 // Magnetization angle in degrees, measured in the global frame.
	Jx    float64 // Global-frame magnetization component along x.
	Jy    float64 // Global-frame magnetization component along y.

	// Magnetization components in the magnet's local frame.
	// These coincide with Jx and Jy when Rotation is zero.
	ljx, ljy float64
	rot      float64 // Rotation in radians.
}

// NewRectangle creates a new rectangle of full width w and full height h
// centered at center, rotated counter-clockwise by rotation degrees, with
// remanence jr magnetized at theta degrees from the global x axis.
// The half-extents are w/2 and h/2.
func NewRectangle(w, h float64, center geom.Vector2, rotation, jr, theta float64) (Rectangle, error) {
	if w <= 0.0 || h <= 0.0 {
		return Rectangle{}, fmt.Errorf("rectangle dimensions %vx%v: %w", w, h, field.ErrInvalidGeometry)
	}
	if jr <= 0.0 {
		return Rectangle{}, fmt.Errorf("rectangle remanence %v: %w", jr, field.ErrInvalidGeometry)
	}

	rot := radians(rotation)
	sinTheta, cosTheta := math.Sincos(radians(theta))
	sinLocal, cosLocal := math.Sincos(radians(theta - rotation))

	return Rectangle{
		A:        w / 2.0,
		B:        h / 2.0,
		Center:   center,
		Rotation: rotation,
		Jr:       jr,
		Theta:    theta,
		Jx:       jr * cosTheta,
		Jy:       jr * sinTheta,
		ljx:      jr * cosLocal,
		ljy:      jr * sinLocal,
		rot:      rot,
	}, nil
}

// Field returns the magnetic field contributed by the rectangle m at the
// point p (in global coordinates).
// The point is transformed into the magnet's local, axis-aligned frame, the
// relevant axis-kernel pairs are evaluated, and their contributions are
// superposed.  An indeterminate axis contribution is zeroed and flagged on
// the returned sample rather than failing the whole evaluation.
func (m Rectangle) Field(p geom.Vector2) (field.Sample2, error) {
	local := p.Sub(m.Center)
	if m.rot != 0.0 {
		local = local.Rotate(-m.rot)
	}

	var sample field.Sample2
	if math.Abs(m.ljx/m.Jr) > field.FPCutoff {
		b, ok := xMagField(local, m.A, m.B, m.ljx)
		sample.B = sample.B.Add(b)
		sample.Singular = sample.Singular || !ok
	}
	if math.Abs(m.ljy/m.Jr) > field.FPCutoff {
		b, ok := yMagField(local, m.A, m.B, m.ljy)
		sample.B = sample.B.Add(b)
		sample.Singular = sample.Singular || !ok
	}

	if m.rot != 0.0 {
		sample.B = sample.B.Rotate(m.rot)
	}
	return sample, nil
}

// Bounds gets the influence box of the rectangle m for scene indexing.
func (m Rectangle) Bounds() rtreego.Rect {
	return influenceBounds(m.Center, math.Max(m.A, m.B), 2.0)
}

// xMagField evaluates the field of a rectangle magnetized purely along x.
// If either kernel is locally indeterminate, the whole axis contribution is
// substituted with zero and false is returned.
func xMagField(local geom.Vector2, a, b, j float64) (geom.Vector2, bool) {
	bx, okX := guard(Bxx(local.X, local.Y, a, b, j))
	by, okY := guard(Byx(local.X, local.Y, a, b, j))
	if !okX || !okY {
		return geom.Vector2{}, false
	}
	return geom.Vector2{X: bx, Y: by}, true
}

// yMagField evaluates the field of a rectangle magnetized purely along y.
func yMagField(local geom.Vector2, a, b, j float64) (geom.Vector2, bool) {
	bx, okX := guard(Bxy(local.X, local.Y, a, b, j))
	by, okY := guard(Byy(local.X, local.Y, a, b, j))
	if !okX || !okY {
		return geom.Vector2{}, false
	}
	return geom.Vector2{X: bx, Y: by}, true
}
