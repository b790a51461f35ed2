package magnet

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Circle represents a uniformly-magnetized circular region in 2D space,
// the cross section of an infinitely long transversely-magnetized cylinder.
// Unlike the rectangle, its field has a closed form with no logarithmic or
// arctangent branches: the interior field is uniform, and the exterior
// field is that of a 2D dipole.
type Circle struct {
	R      float64      // Radius.
	Center geom.Vector2 // Position of the circle's center.

	Jr    float64 // Remanent magnetization magnitude.
	Theta float64 // Magnetization angle in degrees.
	Jx    float64 // Magnetization component along x.
	Jy    float64 // Magnetization component along y.
}

// NewCircle creates a new circle of radius r centered at center, with
// remanence jr magnetized at theta degrees from the x axis.
func NewCircle(r float64, center geom.Vector2, jr, theta float64) (Circle, error) {
	if r <= 0.0 {
		return Circle{}, fmt.Errorf("circle radius %v: %w", r, field.ErrInvalidGeometry)
	}
	if jr <= 0.0 {
		return Circle{}, fmt.Errorf("circle remanence %v: %w", jr, field.ErrInvalidGeometry)
	}

	sinTheta, cosTheta := math.Sincos(radians(theta))
	return Circle{
		R:      r,
		Center: center,
		Jr:     jr,
		Theta:  theta,
		Jx:     jr * cosTheta,
		Jy:     jr * sinTheta,
	}, nil
}

// Field returns the magnetic field contributed by the circle m at the point
// p (in global coordinates).  Points on the boundary use the interior
// branch.  Neither branch can produce an indeterminate value, so the
// returned sample is never singular.
func (m Circle) Field(p geom.Vector2) (field.Sample2, error) {
	jx, jy := m.Jx, m.Jy
	if math.Abs(jx/m.Jr) <= field.FPCutoff {
		jx = 0.0
	}
	if math.Abs(jy/m.Jr) <= field.FPCutoff {
		jy = 0.0
	}

	local := p.Sub(m.Center)
	rsq := local.Dot(local)
	if rsq <= m.R*m.R {
		return field.Sample2{B: geom.Vector2{X: jx / 2.0, Y: jy / 2.0}}, nil
	}

	// Exterior: 2D dipole of moment per unit length J*pi*R^2.
	xx := local.X * local.X
	yy := local.Y * local.Y
	xy2 := 2.0 * local.X * local.Y
	scale := m.R * m.R / (2.0 * rsq * rsq)
	return field.Sample2{B: geom.Vector2{
		X: scale * (jx*(xx-yy) + jy*xy2),
		Y: scale * (jx*xy2 + jy*(yy-xx)),
	}}, nil
}

// Bounds gets the influence box of the circle m for scene indexing.
func (m Circle) Bounds() rtreego.Rect {
	return influenceBounds(m.Center, m.R, 2.0)
}
