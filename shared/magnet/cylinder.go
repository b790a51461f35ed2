package magnet

import (
	"fmt"
	"math"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Cylinder represents a finite cylinder magnetized along its own axis,
// which is aligned with the global z axis.  Only points on that axis have
// an elementary closed form; off-axis queries return a DomainError so that
// callers can route them to an integration-based solver honoring the same
// Source3 contract.
type Cylinder struct {
	R      float64      // Radius.
	L      float64      // Half-length along z.
	Center geom.Vector3 // Position of the cylinder's center.

	Jr float64 // Remanent magnetization magnitude, directed along +z.
}

// axisTol is the fractional radial offset below which a point is treated
// as on-axis.  The axial closed form is the zeroth-order term of the
// off-axis expansion, so a tiny radial offset changes the field by O(tol^2).
const axisTol float64 = 1e-9

// NewCylinder creates a new axially-magnetized cylinder of radius r and
// full length l centered at center, with remanence jr along +z.
// The half-length is l/2.
func NewCylinder(r, l float64, center geom.Vector3, jr float64) (Cylinder, error) {
	if r <= 0.0 || l <= 0.0 {
		return Cylinder{}, fmt.Errorf("cylinder dimensions r=%v l=%v: %w", r, l, field.ErrInvalidGeometry)
	}
	if jr <= 0.0 {
		return Cylinder{}, fmt.Errorf("cylinder remanence %v: %w", jr, field.ErrInvalidGeometry)
	}
	return Cylinder{R: r, L: l / 2.0, Center: center, Jr: jr}, nil
}

// Field returns the magnetic field contributed by the cylinder m at the
// point p (in global coordinates), valid on the cylinder's axis only.
func (m Cylinder) Field(p geom.Vector3) (field.Sample3, error) {
	local := p.Sub(m.Center)
	if math.Hypot(local.X, local.Y) > axisTol*m.R {
		return field.Sample3{}, &field.DomainError{
			Shape:  "cylinder",
			Detail: fmt.Sprintf("point (%v, %v, %v) is off the magnetization axis", p.X, p.Y, p.Z),
		}
	}

	zPlus := local.Z + m.L
	zMinus := local.Z - m.L
	bz := m.Jr / 2.0 * (zPlus/math.Sqrt(zPlus*zPlus+m.R*m.R) -
		zMinus/math.Sqrt(zMinus*zMinus+m.R*m.R))
	return field.Sample3{B: geom.Vector3{Z: bz}}, nil
}
