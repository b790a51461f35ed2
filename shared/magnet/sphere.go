package magnet

import (
	"fmt"
	"math"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Sphere represents a uniformly-magnetized sphere.  Like the 2D circle, its
// field is branch-free: uniform inside, an exact point dipole outside.
type Sphere struct {
	R      float64      // Radius.
	Center geom.Vector3 // Position of the sphere's center.

	Jr         float64 // Remanent magnetization magnitude.
	Theta, Phi float64 // Magnetization angles in degrees (see Prism).
	Jx, Jy, Jz float64 // Magnetization components along each axis.
}

// NewSphere creates a new sphere of radius r centered at center, with
// remanence jr magnetized along the direction (theta, phi).
func NewSphere(r float64, center geom.Vector3, jr, theta, phi float64) (Sphere, error) {
	if r <= 0.0 {
		return Sphere{}, fmt.Errorf("sphere radius %v: %w", r, field.ErrInvalidGeometry)
	}
	if jr <= 0.0 {
		return Sphere{}, fmt.Errorf("sphere remanence %v: %w", jr, field.ErrInvalidGeometry)
	}

	sinTheta, cosTheta := math.Sincos(radians(theta))
	sinPhi, cosPhi := math.Sincos(radians(phi))
	return Sphere{
		R:      r,
		Center: center,
		Jr:     jr,
		Theta:  theta,
		Phi:    phi,
		Jx:     jr * sinPhi * cosTheta,
		Jy:     jr * sinPhi * sinTheta,
		Jz:     jr * cosPhi,
	}, nil
}

// Field returns the magnetic field contributed by the sphere m at the point
// p (in global coordinates).  Points on the boundary use the interior
// branch.  The returned sample is never singular.
func (m Sphere) Field(p geom.Vector3) (field.Sample3, error) {
	j := geom.Vector3{X: m.Jx, Y: m.Jy, Z: m.Jz}

	local := p.Sub(m.Center)
	rsq := local.Dot(local)
	if rsq <= m.R*m.R {
		return field.Sample3{B: j.Scale(2.0 / 3.0)}, nil
	}

	// Exterior: exact dipole, B = (R^3 / 3r^3) * (3(j.rhat)rhat - j).
	r := math.Sqrt(rsq)
	rhat := local.Scale(1.0 / r)
	scale := m.R * m.R * m.R / (3.0 * rsq * r)
	return field.Sample3{B: rhat.Scale(3.0 * j.Dot(rhat)).Sub(j).Scale(scale)}, nil
}
