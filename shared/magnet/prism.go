package magnet

import (
	"fmt"
	"math"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

// Prism represents a uniformly-magnetized, axis-aligned rectangular prism
// in 3D space.  The magnetization direction is given in spherical angles:
// theta is the azimuth in degrees from the +x axis in the xy plane, and phi
// is the polar angle in degrees from the +z axis.  A prism with phi = 90
// reduces to the 2D rectangle convention for theta.
type Prism struct {
	A, B, C float64      // Half-extents along x, y, and z.
	Center  geom.Vector3 // Position of the prism's center.

	Jr         float64 // Remanent magnetization magnitude.
	Theta, Phi float64 // Magnetization angles in degrees.
	Jx, Jy, Jz float64 // Magnetization components along each axis.
}

// NewPrism creates a new prism of full dimensions w, h, and d along x, y,
// and z, centered at center, with remanence jr magnetized along the
// direction (theta, phi).  The half-extents are w/2, h/2, and d/2.
func NewPrism(w, h, d float64, center geom.Vector3, jr, theta, phi float64) (Prism, error) {
	if w <= 0.0 || h <= 0.0 || d <= 0.0 {
		return Prism{}, fmt.Errorf("prism dimensions %vx%vx%v: %w", w, h, d, field.ErrInvalidGeometry)
	}
	if jr <= 0.0 {
		return Prism{}, fmt.Errorf("prism remanence %v: %w", jr, field.ErrInvalidGeometry)
	}

	sinTheta, cosTheta := math.Sincos(radians(theta))
	sinPhi, cosPhi := math.Sincos(radians(phi))
	return Prism{
		A:      w / 2.0,
		B:      h / 2.0,
		C:      d / 2.0,
		Center: center,
		Jr:     jr,
		Theta:  theta,
		Phi:    phi,
		Jx:     jr * sinPhi * cosTheta,
		Jy:     jr * sinPhi * sinTheta,
		Jz:     jr * cosPhi,
	}, nil
}

// Field returns the magnetic field contributed by the prism m at the point
// p (in global coordinates).  Each magnetization axis above the cutoff is
// evaluated with the shared axial kernel under a cyclic axis permutation,
// and the contributions are superposed.  Indeterminate contributions are
// zeroed and flagged on the returned sample.
func (m Prism) Field(p geom.Vector3) (field.Sample3, error) {
	local := p.Sub(m.Center)

	var sample field.Sample3
	if math.Abs(m.Jx/m.Jr) > field.FPCutoff {
		// Axis permutation (y, z, x): the kernel's w axis is x.
		by, bz, bx, ok := prismAxial(local.Y, local.Z, local.X, m.B, m.C, m.A, m.Jx)
		sample.B = sample.B.Add(geom.Vector3{X: bx, Y: by, Z: bz})
		sample.Singular = sample.Singular || !ok
	}
	if math.Abs(m.Jy/m.Jr) > field.FPCutoff {
		// Axis permutation (z, x, y): the kernel's w axis is y.
		bz, bx, by, ok := prismAxial(local.Z, local.X, local.Y, m.C, m.A, m.B, m.Jy)
		sample.B = sample.B.Add(geom.Vector3{X: bx, Y: by, Z: bz})
		sample.Singular = sample.Singular || !ok
	}
	if math.Abs(m.Jz/m.Jr) > field.FPCutoff {
		bx, by, bz, ok := prismAxial(local.X, local.Y, local.Z, m.A, m.B, m.C, m.Jz)
		sample.B = sample.B.Add(geom.Vector3{X: bx, Y: by, Z: bz})
		sample.Singular = sample.Singular || !ok
	}
	return sample, nil
}
