package magnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

func TestNewSphereRejectsBadGeometry(t *testing.T) {
	_, err := NewSphere(-1.0, geom.Vector3{}, 1.0, 0.0, 0.0)
	assert.ErrorIs(t, err, field.ErrInvalidGeometry)

	_, err = NewSphere(1.0, geom.Vector3{}, 0.0, 0.0, 0.0)
	assert.ErrorIs(t, err, field.ErrInvalidGeometry)
}

// The interior field of a uniformly-magnetized sphere is uniform at two
// thirds of the magnetization.
func TestSphereFieldUniformInterior(t *testing.T) {
	center := geom.Vector3{X: 1.0, Y: 2.0, Z: 3.0}
	m, err := NewSphere(1.0, center, 1.5, 0.0, 0.0)
	require.NoError(t, err)

	want := geom.Vector3{Z: 1.0}
	points := []geom.Vector3{
		center,
		center.Add(geom.Vector3{X: 0.5}),
		center.Add(geom.Vector3{X: -0.3, Y: 0.4, Z: 0.5}),
	}
	for _, p := range points {
		sample, err := m.Field(p)
		require.NoError(t, err)
		assert.True(t, sample.B.Within(want, field.ErrCutoff),
			"interior field at offset (%v, %v, %v)", p.X-center.X, p.Y-center.Y, p.Z-center.Z)
	}
}

// At the pole the exterior dipole branch meets the interior value, since
// the normal field component is continuous there.
func TestSphereFieldPoleContinuity(t *testing.T) {
	m, err := NewSphere(1.0, geom.Vector3{}, 1.0, 0.0, 0.0)
	require.NoError(t, err)

	inside, err := m.Field(geom.Vector3{Z: 1.0})
	require.NoError(t, err)
	outside, err := m.Field(geom.Vector3{Z: 1.0 + 1e-9})
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3.0, inside.B.Z, field.ErrCutoff)
	assert.InDelta(t, inside.B.Z, outside.B.Z, 1e-8)
}

// Outside the sphere the field is an exact point dipole: doubling the
// distance on the magnetization axis divides the field by exactly eight,
// and the equatorial field opposes the magnetization at half the axial
// magnitude.
func TestSphereFieldExactDipoleExterior(t *testing.T) {
	m, err := NewSphere(1.0, geom.Vector3{}, 1.0, 0.0, 0.0)
	require.NoError(t, err)

	near, err := m.Field(geom.Vector3{Z: 3.0})
	require.NoError(t, err)
	far, err := m.Field(geom.Vector3{Z: 6.0})
	require.NoError(t, err)
	assert.InDelta(t, near.B.Z/8.0, far.B.Z, field.ErrCutoff)

	equator, err := m.Field(geom.Vector3{X: 3.0})
	require.NoError(t, err)
	assert.InDelta(t, -near.B.Z/2.0, equator.B.Z, field.ErrCutoff)
	assert.InDelta(t, 0.0, equator.B.X, field.ErrCutoff)
}
