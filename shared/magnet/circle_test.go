package magnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
)

func TestNewCircleRejectsBadGeometry(t *testing.T) {
	_, err := NewCircle(0.0, geom.Vector2{}, 1.0, 0.0)
	assert.ErrorIs(t, err, field.ErrInvalidGeometry)

	_, err = NewCircle(1.0, geom.Vector2{}, -2.0, 0.0)
	assert.ErrorIs(t, err, field.ErrInvalidGeometry)
}

// Inside a transversely-magnetized circle the field is uniform at half the
// magnetization, regardless of position.
func TestCircleFieldUniformInterior(t *testing.T) {
	m, err := NewCircle(2.0, geom.Vector2{X: 1.0, Y: -1.0}, 1.0, 0.0)
	require.NoError(t, err)

	points := []geom.Vector2{
		{X: 1.0, Y: -1.0},
		{X: 1.5, Y: -0.5},
		{X: 0.2, Y: -1.9},
	}
	for _, p := range points {
		sample, err := m.Field(p)
		require.NoError(t, err)

		assert.False(t, sample.Singular)
		assert.True(t, sample.B.Within(geom.Vector2{X: 0.5, Y: 0.0}, field.ErrCutoff),
			"interior field at (%v, %v) is (%v, %v)", p.X, p.Y, sample.B.X, sample.B.Y)
	}
}

// Crossing the boundary along the magnetization axis, the exterior dipole
// branch must meet the uniform interior value.
func TestCircleFieldBoundaryContinuity(t *testing.T) {
	m, err := NewCircle(1.0, geom.Vector2{}, 1.0, 0.0)
	require.NoError(t, err)

	inside, err := m.Field(geom.Vector2{X: 1.0, Y: 0.0})
	require.NoError(t, err)
	outside, err := m.Field(geom.Vector2{X: 1.0 + 1e-9, Y: 0.0})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, inside.B.X, field.ErrCutoff)
	assert.InDelta(t, inside.B.X, outside.B.X, 1e-8)
}

// The exterior field is an exact 2D dipole: doubling the distance on the
// magnetization axis divides the field by exactly four.
func TestCircleFieldExteriorDipoleDecay(t *testing.T) {
	m, err := NewCircle(1.0, geom.Vector2{}, 1.0, 0.0)
	require.NoError(t, err)

	near, err := m.Field(geom.Vector2{X: 5.0, Y: 0.0})
	require.NoError(t, err)
	far, err := m.Field(geom.Vector2{X: 10.0, Y: 0.0})
	require.NoError(t, err)

	assert.InDelta(t, near.B.X/4.0, far.B.X, field.ErrCutoff)
}

func TestCircleFieldSuperposition(t *testing.T) {
	p := geom.Vector2{X: 2.0, Y: 3.0}

	xMag, err := NewCircle(1.0, geom.Vector2{}, 1.0, 0.0)
	require.NoError(t, err)
	yMag, err := NewCircle(1.0, geom.Vector2{}, 1.0, 90.0)
	require.NoError(t, err)
	diag, err := NewCircle(1.0, geom.Vector2{}, math.Sqrt2, 45.0)
	require.NoError(t, err)

	fromX, err := xMag.Field(p)
	require.NoError(t, err)
	fromY, err := yMag.Field(p)
	require.NoError(t, err)
	combined, err := diag.Field(p)
	require.NoError(t, err)

	assert.True(t, combined.B.Within(fromX.B.Add(fromY.B), field.ErrCutoff))
}

// A magnetization angle below the cutoff zeroes the corresponding component
// exactly, mirroring the rectangle's cutoff semantics.
func TestCircleFieldCutoff(t *testing.T) {
	m, err := NewCircle(1.0, geom.Vector2{}, 1.0, 1e-5)
	require.NoError(t, err)

	sample, err := m.Field(geom.Vector2{X: 0.25, Y: 0.0})
	require.NoError(t, err)
	assert.Zero(t, sample.B.Y)
	assert.InDelta(t, 0.5, sample.B.X, field.ErrCutoff)
}
