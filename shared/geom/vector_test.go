package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{X: 1.0, Y: 2.0}
	b := Vector2{X: -3.0, Y: 0.5}

	assert.Equal(t, Vector2{X: -2.0, Y: 2.5}, a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a), "addition commutes")
	assert.Equal(t, Vector2{X: 4.0, Y: 1.5}, a.Sub(b))
	assert.Equal(t, Vector2{X: 2.0, Y: 4.0}, a.Scale(2.0))
	assert.Equal(t, -2.0, a.Dot(b))
}

func TestVector2ZeroIdentity(t *testing.T) {
	a := Vector2{X: 0.25, Y: -8.0}

	assert.True(t, Vector2{}.Zero())
	assert.False(t, a.Zero())
	assert.Equal(t, a, a.Add(Vector2{}), "zero is the additive identity")
}

func TestVector2Rotate(t *testing.T) {
	x := Vector2{X: 1.0, Y: 0.0}

	quarter := x.Rotate(math.Pi / 2.0)
	assert.True(t, quarter.Within(Vector2{X: 0.0, Y: 1.0}, 1e-15))

	full := x.Rotate(math.Pi / 3.0).Rotate(-math.Pi / 3.0)
	assert.True(t, full.Within(x, 1e-15), "rotation composes with its inverse")
}

func TestVector2Len(t *testing.T) {
	assert.Equal(t, 5.0, Vector2{X: 3.0, Y: 4.0}.Len())
	assert.Equal(t, 0.0, Vector2{}.Len())
}

func TestVector2Finite(t *testing.T) {
	assert.True(t, Vector2{X: 1.0, Y: -1.0}.Finite())
	assert.False(t, Vector2{X: math.NaN(), Y: 0.0}.Finite())
	assert.False(t, Vector2{X: 0.0, Y: math.Inf(1)}.Finite())
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{X: 1.0, Y: 2.0, Z: 3.0}
	b := Vector3{X: 0.5, Y: -1.0, Z: 2.0}

	assert.Equal(t, Vector3{X: 1.5, Y: 1.0, Z: 5.0}, a.Add(b))
	assert.Equal(t, Vector3{X: 0.5, Y: 3.0, Z: 1.0}, a.Sub(b))
	assert.Equal(t, Vector3{X: 2.0, Y: 4.0, Z: 6.0}, a.Scale(2.0))
	assert.Equal(t, 4.5, a.Dot(b))
	assert.Equal(t, 3.0, Vector3{X: 2.0, Y: 2.0, Z: 1.0}.Len())
}

func TestVector3Within(t *testing.T) {
	a := Vector3{X: 1.0, Y: 2.0, Z: 3.0}

	assert.True(t, a.Within(Vector3{X: 1.0 + 1e-13, Y: 2.0, Z: 3.0 - 1e-13}, 1e-12))
	assert.False(t, a.Within(Vector3{X: 1.1, Y: 2.0, Z: 3.0}, 1e-12))
}
