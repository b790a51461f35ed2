// Package geom provides shared point/vector primitives for use by the field kernels and drivers.
package geom

import "math"

// Vector2 represents a point or vector in 2-dimensional space.
// It doubles as a field-value container, so a Vector2 may hold tesla as easily as metres.
type Vector2 struct {
	X float64
	Y float64
}

// Add returns the sum of vectors a and b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the difference of vectors a and b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector2) Scale(s float64) Vector2 {
	return Vector2{X: s * a.X, Y: s * a.Y}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector2) Dot(b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Rotate returns the vector a rotated counter-clockwise by theta radians.
func (a Vector2) Rotate(theta float64) Vector2 {
	sin, cos := math.Sincos(theta)
	return Vector2{X: cos*a.X - sin*a.Y, Y: sin*a.X + cos*a.Y}
}

// Zero returns whether the vector a is a zero vector.
func (a Vector2) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0
}

// Len returns the length of the vector a.
func (a Vector2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Finite returns whether both components of the vector a are finite.
func (a Vector2) Finite() bool {
	return finite(a.X) && finite(a.Y)
}

// Within returns whether the vectors a and b are componentwise equal within tol.
func (a Vector2) Within(b Vector2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Vector3 represents a point or vector in 3-dimensional space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of vectors a and b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector3) Scale(s float64) Vector3 {
	return Vector3{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector3) Dot(b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Zero returns whether the vector a is a zero vector.
func (a Vector3) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0 && a.Z == 0.0
}

// Len returns the length of the vector a.
func (a Vector3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Finite returns whether all components of the vector a are finite.
func (a Vector3) Finite() bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

// Within returns whether the vectors a and b are componentwise equal within tol.
func (a Vector3) Within(b Vector3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// finite returns whether the scalar v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
