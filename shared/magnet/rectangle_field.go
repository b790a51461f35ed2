package magnet

import (
	"math"

	"github.com/mwindels/magnet-solver/shared/field"
)

// The four rectangle axis-kernels below are pure functions of the local
// observation point (x, y), the half-extents (a, b), and the magnetization
// component j along the relevant axis.  They assume an axis-aligned
// rectangle centered at the origin; callers are responsible for the
// local-frame transform.
//
// The kernels rely on Go's IEEE-754 atan2 semantics: Atan2(0, d) is 0 for
// d > 0 and pi for d < 0, and Atan2(0, 0) is 0.  These branch conventions
// carry the field's sign across the magnet's boundary, so they must not be
// "simplified" into atan of a quotient.

// Bxx returns the x field component due to x-magnetization.
// On the magnet's vertical symmetry axis both atan2 denominators can reach
// zero; with j = 1 the result there is exactly 0.5.
func Bxx(x, y, a, b, j float64) float64 {
	xsqMinusAsq := x*x - a*a
	bPlusY := b + y
	bMinusY := b - y
	a2 := 2.0 * a

	return j * field.I2Pi * (math.Atan2(a2*bPlusY, xsqMinusAsq+bPlusY*bPlusY) +
		math.Atan2(a2*bMinusY, xsqMinusAsq+bMinusY*bMinusY))
}

// Byx returns the y field component due to x-magnetization.
// The logarithm arguments are ratios of squared distances to the
// rectangle's four corners; when a ratio degenerates to 0 or +Inf the
// observation point sits on a corner and the kernel is singular.
func Byx(x, y, a, b, j float64) float64 {
	xPlusAsq := (x + a) * (x + a)
	xMinusAsq := (x - a) * (x - a)
	yPlusBsq := (y + b) * (y + b)
	yMinusBsq := (y - b) * (y - b)

	return -j * field.I4Pi * (math.Log((xMinusAsq+yMinusBsq)/(xPlusAsq+yMinusBsq)) -
		math.Log((xMinusAsq+yPlusBsq)/(xPlusAsq+yPlusBsq)))
}

// Bxy returns the x field component due to y-magnetization.
// This mirrors Byx with the corner distances paired along y and the overall
// sign flipped.
func Bxy(x, y, a, b, j float64) float64 {
	xPlusAsq := (x + a) * (x + a)
	xMinusAsq := (x - a) * (x - a)
	yPlusBsq := (y + b) * (y + b)
	yMinusBsq := (y - b) * (y - b)

	return j * field.I4Pi * (math.Log((xPlusAsq+yMinusBsq)/(xPlusAsq+yPlusBsq)) -
		math.Log((xMinusAsq+yMinusBsq)/(xMinusAsq+yPlusBsq)))
}

// Byy returns the y field component due to y-magnetization.
// This mirrors Bxx with the roles of a and b swapped and the second term
// subtracted rather than added.
func Byy(x, y, a, b, j float64) float64 {
	ysqMinusBsq := y*y - b*b
	xPlusA := x + a
	xMinusA := x - a
	b2 := 2.0 * b

	return j * field.I2Pi * (math.Atan2(b2*xPlusA, xPlusA*xPlusA+ysqMinusBsq) -
		math.Atan2(b2*xMinusA, xMinusA*xMinusA+ysqMinusBsq))
}
