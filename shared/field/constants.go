// Package field provides the numeric constants, sample types, and error taxonomy shared by every field source.
package field

import "math"

// These constants are the pi multiples used by the closed-form kernels.
const (
	TwoPi  float64 = 2.0 * math.Pi
	FourPi float64 = 4.0 * math.Pi
	I2Pi   float64 = 1.0 / TwoPi
	I4Pi   float64 = 1.0 / FourPi
)

// FPCutoff is the relative-magnitude cutoff below which a magnetization axis
// component is treated as absent and its kernels are skipped entirely.
// Because Go doesn't support overridable constants, this has to be a variable.
// Callers may tune it before constructing magnets; the pi multiples above are fixed.
var FPCutoff float64 = 1e-6

// ErrCutoff is the tolerance used for equality comparisons between computed
// and expected field values, and for scene-index influence bounds.
const ErrCutoff float64 = 1e-12
