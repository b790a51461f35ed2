package magnet

import (
	"math"

	"github.com/mwindels/magnet-solver/shared/field"
)

// prismAxial evaluates the field of a prism magnetized purely along its
// local w axis, at the local point (u, v, w) for half-extents (du, dv, dw).
// It returns the field components along u, v, and w, plus whether every
// term stayed finite.
//
// The closed forms come from the surface-charge model: the component along
// the magnetization axis is an eight-term signed atan2 sum over the prism's
// corners, and the two transverse components are eight-term signed
// logarithmic sums of corner distances.  The atan2 branch structure makes
// the forms valid both inside and outside the magnet; at the center of a
// cube the axial component evaluates to exactly 2j/3.
//
// The logarithm arguments degenerate to zero on the four edge lines
// parallel to the magnetization axis, and corner-distance cancellation can
// push them fractionally negative there.  Both cases surface as non-finite
// terms and zero the whole contribution.
func prismAxial(u, v, w, du, dv, dw, j float64) (bu, bv, bw float64, ok bool) {
	us := [2]float64{u + du, u - du}
	vs := [2]float64{v + dv, v - dv}
	ws := [2]float64{w + dw, w - dw}

	var sumU, sumV, sumW float64
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			for l := 0; l < 2; l++ {
				sign := -1.0
				if (i+k+l)%2 != 0 {
					sign = 1.0
				}
				r := math.Sqrt(us[i]*us[i] + vs[k]*vs[k] + ws[l]*ws[l])

				sumU += sign * math.Log(r-vs[k])
				sumV += sign * math.Log(r-us[i])
				sumW += sign * math.Atan2(us[i]*vs[k], ws[l]*r)
			}
		}
	}

	scale := j * field.I4Pi
	bu, okU := guard(scale * sumU)
	bv, okV := guard(scale * sumV)
	bw, okW := guard(scale * sumW)
	if !okU || !okV || !okW {
		return 0.0, 0.0, 0.0, false
	}
	return bu, bv, bw, true
}
