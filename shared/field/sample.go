package field

import "github.com/mwindels/magnet-solver/shared/geom"

// Sample2 represents the result of one 2D field evaluation.
// Singular records that at least one axis contribution was locally
// indeterminate and substituted with zero.  The substituted value is a
// conservative placeholder, not an exact boundary limit, so callers that
// need exact edge values must treat singular samples specially.
type Sample2 struct {
	B        geom.Vector2
	Singular bool
}

// Combine returns the superposition of the samples a and b.
// Field vectors add; a singular contribution taints the sum.
func (a Sample2) Combine(b Sample2) Sample2 {
	return Sample2{B: a.B.Add(b.B), Singular: a.Singular || b.Singular}
}

// Sample3 represents the result of one 3D field evaluation.
type Sample3 struct {
	B        geom.Vector3
	Singular bool
}

// Combine returns the superposition of the samples a and b.
func (a Sample3) Combine(b Sample3) Sample3 {
	return Sample3{B: a.B.Add(b.B), Singular: a.Singular || b.Singular}
}
