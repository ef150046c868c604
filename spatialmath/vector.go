package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// R3VectorAlmostEqual compares two r3.Vector objects and returns if they are all within epsilon of each other.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return a.Sub(b).Norm() <= epsilon
}

// LerpVector linearly interpolates each component from a toward b.
// by = 0 returns a and by = 1 returns b.
func LerpVector(a, b r3.Vector, by float64) r3.Vector {
	return r3.Vector{
		X: a.X + (b.X-a.X)*by,
		Y: a.Y + (b.Y-a.Y)*by,
		Z: a.Z + (b.Z-a.Z)*by,
	}
}

// RotateVector rotates v by the unit quaternion q.
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}
