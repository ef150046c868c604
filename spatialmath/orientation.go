// Package spatialmath defines spatial mathematical operations used to place and move joints:
// rigid transforms built from r3 vectors and unit quaternions, and conversions between
// orientation changes and angular rates.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// If two angles differ by less than this amount, we consider them the same.
const angleEpsilon = 1e-9 // radians

// NewZeroOrientation returns a quaternion which signifies no rotation.
func NewZeroOrientation() quat.Number {
	return quat.Number{Real: 1}
}

// QuaternionAlmostEqual is an equality test that considers q and -q to be the same orientation.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	if quatWithinTol(a, b, tol) {
		return true
	}
	return quatWithinTol(a, Flip(b), tol)
}

func quatWithinTol(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol &&
		math.Abs(a.Imag-b.Imag) <= tol &&
		math.Abs(a.Jmag-b.Jmag) <= tol &&
		math.Abs(a.Kmag-b.Kmag) <= tol
}

// OrientationBetween returns the rotation which, applied after o1, yields o2. Both are expressed
// in the same parent frame, so the result is a parent-frame delta.
func OrientationBetween(o1, o2 quat.Number) quat.Number {
	return quat.Mul(o2, quat.Conj(o1))
}

// Norm returns the norm of the imaginary part of the quaternion.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Normalize scales q to unit length. A zero quaternion is mapped to no rotation.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return NewZeroOrientation()
	}
	return quat.Scale(1/n, q)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// Slerp spherically interpolates between two unit quaternions along the shortest arc.
// by = 0 returns q1 and by = 1 returns q2 (possibly negated).
func Slerp(q1, q2 quat.Number, by float64) quat.Number {
	dot := q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
	if dot < 0 {
		q2 = Flip(q2)
		dot = -dot
	}
	// nearly parallel, a normalized lerp is accurate and avoids dividing by sin(~0)
	if dot > 0.9995 {
		return Normalize(quat.Add(q1, quat.Scale(by, quat.Sub(q2, q1))))
	}
	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	s1 := math.Sin((1-by)*theta) / sinTheta
	s2 := math.Sin(by*theta) / sinTheta
	return quat.Add(quat.Scale(s1, q1), quat.Scale(s2, q2))
}
