package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// OrientationToAngularVel calculates an angular velocity, in radians per unit time, from the
// orientation change diff that happened over dt. The result lives in whichever frame diff was
// expressed in.
func OrientationToAngularVel(diff quat.Number, dt float64) r3.Vector {
	return QuatToRotationVector(diff).Mul(1 / dt)
}

// AngularVelocityBetween returns the angular velocity that rotates from into to over dt, expressed
// in the parent frame both orientations are given in.
func AngularVelocityBetween(from, to quat.Number, dt float64) r3.Vector {
	return OrientationToAngularVel(OrientationBetween(from, to), dt)
}

// LinearVelocityBetween returns the rate of change of position between from and to over dt.
func LinearVelocityBetween(from, to r3.Vector, dt float64) r3.Vector {
	return to.Sub(from).Mul(1 / dt)
}
