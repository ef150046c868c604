package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis on the unit sphere, (rx, ry, rz), and a rotation around
// that axis, theta. These four numbers can be used as-is (R4), or theta can be multiplied into the
// axis to give a rotation vector whose length is theta (R3).

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an R4AA with no rotation about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// ToR3 converts an R4 angle axis to an R3 rotation vector.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0 {
		return NewZeroOrientation()
	}
	sinA := math.Sin(r4.Theta / 2)
	return quat.Number{
		Real: math.Cos(r4.Theta / 2),
		Imag: r4.RX / norm * sinA,
		Jmag: r4.RY / norm * sinA,
		Kmag: r4.RZ / norm * sinA,
	}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) *R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-12 {
		return NewR4AA()
	}
	return &R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// QuatToRotationVector converts a quaternion to the R3 rotation vector taking the shortest arc,
// so the length of the result is always within [0, pi]. No rotation maps to the zero vector.
func QuatToRotationVector(q quat.Number) r3.Vector {
	if q.Real < 0 {
		q = Flip(q)
	}
	denom := Norm(q)
	if denom < 1e-12 {
		return r3.Vector{}
	}
	angle := 2 * math.Atan2(denom, q.Real)
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}.Mul(angle / denom)
}

// RotationVectorToQuat converts an R3 rotation vector back to a unit quaternion.
func RotationVectorToQuat(v r3.Vector) quat.Number {
	theta := v.Norm()
	if theta < angleEpsilon {
		return NewZeroOrientation()
	}
	r4 := &R4AA{Theta: theta, RX: v.X / theta, RY: v.Y / theta, RZ: v.Z / theta}
	return r4.ToQuat()
}
