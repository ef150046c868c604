package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestConversions(t *testing.T) {
	dt := 2.0

	for _, rate := range []struct {
		TestName    string
		AngularRate r3.Vector
	}{
		{"unitary roll", r3.Vector{X: 1, Y: 0, Z: 0}},
		{"unitary pitch", r3.Vector{X: 0, Y: 1, Z: 0}},
		{"unitary yaw", r3.Vector{X: 0, Y: 0, Z: 1}},
		{"roll", r3.Vector{X: 0.5, Y: 0, Z: 0}},
		{"pitch", r3.Vector{X: 0, Y: -0.7, Z: 0}},
		{"mixed", r3.Vector{X: 0.3, Y: 0.4, Z: -0.2}},
	} {
		t.Run(rate.TestName, func(t *testing.T) {
			start := (&R4AA{Theta: 0.4, RX: 1, RY: 1, RZ: 0}).ToQuat()
			diff := RotationVectorToQuat(rate.AngularRate.Mul(dt))
			fin := Normalize(quat.Mul(diff, start))

			av := AngularVelocityBetween(start, fin, dt)
			test.That(t, R3VectorAlmostEqual(av, rate.AngularRate, 1e-9), test.ShouldBeTrue)
			test.That(t, R3VectorAlmostEqual(OrientationToAngularVel(diff, dt), rate.AngularRate, 1e-9), test.ShouldBeTrue)
		})
	}
}

func TestAngularVelocityShortestArc(t *testing.T) {
	// -q is the same rotation as q, the rate must not wrap around the long way
	q := RotationVectorToQuat(r3.Vector{Z: 0.2})
	av := OrientationToAngularVel(Flip(q), 1)
	test.That(t, av.Z, test.ShouldAlmostEqual, 0.2)
	test.That(t, av.Norm(), test.ShouldBeLessThanOrEqualTo, math.Pi)
}

func TestAngularVelocityAtRest(t *testing.T) {
	q := RotationVectorToQuat(r3.Vector{X: 1, Y: 2, Z: 3}.Normalize())
	test.That(t, AngularVelocityBetween(q, q, 0.01), test.ShouldResemble, r3.Vector{})
}

func TestLinearVelocityBetween(t *testing.T) {
	v := LinearVelocityBetween(r3.Vector{X: 1}, r3.Vector{X: 2, Y: -1}, 0.5)
	test.That(t, v, test.ShouldResemble, r3.Vector{X: 2, Y: -2})
}
