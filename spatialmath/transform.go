package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid transformation: a rotation followed by a translation. Joint transforms in a
// pose are Transforms relative to the parent joint, the model, or the world.
type Transform struct {
	Position r3.Vector
	Rotation quat.Number
}

// NewZeroTransform returns the identity transform.
func NewZeroTransform() Transform {
	return Transform{Rotation: NewZeroOrientation()}
}

// NewTransform returns a transform from a position and a rotation. The rotation is normalized.
func NewTransform(position r3.Vector, rotation quat.Number) Transform {
	return Transform{Position: position, Rotation: Normalize(rotation)}
}

// NewTransformFromPoint returns a transform that only translates.
func NewTransformFromPoint(position r3.Vector) Transform {
	return Transform{Position: position, Rotation: NewZeroOrientation()}
}

// Point returns the translation of the transform.
func (t Transform) Point() r3.Vector {
	return t.Position
}

// Orientation returns the rotation of the transform.
func (t Transform) Orientation() quat.Number {
	return t.Rotation
}

// TransformPoint maps a point through the transform, rotating then translating it.
func (t Transform) TransformPoint(p r3.Vector) r3.Vector {
	return RotateVector(t.Rotation, p).Add(t.Position)
}

// TransformVector maps a direction or rate through the transform. Only the rotation applies.
func (t Transform) TransformVector(v r3.Vector) r3.Vector {
	return RotateVector(t.Rotation, v)
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	inv := quat.Conj(t.Rotation)
	return Transform{
		Position: RotateVector(inv, t.Position).Mul(-1),
		Rotation: inv,
	}
}

// Compose returns the transform that first applies b and then a, i.e. b expressed in a's parent.
func Compose(a, b Transform) Transform {
	return Transform{
		Position: a.TransformPoint(b.Position),
		Rotation: quat.Mul(a.Rotation, b.Rotation),
	}
}

// Interpolate blends from a toward b: the position is lerped and the rotation slerped.
func Interpolate(a, b Transform, by float64) Transform {
	return Transform{
		Position: LerpVector(a.Position, b.Position, by),
		Rotation: Slerp(a.Rotation, b.Rotation, by),
	}
}

// TransformAlmostEqual reports whether two transforms agree within tol.
func TransformAlmostEqual(a, b Transform, tol float64) bool {
	return R3VectorAlmostEqual(a.Position, b.Position, tol) && QuaternionAlmostEqual(a.Rotation, b.Rotation, tol)
}

func (t Transform) String() string {
	return fmt.Sprintf("{pos: (%g, %g, %g) rot: (%g, %g, %g, %g)}",
		t.Position.X, t.Position.Y, t.Position.Z,
		t.Rotation.Real, t.Rotation.Imag, t.Rotation.Jmag, t.Rotation.Kmag)
}
