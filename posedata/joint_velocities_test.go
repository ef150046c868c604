package posedata

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/motionmatch/skeleton"
	"go.viam.com/motionmatch/spatialmath"
)

func makeSkeleton(t *testing.T, motionExtractionJoint int) *skeleton.Skeleton {
	t.Helper()
	s, err := skeleton.New("body", []skeleton.Joint{
		{Name: "root", Parent: skeleton.InvalidIndex},
		{Name: "spine", Parent: 0, BindTransform: spatialmath.NewTransformFromPoint(r3.Vector{Z: 1})},
		{Name: "head", Parent: 1, BindTransform: spatialmath.NewTransformFromPoint(r3.Vector{Z: 0.5})},
	}, motionExtractionJoint)
	test.That(t, err, test.ShouldBeNil)
	return s
}

func makeBody(t *testing.T, pool *skeleton.PosePool) *skeleton.Instance {
	t.Helper()
	return skeleton.NewInstance(makeSkeleton(t, 0), pool)
}

func yaw(theta float64) quat.Number {
	return (&spatialmath.R4AA{Theta: theta, RZ: 1}).ToQuat()
}

// attachVelocities creates a pose of inst carrying fresh joint velocities.
func attachVelocities(t *testing.T, inst *skeleton.Instance) (*skeleton.Pose, *JointVelocities) {
	t.Helper()
	pose := skeleton.NewPose(inst)
	jv := NewJointVelocities()
	test.That(t, pose.AddPoseData(jv), test.ShouldBeNil)
	test.That(t, jv.Pose(), test.ShouldEqual, pose)
	return pose, jv
}

func fill(t *testing.T, jv *JointVelocities, scale float64) {
	t.Helper()
	for i := 0; i < jv.NumJoints(); i++ {
		f := float64(i+1) * scale
		test.That(t, jv.SetVelocity(i, r3.Vector{X: f, Y: 2 * f, Z: 3 * f}, r3.Vector{Z: f}), test.ShouldBeNil)
	}
}

func TestBinding(t *testing.T) {
	jv := NewJointVelocities()
	test.That(t, jv.Kind(), test.ShouldEqual, skeleton.JointVelocitiesPoseData)
	test.That(t, jv.NumJoints(), test.ShouldEqual, 0)
	test.That(t, jv.Velocities(), test.ShouldBeEmpty)
	test.That(t, jv.AngularVelocities(), test.ShouldBeEmpty)
	test.That(t, jv.IsUsed(), test.ShouldBeFalse)

	t.Run("sizes to the instance", func(t *testing.T) {
		jv.LinkToInstance(skeleton.NewInstance(makeSkeleton(t, 2), nil))
		test.That(t, jv.Velocities(), test.ShouldHaveLength, 3)
		test.That(t, jv.AngularVelocities(), test.ShouldHaveLength, 3)
		test.That(t, jv.RelativeToJointIndex(), test.ShouldEqual, 2)
		for i := range jv.Velocities() {
			test.That(t, jv.Velocities()[i], test.ShouldResemble, r3.Vector{})
			test.That(t, jv.AngularVelocities()[i], test.ShouldResemble, r3.Vector{})
		}
	})

	t.Run("rebinding does not keep values", func(t *testing.T) {
		fill(t, jv, 1)
		jv.LinkToInstance(skeleton.NewInstance(makeSkeleton(t, skeleton.InvalidIndex), nil))
		test.That(t, jv.RelativeToJointIndex(), test.ShouldEqual, 0)
		test.That(t, jv.Velocities()[1], test.ShouldResemble, r3.Vector{})
	})

	t.Run("link to skeleton clears", func(t *testing.T) {
		jv.LinkToSkeleton(makeSkeleton(t, 0))
		test.That(t, jv.NumJoints(), test.ShouldEqual, 0)
		test.That(t, jv.AngularVelocities(), test.ShouldBeEmpty)
	})

	t.Run("invalid reference joint selects the first joint", func(t *testing.T) {
		jv.SetRelativeToJointIndex(2)
		test.That(t, jv.RelativeToJointIndex(), test.ShouldEqual, 2)
		jv.SetRelativeToJointIndex(skeleton.InvalidIndex)
		test.That(t, jv.RelativeToJointIndex(), test.ShouldEqual, 0)
	})

	t.Run("set velocity out of range", func(t *testing.T) {
		err := jv.SetVelocity(0, r3.Vector{X: 1}, r3.Vector{})
		test.That(t, err, test.ShouldBeError, "joint index 0 out of range [0, 0)")
	})
}

func TestResetAndClear(t *testing.T) {
	_, jv := attachVelocities(t, makeBody(t, nil))
	fill(t, jv, 1)
	jv.SetUsed(true)

	jv.Reset()
	test.That(t, jv.Velocities(), test.ShouldResemble, make([]r3.Vector, 3))
	test.That(t, jv.AngularVelocities(), test.ShouldResemble, make([]r3.Vector, 3))
	test.That(t, jv.IsUsed(), test.ShouldBeTrue)

	jv.Reset()
	test.That(t, jv.Velocities(), test.ShouldResemble, make([]r3.Vector, 3))

	jv.Clear()
	test.That(t, jv.Velocities(), test.ShouldBeEmpty)
	test.That(t, jv.AngularVelocities(), test.ShouldBeEmpty)
	jv.Reset()
	test.That(t, jv.NumJoints(), test.ShouldEqual, 0)
}

type otherPoseData struct {
	skeleton.PoseData
}

func (otherPoseData) Kind() skeleton.PoseDataKind {
	return skeleton.PoseDataKind(42)
}

func TestCopyFrom(t *testing.T) {
	inst := makeBody(t, nil)
	_, src := attachVelocities(t, inst)
	fill(t, src, 1)
	src.SetUsed(true)
	src.SetRelativeToJointIndex(1)

	dst := NewJointVelocities()
	test.That(t, dst.CopyFrom(src), test.ShouldBeNil)
	test.That(t, dst.IsUsed(), test.ShouldBeTrue)
	test.That(t, dst.RelativeToJointIndex(), test.ShouldEqual, 1)
	test.That(t, dst.Velocities(), test.ShouldResemble, src.Velocities())
	test.That(t, dst.AngularVelocities(), test.ShouldResemble, src.AngularVelocities())

	// the copy is independent of the source
	test.That(t, src.SetVelocity(0, r3.Vector{X: 100}, r3.Vector{Y: 100}), test.ShouldBeNil)
	test.That(t, dst.Velocities()[0], test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, dst.AngularVelocities()[0], test.ShouldResemble, r3.Vector{Z: 1})

	t.Run("kind mismatch", func(t *testing.T) {
		before := append([]r3.Vector(nil), dst.Velocities()...)
		err := dst.CopyFrom(otherPoseData{})
		test.That(t, err, test.ShouldBeError,
			skeleton.NewPoseDataKindMismatchError(skeleton.JointVelocitiesPoseData, skeleton.PoseDataKind(42)))
		test.That(t, dst.Velocities(), test.ShouldResemble, before)

		err = dst.CopyFrom(nil)
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("copied through the pose", func(t *testing.T) {
		srcPose := src.Pose()
		dstPose, dstData := attachVelocities(t, inst)
		test.That(t, dstPose.CopyFrom(srcPose), test.ShouldBeNil)
		test.That(t, dstData.Velocities(), test.ShouldResemble, src.Velocities())
		test.That(t, dstData.IsUsed(), test.ShouldBeTrue)
	})
}

func TestBlendNoOp(t *testing.T) {
	inst := makeBody(t, nil)
	_, jv := attachVelocities(t, inst)
	fill(t, jv, 1)
	jv.SetUsed(true)
	before := append([]r3.Vector(nil), jv.Velocities()...)

	test.That(t, jv.Blend(nil, 0.5), test.ShouldBeNil)
	test.That(t, jv.Velocities(), test.ShouldResemble, before)

	bare := skeleton.NewPose(inst)
	test.That(t, jv.Blend(bare, 0.5), test.ShouldBeNil)
	test.That(t, jv.Velocities(), test.ShouldResemble, before)

	destPose, dest := attachVelocities(t, inst)
	fill(t, dest, 10)
	test.That(t, jv.Blend(destPose, 0.5), test.ShouldBeNil)
	test.That(t, jv.Velocities(), test.ShouldResemble, before)
}

func TestBlendReplace(t *testing.T) {
	inst := makeBody(t, nil)
	_, jv := attachVelocities(t, inst)
	fill(t, jv, 1)

	destPose, dest := attachVelocities(t, inst)
	fill(t, dest, 10)
	dest.SetUsed(true)

	test.That(t, jv.Blend(destPose, 0.1), test.ShouldBeNil)
	test.That(t, jv.Velocities(), test.ShouldResemble, dest.Velocities())
	test.That(t, jv.AngularVelocities(), test.ShouldResemble, dest.AngularVelocities())
	test.That(t, jv.IsUsed(), test.ShouldBeFalse)

	test.That(t, dest.SetVelocity(2, r3.Vector{}, r3.Vector{}), test.ShouldBeNil)
	test.That(t, jv.Velocities()[2], test.ShouldResemble, r3.Vector{X: 30, Y: 60, Z: 90})
}

func TestBlendInterpolate(t *testing.T) {
	inst := makeBody(t, nil)
	destPose, dest := attachVelocities(t, inst)
	fill(t, dest, 2)
	dest.SetUsed(true)

	for _, weight := range []float64{0, 0.5, 1} {
		_, jv := attachVelocities(t, inst)
		jv.SetUsed(true)
		test.That(t, jv.Blend(destPose, weight), test.ShouldBeNil)
		for i, v := range jv.Velocities() {
			test.That(t, spatialmath.R3VectorAlmostEqual(v, dest.Velocities()[i].Mul(weight), 1e-12), test.ShouldBeTrue)
			test.That(t, spatialmath.R3VectorAlmostEqual(jv.AngularVelocities()[i], dest.AngularVelocities()[i].Mul(weight), 1e-12),
				test.ShouldBeTrue)
		}
	}

	t.Run("through the pose", func(t *testing.T) {
		pose, jv := attachVelocities(t, inst)
		jv.SetUsed(true)
		test.That(t, pose.Blend(destPose, 0.5), test.ShouldBeNil)
		test.That(t, jv.Velocities()[0], test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	})

	t.Run("length mismatch", func(t *testing.T) {
		small, err := skeleton.New("small", []skeleton.Joint{{Name: "root", Parent: skeleton.InvalidIndex}}, 0)
		test.That(t, err, test.ShouldBeNil)
		_, jv := attachVelocities(t, skeleton.NewInstance(small, nil))
		test.That(t, jv.SetVelocity(0, r3.Vector{X: 5}, r3.Vector{}), test.ShouldBeNil)
		jv.SetUsed(true)

		err = jv.Blend(destPose, 0.5)
		test.That(t, err, test.ShouldBeError, "expected 1 joint velocities but got 3")
		test.That(t, jv.Velocities(), test.ShouldResemble, []r3.Vector{{X: 5}})
	})
}

func TestNewJointVelocitiesWithConfig(t *testing.T) {
	_, err := NewJointVelocitiesWithConfig(Config{TimeRange: 0.1}, nil)
	test.That(t, err, test.ShouldNotBeNil)

	cfg := Config{TimeRange: 0.1, NumSamples: 4, DebugDrawScale: 1}
	jv, err := NewJointVelocitiesWithConfig(cfg, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, jv.Config(), test.ShouldResemble, cfg)
	test.That(t, math.IsNaN(jv.Config().TimeRange), test.ShouldBeFalse)
}
