package posedata

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"

	"go.viam.com/motionmatch/skeleton"
)

func TestRegistry(t *testing.T) {
	test.That(t, RegisteredKinds(), test.ShouldResemble, []skeleton.PoseDataKind{skeleton.JointVelocitiesPoseData})

	reg, ok := Lookup(skeleton.JointVelocitiesPoseData)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, reg.Name, test.ShouldEqual, "joint_velocities")
	test.That(t, reg.Version, test.ShouldEqual, SchemaVersion)

	test.That(t, reg.Schema, test.ShouldNotBeNil)
	schema, err := json.Marshal(reg.Schema)
	test.That(t, err, test.ShouldBeNil)
	for _, field := range []string{"version", "velocities", "angular_velocities", "relative_to_joint_index", "is_used"} {
		test.That(t, string(schema), test.ShouldContainSubstring, `"`+field+`"`)
	}

	test.That(t, reg.ConfigSchema, test.ShouldNotBeNil)
	configSchema, err := json.Marshal(reg.ConfigSchema)
	test.That(t, err, test.ShouldBeNil)
	for _, field := range []string{"time_range", "num_samples", "debug_draw_scale"} {
		test.That(t, string(configSchema), test.ShouldContainSubstring, `"`+field+`"`)
	}

	d, err := New(skeleton.JointVelocitiesPoseData)
	test.That(t, err, test.ShouldBeNil)
	_, isJointVelocities := d.(*JointVelocities)
	test.That(t, isJointVelocities, test.ShouldBeTrue)

	_, err = New(skeleton.UnknownPoseData)
	test.That(t, err, test.ShouldBeError, "no pose data registered for kind unknown")

	test.That(t, func() {
		Register(skeleton.JointVelocitiesPoseData, Registration{Constructor: func() skeleton.PoseData { return nil }})
	}, test.ShouldPanic)
	test.That(t, func() { Register(skeleton.PoseDataKind(9), Registration{}) }, test.ShouldPanic)
	test.That(t, func() { Register(skeleton.UnknownPoseData, Registration{}) }, test.ShouldPanic)
}

func TestAttachTo(t *testing.T) {
	test.That(t, AttachTo(nil, skeleton.JointVelocitiesPoseData), test.ShouldNotBeNil)

	pose := skeleton.NewPose(makeBody(t, nil))
	test.That(t, AttachTo(pose, skeleton.JointVelocitiesPoseData), test.ShouldBeNil)
	d := pose.PoseData(skeleton.JointVelocitiesPoseData)
	test.That(t, d, test.ShouldNotBeNil)
	test.That(t, d.(*JointVelocities).NumJoints(), test.ShouldEqual, 3)
	test.That(t, d.Pose(), test.ShouldEqual, pose)

	// attaching again keeps the existing data
	test.That(t, AttachTo(pose, skeleton.JointVelocitiesPoseData), test.ShouldBeNil)
	test.That(t, pose.PoseData(skeleton.JointVelocitiesPoseData), test.ShouldEqual, d)

	test.That(t, AttachTo(pose, skeleton.PoseDataKind(9)), test.ShouldNotBeNil)
}
