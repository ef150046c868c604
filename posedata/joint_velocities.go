package posedata

import (
	"github.com/golang/geo/r3"

	"go.viam.com/motionmatch/logging"
	"go.viam.com/motionmatch/skeleton"
	"go.viam.com/motionmatch/spatialmath"
	"go.viam.com/motionmatch/utils"
)

// JointVelocities is pose data holding one linear and one angular velocity per joint. All vectors
// are expressed in the local frame of a single reference joint, by default the skeleton's motion
// extraction joint, so that velocities of poses at different places in the world compare directly.
type JointVelocities struct {
	velocities           []r3.Vector
	angularVelocities    []r3.Vector
	relativeToJointIndex int
	isUsed               bool

	pose   *skeleton.Pose
	cfg    Config
	logger logging.Logger
}

var _ skeleton.PoseData = (*JointVelocities)(nil)

// NewJointVelocities returns empty joint velocities using the default configuration.
func NewJointVelocities() *JointVelocities {
	return &JointVelocities{
		cfg:    DefaultConfig(),
		logger: logging.NewBlankLogger("joint_velocities"),
	}
}

// NewJointVelocitiesWithConfig returns empty joint velocities using cfg. A nil logger is replaced
// by a blank one.
func NewJointVelocitiesWithConfig(cfg Config, logger logging.Logger) (*JointVelocities, error) {
	if err := cfg.Validate("joint_velocities"); err != nil {
		return nil, err
	}
	jv := NewJointVelocities()
	jv.cfg = cfg
	if logger != nil {
		jv.logger = logger
	}
	return jv, nil
}

// Kind returns skeleton.JointVelocitiesPoseData.
func (jv *JointVelocities) Kind() skeleton.PoseDataKind {
	return skeleton.JointVelocitiesPoseData
}

// Config returns the estimation constants in use.
func (jv *JointVelocities) Config() Config {
	return jv.cfg
}

// SetLogger replaces the logger used for debug output. A nil logger silences it.
func (jv *JointVelocities) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.NewBlankLogger("joint_velocities")
	}
	jv.logger = logger
}

// ensureDefaults fills in what a zero value JointVelocities lacks and validates the result.
func (jv *JointVelocities) ensureDefaults() error {
	if jv.logger == nil {
		jv.logger = logging.NewBlankLogger("joint_velocities")
	}
	if jv.cfg == (Config{}) {
		jv.cfg = DefaultConfig()
	}
	return jv.cfg.Validate("joint_velocities")
}

// Pose returns the pose the velocities are attached to, if any.
func (jv *JointVelocities) Pose() *skeleton.Pose {
	return jv.pose
}

// SetPose records the owning pose.
func (jv *JointVelocities) SetPose(pose *skeleton.Pose) {
	jv.pose = pose
}

// LinkToInstance sizes both velocity arrays to the instance's joint count, zeroed, and makes the
// skeleton's motion extraction joint the reference joint.
func (jv *JointVelocities) LinkToInstance(inst *skeleton.Instance) {
	numJoints := inst.NumJoints()
	jv.velocities = make([]r3.Vector, numJoints)
	jv.angularVelocities = make([]r3.Vector, numJoints)
	jv.SetRelativeToJointIndex(inst.Skeleton().MotionExtractionJointIndex())
}

// LinkToSkeleton detaches the velocities from any previous binding.
func (jv *JointVelocities) LinkToSkeleton(s *skeleton.Skeleton) {
	jv.Clear()
}

// SetRelativeToJointIndex sets the reference joint. skeleton.InvalidIndex, or any other negative
// index, selects joint 0.
func (jv *JointVelocities) SetRelativeToJointIndex(i int) {
	if i < 0 {
		i = 0
	}
	jv.relativeToJointIndex = i
}

// RelativeToJointIndex returns the joint whose frame the velocities are expressed in.
func (jv *JointVelocities) RelativeToJointIndex() int {
	return jv.relativeToJointIndex
}

// IsUsed reports whether the velocities hold meaningful values.
func (jv *JointVelocities) IsUsed() bool {
	return jv.isUsed
}

// SetUsed marks whether the velocities hold meaningful values.
func (jv *JointVelocities) SetUsed(isUsed bool) {
	jv.isUsed = isUsed
}

// NumJoints returns the number of joints the velocities are sized for.
func (jv *JointVelocities) NumJoints() int {
	return len(jv.velocities)
}

// Velocities returns the linear velocities. The slice is owned by jv and must not be modified.
func (jv *JointVelocities) Velocities() []r3.Vector {
	return jv.velocities
}

// AngularVelocities returns the angular velocities in radians per second. The slice is owned by
// jv and must not be modified.
func (jv *JointVelocities) AngularVelocities() []r3.Vector {
	return jv.angularVelocities
}

// SetVelocity sets the linear and angular velocity of joint i.
func (jv *JointVelocities) SetVelocity(i int, linear, angular r3.Vector) error {
	if i < 0 || i >= len(jv.velocities) {
		return utils.NewIndexOutOfRangeError("joint", i, len(jv.velocities))
	}
	jv.velocities[i] = linear
	jv.angularVelocities[i] = angular
	return nil
}

// Clear drops both velocity arrays.
func (jv *JointVelocities) Clear() {
	jv.velocities = nil
	jv.angularVelocities = nil
}

// Reset zeroes every velocity in place.
func (jv *JointVelocities) Reset() {
	for i := range jv.velocities {
		jv.velocities[i] = r3.Vector{}
	}
	for i := range jv.angularVelocities {
		jv.angularVelocities[i] = r3.Vector{}
	}
}

// CopyFrom makes jv an independent copy of from, which must be joint velocities.
func (jv *JointVelocities) CopyFrom(from skeleton.PoseData) error {
	if from == nil {
		return skeleton.NewPoseDataKindMismatchError(skeleton.JointVelocitiesPoseData, skeleton.UnknownPoseData)
	}
	if from.Kind() != skeleton.JointVelocitiesPoseData {
		return skeleton.NewPoseDataKindMismatchError(skeleton.JointVelocitiesPoseData, from.Kind())
	}
	other, err := utils.AssertType[*JointVelocities](from)
	if err != nil {
		return err
	}
	jv.isUsed = other.isUsed
	jv.velocities = copyVectors(jv.velocities, other.velocities)
	jv.angularVelocities = copyVectors(jv.angularVelocities, other.angularVelocities)
	jv.relativeToJointIndex = other.relativeToJointIndex
	return nil
}

// Blend combines jv with the joint velocities attached to destPose.
//
// Nothing happens when destPose is nil, has no joint velocities, or its joint velocities are not in
// use. Otherwise, if jv is in use, every vector moves toward its destination counterpart by weight.
// If jv is not in use it takes the destination's velocities verbatim regardless of weight.
func (jv *JointVelocities) Blend(destPose *skeleton.Pose, weight float64) error {
	if destPose == nil {
		return nil
	}
	destData := destPose.PoseData(skeleton.JointVelocitiesPoseData)
	if destData == nil || !destData.IsUsed() {
		return nil
	}
	dest, err := utils.AssertType[*JointVelocities](destData)
	if err != nil {
		return err
	}

	if !jv.isUsed {
		jv.velocities = copyVectors(jv.velocities, dest.velocities)
		jv.angularVelocities = copyVectors(jv.angularVelocities, dest.angularVelocities)
		return nil
	}

	if len(dest.velocities) != len(jv.velocities) {
		return utils.NewLengthMismatchError("joint velocities", len(jv.velocities), len(dest.velocities))
	}
	if len(dest.angularVelocities) != len(jv.angularVelocities) {
		return utils.NewLengthMismatchError("joint angular velocities", len(jv.angularVelocities), len(dest.angularVelocities))
	}
	for i := range jv.velocities {
		jv.velocities[i] = spatialmath.LerpVector(jv.velocities[i], dest.velocities[i], weight)
		jv.angularVelocities[i] = spatialmath.LerpVector(jv.angularVelocities[i], dest.angularVelocities[i], weight)
	}
	return nil
}

// copyVectors overwrites dst with the contents of src, reusing dst's storage when it is big enough.
func copyVectors(dst, src []r3.Vector) []r3.Vector {
	if src == nil {
		return nil
	}
	if cap(dst) < len(src) {
		dst = make([]r3.Vector, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}
