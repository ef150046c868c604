package skeleton

import (
	"fmt"
)

// PoseDataKind tags each variant of pose data. The set of kinds is closed; operations that combine
// two pose data values check the tag before touching the other value.
type PoseDataKind int

const (
	// UnknownPoseData is the zero kind and is never attached to a pose.
	UnknownPoseData PoseDataKind = iota
	// JointVelocitiesPoseData holds per-joint linear and angular velocities.
	JointVelocitiesPoseData
)

func (k PoseDataKind) String() string {
	switch k {
	case UnknownPoseData:
		return "unknown"
	case JointVelocitiesPoseData:
		return "joint_velocities"
	default:
		return fmt.Sprintf("pose_data_kind(%d)", int(k))
	}
}

// PoseData is extra, per-pose information that travels with a Pose through copies and blends.
type PoseData interface {
	// Kind identifies the variant.
	Kind() PoseDataKind

	// Pose returns the pose the data is attached to. It is a back reference, the pose owns the data.
	Pose() *Pose
	// SetPose is called by the pose when the data is attached or detached.
	SetPose(pose *Pose)

	// LinkToInstance sizes the data for the instance's skeleton.
	LinkToInstance(inst *Instance)
	// LinkToSkeleton detaches the data from any previous sizing.
	LinkToSkeleton(s *Skeleton)

	// IsUsed reports whether the data currently holds meaningful values.
	IsUsed() bool
	// SetUsed marks whether the data currently holds meaningful values.
	SetUsed(isUsed bool)

	// Reset zeroes the data in place.
	Reset()
	// CopyFrom overwrites this data with from, which must be of the same kind.
	CopyFrom(from PoseData) error
	// Blend moves this data toward the same kind of data on destPose by weight in [0, 1].
	Blend(destPose *Pose, weight float64) error
}

// PoseDataKindMismatchError is returned when two pose data values of different kinds are combined.
type PoseDataKindMismatchError struct {
	Expected PoseDataKind
	Actual   PoseDataKind
}

func (e *PoseDataKindMismatchError) Error() string {
	return fmt.Sprintf("cannot use %s pose data as %s pose data", e.Actual, e.Expected)
}

// NewPoseDataKindMismatchError is used when pose data of the wrong kind is passed in.
func NewPoseDataKindMismatchError(expected, actual PoseDataKind) error {
	return &PoseDataKindMismatchError{Expected: expected, Actual: actual}
}
