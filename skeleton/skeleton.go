// Package skeleton describes joint hierarchies and the poses evaluated on them.
//
// A Skeleton is the static description: joints, their parents and the bind pose. An Instance
// places a skeleton in the world and owns the scratch pose pool it samples with. A Pose holds one
// local transform per joint plus any pose data (e.g. joint velocities) attached to it.
package skeleton

import (
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/spatialmath"
	"go.viam.com/motionmatch/utils"
)

// InvalidIndex marks the absence of a joint, e.g. a root joint's parent or a skeleton without a
// motion extraction joint.
const InvalidIndex = -1

// Joint is a single node in the hierarchy.
type Joint struct {
	Name string
	// Parent is the index of the parent joint, or InvalidIndex for a root.
	Parent int
	// BindTransform is the joint's rest transform relative to its parent.
	BindTransform spatialmath.Transform
}

// Skeleton is an immutable joint hierarchy.
type Skeleton struct {
	name                  string
	joints                []Joint
	jointsByName          map[string]int
	motionExtractionJoint int
}

// New creates a skeleton. Parents must precede their children so model space transforms can be
// resolved in a single forward pass. motionExtractionJoint may be InvalidIndex.
func New(name string, joints []Joint, motionExtractionJoint int) (*Skeleton, error) {
	s := &Skeleton{
		name:                  name,
		joints:                make([]Joint, len(joints)),
		jointsByName:          make(map[string]int, len(joints)),
		motionExtractionJoint: InvalidIndex,
	}
	for i, j := range joints {
		if j.Parent != InvalidIndex && (j.Parent < 0 || j.Parent >= i) {
			return nil, errors.Errorf("joint %q (%d) has parent %d which does not precede it", j.Name, i, j.Parent)
		}
		if j.Name != "" {
			if _, dup := s.jointsByName[j.Name]; dup {
				return nil, errors.Errorf("duplicate joint name %q", j.Name)
			}
			s.jointsByName[j.Name] = i
		}
		if j.BindTransform == (spatialmath.Transform{}) {
			j.BindTransform = spatialmath.NewZeroTransform()
		}
		s.joints[i] = j
	}
	if motionExtractionJoint != InvalidIndex {
		if motionExtractionJoint < 0 || motionExtractionJoint >= len(joints) {
			return nil, utils.NewIndexOutOfRangeError("motion extraction joint", motionExtractionJoint, len(joints))
		}
		s.motionExtractionJoint = motionExtractionJoint
	}
	return s, nil
}

// Name returns the skeleton's name.
func (s *Skeleton) Name() string {
	return s.name
}

// NumJoints returns the number of joints.
func (s *Skeleton) NumJoints() int {
	return len(s.joints)
}

// Joint returns the joint at index i.
func (s *Skeleton) Joint(i int) Joint {
	return s.joints[i]
}

// JointIndex looks a joint up by name.
func (s *Skeleton) JointIndex(name string) (int, bool) {
	i, ok := s.jointsByName[name]
	return i, ok
}

// MotionExtractionJointIndex returns the joint that carries root motion, or InvalidIndex.
func (s *Skeleton) MotionExtractionJointIndex() int {
	return s.motionExtractionJoint
}
