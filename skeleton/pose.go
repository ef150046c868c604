package skeleton

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/motionmatch/spatialmath"
	"go.viam.com/motionmatch/utils"
)

// Pose is one local transform per joint of an instance, plus attached pose data.
// Model space transforms are resolved lazily and cached until a local transform changes.
type Pose struct {
	instance   *Instance
	local      []spatialmath.Transform
	model      []spatialmath.Transform
	modelDirty bool
	poseData   []PoseData
	inPool     bool
}

// NewPose creates a pose for inst initialized to the bind pose.
func NewPose(inst *Instance) *Pose {
	p := &Pose{}
	p.LinkToInstance(inst)
	return p
}

// LinkToInstance resizes the pose for inst, resets it to the bind pose and links all attached
// pose data to the instance.
func (p *Pose) LinkToInstance(inst *Instance) {
	p.instance = inst
	numJoints := inst.NumJoints()
	if cap(p.local) < numJoints {
		p.local = make([]spatialmath.Transform, numJoints)
		p.model = make([]spatialmath.Transform, numJoints)
	}
	p.local = p.local[:numJoints]
	p.model = p.model[:numJoints]
	p.InitFromBindPose()
	for _, d := range p.poseData {
		d.LinkToInstance(inst)
	}
}

// InitFromBindPose sets every local transform to the joint's bind transform.
func (p *Pose) InitFromBindPose() {
	s := p.instance.Skeleton()
	for i := range p.local {
		p.local[i] = s.Joint(i).BindTransform
	}
	p.modelDirty = true
}

// Instance returns the instance the pose was evaluated for.
func (p *Pose) Instance() *Instance {
	return p.instance
}

// NumTransforms returns the number of joint transforms held.
func (p *Pose) NumTransforms() int {
	return len(p.local)
}

// LocalSpaceTransform returns joint i's transform relative to its parent.
func (p *Pose) LocalSpaceTransform(i int) spatialmath.Transform {
	return p.local[i]
}

// SetLocalSpaceTransform sets joint i's transform relative to its parent.
func (p *Pose) SetLocalSpaceTransform(i int, t spatialmath.Transform) {
	p.local[i] = t
	p.modelDirty = true
}

// ModelSpaceTransform returns joint i's transform relative to the instance.
func (p *Pose) ModelSpaceTransform(i int) spatialmath.Transform {
	p.updateModelSpace()
	return p.model[i]
}

// WorldSpaceTransform returns joint i's transform in the world.
func (p *Pose) WorldSpaceTransform(i int) spatialmath.Transform {
	return spatialmath.Compose(p.instance.WorldTransform(), p.ModelSpaceTransform(i))
}

func (p *Pose) updateModelSpace() {
	if !p.modelDirty {
		return
	}
	s := p.instance.Skeleton()
	for i, local := range p.local {
		parent := s.Joint(i).Parent
		if parent == InvalidIndex {
			p.model[i] = local
			continue
		}
		p.model[i] = spatialmath.Compose(p.model[parent], local)
	}
	p.modelDirty = false
}

// CopyFrom copies the transforms of other into p, along with every pose data kind both poses carry.
func (p *Pose) CopyFrom(other *Pose) error {
	if len(other.local) != len(p.local) {
		return utils.NewLengthMismatchError("joint transforms", len(p.local), len(other.local))
	}
	copy(p.local, other.local)
	copy(p.model, other.model)
	p.modelDirty = other.modelDirty

	var errs error
	for _, d := range p.poseData {
		if from := other.PoseData(d.Kind()); from != nil {
			errs = multierr.Append(errs, d.CopyFrom(from))
		}
	}
	return errs
}

// Blend moves every local transform toward dest by weight, then blends each attached pose data
// against dest.
func (p *Pose) Blend(dest *Pose, weight float64) error {
	if dest == nil {
		return errors.New("cannot blend toward a nil pose")
	}
	if len(dest.local) != len(p.local) {
		return utils.NewLengthMismatchError("joint transforms", len(p.local), len(dest.local))
	}
	for i := range p.local {
		p.local[i] = spatialmath.Interpolate(p.local[i], dest.local[i], weight)
	}
	p.modelDirty = true

	var errs error
	for _, d := range p.poseData {
		errs = multierr.Append(errs, errors.Wrapf(d.Blend(dest, weight), "blending %s pose data", d.Kind()))
	}
	return errs
}

// AddPoseData attaches d to the pose. A pose holds at most one value of each kind.
func (p *Pose) AddPoseData(d PoseData) error {
	if d.Kind() == UnknownPoseData {
		return errors.New("cannot attach pose data of unknown kind")
	}
	if p.PoseData(d.Kind()) != nil {
		return errors.Errorf("pose already has %s pose data", d.Kind())
	}
	p.poseData = append(p.poseData, d)
	d.SetPose(p)
	if p.instance != nil {
		d.LinkToInstance(p.instance)
	}
	return nil
}

// PoseData returns the attached data of the given kind, or nil.
func (p *Pose) PoseData(kind PoseDataKind) PoseData {
	for _, d := range p.poseData {
		if d.Kind() == kind {
			return d
		}
	}
	return nil
}

// RemovePoseData detaches the data of the given kind and reports whether there was any.
func (p *Pose) RemovePoseData(kind PoseDataKind) bool {
	for i, d := range p.poseData {
		if d.Kind() == kind {
			d.SetPose(nil)
			p.poseData = append(p.poseData[:i], p.poseData[i+1:]...)
			return true
		}
	}
	return false
}

// ClearPoseData detaches all pose data.
func (p *Pose) ClearPoseData() {
	for _, d := range p.poseData {
		d.SetPose(nil)
	}
	p.poseData = nil
}

// ResetPoseData zeroes all attached pose data in place.
func (p *Pose) ResetPoseData() {
	for _, d := range p.poseData {
		d.Reset()
	}
}
