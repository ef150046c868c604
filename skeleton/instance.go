package skeleton

import (
	"go.viam.com/motionmatch/spatialmath"
)

// Instance is a skeleton placed in the world. Instances sharing a PosePool may be evaluated from
// different goroutines.
type Instance struct {
	skeleton       *Skeleton
	worldTransform spatialmath.Transform
	bindPose       *Pose
	pool           *PosePool
}

// NewInstance creates an instance of s at the world origin. A nil pool gives the instance a pool
// of its own.
func NewInstance(s *Skeleton, pool *PosePool) *Instance {
	if pool == nil {
		pool = NewPosePool()
	}
	inst := &Instance{
		skeleton:       s,
		worldTransform: spatialmath.NewZeroTransform(),
		pool:           pool,
	}
	inst.bindPose = NewPose(inst)
	return inst
}

// Skeleton returns the instanced skeleton.
func (inst *Instance) Skeleton() *Skeleton {
	return inst.skeleton
}

// NumJoints returns the number of joints of the instanced skeleton.
func (inst *Instance) NumJoints() int {
	return inst.skeleton.NumJoints()
}

// WorldTransform returns where the instance is placed in the world.
func (inst *Instance) WorldTransform() spatialmath.Transform {
	return inst.worldTransform
}

// SetWorldTransform moves the instance.
func (inst *Instance) SetWorldTransform(t spatialmath.Transform) {
	inst.worldTransform = t
}

// BindPose returns the rest pose of the instance. Callers must not modify it.
func (inst *Instance) BindPose() *Pose {
	return inst.bindPose
}

// PosePool returns the scratch pose pool used when evaluating this instance.
func (inst *Instance) PosePool() *PosePool {
	return inst.pool
}
