// Package motion defines motion clips and the playback instances that sample them.
package motion

import (
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/skeleton"
)

// Motion is a clip that can be evaluated into a pose at any time in [0, Duration()].
type Motion interface {
	Name() string
	// Duration is the clip length in seconds.
	Duration() float64
	// Update evaluates the motion at inst's current time into out. Joints the motion does not
	// animate take their transform from bindPose.
	Update(bindPose, out *skeleton.Pose, inst *Instance) error
}

// Instance is a motion being played on a skeleton instance.
type Instance struct {
	motion        Motion
	actorInstance *skeleton.Instance
	currentTime   float64
}

// NewInstance creates a playback instance of m on actor, positioned at time zero.
func NewInstance(m Motion, actor *skeleton.Instance) *Instance {
	return &Instance{motion: m, actorInstance: actor}
}

// Motion returns the played motion.
func (mi *Instance) Motion() Motion {
	return mi.motion
}

// ActorInstance returns the skeleton instance the motion is played on.
func (mi *Instance) ActorInstance() *skeleton.Instance {
	return mi.actorInstance
}

// CurrentTime returns the playback position in seconds.
func (mi *Instance) CurrentTime() float64 {
	return mi.currentTime
}

// SetCurrentTime moves the playback position. The time is not clamped; motions clamp when sampling.
func (mi *Instance) SetCurrentTime(t float64) {
	mi.currentTime = t
}

// SamplePose evaluates the motion at the current time into out using the actor's bind pose.
func (mi *Instance) SamplePose(out *skeleton.Pose) error {
	if mi.motion == nil || mi.actorInstance == nil {
		return errors.New("motion instance is not bound to a motion and actor instance")
	}
	return mi.motion.Update(mi.actorInstance.BindPose(), out, mi)
}
