package posedata

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/debugdraw"
	"go.viam.com/motionmatch/utils"
)

// DebugDraw draws every joint's linear velocity, scaled by Config.DebugDrawScale, onto display
// using the owning pose to place it in the world.
func (jv *JointVelocities) DebugDraw(display debugdraw.Display, c colorful.Color) error {
	if display == nil {
		return errors.New("cannot draw joint velocities without a display")
	}
	if jv.pose == nil {
		return errors.New("joint velocities are not attached to a pose")
	}
	if numTransforms := jv.pose.NumTransforms(); numTransforms != len(jv.velocities) {
		return utils.NewLengthMismatchError("joint velocities", numTransforms, len(jv.velocities))
	}
	if len(jv.velocities) == 0 {
		return nil
	}
	if err := jv.ensureDefaults(); err != nil {
		return err
	}

	relativeToWorldTM := jv.pose.WorldSpaceTransform(jv.relativeToJointIndex)
	for i, velocity := range jv.velocities {
		jointModelTM := jv.pose.ModelSpaceTransform(i)
		jointPosition := relativeToWorldTM.TransformPoint(jointModelTM.Point())
		velocityWorldSpace := relativeToWorldTM.TransformVector(velocity.Mul(jv.cfg.DebugDrawScale))
		debugdraw.Velocity(display, jointPosition, velocityWorldSpace, c)
	}
	return nil
}
