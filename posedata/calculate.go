package posedata

import (
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/motion"
	"go.viam.com/motionmatch/skeleton"
	"go.viam.com/motionmatch/spatialmath"
	"go.viam.com/motionmatch/utils"
)

// CalculateVelocity estimates the velocity of every joint of the motion instance's actor at the
// instance's current time, overwriting all stored velocities.
//
// The motion is sampled Config.NumSamples+1 times across a window of Config.TimeRange seconds
// centered on the current time, with sample times clamped to the motion's duration. The finite
// differences between consecutive samples are expressed in the frame of relativeToJointIndex as
// posed at the later sample and then averaged. skeleton.InvalidIndex selects joint 0, as does any
// index when the actor has no joints. The
// instance's current time is the same on return as it was on entry.
func (jv *JointVelocities) CalculateVelocity(mi *motion.Instance, relativeToJointIndex int) (err error) {
	if mi == nil {
		return errors.New("cannot calculate joint velocities without a motion instance")
	}
	m := mi.Motion()
	actor := mi.ActorInstance()
	if m == nil || actor == nil {
		return errors.New("motion instance is not bound to a motion and actor instance")
	}
	if err := jv.ensureDefaults(); err != nil {
		return err
	}

	numJoints := len(jv.velocities)
	if actorJoints := actor.NumJoints(); actorJoints != numJoints {
		return utils.NewLengthMismatchError("joints", numJoints, actorJoints)
	}
	if relativeToJointIndex < 0 {
		relativeToJointIndex = 0
	}
	switch {
	case numJoints == 0:
		relativeToJointIndex = 0
	case relativeToJointIndex >= numJoints:
		return utils.NewIndexOutOfRangeError("reference joint", relativeToJointIndex, numJoints)
	}
	jv.SetRelativeToJointIndex(relativeToJointIndex)

	originalTime := mi.CurrentTime()
	defer mi.SetCurrentTime(originalTime)

	pool := actor.PosePool()
	prevPose := pool.RequestPose(actor)
	defer pool.FreePose(prevPose)
	currentPose := pool.RequestPose(actor)
	defer pool.FreePose(currentPose)
	bindPose := actor.BindPose()

	jv.Reset()
	defer func() {
		if err != nil {
			jv.Reset()
		}
	}()

	numSamples := jv.cfg.NumSamples
	timeRange := jv.cfg.TimeRange
	halfTimeRange := timeRange * 0.5
	startTime := originalTime - halfTimeRange
	frameDelta := timeRange / float64(numSamples)
	duration := m.Duration()

	clamped := false
	for sampleIndex := 0; sampleIndex <= numSamples; sampleIndex++ {
		sampleTime := startTime + float64(sampleIndex)*frameDelta
		if clampedTime := utils.Clamp(sampleTime, 0, duration); clampedTime != sampleTime {
			sampleTime = clampedTime
			clamped = true
		}
		mi.SetCurrentTime(sampleTime)

		if sampleIndex == 0 {
			if err := m.Update(bindPose, prevPose, mi); err != nil {
				return errors.Wrapf(err, "sampling motion %q at %v", m.Name(), sampleTime)
			}
			continue
		}

		if err := m.Update(bindPose, currentPose, mi); err != nil {
			return errors.Wrapf(err, "sampling motion %q at %v", m.Name(), sampleTime)
		}
		jv.accumulate(prevPose, currentPose, frameDelta)
		if err := prevPose.CopyFrom(currentPose); err != nil {
			return err
		}
	}

	invNumSamples := 1 / float64(numSamples)
	for i := range jv.velocities {
		jv.velocities[i] = jv.velocities[i].Mul(invNumSamples)
		jv.angularVelocities[i] = jv.angularVelocities[i].Mul(invNumSamples)
	}

	if clamped {
		jv.logger.Debugw("velocity sample window clamped to motion duration",
			"motion", m.Name(),
			"time", originalTime,
			"time_range", timeRange,
			"duration", duration,
		)
	}
	return nil
}

// accumulate adds the finite difference between two consecutive samples to the running sums.
func (jv *JointVelocities) accumulate(prevPose, currentPose *skeleton.Pose, frameDelta float64) {
	if len(jv.velocities) == 0 {
		return
	}
	invRelativeTM := currentPose.WorldSpaceTransform(jv.relativeToJointIndex).Inverse()
	for i := range jv.velocities {
		prevTM := prevPose.WorldSpaceTransform(i)
		currentTM := currentPose.WorldSpaceTransform(i)

		velocity := spatialmath.LinearVelocityBetween(prevTM.Point(), currentTM.Point(), frameDelta)
		jv.velocities[i] = jv.velocities[i].Add(invRelativeTM.TransformVector(velocity))

		angularVelocity := spatialmath.AngularVelocityBetween(prevTM.Orientation(), currentTM.Orientation(), frameDelta)
		jv.angularVelocities[i] = jv.angularVelocities[i].Add(invRelativeTM.TransformVector(angularVelocity))
	}
}
