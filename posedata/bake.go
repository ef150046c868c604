package posedata

import (
	"context"

	"github.com/pkg/errors"

	"go.viam.com/motionmatch/logging"
	"go.viam.com/motionmatch/motion"
	"go.viam.com/motionmatch/skeleton"
	"go.viam.com/motionmatch/utils"
)

// BakeVelocities estimates the joint velocities of m played on actor at each of times, such as
// when building a motion matching database. Times are split over utils.ParallelFactor workers.
// Each worker evaluates its own copy of actor, placed where actor is and sharing its pose pool.
// The returned velocities are marked as used and are in the same order as times. A nil logger
// logs to a sublogger of logging.Global.
func BakeVelocities(
	ctx context.Context,
	m motion.Motion,
	actor *skeleton.Instance,
	times []float64,
	cfg Config,
	relativeToJointIndex int,
	logger logging.Logger,
) ([]*JointVelocities, error) {
	if m == nil || actor == nil {
		return nil, errors.New("cannot bake joint velocities without a motion and actor instance")
	}
	if err := cfg.Validate("joint_velocities"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Global().Sublogger("joint_velocities")
	}

	results := make([]*JointVelocities, len(times))
	err := utils.GroupWorkParallel(ctx, len(times), func(ctx context.Context, groupNum, from, to int) error {
		inst := skeleton.NewInstance(actor.Skeleton(), actor.PosePool())
		inst.SetWorldTransform(actor.WorldTransform())
		mi := motion.NewInstance(m, inst)
		for i := from; i < to; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			jv, err := NewJointVelocitiesWithConfig(cfg, logger)
			if err != nil {
				return err
			}
			jv.LinkToInstance(inst)
			mi.SetCurrentTime(times[i])
			if err := jv.CalculateVelocity(mi, relativeToJointIndex); err != nil {
				return errors.Wrapf(err, "baking joint velocities at %v", times[i])
			}
			jv.SetUsed(true)
			results[i] = jv
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debugw("baked joint velocities", "motion", m.Name(), "frames", len(times))
	return results, nil
}

// SampleTimes returns evenly spaced times covering [0, duration] at sampleRate samples per second,
// always including both ends.
func SampleTimes(duration, sampleRate float64) ([]float64, error) {
	if duration < 0 || !utils.IsFinite(duration) {
		return nil, errors.Errorf("duration must be a non-negative finite number, got %v", duration)
	}
	if sampleRate <= 0 || !utils.IsFinite(sampleRate) {
		return nil, errors.Errorf("sample rate must be positive, got %v", sampleRate)
	}
	times := []float64{0}
	for i := 1; float64(i)/sampleRate < duration; i++ {
		times = append(times, float64(i)/sampleRate)
	}
	if duration > 0 {
		times = append(times, duration)
	}
	return times, nil
}
