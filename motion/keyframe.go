package motion

import (
	"sort"

	"github.com/pkg/errors"

	"go.viam.com/motionmatch/skeleton"
	"go.viam.com/motionmatch/spatialmath"
	"go.viam.com/motionmatch/utils"
)

// Keyframe is a joint's local transform at a point in time.
type Keyframe struct {
	Time      float64
	Transform spatialmath.Transform
}

// Track animates one joint, addressed by name.
type Track struct {
	Joint     string
	Keyframes []Keyframe
}

func (tr *Track) sample(t float64) spatialmath.Transform {
	keys := tr.Keyframes
	next := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	if next == 0 {
		return keys[0].Transform
	}
	if next == len(keys) {
		return keys[len(keys)-1].Transform
	}
	prev := keys[next-1]
	span := keys[next].Time - prev.Time
	return spatialmath.Interpolate(prev.Transform, keys[next].Transform, (t-prev.Time)/span)
}

// KeyframeMotion is a motion made of per-joint keyframe tracks. Positions are interpolated
// linearly and rotations spherically between keys.
type KeyframeMotion struct {
	name     string
	duration float64
	tracks   []Track
}

// NewKeyframeMotion validates tracks and creates a motion whose duration is the latest key time.
func NewKeyframeMotion(name string, tracks []Track) (*KeyframeMotion, error) {
	m := &KeyframeMotion{name: name, tracks: make([]Track, 0, len(tracks))}
	for _, tr := range tracks {
		if tr.Joint == "" {
			return nil, errors.Errorf("motion %q has a track without a joint name", name)
		}
		if len(tr.Keyframes) == 0 {
			return nil, errors.Errorf("track for joint %q has no keyframes", tr.Joint)
		}
		for i, key := range tr.Keyframes {
			if key.Time < 0 {
				return nil, errors.Errorf("track for joint %q has a keyframe at negative time %v", tr.Joint, key.Time)
			}
			if i > 0 && key.Time <= tr.Keyframes[i-1].Time {
				return nil, errors.Errorf("track for joint %q has keyframes out of order at index %d", tr.Joint, i)
			}
		}
		if last := tr.Keyframes[len(tr.Keyframes)-1].Time; last > m.duration {
			m.duration = last
		}
		keys := make([]Keyframe, len(tr.Keyframes))
		copy(keys, tr.Keyframes)
		m.tracks = append(m.tracks, Track{Joint: tr.Joint, Keyframes: keys})
	}
	return m, nil
}

// Name returns the motion's name.
func (m *KeyframeMotion) Name() string {
	return m.name
}

// Duration returns the time of the latest keyframe.
func (m *KeyframeMotion) Duration() float64 {
	return m.duration
}

// Update evaluates all tracks at the clamped current time of inst. Tracks for joints missing from
// out's skeleton are skipped.
func (m *KeyframeMotion) Update(bindPose, out *skeleton.Pose, inst *Instance) error {
	if bindPose.NumTransforms() != out.NumTransforms() {
		return utils.NewLengthMismatchError("joint transforms", out.NumTransforms(), bindPose.NumTransforms())
	}
	for i := 0; i < out.NumTransforms(); i++ {
		out.SetLocalSpaceTransform(i, bindPose.LocalSpaceTransform(i))
	}

	t := utils.Clamp(inst.CurrentTime(), 0, m.duration)
	s := out.Instance().Skeleton()
	for i := range m.tracks {
		jointIndex, ok := s.JointIndex(m.tracks[i].Joint)
		if !ok {
			continue
		}
		out.SetLocalSpaceTransform(jointIndex, m.tracks[i].sample(t))
	}
	return nil
}
