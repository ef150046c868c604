// Package posedata contains the pose data kinds that can be attached to a skeleton.Pose, most
// notably JointVelocities, along with a registry to construct them by kind.
package posedata

import (
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/skeleton"
)

// Registration describes how to construct one kind of pose data.
type Registration struct {
	// Name is the serialized name of the kind.
	Name string
	// Version is the current schema version of the kind's serialized form.
	Version int
	// Constructor creates an empty, unbound value of the kind.
	Constructor func() skeleton.PoseData
	// Schema describes the kind's serialized form, if known.
	Schema *jsonschema.Schema
	// ConfigSchema describes the attributes accepted when configuring the kind, if any.
	ConfigSchema *jsonschema.Schema
}

var (
	registryMu sync.RWMutex
	registry   = map[skeleton.PoseDataKind]Registration{}
)

// Register makes a pose data kind constructible through New. It panics when the kind is already
// registered or the registration has no constructor.
func Register(kind skeleton.PoseDataKind, reg Registration) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if kind == skeleton.UnknownPoseData {
		panic(errors.New("cannot register the unknown pose data kind"))
	}
	if _, old := registry[kind]; old {
		panic(errors.Errorf("trying to register two pose data constructors for kind %s", kind))
	}
	if reg.Constructor == nil {
		panic(errors.Errorf("cannot register a nil constructor for pose data kind %s", kind))
	}
	registry[kind] = reg
}

// Lookup returns the registration for kind, if any.
func Lookup(kind skeleton.PoseDataKind) (Registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[kind]
	return reg, ok
}

// RegisteredKinds returns every registered kind in ascending order.
func RegisteredKinds() []skeleton.PoseDataKind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]skeleton.PoseDataKind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// New constructs an empty value of the registered kind.
func New(kind skeleton.PoseDataKind) (skeleton.PoseData, error) {
	reg, ok := Lookup(kind)
	if !ok {
		return nil, errors.Errorf("no pose data registered for kind %s", kind)
	}
	return reg.Constructor(), nil
}

// AttachTo constructs one value of each kind and attaches it to pose. Kinds already attached are
// left as they are.
func AttachTo(pose *skeleton.Pose, kinds ...skeleton.PoseDataKind) error {
	if pose == nil {
		return errors.New("cannot attach pose data to a nil pose")
	}
	for _, kind := range kinds {
		if pose.PoseData(kind) != nil {
			continue
		}
		d, err := New(kind)
		if err != nil {
			return err
		}
		if err := pose.AddPoseData(d); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Register(skeleton.JointVelocitiesPoseData, Registration{
		Name:    skeleton.JointVelocitiesPoseData.String(),
		Version: SchemaVersion,
		Constructor: func() skeleton.PoseData {
			return NewJointVelocities()
		},
		Schema:       jsonschema.Reflect(&jointVelocitiesJSON{}),
		ConfigSchema: jsonschema.Reflect(&Config{}),
	})
}
