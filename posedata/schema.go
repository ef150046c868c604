package posedata

import (
	"encoding/json"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"go.viam.com/motionmatch/utils"
)

// SchemaVersion is the version written by MarshalJSON and ToStruct.
const SchemaVersion = 1

type jointVelocitiesJSON struct {
	Version              int          `json:"version"`
	Velocities           [][3]float64 `json:"velocities"`
	AngularVelocities    [][3]float64 `json:"angular_velocities"`
	RelativeToJointIndex int          `json:"relative_to_joint_index"`
	IsUsed               bool         `json:"is_used"`
}

func vectorsToArrays(vs []r3.Vector) [][3]float64 {
	out := make([][3]float64, 0, len(vs))
	for _, v := range vs {
		out = append(out, [3]float64{v.X, v.Y, v.Z})
	}
	return out
}

func arraysToVectors(as [][3]float64) []r3.Vector {
	out := make([]r3.Vector, 0, len(as))
	for _, a := range as {
		out = append(out, r3.Vector{X: a[0], Y: a[1], Z: a[2]})
	}
	return out
}

// MarshalJSON encodes the velocities, the reference joint and the used flag.
func (jv *JointVelocities) MarshalJSON() ([]byte, error) {
	return json.Marshal(jointVelocitiesJSON{
		Version:              SchemaVersion,
		Velocities:           vectorsToArrays(jv.velocities),
		AngularVelocities:    vectorsToArrays(jv.angularVelocities),
		RelativeToJointIndex: jv.relativeToJointIndex,
		IsUsed:               jv.isUsed,
	})
}

// UnmarshalJSON decodes data written by MarshalJSON. On error jv is left unchanged.
func (jv *JointVelocities) UnmarshalJSON(data []byte) error {
	var decoded jointVelocitiesJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.Wrap(err, "decoding joint velocities")
	}
	if decoded.Version < 1 || decoded.Version > SchemaVersion {
		return errors.Errorf("unsupported joint velocities version %d, expected at most %d", decoded.Version, SchemaVersion)
	}
	if len(decoded.AngularVelocities) != len(decoded.Velocities) {
		return utils.NewLengthMismatchError("angular velocities", len(decoded.Velocities), len(decoded.AngularVelocities))
	}
	numJoints := len(decoded.Velocities)
	if decoded.RelativeToJointIndex < 0 || (numJoints > 0 && decoded.RelativeToJointIndex >= numJoints) {
		return utils.NewIndexOutOfRangeError("reference joint", decoded.RelativeToJointIndex, numJoints)
	}
	if err := jv.ensureDefaults(); err != nil {
		return err
	}

	jv.velocities = arraysToVectors(decoded.Velocities)
	jv.angularVelocities = arraysToVectors(decoded.AngularVelocities)
	jv.relativeToJointIndex = decoded.RelativeToJointIndex
	if numJoints == 0 {
		jv.relativeToJointIndex = 0
	}
	jv.isUsed = decoded.IsUsed
	return nil
}

// ToStruct converts the velocities into a protobuf Struct with the same fields as MarshalJSON.
func (jv *JointVelocities) ToStruct() (*structpb.Struct, error) {
	data, err := jv.MarshalJSON()
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "converting joint velocities to struct")
	}
	return s, nil
}

// FromStruct decodes a protobuf Struct produced by ToStruct.
func (jv *JointVelocities) FromStruct(s *structpb.Struct) error {
	if s == nil {
		return errors.New("cannot decode joint velocities from a nil struct")
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "converting struct to joint velocities")
	}
	return jv.UnmarshalJSON(data)
}
