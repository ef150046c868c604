package posedata

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"go.viam.com/motionmatch/utils"
)

const (
	// DefaultTimeRange is the width in seconds of the window sampled around the requested time.
	DefaultTimeRange = 0.05
	// DefaultNumSamples is the number of finite differences averaged over the window.
	DefaultNumSamples = 3
	// DefaultDebugDrawScale scales velocities into lengths when drawing them.
	DefaultDebugDrawScale = 0.15
)

// Config holds the constants used to estimate and draw joint velocities.
type Config struct {
	TimeRange      float64 `json:"time_range"`
	NumSamples     int     `json:"num_samples"`
	DebugDrawScale float64 `json:"debug_draw_scale"`
}

// DefaultConfig returns the configuration used by NewJointVelocities.
func DefaultConfig() Config {
	return Config{
		TimeRange:      DefaultTimeRange,
		NumSamples:     DefaultNumSamples,
		DebugDrawScale: DefaultDebugDrawScale,
	}
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.TimeRange <= 0 || !utils.IsFinite(cfg.TimeRange) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("time_range must be a positive finite number of seconds, got %v", cfg.TimeRange))
	}
	if cfg.NumSamples < 1 {
		return utils.NewConfigValidationError(path,
			errors.Errorf("num_samples must be at least 1, got %d", cfg.NumSamples))
	}
	if !utils.IsFinite(cfg.DebugDrawScale) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("debug_draw_scale must be finite, got %v", cfg.DebugDrawScale))
	}
	return nil
}

// DecodeConfig converts an attribute map into a validated Config. Attributes left out keep their
// default values.
func DecodeConfig(attributes map[string]interface{}) (*Config, error) {
	conf := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &conf,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, err
	}
	if err := conf.Validate("joint_velocities"); err != nil {
		return nil, err
	}
	return &conf, nil
}
