package posedata

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	test.That(t, cfg.Validate("path"), test.ShouldBeNil)
	test.That(t, cfg.TimeRange, test.ShouldEqual, 0.05)
	test.That(t, cfg.NumSamples, test.ShouldEqual, 3)
	test.That(t, cfg.DebugDrawScale, test.ShouldEqual, 0.15)

	for _, tc := range []struct {
		name   string
		mutate func(cfg *Config)
		err    string
	}{
		{"zero time range", func(cfg *Config) { cfg.TimeRange = 0 }, "time_range must be a positive finite number"},
		{"infinite time range", func(cfg *Config) { cfg.TimeRange = math.Inf(1) }, "time_range must be a positive finite number"},
		{"no samples", func(cfg *Config) { cfg.NumSamples = 0 }, "num_samples must be at least 1, got 0"},
		{"nan scale", func(cfg *Config) { cfg.DebugDrawScale = math.NaN() }, "debug_draw_scale must be finite"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate("path")
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "path"`)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.err)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]interface{}{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, *cfg, test.ShouldResemble, DefaultConfig())

	cfg, err = DecodeConfig(map[string]interface{}{
		"time_range":  0.1,
		"num_samples": 5,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.TimeRange, test.ShouldEqual, 0.1)
	test.That(t, cfg.NumSamples, test.ShouldEqual, 5)
	test.That(t, cfg.DebugDrawScale, test.ShouldEqual, DefaultDebugDrawScale)

	_, err = DecodeConfig(map[string]interface{}{"num_sample": 5})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "num_sample")

	_, err = DecodeConfig(map[string]interface{}{"num_samples": 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "num_samples must be at least 1")

	_, err = DecodeConfig(map[string]interface{}{"time_range": "soon"})
	test.That(t, err, test.ShouldNotBeNil)
}
