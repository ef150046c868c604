package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1.0001, 1e-3), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.01, 1e-3), test.ShouldBeFalse)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(-0.5, 0, 2), test.ShouldEqual, 0.)
	test.That(t, Clamp(0.5, 0, 2), test.ShouldEqual, 0.5)
	test.That(t, Clamp(2.5, 0, 2), test.ShouldEqual, 2.)
	// a degenerate range collapses to its lower bound
	test.That(t, Clamp(0.3, 0, 0), test.ShouldEqual, 0.)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(3), test.ShouldBeTrue)
	test.That(t, IsFinite(math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}
