// Package debugdraw provides drawing surfaces for visualizing pose data.
package debugdraw

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
)

// Display is a surface that world space primitives can be drawn onto.
type Display interface {
	DrawLine(from, to r3.Vector, c colorful.Color)
	DrawBall(center r3.Vector, radius float64, c colorful.Color)
}

const (
	// velocityTipRadius is the radius of the ball marking the end of a velocity line.
	velocityTipRadius = 0.01
)

// Velocity draws velocity as a line anchored at position with a ball marking its tip.
func Velocity(display Display, position, velocity r3.Vector, c colorful.Color) {
	tip := position.Add(velocity)
	display.DrawLine(position, tip, c)
	display.DrawBall(tip, velocityTipRadius, c)
}
