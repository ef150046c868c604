package debugdraw

import (
	"sync"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
)

// Line is a recorded line primitive.
type Line struct {
	From, To r3.Vector
	Color    colorful.Color
}

// Ball is a recorded ball primitive.
type Ball struct {
	Center r3.Vector
	Radius float64
	Color  colorful.Color
}

// Recorder is a Display that keeps every primitive drawn onto it.
type Recorder struct {
	mu    sync.Mutex
	lines []Line
	balls []Ball
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawLine records a line.
func (r *Recorder) DrawLine(from, to r3.Vector, c colorful.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{From: from, To: to, Color: c})
}

// DrawBall records a ball.
func (r *Recorder) DrawBall(center r3.Vector, radius float64, c colorful.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balls = append(r.balls, Ball{Center: center, Radius: radius, Color: c})
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

// Balls returns a copy of the recorded balls.
func (r *Recorder) Balls() []Ball {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Ball(nil), r.balls...)
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.balls = nil
}
