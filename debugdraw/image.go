package debugdraw

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Plane selects which two world axes an ImageDisplay projects onto.
type Plane int

const (
	// PlaneXY looks down the z axis.
	PlaneXY Plane = iota
	// PlaneXZ looks along the y axis.
	PlaneXZ
	// PlaneYZ looks along the x axis.
	PlaneYZ
)

// ImageDisplay rasterizes primitives with an orthographic projection centered on the image.
type ImageDisplay struct {
	dc            *gg.Context
	plane         Plane
	pixelsPerUnit float64
	lineWidth     float64
}

// NewImageDisplay creates a width x height surface filled with background where one world unit
// spans pixelsPerUnit pixels.
func NewImageDisplay(width, height int, plane Plane, pixelsPerUnit float64, background colorful.Color) (*ImageDisplay, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", width, height)
	}
	if pixelsPerUnit <= 0 {
		return nil, errors.Errorf("pixels per unit must be positive, got %v", pixelsPerUnit)
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()
	return &ImageDisplay{dc: dc, plane: plane, pixelsPerUnit: pixelsPerUnit, lineWidth: 2}, nil
}

// project maps a world point to pixel coordinates. Image y grows downward, so the vertical world
// axis is flipped.
func (d *ImageDisplay) project(p r3.Vector) (float64, float64) {
	var u, v float64
	switch d.plane {
	case PlaneXZ:
		u, v = p.X, p.Z
	case PlaneYZ:
		u, v = p.Y, p.Z
	default:
		u, v = p.X, p.Y
	}
	cx := float64(d.dc.Width()) / 2
	cy := float64(d.dc.Height()) / 2
	return cx + u*d.pixelsPerUnit, cy - v*d.pixelsPerUnit
}

// DrawLine strokes a line between two world points.
func (d *ImageDisplay) DrawLine(from, to r3.Vector, c colorful.Color) {
	x1, y1 := d.project(from)
	x2, y2 := d.project(to)
	d.dc.SetColor(c)
	d.dc.SetLineWidth(d.lineWidth)
	d.dc.DrawLine(x1, y1, x2, y2)
	d.dc.Stroke()
}

// DrawBall fills a circle at a world point. Balls never shrink below one pixel.
func (d *ImageDisplay) DrawBall(center r3.Vector, radius float64, c colorful.Color) {
	x, y := d.project(center)
	r := radius * d.pixelsPerUnit
	if r < 1 {
		r = 1
	}
	d.dc.SetColor(c)
	d.dc.DrawCircle(x, y, r)
	d.dc.Fill()
}

// Image returns the rendered image.
func (d *ImageDisplay) Image() image.Image {
	return d.dc.Image()
}

// SavePNG writes the rendered image to path.
func (d *ImageDisplay) SavePNG(path string) error {
	return errors.Wrapf(d.dc.SavePNG(path), "saving debug draw to %q", path)
}
