package portfolio

import (
	"math"

	"github.com/devakorn/portfolio/config"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o; the zero Rect when disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Transform is a card's 3D tilt: rotations in degrees and a uniform scale
// under a perspective distance in px.
type Transform struct {
	RotateX     float64
	RotateY     float64
	Scale       float64
	Perspective float64
}

// Tilter computes card tilt from the pointer position.
type Tilter struct {
	cfg config.TiltConfig
}

// NewTilter creates a tilter; a zero divisor falls back to 10.
func NewTilter(cfg config.TiltConfig) Tilter {
	if cfg.Divisor == 0 {
		cfg.Divisor = 10
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	return Tilter{cfg: cfg}
}

// Tilt returns the transform for a pointer at (px, py) over card r.
// rotateX = (y - cy) / divisor and rotateY = (cx - x) / divisor, with x and
// y relative to the card's top-left corner.
func (t Tilter) Tilt(r Rect, px, py float64) Transform {
	x := px - r.X
	y := py - r.Y
	cx := r.W / 2
	cy := r.H / 2
	return Transform{
		RotateX:     (y - cy) / t.cfg.Divisor,
		RotateY:     (cx - x) / t.cfg.Divisor,
		Scale:       t.cfg.Scale,
		Perspective: t.cfg.Perspective,
	}
}

// Reset returns the identity transform shown when the pointer leaves.
func (t Tilter) Reset() Transform {
	return Transform{Scale: 1, Perspective: t.cfg.Perspective}
}

// Point is a 2D point in window or page coordinates.
type Point struct {
	X, Y float64
}

// Corners projects the four corners of r under t, clockwise from the top
// left. Rotations are applied about the card centre in the order scale,
// rotateY, rotateX, followed by the perspective divide.
func (t Transform) Corners(r Rect) [4]Point {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	ax := t.RotateX * math.Pi / 180
	ay := t.RotateY * math.Pi / 180
	sinX, cosX := math.Sincos(ax)
	sinY, cosY := math.Sincos(ay)

	offsets := [4]Point{
		{-r.W / 2, -r.H / 2},
		{r.W / 2, -r.H / 2},
		{r.W / 2, r.H / 2},
		{-r.W / 2, r.H / 2},
	}
	var out [4]Point
	for i, o := range offsets {
		x := o.X * scale
		y := o.Y * scale

		// rotateY: z grows toward the viewer
		x1 := x * cosY
		z1 := -x * sinY
		// rotateX
		y2 := y*cosX - z1*sinX
		z2 := y*sinX + z1*cosX

		f := 1.0
		if t.Perspective > 0 && z2 < t.Perspective {
			f = t.Perspective / (t.Perspective - z2)
		}
		out[i] = Point{X: cx + x1*f, Y: cy + y2*f}
	}
	return out
}
