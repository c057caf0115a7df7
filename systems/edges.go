package systems

import (
	"fmt"
	"math"
	"strings"

	"github.com/devakorn/portfolio/components"
)

// EdgePolicy decides what happens when a particle leaves the canvas.
type EdgePolicy uint8

const (
	// EdgeWrap moves the particle to the opposite edge. Velocity is untouched.
	EdgeWrap EdgePolicy = iota
	// EdgeBounce reverses the velocity component of the crossed axis and
	// reflects the position back inside.
	EdgeBounce
)

func (e EdgePolicy) String() string {
	if e == EdgeBounce {
		return "bounce"
	}
	return "wrap"
}

// ParseEdgePolicy parses "wrap" or "bounce".
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(s) {
	case "", "wrap":
		return EdgeWrap, nil
	case "bounce":
		return EdgeBounce, nil
	}
	return EdgeWrap, fmt.Errorf("unknown edge policy %q", s)
}

// apply brings pos back into [0,w)×[0,h).
func (e EdgePolicy) apply(pos *components.Position, vel *components.Velocity, w, h float64) {
	if e == EdgeBounce {
		pos.X, vel.X = bounceCoord(pos.X, vel.X, w)
		pos.Y, vel.Y = bounceCoord(pos.Y, vel.Y, h)
		return
	}
	pos.X = wrapCoord(pos.X, w)
	pos.Y = wrapCoord(pos.Y, h)
}

// wrapCoord returns v mapped into [0, size).
func wrapCoord(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds up to size
	if v >= size {
		v = 0
	}
	return v
}

// bounceCoord reflects v into [0, size) and points vel back inside.
func bounceCoord(v, vel, size float64) (float64, float64) {
	if size <= 0 {
		return 0, vel
	}
	switch {
	case v < 0:
		v = -v
		vel = math.Abs(vel)
	case v >= size:
		v = 2*size - v
		vel = -math.Abs(vel)
	default:
		return v, vel
	}
	// Overshoot larger than the canvas itself
	if v < 0 {
		v = 0
	} else if v >= size {
		v = math.Nextafter(size, 0)
	}
	return v, vel
}
