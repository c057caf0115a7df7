package systems

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/devakorn/portfolio/components"
)

// PointerInfluence perturbs a particle position relative to the last known
// pointer position. It runs after the velocity step and before the edge
// policy, and never changes velocities.
type PointerInfluence interface {
	Influence(pos *components.Position, pointer r2.Vec)
}

// ParsePointerInfluence builds the influence named by mode. "none" returns nil.
func ParsePointerInfluence(mode string, radius, strength float64) (PointerInfluence, error) {
	switch strings.ToLower(mode) {
	case "", "none":
		return nil, nil
	case "repel":
		return Repel{Radius: radius, Strength: strength}, nil
	case "attract":
		return Attract{Radius: radius, Strength: strength}, nil
	}
	return nil, fmt.Errorf("unknown pointer mode %q", mode)
}

// Repel pushes particles within Radius away from the pointer by up to
// Strength px per frame, falling off linearly with distance.
type Repel struct {
	Radius   float64
	Strength float64
}

// Influence implements PointerInfluence.
func (r Repel) Influence(pos *components.Position, pointer r2.Vec) {
	d := r2.Sub(r2.Vec{X: pos.X, Y: pos.Y}, pointer)
	dist := r2.Norm(d)
	if dist == 0 || dist >= r.Radius {
		return
	}
	step := r.Strength * (1 - dist/r.Radius)
	pos.X += d.X / dist * step
	pos.Y += d.Y / dist * step
}

// Attract pulls particles within Radius toward the pointer by up to
// Strength px per frame without overshooting it.
type Attract struct {
	Radius   float64
	Strength float64
}

// Influence implements PointerInfluence.
func (a Attract) Influence(pos *components.Position, pointer r2.Vec) {
	d := r2.Sub(pointer, r2.Vec{X: pos.X, Y: pos.Y})
	dist := r2.Norm(d)
	if dist == 0 || dist >= a.Radius {
		return
	}
	step := a.Strength * (1 - dist/a.Radius)
	if step > dist {
		step = dist
	}
	pos.X += d.X / dist * step
	pos.Y += d.Y / dist * step
}
