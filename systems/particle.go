package systems

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/devakorn/portfolio/canvas"
	"github.com/devakorn/portfolio/config"
)

// Particle is a single animated point. It is the value form of the
// Position, Velocity and Appearance components of one entity.
type Particle struct {
	X, Y    float64 // canvas-space position
	Radius  float64 // > 0
	Opacity float64 // [0, 1]
	VX, VY  float64 // per-frame velocity
}

// FieldConfig holds the particle field parameters.
type FieldConfig struct {
	Count       int
	DensityArea float64 // px² per particle; 0 keeps Count fixed
	MaxCount    int     // 0 = uncapped

	RadiusMin, RadiusMax   float64
	OpacityMin, OpacityMax float64
	Speed                  float64

	LinkDistance float64
	LinkAlpha    float64
	LineWidth    float64

	Edges   EdgePolicy
	Index   LinkIndex
	Color   canvas.Color
	Pointer PointerInfluence // nil = pointer is tracked only
}

// DefaultFieldConfig returns the stock background: 50 particles wrapping at
// the edges, linked below 100px.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:        50,
		MaxCount:     400,
		RadiusMin:    0.5,
		RadiusMax:    2.0,
		OpacityMin:   0.3,
		OpacityMax:   0.8,
		Speed:        0.25,
		LinkDistance: 100,
		LinkAlpha:    0.2,
		LineWidth:    0.5,
		Edges:        EdgeWrap,
		Index:        IndexPairs,
		Color:        canvas.Color{R: 255, G: 42, B: 42, A: 1},
	}
}

// FieldConfigFrom converts the loaded particle config.
func FieldConfigFrom(p config.ParticlesConfig) (FieldConfig, error) {
	edges, err := ParseEdgePolicy(p.EdgePolicy)
	if err != nil {
		return FieldConfig{}, err
	}
	index, err := ParseLinkIndex(p.LinkIndex)
	if err != nil {
		return FieldConfig{}, err
	}
	pointer, err := ParsePointerInfluence(p.Pointer.Mode, p.Pointer.Radius, p.Pointer.Strength)
	if err != nil {
		return FieldConfig{}, err
	}

	return FieldConfig{
		Count:        p.Count,
		DensityArea:  p.DensityArea,
		MaxCount:     p.MaxCount,
		RadiusMin:    p.RadiusMin,
		RadiusMax:    p.RadiusMax,
		OpacityMin:   p.OpacityMin,
		OpacityMax:   p.OpacityMax,
		Speed:        p.Speed,
		LinkDistance: p.LinkDistance,
		LinkAlpha:    p.LinkAlpha,
		LineWidth:    p.LineWidth,
		Edges:        edges,
		Index:        index,
		Color:        canvas.FromRGB(p.Color),
		Pointer:      pointer,
	}, nil
}

// CountFor returns how many particles a canvas of w×h pixels holds.
func (c FieldConfig) CountFor(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := c.Count
	if c.DensityArea > 0 {
		n = int(math.Ceil(w * h / c.DensityArea))
	}
	if c.MaxCount > 0 && n > c.MaxCount {
		n = c.MaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}

// randomParticle draws a particle with independent uniform attributes.
func (c FieldConfig) randomParticle(rng *rand.Rand, w, h float64) Particle {
	return Particle{
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		Radius:  c.RadiusMin + rng.Float64()*(c.RadiusMax-c.RadiusMin),
		Opacity: c.OpacityMin + rng.Float64()*(c.OpacityMax-c.OpacityMin),
		VX:      rng.Float64()*2*c.Speed - c.Speed,
		VY:      rng.Float64()*2*c.Speed - c.Speed,
	}
}

// LinkIndex selects how candidate pairs are found for proximity lines.
type LinkIndex uint8

const (
	IndexPairs LinkIndex = iota // scan every unordered pair once
	IndexGrid                   // bucket particles into link-distance cells
)

func (i LinkIndex) String() string {
	if i == IndexGrid {
		return "grid"
	}
	return "pairs"
}

// ParseLinkIndex parses "pairs" or "grid".
func ParseLinkIndex(s string) (LinkIndex, error) {
	switch strings.ToLower(s) {
	case "", "pairs":
		return IndexPairs, nil
	case "grid":
		return IndexGrid, nil
	}
	return IndexPairs, fmt.Errorf("unknown link index %q", s)
}
