package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/systems"
)

// FieldOverlay draws debug views of the particle field over the page.
type FieldOverlay struct {
	Accent rl.Color
}

// NewFieldOverlay creates an overlay drawn in the given accent colour.
func NewFieldOverlay(accent rl.Color) *FieldOverlay {
	return &FieldOverlay{Accent: accent}
}

// DrawGrid draws the link grid: one cell per link distance.
func (o *FieldOverlay) DrawGrid(width, height int, cell float64) {
	if cell <= 0 {
		return
	}
	col := rl.Fade(o.Accent, 0.12)
	for x := 0.0; x < float64(width); x += cell {
		rl.DrawLine(int32(x), 0, int32(x), int32(height), col)
	}
	for y := 0.0; y < float64(height); y += cell {
		rl.DrawLine(0, int32(y), int32(width), int32(y), col)
	}
}

// DrawPointer marks the tracked pointer and the influence radius.
func (o *FieldOverlay) DrawPointer(x, y, radius float64) {
	c := rl.Vector2{X: float32(x), Y: float32(y)}
	rl.DrawCircleV(c, 3, o.Accent)
	if radius > 0 {
		rl.DrawCircleLines(int32(x), int32(y), float32(radius), rl.Fade(o.Accent, 0.4))
	}
}

// DrawVelocities draws each particle's velocity scaled up for visibility.
func (o *FieldOverlay) DrawVelocities(particles []systems.Particle, scale float64) {
	col := rl.Fade(rl.White, 0.5)
	for i := range particles {
		p := &particles[i]
		rl.DrawLineV(
			rl.Vector2{X: float32(p.X), Y: float32(p.Y)},
			rl.Vector2{X: float32(p.X + p.VX*scale), Y: float32(p.Y + p.VY*scale)},
			col,
		)
	}
}
