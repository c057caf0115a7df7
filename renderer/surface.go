package renderer

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/canvas"
)

var errNoWindow = errors.New("renderer: raylib window not ready")

// Surface draws the particle field into the raylib window. It must only be
// used between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	width, height int
	background    rl.Color
}

// NewSurface creates a window surface of the given size.
func NewSurface(width, height int, background canvas.Color) *Surface {
	return &Surface{width: width, height: height, background: ToRL(background)}
}

// Available reports an error when the window has not been created.
func (s *Surface) Available() error {
	if !rl.IsWindowReady() {
		return errNoWindow
	}
	return nil
}

// Size returns the surface size in px.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize updates the surface size after a window resize.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
}

// SetBackground changes the clear colour (theme switch).
func (s *Surface) SetBackground(c canvas.Color) {
	s.background = ToRL(c)
}

// Clear fills the window with the background colour.
func (s *Surface) Clear() {
	rl.ClearBackground(s.background)
}

// FillCircle draws a filled circle.
func (s *Surface) FillCircle(x, y, r float64, c canvas.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(r), ToRL(c))
}

// StrokeLine draws a line segment of the given width.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c canvas.Color) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width),
		ToRL(c),
	)
}

// ToRL converts a canvas colour to a raylib colour.
func ToRL(c canvas.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// FromRL converts a raylib colour to a canvas colour.
func FromRL(c rl.Color) canvas.Color {
	return canvas.Color{R: c.R, G: c.G, B: c.B, A: float64(c.A) / 255}
}

var (
	_ canvas.Surface = (*Surface)(nil)
	_ canvas.Prober  = (*Surface)(nil)
)
