// Package canvas defines the drawing surface and frame scheduling contract
// shared by every host of the particle field.
package canvas

import "github.com/devakorn/portfolio/config"

// Color is a fixed hue with a variable alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA returns the colour as 8-bit channels with alpha scaled to 0-255.
func (c Color) RGBA() (r, g, b, a uint8) {
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return c.R, c.G, c.B, uint8(alpha*255 + 0.5)
}

// WithAlpha returns the same hue at a different alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// FromRGB builds an opaque colour from a config triple.
func FromRGB(rgb config.RGB) Color {
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}
}

// Surface is a 2-D drawing target with pixel dimensions.
// It exposes exactly the primitives the particle field needs.
type Surface interface {
	// Size returns the current backing-store dimensions in pixels.
	Size() (width, height int)

	// Clear erases the whole frame.
	Clear()

	// FillCircle draws a filled disc centred at (x, y).
	FillCircle(x, y, radius float64, c Color)

	// StrokeLine draws a line segment of the given width.
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}

// Prober is implemented by surfaces that can report they are unusable,
// e.g. a window that failed to open or a detached screen.
type Prober interface {
	Available() error
}

// Check reports whether s can be drawn on. A nil surface is unavailable.
func Check(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	if p, ok := s.(Prober); ok {
		return p.Available()
	}
	return nil
}
