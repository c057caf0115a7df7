package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel lists the debug overlays and their keys.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Height returns the panel height for the registry's overlays.
func (c *ControlsPanel) Height(overlays *OverlayRegistry) int32 {
	t := c.renderer.Theme
	items := 0
	for _, cat := range overlays.Categories() {
		items += len(overlays.ByCategory(cat)) + 1
	}
	return int32(items)*t.LineHeight + t.Padding*3 + t.LineHeight
}

// Draw renders the panel and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	pad := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, c.Height(overlays))

	y := c.y + pad
	rl.DrawText("Overlays", c.x+pad, y, 16, rl.White)
	y += r.Theme.LineHeight + 4

	for _, category := range overlays.Categories() {
		y = r.DrawSectionHeader(c.x+pad, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+pad, y, desc, overlays.IsEnabled(desc.ID), c.width-pad*2)
			y += r.Theme.LineHeight
		}
		y += 4
	}
	return y
}

func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	size := c.renderer.Theme.FontSize

	status := rl.Color{R: 80, G: 80, B: 80, A: 255}
	name := rl.LightGray
	if enabled {
		status = rl.Color{R: 100, G: 200, B: 100, A: 255}
		name = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, status)
	rl.DrawText(desc.Name, x+14, y, size, name)

	if desc.KeyLabel != "" {
		key := fmt.Sprintf("[%s]", desc.KeyLabel)
		rl.DrawText(key, x+width-rl.MeasureText(key, size), y, size, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

func categoryLabel(cat string) string {
	switch cat {
	case "panels":
		return "Panels"
	case "field":
		return "Particle Field"
	case "page":
		return "Page"
	default:
		return cat
	}
}
