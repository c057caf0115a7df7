package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/portfolio"
	"github.com/devakorn/portfolio/renderer"
	"github.com/devakorn/portfolio/ui"
)

// inspectRadius is how close a click must land to select a particle.
const inspectRadius = 12.0

// handleInput processes window, keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Shortcuts stay off while a form input has focus.
	if g.focus == "" {
		g.handleKeys()
	}
	g.handleMouse()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h

	g.screen.Resize(w, h)
	g.field.Resize(w, h)
	g.page.Resize(float64(w), float64(h))
	g.camera.Resize(float64(w), float64(h))
	g.camera.SetPageHeight(g.page.Layout.Height)

	g.perfPanel.SetPosition(int32(w)-310, int32(portfolio.NavHeight)+20)
	g.inspector.SetPosition(int32(w)-230, int32(h)-260)
	g.selected = -1
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.controls.Toggle()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.overlays.HandleKeyPress(key); ok && !on && id == ui.OverlayInspector {
			g.selected = -1
		}
	}

	if rl.IsKeyPressed(rl.KeyT) {
		g.toggleTheme()
	}

	step := g.cfg.Nav.WheelStep
	switch {
	case rl.IsKeyPressed(rl.KeyHome):
		g.camera.ScrollTo(0)
	case rl.IsKeyPressed(rl.KeyEnd):
		g.camera.ScrollTo(g.camera.MaxScroll())
	case rl.IsKeyPressed(rl.KeyPageDown):
		g.camera.ScrollTo(g.camera.Y + g.camera.ViewportH*0.9)
	case rl.IsKeyPressed(rl.KeyPageUp):
		g.camera.ScrollTo(g.camera.Y - g.camera.ViewportH*0.9)
	case rl.IsKeyDown(rl.KeyDown):
		g.camera.Pan(step / 6)
	case rl.IsKeyDown(rl.KeyUp):
		g.camera.Pan(-step / 6)
	}
}

func (g *Game) handleMouse() {
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		g.field.HandlePointerMove(mx, my)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.Pan(-float64(wheel) * g.cfg.Nav.WheelStep)
	}

	px, py := g.camera.ScreenToPage(mx, my)
	if my > portfolio.NavHeight {
		g.page.Hover(px, py)
	} else {
		g.page.Hover(-1, -1)
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	if g.handleChromeClick(mx, my) {
		return
	}
	for i, r := range g.page.Layout.Filters {
		if r.Contains(px, py) {
			g.page.SelectFilter(g.page.Content.Filters[i])
			g.camera.SetPageHeight(g.page.Layout.Height)
			return
		}
	}
	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.selected = g.field.Nearest(mx, my, inspectRadius)
	}
}

// handleChromeClick handles clicks on the fixed nav bar, menu and the
// scroll-to-top button. It reports whether the click was consumed.
func (g *Game) handleChromeClick(mx, my float64) bool {
	l := g.page.Layout
	nav := g.page.Nav

	if l.ThemeButton.Contains(mx, my) {
		g.toggleTheme()
		return true
	}
	if l.Compact && l.MenuButton.Contains(mx, my) {
		nav.ToggleMenu()
		return true
	}
	if !l.Compact || nav.MenuOpen() {
		for i, r := range l.NavLinks {
			if r.Contains(mx, my) {
				if y, ok := g.page.Follow(g.page.Content.Sections[i].ID); ok {
					g.camera.ScrollTo(y)
				}
				return true
			}
		}
	}
	if nav.State().ShowTop && l.TopButton.Contains(mx, my) {
		g.camera.ScrollTo(0)
		return true
	}
	if l.Compact && nav.MenuOpen() {
		nav.CloseMenu()
	}
	return my <= portfolio.NavHeight
}

func (g *Game) toggleTheme() {
	g.ui.SetTheme(ui.ThemeFor(g.page.ToggleTheme()))
	g.screen.SetBackground(renderer.FromRL(g.ui.Theme.Background))
}
