package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/ui"
)

// drawOverlays renders the enabled debug overlays and panels.
func (g *Game) drawOverlays() {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayLinkGrid:
			g.fieldOverlay.DrawGrid(g.width, g.height, g.cfg.Particles.LinkDistance)
		case ui.OverlayPointer:
			x, y := g.field.Pointer()
			g.fieldOverlay.DrawPointer(x, y, g.cfg.Particles.Pointer.Radius)
		case ui.OverlayVelocities:
			g.fieldOverlay.DrawVelocities(g.field.Particles(), 20)
		case ui.OverlayBounds:
			g.drawLayoutBounds()
		case ui.OverlayHUD:
			g.hud.Draw(10, 70, g.hudData())
		case ui.OverlayPerf:
			g.perfPanel.Draw(g.perf.Stats())
		case ui.OverlayInspector:
			if p, ok := g.field.Particle(g.selected); ok {
				g.inspector.Draw(g.selected, p)
			}
		}
	}

	if g.controls.IsVisible() {
		g.controls.Draw(g.overlays)
		g.hud.DrawControls(int32(g.height), "[F1] overlays  [T] theme  [Home/End] scroll  [F11] fullscreen")
	}
}

func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Title:   g.cfg.Screen.Title,
		Field:   g.field.Stats(),
		State:   g.field.State(),
		Frames:  g.field.Frames(),
		FPS:     rl.GetFPS(),
		ScrollY: g.camera.Y,
		Section: g.page.Nav.State().Active,
		Theme:   g.page.Theme.String(),
	}
}

// drawLayoutBounds outlines section and card rectangles.
func (g *Game) drawLayoutBounds() {
	sy := g.camera.Y
	col := rl.Fade(rl.SkyBlue, 0.6)
	for _, r := range g.page.Layout.Sections {
		rl.DrawRectangleLinesEx(ui.Rec(r, sy), 1, col)
	}
	for i, r := range g.page.Layout.Cards {
		if r.W == 0 {
			continue
		}
		c := col
		if i == g.page.Hovered() {
			c = rl.Yellow
		}
		rl.DrawRectangleLinesEx(ui.Rec(r, sy), 1, c)
	}
}
