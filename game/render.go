package game

import (
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/contact"
	"github.com/devakorn/portfolio/portfolio"
	"github.com/devakorn/portfolio/telemetry"
	"github.com/devakorn/portfolio/ui"
)

// Draw renders one window frame: the particle field, the page on top,
// then the fixed nav chrome and debug overlays.
func (g *Game) Draw() {
	g.perf.BeginFrame()
	rl.BeginDrawing()

	// A running field clears the window itself.
	if g.queue.Flush(time.Now()) == 0 {
		rl.ClearBackground(g.ui.Theme.Background)
	}

	g.perf.StartPhase(telemetry.PhasePage)
	g.drawPage()
	g.drawChrome()
	g.drawOverlays()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.flushTelemetry()
	g.perf.EndFrame()

	rl.EndDrawing()
	g.perf.RecordPresent()
}

func (g *Game) drawPage() {
	sy := g.camera.Y
	t := g.ui.Theme

	for _, s := range g.page.Content.Sections {
		r := g.page.Layout.Sections[s.ID]
		if !g.camera.IsVisible(r.Y, r.H) {
			continue
		}
		alpha := float32(g.page.SectionAlpha(s.ID))
		switch s.ID {
		case "home":
			g.drawHero(alpha)
		case "about":
			g.ui.DrawHeading(int32(r.X), int32(r.Y-sy)+40, s.Title, alpha)
			g.ui.DrawParagraph(int32(r.X), int32(r.Y-sy)+110, g.page.Content.About, int32(min(r.W, 760)), rl.Fade(t.Muted, alpha))
		case "skills":
			g.ui.DrawHeading(int32(r.X), int32(r.Y-sy)+40, s.Title, alpha)
			g.drawSkills()
		case "projects":
			g.ui.DrawHeading(int32(r.X), int32(r.Y-sy)+20, s.Title, alpha)
			g.drawProjects()
		case "contact":
			g.ui.DrawHeading(int32(r.X), int32(r.Y-sy)+30, s.Title, alpha)
			g.drawContact()
		default:
			g.ui.DrawHeading(int32(r.X), int32(r.Y-sy)+40, s.Title, alpha)
		}
	}
}

func (g *Game) drawHero(alpha float32) {
	t := g.ui.Theme
	hero := g.page.Layout.Hero
	x, y := int32(hero.X), int32(hero.Y-g.camera.Y)

	rl.DrawText("Hi, I'm", x, y-40, t.HeaderFontSize+6, rl.Fade(t.Muted, alpha))
	rl.DrawText(g.page.Content.Name, x, y, t.HeroFontSize, rl.Fade(t.Text, alpha))

	typed := g.page.Typer.Text()
	ty := y + t.HeroFontSize + 16
	rl.DrawText(typed, x, ty, t.TitleFontSize, rl.Fade(t.Accent, alpha))
	// Blinking caret after the typed text.
	if time.Now().UnixMilli()/500%2 == 0 {
		cx := x + rl.MeasureText(typed, t.TitleFontSize) + 4
		rl.DrawRectangle(cx, ty, 3, t.TitleFontSize, rl.Fade(t.Accent, alpha))
	}
	rl.DrawText(g.page.Content.Tagline, x, ty+t.TitleFontSize+20, t.FontSize+6, rl.Fade(t.Muted, alpha))
}

func (g *Game) drawSkills() {
	for i, r := range g.page.Layout.Skills {
		if i >= len(g.page.Content.Skills) || !g.camera.IsVisible(r.Y-30, r.H+30) {
			continue
		}
		s := g.page.Content.Skills[i]
		g.ui.DrawSkillBar(ui.Rec(r, g.camera.Y), s.Name, s.Level, g.page.SkillProgress(i))
	}
}

func (g *Game) drawProjects() {
	sy := g.camera.Y
	mouse := rl.GetMousePosition()
	for i, r := range g.page.Layout.Filters {
		rec := ui.Rec(r, sy)
		label := g.page.Content.Filters[i]
		g.ui.DrawPill(rec, label, g.page.Filter.IsActive(label), rl.CheckCollisionPointRec(mouse, rec))
	}

	for i, r := range g.page.Layout.Cards {
		if r.W == 0 || !g.camera.IsVisible(r.Y, r.H) {
			continue
		}
		alpha, offset := g.page.CardReveal(i)
		if alpha <= 0 {
			continue
		}
		screen := r
		screen.Y -= sy
		// Tilt angles do not depend on where the card sits on screen.
		g.ui.DrawCard(screen, g.page.Tilt(i), g.page.Content.Projects[i], offset, float32(alpha))
	}
}

func (g *Game) drawContact() {
	sy := g.camera.Y
	t := g.ui.Theme
	l := g.page.Layout.Contact
	form := &g.page.Form

	inputs := []struct {
		field string
		label string
		rect  portfolio.Rect
		value *string
		limit int
	}{
		{contact.FieldName, "Name", l.Name, &form.Name, 64},
		{contact.FieldEmail, "Email", l.Email, &form.Email, 128},
		{contact.FieldMessage, "Message", l.Message, &form.Message, 1024},
	}
	for _, in := range inputs {
		rec := ui.Rec(in.rect, sy)
		rl.DrawText(in.label, int32(rec.X), int32(rec.Y)-18, t.FontSize+2, t.Muted)
		g.textBox(in.field, rec, in.value, in.limit)
		if msg := g.page.FieldError(in.field); msg != "" {
			rl.DrawText(msg, int32(rec.X), int32(rec.Y+rec.Height)+4, t.FontSize, t.Error)
		}
	}

	if gui.Button(ui.Rec(l.Submit, sy), "Send Message") {
		g.blurFocus()
		// ErrBusy and field errors are shown through the page state.
		_ = g.page.Submit()
	}

	if msg := g.page.Submission.Message(); msg != "" {
		col := t.Muted
		if g.page.Submission.State() == contact.Sent {
			col = t.Success
		}
		st := ui.Rec(l.Status, sy)
		rl.DrawText(msg, int32(st.X), int32(st.Y), t.FontSize+4, col)
	}
}

// textBox draws a raygui text box; clicking it takes focus, clicking
// elsewhere or pressing enter releases it and validates the field.
func (g *Game) textBox(field string, rec rl.Rectangle, value *string, limit int) {
	editing := g.focus == field
	if !gui.TextBox(rec, value, limit, editing) {
		return
	}
	if editing {
		g.blurFocus()
		return
	}
	g.blurFocus()
	g.focus = field
}

func (g *Game) blurFocus() {
	if g.focus != "" {
		g.page.Blur(g.focus)
		g.focus = ""
	}
}

// drawChrome draws the fixed nav bar, the menu and the scroll-to-top button.
func (g *Game) drawChrome() {
	t := g.ui.Theme
	l := g.page.Layout
	state := g.page.Nav.State()
	mouse := rl.GetMousePosition()
	w := float32(g.width)

	bar := t.NavBg
	if state.Scrolled {
		bar = t.NavScrolled
	}
	rl.DrawRectangleRec(rl.Rectangle{Width: w, Height: portfolio.NavHeight}, bar)
	if state.Scrolled {
		rl.DrawLineEx(rl.Vector2{Y: portfolio.NavHeight}, rl.Vector2{X: w, Y: portfolio.NavHeight}, 1, t.Border)
	}
	rl.DrawText(g.page.Content.Name, int32(l.Margin), 18, t.HeaderFontSize+8, t.Accent)

	showLinks := !l.Compact || g.page.Nav.MenuOpen()
	if l.Compact {
		g.drawMenuButton(ui.Rec(l.MenuButton, 0))
		if showLinks {
			last := l.NavLinks[len(l.NavLinks)-1]
			rl.DrawRectangleRec(rl.Rectangle{
				X: float32(l.NavLinks[0].X), Y: float32(l.NavLinks[0].Y),
				Width: float32(last.W), Height: float32(last.Y + last.H - l.NavLinks[0].Y),
			}, t.NavScrolled)
		}
	}
	if showLinks {
		for i, r := range l.NavLinks {
			rec := ui.Rec(r, 0)
			s := g.page.Content.Sections[i]
			g.ui.DrawPill(rec, s.Title, state.Active == s.ID, rl.CheckCollisionPointRec(mouse, rec))
		}
	}

	g.drawThemeButton(ui.Rec(l.ThemeButton, 0))

	if state.ShowTop {
		rec := ui.Rec(l.TopButton, 0)
		rl.DrawRectangleRec(rec, t.Accent)
		cx, cy := rec.X+rec.Width/2, rec.Y+rec.Height/2
		rl.DrawTriangle(
			rl.Vector2{X: cx, Y: cy - 8},
			rl.Vector2{X: cx - 9, Y: cy + 6},
			rl.Vector2{X: cx + 9, Y: cy + 6},
			rl.White,
		)
	}
}

func (g *Game) drawMenuButton(rec rl.Rectangle) {
	col := g.ui.Theme.Text
	for i := range 3 {
		y := rec.Y + 9 + float32(i)*7
		rl.DrawLineEx(rl.Vector2{X: rec.X + 6, Y: y}, rl.Vector2{X: rec.X + rec.Width - 6, Y: y}, 2, col)
	}
}

// drawThemeButton draws the sun (switch to light) or moon (switch to dark).
func (g *Game) drawThemeButton(rec rl.Rectangle) {
	t := g.ui.Theme
	c := rl.Vector2{X: rec.X + rec.Width/2, Y: rec.Y + rec.Height/2}
	switch g.page.Theme.Icon() {
	case "sun":
		rl.DrawCircleV(c, 6, t.Text)
		for i := range 8 {
			d := rl.Vector2Rotate(rl.Vector2{X: 0, Y: -11}, float32(i)*0.785398)
			rl.DrawLineEx(rl.Vector2Add(c, rl.Vector2Scale(d, 0.8)), rl.Vector2Add(c, d), 2, t.Text)
		}
	default:
		rl.DrawCircleV(c, 10, t.Text)
		rl.DrawCircleV(rl.Vector2{X: c.X + 5, Y: c.Y - 4}, 9, t.NavScrolled)
	}
}
