package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/portfolio"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the dark theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DarkTheme()}
}

// SetTheme swaps the palette.
func (r *Renderer) SetTheme(t Theme) {
	r.Theme = t
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.Accent)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, rl.LightGray)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, rl.White)
	return y + r.Theme.LineHeight
}

// DrawBar draws a labelled progress bar for value within rng.
func (r *Renderer) DrawBar(x, y int32, label string, value float64, rng FieldRange, width int32) int32 {
	ratio := 0.0
	if rng.Max > rng.Min {
		ratio = (value - rng.Min) / (rng.Max - rng.Min)
	}
	ratio = min(max(ratio, 0), 1)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, rl.LightGray)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float64(barWidth)*ratio), r.Theme.BarHeight, r.Theme.Accent)
	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, r.Theme.FontSize, rl.White)

	return y + r.Theme.LineHeight + 2
}

// DrawField renders a field based on its descriptor.
func (r *Renderer) DrawField(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	switch fd.Widget {
	case WidgetText:
		var text string
		if fd.TextGetter != nil {
			text = fd.TextGetter(data)
		} else if fd.Getter != nil {
			text = fmt.Sprintf(fd.Format, fd.Getter(data))
		}
		return r.DrawLabelValue(x, y, fd.Label, text)

	case WidgetBar:
		value := 0.0
		if fd.Getter != nil {
			value = fd.Getter(data)
		}
		return r.DrawBar(x, y, fd.Label, value, fd.Range, width)

	case WidgetSection:
		return r.DrawSectionHeader(x, y, fd.Label)

	case WidgetSpacer:
		return y + 6
	}
	return y
}

// DrawSection renders a section with header and fields.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	if sd.Title != "" {
		y = r.DrawSectionHeader(x, y, sd.Title)
	}
	for _, fd := range sd.Fields {
		y = r.DrawField(x, y, fd, data, width)
	}
	return y + 4
}

// SectionHeight returns the pixel height DrawSection will use.
func (r *Renderer) SectionHeight(sd SectionDescriptor) int32 {
	h := int32(4)
	if sd.Title != "" {
		h += r.Theme.LineHeight
	}
	for _, fd := range sd.Fields {
		switch fd.Widget {
		case WidgetBar:
			h += r.Theme.LineHeight + 2
		case WidgetSpacer:
			h += 6
		default:
			h += r.Theme.LineHeight
		}
	}
	return h
}

// Page widgets. Coordinates are window pixels.

// DrawHeading draws a section title with an accent underline.
func (r *Renderer) DrawHeading(x, y int32, title string, alpha float32) {
	rl.DrawText(title, x, y, r.Theme.TitleFontSize, rl.Fade(r.Theme.Text, alpha))
	w := rl.MeasureText(title, r.Theme.TitleFontSize)
	rl.DrawRectangle(x, y+r.Theme.TitleFontSize+6, min(w, 80), 3, rl.Fade(r.Theme.Accent, alpha))
}

// DrawParagraph draws text wrapped to width and returns the Y below it.
func (r *Renderer) DrawParagraph(x, y int32, text string, width int32, col rl.Color) int32 {
	for _, line := range WrapText(text, width, func(s string) int32 {
		return rl.MeasureText(s, r.Theme.FontSize+4)
	}) {
		rl.DrawText(line, x, y, r.Theme.FontSize+4, col)
		y += r.Theme.FontSize + 10
	}
	return y
}

// WrapText splits text into lines no wider than width as reported by
// measure. A single word wider than width gets a line of its own.
func WrapText(text string, width int32, measure func(string) int32) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && measure(next) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// DrawSkillBar draws a skill name, its level, and a bar filled to
// level·progress percent.
func (r *Renderer) DrawSkillBar(bar rl.Rectangle, name string, level int, progress float64) {
	t := r.Theme
	rl.DrawText(name, int32(bar.X), int32(bar.Y)-t.FontSize-10, t.FontSize+2, t.Text)
	pct := fmt.Sprintf("%d%%", level)
	rl.DrawText(pct, int32(bar.X+bar.Width)-rl.MeasureText(pct, t.FontSize+2), int32(bar.Y)-t.FontSize-10, t.FontSize+2, t.Muted)

	rl.DrawRectangleRec(bar, t.BarBg)
	fill := bar
	fill.Width = bar.Width * float32(float64(level)/100*min(max(progress, 0), 1))
	rl.DrawRectangleRec(fill, t.Accent)
}

// DrawCard draws a project card as a projected quad, so the tilt transform
// shows as a perspective skew. offset shifts the card horizontally during
// its reveal and alpha fades it in.
func (r *Renderer) DrawCard(rect portfolio.Rect, tf portfolio.Transform, p portfolio.Project, offset float64, alpha float32) {
	t := r.Theme
	rect.X += offset
	c := tf.Corners(rect)
	v := func(i int) rl.Vector2 { return rl.Vector2{X: float32(c[i].X), Y: float32(c[i].Y)} }

	// Corners run clockwise from top-left; raylib wants counter-clockwise.
	fill := rl.Fade(t.Surface, alpha)
	rl.DrawTriangle(v(0), v(3), v(2), fill)
	rl.DrawTriangle(v(0), v(2), v(1), fill)
	border := rl.Fade(t.Border, alpha)
	if tf.Scale > 1 {
		border = rl.Fade(t.Accent, alpha)
	}
	for i := range 4 {
		rl.DrawLineEx(v(i), v((i+1)%4), 1.5, border)
	}

	// Text follows the projected top-left corner.
	x, y := int32(c[0].X)+20, int32(c[0].Y)+24
	rl.DrawText(strings.ToUpper(p.Category), x, y, t.FontSize, rl.Fade(t.Accent, alpha))
	rl.DrawText(p.Title, x, y+22, t.HeaderFontSize+8, rl.Fade(t.Text, alpha))
	rl.DrawText(strings.Join(p.Tags, "  ·  "), x, y+60, t.FontSize, rl.Fade(t.Muted, alpha))
}

// DrawPill draws a filter or nav button, filled when active.
func (r *Renderer) DrawPill(rect rl.Rectangle, label string, active, hover bool) {
	t := r.Theme
	switch {
	case active:
		rl.DrawRectangleRec(rect, t.Accent)
	case hover:
		rl.DrawRectangleRec(rect, rl.Fade(t.Accent, 0.2))
	}
	rl.DrawRectangleLinesEx(rect, 1, t.Border)
	fg := t.Text
	if active {
		fg = rl.White
	}
	w := rl.MeasureText(label, t.FontSize+2)
	rl.DrawText(label, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(t.FontSize+2))/2), t.FontSize+2, fg)
}

// Rec converts a layout rectangle to raylib, shifted up by scrollY.
func Rec(r portfolio.Rect, scrollY float64) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y - scrollY), Width: float32(r.W), Height: float32(r.H)}
}
