package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/systems"
)

// ParticleSections describes the particle inspector layout.
func ParticleSections(maxSpeed float64) []SectionDescriptor {
	speed := func(d any) float64 {
		p := d.(systems.Particle)
		return math.Hypot(p.VX, p.VY)
	}
	return []SectionDescriptor{
		{
			Title: "Position",
			Fields: []FieldDescriptor{
				{Label: "X", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return d.(systems.Particle).X }},
				{Label: "Y", Widget: WidgetText, Format: "%.1f", Getter: func(d any) float64 { return d.(systems.Particle).Y }},
			},
		},
		{
			Title: "Motion",
			Fields: []FieldDescriptor{
				{Label: "Velocity", Widget: WidgetText, TextGetter: func(d any) string {
					p := d.(systems.Particle)
					return fmt.Sprintf("%+.2f, %+.2f", p.VX, p.VY)
				}},
				{Label: "Speed", Widget: WidgetBar, Range: FieldRange{Max: maxSpeed}, Getter: speed},
			},
		},
		{
			Title: "Appearance",
			Fields: []FieldDescriptor{
				{Label: "Radius", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float64 { return d.(systems.Particle).Radius }},
				{Label: "Opacity", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float64 { return d.(systems.Particle).Opacity }},
			},
		},
	}
}

// Inspector shows the selected particle.
type Inspector struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
}

// NewInspector creates an inspector panel. maxSpeed scales the speed bar.
func NewInspector(x, y, width int32, maxSpeed float64) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		sections: ParticleSections(maxSpeed),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the panel for p, the particle at index, and rings it on
// the canvas.
func (ins *Inspector) Draw(index int, p systems.Particle) int32 {
	r := ins.renderer
	pad := r.Theme.Padding

	h := pad*2 + r.Theme.LineHeight + 6
	for _, sd := range ins.sections {
		h += r.SectionHeight(sd)
	}
	r.DrawPanel(ins.x, ins.y, ins.width, h)

	y := ins.y + pad
	rl.DrawText(fmt.Sprintf("Particle #%d", index), ins.x+pad, y, 16, rl.White)
	y += r.Theme.LineHeight + 6
	for _, sd := range ins.sections {
		y = r.DrawSection(ins.x+pad, y, sd, p, ins.width-pad*2)
	}

	rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(p.Radius+6), r.Theme.Accent)
	return y
}
