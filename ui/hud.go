package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/systems"
	"github.com/devakorn/portfolio/telemetry"
)

// HUDData holds what the debug HUD shows about the running page.
type HUDData struct {
	Title   string
	Field   systems.FrameStats
	State   systems.State
	Frames  uint64
	FPS     int32
	ScrollY float64
	Section string
	Theme   string
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Lines formats the HUD rows.
func (d HUDData) Lines() []string {
	return []string{
		d.Title,
		fmt.Sprintf("Particles: %d | Links: %d | Checks: %d", d.Field.Particles, d.Field.Links, d.Field.PairChecks),
		fmt.Sprintf("Frame: %d | FPS: %d | Field: %s", d.Frames, d.FPS, d.State),
		fmt.Sprintf("Scroll: %.0f | Section: %s | Theme: %s", d.ScrollY, d.Section, d.Theme),
	}
}

// Draw renders the HUD below the nav bar.
func (h *HUD) Draw(x, y int32, data HUDData) {
	lines := data.Lines()
	h.renderer.DrawPanel(x, y, 380, int32(len(lines))*20+12)
	for i, line := range lines {
		size := int32(14)
		col := rl.LightGray
		if i == 0 {
			size, col = 16, rl.White
		}
		rl.DrawText(line, x+8, y+8+int32(i)*20, size, col)
	}
}

// DrawControls renders the key legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders frame phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y
	phases := telemetry.Phases()
	p.renderer.DrawPanel(x-8, y-8, 300, int32(len(phases))*14+60)

	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Work: %s (max %s) | %.0f fps", stats.AvgWork.Round(time.Microsecond),
		stats.MaxWork.Round(time.Microsecond), stats.FPS), x, y, 14, rl.Yellow)
	y += 16

	for _, name := range phases {
		pct := stats.PhasePct[name]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-16s %6s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
