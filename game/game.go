// Package game hosts the showcase page: the particle field behind a
// scrolling portfolio page, in a raylib window or headless.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/camera"
	"github.com/devakorn/portfolio/canvas"
	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/portfolio"
	"github.com/devakorn/portfolio/renderer"
	"github.com/devakorn/portfolio/systems"
	"github.com/devakorn/portfolio/telemetry"
	"github.com/devakorn/portfolio/ui"
)

// Game holds the complete showcase state.
type Game struct {
	cfg  *config.Config
	opts Options

	page   *Page
	camera *camera.Camera

	// Particle field and the surface it draws on. screen is nil when
	// headless; recorder is nil in a window.
	queue    *canvas.FrameQueue
	field    *systems.Field
	screen   *renderer.Surface
	recorder *canvas.Recorder

	// Window-only drawing
	ui           *ui.Renderer
	hud          *ui.HUD
	perfPanel    *ui.PerfPanel
	inspector    *ui.Inspector
	overlays     *ui.OverlayRegistry
	controls     *ui.ControlsPanel
	fieldOverlay *renderer.FieldOverlay
	selected     int // Inspected particle, -1 = none
	focus        string

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	frame         int64
	clock         time.Time // Headless frame clock
	width, height int
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a game. In a window it must be called after
// rl.InitWindow.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:      cfg,
		opts:     opts,
		queue:    canvas.NewFrameQueue(),
		selected: -1,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		clock:    time.Unix(0, 0),
	}

	if opts.Headless {
		g.width, g.height = cfg.Screen.Width, cfg.Screen.Height
		g.recorder = canvas.NewRecorder(g.width, g.height)
	} else {
		g.width, g.height = rl.GetScreenWidth(), rl.GetScreenHeight()
		g.screen = renderer.NewSurface(g.width, g.height, canvas.FromRGB(cfg.Particles.Background))
	}

	g.page = NewPage(cfg, float64(g.width), float64(g.height))
	g.camera = camera.New(float64(g.width), float64(g.height), g.page.Layout.Height)

	fieldCfg, err := systems.FieldConfigFrom(cfg.Particles)
	if err != nil {
		// Load validates these fields; only hand-built configs get here.
		slog.Warn("invalid particle config, using defaults", "error", err)
		fieldCfg = systems.DefaultFieldConfig()
	}
	g.field = systems.NewField(g.surface(), g.queue, fieldCfg, rand.New(rand.NewSource(seed)))
	g.field.SetPhaseRecorder(g.perf)

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(windowSec, cfg.Derived.FrameDT)
	g.field.OnFrame(g.collector.Record)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.ui = ui.NewRenderer()
		g.ui.SetTheme(ui.ThemeFor(g.page.Theme))
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(g.width)-310, int32(portfolio.NavHeight)+20)
		g.inspector = ui.NewInspector(int32(g.width)-230, int32(g.height)-260, 220, fieldCfg.Speed*1.5)
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, int32(portfolio.NavHeight)+110, 220)
		g.fieldOverlay = renderer.NewFieldOverlay(renderer.ToRL(fieldCfg.Color))
	}

	slog.Info("showcase started",
		"seed", seed,
		"width", g.width,
		"height", g.height,
		"headless", opts.Headless,
		"particles", g.field.Count(),
		"field", g.field.State().String(),
	)
	return g
}

func (g *Game) surface() canvas.Surface {
	if g.recorder != nil {
		return g.recorder
	}
	return g.screen
}

// frameDT is the fixed frame interval.
func (g *Game) frameDT() time.Duration {
	return time.Duration(g.cfg.Derived.FrameDT * float64(time.Second))
}

// Update runs input and page logic for one window frame.
func (g *Game) Update() {
	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	g.handleInput()
	g.camera.Update(dt.Seconds())
	g.page.Update(dt, g.camera.Y)
}

// UpdateHeadless advances page and field by one fixed frame without raylib.
func (g *Game) UpdateHeadless() {
	dt := g.frameDT()
	g.clock = g.clock.Add(dt)

	g.perf.BeginFrame()
	g.perf.StartPhase(telemetry.PhasePage)
	g.camera.Update(dt.Seconds())
	g.page.Update(dt, g.camera.Y)

	// The field's own phases start inside the flush.
	g.queue.Flush(g.clock)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.flushTelemetry()
	g.perf.EndFrame()
}

// Unload stops the field and closes telemetry output.
func (g *Game) Unload() {
	g.field.Stop()
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.output = nil
}

// Frame returns the number of frames run.
func (g *Game) Frame() int64 {
	return g.frame
}

// Page returns the page state.
func (g *Game) Page() *Page {
	return g.page
}

// Field returns the particle field.
func (g *Game) Field() *systems.Field {
	return g.field
}

// Camera returns the page camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Recorder returns the headless surface, nil in a window.
func (g *Game) Recorder() *canvas.Recorder {
	return g.recorder
}
