package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/devakorn/portfolio/canvas"
	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/systems"
	"github.com/devakorn/portfolio/telemetry"
)

// Host drives a particle field on a terminal screen.
type Host struct {
	screen  tcell.Screen
	surface *Surface
	queue   *canvas.FrameQueue
	field   *systems.Field
	perf    *telemetry.PerfCollector

	title     string
	interval  time.Duration
	showStats bool
}

// NewHost builds the field on an initialised screen. Mouse reporting is
// enabled so the pointer reaches the field.
func NewHost(screen tcell.Screen, cfg *config.Config, seed int64) (*Host, error) {
	fieldCfg, err := systems.FieldConfigFrom(cfg.Particles)
	if err != nil {
		return nil, fmt.Errorf("particle config: %w", err)
	}

	h := &Host{
		screen:    screen,
		surface:   NewSurface(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, canvas.FromRGB(cfg.Particles.Background)),
		queue:     canvas.NewFrameQueue(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		title:     cfg.Content.Name,
		interval:  time.Duration(max(1, cfg.Terminal.FrameMs)) * time.Millisecond,
		showStats: true,
	}
	if screen != nil {
		screen.EnableMouse()
		screen.HideCursor()
	}
	h.field = systems.NewField(h.surface, h.queue, fieldCfg, rand.New(rand.NewSource(seed)))
	h.field.SetPhaseRecorder(h.perf)
	return h, nil
}

// Field returns the particle field.
func (h *Host) Field() *systems.Field {
	return h.field
}

// Surface returns the terminal surface.
func (h *Host) Surface() *Surface {
	return h.surface
}

// IsQuitKey reports whether a key event ends the run: Esc, Ctrl-C or q.
func IsQuitKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}

// HandleEvent applies one terminal event and reports whether to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	if h.screen == nil {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 's' {
			h.showStats = !h.showStats
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.surface.Sync()
		w, hh := h.surface.Size()
		h.field.Resize(w, hh)
		slog.Debug("terminal resized", "width", w, "height", hh, "particles", h.field.Count())
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.field.HandlePointerMove(h.surface.CellCenter(col, row))
	}
	return false
}

// Frame runs due frame callbacks, draws the status line and shows the
// screen.
func (h *Host) Frame(now time.Time) {
	if h.screen == nil {
		return
	}
	h.perf.BeginFrame()
	h.queue.Flush(now)
	if h.showStats {
		h.perf.StartPhase(telemetry.PhaseTelemetry)
		h.drawStatus()
	}
	h.perf.EndFrame()
	h.screen.Show()
	h.perf.RecordPresent()
}

// StatusLine formats the bottom row text.
func (h *Host) StatusLine() string {
	st := h.field.Stats()
	return fmt.Sprintf(" %s  particles %d  links %d  %.0f fps  [s] stats  [q] quit ",
		h.title, st.Particles, st.Links, h.perf.Stats().FPS)
}

func (h *Host) drawStatus() {
	_, rows := h.screen.Size()
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(235, 235, 240)).
		Background(tcell.NewRGBColor(40, 10, 10))
	for i, r := range []rune(h.StatusLine()) {
		h.screen.SetContent(i, rows-1, r, nil, style)
	}
}

// pumpEvents forwards screen events until the screen is finalised or done
// is closed.
func pumpEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run polls events and draws frames at the configured interval until a
// quit key or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if h.screen == nil {
		return errNoScreen
	}
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(h.screen, events, done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.field.Stop()

	slog.Info("terminal field started",
		"particles", h.field.Count(),
		"state", h.field.State().String(),
		"interval", h.interval,
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.HandleEvent(ev) {
				slog.Info("terminal field stopped", "frames", h.field.Frames())
				return nil
			}
		case now := <-ticker.C:
			h.Frame(now)
		}
	}
}
