package game

import (
	"log/slog"

	"github.com/devakorn/portfolio/telemetry"
)

// flushTelemetry closes the stats window when it is full, logs it when
// asked and appends it to the CSV output.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	stats := g.collector.Flush(g.frame)
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		slog.Info("frames", "stats", stats)
		slog.Info("perf", "stats", perfStats)
	}

	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEnd); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// PerfStats returns the current frame timing window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perf.Stats()
}
