package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/devakorn/portfolio/systems"
)

// Collector accumulates per-frame particle field stats and produces a
// WindowStats every window.
type Collector struct {
	windowSec    float64
	windowFrames int64
	dt           float64

	windowStart int64
	particles   int
	links       []float64
	pairChecks  []float64
}

// NewCollector creates a collector flushing every windowSec seconds of
// frames at dt seconds per frame.
func NewCollector(windowSec, dt float64) *Collector {
	frames := int64(1)
	if dt > 0 {
		frames = max(1, int64(windowSec/dt))
	}
	return &Collector{
		windowSec:    windowSec,
		windowFrames: frames,
		dt:           dt,
	}
}

// Record adds one frame's stats.
func (c *Collector) Record(s systems.FrameStats) {
	c.particles = s.Particles
	c.links = append(c.links, float64(s.Links))
	c.pairChecks = append(c.pairChecks, float64(s.PairChecks))
}

// ShouldFlush reports whether a full window has passed at frame.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStart >= c.windowFrames
}

// Flush summarises the window ending at frame and resets for the next one.
func (c *Collector) Flush(frame int64) WindowStats {
	links := Describe(c.links)
	ws := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   frame,
		ElapsedSec:  float64(frame) * c.dt,
		Frames:      len(c.links),
		Particles:   c.particles,
		LinksMean:   links.Mean,
		LinksStd:    links.Std,
		LinksP10:    links.P10,
		LinksP50:    links.P50,
		LinksP90:    links.P90,
		LinksMax:    links.Max,
	}
	if len(c.pairChecks) > 0 {
		ws.PairChecksMean = stat.Mean(c.pairChecks, nil)
	}
	if ws.PairChecksMean > 0 {
		ws.LinkRate = ws.LinksMean / ws.PairChecksMean
	}

	c.windowStart = frame
	c.links = c.links[:0]
	c.pairChecks = c.pairChecks[:0]
	return ws
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int64 {
	return c.windowFrames
}
