package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one frame. The particle phases match the names the
// particle field reports through its phase hook.
const (
	PhaseParticlesUpdate = "particles_update"
	PhaseParticlesRender = "particles_render"
	PhasePage            = "page"
	PhaseTelemetry       = "telemetry"
)

// phaseOrder is the reporting order of known phases.
var phaseOrder = []string{PhaseParticlesUpdate, PhaseParticlesRender, PhasePage, PhaseTelemetry}

// Phases returns the known phase names in reporting order.
func Phases() []string {
	return append([]string(nil), phaseOrder...)
}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	Work   time.Duration // Time spent inside the frame callback
	Phases map[string]time.Duration
}

// PerfCollector tracks frame work over a rolling window.
type PerfCollector struct {
	window  []PerfSample
	next    int
	filled  int
	phases  map[string]time.Duration
	begun   time.Time
	phaseAt time.Time
	phase   string

	// Presented frame interval (window and terminal hosts)
	lastPresent time.Time
	interval    time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames
// (60 is one second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		window: make([]PerfSample, windowSize),
		phases: make(map[string]time.Duration),
	}
}

// BeginFrame starts timing a frame.
func (p *PerfCollector) BeginFrame() {
	p.begun = time.Now()
	p.phases = make(map[string]time.Duration)
	p.phase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseAt = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.phases[p.phase] += now.Sub(p.phaseAt)
	}
}

// EndFrame closes the last phase and stores the frame in the window.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	p.window[p.next] = PerfSample{Work: now.Sub(p.begun), Phases: p.phases}
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

// RecordPresent records the wall time between two presented frames.
func (p *PerfCollector) RecordPresent() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.interval = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats holds aggregated frame timings.
type PerfStats struct {
	Frames  int
	AvgWork time.Duration
	MinWork time.Duration
	MaxWork time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of average frame work, 0-100

	// Frames per second the work alone would allow
	Throughput float64

	// Presented frame timing
	Interval time.Duration
	FPS      float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	st := PerfStats{
		Frames:   p.filled,
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
		Interval: p.interval,
	}
	if p.interval > 0 {
		st.FPS = float64(time.Second) / float64(p.interval)
	}
	if p.filled == 0 {
		return st
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i, s := range p.window[:p.filled] {
		total += s.Work
		if i == 0 || s.Work < st.MinWork {
			st.MinWork = s.Work
		}
		st.MaxWork = max(st.MaxWork, s.Work)
		for name, d := range s.Phases {
			sums[name] += d
		}
	}

	n := time.Duration(p.filled)
	st.AvgWork = total / n
	for name, sum := range sums {
		st.PhaseAvg[name] = sum / n
		if st.AvgWork > 0 {
			st.PhasePct[name] = float64(st.PhaseAvg[name]) / float64(st.AvgWork) * 100
		}
	}
	if st.AvgWork > 0 {
		st.Throughput = float64(time.Second) / float64(st.AvgWork)
	}
	return st
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_work_us", s.AvgWork.Microseconds()),
		slog.Int64("min_work_us", s.MinWork.Microseconds()),
		slog.Int64("max_work_us", s.MaxWork.Microseconds()),
		slog.Float64("throughput", s.Throughput),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, name := range phaseOrder {
		if pct, ok := s.PhasePct[name]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(name+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd          int64   `csv:"window_end"`
	AvgWorkUS          int64   `csv:"avg_work_us"`
	MinWorkUS          int64   `csv:"min_work_us"`
	MaxWorkUS          int64   `csv:"max_work_us"`
	Throughput         float64 `csv:"throughput"`
	FPS                float64 `csv:"fps"`
	ParticlesUpdatePct float64 `csv:"particles_update_pct"`
	ParticlesRenderPct float64 `csv:"particles_render_pct"`
	PagePct            float64 `csv:"page_pct"`
	TelemetryPct       float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at frame windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:          windowEnd,
		AvgWorkUS:          s.AvgWork.Microseconds(),
		MinWorkUS:          s.MinWork.Microseconds(),
		MaxWorkUS:          s.MaxWork.Microseconds(),
		Throughput:         s.Throughput,
		FPS:                s.FPS,
		ParticlesUpdatePct: s.PhasePct[PhaseParticlesUpdate],
		ParticlesRenderPct: s.PhasePct[PhaseParticlesRender],
		PagePct:            s.PhasePct[PhasePage],
		TelemetryPct:       s.PhasePct[PhaseTelemetry],
	}
}
