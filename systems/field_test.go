package systems

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/devakorn/portfolio/canvas"
)

func newTestField(t *testing.T, w, h int, seed int64, mutate func(*FieldConfig)) (*Field, *canvas.Recorder, *canvas.FrameQueue) {
	t.Helper()
	cfg := DefaultFieldConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := canvas.NewRecorder(w, h)
	queue := canvas.NewFrameQueue()
	f := NewField(rec, queue, cfg, rand.New(rand.NewSource(seed)))
	if f.State() != StateRunning {
		t.Fatalf("state = %v, want running", f.State())
	}
	return f, rec, queue
}

func assertInBounds(t *testing.T, f *Field) {
	t.Helper()
	w, h := f.Size()
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Fatalf("particle %d at (%v, %v) outside [0,%v)x[0,%v)", i, p.X, p.Y, w, h)
		}
	}
}

func TestWrapInvariantUnderTicking(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		f, _, _ := newTestField(t, 320, 200, seed, func(c *FieldConfig) {
			// Fast particles cross edges often
			c.Speed = 7
		})
		for i := 0; i < 500; i++ {
			f.Tick()
			assertInBounds(t, f)
		}
	}
}

func TestRegenerateCountAndBands(t *testing.T) {
	f, _, _ := newTestField(t, 800, 600, 42, nil)
	cfg := DefaultFieldConfig()

	for round := 0; round < 3; round++ {
		f.Regenerate()
		ps := f.Particles()
		if len(ps) != cfg.Count {
			t.Fatalf("count = %d, want %d", len(ps), cfg.Count)
		}
		for i, p := range ps {
			if p.Radius < cfg.RadiusMin || p.Radius >= cfg.RadiusMax {
				t.Errorf("particle %d radius %v outside [%v,%v)", i, p.Radius, cfg.RadiusMin, cfg.RadiusMax)
			}
			if p.Opacity < cfg.OpacityMin || p.Opacity >= cfg.OpacityMax {
				t.Errorf("particle %d opacity %v outside [%v,%v)", i, p.Opacity, cfg.OpacityMin, cfg.OpacityMax)
			}
			if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
				t.Errorf("particle %d velocity (%v,%v) outside ±0.25", i, p.VX, p.VY)
			}
		}
		assertInBounds(t, f)
	}
}

func TestVelocityNeverAlteredUnderWrap(t *testing.T) {
	f, _, _ := newTestField(t, 200, 100, 9, func(c *FieldConfig) { c.Speed = 3 })
	before := f.Particles()
	for i := 0; i < 200; i++ {
		f.Tick()
	}
	after := f.Particles()
	for i := range before {
		if before[i].VX != after[i].VX || before[i].VY != after[i].VY {
			t.Fatalf("particle %d velocity changed: (%v,%v) -> (%v,%v)",
				i, before[i].VX, before[i].VY, after[i].VX, after[i].VY)
		}
	}
}

func TestResizeUsesNewBounds(t *testing.T) {
	f, rec, _ := newTestField(t, 800, 600, 3, nil)

	f.Resize(100, 50)
	rec.SetSize(100, 50)
	if w, h := f.Size(); w != 100 || h != 50 {
		t.Fatalf("Size() = %v,%v, want 100,50", w, h)
	}
	assertInBounds(t, f)

	// A particle just inside the old bounds but outside the new ones
	f.SetParticles([]Particle{{X: 99.9, Y: 49.9, Radius: 1, Opacity: 0.5, VX: 0.25, VY: 0.25}})
	f.Tick()
	p := f.Particles()[0]
	if p.X >= 100 || p.Y >= 50 {
		t.Errorf("particle at (%v,%v) not wrapped at new bounds", p.X, p.Y)
	}
	if math.Abs(p.X-0.15) > 1e-9 || math.Abs(p.Y-0.15) > 1e-9 {
		t.Errorf("particle at (%v,%v), want (0.15,0.15)", p.X, p.Y)
	}
}

func TestResizeRegeneratesWholesale(t *testing.T) {
	f, _, _ := newTestField(t, 800, 600, 5, nil)
	before := f.Particles()
	f.Resize(800, 600)
	after := f.Particles()

	if len(after) != len(before) {
		t.Fatalf("count changed %d -> %d", len(before), len(after))
	}
	same := 0
	for i := range before {
		if before[i] == after[i] {
			same++
		}
	}
	if same == len(before) {
		t.Error("resize kept the old particle set")
	}
}

func TestResizeToEmptyCanvas(t *testing.T) {
	f, rec, _ := newTestField(t, 800, 600, 5, nil)
	f.Resize(0, 0)
	if f.Count() != 0 {
		t.Errorf("count = %d on empty canvas, want 0", f.Count())
	}
	f.Tick()
	if len(rec.Circles) != 0 {
		t.Errorf("drew %d circles on empty canvas", len(rec.Circles))
	}

	f.Resize(400, 300)
	if f.Count() != DefaultFieldConfig().Count {
		t.Errorf("count = %d after restoring size, want %d", f.Count(), DefaultFieldConfig().Count)
	}
}

func TestPointerMoveBetweenTicks(t *testing.T) {
	f, _, _ := newTestField(t, 640, 480, 11, nil)

	cx, cy := f.Pointer()
	if cx != 320 || cy != 240 {
		t.Errorf("initial pointer = (%v,%v), want canvas centre", cx, cy)
	}

	count := f.Count()
	f.Tick()
	f.HandlePointerMove(12, 34)
	f.Tick()

	if x, y := f.Pointer(); x != 12 || y != 34 {
		t.Errorf("pointer = (%v,%v), want (12,34)", x, y)
	}
	if f.Count() != count {
		t.Errorf("count changed %d -> %d", count, f.Count())
	}
	assertInBounds(t, f)
}

func TestPointerIsTrackedOnlyByDefault(t *testing.T) {
	a, _, _ := newTestField(t, 640, 480, 21, nil)
	b, _, _ := newTestField(t, 640, 480, 21, nil)

	b.HandlePointerMove(10, 10)
	for i := 0; i < 50; i++ {
		a.Tick()
		b.Tick()
	}

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("pointer changed motion of particle %d: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestScenarioSeededZeroVelocity(t *testing.T) {
	f, _, _ := newTestField(t, 800, 600, 2024, nil)

	first := f.Particles()[0]
	if first.X < 0 || first.X >= 800 || first.Y < 0 || first.Y >= 600 {
		t.Fatalf("first particle (%v,%v) outside 800x600", first.X, first.Y)
	}

	ps := f.Particles()
	for i := range ps {
		ps[i].VX, ps[i].VY = 0, 0
	}
	f.SetParticles(ps)

	for i := 0; i < 1000; i++ {
		f.Tick()
	}

	after := f.Particles()
	for i := range ps {
		if after[i].X != ps[i].X || after[i].Y != ps[i].Y {
			t.Fatalf("particle %d moved (%v,%v) -> (%v,%v)", i, ps[i].X, ps[i].Y, after[i].X, after[i].Y)
		}
	}
}

func TestScenarioProximityLines(t *testing.T) {
	tests := []struct {
		name     string
		other    float64
		wantLine bool
	}{
		{"close pair", 50, true},
		{"far pair", 200, false},
		{"exactly at threshold", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, rec, _ := newTestField(t, 800, 600, 1, nil)
			f.SetParticles([]Particle{
				{X: 0, Y: 0, Radius: 1, Opacity: 0.5},
				{X: tt.other, Y: 0, Radius: 1, Opacity: 0.5},
			})
			f.Tick()

			if got := len(rec.Lines) == 1; got != tt.wantLine {
				t.Fatalf("lines = %d, want line: %v", len(rec.Lines), tt.wantLine)
			}
			if len(rec.Circles) != 2 {
				t.Errorf("circles = %d, want 2", len(rec.Circles))
			}
			if tt.wantLine {
				l := rec.Lines[0]
				wantAlpha := 0.2 * (1 - tt.other/100)
				if math.Abs(l.Color.A-wantAlpha) > 1e-12 {
					t.Errorf("line alpha = %v, want %v", l.Color.A, wantAlpha)
				}
				if l.Width != 0.5 {
					t.Errorf("line width = %v, want 0.5", l.Width)
				}
				if l.Color.R != 255 || l.Color.G != 42 || l.Color.B != 42 {
					t.Errorf("line hue = %d,%d,%d, want accent", l.Color.R, l.Color.G, l.Color.B)
				}
			}
		})
	}
}

func TestCircleUsesParticleOpacity(t *testing.T) {
	f, rec, _ := newTestField(t, 800, 600, 1, nil)
	f.SetParticles([]Particle{{X: 10, Y: 20, Radius: 1.5, Opacity: 0.65}})
	f.Tick()

	if len(rec.Circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(rec.Circles))
	}
	c := rec.Circles[0]
	if c.X != 10 || c.Y != 20 || c.Radius != 1.5 || c.Color.A != 0.65 {
		t.Errorf("circle = %+v", c)
	}
	if rec.Clears != 1 {
		t.Errorf("clears = %d, want 1 per tick", rec.Clears)
	}
}

func TestUniquePairsChecked(t *testing.T) {
	f, rec, _ := newTestField(t, 800, 600, 8, nil)
	// All particles stacked within link distance of each other
	ps := make([]Particle, 10)
	for i := range ps {
		ps[i] = Particle{X: 100 + float64(i), Y: 100, Radius: 1, Opacity: 0.5}
	}
	f.SetParticles(ps)
	f.Tick()

	n := len(ps)
	want := n * (n - 1) / 2
	stats := f.Stats()
	if stats.PairChecks != want {
		t.Errorf("pair checks = %d, want %d", stats.PairChecks, want)
	}
	if stats.Links != want || len(rec.Lines) != want {
		t.Errorf("links = %d (recorded %d), want %d", stats.Links, len(rec.Lines), want)
	}
	for _, l := range rec.Lines {
		if l.X1 == l.X2 && l.Y1 == l.Y2 {
			t.Error("self pair drew a line")
		}
	}
}

func TestGridIndexMatchesPairs(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		mutate := func(index LinkIndex) func(*FieldConfig) {
			return func(c *FieldConfig) {
				c.Count = 150
				c.Index = index
			}
		}
		pairs, recPairs, _ := newTestField(t, 500, 400, seed, mutate(IndexPairs))
		grid, recGrid, _ := newTestField(t, 500, 400, seed, mutate(IndexGrid))

		for i := 0; i < 10; i++ {
			pairs.Tick()
			grid.Tick()

			want := lineSet(recPairs.Lines)
			got := lineSet(recGrid.Lines)
			if len(got) != len(want) {
				t.Fatalf("seed %d tick %d: grid drew %d lines, pairs drew %d", seed, i, len(got), len(want))
			}
			for k := range want {
				if !got[k] {
					t.Fatalf("seed %d tick %d: grid missed line %+v", seed, i, k)
				}
			}
		}
		if grid.Stats().PairChecks >= pairs.Stats().PairChecks {
			t.Errorf("grid checked %d pairs, direct scan %d", grid.Stats().PairChecks, pairs.Stats().PairChecks)
		}
	}
}

type lineKey struct{ x1, y1, x2, y2 float64 }

func lineSet(lines []canvas.Line) map[lineKey]bool {
	set := make(map[lineKey]bool, len(lines))
	for _, l := range lines {
		set[lineKey{l.X1, l.Y1, l.X2, l.Y2}] = true
	}
	return set
}

func TestUnattachedWhenSurfaceMissing(t *testing.T) {
	f := NewField(nil, canvas.NewFrameQueue(), DefaultFieldConfig(), nil)
	if f.State() != StateUnattached {
		t.Fatalf("state = %v, want unattached", f.State())
	}

	// Every operation is a silent no-op
	f.Tick()
	f.Resize(100, 100)
	f.Regenerate()
	f.HandlePointerMove(1, 2)
	f.SetParticles([]Particle{{X: 1, Y: 1, Radius: 1}})
	f.Stop()

	if f.Count() != 0 || f.Particles() != nil {
		t.Error("unattached field holds particles")
	}
}

func TestUnattachedWhenSurfaceUnavailable(t *testing.T) {
	rec := canvas.NewRecorder(100, 100)
	rec.Fail(errors.New("no 2d context"))
	queue := canvas.NewFrameQueue()

	f := NewField(rec, queue, DefaultFieldConfig(), nil)
	if f.State() != StateUnattached {
		t.Fatalf("state = %v, want unattached", f.State())
	}
	if queue.Pending() != 0 {
		t.Error("unattached field armed a frame")
	}
	queue.Flush(time.Now())
	if rec.Clears != 0 {
		t.Error("unattached field drew")
	}
}

func TestUnattachedWithoutScheduler(t *testing.T) {
	f := NewField(canvas.NewRecorder(10, 10), nil, DefaultFieldConfig(), nil)
	if f.State() != StateUnattached {
		t.Errorf("state = %v, want unattached", f.State())
	}
}

func TestFrameLoopTicksOncePerFlush(t *testing.T) {
	f, rec, queue := newTestField(t, 300, 300, 4, nil)

	var seen []FrameStats
	f.OnFrame(func(s FrameStats) { seen = append(seen, s) })

	for i := 0; i < 3; i++ {
		queue.Flush(time.Now())
	}
	if f.Frames() != 3 {
		t.Errorf("frames = %d, want 3", f.Frames())
	}
	if rec.Clears != 3 {
		t.Errorf("clears = %d, want 3", rec.Clears)
	}
	if len(seen) != 3 || seen[0].Particles != f.Count() {
		t.Errorf("OnFrame stats = %+v", seen)
	}
	if queue.Pending() != 1 {
		t.Errorf("pending = %d, want the re-armed frame", queue.Pending())
	}
}

func TestStopDeregistersFrame(t *testing.T) {
	f, rec, queue := newTestField(t, 300, 300, 4, nil)
	queue.Flush(time.Now())

	f.Stop()
	if f.State() != StateStopped {
		t.Fatalf("state = %v, want stopped", f.State())
	}
	if queue.Pending() != 0 {
		t.Errorf("pending = %d after Stop, want 0", queue.Pending())
	}

	clears := rec.Clears
	queue.Flush(time.Now())
	f.Tick()
	if rec.Clears != clears {
		t.Error("stopped field kept drawing")
	}
	f.Stop()
}

func TestStopFromOwnFrame(t *testing.T) {
	f, _, queue := newTestField(t, 300, 300, 4, nil)
	f.OnFrame(func(FrameStats) { f.Stop() })

	queue.Flush(time.Now())
	if f.State() != StateStopped {
		t.Fatalf("state = %v, want stopped", f.State())
	}
	if queue.Pending() != 0 {
		t.Errorf("field re-armed after stopping itself")
	}
}

type phaseLog []string

func (p *phaseLog) StartPhase(name string) { *p = append(*p, name) }

func TestPhaseRecorder(t *testing.T) {
	f, _, _ := newTestField(t, 100, 100, 1, nil)
	var log phaseLog
	f.SetPhaseRecorder(&log)
	f.Tick()

	if len(log) != 2 || log[0] != PhaseUpdate || log[1] != PhaseRender {
		t.Errorf("phases = %v", log)
	}
}

func TestDensityCount(t *testing.T) {
	f, _, _ := newTestField(t, 1500, 1000, 1, func(c *FieldConfig) {
		c.DensityArea = 15000
	})
	if f.Count() != 100 {
		t.Errorf("count = %d, want 100 for 1500x1000 at 15000px²", f.Count())
	}

	f.Resize(6000, 6000)
	if f.Count() != DefaultFieldConfig().MaxCount {
		t.Errorf("count = %d, want cap %d", f.Count(), DefaultFieldConfig().MaxCount)
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		StateUnattached: "unattached",
		StateRunning:    "running",
		StateStopped:    "stopped",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestNearest(t *testing.T) {
	f, _, _ := newTestField(t, 400, 400, 1, nil)
	f.SetParticles([]Particle{
		{X: 10, Y: 10, Radius: 1, Opacity: 0.5},
		{X: 100, Y: 100, Radius: 1, Opacity: 0.5},
		{X: 104, Y: 100, Radius: 1, Opacity: 0.5},
	})

	tests := []struct {
		x, y, radius float64
		want         int
	}{
		{12, 10, 5, 0},
		{103, 100, 5, 2},
		{99, 100, 5, 1},
		{300, 300, 20, -1},
	}
	for _, tt := range tests {
		if got := f.Nearest(tt.x, tt.y, tt.radius); got != tt.want {
			t.Errorf("Nearest(%v, %v, %v) = %d, want %d", tt.x, tt.y, tt.radius, got, tt.want)
		}
	}

	p, ok := f.Particle(2)
	if !ok || p.X != 104 {
		t.Errorf("Particle(2) = %+v, %v", p, ok)
	}
	if _, ok := f.Particle(3); ok {
		t.Error("Particle(3) should be out of range")
	}
}
