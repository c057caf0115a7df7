package telemetry

import (
	"math"
	"testing"

	"github.com/devakorn/portfolio/systems"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	values := []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}
	d := Describe(values)

	if math.Abs(d.Mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", d.Mean)
	}
	// population std of 1..10
	if math.Abs(d.Std-math.Sqrt(8.25)) > 1e-9 {
		t.Errorf("std = %v, want %v", d.Std, math.Sqrt(8.25))
	}
	if math.Abs(d.P10-1.9) > 1e-9 || math.Abs(d.P50-5.5) > 1e-9 || math.Abs(d.P90-9.1) > 1e-9 {
		t.Errorf("percentiles = %v/%v/%v", d.P10, d.P50, d.P90)
	}
	if d.Max != 10 {
		t.Errorf("max = %v, want 10", d.Max)
	}
	if values[0] != 10 {
		t.Error("Describe must not reorder its input")
	}
	if Describe(nil) != (Distribution{}) {
		t.Error("empty input should give the zero distribution")
	}
}

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(1.0, 0.1) // 10 frames per window
	if c.WindowFrames() != 10 {
		t.Fatalf("WindowFrames() = %d, want 10", c.WindowFrames())
	}

	var frame int64
	for ; frame < 10; frame++ {
		if c.ShouldFlush(frame) {
			t.Fatalf("flush requested early at frame %d", frame)
		}
		c.Record(systems.FrameStats{Particles: 50, PairChecks: 1225, Links: int(frame)})
	}
	if !c.ShouldFlush(frame) {
		t.Fatal("expected flush after a full window")
	}

	ws := c.Flush(frame)
	if ws.Frames != 10 || ws.Particles != 50 || ws.WindowEnd != 10 {
		t.Errorf("window = %+v", ws)
	}
	if math.Abs(ws.LinksMean-4.5) > 1e-9 || ws.LinksMax != 9 {
		t.Errorf("links mean/max = %v/%v, want 4.5/9", ws.LinksMean, ws.LinksMax)
	}
	if ws.PairChecksMean != 1225 {
		t.Errorf("pair checks mean = %v, want 1225", ws.PairChecksMean)
	}
	if math.Abs(ws.LinkRate-4.5/1225) > 1e-12 {
		t.Errorf("link rate = %v", ws.LinkRate)
	}
	if math.Abs(ws.ElapsedSec-1.0) > 1e-9 {
		t.Errorf("elapsed = %v, want 1.0", ws.ElapsedSec)
	}

	if c.ShouldFlush(frame + 9) {
		t.Error("window did not reset after flush")
	}
	empty := c.Flush(frame + 10)
	if empty.Frames != 0 || empty.LinkRate != 0 {
		t.Errorf("empty window = %+v", empty)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	if got := NewCollector(0.001, 1.0/60).WindowFrames(); got != 1 {
		t.Errorf("WindowFrames() = %d, want 1", got)
	}
	if got := NewCollector(5, 0).WindowFrames(); got != 1 {
		t.Errorf("WindowFrames() with zero dt = %d, want 1", got)
	}
}
