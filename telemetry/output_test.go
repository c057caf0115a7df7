package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devakorn/portfolio/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// nil manager accepts every call
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager should report no dir and close cleanly")
	}
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	for i := int64(1); i <= 3; i++ {
		if err := om.WriteWindow(WindowStats{WindowEnd: i * 300, Particles: 50}); err != nil {
			t.Fatalf("WriteWindow: %v", err)
		}
		if err := om.WritePerf(PerfStats{AvgWork: time.Millisecond}, i*300); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	frames, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(frames)), "\n")
	if len(lines) != 4 {
		t.Fatalf("frames.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "window_end,elapsed,frames,particles") {
		t.Errorf("frames.csv header = %q", lines[0])
	}
	if strings.Count(string(frames), "window_end") != 1 {
		t.Error("header written more than once")
	}

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(perf), "particles_render_pct") {
		t.Error("perf.csv missing phase columns")
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not reload: %v", err)
	}
}
