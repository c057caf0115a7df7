package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/devakorn/portfolio/config"
)

// csvFile appends records to a CSV file, writing the header once.
type csvFile struct {
	f      *os.File
	header bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

func (c *csvFile) append(records any) error {
	if c.header {
		return gocsv.MarshalWithoutHeaders(records, c.f)
	}
	if err := gocsv.Marshal(records, c.f); err != nil {
		return err
	}
	c.header = true
	return nil
}

// OutputManager writes run output: frames.csv with window stats, perf.csv
// with frame timings, and a config.yaml snapshot.
type OutputManager struct {
	dir    string
	frames *csvFile
	perf   *csvFile
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled); a nil manager accepts
// every call.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	frames, err := createCSV(dir, "frames.csv")
	if err != nil {
		return nil, err
	}
	perf, err := createCSV(dir, "perf.csv")
	if err != nil {
		frames.f.Close()
		return nil, err
	}
	return &OutputManager{dir: dir, frames: frames, perf: perf}, nil
}

// WriteConfig saves the configuration in effect as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow appends a window stats row to frames.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.frames.append([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// WritePerf appends a perf row to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}
	if err := om.perf.append([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.frames.f.Close(), om.perf.f.Close())
}
