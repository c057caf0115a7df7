package game

// Options configures a Game beyond the loaded config.
type Options struct {
	Seed           int64   // RNG seed for the particle field
	LogStats       bool    // Log window and perf stats via slog
	StatsWindowSec float64 // Telemetry window (0 = config value)
	OutputDir      string  // CSV and config snapshot directory ("" = off)
	Headless       bool    // Draw into a recorder instead of a window
}
