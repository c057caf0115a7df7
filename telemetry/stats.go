package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats summarises the particle field over a window of frames.
type WindowStats struct {
	WindowStart int64   `csv:"-"`
	WindowEnd   int64   `csv:"window_end"`
	ElapsedSec  float64 `csv:"elapsed"`
	Frames      int     `csv:"frames"`

	// Particle count at window end
	Particles int `csv:"particles"`

	// Unique pairs tested per frame
	PairChecksMean float64 `csv:"pair_checks_mean"`

	// Proximity lines drawn per frame
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksP10  float64 `csv:"links_p10"`
	LinksP50  float64 `csv:"links_p50"`
	LinksP90  float64 `csv:"links_p90"`
	LinksMax  float64 `csv:"links_max"`

	// Fraction of tested pairs that were linked
	LinkRate float64 `csv:"link_rate"`
}

// Percentile returns the p-th percentile (p in [0, 1]) of a sorted slice
// by linear interpolation between closest ranks. Returns 0 for an empty
// slice.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// Distribution holds summary statistics of a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Describe computes population mean and standard deviation, percentiles
// and maximum of values. The input is not modified.
func Describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	mean, std := stat.PopMeanStdDev(values, nil)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  floats.Max(sorted),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStart),
		slog.Int64("window_end", s.WindowEnd),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.Int("frames", s.Frames),
		slog.Int("particles", s.Particles),
		slog.Float64("pair_checks_mean", s.PairChecksMean),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_std", s.LinksStd),
		slog.Float64("links_p10", s.LinksP10),
		slog.Float64("links_p50", s.LinksP50),
		slog.Float64("links_p90", s.LinksP90),
		slog.Float64("links_max", s.LinksMax),
		slog.Float64("link_rate", s.LinkRate),
	)
}
