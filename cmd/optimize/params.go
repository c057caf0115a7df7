package main

import (
	"github.com/devakorn/portfolio/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of tunable particle parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "count", Path: "particles.count", Min: 10, Max: 300, Default: 50},
			{Name: "link_distance", Path: "particles.link_distance", Min: 40, Max: 220, Default: 100},
			{Name: "speed", Path: "particles.speed", Min: 0.05, Max: 1.5, Default: 0.25},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize maps raw values to [0,1].
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return out
}

// Denormalize maps [0,1] values back to raw values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return out
}

// Clamp keeps every value within its bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return out
}

// ApplyToConfig writes clamped values into cfg. The count is fixed, so
// area-based density is switched off.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	v := pv.Clamp(values)
	cfg.Particles.Count = int(v[0] + 0.5)
	cfg.Particles.DensityArea = 0
	cfg.Particles.MaxCount = max(cfg.Particles.MaxCount, cfg.Particles.Count)
	cfg.Particles.LinkDistance = v[1]
	cfg.Particles.Speed = v[2]
}

// ExtractFromConfig reads the current values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Particles.Count),
		cfg.Particles.LinkDistance,
		cfg.Particles.Speed,
	}
}
