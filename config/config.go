// Package config provides configuration loading and access for the showcase.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all showcase configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Typing    TypingConfig    `yaml:"typing"`
	Nav       NavConfig       `yaml:"nav"`
	Tilt      TiltConfig      `yaml:"tilt"`
	Contact   ContactConfig   `yaml:"contact"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Content   ContentConfig   `yaml:"content"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// ParticlesConfig holds particle field parameters.
type ParticlesConfig struct {
	Count        int           `yaml:"count"`        // Fixed particle count
	DensityArea  float64       `yaml:"density_area"` // px² per particle (0 = use fixed count)
	MaxCount     int           `yaml:"max_count"`    // Hard cap on particle count
	RadiusMin    float64       `yaml:"radius_min"`
	RadiusMax    float64       `yaml:"radius_max"`
	OpacityMin   float64       `yaml:"opacity_min"`
	OpacityMax   float64       `yaml:"opacity_max"`
	Speed        float64       `yaml:"speed"`         // Velocity band is [-speed, speed)
	LinkDistance float64       `yaml:"link_distance"` // Proximity threshold in px
	LinkAlpha    float64       `yaml:"link_alpha"`    // Line alpha at zero distance
	LineWidth    float64       `yaml:"line_width"`
	EdgePolicy   string        `yaml:"edge_policy"` // wrap | bounce
	LinkIndex    string        `yaml:"link_index"`  // pairs | grid
	Color        RGB           `yaml:"color"`
	Background   RGB           `yaml:"background"`
	Pointer      PointerConfig `yaml:"pointer"`
}

// PointerConfig holds the optional pointer influence.
type PointerConfig struct {
	Mode     string  `yaml:"mode"` // none | repel | attract
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"` // Max displacement per frame in px
}

// RGB is an opaque colour triple.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// TypingConfig holds typewriter headline timings (milliseconds).
type TypingConfig struct {
	Roles       []string `yaml:"roles"`
	TypeSpeed   int      `yaml:"type_speed"`
	DeleteSpeed int      `yaml:"delete_speed"`
	Hold        int      `yaml:"hold"`
	NextDelay   int      `yaml:"next_delay"`
}

// NavConfig holds scroll thresholds in px.
type NavConfig struct {
	ScrolledOffset float64 `yaml:"scrolled_offset"`
	SectionOffset  float64 `yaml:"section_offset"`
	TopButtonAfter float64 `yaml:"top_button_after"`
	WheelStep      float64 `yaml:"wheel_step"`
}

// TiltConfig holds card tilt parameters.
type TiltConfig struct {
	Divisor     float64 `yaml:"divisor"`
	Scale       float64 `yaml:"scale"`
	Perspective float64 `yaml:"perspective"`
}

// ContactConfig holds contact form parameters.
type ContactConfig struct {
	MessageMin int `yaml:"message_min"`
	SendingMs  int `yaml:"sending_ms"`
	ClearMs    int `yaml:"clear_ms"`
}

// TerminalConfig holds the terminal host cell geometry.
type TerminalConfig struct {
	CellWidth  int    `yaml:"cell_width"`  // Canvas px per column
	CellHeight int    `yaml:"cell_height"` // Canvas px per row
	FrameMs    int    `yaml:"frame_ms"`
	LogFile    string `yaml:"log_file"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// ContentConfig holds the portfolio page content.
type ContentConfig struct {
	Name     string          `yaml:"name"`
	Tagline  string          `yaml:"tagline"`
	About    string          `yaml:"about"`
	Sections []SectionConfig `yaml:"sections"`
	Projects []ProjectConfig `yaml:"projects"`
	Skills   []SkillConfig   `yaml:"skills"`
	Filters  []string        `yaml:"filters"`
}

// SectionConfig describes one page section.
type SectionConfig struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Height float64 `yaml:"height"`
}

// ProjectConfig describes one project card.
type ProjectConfig struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

// SkillConfig describes one skill bar.
type SkillConfig struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"` // 0-100
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameDT       float64            // Seconds per frame at TargetFPS
	SectionOffset map[string]float64 // id -> top offset in page px
	PageHeight    float64            // Sum of section heights
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the field or the headline cannot run with.
func (c *Config) validate() error {
	p := &c.Particles
	switch strings.ToLower(p.EdgePolicy) {
	case "wrap", "bounce":
	default:
		return fmt.Errorf("particles.edge_policy: unknown policy %q", p.EdgePolicy)
	}
	switch strings.ToLower(p.LinkIndex) {
	case "pairs", "grid":
	default:
		return fmt.Errorf("particles.link_index: unknown index %q", p.LinkIndex)
	}
	switch strings.ToLower(p.Pointer.Mode) {
	case "none", "repel", "attract":
	default:
		return fmt.Errorf("particles.pointer.mode: unknown mode %q", p.Pointer.Mode)
	}
	if p.LinkDistance <= 0 {
		return fmt.Errorf("particles.link_distance must be positive, got %v", p.LinkDistance)
	}
	if p.RadiusMin <= 0 || p.RadiusMax < p.RadiusMin {
		return fmt.Errorf("particles: invalid radius band [%v, %v)", p.RadiusMin, p.RadiusMax)
	}
	if p.OpacityMin < 0 || p.OpacityMax > 1 || p.OpacityMax < p.OpacityMin {
		return fmt.Errorf("particles: invalid opacity band [%v, %v)", p.OpacityMin, p.OpacityMax)
	}
	if p.Speed < 0 {
		return fmt.Errorf("particles.speed must not be negative, got %v", p.Speed)
	}

	ty := &c.Typing
	for _, d := range []struct {
		name string
		ms   int
	}{
		{"type_speed", ty.TypeSpeed},
		{"delete_speed", ty.DeleteSpeed},
		{"hold", ty.Hold},
		{"next_delay", ty.NextDelay},
	} {
		if d.ms <= 0 {
			return fmt.Errorf("typing.%s must be positive, got %d", d.name, d.ms)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Particles.EdgePolicy = strings.ToLower(c.Particles.EdgePolicy)
	c.Particles.LinkIndex = strings.ToLower(c.Particles.LinkIndex)
	c.Particles.Pointer.Mode = strings.ToLower(c.Particles.Pointer.Mode)

	if c.Screen.TargetFPS > 0 {
		c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
	} else {
		c.Derived.FrameDT = 1.0 / 60.0
	}

	c.Derived.SectionOffset = make(map[string]float64, len(c.Content.Sections))
	var offset float64
	for _, s := range c.Content.Sections {
		c.Derived.SectionOffset[s.ID] = offset
		offset += s.Height
	}
	c.Derived.PageHeight = offset
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
