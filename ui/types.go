// Package ui draws the showcase page and its debug panels with raylib.
// Panels are described by field descriptors so the HUD and the particle
// inspector share one layout path.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/devakorn/portfolio/portfolio"
)

// WidgetType specifies how a field is rendered.
type WidgetType int

const (
	WidgetText    WidgetType = iota // Label and formatted value
	WidgetBar                       // Progress bar over Range
	WidgetSection                   // Section header
	WidgetSpacer                    // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float64
	Max float64
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// FieldDescriptor defines how to display one value.
type FieldDescriptor struct {
	Label      string
	Widget     WidgetType
	Format     string // Printf format for Getter values
	Range      FieldRange
	Getter     func(any) float64
	TextGetter func(any) string
}

// SectionDescriptor groups fields under a header.
type SectionDescriptor struct {
	Title  string
	Fields []FieldDescriptor
}

// Theme holds page and panel styling.
type Theme struct {
	Background  rl.Color
	Surface     rl.Color // Cards and inputs
	Border      rl.Color
	Text        rl.Color
	Muted       rl.Color
	Accent      rl.Color
	Success     rl.Color
	Error       rl.Color
	NavBg       rl.Color
	NavScrolled rl.Color

	PanelBg     rl.Color
	PanelBorder rl.Color
	BarBg       rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	HeroFontSize   int32
}

// DarkTheme returns the default dark palette with the red accent.
func DarkTheme() Theme {
	t := baseTheme()
	t.Background = rl.Color{R: 10, G: 10, B: 12, A: 255}
	t.Surface = rl.Color{R: 22, G: 22, B: 26, A: 235}
	t.Border = rl.Color{R: 55, G: 55, B: 62, A: 255}
	t.Text = rl.Color{R: 235, G: 235, B: 240, A: 255}
	t.Muted = rl.Color{R: 150, G: 150, B: 160, A: 255}
	t.NavBg = rl.Color{R: 10, G: 10, B: 12, A: 0}
	t.NavScrolled = rl.Color{R: 14, G: 14, B: 18, A: 230}
	return t
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	t := baseTheme()
	t.Background = rl.Color{R: 244, G: 244, B: 246, A: 255}
	t.Surface = rl.Color{R: 255, G: 255, B: 255, A: 240}
	t.Border = rl.Color{R: 210, G: 210, B: 216, A: 255}
	t.Text = rl.Color{R: 20, G: 20, B: 24, A: 255}
	t.Muted = rl.Color{R: 95, G: 95, B: 105, A: 255}
	t.NavBg = rl.Color{R: 244, G: 244, B: 246, A: 0}
	t.NavScrolled = rl.Color{R: 255, G: 255, B: 255, A: 235}
	return t
}

// ThemeFor returns the palette for a page theme.
func ThemeFor(t portfolio.Theme) Theme {
	if t == portfolio.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

func baseTheme() Theme {
	return Theme{
		Accent:         rl.Color{R: 255, G: 42, B: 42, A: 255},
		Success:        rl.Color{R: 37, G: 211, B: 102, A: 255},
		Error:          rl.Color{R: 255, G: 90, B: 90, A: 255},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		BarBg:          rl.Color{R: 40, G: 40, B: 46, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  32,
		HeroFontSize:   64,
	}
}
