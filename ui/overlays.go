package ui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Debug overlay IDs.
const (
	OverlayHUD        OverlayID = "hud"
	OverlayPerf       OverlayID = "perf"
	OverlayInspector  OverlayID = "inspector"
	OverlayLinkGrid   OverlayID = "link_grid"
	OverlayPointer    OverlayID = "pointer"
	OverlayVelocities OverlayID = "velocities"
	OverlayBounds     OverlayID = "bounds"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // 0 = no key
	KeyLabel    string // e.g. "G", "F3"
	Category    string // "panels", "field" or "page"
	Exclusive   []OverlayID
}

var debugOverlays = []OverlayDescriptor{
	{OverlayHUD, "Stats HUD", "Particle, link and scroll counters", rl.KeyF3, "F3", "panels", nil},
	{OverlayPerf, "Frame Timing", "Per-phase frame work", rl.KeyF4, "F4", "panels", nil},
	{OverlayInspector, "Inspector", "Click a particle to inspect it", rl.KeyI, "I", "panels", nil},
	{OverlayLinkGrid, "Link Grid", "Cells of the link distance grid", rl.KeyG, "G", "field", nil},
	{OverlayPointer, "Pointer Radius", "Pointer position and influence radius", rl.KeyP, "P", "field", nil},
	{OverlayVelocities, "Velocities", "Per-particle velocity vectors", rl.KeyV, "V", "field", nil},
	{OverlayBounds, "Layout Bounds", "Section and card rectangles", rl.KeyB, "B", "page", nil},
}

// OverlayRegistry tracks which overlays are on. Descriptors keep their
// registration order for display.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the debug overlays, all off.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	for _, d := range debugOverlays {
		r.Register(d)
	}
	return r
}

// Register adds an overlay, replacing one with the same ID.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if i := r.index(desc.ID); i >= 0 {
		r.descriptors[i] = desc
		return
	}
	r.descriptors = append(r.descriptors, desc)
}

func (r *OverlayRegistry) index(id OverlayID) int {
	return slices.IndexFunc(r.descriptors, func(d OverlayDescriptor) bool { return d.ID == id })
}

// Toggle flips an overlay and returns its new state. Turning one on turns
// off the overlays it excludes.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	on := !r.enabled[id]
	r.enabled[id] = on
	if on {
		for _, excl := range r.descriptors[i].Exclusive {
			delete(r.enabled, excl)
		}
	}
	return on
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns every overlay in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns the overlays of one category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, d := range r.descriptors {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns the categories in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, d := range r.descriptors {
		if !slices.Contains(cats, d.Category) {
			cats = append(cats, d.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key. It returns the overlay,
// its new state, and whether any overlay matched.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, d := range r.descriptors {
		if d.Key != 0 && d.Key == key {
			return d.ID, r.Toggle(d.ID), true
		}
	}
	return "", false, false
}

// EnabledOverlays returns the IDs of the overlays that are on, in
// registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var out []OverlayID
	for _, d := range r.descriptors {
		if r.enabled[d.ID] {
			out = append(out, d.ID)
		}
	}
	return out
}
