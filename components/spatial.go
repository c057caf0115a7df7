// Package components defines ECS components for the particle field.
package components

// Position is a particle's canvas-space position in pixels.
type Position struct {
	X, Y float64
}

// Velocity is a particle's per-frame displacement in pixels.
type Velocity struct {
	X, Y float64
}
