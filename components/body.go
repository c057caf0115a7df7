package components

// Appearance holds how a particle is drawn.
type Appearance struct {
	Radius  float64 // > 0
	Opacity float64 // [0, 1]
}
