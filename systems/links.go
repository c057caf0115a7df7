package systems

import "gonum.org/v1/gonum/spatial/r2"

// LinkAlpha returns the alpha of a proximity line between two particles at
// distance d. Lines exist only for d strictly below threshold; alpha decays
// linearly from maxAlpha at d=0 to 0 at the threshold.
func LinkAlpha(d, threshold, maxAlpha float64) (float64, bool) {
	if threshold <= 0 || d >= threshold {
		return 0, false
	}
	return maxAlpha * (1 - d/threshold), true
}

// Distance returns the Euclidean distance between two particles.
func Distance(a, b Particle) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: a.X, Y: a.Y}, r2.Vec{X: b.X, Y: b.Y}))
}
