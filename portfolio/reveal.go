package portfolio

import "time"

// Side is the direction a revealed block slides in from.
type Side uint8

const (
	SlideLeft Side = iota
	SlideRight
)

// Animation is a one-shot eased progress from 0 to 1.
type Animation struct {
	Delay    time.Duration
	Duration time.Duration
	Side     Side

	started bool
	elapsed time.Duration
}

// RevealStagger is the delay added per position in a reveal batch.
const RevealStagger = 100 * time.Millisecond

// NewReveal builds the slide-in animation for the order-th block that
// became visible in a batch: even orders slide in from the left, odd ones
// from the right, each delayed by order * RevealStagger.
func NewReveal(order int, duration time.Duration) *Animation {
	side := SlideLeft
	if order%2 == 1 {
		side = SlideRight
	}
	return &Animation{
		Delay:    time.Duration(order) * RevealStagger,
		Duration: duration,
		Side:     side,
		started:  true,
	}
}

// Start begins the animation.
func (a *Animation) Start() {
	a.started = true
	a.elapsed = 0
}

// Started reports whether the animation has been started.
func (a *Animation) Started() bool {
	return a.started
}

// Advance moves the animation forward by dt.
func (a *Animation) Advance(dt time.Duration) {
	if a.started {
		a.elapsed += dt
	}
}

// Progress returns the eased progress in [0, 1]; 0 before start or during
// the delay.
func (a *Animation) Progress() float64 {
	if !a.started || a.elapsed <= a.Delay {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	t := float64(a.elapsed-a.Delay) / float64(a.Duration)
	if t >= 1 {
		return 1
	}
	// ease-out cubic
	u := 1 - t
	return 1 - u*u*u
}

// Done reports whether the animation has finished.
func (a *Animation) Done() bool {
	return a.Progress() >= 1
}
