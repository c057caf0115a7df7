package portfolio

import "slices"

// VisibleFunc runs when a target first becomes visible. order is the
// target's position among those that became visible in the same Observe
// call, used to stagger reveal animations.
type VisibleFunc func(order int)

type target struct {
	id        string
	rect      Rect
	threshold float64
	fn        VisibleFunc
}

// VisibilityTracker fires a callback once per target, the first time the
// visible fraction of the target reaches its threshold, then forgets it.
type VisibilityTracker struct {
	targets []target
}

// NewVisibilityTracker creates an empty tracker.
func NewVisibilityTracker() *VisibilityTracker {
	return &VisibilityTracker{}
}

// Register adds a target in page coordinates. Registering an id again
// replaces the earlier registration.
func (v *VisibilityTracker) Register(id string, rect Rect, threshold float64, fn VisibleFunc) {
	for i := range v.targets {
		if v.targets[i].id == id {
			v.targets[i] = target{id: id, rect: rect, threshold: threshold, fn: fn}
			return
		}
	}
	v.targets = append(v.targets, target{id: id, rect: rect, threshold: threshold, fn: fn})
}

// Move updates a pending target's rectangle after a layout change.
func (v *VisibilityTracker) Move(id string, rect Rect) {
	for i := range v.targets {
		if v.targets[i].id == id {
			v.targets[i].rect = rect
			return
		}
	}
}

// Remove forgets a pending target.
func (v *VisibilityTracker) Remove(id string) {
	v.targets = slices.DeleteFunc(v.targets, func(t target) bool { return t.id == id })
}

// Pending returns the number of targets still waiting to become visible.
func (v *VisibilityTracker) Pending() int {
	return len(v.targets)
}

// Observe checks every pending target against the viewport, fires and
// removes those that reached their threshold, and returns their ids in
// registration order.
func (v *VisibilityTracker) Observe(viewport Rect) []string {
	var fired []target
	kept := v.targets[:0]
	for _, t := range v.targets {
		if ratio(t.rect, viewport) >= t.threshold && intersects(t.rect, viewport) {
			fired = append(fired, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(v.targets); i++ {
		v.targets[i] = target{}
	}
	v.targets = kept

	ids := make([]string, 0, len(fired))
	for i, t := range fired {
		if t.fn != nil {
			t.fn(i)
		}
		ids = append(ids, t.id)
	}
	return ids
}

// ratio is the visible fraction of r inside viewport. Degenerate targets
// count as fully visible when their origin is inside the viewport.
func ratio(r, viewport Rect) float64 {
	if r.Area() <= 0 {
		if viewport.Contains(r.X, r.Y) {
			return 1
		}
		return 0
	}
	return r.Intersect(viewport).Area() / r.Area()
}

func intersects(r, viewport Rect) bool {
	if r.Area() <= 0 {
		return viewport.Contains(r.X, r.Y)
	}
	return r.Intersect(viewport).Area() > 0
}
