// Package camera provides the vertical page camera used to scroll the
// showcase page under a fixed window.
package camera

import "math"

// Camera controls which slice of the page is shown in the window.
// The page is laid out in page coordinates (x right, y down from the top of
// the first section); the camera scrolls vertically and never wraps.
type Camera struct {
	// Y is the scroll offset: the page coordinate shown at the top edge.
	Y float64

	// Viewport dimensions (window size)
	ViewportW, ViewportH float64

	// PageH is the total page height.
	PageH float64

	// Smooth scroll target and rate (fraction of the gap closed per second)
	target    float64
	animating bool
	Rate      float64
}

// New creates a camera at the top of the page.
func New(viewportW, viewportH, pageH float64) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		PageH:     pageH,
		Rate:      10,
	}
}

// MaxScroll returns the largest valid scroll offset.
func (c *Camera) MaxScroll() float64 {
	return math.Max(0, c.PageH-c.ViewportH)
}

// PageToScreen converts page coordinates to window coordinates.
func (c *Camera) PageToScreen(px, py float64) (sx, sy float64) {
	return px, py - c.Y
}

// ScreenToPage converts window coordinates to page coordinates.
func (c *Camera) ScreenToPage(sx, sy float64) (px, py float64) {
	return sx, sy + c.Y
}

// IsVisible reports whether any part of the page band [top, top+height)
// lies inside the viewport.
func (c *Camera) IsVisible(top, height float64) bool {
	return top < c.Y+c.ViewportH && top+height > c.Y
}

// VisibleBounds returns the page-coordinate bounds of the visible area.
func (c *Camera) VisibleBounds() (minX, minY, maxX, maxY float64) {
	return 0, c.Y, c.ViewportW, c.Y + c.ViewportH
}

// Resize updates viewport dimensions and re-clamps the scroll offset.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.Y = clamp(c.Y, 0, c.MaxScroll())
	c.target = clamp(c.target, 0, c.MaxScroll())
}

// SetPageHeight changes the page height and re-clamps the scroll.
func (c *Camera) SetPageHeight(pageH float64) {
	c.PageH = pageH
	c.Y = clamp(c.Y, 0, c.MaxScroll())
	c.target = clamp(c.target, 0, c.MaxScroll())
}

// Pan scrolls immediately by dy pixels (mouse wheel), cancelling any
// smooth scroll in progress.
func (c *Camera) Pan(dy float64) {
	c.Y = clamp(c.Y+dy, 0, c.MaxScroll())
	c.animating = false
}

// ScrollTo starts a smooth scroll toward page offset y.
func (c *Camera) ScrollTo(y float64) {
	c.target = clamp(y, 0, c.MaxScroll())
	c.animating = c.target != c.Y
}

// Scrolling reports whether a smooth scroll is in progress.
func (c *Camera) Scrolling() bool {
	return c.animating
}

// Update advances a smooth scroll by dt seconds.
func (c *Camera) Update(dt float64) {
	if !c.animating {
		return
	}
	k := 1 - math.Exp(-c.Rate*dt)
	c.Y += (c.target - c.Y) * k
	if math.Abs(c.target-c.Y) < 0.5 {
		c.Y = c.target
		c.animating = false
	}
}

// Reset returns the camera to the top of the page.
func (c *Camera) Reset() {
	c.Y = 0
	c.target = 0
	c.animating = false
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
