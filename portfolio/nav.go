package portfolio

import "github.com/devakorn/portfolio/config"

// NavState is the navigation bar state derived from a scroll offset.
type NavState struct {
	Scrolled bool   // Compact bar style
	Active   string // Active section id, empty above the first section
	ShowTop  bool   // Scroll-to-top button visible
}

// Navigation tracks the menu toggle and the scroll-derived nav state.
type Navigation struct {
	sections []Section
	cfg      config.NavConfig
	menuOpen bool
	state    NavState
}

// NewNavigation creates a navigation controller over the page sections.
func NewNavigation(sections []Section, cfg config.NavConfig) *Navigation {
	return &Navigation{sections: sections, cfg: cfg}
}

// SetSections replaces the sections, as laid out for the current window.
func (n *Navigation) SetSections(sections []Section) {
	n.sections = sections
}

// ToggleMenu opens or closes the mobile menu.
func (n *Navigation) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

// CloseMenu closes the menu; following a nav link calls this.
func (n *Navigation) CloseMenu() {
	n.menuOpen = false
}

// MenuOpen reports whether the menu is open.
func (n *Navigation) MenuOpen() bool {
	return n.menuOpen
}

// Scroll recomputes the nav state for scroll offset y.
// The active section is the last one whose top is at or above y plus the
// section offset.
func (n *Navigation) Scroll(y float64) NavState {
	s := NavState{
		Scrolled: y > n.cfg.ScrolledOffset,
		ShowTop:  y > n.cfg.TopButtonAfter,
	}
	for _, sec := range n.sections {
		if sec.Offset <= y+n.cfg.SectionOffset {
			s.Active = sec.ID
		}
	}
	n.state = s
	return s
}

// State returns the state from the last Scroll.
func (n *Navigation) State() NavState {
	return n.state
}

// Follow closes the menu and returns the scroll target for a nav link.
func (n *Navigation) Follow(id string) (float64, bool) {
	n.CloseMenu()
	for _, sec := range n.sections {
		if sec.ID == id {
			return sec.Offset, true
		}
	}
	return 0, false
}
