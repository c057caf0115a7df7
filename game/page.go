package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/contact"
	"github.com/devakorn/portfolio/portfolio"
	"github.com/devakorn/portfolio/typing"
)

// Reveal thresholds (visible fraction) and durations.
const (
	sectionThreshold = 0.1
	cardThreshold    = 0.1
	skillThreshold   = 0.5

	sectionFade  = 800 * time.Millisecond
	cardSlide    = 600 * time.Millisecond
	skillFill    = 1500 * time.Millisecond
	slideDistPx  = 60.0
)

// Page is the showcase page state: content, layout and the page
// controllers. It has no drawing code so the headless host and tests can
// drive it.
type Page struct {
	Content portfolio.Content
	Layout  portfolio.PageLayout

	Nav        *portfolio.Navigation
	Filter     *portfolio.ProjectFilter
	Tilter     portfolio.Tilter
	Typer      *typing.Typewriter
	Form       contact.Form
	Validator  *contact.Validator
	Submission *contact.Submission
	Theme      portfolio.Theme

	tracker    *portfolio.VisibilityTracker
	registered map[string]bool
	reveals    map[string]*portfolio.Animation
	errors     map[string]string
	tilts      []portfolio.Transform
	hovered    int

	width, height float64
}

// NewPage builds the page for cfg laid out in a width×height window.
func NewPage(cfg *config.Config, width, height float64) *Page {
	content := portfolio.ContentFrom(cfg)
	v := contact.NewValidator(cfg.Contact.MessageMin)
	p := &Page{
		Content:    content,
		Nav:        portfolio.NewNavigation(content.Sections, cfg.Nav),
		Filter:     portfolio.NewProjectFilter(content.Projects, content.Filters),
		Tilter:     portfolio.NewTilter(cfg.Tilt),
		Typer:      typing.New(cfg.Typing.Roles, typing.TimingFrom(cfg.Typing)),
		Validator:  v,
		Submission: contact.NewSubmission(v, cfg.Contact),
		tracker:    portfolio.NewVisibilityTracker(),
		registered: make(map[string]bool),
		reveals:    make(map[string]*portfolio.Animation),
		errors:     make(map[string]string),
		tilts:      make([]portfolio.Transform, len(content.Projects)),
		hovered:    -1,
	}
	p.Resize(width, height)
	return p
}

func sectionTarget(id string) string { return "section:" + id }
func cardTarget(i int) string        { return fmt.Sprintf("card:%d", i) }
func skillTarget(i int) string       { return fmt.Sprintf("skill:%d", i) }

// Resize lays the page out again for a new window size.
func (p *Page) Resize(width, height float64) {
	p.width, p.height = width, height
	p.relayout()
}

// relayout recomputes the layout and keeps visibility targets in step.
// Cards hidden by the filter are not tracked until they show again.
func (p *Page) relayout() {
	p.Layout = portfolio.Layout(p.Content, p.Filter, p.width, p.height)
	p.Nav.SetSections(p.Layout.Placed)

	for _, s := range p.Content.Sections {
		id := sectionTarget(s.ID)
		p.track(id, p.Layout.Sections[s.ID], sectionThreshold, func(int) {
			p.reveals[id] = &portfolio.Animation{Duration: sectionFade}
			p.reveals[id].Start()
		})
	}
	for i, r := range p.Layout.Cards {
		id := cardTarget(i)
		if r.W == 0 {
			if p.registered[id] {
				p.tracker.Remove(id)
				delete(p.registered, id)
			}
			continue
		}
		p.track(id, r, cardThreshold, func(order int) {
			p.reveals[id] = portfolio.NewReveal(order, cardSlide)
		})
	}
	for i, r := range p.Layout.Skills {
		id := skillTarget(i)
		p.track(id, r, skillThreshold, func(int) {
			p.reveals[id] = &portfolio.Animation{Duration: skillFill}
			p.reveals[id].Start()
		})
	}
}

func (p *Page) track(id string, r portfolio.Rect, threshold float64, fn portfolio.VisibleFunc) {
	if _, done := p.reveals[id]; done {
		return
	}
	if p.registered[id] {
		p.tracker.Move(id, r)
		return
	}
	p.registered[id] = true
	p.tracker.Register(id, r, threshold, fn)
}

// Update advances the page by dt with the window showing the page from
// scrollY down. It returns the ids of targets revealed this frame.
func (p *Page) Update(dt time.Duration, scrollY float64) []string {
	p.Typer.Advance(dt)
	p.Submission.Advance(dt)
	p.Nav.Scroll(scrollY)

	revealed := p.tracker.Observe(portfolio.Rect{Y: scrollY, W: p.width, H: p.height})
	for _, a := range p.reveals {
		a.Advance(dt)
	}
	return revealed
}

// Reveal returns the reveal progress of a target in [0, 1]; 0 until the
// target has been seen.
func (p *Page) Reveal(id string) float64 {
	if a, ok := p.reveals[id]; ok {
		return a.Progress()
	}
	return 0
}

// SectionAlpha is the fade-in of a section.
func (p *Page) SectionAlpha(id string) float64 {
	return p.Reveal(sectionTarget(id))
}

// SkillProgress is the fill of the i-th skill bar.
func (p *Page) SkillProgress(i int) float64 {
	return p.Reveal(skillTarget(i))
}

// CardReveal returns the fade and horizontal slide offset of card i.
func (p *Page) CardReveal(i int) (alpha, offset float64) {
	a, ok := p.reveals[cardTarget(i)]
	if !ok {
		return 0, -slideDistPx
	}
	alpha = a.Progress()
	offset = (1 - alpha) * slideDistPx
	if a.Side == portfolio.SlideLeft {
		offset = -offset
	}
	return alpha, offset
}

// Hover tilts the card under page point (px, py) and resets the others.
// It returns the hovered card index or -1.
func (p *Page) Hover(px, py float64) int {
	p.hovered = p.Layout.CardAt(px, py)
	for i := range p.tilts {
		if i == p.hovered {
			p.tilts[i] = p.Tilter.Tilt(p.Layout.Cards[i], px, py)
		} else {
			p.tilts[i] = p.Tilter.Reset()
		}
	}
	return p.hovered
}

// Hovered returns the hovered card index or -1.
func (p *Page) Hovered() int {
	return p.hovered
}

// Tilt returns the transform of card i.
func (p *Page) Tilt(i int) portfolio.Transform {
	if i < 0 || i >= len(p.tilts) {
		return p.Tilter.Reset()
	}
	return p.tilts[i]
}

// SelectFilter applies a project filter and lays the cards out again.
func (p *Page) SelectFilter(filter string) []int {
	shown := p.Filter.Select(filter)
	p.relayout()
	p.Hover(-1, -1)
	return shown
}

// Blur validates one field, as when an input loses focus.
func (p *Page) Blur(field string) string {
	msg := p.Validator.ValidateField(&p.Form, field)
	if msg == "" {
		delete(p.errors, field)
	} else {
		p.errors[field] = msg
	}
	return msg
}

// FieldError returns the message shown under a form field.
func (p *Page) FieldError(field string) string {
	return p.errors[field]
}

// Submit validates the form and starts the simulated send.
func (p *Page) Submit() error {
	err := p.Submission.Submit(&p.Form)
	clear(p.errors)
	var fe contact.Errors
	if errors.As(err, &fe) {
		for _, e := range fe {
			p.errors[e.Field] = e.Message
		}
	}
	return err
}

// ToggleTheme switches between the dark and light theme.
func (p *Page) ToggleTheme() portfolio.Theme {
	p.Theme = p.Theme.Toggle()
	return p.Theme
}

// Follow returns the scroll target for a nav link, keeping the section
// title clear of the fixed nav bar.
func (p *Page) Follow(id string) (float64, bool) {
	y, ok := p.Nav.Follow(id)
	if !ok {
		return 0, false
	}
	return max(0, y-portfolio.NavHeight), true
}
