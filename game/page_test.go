package game

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/contact"
)

func newTestPage(t *testing.T, w, h float64) *Page {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return NewPage(cfg, w, h)
}

func TestPageRevealsHomeOnFirstFrame(t *testing.T) {
	p := newTestPage(t, 1280, 800)

	got := p.Update(0, 0)
	if !slices.Contains(got, "section:home") {
		t.Errorf("revealed = %v, want section:home", got)
	}
	if slices.Contains(got, "section:about") {
		t.Error("about starts below the fold and should not be revealed")
	}

	p.Update(sectionFade, 0)
	if a := p.SectionAlpha("home"); a != 1 {
		t.Errorf("home alpha = %v after fade, want 1", a)
	}
	if again := p.Update(0, 0); len(again) != 0 {
		t.Errorf("targets fired twice: %v", again)
	}
}

func TestPageCardsStaggerAndAlternate(t *testing.T) {
	p := newTestPage(t, 1280, 800)
	p.Update(0, 1750)

	a0, off0 := p.CardReveal(0)
	a1, off1 := p.CardReveal(1)
	if a0 != 0 || a1 != 0 {
		t.Errorf("cards visible before their delay: %v %v", a0, a1)
	}
	if off0 >= 0 || off1 <= 0 {
		t.Errorf("offsets = %v, %v; want neighbouring cards to slide from opposite sides", off0, off1)
	}

	p.Update(2*time.Second, 1750)
	for i := range p.Content.Projects {
		if a, off := p.CardReveal(i); a != 1 || off != 0 {
			t.Errorf("card %d = alpha %v offset %v after reveal, want 1, 0", i, a, off)
		}
	}
}

func TestPageFilterHidesCards(t *testing.T) {
	p := newTestPage(t, 1280, 800)

	shown := p.SelectFilter("design")
	if len(shown) != 1 || shown[0] != 1 {
		t.Fatalf("design filter shows %v, want [1]", shown)
	}
	if p.Layout.Cards[0].W != 0 || p.Layout.Cards[1].W == 0 {
		t.Errorf("card layout after filter = %+v", p.Layout.Cards)
	}

	revealed := p.Update(0, 1750)
	if slices.Contains(revealed, "card:0") {
		t.Error("filtered-out card was revealed")
	}
	if !slices.Contains(revealed, "card:1") {
		t.Errorf("revealed = %v, want card:1", revealed)
	}

	p.SelectFilter("all")
	if revealed := p.Update(0, 1750); !slices.Contains(revealed, "card:0") {
		t.Errorf("card 0 not revealed after showing all: %v", revealed)
	}
}

func TestPageHoverTilt(t *testing.T) {
	p := newTestPage(t, 1280, 800)
	card := p.Layout.Cards[0]

	if got := p.Hover(card.X+card.W/2, card.Y+card.H/2); got != 0 {
		t.Fatalf("Hover over card 0 = %d", got)
	}
	tf := p.Tilt(0)
	if math.Abs(tf.Scale-1.02) > 1e-9 || tf.RotateX != 0 || tf.RotateY != 0 {
		t.Errorf("centre tilt = %+v", tf)
	}
	if p.Tilt(1).Scale != 1 {
		t.Errorf("other card tilted: %+v", p.Tilt(1))
	}

	if got := p.Hover(0, 0); got != -1 {
		t.Errorf("Hover off cards = %d", got)
	}
	if p.Tilt(0).Scale != 1 {
		t.Error("tilt not reset on leave")
	}
}

func TestPageSkillsFill(t *testing.T) {
	p := newTestPage(t, 1280, 800)
	p.Update(0, 1300)
	p.Update(skillFill, 1300)
	for i := range p.Content.Skills {
		if got := p.SkillProgress(i); got != 1 {
			t.Errorf("skill %d progress = %v, want 1", i, got)
		}
	}
}

func TestPageContactFlow(t *testing.T) {
	p := newTestPage(t, 1280, 800)

	if err := p.Submit(); err == nil {
		t.Fatal("empty form submitted")
	}
	for _, f := range contact.Fields {
		if p.FieldError(f) != "This field is required" {
			t.Errorf("%s error = %q", f, p.FieldError(f))
		}
	}

	p.Form.Name = "Ada"
	if msg := p.Blur(contact.FieldName); msg != "" || p.FieldError(contact.FieldName) != "" {
		t.Errorf("name still invalid: %q", msg)
	}
	p.Form.Email = "ada@example"
	if p.Blur(contact.FieldEmail) != "Please enter a valid email" {
		t.Errorf("email error = %q", p.FieldError(contact.FieldEmail))
	}

	p.Form.Email = "ada@example.com"
	p.Form.Message = "Hello there, nice work."
	if err := p.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if p.Submission.Message() != contact.MessageSending {
		t.Errorf("status = %q", p.Submission.Message())
	}

	p.Update(time.Second, 0)
	if p.Submission.State() != contact.Sent || p.Form.Name != "" {
		t.Errorf("after send: state %v, form %+v", p.Submission.State(), p.Form)
	}
	p.Update(5*time.Second, 0)
	if p.Submission.Message() != "" {
		t.Errorf("status not cleared: %q", p.Submission.Message())
	}
}

func TestPageNavigation(t *testing.T) {
	p := newTestPage(t, 1280, 800)

	y, ok := p.Follow("projects")
	if !ok || y != 1750-60 {
		t.Errorf("Follow(projects) = %v, %v", y, ok)
	}
	if _, ok := p.Follow("blog"); ok {
		t.Error("unknown section followed")
	}

	p.Update(0, 1200)
	st := p.Nav.State()
	if !st.Scrolled || !st.ShowTop || st.Active != "skills" {
		t.Errorf("nav state at 1200 = %+v", st)
	}
}

func TestPageTypingAndTheme(t *testing.T) {
	p := newTestPage(t, 1280, 800)
	p.Update(300*time.Millisecond, 0)
	if got := p.Typer.Text(); got != "Ful" {
		t.Errorf("typed = %q, want %q", got, "Ful")
	}

	if p.ToggleTheme().String() != "light" || p.ToggleTheme().String() != "dark" {
		t.Error("theme toggle does not alternate")
	}
}

func TestPageCompactLayout(t *testing.T) {
	p := newTestPage(t, 1280, 800)
	p.Resize(600, 800)
	if !p.Layout.Compact {
		t.Error("600px window should use the compact nav")
	}
	if p.Layout.Cards[0].X != p.Layout.Cards[1].X {
		t.Errorf("cards not stacked in one column: %+v", p.Layout.Cards[:2])
	}
}

func TestPageNarrowMovesContact(t *testing.T) {
	p := newTestPage(t, 600, 800)
	contact := p.Layout.Sections["contact"]
	if contact.Y <= 2450 {
		t.Fatalf("contact at %v, want below the grown projects section", contact.Y)
	}

	y, ok := p.Follow("contact")
	if !ok || y != contact.Y-60 {
		t.Errorf("Follow(contact) = %v, %v, want %v", y, ok, contact.Y-60)
	}
	if got := p.Nav.Scroll(contact.Y).Active; got != "contact" {
		t.Errorf("active at contact top = %q, want contact", got)
	}
}
