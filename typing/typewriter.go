// Package typing drives the typed headline that cycles through a list of
// roles, typing and deleting one character at a time.
package typing

import (
	"time"

	"github.com/devakorn/portfolio/config"
)

// Timing holds the typewriter delays.
type Timing struct {
	Type   time.Duration // Per typed character
	Delete time.Duration // Per deleted character
	Hold   time.Duration // Pause after the full role is shown
	Next   time.Duration // Pause before the next role starts
}

// DefaultTiming returns the stock headline delays.
func DefaultTiming() Timing {
	return Timing{
		Type:   100 * time.Millisecond,
		Delete: 50 * time.Millisecond,
		Hold:   2000 * time.Millisecond,
		Next:   500 * time.Millisecond,
	}
}

// TimingFrom converts millisecond config values.
func TimingFrom(c config.TypingConfig) Timing {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return Timing{
		Type:   ms(c.TypeSpeed),
		Delete: ms(c.DeleteSpeed),
		Hold:   ms(c.Hold),
		Next:   ms(c.NextDelay),
	}
}

// Typewriter is a headline that types a role, holds it, deletes it, and
// moves on to the next role, wrapping around at the end of the list.
type Typewriter struct {
	roles    [][]rune
	timing   Timing
	role     int
	index    int
	deleting bool

	text    string
	wait    time.Duration // Delay before the next step
	elapsed time.Duration
}

// New creates a typewriter and performs its first step.
func New(roles []string, timing Timing) *Typewriter {
	t := &Typewriter{timing: timing}
	for _, r := range roles {
		t.roles = append(t.roles, []rune(r))
	}
	if len(t.roles) > 0 {
		t.Step()
	}
	return t
}

// Text returns the currently displayed text.
func (t *Typewriter) Text() string {
	return t.text
}

// Role returns the index of the role being typed.
func (t *Typewriter) Role() int {
	return t.role
}

// Deleting reports whether the typewriter is in its delete phase.
func (t *Typewriter) Deleting() bool {
	return t.deleting
}

// Step shows the next prefix of the current role and returns it together
// with the delay until the following step.
//
// While typing, the prefix grows by one character per step; once it has
// passed the full role the typewriter holds, then shrinks it one character
// per step. After the empty prefix it pauses and advances to the next role.
func (t *Typewriter) Step() (string, time.Duration) {
	if len(t.roles) == 0 {
		return "", 0
	}
	cur := t.roles[t.role]

	t.text = prefix(cur, t.index)
	if !t.deleting {
		t.index++
		if t.index > len(cur) {
			t.deleting = true
			t.wait = t.timing.Hold
			return t.text, t.wait
		}
		t.wait = t.timing.Type
		return t.text, t.wait
	}

	t.index--
	if t.index < 0 {
		t.deleting = false
		t.role = (t.role + 1) % len(t.roles)
		t.index = 0
		t.wait = t.timing.Next
		return t.text, t.wait
	}
	t.wait = t.timing.Delete
	return t.text, t.wait
}

// Advance moves the typewriter forward by dt of wall time, taking as many
// steps as have come due. It returns the number of steps taken.
func (t *Typewriter) Advance(dt time.Duration) int {
	if len(t.roles) == 0 {
		return 0
	}
	t.elapsed += dt
	steps := 0
	for t.wait > 0 && t.elapsed >= t.wait {
		t.elapsed -= t.wait
		t.Step()
		steps++
	}
	return steps
}

// prefix returns the first n runes of r, clamped to its length.
func prefix(r []rune, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}
