package contact

import (
	"errors"
	"log/slog"
	"time"

	"github.com/devakorn/portfolio/config"
)

// ErrBusy is returned when a submission is already in flight.
var ErrBusy = errors.New("contact: submission in progress")

// Status messages shown under the form.
const (
	MessageSending = "Sending message..."
	MessageSent    = "Message sent successfully! I'll get back to you soon."
)

// State is the submission state.
type State uint8

const (
	Idle State = iota
	Sending
	Sent
)

func (s State) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	default:
		return "idle"
	}
}

// Submission simulates sending the form: Idle, then Sending for the send
// delay, then Sent (the form is cleared) for the clear delay, then Idle.
type Submission struct {
	validator *Validator
	sending   time.Duration
	clear     time.Duration

	state     State
	remaining time.Duration
	form      *Form
}

// NewSubmission creates an idle submission.
func NewSubmission(v *Validator, cfg config.ContactConfig) *Submission {
	return &Submission{
		validator: v,
		sending:   time.Duration(cfg.SendingMs) * time.Millisecond,
		clear:     time.Duration(cfg.ClearMs) * time.Millisecond,
	}
}

// State returns the current state.
func (s *Submission) State() State {
	return s.state
}

// Message returns the status line for the current state.
func (s *Submission) Message() string {
	switch s.state {
	case Sending:
		return MessageSending
	case Sent:
		return MessageSent
	}
	return ""
}

// Submit validates f and starts the simulated send. An invalid form leaves
// the submission idle and returns the field errors.
func (s *Submission) Submit(f *Form) error {
	if s.state == Sending {
		return ErrBusy
	}
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	s.form = f
	s.state = Sending
	s.remaining = s.sending
	slog.Debug("contact submission started", "email", f.Value(FieldEmail))
	return nil
}

// Advance moves the timers forward by dt.
func (s *Submission) Advance(dt time.Duration) {
	for dt > 0 && s.state != Idle {
		if dt < s.remaining {
			s.remaining -= dt
			return
		}
		dt -= s.remaining
		s.transition()
	}
}

func (s *Submission) transition() {
	switch s.state {
	case Sending:
		if s.form != nil {
			s.form.Reset()
		}
		s.state = Sent
		s.remaining = s.clear
		slog.Info("contact message sent (simulated)")
	case Sent:
		s.state = Idle
		s.remaining = 0
		s.form = nil
	}
}
