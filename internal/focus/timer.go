// Package focus implements the Pomodoro-style focus/break countdown and the
// free-running stopwatch behind the focus zone panel.
//
// Both machines are driven by an external one-second tick; nothing here
// starts goroutines or timers of its own.
package focus

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dori/studydeck/internal/model"
)

// Mode is the current countdown phase
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Duration limits, in minutes
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	MaxFocusMinutes     = 120
	MaxBreakMinutes     = 60
)

var (
	// ErrTimerActive is returned when a setting is changed while counting down
	ErrTimerActive = errors.New("timer is running")
	// ErrDurationRange is returned for durations outside the allowed range
	ErrDurationRange = errors.New("duration out of range")
)

// Expiry describes a countdown that reached zero during a tick
type Expiry struct {
	From    Mode
	To      Mode
	Session *model.StudySession // Set when a focus session was completed
}

// Timer is the focus/break countdown state machine
type Timer struct {
	mode         Mode
	minutes      int
	seconds      int
	active       bool
	focusMinutes int
	breakMinutes int
	subject      string

	open     *model.StudySession
	sessions []model.StudySession

	now   func() time.Time
	newID func() string
}

// Option configures a Timer
type Option func(*Timer)

// WithClock sets the time source used to stamp sessions
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithIDs sets the session id generator
func WithIDs(newID func() string) Option {
	return func(t *Timer) { t.newID = newID }
}

// NewTimer creates a paused timer in focus mode with the focus duration loaded.
// Out-of-range durations fall back to the defaults.
func NewTimer(focusMinutes, breakMinutes int, opts ...Option) *Timer {
	if focusMinutes < 1 || focusMinutes > MaxFocusMinutes {
		focusMinutes = DefaultFocusMinutes
	}
	if breakMinutes < 1 || breakMinutes > MaxBreakMinutes {
		breakMinutes = DefaultBreakMinutes
	}

	t := &Timer{
		mode:         ModeFocus,
		minutes:      focusMinutes,
		focusMinutes: focusMinutes,
		breakMinutes: breakMinutes,
		now:          time.Now,
		newID:        model.NewID,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Mode returns the current phase
func (t *Timer) Mode() Mode { return t.mode }

// Active reports whether the countdown is running
func (t *Timer) Active() bool { return t.active }

// Remaining returns the remaining minutes and seconds
func (t *Timer) Remaining() (int, int) { return t.minutes, t.seconds }

// Subject returns the current study subject label
func (t *Timer) Subject() string { return t.subject }

// FocusMinutes returns the configured focus duration
func (t *Timer) FocusMinutes() int { return t.focusMinutes }

// BreakMinutes returns the configured break duration
func (t *Timer) BreakMinutes() int { return t.breakMinutes }

// OpenSession returns the in-progress focus session, if any
func (t *Timer) OpenSession() (model.StudySession, bool) {
	if t.open == nil {
		return model.StudySession{}, false
	}
	return *t.open, true
}

// CanStart reports whether Start would activate the countdown
func (t *Timer) CanStart() bool {
	if t.active {
		return false
	}
	return t.mode != ModeFocus || strings.TrimSpace(t.subject) != ""
}

// Start activates the countdown. Starting a focus countdown without a
// subject is a no-op. The first start of a focus countdown opens a session;
// resuming after a pause keeps the session already open.
func (t *Timer) Start() bool {
	if !t.CanStart() {
		return false
	}
	if t.mode == ModeFocus && t.open == nil {
		t.open = &model.StudySession{
			ID:        t.newID(),
			Subject:   strings.TrimSpace(t.subject),
			Duration:  t.focusMinutes,
			StartTime: t.now(),
		}
	}
	t.active = true
	return true
}

// Pause stops the countdown without changing the remaining time
func (t *Timer) Pause() {
	t.active = false
}

// Reset pauses, reloads the current mode's duration and discards any open
// session without logging it.
func (t *Timer) Reset() {
	t.active = false
	t.load()
	t.open = nil
}

// Tick advances an active countdown by one second. When the countdown
// reaches zero the expiry is applied in the same tick and described by the
// returned Expiry.
func (t *Timer) Tick() (Expiry, bool) {
	if !t.active {
		return Expiry{}, false
	}

	switch {
	case t.seconds > 0:
		t.seconds--
	case t.minutes > 0:
		t.minutes--
		t.seconds = 59
	}

	if t.minutes == 0 && t.seconds == 0 {
		return t.expire(), true
	}
	return Expiry{}, false
}

func (t *Timer) expire() Expiry {
	t.active = false
	ex := Expiry{From: t.mode}

	if t.mode == ModeFocus {
		if t.open != nil {
			end := t.now()
			done := *t.open
			done.EndTime = &end
			done.Completed = true
			t.sessions = append(t.sessions, done)
			t.open = nil
			ex.Session = &done
		}
		t.mode = ModeBreak
	} else {
		t.mode = ModeFocus
	}

	t.load()
	ex.To = t.mode
	return ex
}

// load sets the remaining time to the current mode's configured duration
func (t *Timer) load() {
	t.minutes = t.totalMinutes()
	t.seconds = 0
}

func (t *Timer) totalMinutes() int {
	if t.mode == ModeBreak {
		return t.breakMinutes
	}
	return t.focusMinutes
}

// pristine reports whether the countdown sits untouched at its full duration
func (t *Timer) pristine() bool {
	return !t.active && t.open == nil && t.seconds == 0 && t.minutes == t.totalMinutes()
}

// SetSubject sets the study subject label used for the next session
func (t *Timer) SetSubject(subject string) error {
	if t.active {
		return ErrTimerActive
	}
	t.subject = subject
	return nil
}

// SetFocusMinutes changes the focus duration. An untouched focus countdown
// picks up the new duration immediately.
func (t *Timer) SetFocusMinutes(minutes int) error {
	if t.active {
		return ErrTimerActive
	}
	if minutes < 1 || minutes > MaxFocusMinutes {
		return fmt.Errorf("focus %d minutes: %w", minutes, ErrDurationRange)
	}
	reload := t.mode == ModeFocus && t.pristine()
	t.focusMinutes = minutes
	if reload {
		t.load()
	}
	return nil
}

// SetBreakMinutes changes the break duration. An untouched break countdown
// picks up the new duration immediately.
func (t *Timer) SetBreakMinutes(minutes int) error {
	if t.active {
		return ErrTimerActive
	}
	if minutes < 1 || minutes > MaxBreakMinutes {
		return fmt.Errorf("break %d minutes: %w", minutes, ErrDurationRange)
	}
	reload := t.mode == ModeBreak && t.pristine()
	t.breakMinutes = minutes
	if reload {
		t.load()
	}
	return nil
}

// Progress returns the elapsed fraction of the current countdown in [0,1]
func (t *Timer) Progress() float64 {
	total := t.totalMinutes() * 60
	if total <= 0 {
		return 0
	}
	remaining := t.minutes*60 + t.seconds
	p := float64(total-remaining) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Sessions returns the completed focus sessions in completion order
func (t *Timer) Sessions() []model.StudySession {
	out := make([]model.StudySession, len(t.sessions))
	copy(out, t.sessions)
	return out
}

// CompletedCount returns the number of completed focus sessions
func (t *Timer) CompletedCount() int {
	return len(t.sessions)
}

// TotalStudyMinutes sums the duration of every completed session
func (t *Timer) TotalStudyMinutes() int {
	total := 0
	for _, s := range t.sessions {
		if s.Completed {
			total += s.Duration
		}
	}
	return total
}

// Display renders the remaining time as MM:SS
func (t *Timer) Display() string {
	return FormatClock(t.minutes, t.seconds)
}

// FormatClock renders minutes and seconds as MM:SS
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
