package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// AppName is passed to notify-send so notifications group together
const AppName = "studydeck"

// Urgency levels for notifications
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyLow
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Runner executes a notification command. The default runs it with os/exec.
type Runner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
	run     Runner
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{
		enabled: true,
		run:     execRunner,
	}
}

// WithRunner replaces the command runner
func (n *Notifier) WithRunner(run Runner) *Notifier {
	n.run = run
	return n
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Args builds the notify-send argument list for a notification
func Args(notification Notification) []string {
	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout is in milliseconds
	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", AppName)

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}
	return args
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}
	return n.run("notify-send", Args(notification)...)
}

// SendSimple sends a simple notification with title and body
func (n *Notifier) SendSimple(title, body string) error {
	return n.Send(Notification{
		Title:   title,
		Body:    body,
		Urgency: UrgencyNormal,
		Timeout: 5 * time.Second,
	})
}

// SendFocusComplete announces a finished focus session
func (n *Notifier) SendFocusComplete(subject string, minutes int) error {
	return n.Send(Notification{
		Title:   "Focus session complete!",
		Body:    fmt.Sprintf("%s: %d minutes. Time for a break.", subject, minutes),
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "alarm-symbolic",
	})
}

// SendBreakComplete announces the end of a break
func (n *Notifier) SendBreakComplete() error {
	return n.Send(Notification{
		Title:   "Break Over",
		Body:    "Time to get back to studying!",
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}

// SendStudyReminder nudges the student to study when no session has been
// completed yet today
func (n *Notifier) SendStudyReminder(sessionsToday int) error {
	body := "You haven't logged a focus session today."
	if sessionsToday > 0 {
		body = fmt.Sprintf("%d focus sessions so far. Keep the streak going!", sessionsToday)
	}
	return n.Send(Notification{
		Title:   "Study reminder",
		Body:    body,
		Urgency: UrgencyNormal,
		Timeout: 15 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}

// SendDailyGoals summarizes today's todo list
func (n *Notifier) SendDailyGoals(done, total int) error {
	urgency := UrgencyNormal
	if total > 0 && done == 0 {
		urgency = UrgencyCritical
	}
	return n.Send(Notification{
		Title:   "Daily goals",
		Body:    fmt.Sprintf("%d of %d tasks completed today", done, total),
		Urgency: urgency,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}

// SendAchievement announces a newly earned achievement
func (n *Notifier) SendAchievement(title, description string) error {
	return n.Send(Notification{
		Title:   "Achievement unlocked: " + title,
		Body:    description,
		Urgency: UrgencyLow,
		Timeout: 10 * time.Second,
		Icon:    "starred-symbolic",
	})
}
