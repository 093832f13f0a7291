package model

import "time"

// DateLayout is the calendar date format used by every dated record
const DateLayout = "2006-01-02"

// EventType categorizes calendar events
type EventType string

const (
	EventExam     EventType = "exam"
	EventStudy    EventType = "study"
	EventRevision EventType = "revision"
	EventMockTest EventType = "mock-test"
	EventDeadline EventType = "deadline"
	EventOther    EventType = "other"
)

// EventTypes lists event types in form order
var EventTypes = []EventType{EventStudy, EventExam, EventRevision, EventMockTest, EventDeadline, EventOther}

// Valid reports whether e is a known event type
func (e EventType) Valid() bool {
	for _, t := range EventTypes {
		if t == e {
			return true
		}
	}
	return false
}

// CalendarEvent is a dated entry on the study calendar
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
}

// Key returns the record id
func (e CalendarEvent) Key() string { return e.ID }

// Day parses the event date in the given location
func (e CalendarEvent) Day(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Today formats now as a calendar date
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
