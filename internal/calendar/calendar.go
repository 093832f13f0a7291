// Package calendar manages the dated study events behind the calendar panel.
package calendar

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/store"
)

// UpcomingLimit caps the upcoming events list
const UpcomingLimit = 5

var (
	ErrTitleRequired = errors.New("title is required")
	ErrDateRequired  = errors.New("date is required")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

// NewEvent holds the add-event form values
type NewEvent struct {
	Title       string
	Date        string
	Type        model.EventType
	Priority    model.Priority
	Description string
}

// Calendar holds every calendar event
type Calendar struct {
	events *store.List[model.CalendarEvent]
}

// New creates a calendar with the given events
func New(events ...model.CalendarEvent) *Calendar {
	return &Calendar{events: store.NewList(events...)}
}

// Events returns every event in insertion order
func (c *Calendar) Events() []model.CalendarEvent { return c.events.Items() }

// Add appends an event. Title and date are required.
func (c *Calendar) Add(in NewEvent) (model.CalendarEvent, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.CalendarEvent{}, ErrTitleRequired
	}
	if in.Date == "" {
		return model.CalendarEvent{}, ErrDateRequired
	}
	if _, err := time.Parse(model.DateLayout, in.Date); err != nil {
		return model.CalendarEvent{}, ErrInvalidDate
	}
	if !in.Type.Valid() {
		in.Type = model.EventStudy
	}
	if !in.Priority.Valid() {
		in.Priority = model.PriorityMedium
	}

	e := model.CalendarEvent{
		ID:          model.NewID(),
		Title:       title,
		Date:        in.Date,
		Type:        in.Type,
		Priority:    in.Priority,
		Description: strings.TrimSpace(in.Description),
	}
	c.events.Append(e)
	return e, nil
}

// Toggle flips completion of the event with the given id
func (c *Calendar) Toggle(id string) bool {
	return c.events.Update(id, func(e model.CalendarEvent) model.CalendarEvent {
		e.Completed = !e.Completed
		return e
	})
}

// Delete removes the event with the given id
func (c *Calendar) Delete(id string) bool {
	return c.events.Delete(id)
}

// On returns the events scheduled on date (YYYY-MM-DD)
func (c *Calendar) On(date string) []model.CalendarEvent {
	return c.events.Filter(func(e model.CalendarEvent) bool {
		return e.Date == date
	})
}

// Upcoming returns incomplete events dated today or later, soonest first,
// capped at UpcomingLimit
func (c *Calendar) Upcoming(now time.Time) []model.CalendarEvent {
	today := model.Today(now)
	// YYYY-MM-DD sorts lexically in date order
	events := c.events.Filter(func(e model.CalendarEvent) bool {
		return !e.Completed && e.Date >= today
	})
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	if len(events) > UpcomingLimit {
		events = events[:UpcomingLimit]
	}
	return events
}

// DaysWithEvents returns the set of days in the month that carry events
func (c *Calendar) DaysWithEvents(m Month) map[int]int {
	days := make(map[int]int)
	prefix := m.First().Format("2006-01-")
	for _, e := range c.events.Items() {
		if !strings.HasPrefix(e.Date, prefix) {
			continue
		}
		if t, ok := e.Day(time.Local); ok {
			days[t.Day()]++
		}
	}
	return days
}
