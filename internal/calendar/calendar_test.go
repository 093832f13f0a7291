package calendar

import (
	"testing"
	"time"

	"github.com/dori/studydeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRequiresTitleAndDate(t *testing.T) {
	c := New()

	_, err := c.Add(NewEvent{Title: "  ", Date: "2024-01-25"})
	assert.ErrorIs(t, err, ErrTitleRequired)
	_, err = c.Add(NewEvent{Title: "Mock test"})
	assert.ErrorIs(t, err, ErrDateRequired)
	_, err = c.Add(NewEvent{Title: "Mock test", Date: "25/01/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, c.Events())

	e, err := c.Add(NewEvent{Title: "Mock test", Date: "2024-01-25", Type: model.EventMockTest})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, model.PriorityMedium, e.Priority)
	assert.False(t, e.Completed)
	assert.Equal(t, []model.CalendarEvent{e}, c.Events())
}

func TestToggleAndDelete(t *testing.T) {
	c := New(model.SeedEvents()...)
	events := c.Events()

	require.True(t, c.Toggle(events[0].ID))
	assert.True(t, c.Events()[0].Completed)
	assert.Equal(t, events[1:], c.Events()[1:])

	require.True(t, c.Delete(events[1].ID))
	assert.Len(t, c.Events(), 2)
	assert.False(t, c.Delete(events[1].ID))
	assert.Len(t, c.Events(), 2)
}

func TestOn(t *testing.T) {
	c := New(model.SeedEvents()...)
	on := c.On("2024-01-26")
	require.Len(t, on, 1)
	assert.Equal(t, "Chemistry Chapter 12 Revision", on[0].Title)
	assert.Empty(t, c.On("2024-01-27"))
}

func TestUpcomingSortedAndFiltered(t *testing.T) {
	now := time.Date(2024, 1, 20, 15, 0, 0, 0, time.Local)
	c := New()
	for _, d := range []string{"2024-01-30", "2024-01-19", "2024-01-20", "2024-01-22"} {
		_, err := c.Add(NewEvent{Title: "e " + d, Date: d})
		require.NoError(t, err)
	}
	done, err := c.Add(NewEvent{Title: "done", Date: "2024-01-21"})
	require.NoError(t, err)
	c.Toggle(done.ID)

	var dates []string
	for _, e := range c.Upcoming(now) {
		dates = append(dates, e.Date)
	}
	assert.Equal(t, []string{"2024-01-20", "2024-01-22", "2024-01-30"}, dates)
}

func TestUpcomingLimit(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	c := New()
	for day := 9; day >= 2; day-- {
		_, err := c.Add(NewEvent{Title: "e", Date: Month{2024, time.January}.Date(day)})
		require.NoError(t, err)
	}
	up := c.Upcoming(now)
	require.Len(t, up, UpcomingLimit)
	assert.Equal(t, "2024-01-02", up[0].Date)
	assert.Equal(t, "2024-01-06", up[4].Date)
}

func TestMonthGrid(t *testing.T) {
	// January 2024 starts on a Monday and has 31 days
	m := Month{2024, time.January}
	grid := m.Grid()
	require.Len(t, grid, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, grid[0])
	assert.Equal(t, []int{28, 29, 30, 31, 0, 0, 0}, grid[4])
	assert.Equal(t, "January 2024", m.Title())

	assert.Equal(t, Month{2023, time.December}, m.Prev())
	assert.Equal(t, Month{2024, time.February}, m.Next())
	assert.Equal(t, 29, m.Next().Days())
}

func TestMonthGridFromMonday(t *testing.T) {
	m := Month{2024, time.January}
	grid := m.GridFrom(time.Monday)
	require.Len(t, grid, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, grid[0])
	assert.Equal(t, []int{29, 30, 31, 0, 0, 0, 0}, grid[4])
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayLabels(time.Monday))
}

func TestDaysWithEvents(t *testing.T) {
	c := New(model.SeedEvents()...)
	days := c.DaysWithEvents(Month{2024, time.January})
	assert.Equal(t, map[int]int{25: 1, 26: 1, 28: 1}, days)
	assert.Empty(t, c.DaysWithEvents(Month{2024, time.February}))
}
