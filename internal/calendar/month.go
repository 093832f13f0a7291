package calendar

import (
	"time"

	"github.com/dori/studydeck/internal/model"
)

// Month is a calendar month shown in the grid
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns midnight on the first day of the month
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in the month
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Next returns the following month
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev returns the preceding month
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Date formats a day of the month as YYYY-MM-DD
func (m Month) Date(day int) string {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local).Format(model.DateLayout)
}

// Title renders the month header, e.g. "January 2024"
func (m Month) Title() string {
	return m.First().Format("January 2006")
}

// Grid lays the month out in Sunday-first weeks of seven cells. Cells
// outside the month are zero.
func (m Month) Grid() [][]int {
	return m.GridFrom(time.Sunday)
}

// GridFrom lays the month out in weeks starting on start
func (m Month) GridFrom(start time.Weekday) [][]int {
	lead := (int(m.First().Weekday()) - int(start) + 7) % 7
	days := m.Days()

	var weeks [][]int
	week := make([]int, 0, 7)
	for i := 0; i < lead; i++ {
		week = append(week, 0)
	}
	for day := 1; day <= days; day++ {
		week = append(week, day)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]int, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, 0)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekdayLabels returns two-letter day names starting on start
func WeekdayLabels(start time.Weekday) []string {
	names := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	out := make([]string, 7)
	for i := range out {
		out[i] = names[(int(start)+i)%7]
	}
	return out
}
