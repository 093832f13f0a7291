package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/calendar"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// CalendarView shows a month grid, the events of the selected day and the
// upcoming events
type CalendarView struct {
	deps   Deps
	width  int
	height int

	// Selected day; the grid shows its month
	selected time.Time

	// Day list focus and cursor
	listFocused bool
	cursor      int

	adding bool
	form   Form
}

// NewCalendarView creates a new calendar view
func NewCalendarView(deps Deps) CalendarView {
	return CalendarView{deps: deps, selected: midnight(deps.Now())}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Init initializes the calendar view
func (v CalendarView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v CalendarView) SetSize(width, height int) CalendarView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns whether the view is in input mode
func (v CalendarView) IsInputMode() bool {
	return v.adding
}

// SelectedDate returns the selected day as YYYY-MM-DD
func (v CalendarView) SelectedDate() string {
	return v.selected.Format(model.DateLayout)
}

func (v CalendarView) dayEvents() []model.CalendarEvent {
	return v.deps.Calendar.On(v.SelectedDate())
}

// Update handles messages
func (v CalendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.adding {
		return v.handleAddMode(keyMsg)
	}

	switch keyMsg.String() {
	case "tab":
		v.listFocused = !v.listFocused
		v.cursor = 0
		return v, nil
	case "a":
		v.adding = true
		v.form = NewForm("Add event",
			TextField("title", "Title", "Event title"),
			TextField("date", "Date", model.DateLayout),
			ChoiceField("type", "Type", options(model.EventTypes)),
			ChoiceField("priority", "Priority", options(model.Priorities)),
			TextField("description", "Description", ""),
		)
		v.form.SetValue("date", v.SelectedDate())
		v.form.SetValue("priority", string(model.PriorityMedium))
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	case "t":
		v.selected = midnight(v.deps.Now())
		v.cursor = 0
		return v, nil
	}

	if v.listFocused {
		return v.handleListKeys(keyMsg)
	}

	switch keyMsg.String() {
	case "h", "left":
		v.selected = v.selected.AddDate(0, 0, -1)
	case "l", "right":
		v.selected = v.selected.AddDate(0, 0, 1)
	case "k", "up":
		v.selected = v.selected.AddDate(0, 0, -7)
	case "j", "down":
		v.selected = v.selected.AddDate(0, 0, 7)
	case "H", "pgup":
		v.selected = shiftMonth(v.selected, -1)
	case "L", "pgdown":
		v.selected = shiftMonth(v.selected, 1)
	case "enter":
		if len(v.dayEvents()) > 0 {
			v.listFocused = true
		}
	}
	v.cursor = 0
	return v, nil
}

// shiftMonth moves by whole months keeping the day inside the new month
func shiftMonth(t time.Time, delta int) time.Time {
	m := calendar.MonthOf(t)
	for i := 0; i < delta; i++ {
		m = m.Next()
	}
	for i := 0; i > delta; i-- {
		m = m.Prev()
	}
	day := t.Day()
	if day > m.Days() {
		day = m.Days()
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
}

func (v CalendarView) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := v.dayEvents()
	switch msg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(events))
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(events))
	case " ", "enter", "x":
		if v.cursor < len(events) {
			v.deps.Calendar.Toggle(events[v.cursor].ID)
		}
	case "d":
		if v.cursor < len(events) {
			v.deps.Calendar.Delete(events[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(events)-1)
		}
	case "esc":
		v.listFocused = false
	}
	return v, nil
}

func (v CalendarView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		v.adding = false
		e, err := v.deps.Calendar.Add(calendar.NewEvent{
			Title:       v.form.Value("title"),
			Date:        v.form.Value("date"),
			Type:        model.EventType(v.form.Value("type")),
			Priority:    model.Priority(v.form.Value("priority")),
			Description: v.form.Value("description"),
		})
		if err != nil {
			return v, nil
		}
		if day, ok := e.Day(time.Local); ok {
			v.selected = day
		}
		return v, func() tea.Msg { return StatusMsg{Message: fmt.Sprintf("Scheduled %q on %s", e.Title, e.Date)} }
	case FormCancelled:
		v.adding = false
	}
	return v, cmd
}

// weekStart reads the start-of-week preference
func (v CalendarView) weekStart() time.Weekday {
	if v.deps.Settings().Preferences.StartOfWeek == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// View renders the calendar
func (v CalendarView) View() string {
	if v.adding {
		return v.form.View()
	}

	t := theme.Current.Theme

	calendarBox := v.renderCalendar()
	listWidth := v.width - lipgloss.Width(calendarBox) - 2
	if listWidth < 30 {
		listWidth = 30
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		v.renderDayList(listWidth),
		v.renderUpcoming(listWidth),
	)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, calendarBox, " ", right)
	hints := lipgloss.NewStyle().Foreground(t.Subtle).Render(
		"h/j/k/l: days • H/L: month • t: today • tab: events • a: add",
	)
	return lipgloss.JoinVertical(lipgloss.Left, panels, hints)
}

// renderCalendar renders the month grid
func (v CalendarView) renderCalendar() string {
	t := theme.Current.Theme

	month := calendar.MonthOf(v.selected)
	start := v.weekStart()
	withEvents := v.deps.Calendar.DaysWithEvents(month)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Width(28).
		Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle).Width(4).Align(lipgloss.Center)

	var lines []string
	lines = append(lines, headerStyle.Render(month.Title()))

	var labels []string
	for _, l := range calendar.WeekdayLabels(start) {
		labels = append(labels, labelStyle.Render(l))
	}
	lines = append(lines, strings.Join(labels, ""))

	today := midnight(v.deps.Now())
	for _, week := range month.GridFrom(start) {
		var cells []string
		for _, day := range week {
			cellStyle := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
			if day == 0 {
				cells = append(cells, cellStyle.Render(""))
				continue
			}

			isSelected := day == v.selected.Day()
			isToday := today.Year() == month.Year && today.Month() == month.Month && today.Day() == day
			count := withEvents[day]

			if isSelected {
				cellStyle = cellStyle.Background(t.Highlight).Bold(true)
			}
			switch {
			case isToday:
				cellStyle = cellStyle.Foreground(t.Primary)
			case count > 0:
				cellStyle = cellStyle.Foreground(t.Info)
			}

			text := fmt.Sprintf("%2d", day)
			if count > 0 {
				text += "•"
			} else {
				text += " "
			}
			cells = append(cells, cellStyle.Render(text))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	border := t.Border
	if !v.listFocused {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderDayList renders the events on the selected day
func (v CalendarView) renderDayList(width int) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	var lines []string
	lines = append(lines, styles.PanelTitle.Render(v.selected.Format("Monday, January 2")))

	events := v.dayEvents()
	if len(events) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Render("No events this day"))
	}
	for i, e := range events {
		dot := lipgloss.NewStyle().Foreground(eventColor(e.Type)).Render("●")
		line := fmt.Sprintf("%s %s %s %s", checkbox(e.Completed), dot, truncate(e.Title, width-24), priorityBadge(e.Priority))
		lines = append(lines, renderRow(line, v.listFocused && i == v.cursor, e.Completed))
		if e.Description != "" {
			lines = append(lines, styles.Label.Render("      "+truncate(e.Description, width-8)))
		}
	}

	border := t.Border
	if v.listFocused {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

// renderUpcoming renders the next incomplete events
func (v CalendarView) renderUpcoming(width int) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	var lines []string
	lines = append(lines, styles.PanelTitle.Render("Upcoming"))
	upcoming := v.deps.Calendar.Upcoming(v.deps.Now())
	if len(upcoming) == 0 {
		lines = append(lines, styles.Label.Render("Nothing scheduled"))
	}
	for _, e := range upcoming {
		kind := lipgloss.NewStyle().Foreground(eventColor(e.Type)).Render(string(e.Type))
		lines = append(lines, fmt.Sprintf("%s %s %s", styles.Date.Render(e.Date), truncate(e.Title, width-28), kind))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
