package views

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/daily"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// DashboardView shows the clock, headline stats, today's tasks and what is
// coming up next
type DashboardView struct {
	deps   Deps
	width  int
	height int

	cursor  int
	adding  bool
	form    Form
	subject []model.SubjectProgress
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(deps Deps) DashboardView {
	return DashboardView{deps: deps, subject: model.SeedSubjects()}
}

// Init initializes the dashboard
func (v DashboardView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v DashboardView) SetSize(width, height int) DashboardView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns true while the add form is open
func (v DashboardView) IsInputMode() bool {
	return v.adding
}

// Update handles messages for the dashboard
func (v DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.adding {
		var res FormResult
		var cmd tea.Cmd
		v.form, res, cmd = v.form.Update(keyMsg)
		switch res {
		case FormSubmitted:
			v.adding = false
			return v, v.addTodo()
		case FormCancelled:
			v.adding = false
		}
		return v, cmd
	}

	todos := v.deps.Daily.Todos()
	switch keyMsg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(todos))
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(todos))
	case " ", "enter", "x":
		if v.cursor < len(todos) {
			v.deps.Daily.ToggleTodo(todos[v.cursor].ID)
		}
	case "d":
		if v.cursor < len(todos) {
			v.deps.Daily.DeleteTodo(todos[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(todos)-1)
		}
	case "a":
		v.adding = true
		v.form = NewForm("New task for today",
			TextField("task", "Task", "What needs doing?"),
			ChoiceField("priority", "Priority", options(model.Priorities)),
		)
		v.form.SetValue("priority", string(model.PriorityMedium))
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	}
	return v, nil
}

func (v DashboardView) addTodo() tea.Cmd {
	_, err := v.deps.Daily.AddTodo(v.form.Value("task"), model.Priority(v.form.Value("priority")))
	if errors.Is(err, daily.ErrTaskRequired) {
		return nil
	}
	return func() tea.Msg { return StatusMsg{Message: "Task added"} }
}

// clock formats now according to the time format preference
func (v DashboardView) clock() string {
	now := v.deps.Now()
	if v.deps.Settings().Preferences.TimeFormat == "12h" {
		return now.Format("03:04:05 PM")
	}
	return now.Format("15:04:05")
}

// View renders the dashboard
func (v DashboardView) View() string {
	if v.adding {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme
	now := v.deps.Now()

	var b strings.Builder

	clock := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(v.clock())
	b.WriteString(clock + "  " + styles.Label.Render(now.Format("Monday, January 2, 2006")))
	b.WriteString("\n\n")

	done, total := v.deps.Daily.Completed()
	hours := v.deps.Profile.StudyHours(v.deps.Timer.TotalStudyMinutes())
	upcoming := v.deps.Calendar.Upcoming(now)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(fmt.Sprintf("%dh", hours), "Study Hours", t.Primary),
		" ",
		renderCard(fmt.Sprintf("%d/%d", done, total), "Tasks Today", t.Success),
		" ",
		renderCard(fmt.Sprintf("%d", v.deps.Timer.CompletedCount()), "Focus Sessions", t.FocusMode),
		" ",
		renderCard(fmt.Sprintf("%d", len(upcoming)), "Upcoming", t.Warning),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	left := v.renderTodos()
	right := v.renderUpcoming(upcoming) + "\n\n" + v.renderSubjects()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(48).Render(left),
		"  ",
		right,
	))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("“" + v.deps.Daily.Quote() + "”"))

	return b.String()
}

func (v DashboardView) renderTodos() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Today's Tasks"))
	b.WriteString("\n")
	todos := v.deps.Daily.Todos()
	if len(todos) == 0 {
		b.WriteString(styles.Label.Render("  Nothing planned. Press a to add a task."))
		return b.String()
	}
	for i, todo := range todos {
		line := fmt.Sprintf("%s %s %s", checkbox(todo.Completed), truncate(todo.Task, 32), priorityBadge(todo.Priority))
		b.WriteString(renderRow(line, i == v.cursor, todo.Completed))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v DashboardView) renderUpcoming(events []model.CalendarEvent) string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Upcoming Events"))
	b.WriteString("\n")
	if len(events) == 0 {
		b.WriteString(styles.Label.Render("  No upcoming events"))
		return b.String()
	}
	for _, e := range events {
		dot := lipgloss.NewStyle().Foreground(eventColor(e.Type)).Render("●")
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dot, styles.Date.Render(e.Date), truncate(e.Title, 30)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v DashboardView) renderSubjects() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Subject Progress"))
	b.WriteString("\n")
	for _, s := range v.subject {
		name := lipgloss.NewStyle().Width(12).Render(s.Name)
		b.WriteString(fmt.Sprintf("  %s %s %3d%%\n", name, renderBar(s.Percent(), 20, t.Primary), s.Percent()))
	}
	return strings.TrimRight(b.String(), "\n")
}
