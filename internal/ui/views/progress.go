package views

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// ProgressView shows subject progress, monthly goals and the focus
// session history
type ProgressView struct {
	deps   Deps
	width  int
	height int

	subjects []model.SubjectProgress
	goals    []model.MonthlyGoal
}

// NewProgressView creates a new progress view
func NewProgressView(deps Deps) ProgressView {
	return ProgressView{
		deps:     deps,
		subjects: model.SeedSubjects(),
		goals:    model.SeedMonthlyGoals(),
	}
}

// Init initializes the progress view
func (v ProgressView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v ProgressView) SetSize(width, height int) ProgressView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns whether the view is in input mode
func (v ProgressView) IsInputMode() bool {
	return false
}

// Update handles messages for the progress view
func (v ProgressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

// dailyMinutes sums completed focus minutes for the seven days ending today
func (v ProgressView) dailyMinutes() [7]int {
	var out [7]int
	today := midnight(v.deps.Now())
	for _, s := range v.deps.Timer.Sessions() {
		day := midnight(s.StartTime)
		for ago := 0; ago < 7; ago++ {
			if day.Equal(today.AddDate(0, 0, -ago)) {
				out[6-ago] += s.Duration
				break
			}
		}
	}
	return out
}

// subjectMinutes sums completed focus minutes per subject label
func (v ProgressView) subjectMinutes() map[string]int {
	out := make(map[string]int)
	for _, s := range v.deps.Timer.Sessions() {
		out[s.Subject] += s.Duration
	}
	return out
}

// View renders the progress view
func (v ProgressView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	record := v.deps.Profile.Record()
	minutes := v.deps.Timer.TotalStudyMinutes()

	var sections []string
	sections = append(sections, styles.Title.Render("Progress"))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(fmt.Sprintf("%dh", v.deps.Profile.StudyHours(minutes)), "Total Hours", t.Primary),
		renderCard(fmt.Sprintf("%d days", record.StudyStreak), "Study Streak", t.Warning),
		renderCard(fmt.Sprintf("%d%%", record.AverageScore), "Average Score", t.Success),
		renderCard(fmt.Sprintf("%d", v.deps.Timer.CompletedCount()), "Sessions", t.FocusMode),
	)
	sections = append(sections, cards, "")

	left := lipgloss.JoinVertical(lipgloss.Left,
		v.renderSubjects(),
		"",
		v.renderGoals(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		v.renderWeek(),
		"",
		v.renderSubjectTime(),
	)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(50).Render(left), "  ", right))

	return strings.Join(sections, "\n")
}

func (v ProgressView) renderSubjects() string {
	t := theme.Current.Theme
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)

	lines := []string{headerStyle.Render("Subjects")}
	for _, s := range v.subjects {
		lines = append(lines, fmt.Sprintf("%-12s %s %3d/%dh",
			s.Name, renderBar(s.Percent(), 20, t.Primary), s.HoursCompleted, s.TotalHours))
	}
	return strings.Join(lines, "\n")
}

func (v ProgressView) renderGoals() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)

	lines := []string{headerStyle.Render("Monthly Goals")}
	for _, g := range v.goals {
		color := t.Info
		if g.Percent() >= 100 {
			color = t.Success
		}
		lines = append(lines, fmt.Sprintf("%-22s %s %d/%d %s",
			truncate(g.Name, 22), renderBar(g.Percent(), 12, color), g.Current, g.Target, g.Unit))
		if g.DueDate != "" {
			lines = append(lines, styles.Label.Render("  due "+g.DueDate))
		}
	}
	return strings.Join(lines, "\n")
}

// renderWeek renders focus minutes for the last seven days as a bar chart
func (v ProgressView) renderWeek() string {
	t := theme.Current.Theme
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)

	days := v.dailyMinutes()
	maxMins := 1
	for _, m := range days {
		if m > maxMins {
			maxMins = m
		}
	}

	lines := []string{headerStyle.Render("Focus Minutes (Last 7 Days)")}
	chartHeight := 5
	barWidth := 4
	for row := chartHeight; row >= 1; row-- {
		var rowStr strings.Builder
		threshold := float64(row) / float64(chartHeight)
		for i, m := range days {
			ratio := float64(m) / float64(maxMins)
			if m > 0 && ratio >= threshold {
				rowStr.WriteString(lipgloss.NewStyle().Foreground(t.Success).Render(strings.Repeat("█", barWidth)))
			} else {
				rowStr.WriteString(strings.Repeat(" ", barWidth))
			}
			if i < len(days)-1 {
				rowStr.WriteString(" ")
			}
		}
		lines = append(lines, rowStr.String())
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle).Width(barWidth).Align(lipgloss.Center)
	countStyle := lipgloss.NewStyle().Foreground(t.Foreground).Width(barWidth).Align(lipgloss.Center)
	today := midnight(v.deps.Now())
	var labels, counts []string
	for i, m := range days {
		day := today.AddDate(0, 0, i-6)
		labels = append(labels, labelStyle.Render(day.Weekday().String()[:3]))
		counts = append(counts, countStyle.Render(fmt.Sprintf("%d", m)))
	}
	lines = append(lines, strings.Join(labels, " "), strings.Join(counts, " "))

	return strings.Join(lines, "\n")
}

// renderSubjectTime renders focus time per subject, longest first
func (v ProgressView) renderSubjectTime() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary)

	lines := []string{headerStyle.Render("Time by Subject")}
	bySubject := v.subjectMinutes()
	if len(bySubject) == 0 {
		lines = append(lines, styles.Label.Render("Complete a focus session to see it here"))
		return strings.Join(lines, "\n")
	}

	names := make([]string, 0, len(bySubject))
	maxMins := 1
	for name, mins := range bySubject {
		names = append(names, name)
		if mins > maxMins {
			maxMins = mins
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if bySubject[names[i]] != bySubject[names[j]] {
			return bySubject[names[i]] > bySubject[names[j]]
		}
		return names[i] < names[j]
	})

	barMaxWidth := 24
	for _, name := range names {
		mins := bySubject[name]
		width := mins * barMaxWidth / maxMins
		if width < 1 {
			width = 1
		}
		bar := lipgloss.NewStyle().Foreground(t.Info).Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%-15s %s %s", truncate(name, 15), bar, formatMinutes(mins)))
	}
	return strings.Join(lines, "\n")
}

// formatMinutes renders minutes as "1h 05m"
func formatMinutes(mins int) string {
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
