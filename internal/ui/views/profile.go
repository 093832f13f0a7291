package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// ProfileView shows the student's profile, stats and achievements
type ProfileView struct {
	deps    Deps
	width   int
	height  int
	editing bool
	form    Form
}

// NewProfileView creates a new profile view
func NewProfileView(deps Deps) ProfileView {
	return ProfileView{deps: deps}
}

// Init initializes the profile view
func (v ProfileView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v ProfileView) SetSize(width, height int) ProfileView {
	v.width = width
	v.height = height
	return v
}

// IsInputMode returns true while the edit form is open
func (v ProfileView) IsInputMode() bool {
	return v.editing
}

// Update handles messages for the profile view
func (v ProfileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.editing {
		var res FormResult
		var cmd tea.Cmd
		v.form, res, cmd = v.form.Update(keyMsg)
		switch res {
		case FormSubmitted:
			v.editing = false
			if err := v.deps.Profile.Edit(v.form.Value("name"), v.form.Value("email")); err != nil {
				return v, nil
			}
			return v, func() tea.Msg { return StatusMsg{Message: "Profile updated"} }
		case FormCancelled:
			v.editing = false
		}
		return v, cmd
	}

	if keyMsg.String() == "e" {
		record := v.deps.Profile.Record()
		v.editing = true
		v.form = NewForm("Edit profile",
			TextField("name", "Name", "Your name"),
			TextField("email", "Email", "you@example.com"),
		)
		v.form.SetValue("name", record.Name)
		v.form.SetValue("email", record.Email)
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	}
	return v, nil
}

// View renders the profile view
func (v ProfileView) View() string {
	if v.editing {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme
	record := v.deps.Profile.Record()

	avatar := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true).
		Padding(1, 2).
		Render(v.deps.Profile.Initials())

	info := lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelTitle.Render(record.Name),
		styles.Label.Render(record.Email),
		styles.Label.Render("Joined "+record.JoinDate),
	)

	minutes := v.deps.Timer.TotalStudyMinutes()
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(fmt.Sprintf("%dh", v.deps.Profile.StudyHours(minutes)), "Study Hours", t.Primary),
		renderCard(fmt.Sprintf("%d days", record.StudyStreak), "Streak", t.Warning),
		renderCard(fmt.Sprintf("%d", record.CompletedSubjects), "Subjects Done", t.Success),
		renderCard(fmt.Sprintf("%d%%", record.AverageScore), "Average Score", t.Info),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Profile"),
		lipgloss.JoinHorizontal(lipgloss.Center, avatar, "  ", info),
		"",
		cards,
		"",
		v.renderAchievements(),
		"",
		styles.Label.Render("e: edit profile"),
	)
}

// achievementIcon picks an icon per achievement type
func achievementIcon(a model.AchievementType) string {
	switch a {
	case model.AchievementExam:
		return "🎓"
	case model.AchievementStreak:
		return "🔥"
	case model.AchievementMilestone:
		return "🏆"
	default:
		return "📚"
	}
}

func (v ProfileView) renderAchievements() string {
	styles := theme.Current.Styles

	var lines []string
	lines = append(lines, styles.PanelTitle.Render("Achievements"))
	achievements := v.deps.Profile.Achievements()
	if len(achievements) == 0 {
		lines = append(lines, styles.Label.Render("None yet"))
	}
	for _, a := range achievements {
		lines = append(lines, fmt.Sprintf("%s %s %s", achievementIcon(a.Type), a.Title, styles.Date.Render(a.Date)))
		if a.Description != "" {
			lines = append(lines, styles.Label.Render("   "+a.Description))
		}
	}
	return strings.Join(lines, "\n")
}
