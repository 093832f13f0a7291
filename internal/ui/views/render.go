package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// priorityColor maps a priority to its theme color
func priorityColor(p model.Priority) lipgloss.Color {
	t := theme.Current.Theme
	switch p {
	case model.PriorityHigh:
		return t.PriorityHigh
	case model.PriorityLow:
		return t.PriorityLow
	default:
		return t.PriorityMedium
	}
}

// priorityBadge renders a short colored priority label
func priorityBadge(p model.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColor(p)).Render(fmt.Sprintf("[%s]", p))
}

func checkbox(done bool) string {
	if done {
		return "[✓]"
	}
	return "[ ]"
}

// eventColor maps an event type to a theme color
func eventColor(e model.EventType) lipgloss.Color {
	t := theme.Current.Theme
	switch e {
	case model.EventExam:
		return t.Error
	case model.EventMockTest:
		return t.Warning
	case model.EventRevision:
		return t.Secondary
	case model.EventDeadline:
		return t.PriorityHigh
	case model.EventStudy:
		return t.Primary
	default:
		return t.Subtle
	}
}

// renderCard renders a stat card with a big value and a label below
func renderCard(value, label string, color lipgloss.Color) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	valueStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle)

	return styles.Card.Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}

// renderBar renders a percentage as a fixed-width block bar
func renderBar(percent, width int, color lipgloss.Color) string {
	t := theme.Current.Theme
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Highlight).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// renderTags renders tags as #tag chips
func renderTags(tags []string) string {
	styles := theme.Current.Styles
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = styles.Tag.Render("#" + tag)
	}
	return strings.Join(parts, "")
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// clampCursor keeps a list cursor inside [0, n)
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// renderRow renders a list row with the selection highlight
func renderRow(text string, selected, done bool) string {
	styles := theme.Current.Styles
	switch {
	case selected:
		return styles.ItemSelected.Render("▸ " + text)
	case done:
		return styles.ItemDone.Render("  " + text)
	default:
		return styles.Item.Render("  " + text)
	}
}

// cycle returns the option after current, wrapping around
func cycle(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	if len(values) == 0 {
		return current
	}
	return values[0]
}
