package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/library"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// ResourcesMode represents the current mode of the resources view
type ResourcesMode int

const (
	ResourcesModeNormal ResourcesMode = iota
	ResourcesModeSearch
	ResourcesModeAdd
	ResourcesModeConfirmDelete
)

// ResourcesView is the study resource library
type ResourcesView struct {
	deps   Deps
	width  int
	height int

	mode   ResourcesMode
	cursor int
	query  library.Query
	input  textinput.Model
	form   Form
}

// NewResourcesView creates a new resources view
func NewResourcesView(deps Deps) ResourcesView {
	ti := textinput.New()
	ti.Placeholder = "Search title, description, tags..."
	ti.CharLimit = 256

	return ResourcesView{
		deps:  deps,
		input: ti,
		query: library.Query{
			Subject:  library.FilterAll,
			Type:     library.FilterAll,
			ExamType: library.FilterAll,
		},
	}
}

// Init initializes the resources view
func (v ResourcesView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v ResourcesView) SetSize(width, height int) ResourcesView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v ResourcesView) IsInputMode() bool {
	return v.mode != ResourcesModeNormal
}

// visible returns the resources matching the current filters
func (v ResourcesView) visible() []model.Resource {
	return v.deps.Resources.Filter(v.query)
}

// Update handles messages for the resources view
func (v ResourcesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case ResourcesModeSearch:
		return v.handleSearchMode(keyMsg)
	case ResourcesModeAdd:
		return v.handleAddMode(keyMsg)
	case ResourcesModeConfirmDelete:
		return v.handleDeleteConfirm(keyMsg)
	}

	items := v.visible()
	switch keyMsg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(items))
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(items))
	case "/":
		v.mode = ResourcesModeSearch
		v.input.SetValue(v.query.Search)
		v.input.Focus()
		return v, textinput.Blink
	case "s":
		v.query.Subject = cycle(append([]string{library.FilterAll}, options(model.Subjects)...), v.query.Subject)
		v.cursor = 0
	case "t":
		v.query.Type = cycle(append([]string{library.FilterAll}, options(model.ResourceTypes)...), v.query.Type)
		v.cursor = 0
	case "e":
		v.query.ExamType = cycle(append([]string{library.FilterAll}, options(model.ExamTypes)...), v.query.ExamType)
		v.cursor = 0
	case "f":
		v.query.Favorite = !v.query.Favorite
		v.cursor = 0
	case "c":
		v.query = library.Query{Subject: library.FilterAll, Type: library.FilterAll, ExamType: library.FilterAll}
		v.cursor = 0
	case " ", "*":
		if v.cursor < len(items) {
			v.deps.Resources.ToggleFavorite(items[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(v.visible()))
		}
	case "d":
		if v.cursor < len(items) {
			v.mode = ResourcesModeConfirmDelete
		}
	case "a":
		v.mode = ResourcesModeAdd
		v.form = NewForm("Add resource",
			TextField("title", "Title", "Resource title"),
			ChoiceField("type", "Type", options(model.ResourceTypes)),
			ChoiceField("subject", "Subject", options(model.Subjects)),
			ChoiceField("exam", "Exam", options(model.ExamTypes)),
			TextField("description", "Description", ""),
			TextField("tags", "Tags", "comma, separated"),
			TextField("url", "URL", "https://"),
		)
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	}
	return v, nil
}

// handleSearchMode filters as the user types
func (v ResourcesView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.query.Search = strings.TrimSpace(v.input.Value())
		v.mode = ResourcesModeNormal
		v.input.Blur()
		return v, nil
	case "esc":
		v.query.Search = ""
		v.input.SetValue("")
		v.mode = ResourcesModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.query.Search = v.input.Value()
	v.cursor = 0
	return v, cmd
}

func (v ResourcesView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		v.mode = ResourcesModeNormal
		added, err := v.deps.Resources.Add(library.NewResource{
			Title:       v.form.Value("title"),
			Type:        model.ResourceType(v.form.Value("type")),
			Subject:     model.Subject(v.form.Value("subject")),
			ExamType:    model.ExamType(v.form.Value("exam")),
			Description: v.form.Value("description"),
			Tags:        v.form.Value("tags"),
			URL:         v.form.Value("url"),
		})
		if err != nil {
			return v, nil
		}
		v.cursor = 0
		return v, func() tea.Msg { return StatusMsg{Message: fmt.Sprintf("Added %q", added.Title)} }
	case FormCancelled:
		v.mode = ResourcesModeNormal
	}
	return v, cmd
}

func (v ResourcesView) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = ResourcesModeNormal
		items := v.visible()
		if v.cursor < len(items) {
			v.deps.Resources.Delete(items[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(items)-1)
		}
	case "n", "N", "esc":
		v.mode = ResourcesModeNormal
	}
	return v, nil
}

// View renders the resources view
func (v ResourcesView) View() string {
	if v.mode == ResourcesModeAdd {
		return v.form.View()
	}

	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.Title.Render("Study Resources"))
	b.WriteString("\n")

	fav := "all"
	if v.query.Favorite {
		fav = "only"
	}
	filters := fmt.Sprintf("subject: %s  type: %s  exam: %s  favorites: %s",
		v.query.Subject, v.query.Type, v.query.ExamType, fav)
	b.WriteString(styles.Label.Render(filters))
	b.WriteString("\n")

	if v.mode == ResourcesModeSearch {
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n")
	} else if v.query.Search != "" {
		b.WriteString(styles.Label.Render("search: " + v.query.Search))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	items := v.visible()
	if len(items) == 0 {
		b.WriteString(styles.Label.Render("No resources match. Press c to clear filters or a to add one."))
		return b.String()
	}

	star := lipgloss.NewStyle().Foreground(t.Favorite)
	for i, r := range items {
		mark := " "
		if r.Favorite {
			mark = star.Render("★")
		}
		line := fmt.Sprintf("%s %-40s %s %s", mark, truncate(r.Title, 40),
			styles.Label.Render(fmt.Sprintf("%-14s %-11s %-7s", r.Type, r.Subject, r.ExamType)),
			styles.Date.Render(r.UploadDate))
		b.WriteString(renderRow(line, i == v.cursor, false))
		b.WriteString("\n")
	}

	if v.cursor < len(items) {
		r := items[v.cursor]
		b.WriteString("\n")
		var detail strings.Builder
		detail.WriteString(styles.PanelTitle.Render(r.Title))
		detail.WriteString("\n")
		if r.Description != "" {
			detail.WriteString(r.Description + "\n")
		}
		detail.WriteString(styles.Label.Render(fmt.Sprintf("size %s • uploaded %s", r.Size, r.UploadDate)))
		if r.URL != "" {
			detail.WriteString("\n" + styles.Label.Render(r.URL))
		}
		if len(r.Tags) > 0 {
			detail.WriteString("\n" + renderTags(r.Tags))
		}
		b.WriteString(styles.Panel.Render(detail.String()))
	}

	if v.mode == ResourcesModeConfirmDelete && v.cursor < len(items) {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render(fmt.Sprintf("Delete %q? (y/n)", items[v.cursor].Title)))
	}

	return b.String()
}
