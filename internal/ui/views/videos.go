package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/studydeck/internal/library"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// VideosView lists saved study session recordings
type VideosView struct {
	deps   Deps
	width  int
	height int

	cursor    int
	search    string
	searching bool
	adding    bool
	input     textinput.Model
	form      Form
}

// NewVideosView creates a new videos view
func NewVideosView(deps Deps) VideosView {
	ti := textinput.New()
	ti.Placeholder = "Search videos..."
	ti.CharLimit = 256

	return VideosView{deps: deps, input: ti}
}

// Init initializes the videos view
func (v VideosView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v VideosView) SetSize(width, height int) VideosView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns true when searching or adding
func (v VideosView) IsInputMode() bool {
	return v.searching || v.adding
}

func (v VideosView) visible() []model.StudyVideo {
	return v.deps.Videos.Search(v.search)
}

// Update handles messages for the videos view
func (v VideosView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			video, err := v.deps.Videos.Add(library.NewVideo{
				Title:       v.form.Value("title"),
				URL:         v.form.Value("url"),
				Duration:    v.form.Value("duration"),
				Description: v.form.Value("description"),
			})
			if err != nil {
				return v, nil
			}
			v.cursor = 0
			return v, func() tea.Msg { return StatusMsg{Message: fmt.Sprintf("Saved %q", video.Title)} }
		case FormCancelled:
			v.adding = false
		}
		return v, cmd
	}

	if v.searching {
		switch keyMsg.String() {
		case "enter", "esc":
			if keyMsg.String() == "esc" {
				v.input.SetValue("")
				v.search = ""
			}
			v.searching = false
			v.input.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(keyMsg)
		v.search = v.input.Value()
		v.cursor = 0
		return v, cmd
	}

	items := v.visible()
	switch keyMsg.String() {
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, len(items))
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, len(items))
	case "/":
		v.searching = true
		v.input.Focus()
		return v, textinput.Blink
	case "a":
		v.adding = true
		v.form = NewForm("Add study video",
			TextField("title", "Title", "Session title"),
			TextField("url", "URL", "https://youtube.com/watch?v=..."),
			TextField("duration", "Duration", "e.g. 1h 30m"),
			TextField("description", "Description", ""),
		)
		var cmd tea.Cmd
		v.form, cmd = v.form.Open()
		return v, cmd
	case "d":
		if v.cursor < len(items) {
			v.deps.Videos.Delete(items[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(items)-1)
		}
	case "enter", "o":
		if v.cursor < len(items) {
			url := items[v.cursor].URL
			return v, func() tea.Msg { return StatusMsg{Message: url} }
		}
	}
	return v, nil
}

// View renders the videos view
func (v VideosView) View() string {
	if v.adding {
		return v.form.View()
	}

	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Title.Render("Study With Me"))
	b.WriteString("\n")
	if v.searching {
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n")
	} else if v.search != "" {
		b.WriteString(styles.Label.Render("search: " + v.search))
		b.WriteString("\n")
	}

	items := v.visible()
	if len(items) == 0 {
		b.WriteString(styles.Label.Render("No videos. Press a to save one."))
		return b.String()
	}
	for i, video := range items {
		line := fmt.Sprintf("▶ %-40s %s %s", truncate(video.Title, 40),
			styles.Label.Render(fmt.Sprintf("%-8s", video.Duration)),
			styles.Date.Render(video.Date))
		b.WriteString(renderRow(line, i == v.cursor, false))
		b.WriteString("\n")
		if i == v.cursor {
			if video.Description != "" {
				b.WriteString(styles.Label.Render("    " + video.Description))
				b.WriteString("\n")
			}
			b.WriteString(styles.Label.Render("    " + video.URL))
			b.WriteString("\n")
		}
	}
	return b.String()
}
