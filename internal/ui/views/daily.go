package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/media"
	"github.com/dori/studydeck/internal/model"
	"github.com/dori/studydeck/internal/ui/theme"
)

// DailySection is the focused list of the daily view
type DailySection int

const (
	DailySectionToday DailySection = iota
	DailySectionWeekly
	DailySectionTargets
)

// DailyMode represents the current mode of the daily view
type DailyMode int

const (
	DailyModeNormal DailyMode = iota
	DailyModeAdd
	DailyModeQuote
	DailyModeImage
)

// TargetStep is the progress change per key press on a weekly target
const TargetStep = 10

// DailyView is the daily section: image, quote, today's todos, weekly
// todos and weekly targets
type DailyView struct {
	deps   Deps
	width  int
	height int

	section DailySection
	cursor  int
	mode    DailyMode
	form    Form
	input   textinput.Model
}

// NewDailyView creates a new daily view
func NewDailyView(deps Deps) DailyView {
	ti := textinput.New()
	ti.CharLimit = 256

	return DailyView{deps: deps, input: ti}
}

// Init initializes the daily view
func (v DailyView) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (v DailyView) SetSize(width, height int) DailyView {
	v.width = width
	v.height = height
	v.input.Width = width - 8
	return v
}

// IsInputMode returns true when the view is capturing text input
func (v DailyView) IsInputMode() bool {
	return v.mode != DailyModeNormal
}

// Section returns the focused list
func (v DailyView) Section() DailySection {
	return v.section
}

// sectionLen returns the number of rows in the focused list
func (v DailyView) sectionLen() int {
	switch v.section {
	case DailySectionWeekly:
		return len(v.deps.Weekly.Todos())
	case DailySectionTargets:
		return len(v.deps.Weekly.Targets())
	default:
		return len(v.deps.Daily.Todos())
	}
}

// Update handles messages for the daily view
func (v DailyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DailyImageMsg:
		if msg.Err != nil {
			return v, func() tea.Msg { return ErrorMsg{Err: msg.Err} }
		}
		v.deps.Daily.SetImage(msg.Image.DataURL)
		status := fmt.Sprintf("Daily image set (%dx%d %s)", msg.Image.Width, msg.Image.Height, msg.Image.MIME)
		return v, func() tea.Msg { return StatusMsg{Message: status} }

	case tea.KeyMsg:
		switch v.mode {
		case DailyModeAdd:
			return v.handleAddMode(msg)
		case DailyModeQuote, DailyModeImage:
			return v.handleInputMode(msg)
		}
		return v.handleNormalMode(msg)
	}
	return v, nil
}

func (v DailyView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		v.section = (v.section + 1) % 3
		v.cursor = 0
		return v, nil
	case "shift+tab":
		v.section = (v.section + 2) % 3
		v.cursor = 0
		return v, nil
	case "j", "down":
		v.cursor = clampCursor(v.cursor+1, v.sectionLen())
		return v, nil
	case "k", "up":
		v.cursor = clampCursor(v.cursor-1, v.sectionLen())
		return v, nil
	case "e":
		v.mode = DailyModeQuote
		v.input.Placeholder = "Quote of the day"
		v.input.SetValue(v.deps.Daily.Quote())
		v.input.CursorEnd()
		v.input.Focus()
		return v, textinput.Blink
	case "i":
		v.mode = DailyModeImage
		v.input.Placeholder = "Path to an image file"
		v.input.SetValue("")
		v.input.Focus()
		return v, textinput.Blink
	case "X":
		v.deps.Daily.SetImage("")
		return v, nil
	case "a":
		return v.openAddForm()
	}

	switch v.section {
	case DailySectionToday:
		todos := v.deps.Daily.Todos()
		if v.cursor >= len(todos) {
			return v, nil
		}
		switch msg.String() {
		case " ", "enter", "x":
			v.deps.Daily.ToggleTodo(todos[v.cursor].ID)
		case "d":
			v.deps.Daily.DeleteTodo(todos[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(todos)-1)
		}
	case DailySectionWeekly:
		todos := v.deps.Weekly.Todos()
		if v.cursor >= len(todos) {
			return v, nil
		}
		switch msg.String() {
		case " ", "enter", "x":
			v.deps.Weekly.ToggleTodo(todos[v.cursor].ID)
		case "d":
			v.deps.Weekly.DeleteTodo(todos[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(todos)-1)
		}
	case DailySectionTargets:
		targets := v.deps.Weekly.Targets()
		if v.cursor >= len(targets) {
			return v, nil
		}
		switch msg.String() {
		case "+", "=", "l", "right":
			v.deps.Weekly.AdjustProgress(targets[v.cursor].ID, TargetStep)
		case "-", "_", "h", "left":
			v.deps.Weekly.AdjustProgress(targets[v.cursor].ID, -TargetStep)
		case "d":
			v.deps.Weekly.DeleteTarget(targets[v.cursor].ID)
			v.cursor = clampCursor(v.cursor, len(targets)-1)
		}
	}
	return v, nil
}

func (v DailyView) openAddForm() (tea.Model, tea.Cmd) {
	v.mode = DailyModeAdd
	switch v.section {
	case DailySectionTargets:
		v.form = NewForm("New weekly target",
			TextField("title", "Title", "Target title"),
			TextField("description", "Description", "What does done look like?"),
			TextField("date", "Target date", model.DateLayout),
			TextField("category", "Category", "e.g. physics"),
		)
	case DailySectionWeekly:
		v.form = NewForm("New weekly task",
			TextField("task", "Task", "What needs doing this week?"),
			ChoiceField("priority", "Priority", options(model.Priorities)),
		)
		v.form.SetValue("priority", string(model.PriorityMedium))
	default:
		v.form = NewForm("New task for today",
			TextField("task", "Task", "What needs doing?"),
			ChoiceField("priority", "Priority", options(model.Priorities)),
		)
		v.form.SetValue("priority", string(model.PriorityMedium))
	}
	var cmd tea.Cmd
	v.form, cmd = v.form.Open()
	return v, cmd
}

func (v DailyView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res FormResult
	var cmd tea.Cmd
	v.form, res, cmd = v.form.Update(msg)
	switch res {
	case FormSubmitted:
		v.mode = DailyModeNormal
		priority := model.Priority(v.form.Value("priority"))
		switch v.section {
		case DailySectionTargets:
			v.deps.Weekly.AddTarget(v.form.Value("title"), v.form.Value("description"),
				v.form.Value("date"), v.form.Value("category"))
		case DailySectionWeekly:
			v.deps.Weekly.AddTodo(v.form.Value("task"), priority)
		default:
			v.deps.Daily.AddTodo(v.form.Value("task"), priority)
		}
		return v, nil
	case FormCancelled:
		v.mode = DailyModeNormal
	}
	return v, cmd
}

func (v DailyView) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		mode := v.mode
		value := strings.TrimSpace(v.input.Value())
		v.mode = DailyModeNormal
		v.input.Blur()
		if value == "" {
			return v, nil
		}
		if mode == DailyModeQuote {
			v.deps.Daily.SetQuote(value)
			return v, nil
		}
		return v, loadDailyImage(value)
	case "esc":
		v.mode = DailyModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// loadDailyImage reads path into a data URL off the update loop
func loadDailyImage(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := media.DataURL(path)
		if err != nil {
			return DailyImageMsg{Err: fmt.Errorf("failed to load image: %w", err)}
		}
		return DailyImageMsg{Image: img}
	}
}

// View renders the daily view
func (v DailyView) View() string {
	if v.mode == DailyModeAdd {
		return v.form.View()
	}

	styles := theme.Current.Styles

	var sections []string
	sections = append(sections, styles.Title.Render("Daily Section"))
	sections = append(sections, v.renderHeader())
	sections = append(sections, "")

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		v.renderTodos("Today", DailySectionToday, v.deps.Daily.Todos()),
		" ",
		v.renderTodos("This Week", DailySectionWeekly, v.deps.Weekly.Todos()),
	)
	sections = append(sections, lists, v.renderTargets())

	return strings.Join(sections, "\n")
}

// renderHeader renders the daily image and quote
func (v DailyView) renderHeader() string {
	styles := theme.Current.Styles

	var b strings.Builder
	switch v.mode {
	case DailyModeQuote:
		b.WriteString(styles.Label.Render("Quote: "))
		b.WriteString(styles.InputFocused.Render(v.input.View()))
	default:
		b.WriteString(styles.Subtitle.Render("“" + v.deps.Daily.Quote() + "”"))
		b.WriteString(styles.Label.Render("  (e to edit)"))
	}
	b.WriteString("\n")

	switch {
	case v.mode == DailyModeImage:
		b.WriteString(styles.Label.Render("Image: "))
		b.WriteString(styles.InputFocused.Render(v.input.View()))
	case v.deps.Daily.Image() != "":
		b.WriteString(styles.Label.Render("Image: " + media.Describe(v.deps.Daily.Image()) + "  (i to replace, X to clear)"))
	default:
		b.WriteString(styles.Label.Render("Image: none  (i to set)"))
	}
	return b.String()
}

func (v DailyView) renderTodos(title string, section DailySection, todos []model.TodoItem) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	done := 0
	for _, todo := range todos {
		if todo.Completed {
			done++
		}
	}

	var lines []string
	lines = append(lines, styles.PanelTitle.Render(fmt.Sprintf("%s (%d/%d)", title, done, len(todos))))
	if len(todos) == 0 {
		lines = append(lines, styles.Label.Render("Nothing here. Press a to add."))
	}
	for i, todo := range todos {
		line := fmt.Sprintf("%s %s %s", checkbox(todo.Completed), truncate(todo.Task, 30), priorityBadge(todo.Priority))
		lines = append(lines, renderRow(line, v.section == section && i == v.cursor, todo.Completed))
	}

	border := t.Border
	if v.section == section {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(48).
		Render(strings.Join(lines, "\n"))
}

func (v DailyView) renderTargets() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	targets := v.deps.Weekly.Targets()
	var lines []string
	lines = append(lines, styles.PanelTitle.Render("Weekly Targets"))
	if len(targets) == 0 {
		lines = append(lines, styles.Label.Render("No targets yet. Press a to set one."))
	}
	for i, target := range targets {
		color := t.Info
		if target.Progress >= 100 {
			color = t.Success
		}
		line := fmt.Sprintf("%-28s %s %3d%%", truncate(target.Title, 28), renderBar(target.Progress, 20, color), target.Progress)
		lines = append(lines, renderRow(line, v.section == DailySectionTargets && i == v.cursor, target.Progress >= 100))
		detail := target.Description
		if target.TargetDate != "" {
			detail += " • due " + target.TargetDate
		}
		if target.Category != "" {
			detail += " • " + target.Category
		}
		lines = append(lines, styles.Label.Render("    "+truncate(detail, 70)))
	}

	border := t.Border
	if v.section == DailySectionTargets {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
