package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/ui/theme"
)

// FormResult tells the owning view what the last key did to the form
type FormResult int

const (
	FormEditing FormResult = iota
	FormSubmitted
	FormCancelled
)

// FormField is a text input or a fixed set of choices cycled with left/right
type FormField struct {
	Key     string
	Label   string
	input   textinput.Model
	options []string
	choice  int
}

// TextField creates a free text field
func TextField(key, label, placeholder string) FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	return FormField{Key: key, Label: label, input: ti}
}

// ChoiceField creates a field cycling through options
func ChoiceField(key, label string, options []string) FormField {
	return FormField{Key: key, Label: label, options: options}
}

func (f FormField) isChoice() bool { return f.options != nil }

// Value returns the trimmed text or the selected option
func (f FormField) Value() string {
	if f.isChoice() {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

// Form is a small multi-field input used by the add/edit dialogs of every
// panel. tab and shift+tab move between fields, enter submits, esc cancels.
type Form struct {
	title  string
	fields []FormField
	focus  int
}

// NewForm creates a form with the first field focused
func NewForm(title string, fields ...FormField) Form {
	f := Form{title: title, fields: fields}
	f.focusField(0)
	return f
}

// Open focuses the first field and returns the cursor blink command
func (f Form) Open() (Form, tea.Cmd) {
	f.focusField(0)
	return f, textinput.Blink
}

// SetValue fills a text field or selects a matching option
func (f *Form) SetValue(key, value string) {
	for i := range f.fields {
		field := &f.fields[i]
		if field.Key != key {
			continue
		}
		if field.isChoice() {
			for j, opt := range field.options {
				if opt == value {
					field.choice = j
				}
			}
			return
		}
		field.input.SetValue(value)
		return
	}
}

// Value returns the value of the field named key
func (f Form) Value(key string) string {
	for _, field := range f.fields {
		if field.Key == key {
			return field.Value()
		}
	}
	return ""
}

// SetEcho switches a text field to masked input
func (f *Form) SetEcho(key string, mode textinput.EchoMode) {
	for i := range f.fields {
		if f.fields[i].Key == key {
			f.fields[i].input.EchoMode = mode
			f.fields[i].input.EchoCharacter = '•'
		}
	}
}

func (f *Form) focusField(i int) {
	if len(f.fields) == 0 {
		return
	}
	f.focus = (i + len(f.fields)) % len(f.fields)
	for j := range f.fields {
		if f.fields[j].isChoice() {
			continue
		}
		if j == f.focus {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

// Update handles a key press
func (f Form) Update(msg tea.KeyMsg) (Form, FormResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		f.blur()
		return f, FormCancelled, nil
	case "enter":
		f.blur()
		return f, FormSubmitted, nil
	case "tab", "down":
		f.focusField(f.focus + 1)
		return f, FormEditing, textinput.Blink
	case "shift+tab", "up":
		f.focusField(f.focus - 1)
		return f, FormEditing, textinput.Blink
	}

	if len(f.fields) == 0 {
		return f, FormEditing, nil
	}
	field := &f.fields[f.focus]
	if field.isChoice() {
		switch msg.String() {
		case "left", "h":
			field.choice = (field.choice - 1 + len(field.options)) % len(field.options)
		case "right", "l", " ":
			field.choice = (field.choice + 1) % len(field.options)
		}
		return f, FormEditing, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return f, FormEditing, cmd
}

func (f *Form) blur() {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

// View renders the form
func (f Form) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	labelStyle := lipgloss.NewStyle().Foreground(t.Subtle).Width(14)
	activeLabel := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(14)

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render(f.title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = activeLabel
		}
		b.WriteString(label.Render(field.Label))
		if field.isChoice() {
			b.WriteString("‹ " + field.Value() + " ›")
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("tab next field • ←/→ change choice • enter save • esc cancel"))
	return styles.Panel.Render(b.String())
}

// options converts a closed string enum list to form choices
func options[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
