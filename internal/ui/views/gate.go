package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/studydeck/internal/gate"
	"github.com/dori/studydeck/internal/ui/theme"
)

// GateView asks for the PIN before any panel is shown
type GateView struct {
	gate   *gate.Gate
	input  textinput.Model
	err    string
	width  int
	height int
}

// NewGateView creates the PIN prompt
func NewGateView(g *gate.Gate) GateView {
	ti := textinput.New()
	ti.Placeholder = "••••"
	ti.CharLimit = gate.PINLength
	ti.Width = gate.PINLength + 1
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()

	return GateView{gate: g, input: ti}
}

// Init starts the cursor blink
func (v GateView) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the view dimensions
func (v GateView) SetSize(width, height int) GateView {
	v.width = width
	v.height = height
	return v
}

// Update handles messages for the gate
func (v GateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if keyMsg.String() == "enter" {
		pin := strings.TrimSpace(v.input.Value())
		err := v.gate.Attempt(pin)
		v.input.SetValue("")
		switch {
		case err == nil:
			v.err = ""
			return v, func() tea.Msg { return UnlockedMsg{} }
		case errors.Is(err, gate.ErrInvalidPIN):
			v.err = "Invalid PIN. Access denied."
			return v, nil
		default:
			v.err = ""
			return v, func() tea.Msg { return ErrorMsg{Err: err} }
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the PIN prompt centered on screen
func (v GateView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.Title.Render("🔒 Study Dashboard"))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("Enter your 4-digit PIN"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(v.input.View()))
	b.WriteString("\n")
	if v.err != "" {
		b.WriteString(styles.Error.Render(v.err))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 4).
		Render(b.String())

	if v.width == 0 || v.height == 0 {
		return box
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}

// IsInputMode is always true; every key belongs to the PIN input
func (v GateView) IsInputMode() bool {
	return true
}

// Error returns the inline error shown under the input
func (v GateView) Error() string {
	return v.err
}
