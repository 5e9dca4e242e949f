// Package textinput provides the popup used to type an explicit array.
// Up and down walk through previously applied inputs.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/ui"
	"github.com/llehouerou/sortviz/internal/ui/popup"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

const (
	charLimit   = 512
	placeholder = "5, 3, 8, 1"
)

// Model is the number entry popup.
type Model struct {
	ui.Base
	title string
	field textinput.Model

	// history holds recent inputs, newest first. pos is the entry shown,
	// -1 while editing the draft.
	history []string
	pos     int
	draft   string
}

// New creates an empty input.
func New() Model {
	f := textinput.New()
	f.Prompt = "> "
	f.Placeholder = placeholder
	f.CharLimit = charLimit
	return Model{field: f, pos: -1}
}

// Start opens the input with a title, initial text and recent entries
// (newest first).
func (m *Model) Start(title, initial string, history []string) {
	m.title = title
	m.history = history
	m.pos = -1
	m.draft = ""

	t := styles.T()
	m.field.PromptStyle = t.S().Accent
	m.field.TextStyle = t.S().Base
	m.field.PlaceholderStyle = t.S().Subtle
	m.field.SetValue(initial)
	m.field.CursorEnd()
	m.field.Focus()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.field.Value()
}

// SetSize sets the popup body size and fits the field to it.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.field.Width = max(width-len(m.field.Prompt)-1, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true})
			}
		case "enter":
			text := strings.TrimSpace(m.field.Value())
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text})
			}
		case "up":
			m.recall(m.pos + 1)
			return m, nil
		case "down":
			m.recall(m.pos - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// recall shows history entry pos, or the draft for -1. Out of range
// positions are ignored.
func (m *Model) recall(pos int) {
	if pos < -1 || pos >= len(m.history) || pos == m.pos {
		return
	}
	if m.pos == -1 {
		m.draft = m.field.Value()
	}
	m.pos = pos
	if pos == -1 {
		m.field.SetValue(m.draft)
	} else {
		m.field.SetValue(m.history[pos])
	}
	m.field.CursorEnd()
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	hint := "enter apply · esc cancel"
	if len(m.history) > 0 {
		hint = "↑/↓ history · " + hint
	}

	return s.Title.Render(m.title) + "\n\n" +
		m.field.View() + "\n\n" +
		s.Subtle.Render(hint)
}
