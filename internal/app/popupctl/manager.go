// Package popupctl owns the modal popups shown over the main view.
package popupctl

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/keymap"
	"github.com/llehouerou/sortviz/internal/ui/helpbindings"
	"github.com/llehouerou/sortviz/internal/ui/popup"
	"github.com/llehouerou/sortviz/internal/ui/textinput"
)

// Manager tracks the open popups and routes messages to the active one.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.Size
	width  int
	height int
}

// New creates a manager with no popup open.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.Size{
			Help:  popup.SizeAuto,
			Input: popup.SizeInput,
		},
	}
}

// SetSize updates the screen size and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(popup.BodySize(width, height, p.sizes[t]))
	}
}

// IsVisible reports whether popup t is open.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// Active returns the open popup with the highest priority.
func (p *Manager) Active() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop as type t and returns its init command.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(popup.BodySize(p.width, p.height, p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes popup t.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get returns popup t, or nil when closed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp opens the key binding help.
func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New(slices.Concat(keymap.Contexts, []string{"input"})...)
	return p.Show(Help, &help)
}

// ShowInput opens the number entry with initial text and recent entries.
func (p *Manager) ShowInput(initial string, history []string) tea.Cmd {
	in := textinput.New()
	in.Start("Enter numbers separated by commas", initial, history)
	return p.Show(Input, &in)
}

// Update routes msg to the active popup. It reports false when no popup
// is open.
func (p *Manager) Update(msg tea.Msg) (bool, tea.Cmd) {
	t := p.Active()
	if t == None {
		return false, nil
	}
	var cmd tea.Cmd
	p.popups[t], cmd = p.popups[t].Update(msg)
	return true, cmd
}

// View draws the open popups over base.
func (p *Manager) View(base string) string {
	view := base
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		framed := popup.Frame("", pop.View(), p.width, p.height, p.sizes[t])
		view = popup.Compose(view, framed, p.width)
	}
	return view
}
