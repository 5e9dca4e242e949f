package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the main view.
type Popup interface {
	// Init returns the command to run when the popup opens.
	Init() tea.Cmd

	// Update handles messages and returns the updated popup.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup body without its frame.
	View() string

	// SetSize sets the space available to the body.
	SetSize(width, height int)
}
