// Package action defines how UI components report intent to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do. ActionType names it
// for logging.
type Action interface {
	ActionType() string
}

// Msg carries an Action together with the component that produced it.
type Msg struct {
	Source string // component name: "input", "help"
	Action Action
}

var _ tea.Msg = Msg{}
