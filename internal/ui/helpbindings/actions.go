package helpbindings

import (
	"github.com/llehouerou/sortviz/internal/ui/action"
)

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "help.close" }

// ActionMsg wraps a help action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "help", Action: a}
}
