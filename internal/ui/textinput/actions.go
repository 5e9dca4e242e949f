package textinput

import (
	"github.com/llehouerou/sortviz/internal/ui/action"
)

// Result is the outcome of the number entry popup.
type Result struct {
	Text     string
	Canceled bool // true if the user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "input.result" }

// ActionMsg wraps an input action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "input", Action: a}
}
