// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleTheme Action = "toggle_theme"

	// Playback actions
	ActionPlayPause    Action = "play_pause"
	ActionStepForward  Action = "step_forward"
	ActionStepBackward Action = "step_backward"
	ActionReset        Action = "reset"
	ActionSpeedUp      Action = "speed_up"
	ActionSpeedDown    Action = "speed_down"

	// Settings actions
	ActionNextAlgorithm Action = "next_algorithm"
	ActionPrevAlgorithm Action = "prev_algorithm"
	ActionRangeUp       Action = "range_up"
	ActionRangeDown     Action = "range_down"
	ActionEditInput     Action = "edit_input"   // i - open explicit input popup
	ActionRandomInput   Action = "random_input" // g - switch to random mode

	// Direct algorithm selection (1-9)
	ActionSelectAlgorithm Action = "select_algorithm"

	// Input popup actions
	ActionSubmit      Action = "submit"
	ActionCancel      Action = "cancel"
	ActionHistoryPrev Action = "history_prev"
	ActionHistoryNext Action = "history_next"
)
