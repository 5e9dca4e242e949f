// Package keymap defines key bindings for the application.
package keymap

import "slices"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "settings", "input"
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle dark/light theme", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "p"}, "Play/pause", "playback"},
	{ActionStepForward, []string{"right", "l"}, "Step forward", "playback"},
	{ActionStepBackward, []string{"left", "h"}, "Step backward", "playback"},
	{ActionReset, []string{"r"}, "Reset", "playback"},
	{ActionSpeedUp, []string{"+", "="}, "Faster", "playback"},
	{ActionSpeedDown, []string{"-", "_"}, "Slower", "playback"},

	// Settings
	{ActionNextAlgorithm, []string{"tab", "n"}, "Next algorithm", "settings"},
	{ActionPrevAlgorithm, []string{"shift+tab", "N"}, "Previous algorithm", "settings"},
	{ActionSelectAlgorithm, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Select algorithm", "settings"},
	{ActionRangeUp, []string{"]", "up", "k"}, "Increase range", "settings"},
	{ActionRangeDown, []string{"[", "down", "j"}, "Decrease range", "settings"},
	{ActionEditInput, []string{"i"}, "Enter numbers", "settings"},
	{ActionRandomInput, []string{"g"}, "Random numbers", "settings"},

	// Input popup
	{ActionSubmit, []string{"enter"}, "Apply numbers", "input"},
	{ActionCancel, []string{"esc"}, "Cancel", "input"},
	{ActionHistoryPrev, []string{"up"}, "Previous input", "input"},
	{ActionHistoryNext, []string{"down"}, "Next input", "input"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"playback", "settings", "global"}

// ForContexts returns the bindings of the given contexts, in declaration order.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range All {
		if slices.Contains(contexts, kb.Context) {
			result = append(result, kb)
		}
	}
	return result
}
