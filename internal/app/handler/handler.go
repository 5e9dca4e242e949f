// Package handler provides the result type and dispatch chain for key
// handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/keymap"
)

// Result is the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler ignores the key.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that consume the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Key is a pressed key together with the action it resolved to. Action is
// empty for unbound keys.
type Key struct {
	Name   string
	Action keymap.Action
}

// Handler attempts to handle a key.
type Handler func(k Key) Result

// Chain offers k to each handler in order and stops at the first one that
// handles it.
func Chain(k Key, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(k); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
