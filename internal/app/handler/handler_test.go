package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/keymap"
)

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be unhandled without command")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without command")
	}
	r := Handled(tea.Quit)
	if !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should be handled with command")
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	record := func(name string, res Result) Handler {
		return func(Key) Result {
			calls = append(calls, name)
			return res
		}
	}

	handled, cmd := Chain(Key{Name: "q", Action: keymap.ActionQuit},
		record("popup", NotHandled),
		record("global", Handled(tea.Quit)),
		record("playback", HandledNoCmd),
	)

	if !handled {
		t.Fatal("Chain() handled = false, want true")
	}
	if cmd == nil {
		t.Error("Chain() cmd = nil, want the global handler's command")
	}
	if len(calls) != 2 || calls[0] != "popup" || calls[1] != "global" {
		t.Errorf("calls = %v, want [popup global]", calls)
	}
}

func TestChain_PassesKey(t *testing.T) {
	var got Key
	Chain(Key{Name: "right", Action: keymap.ActionStepForward}, func(k Key) Result {
		got = k
		return NotHandled
	})
	if got.Name != "right" || got.Action != keymap.ActionStepForward {
		t.Errorf("handler got %+v", got)
	}
}

func TestChain_NothingHandles(t *testing.T) {
	handled, cmd := Chain(Key{Name: "x"}, func(Key) Result { return NotHandled })
	if handled || cmd != nil {
		t.Errorf("Chain() = (%v, %v), want (false, nil)", handled, cmd)
	}
}
