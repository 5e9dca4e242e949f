package textinput

import (
	"strings"
	"testing"

	"github.com/llehouerou/sortviz/internal/ui/action"
	"github.com/llehouerou/sortviz/internal/ui/testutil"
)

func newTestInput(initial string, history ...string) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Start("Numbers", initial, history)
	m.SetSize(60, 10)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if actionMsg.Source != "input" {
		t.Errorf("Source = %q, want input", actionMsg.Source)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestTextInput_TypeAndSubmit(t *testing.T) {
	_, h := newTestInput("")

	h.Type("3, 1, 2")
	h.SendKey("enter")

	result := getResult(t, h)
	if result.Text != "3, 1, 2" {
		t.Errorf("Text = %q, want %q", result.Text, "3, 1, 2")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
}

func TestTextInput_SubmitTrimsSpace(t *testing.T) {
	_, h := newTestInput("  4,2  ")

	h.SendKey("enter")

	if got := getResult(t, h).Text; got != "4,2" {
		t.Errorf("Text = %q, want %q", got, "4,2")
	}
}

func TestTextInput_InitialTextIsEditable(t *testing.T) {
	_, h := newTestInput("5,3")

	h.Type(",9")
	h.SendKey("backspace")
	h.Type("8")
	h.SendKey("enter")

	if got := getResult(t, h).Text; got != "5,3,8" {
		t.Errorf("Text = %q, want %q", got, "5,3,8")
	}
}

func TestTextInput_Cancel(t *testing.T) {
	_, h := newTestInput("1,2")

	h.SendKey("esc")

	if !getResult(t, h).Canceled {
		t.Error("expected Canceled=true")
	}
}

func TestTextInput_HistoryWalk(t *testing.T) {
	m, h := newTestInput("", "3,2,1", "9,8")

	h.Type("7")
	h.SendKey("up")
	if m.Value() != "3,2,1" {
		t.Fatalf("after up Value() = %q, want newest entry", m.Value())
	}
	h.SendKey("up")
	if m.Value() != "9,8" {
		t.Fatalf("after second up Value() = %q, want older entry", m.Value())
	}
	h.SendKey("up")
	if m.Value() != "9,8" {
		t.Errorf("up past the oldest entry changed Value() to %q", m.Value())
	}

	h.SendKey("down")
	h.SendKey("down")
	if m.Value() != "7" {
		t.Errorf("back at the draft Value() = %q, want %q", m.Value(), "7")
	}
	h.SendKey("down")
	if m.Value() != "7" {
		t.Errorf("down past the draft changed Value() to %q", m.Value())
	}
}

func TestTextInput_RecalledEntryIsSubmitted(t *testing.T) {
	_, h := newTestInput("", "6,4,2")

	h.SendKey("up")
	h.SendKey("enter")

	if got := getResult(t, h).Text; got != "6,4,2" {
		t.Errorf("Text = %q, want %q", got, "6,4,2")
	}
}

func TestTextInput_View(t *testing.T) {
	_, h := newTestInput("1,2", "3")
	view := h.View()

	for _, want := range []string{"Numbers", "> 1,2", "history", "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTextInput_ViewWithoutHistoryHasNoHistoryHint(t *testing.T) {
	_, h := newTestInput("")

	if strings.Contains(h.View(), "history") {
		t.Error("history hint shown without history")
	}
}

func TestTextInput_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.Start("Numbers", "", nil)

	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty", got)
	}
}
