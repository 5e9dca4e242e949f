package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines_TrimsTrailingBlank(t *testing.T) {
	got := SplitLines("a\nb\n  \n\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines = %q, want [a b]", got)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\nStep 3 of 12\nlast"
	if got := FindLine(out, "Step"); got != "Step 3 of 12" {
		t.Errorf("FindLine = %q", got)
	}
	if ContainsLine(out, "missing") {
		t.Error("ContainsLine(missing) = true")
	}
}

func TestKey(t *testing.T) {
	if k := Key("enter"); k.Type != tea.KeyEnter {
		t.Errorf("Key(enter).Type = %v, want KeyEnter", k.Type)
	}
	if k := Key("r"); k.Type != tea.KeyRunes || k.String() != "r" {
		t.Errorf("Key(r) = %v, want runes r", k)
	}
	if k := Key("space"); k.String() != " " {
		t.Errorf("Key(space).String() = %q, want \" \"", k.String())
	}
}
