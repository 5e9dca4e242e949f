package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpInputParse,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpInputParse,
			err:      errors.New("not a number"),
			expected: "Failed to parse input: not a number",
		},
		{
			name:     "validation operation",
			op:       OpInputValidate,
			err:      errors.New("negative numbers are not supported"),
			expected: "Failed to use input: negative numbers are not supported",
		},
		{
			name:     "wrapped error keeps its chain text",
			op:       OpPrefsLoad,
			err:      fmt.Errorf("query: %w", errors.New("database is locked")),
			expected: "Failed to load preferences: query: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{OpInputParse, OpInputValidate, OpInputHistory, OpPrefsLoad}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
