// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Input
	OpInputParse    Op = "parse input"
	OpInputValidate Op = "use input"
	OpInputHistory  Op = "load input history"

	// Preferences
	OpPrefsLoad Op = "load preferences"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
