// internal/state/interface.go
package state

import "context"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPreferences() (*Preferences, error)
	SavePreferences(p Preferences)
	AddRecentInput(ctx context.Context, text string) error
	RecentInputs(ctx context.Context, limit int) ([]string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
