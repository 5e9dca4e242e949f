// internal/state/mock.go
package state

import (
	"context"
	"slices"
)

// Mock is a test double for Manager.
type Mock struct {
	prefs  *Preferences
	saved  []Preferences
	recent []string
	closed bool

	prefsErr   error
	historyErr error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPreferences() (*Preferences, error) {
	if m.prefsErr != nil {
		return nil, m.prefsErr
	}
	return m.prefs, nil
}

func (m *Mock) SavePreferences(p Preferences) {
	m.saved = append(m.saved, p)
	m.prefs = &p
}

func (m *Mock) AddRecentInput(_ context.Context, text string) error {
	m.recent = slices.DeleteFunc(m.recent, func(s string) bool { return s == text })
	m.recent = slices.Insert(m.recent, 0, text)
	return nil
}

func (m *Mock) RecentInputs(_ context.Context, limit int) ([]string, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	if limit <= 0 || limit > len(m.recent) {
		limit = len(m.recent)
	}
	return slices.Clone(m.recent[:limit]), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPreferences(p *Preferences) { m.prefs = p }

// FailPreferences makes GetPreferences return err.
func (m *Mock) FailPreferences(err error) { m.prefsErr = err }

// FailHistory makes RecentInputs return err.
func (m *Mock) FailHistory(err error) { m.historyErr = err }

func (m *Mock) Saved() []Preferences { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
