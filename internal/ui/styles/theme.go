// Package styles holds the color themes and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name string

	// Brand/accent colors
	Primary   lipgloss.Color // Purple - title, focused items, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Bars: gradient from short to tall, plus state overrides
	BarLow     lipgloss.Color
	BarHigh    lipgloss.Color
	BarCompare lipgloss.Color // highlighted indices
	BarMarker  lipgloss.Color // pivot, minimum, write position
	BarSorted  lipgloss.Color // completed sequence

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Accent  lipgloss.Style // Primary colored, bold
	Key     lipgloss.Style // Key hints
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var darkTheme = Theme{
	Name: NameDark,

	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	BarLow:     lipgloss.Color("#5b8def"),
	BarHigh:    lipgloss.Color("#a78bfa"),
	BarCompare: lipgloss.Color("#ff5555"),
	BarMarker:  lipgloss.Color("#f1a208"),
	BarSorted:  lipgloss.Color("#42b883"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

var lightTheme = Theme{
	Name: NameLight,

	Primary:   lipgloss.Color("#6d28d9"),
	Secondary: lipgloss.Color("#b45309"),

	FgBase:   lipgloss.Color("#1f2937"),
	FgMuted:  lipgloss.Color("#4b5563"),
	FgSubtle: lipgloss.Color("#9ca3af"),

	Border:      lipgloss.Color("#9ca3af"),
	BorderFocus: lipgloss.Color("#6d28d9"),

	BarLow:     lipgloss.Color("#2563eb"),
	BarHigh:    lipgloss.Color("#7c3aed"),
	BarCompare: lipgloss.Color("#dc2626"),
	BarMarker:  lipgloss.Color("#d97706"),
	BarSorted:  lipgloss.Color("#059669"),

	Success: lipgloss.Color("#059669"),
	Error:   lipgloss.Color("#dc2626"),
	Warning: lipgloss.Color("#d97706"),
}

var current = &darkTheme

// T returns the active theme.
func T() *Theme {
	return current
}

// Use activates the named theme. Unknown names select the dark theme.
func Use(name string) {
	current = ByName(name)
}

// ByName returns the named theme, or the dark theme for unknown names.
func ByName(name string) *Theme {
	if name == NameLight {
		return &lightTheme
	}
	return &darkTheme
}

// Toggled returns the name of the other theme.
func Toggled(name string) string {
	if name == NameLight {
		return NameDark
	}
	return NameLight
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
