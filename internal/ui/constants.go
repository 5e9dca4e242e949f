// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the app and its components.
const (
	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the title line plus the blank line below it.
	HeaderHeight = 2

	// ControlBarHeight is the playback bar under the chart.
	ControlBarHeight = 3

	// NoteHeight is the step note line.
	NoteHeight = 1

	// StatusHeight is the key hint / error line.
	StatusHeight = 1

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// MinChartHeight is the smallest chart that still shows bars.
	MinChartHeight = 3

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MinExpandedWidth is the width below which the control bar drops its
	// secondary fields.
	MinExpandedWidth = 60
)
