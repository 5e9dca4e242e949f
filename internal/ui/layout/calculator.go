// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/sortviz/internal/ui"

// ContentOpts lists the rows drawn around the chart panel.
type ContentOpts struct {
	HeaderHeight     int // algorithm tabs plus the spacer below
	NoteHeight       int
	StatusHeight     int
	ControlBarHeight int
}

// DefaultContentOpts is the standard screen: header, note, status and
// control bar.
func DefaultContentOpts() ContentOpts {
	return ContentOpts{
		HeaderHeight:     ui.HeaderHeight,
		NoteHeight:       ui.NoteHeight,
		StatusHeight:     ui.StatusHeight,
		ControlBarHeight: ui.ControlBarHeight,
	}
}

// ChromeHeight is every row that is not chart content, including the
// chart panel border.
func ChromeHeight(opts ContentOpts) int {
	return opts.HeaderHeight + ui.BorderHeight + opts.NoteHeight + opts.StatusHeight + opts.ControlBarHeight
}

// ChartHeight is the height inside the chart panel border. It never drops
// below ui.MinChartHeight so bars stay visible on tiny terminals.
func ChartHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-ChromeHeight(opts), ui.MinChartHeight)
}

// ChartWidth is the width inside the chart panel border.
func ChartWidth(windowWidth int) int {
	return max(windowWidth-ui.BorderWidth, 0)
}

// IsNarrowMode reports whether the control bar drops its secondary fields.
func IsNarrowMode(width int) bool {
	return width < ui.MinExpandedWidth
}
