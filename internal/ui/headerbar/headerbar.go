// Package headerbar renders the algorithm tabs at the top of the screen.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/ui/render"
	"github.com/llehouerou/sortviz/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const separator = " │ "

// Render returns the header for width columns with current highlighted.
// Tabs use display names when they fit, identifiers when they do not, and
// collapse to the current algorithm alone on narrow screens.
func Render(current sorting.Algorithm, width int) string {
	if width < 20 {
		return ""
	}

	for _, label := range []func(sorting.Algorithm) string{
		sorting.Algorithm.String,
		sorting.Algorithm.ID,
	} {
		content := tabs(current, label)
		if lipgloss.Width(content) <= width {
			return render.Center(content, width)
		}
	}

	s := styles.T().S()
	single := s.Key.Render(strconv.Itoa(int(current)+1)) + " " + s.Accent.Render(current.String())
	return render.Center(s.Subtle.Render("‹ ")+single+s.Subtle.Render(" ›"), width)
}

func tabs(current sorting.Algorithm, label func(sorting.Algorithm) string) string {
	s := styles.T().S()
	all := sorting.All()
	parts := make([]string, 0, len(all))
	for _, a := range all {
		key := strconv.Itoa(int(a) + 1)
		if a == current {
			parts = append(parts, s.Accent.Render(key+" "+label(a)))
			continue
		}
		parts = append(parts, s.Subtle.Render(key)+" "+s.Muted.Render(label(a)))
	}
	return strings.Join(parts, s.Subtle.Render(separator))
}
