package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/ui/testutil"
)

func TestRender_FullNamesWhenWide(t *testing.T) {
	got := testutil.StripANSI(Render(sorting.Quick, 200))

	for _, want := range []string{"1 Bubble Sort", "5 Quick Sort", "9 Bucket Sort"} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q: %q", want, got)
		}
	}
	if w := testutil.MeasureWidth(got); w != 200 {
		t.Errorf("width = %d, want 200", w)
	}
}

func TestRender_IdentifiersWhenMedium(t *testing.T) {
	got := testutil.StripANSI(Render(sorting.Heap, 120))

	if !strings.Contains(got, "6 heap") || strings.Contains(got, "Heap Sort") {
		t.Errorf("header = %q, want identifier tabs", got)
	}
}

func TestRender_SingleTabWhenNarrow(t *testing.T) {
	got := testutil.StripANSI(Render(sorting.Radix, 30))

	if !strings.Contains(got, "‹ 8 Radix Sort ›") {
		t.Errorf("header = %q, want collapsed tab", got)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(sorting.Bubble, 10); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
