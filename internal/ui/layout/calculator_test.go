package layout

import "testing"

func TestChromeHeight(t *testing.T) {
	tests := []struct {
		name string
		opts ContentOpts
		want int
	}{
		{
			name: "border only",
			opts: ContentOpts{},
			want: 2,
		},
		{
			name: "default screen",
			opts: DefaultContentOpts(),
			want: 9, // 2 header + 2 border + note + status + 3 control bar
		},
		{
			name: "no control bar",
			opts: ContentOpts{HeaderHeight: 2, NoteHeight: 1},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChromeHeight(tt.opts); got != tt.want {
				t.Errorf("ChromeHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChartHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		want         int
	}{
		{"roomy window", 30, 21},
		{"exactly chrome plus minimum", 12, 3},
		{"tiny window keeps minimum", 5, 3},
		{"zero window keeps minimum", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChartHeight(tt.windowHeight, DefaultContentOpts()); got != tt.want {
				t.Errorf("ChartHeight(%d) = %d, want %d", tt.windowHeight, got, tt.want)
			}
		})
	}
}

func TestChartWidth(t *testing.T) {
	tests := []struct {
		windowWidth int
		want        int
	}{
		{100, 98},
		{2, 0},
		{1, 0},
	}

	for _, tt := range tests {
		if got := ChartWidth(tt.windowWidth); got != tt.want {
			t.Errorf("ChartWidth(%d) = %d, want %d", tt.windowWidth, got, tt.want)
		}
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{59, true},
		{60, false},
		{120, false},
	}

	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}
