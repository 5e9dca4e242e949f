package ui

import "testing"

func TestBase(t *testing.T) {
	var b Base
	b.SetSize(80, 24)

	if w, h := b.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = (%d, %d), want (80, 24)", w, h)
	}
	if b.Width() != 80 || b.Height() != 24 {
		t.Errorf("Width/Height = %d/%d, want 80/24", b.Width(), b.Height())
	}
}

func TestBase_InnerHeight(t *testing.T) {
	tests := []struct {
		overhead int
		want     int
	}{
		{0, 24},
		{4, 20},
		{24, 0},
		{30, 0},
	}

	var b Base
	b.SetSize(80, 24)
	for _, tt := range tests {
		if got := b.InnerHeight(tt.overhead); got != tt.want {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.overhead, got, tt.want)
		}
	}
}
