package ui

// Base holds the size every sized component needs. Embed it in component
// models:
//
//	type Model struct {
//	    ui.Base
//	    step step.Step
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// InnerHeight returns the height left after subtracting overhead rows,
// never negative.
func (b Base) InnerHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
