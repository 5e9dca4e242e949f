// Package step defines the immutable playback unit produced by the sorting
// generators and consumed by the playback controller and renderers.
package step

import "slices"

// NoMarker is the Marker value of a Step without a distinguished index.
const NoMarker = -1

// Hole marks an output slot that has not been written yet.
const Hole = -1

// Step is one snapshot of an algorithm run. Slices are owned by the Step and
// must be treated as read-only once recorded.
type Step struct {
	Array      []int
	Highlights []int
	Marker     int
	Note       string

	// Distribution sorts only.
	Counts  []int   // count array snapshot
	Output  []int   // output buffer, Hole for unfilled slots
	Buckets [][]int // bucket contents
}

// HasMarker reports whether the step carries a marker index.
func (s Step) HasMarker() bool {
	return s.Marker != NoMarker
}

// IsHighlighted reports whether index i is among the step's highlights.
func (s Step) IsHighlighted(i int) bool {
	return slices.Contains(s.Highlights, i)
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	c := Step{
		Array:      slices.Clone(s.Array),
		Highlights: slices.Clone(s.Highlights),
		Marker:     s.Marker,
		Note:       s.Note,
		Counts:     slices.Clone(s.Counts),
		Output:     slices.Clone(s.Output),
	}
	if s.Buckets != nil {
		c.Buckets = make([][]int, len(s.Buckets))
		for i, b := range s.Buckets {
			c.Buckets[i] = slices.Clone(b)
		}
	}
	return c
}

// Equal reports whether two steps hold the same state.
func (s Step) Equal(o Step) bool {
	if s.Marker != o.Marker || s.Note != o.Note {
		return false
	}
	if !slices.Equal(s.Array, o.Array) || !slices.Equal(s.Highlights, o.Highlights) {
		return false
	}
	if !slices.Equal(s.Counts, o.Counts) || !slices.Equal(s.Output, o.Output) {
		return false
	}
	return slices.EqualFunc(s.Buckets, o.Buckets, slices.Equal[[]int])
}
