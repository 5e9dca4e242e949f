package sorting

import (
	"slices"

	"github.com/llehouerou/sortviz/internal/step"
)

const (
	noteInitial  = "Initial array."
	noteComplete = "Sorting complete! All elements are now in order."
)

// recorder accumulates step snapshots. Every slice handed to it is copied.
type recorder struct {
	steps []step.Step
}

// newRecorder starts a recording with the input snapshot as step 0.
func newRecorder(input []int) *recorder {
	r := &recorder{}
	r.push(step.Step{Array: input, Marker: step.NoMarker, Note: noteInitial})
	return r
}

func (r *recorder) push(s step.Step) {
	s.Array = cloneNonNil(s.Array)
	s.Highlights = slices.Clone(s.Highlights)
	s.Counts = slices.Clone(s.Counts)
	s.Output = slices.Clone(s.Output)
	if s.Buckets != nil {
		b := make([][]int, len(s.Buckets))
		for i := range s.Buckets {
			b[i] = cloneNonNil(s.Buckets[i])
		}
		s.Buckets = b
	}
	r.steps = append(r.steps, s)
}

// record appends a plain snapshot.
func (r *recorder) record(arr []int, note string, highlights ...int) {
	r.push(step.Step{Array: arr, Highlights: highlights, Marker: step.NoMarker, Note: note})
}

// recordMarked appends a snapshot with a marker index.
func (r *recorder) recordMarked(arr []int, marker int, note string, highlights ...int) {
	r.push(step.Step{Array: arr, Highlights: highlights, Marker: marker, Note: note})
}

// finish appends the completion step unless the input was trivially sorted.
func (r *recorder) finish(arr []int) step.Sequence {
	if len(arr) > 1 {
		r.record(arr, noteComplete)
	}
	return r.sequence()
}

func (r *recorder) sequence() step.Sequence {
	return step.NewSequence(r.steps)
}

// cloneNonNil copies s, mapping nil to an empty slice so empty inputs compare
// equal to the recorded snapshot.
func cloneNonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return slices.Clone(s)
}

// span returns the indices lo..hi inclusive.
func span(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
