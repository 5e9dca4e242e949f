package step

import (
	"errors"
	"fmt"
	"slices"
)

// Sequence validation errors.
var (
	ErrEmptySequence = errors.New("sequence has no steps")
	ErrFirstMismatch = errors.New("first step does not match input")
	ErrNotSorted     = errors.New("last step is not sorted")
	ErrLength        = errors.New("step array length differs from input")
	ErrIndex         = errors.New("step index out of range")
)

// Sequence is the ordered, precomputed list of steps for one algorithm run.
type Sequence struct {
	steps []Step
}

// NewSequence wraps steps without copying them.
func NewSequence(steps []Step) Sequence {
	return Sequence{steps: steps}
}

// Len returns the number of steps.
func (q Sequence) Len() int {
	return len(q.steps)
}

// At returns the step at index i. It panics on an out of range index, like
// slice indexing; callers bound-check against Len.
func (q Sequence) At(i int) Step {
	return q.steps[i]
}

// First returns the initial snapshot.
func (q Sequence) First() Step {
	return q.steps[0]
}

// Last returns the final (sorted) snapshot.
func (q Sequence) Last() Step {
	return q.steps[len(q.steps)-1]
}

// Steps returns a copy of the step list. The steps themselves are shared.
func (q Sequence) Steps() []Step {
	return slices.Clone(q.steps)
}

// Equal reports whether both sequences hold identical steps.
func (q Sequence) Equal(o Sequence) bool {
	return slices.EqualFunc(q.steps, o.steps, Step.Equal)
}

// Validate checks the sequence invariants against the input it was built from.
func (q Sequence) Validate(input []int) error {
	if len(q.steps) == 0 {
		return ErrEmptySequence
	}
	if !slices.Equal(q.steps[0].Array, input) {
		return ErrFirstMismatch
	}
	n := len(input)
	for i, s := range q.steps {
		if len(s.Array) != n {
			return fmt.Errorf("step %d: %w (%d != %d)", i, ErrLength, len(s.Array), n)
		}
		for _, h := range s.Highlights {
			if h < 0 || h >= n {
				return fmt.Errorf("step %d: highlight %d: %w", i, h, ErrIndex)
			}
		}
		if s.HasMarker() && (s.Marker < 0 || s.Marker >= n) {
			return fmt.Errorf("step %d: marker %d: %w", i, s.Marker, ErrIndex)
		}
	}
	if !slices.IsSorted(q.Last().Array) {
		return ErrNotSorted
	}
	return nil
}
