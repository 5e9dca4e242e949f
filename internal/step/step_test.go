package step

import (
	"errors"
	"testing"
)

func TestStep_HasMarker(t *testing.T) {
	if (Step{Marker: NoMarker}).HasMarker() {
		t.Error("NoMarker step reports a marker")
	}
	if !(Step{Marker: 0}).HasMarker() {
		t.Error("marker 0 not reported")
	}
}

func TestStep_CloneIsDeep(t *testing.T) {
	s := Step{
		Array:      []int{3, 1, 2},
		Highlights: []int{0, 1},
		Marker:     2,
		Note:       "swap",
		Buckets:    [][]int{{1}, {2, 3}},
	}
	c := s.Clone()
	c.Array[0] = 99
	c.Buckets[1][0] = 99

	if s.Array[0] != 3 {
		t.Errorf("Array shared after Clone: %v", s.Array)
	}
	if s.Buckets[1][0] != 2 {
		t.Errorf("Buckets shared after Clone: %v", s.Buckets)
	}
	if !s.Equal(s.Clone()) {
		t.Error("Clone not Equal to original")
	}
}

func TestSequence_Validate(t *testing.T) {
	input := []int{2, 1}
	tests := []struct {
		name  string
		steps []Step
		want  error
	}{
		{"empty", nil, ErrEmptySequence},
		{"first mismatch", []Step{{Array: []int{1, 2}, Marker: NoMarker}}, ErrFirstMismatch},
		{"unsorted last", []Step{{Array: []int{2, 1}, Marker: NoMarker}}, ErrNotSorted},
		{"length drift", []Step{
			{Array: []int{2, 1}, Marker: NoMarker},
			{Array: []int{1, 2, 3}, Marker: NoMarker},
		}, ErrLength},
		{"bad highlight", []Step{
			{Array: []int{2, 1}, Marker: NoMarker},
			{Array: []int{1, 2}, Highlights: []int{2}, Marker: NoMarker},
		}, ErrIndex},
		{"bad marker", []Step{
			{Array: []int{2, 1}, Marker: NoMarker},
			{Array: []int{1, 2}, Marker: 5},
		}, ErrIndex},
		{"valid", []Step{
			{Array: []int{2, 1}, Marker: NoMarker},
			{Array: []int{1, 2}, Highlights: []int{0, 1}, Marker: NoMarker},
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSequence(tt.steps).Validate(input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSequence_StepsReturnsCopy(t *testing.T) {
	q := NewSequence([]Step{{Array: []int{1}, Marker: NoMarker}})
	steps := q.Steps()
	steps[0] = Step{Note: "changed"}

	if q.At(0).Note != "" {
		t.Error("Steps() exposed the internal slice")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []float64
	}{
		{"max maps to 100", []int{5, 10, 0}, []float64{50, 100, 0}},
		{"all zero unscaled", []int{0, 0}, []float64{0, 0}},
		{"empty", []int{}, []float64{}},
		{"single", []int{7}, []float64{100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize(%v)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
