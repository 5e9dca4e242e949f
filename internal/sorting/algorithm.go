// Package sorting turns an input array into the full, precomputed step
// sequence of a classic sorting algorithm.
//
// Every generator is a pure function: it copies its input, records a
// snapshot for each comparison, swap, shift, merge, partition or placement,
// and returns a step.Sequence whose first step is the input verbatim and whose
// last step is sorted. Inputs of length 0 or 1 yield a single step.
package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/llehouerou/sortviz/internal/step"
)

// Algorithm identifies one of the supported sorting algorithms.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
	Counting
	Radix
	Bucket

	algorithmCount
)

// Family groups algorithms by how they produce steps.
type Family int

const (
	FamilyComparisonExchange Family = iota
	FamilyDivideAndConquer
	FamilyHeap
	FamilyDistribution
)

// Generator maps an input array to its step sequence.
type Generator interface {
	Generate(input []int) step.Sequence
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(input []int) step.Sequence

// Generate calls f(input).
func (f GeneratorFunc) Generate(input []int) step.Sequence {
	return f(input)
}

type algorithmInfo struct {
	id     string
	name   string
	family Family
	gen    GeneratorFunc
}

var algorithms = [algorithmCount]algorithmInfo{
	Bubble:    {"bubble", "Bubble Sort", FamilyComparisonExchange, bubbleSteps},
	Selection: {"selection", "Selection Sort", FamilyComparisonExchange, selectionSteps},
	Insertion: {"insertion", "Insertion Sort", FamilyComparisonExchange, insertionSteps},
	Merge:     {"merge", "Merge Sort", FamilyDivideAndConquer, mergeSteps},
	Quick:     {"quick", "Quick Sort", FamilyDivideAndConquer, quickSteps},
	Heap:      {"heap", "Heap Sort", FamilyHeap, heapSteps},
	Counting:  {"counting", "Counting Sort", FamilyDistribution, countingSteps},
	Radix:     {"radix", "Radix Sort", FamilyDistribution, radixSteps},
	Bucket:    {"bucket", "Bucket Sort", FamilyDistribution, bucketSteps},
}

// All returns every algorithm in display order.
func All() []Algorithm {
	all := make([]Algorithm, algorithmCount)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// String returns the display name.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return algorithms[a].name
}

// ID returns the identifier used in configuration and on the command line.
func (a Algorithm) ID() string {
	if !a.Valid() {
		return ""
	}
	return algorithms[a].id
}

// Family returns the algorithm family.
func (a Algorithm) Family() Family {
	if !a.Valid() {
		return FamilyComparisonExchange
	}
	return algorithms[a].family
}

// RequiresNonNegative reports whether inputs must be non-negative integers.
// Distribution sorts index arrays by value.
func (a Algorithm) RequiresNonNegative() bool {
	return a.Family() == FamilyDistribution
}

// Next returns the following algorithm, wrapping around.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % algorithmCount
}

// Prev returns the preceding algorithm, wrapping around.
func (a Algorithm) Prev() Algorithm {
	return (a + algorithmCount - 1) % algorithmCount
}

// For returns the generator for a. Unknown algorithms get a generator that
// records the input followed by its sorted form, so the sequence still ends
// sorted.
func For(a Algorithm) Generator {
	if !a.Valid() {
		return GeneratorFunc(func(input []int) step.Sequence {
			r := newRecorder(input)
			sorted := slices.Clone(input)
			slices.Sort(sorted)
			return r.finish(sorted)
		})
	}
	return algorithms[a].gen
}

// Generate runs the generator for a on input.
func Generate(a Algorithm, input []int) step.Sequence {
	return For(a).Generate(input)
}

// ParseAlgorithm accepts an identifier ("quick") or a display name
// ("Quick Sort"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, " sort")
	for i, info := range algorithms {
		if key == info.id {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}
