package sorting

import (
	"fmt"
	"slices"

	"github.com/llehouerou/sortviz/internal/step"
)

// bubbleSteps records one step per comparison. All n-1 passes run even when
// a pass performs no swap, so the step count depends only on n.
func bubbleSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	for pass := range n - 1 {
		for j := 0; j < n-pass-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				r.record(arr, fmt.Sprintf("Pass %d: swapped %d and %d at indices %d and %d.",
					pass+1, arr[j], arr[j+1], j, j+1), j, j+1)
				continue
			}
			r.record(arr, fmt.Sprintf("Pass %d: compared %d and %d at indices %d and %d, no swap needed.",
				pass+1, arr[j], arr[j+1], j, j+1), j, j+1)
		}
	}

	return r.finish(arr)
}

// selectionSteps records one step per comparison with the running minimum as
// marker, plus a swap step whenever the minimum is not already in place.
func selectionSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	for i := range n - 1 {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if arr[j] < arr[minIdx] {
				minIdx = j
				r.recordMarked(arr, minIdx, fmt.Sprintf("Compared %d at index %d: new minimum.", arr[j], j), i, j)
				continue
			}
			r.recordMarked(arr, minIdx, fmt.Sprintf("Compared %d at index %d with minimum %d.",
				arr[j], j, arr[minIdx]), i, j)
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
			r.recordMarked(arr, i, fmt.Sprintf("Swapped minimum %d into index %d.", arr[i], i), i, minIdx)
		}
	}

	return r.finish(arr)
}

// insertionSteps records a step per comparison and per shift, then one
// placement step per key. The key moves one slot left on every shift so each
// snapshot stays a permutation.
func insertionSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	for i := 1; i < n; i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 {
			if arr[j] <= key {
				r.recordMarked(arr, j+1, fmt.Sprintf("Compared %d with key %d: key stays at index %d.",
					arr[j], key, j+1), j, j+1)
				break
			}
			r.recordMarked(arr, j+1, fmt.Sprintf("Compared %d with key %d: shift needed.", arr[j], key), j, j+1)
			arr[j+1] = arr[j]
			arr[j] = key
			r.recordMarked(arr, j, fmt.Sprintf("Shifted %d right to index %d.", arr[j+1], j+1), j, j+1)
			j--
		}
		r.recordMarked(arr, j+1, fmt.Sprintf("Placed key %d at index %d.", key, j+1), j+1)
	}

	return r.finish(arr)
}
