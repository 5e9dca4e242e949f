package sorting

import (
	"fmt"
	"slices"

	"github.com/llehouerou/sortviz/internal/step"
)

// mergeSteps runs a top-down merge sort and records one step per merge, with
// the merged range highlighted.
func mergeSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	if len(arr) < 2 {
		return r.sequence()
	}

	tmp := make([]int, 0, len(arr))
	var sortRange func(left, right int)
	sortRange = func(left, right int) {
		if left >= right {
			return
		}
		mid := left + (right-left)/2
		sortRange(left, mid)
		sortRange(mid+1, right)

		tmp = tmp[:0]
		i, j := left, mid+1
		for i <= mid && j <= right {
			// <= keeps equal elements in input order.
			if arr[i] <= arr[j] {
				tmp = append(tmp, arr[i])
				i++
			} else {
				tmp = append(tmp, arr[j])
				j++
			}
		}
		tmp = append(tmp, arr[i:mid+1]...)
		tmp = append(tmp, arr[j:right+1]...)
		copy(arr[left:], tmp)

		r.record(arr, fmt.Sprintf("Merged [%d..%d] and [%d..%d].", left, mid, mid+1, right),
			span(left, right)...)
	}
	sortRange(0, len(arr)-1)

	return r.finish(arr)
}

// quickSteps runs quicksort with a Lomuto partition around the last element
// of each subrange and records one step per completed partition, marking the
// pivot's final index.
func quickSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	if len(arr) < 2 {
		return r.sequence()
	}

	partition := func(low, high int) int {
		pivot := arr[high]
		i := low - 1
		for j := low; j < high; j++ {
			if arr[j] <= pivot {
				i++
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
		arr[i+1], arr[high] = arr[high], arr[i+1]
		return i + 1
	}

	var sortRange func(low, high int)
	sortRange = func(low, high int) {
		if low >= high {
			return
		}
		p := partition(low, high)
		r.recordMarked(arr, p, fmt.Sprintf("Partitioned [%d..%d] around pivot %d, now at index %d.",
			low, high, arr[p], p), span(low, high)...)
		sortRange(low, p-1)
		sortRange(p+1, high)
	}
	sortRange(0, len(arr)-1)

	return r.finish(arr)
}
