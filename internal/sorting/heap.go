package sorting

import (
	"fmt"
	"slices"

	"github.com/llehouerou/sortviz/internal/step"
)

// heapSteps builds a max-heap bottom-up, then repeatedly swaps the root with
// the last unsorted element and sifts the new root down. Every swap is a step
// highlighting both positions, with the sifted root as marker.
func heapSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	siftDown := func(root, size int) {
		for {
			largest := root
			left, right := 2*root+1, 2*root+2
			if left < size && arr[left] > arr[largest] {
				largest = left
			}
			if right < size && arr[right] > arr[largest] {
				largest = right
			}
			if largest == root {
				return
			}
			arr[root], arr[largest] = arr[largest], arr[root]
			r.recordMarked(arr, root, fmt.Sprintf("Heapify: swapped %d at index %d with child %d at index %d.",
				arr[largest], root, arr[root], largest), root, largest)
			root = largest
		}
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(i, n)
	}

	for end := n - 1; end > 0; end-- {
		arr[0], arr[end] = arr[end], arr[0]
		r.recordMarked(arr, 0, fmt.Sprintf("Moved heap maximum %d to index %d.", arr[end], end), 0, end)
		siftDown(0, end)
	}

	return r.finish(arr)
}
