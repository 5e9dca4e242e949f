package sorting

import (
	"fmt"
	"math"
	"slices"

	"github.com/llehouerou/sortviz/internal/step"
)

// Distribution sorts index by value. Inputs are expected to be validated as
// non-negative upstream; a negative minimum is used as an offset so the
// generators stay total.
func valueBounds(arr []int) (offset, maxValue int) {
	for _, v := range arr {
		offset = min(offset, v)
		maxValue = max(maxValue, v)
	}
	return offset, maxValue
}

func newOutput(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = step.Hole
	}
	return out
}

// countingSteps records the counting, cumulative, placement and copy-back
// phases of counting sort, one step per micro-operation.
func countingSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	offset, maxValue := valueBounds(arr)
	count := make([]int, maxValue-offset+1)
	output := newOutput(n)

	for i, v := range arr {
		count[v-offset]++
		r.push(step.Step{
			Array:      arr,
			Highlights: []int{i},
			Marker:     step.NoMarker,
			Note:       fmt.Sprintf("Counting occurrences of %d.", v),
			Counts:     count,
		})
	}

	for k := 1; k < len(count); k++ {
		count[k] += count[k-1]
		r.push(step.Step{
			Array:  arr,
			Marker: step.NoMarker,
			Note:   fmt.Sprintf("Cumulative count at %d: %d.", k+offset, count[k]),
			Counts: count,
		})
	}

	for i := n - 1; i >= 0; i-- {
		v := arr[i]
		count[v-offset]--
		pos := count[v-offset]
		output[pos] = v
		r.push(step.Step{
			Array:      arr,
			Highlights: []int{i},
			Marker:     pos,
			Note:       fmt.Sprintf("Placing %d at position %d.", v, pos+1),
			Counts:     count,
			Output:     output,
		})
	}

	for i := range arr {
		arr[i] = output[i]
		r.push(step.Step{
			Array:      arr,
			Highlights: []int{i},
			Marker:     step.NoMarker,
			Note:       fmt.Sprintf("Copying %d back to the array.", output[i]),
			Output:     output,
		})
	}

	return r.finish(arr)
}

// radixSteps runs a stable counting pass per decimal digit, least significant
// first, until max/place is zero.
func radixSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	offset, maxValue := valueBounds(arr)
	valueRange := maxValue - offset
	digit := func(v, place int) int {
		return (v - offset) / place % 10
	}

	for place := 1; valueRange/place > 0; place *= 10 {
		count := make([]int, 10)
		output := newOutput(n)

		for i, v := range arr {
			d := digit(v, place)
			count[d]++
			r.push(step.Step{
				Array:      arr,
				Highlights: []int{i},
				Marker:     step.NoMarker,
				Note:       fmt.Sprintf("Digit place %d: %d has digit %d.", place, v, d),
				Counts:     count,
			})
		}

		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		r.push(step.Step{
			Array:  arr,
			Marker: step.NoMarker,
			Note:   fmt.Sprintf("Digit place %d: cumulative digit counts.", place),
			Counts: count,
		})

		for i := n - 1; i >= 0; i-- {
			v := arr[i]
			d := digit(v, place)
			count[d]--
			pos := count[d]
			output[pos] = v
			r.push(step.Step{
				Array:      arr,
				Highlights: []int{i},
				Marker:     pos,
				Note:       fmt.Sprintf("Digit place %d: placing %d at position %d.", place, v, pos+1),
				Counts:     count,
				Output:     output,
			})
		}

		copy(arr, output)
		r.push(step.Step{
			Array:  arr,
			Marker: step.NoMarker,
			Note:   fmt.Sprintf("Digit place %d: pass complete.", place),
		})

		if place > math.MaxInt/10 {
			break
		}
	}

	return r.finish(arr)
}

// bucketSteps distributes values into floor(sqrt(n)) buckets by their ratio to
// the maximum, sorts each bucket and concatenates them in bucket order.
func bucketSteps(input []int) step.Sequence {
	arr := slices.Clone(input)
	r := newRecorder(arr)
	n := len(arr)
	if n < 2 {
		return r.sequence()
	}

	k := int(math.Sqrt(float64(n)))
	buckets := make([][]int, k)
	offset, maxValue := valueBounds(arr)
	valueRange := maxValue - offset
	bucketOf := func(v int) int {
		if valueRange == 0 {
			return 0
		}
		ratio := float64(v-offset) / float64(valueRange)
		return min(int(ratio*float64(k)), k-1)
	}

	for i, v := range arr {
		b := bucketOf(v)
		buckets[b] = append(buckets[b], v)
		r.push(step.Step{
			Array:      arr,
			Highlights: []int{i},
			Marker:     step.NoMarker,
			Note:       fmt.Sprintf("Placed %d into bucket %d.", v, b+1),
			Buckets:    buckets,
		})
	}

	for b := range buckets {
		slices.Sort(buckets[b])
		r.push(step.Step{
			Array:   arr,
			Marker:  step.NoMarker,
			Note:    fmt.Sprintf("Sorted bucket %d.", b+1),
			Buckets: buckets,
		})
	}

	idx := 0
	for b := range buckets {
		for _, v := range buckets[b] {
			arr[idx] = v
			r.push(step.Step{
				Array:      arr,
				Highlights: []int{idx},
				Marker:     step.NoMarker,
				Note:       fmt.Sprintf("Moved %d from bucket %d to the array.", v, b+1),
				Buckets:    buckets,
			})
			idx++
		}
	}

	return r.finish(arr)
}
