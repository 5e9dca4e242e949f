package step

// Scale is the height the maximum value maps to.
const Scale = 100

// Normalize scales values so the maximum maps to Scale. When the maximum is
// zero or negative the values are returned unscaled.
func Normalize(values []int) []float64 {
	out := make([]float64, len(values))
	maxValue := 0
	for _, v := range values {
		maxValue = max(maxValue, v)
	}
	for i, v := range values {
		if maxValue == 0 {
			out[i] = float64(v)
			continue
		}
		out[i] = float64(v) / float64(maxValue) * Scale
	}
	return out
}
