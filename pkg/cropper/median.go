package cropper

import "sort"

// median returns the middle value of values. For an even count it is the mean
// of the two middle values truncated toward zero. values must not be empty.
func median(values []int) int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
