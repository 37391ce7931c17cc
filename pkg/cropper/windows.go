package cropper

import "sort"

// invalidated marks a window end that may no longer be selected
const invalidated = -1

// Window is a stretch [Start, End] of one axis holding a cluster of marker centers
type Window struct {
	Start  int
	End    int
	Points []int
	Median int
	Count  int
}

// newWindow collects the sorted points lying in [start, end]
func newWindow(start, end int, sorted []int) *Window {
	lo := sort.SearchInts(sorted, start)
	hi := sort.SearchInts(sorted, end+1)
	points := make([]int, hi-lo)
	copy(points, sorted[lo:hi])

	return &Window{
		Start:  start,
		End:    end,
		Points: points,
		Median: median(points),
		Count:  len(points),
	}
}

// findDenseWindows finds count windows of the given length holding the most
// points, each one clear of the previously selected ones by at least length.
// It returns count nil windows if the points cannot be split that way.
//
// Used to find the lines of perforation dots that frame a stamp.
func findDenseWindows(points []int, length, count int) []*Window {
	windows := make([]*Window, count)
	if len(points) == 0 {
		return windows
	}

	sorted := make([]int, len(points))
	copy(sorted, points)
	sort.Ints(sorted)

	// Number of points in the trailing window [p-length, p] of every point p
	counts := make([]int, len(sorted))
	head := 0
	for i, p := range sorted {
		for sorted[head] < p-length {
			head++
		}
		counts[i] = i - head + 1
	}

	for n := 0; n < count; n++ {
		best := 0
		for i, c := range counts {
			if c > counts[best] {
				best = i
			}
		}
		if counts[best] == invalidated {
			return make([]*Window, count)
		}

		end := sorted[best]
		windows[n] = newWindow(end-length, end, sorted)

		for i, q := range sorted {
			if end-length <= q && q <= end+length {
				counts[i] = invalidated
			}
		}
	}

	return windows
}
