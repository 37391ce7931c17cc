package cropper

import (
	"reflect"
	"testing"
)

func seq(from, to int) []int {
	var out []int
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}

func TestFindDenseWindowsEmpty(t *testing.T) {
	windows := findDenseWindows(nil, 5, 2)
	if len(windows) != 2 {
		t.Fatalf("Expected 2 windows, got %d", len(windows))
	}
	for i, w := range windows {
		if w != nil {
			t.Errorf("Expected window %d to be nil, got %+v", i, w)
		}
	}
}

func TestFindDenseWindowsSeparatesClusters(t *testing.T) {
	densest := []int{200, 201, 202, 203, 204, 204, 205}
	second := seq(100, 109)
	sparse := []int{300, 301, 302}

	var points []int
	points = append(points, sparse...)
	points = append(points, second...)
	points = append(points, densest...)

	windows := findDenseWindows(points, 5, 2)
	if windows[0] == nil || windows[1] == nil {
		t.Fatalf("Expected 2 windows, got %v", windows)
	}

	first := windows[0]
	if first.Start != 200 || first.End != 205 || first.Median != 203 || first.Count != 7 {
		t.Errorf("Unexpected first window %+v", first)
	}
	if !reflect.DeepEqual(first.Points, densest) {
		t.Errorf("Expected first window points %v, got %v", densest, first.Points)
	}

	// The second window must come from the other dense cluster, not from the
	// rest of the first one
	next := windows[1]
	if next.Start != 100 || next.End != 105 || next.Median != 102 || next.Count != 6 {
		t.Errorf("Unexpected second window %+v", next)
	}

	if d := abs(first.End - next.End); d < 5-1 {
		t.Errorf("Windows are too close: %d", d)
	}
}

func TestFindDenseWindowsThird(t *testing.T) {
	points := append(append(seq(100, 109), 200, 201, 202, 203, 204, 204, 205), 300, 301, 302)

	windows := findDenseWindows(points, 5, 3)
	last := windows[2]
	if last == nil {
		t.Fatal("Expected a third window")
	}
	if last.End != 302 || last.Count != 3 || last.Median != 301 {
		t.Errorf("Unexpected third window %+v", last)
	}
}

func TestFindDenseWindowsNotEnoughClusters(t *testing.T) {
	// A single cluster invalidates itself entirely
	windows := findDenseWindows([]int{10, 11, 12, 13}, 5, 2)
	for i, w := range windows {
		if w != nil {
			t.Errorf("Expected window %d to be nil, got %+v", i, w)
		}
	}
}

func TestFindDenseWindowsTieBreak(t *testing.T) {
	// Equal clusters: the earliest one wins
	windows := findDenseWindows([]int{50, 51, 52, 10, 11, 12}, 3, 2)
	if windows[0] == nil || windows[0].End != 12 {
		t.Fatalf("Expected first window to end at 12, got %+v", windows[0])
	}
	if windows[1] == nil || windows[1].End != 52 {
		t.Fatalf("Expected second window to end at 52, got %+v", windows[1])
	}
}

func TestFindDenseWindowsKeepsInput(t *testing.T) {
	points := []int{30, 10, 20}
	findDenseWindows(points, 2, 2)
	if !reflect.DeepEqual(points, []int{30, 10, 20}) {
		t.Errorf("Input was modified: %v", points)
	}
}
