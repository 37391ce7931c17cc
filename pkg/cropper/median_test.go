package cropper

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"single", []int{5}, 5},
		{"odd unsorted", []int{9, 1, 5}, 5},
		{"even truncates", []int{1, 2}, 1},
		{"even exact", []int{3, 11, 4, 10}, 7},
		{"even odd sum", []int{10, 9, 12, 11}, 10},
		{"duplicates", []int{9, 9, 9, 10}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []int{3, 1, 2}
	median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("median modified its input: %v", values)
	}
}
