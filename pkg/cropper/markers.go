package cropper

import (
	"image"

	"github.com/menta2k/stamp-cropper/pkg/types"
	"github.com/menta2k/stamp-cropper/pkg/vision"
)

// Shape filter for a perforation dot's connected component
const (
	minAspectRatio = 0.8
	maxAspectRatio = 1.2
	minFillRatio   = 0.7
	minMarkerArea  = 9

	// Allowed size deviation is 1/sizeDeviationDivisor of the target size, rounded up
	sizeDeviationDivisor = 5
)

// Marker is a connected component accepted as one perforation dot
type Marker struct {
	types.Rect
	Area int
}

func newMarker(c vision.Component) Marker {
	return Marker{
		Rect: types.NewRect(c.MinX, c.MinY, c.Width, c.Height),
		Area: c.Area,
	}
}

// isDotLike reports whether a component could hold a filled circle: a nearly
// square bounding box that is mostly covered and not too small
func isDotLike(c vision.Component) bool {
	ratio := c.AspectRatio()
	return ratio >= minAspectRatio && ratio <= maxAspectRatio &&
		c.FillRatio() >= minFillRatio &&
		c.Area >= minMarkerArea
}

// extractMarkers labels the mask and keeps the dot-like components
func extractMarkers(mask *image.Gray) []Marker {
	var markers []Marker
	for _, c := range vision.Label(mask) {
		if isDotLike(c) {
			markers = append(markers, newMarker(c))
		}
	}
	return markers
}

// sizeTarget is the expected dot size estimated from a set of markers
type sizeTarget struct {
	Width     int
	Height    int
	Deviation int
}

func estimateSize(markers []Marker) sizeTarget {
	widths := make([]int, len(markers))
	heights := make([]int, len(markers))
	for i, m := range markers {
		widths[i] = m.Width
		heights[i] = m.Height
	}

	target := sizeTarget{Width: median(widths), Height: median(heights)}
	target.Deviation = (max(target.Width, target.Height) + sizeDeviationDivisor - 1) / sizeDeviationDivisor
	return target
}

func (t sizeTarget) accepts(m Marker) bool {
	return abs(m.Width-t.Width) <= t.Deviation && abs(m.Height-t.Height) <= t.Deviation
}

// filterBySize drops the markers whose size deviates from the target
func filterBySize(markers []Marker, target sizeTarget) []Marker {
	var filtered []Marker
	for _, m := range markers {
		if target.accepts(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func centers(markers []Marker) (xs, ys []int) {
	xs = make([]int, len(markers))
	ys = make([]int, len(markers))
	for i, m := range markers {
		xs[i] = m.CenterX
		ys[i] = m.CenterY
	}
	return xs, ys
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
