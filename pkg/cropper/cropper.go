// Package cropper finds the perforation frame printed around a stamp's artwork
// and crops the photo to it.
//
// The frame is a row of small filled circles along each side of the artwork.
// Crop binarizes the image, keeps the connected components shaped like such
// dots, and on each axis looks for the two densest, well separated lines of
// dot centers. The medians of those lines bound the crop rectangle.
package cropper

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/menta2k/stamp-cropper/pkg/types"
)

const (
	// linesPerAxis is the number of parallel perforation lines bounding an axis
	linesPerAxis = 2
	// minLinePoints is the minimum number of dots making up a usable line
	minLinePoints = 5
)

var (
	// ErrNoMarkers means no component was shaped like a perforation dot
	ErrNoMarkers = errors.New("no square-like components found that can contain a circle")
	// ErrNoDenseLines means the dots did not line up into two lines per axis
	ErrNoDenseLines = fmt.Errorf("didn't manage to find %d horizontal or vertical lines of at least %d circles", linesPerAxis, minLinePoints)
)

// CropResult contains the outcome of a single Crop call
type CropResult struct {
	// Image is the cropped image, or the source image when Rect is nil
	Image image.Image
	// Rect is the detected artwork rectangle in source coordinates
	Rect *types.Rect
	// Hypothesis is the frame hypothesis the result comes from
	Hypothesis FrameHypothesis
	// Log explains every decision taken while looking for the frame
	Log []string
	// DebugImage is only set in debug mode
	DebugImage *image.NRGBA
	// Failure is nil on success and wraps ErrNoMarkers or ErrNoDenseLines otherwise
	Failure error
}

// Cropped reports whether a crop rectangle was found
func (r CropResult) Cropped() bool {
	return r.Rect != nil
}

func (r *CropResult) logf(format string, args ...interface{}) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

func (r *CropResult) fail(err error) CropResult {
	r.Failure = err
	r.logf("%v", err)
	return *r
}

// Crop detects the perforation frame of a stamp photo and crops to it. Light
// dots are tried first, then dark ones. When neither works the result keeps
// the source image, a nil Rect and the diagnostics of both attempts.
//
// Crop never modifies img and is safe for concurrent use.
func Crop(img image.Image, debug bool) CropResult {
	gray := luminance(img)

	light := cropWithHypothesis(img, gray, FrameLight, debug)
	if light.Cropped() {
		return light
	}

	dark := cropWithHypothesis(img, gray, FrameDark, debug)
	if dark.Cropped() {
		return dark
	}

	light.Log = append(light.Log, dark.Log...)
	light.Failure = errors.Join(light.Failure, dark.Failure)
	return light
}

func cropWithHypothesis(source image.Image, gray *image.NRGBA, frame FrameHypothesis, debug bool) CropResult {
	result := CropResult{Image: source, Hypothesis: frame}
	result.logf("trying %v frame", frame)

	var overlay *debugOverlay
	if debug {
		overlay = newDebugOverlay(gray)
		result.DebugImage = overlay.img
	}

	mask := binarize(gray, frame)

	markers := extractMarkers(mask)
	overlay.drawCandidates(markers)
	if len(markers) == 0 {
		return result.fail(ErrNoMarkers)
	}

	target := estimateSize(markers)
	result.logf("target marker = %dx%d, max dev = %d", target.Width, target.Height, target.Deviation)

	markers = filterBySize(markers, target)
	overlay.drawAccepted(markers)
	result.logf("%d markers of target size", len(markers))

	xs, ys := centers(markers)
	xWindows := findDenseWindows(xs, target.Width, linesPerAxis)
	yWindows := findDenseWindows(ys, target.Height, linesPerAxis)

	rect, ok := resolveRect(xWindows, yWindows)
	if !ok {
		return result.fail(ErrNoDenseLines)
	}
	result.logf("result rect: %v", rect)

	b := source.Bounds()
	crop := image.Rect(rect.MinX, rect.MinY, rect.MaxX+1, rect.MaxY+1).Add(b.Min)
	result.Image = imaging.Crop(source, crop)
	result.Rect = &rect
	overlay.drawResult(rect)

	return result
}

// resolveRect turns two windows per axis into the crop rectangle. It fails if
// a window is missing or holds fewer than minLinePoints centers.
func resolveRect(xWindows, yWindows []*Window) (types.Rect, bool) {
	minX, maxX, ok := axisBounds(xWindows)
	if !ok {
		return types.Rect{}, false
	}
	minY, maxY, ok := axisBounds(yWindows)
	if !ok {
		return types.Rect{}, false
	}
	return types.NewRect(minX, minY, maxX-minX+1, maxY-minY+1), true
}

func axisBounds(windows []*Window) (lo, hi int, ok bool) {
	if len(windows) == 0 {
		return 0, 0, false
	}
	for i, w := range windows {
		if w == nil || w.Count < minLinePoints {
			return 0, 0, false
		}
		if i == 0 || w.Median < lo {
			lo = w.Median
		}
		if i == 0 || w.Median > hi {
			hi = w.Median
		}
	}
	return lo, hi, true
}
