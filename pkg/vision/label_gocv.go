//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Label finds the 8-connected foreground components of mask using OpenCV.
// It panics if OpenCV cannot wrap the mask.
func Label(mask *image.Gray) []Component {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(data[y*w:(y+1)*w], mask.Pix[y*mask.Stride:y*mask.Stride+w])
	}

	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, data)
	if err != nil {
		panic(fmt.Sprintf("vision: cannot wrap %dx%d mask: %v", w, h, err))
	}
	defer src.Close()

	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	n := gocv.ConnectedComponentsWithStats(src, &labels, &stats, &centroids)

	// Label 0 is the background
	components := make([]Component, 0, n)
	for label := 1; label < n; label++ {
		components = append(components, Component{
			Label:  label,
			MinX:   int(stats.GetIntAt(label, int(gocv.CCStatLeft))),
			MinY:   int(stats.GetIntAt(label, int(gocv.CCStatTop))),
			Width:  int(stats.GetIntAt(label, int(gocv.CCStatWidth))),
			Height: int(stats.GetIntAt(label, int(gocv.CCStatHeight))),
			Area:   int(stats.GetIntAt(label, int(gocv.CCStatArea))),
		})
	}
	return components
}
