package cropper

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/menta2k/stamp-cropper/pkg/types"
)

var (
	candidateColor = color.NRGBA{0, 255, 0, 255}
	acceptedColor  = color.NRGBA{255, 0, 0, 255}
	resultColor    = color.NRGBA{131, 10, 111, 255}
)

// debugOverlay annotates a copy of the grayscale source. A nil overlay draws nothing.
type debugOverlay struct {
	img *image.NRGBA
}

func newDebugOverlay(gray *image.NRGBA) *debugOverlay {
	return &debugOverlay{img: imaging.Clone(gray)}
}

func (o *debugOverlay) drawCandidates(markers []Marker) {
	if o == nil {
		return
	}
	for _, m := range markers {
		o.drawRect(m.MinX, m.MinY, m.MinX+m.Width, m.MinY+m.Height, candidateColor)
	}
}

func (o *debugOverlay) drawAccepted(markers []Marker) {
	if o == nil {
		return
	}
	for _, m := range markers {
		o.drawRect(m.MinX, m.MinY, m.MaxX, m.MaxY, acceptedColor)
	}
}

func (o *debugOverlay) drawResult(r types.Rect) {
	if o == nil {
		return
	}
	o.drawRect(r.MinX, r.MinY, r.MaxX, r.MaxY, resultColor)
}

// drawRect draws a one pixel outline with inclusive corners
func (o *debugOverlay) drawRect(x0, y0, x1, y1 int, c color.NRGBA) {
	o.drawHLine(y0, x0, x1, c)
	o.drawHLine(y1, x0, x1, c)
	o.drawVLine(x0, y0, y1, c)
	o.drawVLine(x1, y0, y1, c)
}

func (o *debugOverlay) drawHLine(y, x0, x1 int, c color.NRGBA) {
	b := o.img.Bounds()
	if y < 0 || y >= b.Dy() {
		return
	}
	x0, x1 = max(x0, 0), min(x1, b.Dx()-1)
	for x := x0; x <= x1; x++ {
		o.img.SetNRGBA(x, y, c)
	}
}

func (o *debugOverlay) drawVLine(x, y0, y1 int, c color.NRGBA) {
	b := o.img.Bounds()
	if x < 0 || x >= b.Dx() {
		return
	}
	y0, y1 = max(y0, 0), min(y1, b.Dy()-1)
	for y := y0; y <= y1; y++ {
		o.img.SetNRGBA(x, y, c)
	}
}
