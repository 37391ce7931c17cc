package cropper

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FrameHypothesis tells which intensity extreme the perforation dots are printed in
type FrameHypothesis int

const (
	// FrameLight assumes white dots on a darker stamp
	FrameLight FrameHypothesis = iota
	// FrameDark assumes black dots on a lighter stamp
	FrameDark
)

const (
	lightThreshold = 230
	darkThreshold  = 80
)

func (f FrameHypothesis) String() string {
	switch f {
	case FrameLight:
		return "light"
	case FrameDark:
		return "dark"
	default:
		return fmt.Sprintf("FrameHypothesis(%d)", int(f))
	}
}

// luminance converts img to an 8-bit grayscale NRGBA image anchored at (0, 0)
func luminance(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// binarize thresholds a grayscale image into a foreground mask. It panics on a
// hypothesis other than FrameLight or FrameDark.
func binarize(gray *image.NRGBA, frame FrameHypothesis) *image.Gray {
	var foreground func(v uint8) bool
	switch frame {
	case FrameLight:
		foreground = func(v uint8) bool { return v > lightThreshold }
	case FrameDark:
		foreground = func(v uint8) bool { return v < darkThreshold }
	default:
		panic(fmt.Sprintf("cropper: unsupported frame hypothesis %v", frame))
	}

	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+w*4]
		dst := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := range dst {
			if foreground(src[x*4]) {
				dst[x] = 255
			}
		}
	}
	return mask
}
