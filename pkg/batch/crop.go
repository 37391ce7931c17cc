package batch

import (
	"context"
	"fmt"

	"github.com/menta2k/stamp-cropper/pkg/cropper"
	"github.com/menta2k/stamp-cropper/pkg/processing"
	"github.com/menta2k/stamp-cropper/pkg/types"
)

// CropInPlace returns a job that crops an image to its perforation frame and
// overwrites the file with the result. Images without a detectable frame are
// left untouched. The file keeps its format; quality settings come from opts.
func CropInPlace(p *processing.Processor, opts types.SaveOptions) Job {
	return func(ctx context.Context, path string) Result {
		format := processing.FormatFromPath(path)
		if !processing.SupportedFormat(format) {
			return Result{Err: fmt.Errorf("cannot write %s images in place", format)}
		}

		img, err := p.LoadImage(path)
		if err != nil {
			return Result{Err: fmt.Errorf("failed to load image: %w", err)}
		}

		crop := cropper.Crop(img, false)
		if !crop.Cropped() {
			return Result{}
		}

		save := opts
		save.Format = format
		if err := p.SaveImage(crop.Image, path, save); err != nil {
			return Result{Rect: crop.Rect, Err: fmt.Errorf("failed to save cropped image: %w", err)}
		}

		b := img.Bounds()
		return Result{
			Cropped:  true,
			Rect:     crop.Rect,
			Coverage: float64(crop.Rect.Area()) / float64(b.Dx()*b.Dy()),
		}
	}
}
