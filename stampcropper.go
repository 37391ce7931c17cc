// Package stampcropper crops photos of postage stamps to their artwork.
//
// Many stamps are photographed together with the perforation frame printed
// around the artwork: a line of small white or black dots on each side. The
// cropper finds those dot lines and cuts the photo along them.
//
// Basic usage:
//
//	sc := stampcropper.New()
//
//	result, err := sc.CropFile(ctx, "s1.jpg", "s1_cropped.jpg", false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Rect != nil {
//		fmt.Println("cropped to", *result.Rect)
//	}
//
// The package is a thin layer over its components:
//
// 1. Cropper (pkg/cropper): frame detection and cropping of a decoded image
// 2. Vision (pkg/vision): connected component labeling of binary masks
// 3. Processing (pkg/processing): image loading, downloading and saving
// 4. Catalog (pkg/catalog) and Batch (pkg/batch): cropping a whole stamps database
//
// Images without a detectable frame are not an error: the result simply has
// no rectangle and the image is kept as it is.
package stampcropper

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/menta2k/stamp-cropper/pkg/batch"
	"github.com/menta2k/stamp-cropper/pkg/catalog"
	"github.com/menta2k/stamp-cropper/pkg/cropper"
	"github.com/menta2k/stamp-cropper/pkg/processing"
	"github.com/menta2k/stamp-cropper/pkg/types"
)

// Version of the stamp cropper library
const Version = "1.0.0"

// Options configures a StampCropper
type Options struct {
	// Save controls encoding of written images. Format is only used when the
	// output path has no extension.
	Save types.SaveOptions
	// Workers is the batch worker pool size, 0 means one per CPU
	Workers int
	// FetchTimeout bounds a single image download
	FetchTimeout time.Duration
	// UserAgent is sent with image downloads
	UserAgent string
	// MinImageSize rejects downloaded images smaller than this on either side
	MinImageSize int
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		Save:         types.SaveOptions{Format: "jpg", Quality: 90},
		FetchTimeout: 30 * time.Second,
		MinImageSize: 32,
	}
}

// StampCropper provides a high-level interface for cropping stamp images
type StampCropper struct {
	processor *processing.Processor
	options   Options
}

// New creates a new StampCropper with default options
func New() *StampCropper {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new StampCropper with custom options
func NewWithOptions(options Options) *StampCropper {
	return &StampCropper{
		processor: processing.NewProcessorWithOptions(options.FetchTimeout, options.UserAgent),
		options:   options,
	}
}

// Crop detects the perforation frame of img and crops to it
func (sc *StampCropper) Crop(img image.Image, debug bool) cropper.CropResult {
	return cropper.Crop(img, debug)
}

// LoadImage loads an image from file
func (sc *StampCropper) LoadImage(path string) (image.Image, error) {
	return sc.processor.LoadImage(path)
}

// SaveImage saves an image to file, picking the format from its extension
func (sc *StampCropper) SaveImage(img image.Image, path string) error {
	return sc.processor.SaveImage(img, path, sc.saveOptions(path))
}

func (sc *StampCropper) saveOptions(path string) types.SaveOptions {
	opts := sc.options.Save
	if filepath.Ext(path) != "" || opts.Format == "" {
		opts.Format = processing.FormatFromPath(path)
	}
	if opts.Quality == 0 {
		opts.Quality = DefaultOptions().Save.Quality
	}
	return opts
}

// CropFile crops the image at inputPath, a file path or an http(s) URL, and
// writes the outcome to outputPath. When no frame is found the original image
// is written unchanged.
func (sc *StampCropper) CropFile(ctx context.Context, inputPath, outputPath string, debug bool) (cropper.CropResult, error) {
	img, err := sc.processor.LoadImageSmart(ctx, inputPath)
	if err != nil {
		return cropper.CropResult{}, fmt.Errorf("failed to load image: %w", err)
	}

	result := sc.Crop(img, debug)
	if err := sc.SaveImage(result.Image, outputPath); err != nil {
		return result, fmt.Errorf("failed to save image: %w", err)
	}
	return result, nil
}

// FetchAndCrop downloads an image, crops it right away and stores it at dst
func (sc *StampCropper) FetchAndCrop(ctx context.Context, url, dst string) (cropper.CropResult, error) {
	img, err := sc.processor.LoadImageFromURL(ctx, url)
	if err != nil {
		return cropper.CropResult{}, err
	}

	if sc.options.MinImageSize > 0 {
		if err := sc.processor.ValidateImage(img, sc.options.MinImageSize); err != nil {
			return cropper.CropResult{}, fmt.Errorf("image validation failed: %w", err)
		}
	}

	result := sc.Crop(img, false)
	if err := sc.SaveImage(result.Image, dst); err != nil {
		return result, fmt.Errorf("failed to save image: %w", err)
	}
	return result, nil
}

// CropCatalog crops every image listed in the stamps.json of dbDir in place
func (sc *StampCropper) CropCatalog(ctx context.Context, dbDir string) ([]batch.Result, batch.Summary, error) {
	stamps, err := catalog.LoadFromDir(dbDir)
	if err != nil {
		return nil, batch.Summary{}, err
	}
	stamps.SortEntries()

	results := batch.Run(ctx, stamps.ImagePaths(dbDir), sc.options.Workers, batch.CropInPlace(sc.processor, sc.saveOptions("")))
	return results, batch.Summarize(results), nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}

