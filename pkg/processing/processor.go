// Package processing loads and stores the images fed to the stamp cropper.
package processing

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/stamp-cropper/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Stamp-Cropper/1.0 (+https://github.com/menta2k/stamp-cropper)"
)

// Processor handles image loading and saving
type Processor struct {
	client    *http.Client
	userAgent string
}

// NewProcessor creates a new image processor with default download settings
func NewProcessor() *Processor {
	return NewProcessorWithOptions(defaultTimeout, defaultUserAgent)
}

// NewProcessorWithOptions creates an image processor with a custom download timeout and User-Agent
func NewProcessorWithOptions(timeout time.Duration, userAgent string) *Processor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Processor{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// LoadImageFromURL downloads and decodes an image from a URL
func (p *Processor) LoadImageFromURL(ctx context.Context, imageURL string) (image.Image, error) {
	data, err := p.DownloadImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return p.DecodeImage(data)
}

// DownloadImage fetches the raw bytes of an image from a URL
func (p *Processor) DownloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %s (only http and https are supported)", parsedURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: HTTP %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("URL does not point to an image (Content-Type: %s)", contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Registered decoders first
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	img, err := p.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadImageSmart loads an image from either a file path or URL
func (p *Processor) LoadImageSmart(ctx context.Context, source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.LoadImageFromURL(ctx, source)
	}
	return p.LoadImage(source)
}

// DecodeImage decodes an image from byte data with WebP support
func (p *Processor) DecodeImage(data []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	return nil, fmt.Errorf("image: unknown or unsupported format")
}

// SaveImage saves an image to a file with the specified format and quality.
// The image is encoded to a temporary file next to path first, so a failed
// save leaves an existing file untouched.
func (p *Processor) SaveImage(img image.Image, path string, opts types.SaveOptions) error {
	if !SupportedFormat(opts.Format) {
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := p.EncodeImage(tmp, img, opts); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions of %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// SupportedFormat reports whether EncodeImage can write format
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "webp", "png", "jpg", "jpeg":
		return true
	}
	return false
}

// EncodeImage writes an image in the requested format
func (p *Processor) EncodeImage(w io.Writer, img image.Image, opts types.SaveOptions) error {
	switch strings.ToLower(opts.Format) {
	case "webp":
		return webp.Encode(w, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(opts.Quality)})
	case "png":
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case "jpg", "jpeg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// FormatFromPath guesses the output format from a file extension
func FormatFromPath(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "jpeg":
		return "jpg"
	case "":
		return "jpg"
	default:
		return ext
	}
}

// ValidateImage checks that an image is at least minSize pixels on both sides
func (p *Processor) ValidateImage(img image.Image, minSize int) error {
	bounds := img.Bounds()
	if bounds.Dx() < minSize || bounds.Dy() < minSize {
		return fmt.Errorf("image too small: %dx%d (minimum: %d)",
			bounds.Dx(), bounds.Dy(), minSize)
	}
	return nil
}
