// Package file implements pixel.Source over a saved screenshot, so colours
// can be sampled without a running display server.
package file

import (
	"fmt"
	"image"
	"image/color"
	"math"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/colourpick/internal/pixel"
)

// Source serves pixels from a decoded image. The window id is ignored;
// the image acts as a single window whose origin is its top-left corner.
type Source struct {
	img image.Image
}

// New wraps an already decoded image. Both sides must fit a pixel.Rect.
func New(img image.Image) (*Source, error) {
	b := img.Bounds()
	if b.Dx() > math.MaxUint16 || b.Dy() > math.MaxUint16 {
		return nil, fmt.Errorf("image too large: %dx%d (maximum %dx%d)", b.Dx(), b.Dy(), math.MaxUint16, math.MaxUint16)
	}
	return &Source{img: img}, nil
}

// Load decodes an image file from path.
// Supported formats: JPEG, PNG, GIF, BMP, TIFF, WebP.
func Load(path string) (*Source, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return New(img)
}

// Bounds returns the whole image as a rect.
func (s *Source) Bounds() pixel.Rect {
	b := s.img.Bounds()
	return pixel.Rect{Width: uint16(b.Dx()), Height: uint16(b.Dy())}
}

// GetImage implements pixel.Source. The rect must lie inside the image.
// Pixels are flattened onto black, as a display server would show them.
func (s *Source) GetImage(_ pixel.Window, rect pixel.Rect) (pixel.Image, error) {
	b := s.img.Bounds()
	r := rect.Bounds().Add(b.Min)
	if r.Empty() || !r.In(b) {
		return pixel.Image{}, fmt.Errorf("rect %v outside image bounds %v", rect.Bounds(), b.Sub(b.Min))
	}

	data := make([]byte, 0, rect.Area()*pixel.BytesPerPixel)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.RGBAModel.Convert(s.img.At(x, y)).(color.RGBA)
			data = append(data, c.B, c.G, c.R, 0)
		}
	}

	return pixel.Image{Depth: pixel.TrueColourDepth, Data: data}, nil
}
