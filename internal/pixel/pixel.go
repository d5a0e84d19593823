// Package pixel decodes raw window pixel data into colours.
//
// A Source performs the actual round trip to the display server. This
// package only enforces the pixel format contract: 24-bit true colour,
// four bytes per pixel in blue, green, red, padding order, row-major.
package pixel

import (
	"errors"
	"fmt"
	"image"

	"github.com/jmylchreest/colourpick/internal/colour"
)

// BytesPerPixel is the size of one pixel group in a 24-bit ZPixmap.
const BytesPerPixel = 4

// TrueColourDepth is the only depth Decode accepts.
const TrueColourDepth = 24

// ErrUnsupportedPixelFormat is returned when a source reports a depth other
// than 24-bit true colour.
var ErrUnsupportedPixelFormat = errors.New("unsupported pixel format")

// FormatError carries the depth that was rejected.
type FormatError struct {
	Depth uint8
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: depth %d (want %d)", ErrUnsupportedPixelFormat, e.Depth, TrueColourDepth)
}

// Unwrap allows errors.Is(err, ErrUnsupportedPixelFormat).
func (e *FormatError) Unwrap() error {
	return ErrUnsupportedPixelFormat
}

// Window identifies a window on the display server.
type Window uint32

// Point is a position relative to a window's origin.
type Point struct {
	X, Y int16
}

// Rect is a region relative to a window's origin.
type Rect struct {
	X, Y          int16
	Width, Height uint16
}

// Area returns the number of pixels covered by the rect.
func (r Rect) Area() int {
	return int(r.Width) * int(r.Height)
}

// Bounds returns the rect as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}

// PointRect returns the 1x1 rect at p.
func PointRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}
}

// Image is the raw reply of a Source.
type Image struct {
	Depth uint8
	Data  []byte
}

// Source retrieves raw pixel data for a window region.
// GetImage is a single blocking round trip; retries and timeouts are the
// caller's business.
type Source interface {
	GetImage(window Window, rect Rect) (Image, error)
}

// Decode converts raw pixel data into colours in buffer order.
// Every colour is opaque since the format carries no usable alpha.
// A trailing group shorter than BytesPerPixel is ignored.
func Decode(img Image) ([]colour.Colour, error) {
	if img.Depth != TrueColourDepth {
		return nil, &FormatError{Depth: img.Depth}
	}

	data := img.Data
	colours := make([]colour.Colour, 0, len(data)/BytesPerPixel)
	for i := 0; i+BytesPerPixel <= len(data); i += BytesPerPixel {
		colours = append(colours, colour.New(0xff, data[i+2], data[i+1], data[i]))
	}

	return colours, nil
}

// SampleRect returns the colours of rect in window, row-major.
func SampleRect(src Source, window Window, rect Rect) ([]colour.Colour, error) {
	img, err := src.GetImage(window, rect)
	if err != nil {
		return nil, fmt.Errorf("failed to get image for window %#x: %w", uint32(window), err)
	}

	return Decode(img)
}

// SamplePoint returns the colour of the pixel at p in window.
func SamplePoint(src Source, window Window, p Point) (colour.Colour, error) {
	colours, err := SampleRect(src, window, PointRect(p))
	if err != nil {
		return colour.Colour{}, err
	}
	if len(colours) != 1 {
		return colour.Colour{}, fmt.Errorf("expected 1 pixel at (%d, %d), got %d", p.X, p.Y, len(colours))
	}

	return colours[0], nil
}

// ToImage lays out colours sampled from rect as an image.
// Missing trailing pixels are left transparent.
func ToImage(rect Rect, colours []colour.Colour) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(rect.Width), int(rect.Height)))
	for i, c := range colours {
		if i >= rect.Area() {
			break
		}
		off := i * 4
		img.Pix[off] = c.R
		img.Pix[off+1] = c.G
		img.Pix[off+2] = c.B
		img.Pix[off+3] = c.A
	}
	return img
}
