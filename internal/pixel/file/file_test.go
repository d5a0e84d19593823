package file

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/colourpick/internal/colour"
	"github.com/jmylchreest/colourpick/internal/pixel"
)

// testImage is 3x2:
//
//	red   green  blue
//	white black  clear
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	return img
}

func newSource(t *testing.T, img image.Image) *Source {
	t.Helper()
	src, err := New(img)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return src
}

func TestNewRejectsOversizedImage(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 70000, 1),
		image.Rect(0, 0, 1, 65536),
	} {
		if _, err := New(image.NewGray(r)); err == nil {
			t.Errorf("New(%v) should fail", r)
		}
	}

	if _, err := New(image.NewGray(image.Rect(0, 0, 65535, 1))); err != nil {
		t.Errorf("New() at the size limit failed: %v", err)
	}
}

func TestGetImage(t *testing.T) {
	src := newSource(t, testImage())

	got, err := pixel.SampleRect(src, 0, pixel.Rect{X: 1, Y: 0, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("SampleRect() failed: %v", err)
	}

	want := []colour.Colour{
		colour.Opaque(0, 255, 0), colour.Opaque(0, 0, 255),
		colour.Black, colour.Black,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SampleRect() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetImageOffsetBounds(t *testing.T) {
	full := testImage()
	sub := full.SubImage(image.Rect(1, 1, 3, 2))

	got, err := pixel.SamplePoint(newSource(t, sub), 0, pixel.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("SamplePoint() failed: %v", err)
	}
	if got != colour.Black {
		t.Errorf("SamplePoint() = %v, want black", got)
	}
}

func TestGetImageOutOfBounds(t *testing.T) {
	src := newSource(t, testImage())

	tests := []pixel.Rect{
		{X: 2, Y: 0, Width: 2, Height: 1},
		{X: -1, Y: 0, Width: 1, Height: 1},
		{X: 0, Y: 0, Width: 0, Height: 0},
		{X: 0, Y: 2, Width: 1, Height: 1},
	}
	for _, rect := range tests {
		if _, err := src.GetImage(0, rect); err == nil {
			t.Errorf("GetImage(%+v) should fail", rect)
		}
	}
}

func TestBounds(t *testing.T) {
	if got := newSource(t, testImage()).Bounds(); got != (pixel.Rect{Width: 3, Height: 2}) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	f.Close()

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := pixel.SamplePoint(src, 0, pixel.Point{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("SamplePoint() failed: %v", err)
	}
	if got != colour.Opaque(0, 0, 255) {
		t.Errorf("SamplePoint() = %v, want blue", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	for name, path := range map[string]string{
		"empty":     "",
		"missing":   filepath.Join(dir, "missing.png"),
		"directory": dir,
		"garbage":   garbage,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) should fail", path)
			}
		})
	}
}
