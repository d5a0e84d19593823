package colour

import (
	"image/color"
	"math"
	"testing"
)

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b color.Color
		want float64
	}{
		{name: "black on white", a: Black, b: White, want: 21},
		{name: "order independent", a: White, b: Black, want: 21},
		{name: "same colour", a: Opaque(14, 115, 123), b: Opaque(14, 115, 123), want: 1},
		{name: "mixed types", a: color.RGBA{R: 255, G: 255, B: 255, A: 255}, b: Black, want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.a, tt.b); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ContrastRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(Black); got != 0 {
		t.Errorf("Luminance(Black) = %v, want 0", got)
	}
	if got := Luminance(White); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(White) = %v, want 1", got)
	}
}

func TestNearest(t *testing.T) {
	candidates := []Colour{Black, White, Opaque(255, 0, 0)}

	if got := Nearest(Opaque(200, 10, 10), candidates); got != 2 {
		t.Errorf("Nearest() = %d, want 2", got)
	}
	if got := Nearest(Opaque(10, 10, 10), candidates); got != 0 {
		t.Errorf("Nearest() = %d, want 0", got)
	}
	if got := Nearest(White, nil); got != -1 {
		t.Errorf("Nearest() on empty = %d, want -1", got)
	}
}
