package colour

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPaletteAverage(t *testing.T) {
	tests := []struct {
		name    string
		colours []Colour
		want    Colour
	}{
		{name: "empty", colours: nil, want: Transparent},
		{name: "single", colours: []Colour{Opaque(1, 2, 3)}, want: Opaque(1, 2, 3)},
		{name: "black and white", colours: []Colour{Black, White}, want: Opaque(128, 128, 128)},
		{name: "rounds to nearest", colours: []Colour{Opaque(0, 0, 0), Opaque(1, 1, 2), Opaque(1, 1, 2)}, want: Opaque(1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPalette(tt.colours).Average(); got != tt.want {
				t.Errorf("Average() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteUnique(t *testing.T) {
	palette := NewPalette([]Colour{White, Black, White, New(0, 0, 0, 0), Black})
	want := []Colour{White, Black, New(0, 0, 0, 0)}

	if diff := cmp.Diff(want, palette.Unique().Colours); diff != "" {
		t.Errorf("Unique() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]Colour{Opaque(14, 115, 123)})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() failed: %v", err)
	}

	var got PaletteJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := PaletteJSON{
		Count: 1,
		Colours: []ColourJSON{{
			Hex:         "#0e737b",
			ARGB:        0xff0e737b,
			Colour:      Opaque(14, 115, 123),
			HSL:         HSL{H: 184, S: 80, L: 27},
			Dark:        true,
			Compactable: false,
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToJSON() mismatch (-want +got):\n%s", diff)
	}
}
