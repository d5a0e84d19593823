package colour

import "testing"

func TestHSLFromColour(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   HSL
	}{
		{name: "white", colour: New(0xff, 0xff, 0xff, 0xff), want: HSL{H: 0, S: 0, L: 100}},
		{name: "red", colour: New(0xff, 0xff, 0, 0), want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", colour: New(0xff, 0, 0xff, 0), want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", colour: New(0xff, 0, 0, 0xff), want: HSL{H: 240, S: 100, L: 50}},
		{name: "yellow", colour: New(0xff, 0xff, 0xff, 0), want: HSL{H: 60, S: 100, L: 50}},
		{name: "cyan", colour: New(0xff, 14, 115, 123), want: HSL{H: 184, S: 80, L: 27}},
		{name: "black", colour: Black, want: HSL{H: 0, S: 0, L: 0}},
		{name: "grey", colour: Opaque(128, 128, 128), want: HSL{H: 0, S: 0, L: 50}},
		{name: "magenta", colour: Opaque(255, 0, 255), want: HSL{H: 300, S: 100, L: 50}},
		{name: "aqua", colour: Opaque(0, 255, 255), want: HSL{H: 180, S: 100, L: 50}},
		{name: "alpha ignored", colour: New(0, 0xff, 0, 0), want: HSL{H: 0, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLFromColour(tt.colour); got != tt.want {
				t.Errorf("HSLFromColour(%v) = %+v, want %+v", tt.colour, got, tt.want)
			}
			if got := tt.colour.HSL(); got != tt.want {
				t.Errorf("HSL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The saturation formula is picked from the rounded lightness, so a colour
// with raw lightness just above one half still uses delta/(max+min).
func TestHSLSaturationUsesRoundedLightness(t *testing.T) {
	got := HSLFromColour(Opaque(255, 1, 1))
	want := HSL{H: 0, S: 99, L: 50}
	if got != want {
		t.Errorf("HSLFromColour() = %+v, want %+v", got, want)
	}
}

func TestHSLHueWrapsBelow360(t *testing.T) {
	got := HSLFromColour(Opaque(255, 0, 1))
	if got.H != 0 {
		t.Errorf("H = %v, want 0", got.H)
	}
}

func TestHSLRanges(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := Opaque(uint8(r), uint8(g), uint8(b))
				hsl := HSLFromColour(c)
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("%v: H = %v out of range", c, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("%v: S/L out of range: %+v", c, hsl)
				}
				if r == g && g == b && (hsl.H != 0 || hsl.S != 0) {
					t.Fatalf("%v: achromatic colour has H=%v S=%v", c, hsl.H, hsl.S)
				}
			}
		}
	}
}

func TestHSLString(t *testing.T) {
	if got := (HSL{H: 184, S: 80, L: 27}).String(); got != "hsl(184, 80%, 27%)" {
		t.Errorf("String() = %q", got)
	}
}

// Hues landing on .5 in single precision round down for these colours.
func TestHSLHalfwayHues(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{hex: "#001118", want: HSL{H: 197, S: 100, L: 5}},
		{hex: "#001801", want: HSL{H: 123, S: 100, L: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := ParseHex(tt.hex)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.hex, err)
			}
			if got := HSLFromColour(c); got != tt.want {
				t.Errorf("HSLFromColour(%s) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}
