package colour

import (
	"fmt"
	"math"
)

// HSL is a hue, saturation, lightness triple derived from a Colour.
// H is in degrees [0, 360); S and L are percentages [0, 100].
// All three are rounded to whole numbers.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the value in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", hsl.H, hsl.S, hsl.L)
}

// HSL converts the colour to HSL. Alpha is ignored.
func (c Colour) HSL() HSL {
	return HSLFromColour(c)
}

// HSLFromColour converts RGB to HSL.
// https://en.wikipedia.org/wiki/HSL_and_HSV#From_RGB
//
// The arithmetic runs in float32: hues and percentages that land near .5
// round differently in double precision. Explicit float32 conversions keep
// the compiler from fusing multiply-adds.
func HSLFromColour(c Colour) HSL {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	maxVal := max(r, g, b)
	minVal := min(r, g, b)

	l := round32(float32(float32(maxVal+minVal)/2) * 100)

	// Achromatic.
	if maxVal == minVal {
		return HSL{H: 0, S: 0, L: float64(l)}
	}

	delta := maxVal - minVal

	// The branch tests the rounded percentage, not the raw lightness, so a
	// colour whose lightness rounds to exactly 50 takes the lower formula.
	// Existing palettes depend on these values; keep it.
	var s float32
	if l > 50 {
		s = float32(delta / float32(float32(2-maxVal)-minVal))
	} else {
		s = float32(delta / float32(maxVal+minVal))
	}

	// Ties go to the first matching channel in R, G, B order.
	var h float32
	switch maxVal {
	case r:
		h = float32((g - b) / delta)
		if g < b {
			h += 6
		}
	case g:
		h = float32((b-r)/delta) + 2
	case b:
		h = float32((r-g)/delta) + 4
	}

	// Reds just below 360 degrees round up onto the wheel's origin.
	h = round32(float32(h * 60))
	if h >= 360 {
		h -= 360
	}

	return HSL{
		H: float64(h),
		S: float64(round32(float32(s * 100))),
		L: float64(l),
	}
}

// round32 rounds half away from zero.
func round32(x float32) float32 {
	return float32(math.Round(float64(x)))
}
