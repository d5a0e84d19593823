// Package colour provides the sampled colour model and its conversions.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Colour is an 8-bit per channel ARGB colour value.
// Samples decoded from a source without alpha are always fully opaque.
type Colour struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Reference colours.
var (
	Transparent = Colour{}
	Black       = Colour{A: 0xff}
	White       = Colour{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
)

// New creates a colour from explicit channel values.
func New(a, r, g, b uint8) Colour {
	return Colour{A: a, R: r, G: g, B: b}
}

// Opaque creates a fully opaque colour.
func Opaque(r, g, b uint8) Colour {
	return New(0xff, r, g, b)
}

// FromUint32 unpacks a 0xAARRGGBB value.
func FromUint32(v uint32) Colour {
	return New(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

// Uint32 packs the colour as 0xAARRGGBB.
func (c Colour) Uint32() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// IsCompactable reports whether every RGB channel repeats a single hex digit,
// i.e. the colour can be written as a 3-digit web colour. Alpha is ignored.
func (c Colour) IsCompactable() bool {
	return compact(c.R) && compact(c.G) && compact(c.B)
}

func compact(n uint8) bool {
	return n>>4 == n&0xf
}

// Distance returns the Euclidean distance between two colours in RGB space.
// Alpha does not take part in the metric.
func (c Colour) Distance(other Colour) float64 {
	dr := float64(other.R) - float64(c.R)
	dg := float64(other.G) - float64(c.G)
	db := float64(other.B) - float64(c.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// IsDark reports whether the colour is closer to black than to white.
//
// This is a nearest reference point test in plain RGB space, not a
// luminance threshold, so it can disagree with Luminance for saturated
// greens and blues.
func (c Colour) IsDark() bool {
	return c.Distance(Black) < c.Distance(White)
}

// Interpolate blends each RGB channel linearly toward other and rounds up.
// Alpha is carried over from c.
//
// amount is expected to be in [0, 1]. It is not validated; out of range
// values extrapolate and the result is clamped to [0, 255].
func (c Colour) Interpolate(other Colour, amount float64) Colour {
	return Colour{
		A: c.A,
		R: lerp(c.R, other.R, amount),
		G: lerp(c.G, other.G, amount),
		B: lerp(c.B, other.B, amount),
	}
}

// lerp computes ceil((1-x)*a + x*b) in the form a + x*(b-a), which is exact
// when a == b and at both ends of the range.
func lerp(a, b uint8, x float64) uint8 {
	step := float64(x * float64(int(b)-int(a)))
	v := math.Ceil(float64(a) + step)
	return uint8(math.Max(0, math.Min(255, v)))
}

// Lighten moves the colour toward opaque white by amount.
func (c Colour) Lighten(amount float64) Colour {
	return c.Interpolate(White, amount)
}

// Darken moves the colour toward opaque black by amount.
func (c Colour) Darken(amount float64) Colour {
	return c.Interpolate(Black, amount)
}

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// Hex returns the colour as "#rrggbb".
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ShortHex returns "#rgb" for compactable colours and Hex otherwise.
func (c Colour) ShortHex() string {
	if !c.IsCompactable() {
		return c.Hex()
	}
	return fmt.Sprintf("#%x%x%x", c.R&0xf, c.G&0xf, c.B&0xf)
}

// String returns the colour in the format "argb(a, r, g, b)".
func (c Colour) String() string {
	return fmt.Sprintf("argb(%d, %d, %d, %d)", c.A, c.R, c.G, c.B)
}

// ParseHex parses "#rgb", "#rrggbb" or "#aarrggbb". The hash is optional.
// Colours without an alpha component are opaque.
func ParseHex(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return Opaque(r<<4|r, g<<4|g, b<<4|b), nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return FromUint32(0xff000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return FromUint32(uint32(v)), nil
	default:
		return Colour{}, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 digits", s)
	}
}
