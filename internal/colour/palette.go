package colour

import "encoding/json"

// Palette is an ordered collection of sampled colours.
type Palette struct {
	Colours []Colour
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []Colour) *Palette {
	return &Palette{
		Colours: colours,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Average returns the per-channel mean of the palette, rounded to nearest.
// Alpha is averaged too. An empty palette averages to Transparent.
func (p *Palette) Average() Colour {
	if len(p.Colours) == 0 {
		return Transparent
	}

	var a, r, g, b int
	for _, c := range p.Colours {
		a += int(c.A)
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(p.Colours)
	return New(uint8((a+n/2)/n), uint8((r+n/2)/n), uint8((g+n/2)/n), uint8((b+n/2)/n))
}

// Unique returns the distinct colours in order of first appearance.
func (p *Palette) Unique() *Palette {
	seen := make(map[Colour]struct{}, len(p.Colours))
	unique := make([]Colour, 0, len(p.Colours))
	for _, c := range p.Colours {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return NewPalette(unique)
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex         string `json:"hex"`
	ARGB        uint32 `json:"argb"`
	Colour      Colour `json:"channels"`
	HSL         HSL    `json:"hsl"`
	Dark        bool   `json:"dark"`
	Compactable bool   `json:"compactable"`
}

// NewColourJSON describes c for JSON output.
func NewColourJSON(c Colour) ColourJSON {
	return ColourJSON{
		Hex:         c.Hex(),
		ARGB:        c.Uint32(),
		Colour:      c,
		HSL:         c.HSL(),
		Dark:        c.IsDark(),
		Compactable: c.IsCompactable(),
	}
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = NewColourJSON(c)
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}, "", "  ")
}
