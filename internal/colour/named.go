package colour

import "strings"

// NamedColour is a well known colour name and its typical RGB value.
type NamedColour struct {
	Name    string
	Colour  Colour
	Aliases []string
}

// Standard ANSI palette (xterm basic 16 colours) plus a few common names.
// Terminals vary; these are the usual values.
var namedColours = []NamedColour{
	{Name: "black", Colour: Opaque(0, 0, 0), Aliases: []string{"color0"}},
	{Name: "red", Colour: Opaque(205, 49, 49), Aliases: []string{"color1"}},
	{Name: "green", Colour: Opaque(13, 188, 121), Aliases: []string{"color2"}},
	{Name: "yellow", Colour: Opaque(229, 229, 16), Aliases: []string{"color3"}},
	{Name: "blue", Colour: Opaque(36, 114, 200), Aliases: []string{"color4"}},
	{Name: "magenta", Colour: Opaque(188, 63, 188), Aliases: []string{"color5", "purple"}},
	{Name: "cyan", Colour: Opaque(17, 168, 205), Aliases: []string{"color6"}},
	{Name: "white", Colour: Opaque(229, 229, 229), Aliases: []string{"color7", "gray", "grey"}},

	{Name: "brightblack", Colour: Opaque(102, 102, 102), Aliases: []string{"color8", "darkgray", "darkgrey"}},
	{Name: "brightred", Colour: Opaque(241, 76, 76), Aliases: []string{"color9"}},
	{Name: "brightgreen", Colour: Opaque(35, 209, 139), Aliases: []string{"color10"}},
	{Name: "brightyellow", Colour: Opaque(245, 245, 67), Aliases: []string{"color11"}},
	{Name: "brightblue", Colour: Opaque(59, 142, 234), Aliases: []string{"color12"}},
	{Name: "brightmagenta", Colour: Opaque(214, 112, 214), Aliases: []string{"color13", "brightpurple"}},
	{Name: "brightcyan", Colour: Opaque(41, 184, 219), Aliases: []string{"color14"}},
	{Name: "brightwhite", Colour: Opaque(255, 255, 255), Aliases: []string{"color15"}},

	{Name: "orange", Colour: Opaque(255, 165, 0)},
	{Name: "pink", Colour: Opaque(255, 192, 203)},
	{Name: "brown", Colour: Opaque(165, 42, 42)},
	{Name: "navy", Colour: Opaque(0, 0, 128), Aliases: []string{"darkblue"}},
	{Name: "teal", Colour: Opaque(0, 128, 128), Aliases: []string{"darkcyan"}},
	{Name: "maroon", Colour: Opaque(128, 0, 0), Aliases: []string{"darkred"}},
	{Name: "olive", Colour: Opaque(128, 128, 0), Aliases: []string{"darkyellow"}},
	{Name: "violet", Colour: Opaque(238, 130, 238)},
	{Name: "indigo", Colour: Opaque(75, 0, 130)},
}

// LookupName finds a named colour. Matching ignores case, spaces and dashes.
func LookupName(name string) (Colour, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, " ", ""), "-", ""))
	for _, nc := range namedColours {
		if nc.Name == normalized {
			return nc.Colour, true
		}
		for _, alias := range nc.Aliases {
			if alias == normalized {
				return nc.Colour, true
			}
		}
	}
	return Colour{}, false
}

// NearestName returns the named colour closest to c in RGB space.
func NearestName(c Colour) NamedColour {
	candidates := make([]Colour, len(namedColours))
	for i, nc := range namedColours {
		candidates[i] = nc.Colour
	}
	return namedColours[Nearest(c, candidates)]
}

// Parse accepts either a hex colour or a colour name.
func Parse(s string) (Colour, error) {
	if c, ok := LookupName(s); ok {
		return c, nil
	}
	return ParseHex(s)
}
